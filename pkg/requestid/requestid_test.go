package requestid_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/storefront/pkg/logger"
	"github.com/dmitrymomot/storefront/pkg/requestid"
)

func TestEnsure(t *testing.T) {
	t.Parallel()

	t.Run("generates an id", func(t *testing.T) {
		t.Parallel()
		ctx, id := requestid.Ensure(context.Background())
		require.NotEmpty(t, id)
		assert.Equal(t, id, requestid.FromContext(ctx))
		assert.True(t, requestid.Valid(id))
	})

	t.Run("keeps an existing id", func(t *testing.T) {
		t.Parallel()
		parent := requestid.WithContext(context.Background(), "checkout-42")
		ctx, id := requestid.Ensure(parent)
		assert.Equal(t, "checkout-42", id)
		assert.Equal(t, parent, ctx)
	})

	t.Run("replaces an invalid id", func(t *testing.T) {
		t.Parallel()
		parent := requestid.WithContext(context.Background(), "bad id\r\n")
		_, id := requestid.Ensure(parent)
		assert.NotEqual(t, "bad id\r\n", id)
		assert.True(t, requestid.Valid(id))
	})
}

func TestValid(t *testing.T) {
	t.Parallel()
	tests := []struct {
		id   string
		want bool
	}{
		{id: "abc-123_DEF", want: true},
		{id: "", want: false},
		{id: "has space", want: false},
		{id: "semi;colon", want: false},
		{id: strings.Repeat("a", 128), want: true},
		{id: strings.Repeat("a", 129), want: false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, requestid.Valid(tt.id), tt.id)
	}
}

func TestFromContext_Empty(t *testing.T) {
	t.Parallel()
	assert.Empty(t, requestid.FromContext(context.Background()))
	//nolint:staticcheck // nil context is handled explicitly
	assert.Empty(t, requestid.FromContext(nil))
}

func TestLoggerExtractor(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	log := logger.New(
		logger.WithOutput(&buf),
		logger.WithFormat(logger.FormatText),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	)

	log.InfoContext(requestid.WithContext(context.Background(), "req-1"), "with id")
	log.InfoContext(context.Background(), "without id")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "request_id=req-1")
	assert.NotContains(t, lines[1], "request_id")
}
