package sanitizer_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/storefront/pkg/sanitizer"
)

func TestApply(t *testing.T) {
	t.Parallel()
	double := func(n int) int { return n * 2 }
	inc := func(n int) int { return n + 1 }

	assert.Equal(t, 7, sanitizer.Apply(3, double, inc))
	assert.Equal(t, 8, sanitizer.Compose(inc, double)(3))
	assert.Equal(t, "x", sanitizer.Apply("x"))
}

func TestPipelines(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		fn   func(string) string
		in   string
		want string
	}{
		{name: "display name tags", fn: sanitizer.DisplayName, in: "  <b>Alice</b>\n Smith ", want: "Alice Smith"},
		{name: "display name entities", fn: sanitizer.DisplayName, in: "Tom &amp; Jerry", want: "Tom & Jerry"},
		{name: "email keeps case", fn: sanitizer.Email, in: " Alice@Example.com\t", want: "Alice@Example.com"},
		{name: "comment paragraphs", fn: sanitizer.Comment, in: "Great\r\n\r\n\r\n\r\nGame<script>x</script>\x00", want: "Great\n\nGamex"},
		{name: "comment blank", fn: sanitizer.Comment, in: " <br/> ", want: ""},
		{name: "search", fn: sanitizer.Search, in: "  elden\n  ring ", want: "elden ring"},
		{name: "whitespace-only search", fn: sanitizer.Search, in: " \t\n ", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.fn(tt.in))
		})
	}
}

func TestComment_Truncated(t *testing.T) {
	t.Parallel()
	long := strings.Repeat("é", sanitizer.MaxCommentLength+10)
	got := sanitizer.Comment(long)
	assert.Len(t, []rune(got), sanitizer.MaxCommentLength)
}

func TestMaxLength(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "ab", sanitizer.MaxLength(2)("abc"))
	assert.Equal(t, "abc", sanitizer.MaxLength(5)("abc"))
	assert.Empty(t, sanitizer.MaxLength(0)("abc"))
}
