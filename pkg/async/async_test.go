package async_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/storefront/pkg/async"
)

func TestRun(t *testing.T) {
	ctx := context.Background()

	t.Run("result", func(t *testing.T) {
		f := async.Run(ctx, func(context.Context) (int, error) { return 42, nil })
		got, err := f.Await(ctx)
		require.NoError(t, err)
		assert.Equal(t, 42, got)
	})

	t.Run("error", func(t *testing.T) {
		boom := errors.New("boom")
		f := async.Run(ctx, func(context.Context) (string, error) { return "", boom })
		_, err := f.Await(ctx)
		assert.ErrorIs(t, err, boom)
	})

	t.Run("cancelled before start", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()

		called := false
		f := async.Run(cctx, func(context.Context) (int, error) {
			called = true
			return 1, nil
		})
		_, err := f.Await(ctx)
		assert.ErrorIs(t, err, context.Canceled)
		assert.False(t, called)
	})

	t.Run("await honours caller context", func(t *testing.T) {
		release := make(chan struct{})
		defer close(release)
		f := async.Run(ctx, func(context.Context) (int, error) {
			<-release
			return 1, nil
		})

		wctx, cancel := context.WithTimeout(ctx, 20*time.Millisecond)
		defer cancel()
		_, err := f.Await(wctx)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})
}

func TestAll(t *testing.T) {
	ctx := context.Background()
	errA := errors.New("a failed")
	errB := errors.New("b failed")

	ints := async.Run(ctx, func(context.Context) (int, error) { return 1, nil })
	strs := async.Run(ctx, func(context.Context) ([]string, error) { return nil, errA })
	other := async.Run(ctx, func(context.Context) (bool, error) { return false, errB })

	err := async.All(ctx, ints, strs, other)
	assert.ErrorIs(t, err, errA)
	assert.ErrorIs(t, err, errB)

	done := async.Run(ctx, func(context.Context) (string, error) { return "x", nil })
	assert.NoError(t, async.All(ctx, ints, done))
}
