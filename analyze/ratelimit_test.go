package analyze_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gleanhq/glean"
	"github.com/gleanhq/glean/analyze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDomainLimiter(t *testing.T) {
	t.Parallel()

	t.Run("implements glean.DomainLimiter interface", func(t *testing.T) {
		t.Parallel()
		var _ glean.DomainLimiter = analyze.NewDomainLimiter(1)
	})

	t.Run("first fetch of a host proceeds immediately", func(t *testing.T) {
		t.Parallel()

		limiter := analyze.NewDomainLimiter(10)

		start := time.Now()
		err := limiter.Wait(context.Background(), "shop.example.com")
		elapsed := time.Since(start)

		require.NoError(t, err)
		assert.Less(t, elapsed, 50*time.Millisecond, "first fetch should not wait")
	})

	t.Run("repeat fetches of the same host are spaced", func(t *testing.T) {
		t.Parallel()

		limiter := analyze.NewDomainLimiter(10) // 100ms between fetches

		require.NoError(t, limiter.Wait(context.Background(), "shop.example.com"))

		start := time.Now()
		err := limiter.Wait(context.Background(), "shop.example.com")
		elapsed := time.Since(start)

		require.NoError(t, err)
		assert.GreaterOrEqual(t, elapsed, 80*time.Millisecond, "second fetch should be spaced")
	})

	t.Run("distinct hosts never wait on each other", func(t *testing.T) {
		t.Parallel()

		limiter := analyze.NewDomainLimiter(10)

		require.NoError(t, limiter.Wait(context.Background(), "shop.example.com"))

		start := time.Now()
		err := limiter.Wait(context.Background(), "blog.example.org")
		elapsed := time.Since(start)

		require.NoError(t, err)
		assert.Less(t, elapsed, 50*time.Millisecond, "other host should not wait")
	})

	t.Run("respects context cancellation while waiting", func(t *testing.T) {
		t.Parallel()

		limiter := analyze.NewDomainLimiter(1) // 1s between fetches

		require.NoError(t, limiter.Wait(context.Background(), "shop.example.com"))

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		err := limiter.Wait(ctx, "shop.example.com")
		assert.Error(t, err, "wait should fail when context times out")
	})

	t.Run("concurrent waits on one host all complete", func(t *testing.T) {
		t.Parallel()

		limiter := analyze.NewDomainLimiter(100) // 10ms between fetches

		var wg sync.WaitGroup
		var completed atomic.Int32

		for i := 0; i < 5; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if err := limiter.Wait(context.Background(), "shop.example.com"); err == nil {
					completed.Add(1)
				}
			}()
		}

		wg.Wait()
		assert.Equal(t, int32(5), completed.Load())
	})
}
