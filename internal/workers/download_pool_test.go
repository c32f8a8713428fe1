// SPDX-License-Identifier: Apache-2.0

package workers

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dlenski/corostc/internal/logger"
)

func TestDownloadPool_RunsAll(t *testing.T) {
	pool := NewDownloadPool(2, logger.Nop())

	var mu sync.Mutex
	seen := make(map[string]bool)

	errs := pool.Run(context.Background(), []string{"a", "b", "c", "d"}, func(_ context.Context, id string) error {
		mu.Lock()
		seen[id] = true
		mu.Unlock()
		return nil
	})

	require.Len(t, errs, 4)
	for _, err := range errs {
		assert.NoError(t, err)
	}
	assert.Len(t, seen, 4)
}

func TestDownloadPool_FailureDoesNotStopOthers(t *testing.T) {
	pool := NewDownloadPool(2, logger.Nop())
	boom := errors.New("export failed")

	var calls atomic.Int64
	errs := pool.Run(context.Background(), []string{"a", "bad", "c"}, func(_ context.Context, id string) error {
		calls.Add(1)
		if id == "bad" {
			return boom
		}
		return nil
	})

	assert.Equal(t, int64(3), calls.Load())
	assert.NoError(t, errs[0])
	assert.ErrorIs(t, errs[1], boom)
	assert.NoError(t, errs[2])
}

func TestDownloadPool_BoundsConcurrency(t *testing.T) {
	pool := NewDownloadPool(2, logger.Nop())

	var current, peak atomic.Int64
	ids := []string{"a", "b", "c", "d", "e", "f"}

	pool.Run(context.Background(), ids, func(context.Context, string) error {
		n := current.Add(1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		time.Sleep(10 * time.Millisecond)
		current.Add(-1)
		return nil
	})

	assert.LessOrEqual(t, peak.Load(), int64(2))
}

func TestDownloadPool_MinimumConcurrencyIsOne(t *testing.T) {
	pool := NewDownloadPool(0, logger.Nop())
	assert.Equal(t, 1, pool.concurrency)
}

func TestDownloadPool_CancelledContext(t *testing.T) {
	pool := NewDownloadPool(1, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	errs := pool.Run(ctx, []string{"a", "b"}, func(context.Context, string) error {
		t.Fatal("fn must not run for a cancelled context")
		return nil
	})

	require.Len(t, errs, 2)
	assert.ErrorIs(t, errs[0], context.Canceled)
	assert.ErrorIs(t, errs[1], context.Canceled)
}
