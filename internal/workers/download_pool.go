// SPDX-License-Identifier: Apache-2.0

// Package workers provides the bounded-concurrency pool used for
// parallel activity downloads.
package workers

import (
	"context"
	"sync"

	"github.com/dlenski/corostc/internal/logger"
)

// DownloadPool fans a set of activity downloads out over a bounded number
// of goroutines. The Coros export endpoint is slow per activity, so
// corosdown overlaps requests when several IDs are given.
type DownloadPool struct {
	concurrency int
	logger      *logger.Logger
}

// NewDownloadPool creates a pool running at most concurrency downloads at
// once. A concurrency below 1 is treated as 1.
func NewDownloadPool(concurrency int, logger *logger.Logger) *DownloadPool {
	if concurrency < 1 {
		concurrency = 1
	}
	return &DownloadPool{concurrency: concurrency, logger: logger}
}

// Run executes fn for every label ID and returns the per-ID errors,
// aligned by index with labelIDs. A failed download never stops the
// others; the caller decides how to report partial failure.
func (p *DownloadPool) Run(ctx context.Context, labelIDs []string, fn func(ctx context.Context, labelID string) error) []error {
	errs := make([]error, len(labelIDs))

	sem := make(chan struct{}, p.concurrency)
	var wg sync.WaitGroup

	for i, id := range labelIDs {
		if ctx.Err() != nil {
			errs[i] = ctx.Err()
			continue
		}

		wg.Add(1)
		sem <- struct{}{}

		go func(i int, id string) {
			defer wg.Done()
			defer func() { <-sem }()

			if err := fn(ctx, id); err != nil {
				p.logger.Warn().Err(err).Str("label_id", id).Msg("download failed")
				errs[i] = err
			}
		}(i, id)
	}

	wg.Wait()
	return errs
}
