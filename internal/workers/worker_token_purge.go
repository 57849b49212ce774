// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-factory-planner/internal/clock"
	"github.com/MKhiriev/go-factory-planner/internal/logger"
)

type tokenPurgeWorker struct {
	purger   RefreshTokenPurger
	interval time.Duration
	clock    clock.Clock
	logger   *logger.Logger
}

// NewTokenPurgeWorker returns a worker that purges expired refresh tokens
// every interval. A failed purge is logged and retried on the next tick.
func NewTokenPurgeWorker(purger RefreshTokenPurger, interval time.Duration, clk clock.Clock, log *logger.Logger) Worker {
	return &tokenPurgeWorker{
		purger:   purger,
		interval: interval,
		clock:    clk,
		logger:   log,
	}
}

func (w *tokenPurgeWorker) Run(ctx context.Context) error {
	tick := make(chan struct{}, 1)
	schedule := func() clock.Timer {
		return w.clock.AfterFunc(w.interval, func() {
			select {
			case tick <- struct{}{}:
			default:
			}
		})
	}

	timer := schedule()
	defer func() { timer.Stop() }()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-tick:
			w.purge(ctx)
			timer = schedule()
		}
	}
}

func (w *tokenPurgeWorker) purge(ctx context.Context) {
	purged, err := w.purger.PurgeExpiredRefreshTokens(ctx)
	if err != nil {
		w.logger.Err(err).Str("func", "*tokenPurgeWorker.purge").Msg("purging expired refresh tokens failed")
		return
	}
	if purged > 0 {
		w.logger.Info().Int64("purged", purged).Msg("expired refresh tokens purged")
	}
}
