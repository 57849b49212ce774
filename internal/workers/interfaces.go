// Package workers runs the background jobs of the planner server next to
// its transports.
package workers

import "context"

// Worker is a background job. Run blocks until ctx is cancelled or the job
// fails; a nil error means a clean stop.
type Worker interface {
	Run(ctx context.Context) error
}

// RefreshTokenPurger deletes refresh tokens past their expiry.
type RefreshTokenPurger interface {
	PurgeExpiredRefreshTokens(ctx context.Context) (int64, error)
}
