package attendance

import (
	"context"
	"time"
)

// TapService runs the attendance transition engine for one tap event.
type TapService interface {
	// ProcessTap validates the device and card, locates the active work
	// session and applies the clock-in/clock-out state machine. Business
	// rejections come back as *TapFault errors; anything else is a
	// system failure.
	ProcessTap(ctx context.Context, req TapRequest) (TapResult, error)
}

// ReconcileService finalizes daily attendance records in batch.
type ReconcileService interface {
	// Reconcile computes and upserts the finalized record for every
	// active card-holding user on date. Idempotent; per-user failures
	// are isolated and reported in the summary.
	Reconcile(ctx context.Context, date time.Time) (ReconcileSummary, error)
}
