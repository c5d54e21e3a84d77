package reconcile

import (
	"context"
	"log/slog"
	"time"

	"github.com/presensia/attendance-backend-go/internal/domain/attendance"
)

// NewDailyJob returns the nightly batch job: it finalizes the previous
// day in the given zone. When to fire is the scheduler's concern;
// upserts keep a repeat run harmless.
func NewDailyJob(svc attendance.ReconcileService, loc *time.Location, logger *slog.Logger) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		summary, err := svc.Reconcile(ctx, time.Now().In(loc).AddDate(0, 0, -1))
		if err != nil {
			return err
		}

		logger.Info("Daily attendance batch completed",
			slog.String("date", summary.Date),
			slog.Int("processed", summary.Processed),
			slog.Int("skipped", summary.Skipped),
			slog.Int("failed", summary.Failed),
		)
		return nil
	}
}
