package jobs

import (
	"context"
	"time"

	"carrental-backend/internal/logger"
)

// CancelMissedReservations cancels NEW reservations whose start date passed
// more than the configured grace period ago without the car being collected.
func (jr *JobRunner) CancelMissedReservations() {
	jr.runWithRecovery("CancelMissedReservations", func() {
		ctx := context.Background()

		grace := time.Duration(jr.config.Reservations.MissedGraceMinutes) * time.Minute
		cancelled, err := jr.services.Reservation.CancelMissedReservations(ctx, grace)
		if err != nil {
			logger.Error("Failed to cancel missed reservations", "error", err)
			return
		}

		if cancelled > 0 {
			logger.Info("Cancelled missed reservations", "count", cancelled)
		}
	})
}
