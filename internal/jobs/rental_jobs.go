package jobs

import (
	"context"

	"carrental-backend/internal/logger"
)

// SendOvertimeReminders emails the configured admin a report of rentals that
// are still in progress past their end date. Nothing is sent when there are
// none.
func (jr *JobRunner) SendOvertimeReminders() {
	jr.runWithRecovery("SendOvertimeReminders", func() {
		ctx := context.Background()

		rentals, err := jr.services.Rental.ListOvertimeRentals(ctx)
		if err != nil {
			logger.Error("Failed to list overtime rentals", "error", err)
			return
		}

		if len(rentals) == 0 {
			logger.Debug("No overtime rentals, skipping report")
			return
		}

		adminEmail := jr.config.Email.AdminEmail
		if adminEmail == "" {
			logger.Warn("Admin email not configured, skipping overtime report")
			return
		}

		if err := jr.services.Email.SendOvertimeReport(ctx, adminEmail, rentals); err != nil {
			logger.Error("Failed to send overtime report", "error", err, "recipient", adminEmail)
			return
		}

		logger.Info("Sent overtime report", "recipient", adminEmail, "rentals", len(rentals))
	})
}
