package jobs

import (
	"context"

	"libraria-backend/internal/logger"
)

// SendOverdueNotices mails the librarian a digest of every loan past its due
// date together with the late fees accrued so far.
func (jr *JobRunner) SendOverdueNotices() {
	jr.runWithRecovery("SendOverdueNotices", func() {
		ctx := context.Background()

		overdue, err := jr.store.ListOverdueOpenRecords(ctx)
		if err != nil {
			logger.Error("Failed to list overdue loans", "error", err)
			return
		}
		if len(overdue) == 0 {
			logger.Info("No overdue loans, skipping digest")
			return
		}

		var totalFees int32
		for _, loan := range overdue {
			fee := jr.services.LateFee.CalculateLateFee(ctx, loan.PatronID, loan.BookID)
			totalFees += fee.FeeCents
		}

		to := jr.config.Email.LibrarianEmail
		if to == "" {
			logger.Warn("No librarian email configured, skipping overdue digest", "overdue_count", len(overdue))
			return
		}

		if err := jr.services.Email.SendOverdueDigest(ctx, to, overdue, totalFees); err != nil {
			logger.Error("Failed to send overdue digest", "error", err)
			return
		}
		logger.Info("Sent overdue digest", "overdue_count", len(overdue), "total_fees_cents", totalFees)
	})
}
