package service

import (
	"context"

	"libraria-backend/internal/domain"
	"libraria-backend/internal/logger"
	"libraria-backend/internal/repository"
	"libraria-backend/internal/utils"
)

type statusService struct {
	borrowRepo repository.BorrowRepository
	feeSvc     LateFeeService
}

func NewStatusService(borrowRepo repository.BorrowRepository, feeSvc LateFeeService) StatusService {
	return &statusService{borrowRepo: borrowRepo, feeSvc: feeSvc}
}

// GetPatronStatusReport never fails loudly: collaborator errors are folded
// into the report's Error field.
func (s *statusService) GetPatronStatusReport(ctx context.Context, patronID string) domain.PatronStatusReport {
	if err := utils.ValidatePatronID(patronID); err != nil {
		return domain.PatronStatusReport{PatronID: patronID, Error: err.Error()}
	}

	report := domain.PatronStatusReport{PatronID: patronID}

	borrowed, err := s.borrowRepo.ListBorrowedByPatron(ctx, patronID)
	if err != nil {
		logger.Error("Failed to fetch current loans for status report", "patron_id", patronID, "error", err)
		report.Error = "Error retrieving patron status: " + err.Error()
		return report
	}
	report.CurrentlyBorrowed = borrowed
	report.TotalBooksBorrowed = int32(len(borrowed))

	for _, loan := range borrowed {
		if !loan.IsOverdue {
			continue
		}
		fee := s.feeSvc.CalculateLateFee(ctx, patronID, loan.BookID)
		report.TotalLateFeesCents += fee.FeeCents
	}

	history, err := s.borrowRepo.ListHistoryByPatron(ctx, patronID)
	if err != nil {
		logger.Error("Failed to fetch borrow history for status report", "patron_id", patronID, "error", err)
		report.Error = "Error retrieving patron status: " + err.Error()
		return report
	}
	report.BorrowHistory = history

	report.Status = "Patron status report generated successfully"
	return report
}
