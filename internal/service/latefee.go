package service

import (
	"context"
	"fmt"
	"time"

	"libraria-backend/internal/domain"
	"libraria-backend/internal/logger"
	"libraria-backend/internal/repository"
	"libraria-backend/internal/utils"
)

const hoursPerDay = 24

type lateFeeService struct {
	borrowRepo repository.BorrowRepository
	policy     domain.LendingPolicy
}

func NewLateFeeService(borrowRepo repository.BorrowRepository, policy domain.LendingPolicy) LateFeeService {
	return &lateFeeService{borrowRepo: borrowRepo, policy: policy}
}

// CalculateLateFee computes the fee owed right now for one open loan.
// Days overdue are whole elapsed days past the due date (floor), so a loan
// due earlier today still counts as not yet due. The fee saturates at the
// policy cap.
func (s *lateFeeService) CalculateLateFee(ctx context.Context, patronID string, bookID int32) domain.LateFeeResult {
	if err := utils.ValidatePatronID(patronID); err != nil {
		return domain.LateFeeResult{Status: err.Error()}
	}

	borrowed, err := s.borrowRepo.ListBorrowedByPatron(ctx, patronID)
	if err != nil {
		logger.Error("Failed to fetch borrowed books for fee calculation", "patron_id", patronID, "error", err)
		return domain.LateFeeResult{Status: "Error retrieving borrow records"}
	}

	var loan *domain.BorrowedBook
	for i := range borrowed {
		if borrowed[i].BookID == bookID {
			loan = &borrowed[i]
			break
		}
	}
	if loan == nil {
		return domain.LateFeeResult{Status: "No active borrow record found for this book"}
	}

	days := int32(time.Since(loan.DueDate).Hours() / hoursPerDay)
	if days <= 0 {
		return domain.LateFeeResult{Status: "No late fees - not yet due"}
	}

	fee := days * s.policy.LateFeePerDayCents
	if fee > s.policy.LateFeeCapCents {
		fee = s.policy.LateFeeCapCents
	}

	return domain.LateFeeResult{
		FeeCents:    fee,
		DaysOverdue: days,
		Status:      fmt.Sprintf("Current late fee: %s for %d days overdue", utils.FormatCents(fee), days),
	}
}
