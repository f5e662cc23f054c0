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

type borrowingService struct {
	bookRepo   repository.BookRepository
	borrowRepo repository.BorrowRepository
	feeSvc     LateFeeService
	policy     domain.LendingPolicy
}

func NewBorrowingService(
	bookRepo repository.BookRepository,
	borrowRepo repository.BorrowRepository,
	feeSvc LateFeeService,
	policy domain.LendingPolicy,
) BorrowingService {
	return &borrowingService{
		bookRepo:   bookRepo,
		borrowRepo: borrowRepo,
		feeSvc:     feeSvc,
		policy:     policy,
	}
}

func (s *borrowingService) BorrowBook(ctx context.Context, patronID string, bookID int32) (bool, string) {
	if err := utils.ValidatePatronID(patronID); err != nil {
		return false, err.Error()
	}

	book, err := s.bookRepo.GetByID(ctx, bookID)
	if err != nil {
		logger.Error("Failed to look up book for borrow", "book_id", bookID, "error", err)
		return false, "Database error while looking up the book"
	}
	if book == nil {
		return false, "Book not found"
	}
	if book.AvailableCopies <= 0 {
		return false, fmt.Sprintf("%q is currently not available", book.Title)
	}

	count, err := s.borrowRepo.CountOpenByPatron(ctx, patronID)
	if err != nil {
		logger.Error("Failed to count open loans", "patron_id", patronID, "error", err)
		return false, "Database error while checking current loans"
	}
	if count >= s.policy.MaxBorrowedBooks {
		return false, fmt.Sprintf("You have reached the maximum borrowing limit of %d books", s.policy.MaxBorrowedBooks)
	}

	now := time.Now()
	rec := &domain.BorrowRecord{
		PatronID:   patronID,
		BookID:     bookID,
		BorrowDate: now,
		DueDate:    now.AddDate(0, 0, int(s.policy.LoanPeriodDays)),
	}
	if err := s.borrowRepo.CreateRecord(ctx, rec); err != nil {
		logger.Error("Failed to create borrow record", "patron_id", patronID, "book_id", bookID, "error", err)
		return false, "Database error while recording the loan"
	}

	adjusted, err := s.bookRepo.AdjustAvailability(ctx, bookID, -1)
	if err != nil {
		logger.Error("Failed to decrement availability", "book_id", bookID, "error", err)
		return false, "Database error while updating book availability"
	}
	if !adjusted {
		// Lost the race for the last copy; the loan record stays but the
		// storage layer refused to go below zero.
		return false, fmt.Sprintf("%q is currently not available", book.Title)
	}

	return true, fmt.Sprintf("Successfully borrowed %q. Due date: %s", book.Title, rec.DueDate.Format("2006-01-02"))
}

func (s *borrowingService) ReturnBook(ctx context.Context, patronID string, bookID int32) (bool, string) {
	if err := utils.ValidatePatronID(patronID); err != nil {
		return false, err.Error()
	}

	book, err := s.bookRepo.GetByID(ctx, bookID)
	if err != nil {
		logger.Error("Failed to look up book for return", "book_id", bookID, "error", err)
		return false, "Database error while looking up the book"
	}
	if book == nil {
		return false, "Book not found"
	}

	// The fee has to be computed before the record is closed; afterwards the
	// loan no longer shows up in the patron's open-borrow view.
	fee := s.feeSvc.CalculateLateFee(ctx, patronID, bookID)

	closed, err := s.borrowRepo.CloseRecord(ctx, patronID, bookID, time.Now())
	if err != nil {
		logger.Error("Failed to close borrow record", "patron_id", patronID, "book_id", bookID, "error", err)
		return false, "Database error while closing the loan"
	}
	if !closed {
		return false, "No active borrow record found for this patron and book"
	}

	if _, err := s.bookRepo.AdjustAvailability(ctx, bookID, 1); err != nil {
		logger.Error("Failed to increment availability", "book_id", bookID, "error", err)
		return false, "Database error while updating book availability"
	}

	msg := fmt.Sprintf("Successfully returned %q.", book.Title)
	if fee.FeeCents > 0 {
		msg += fmt.Sprintf(" Late fee: %s (%d days overdue)", utils.FormatCents(fee.FeeCents), fee.DaysOverdue)
	} else {
		msg += " No late fees. Thank you for returning on time"
	}
	return true, msg
}
