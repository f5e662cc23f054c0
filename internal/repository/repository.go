package repository

import (
	"context"
	"time"

	"libraria-backend/internal/domain"
)

// BookRepository owns catalog rows. Lookups return (nil, nil) when no book
// matches, so callers can tell "not found" from a storage failure.
type BookRepository interface {
	Create(ctx context.Context, book *domain.Book) error
	GetByID(ctx context.Context, id int32) (*domain.Book, error)
	GetByISBN(ctx context.Context, isbn string) (*domain.Book, error)
	List(ctx context.Context) ([]domain.Book, error)
	// AdjustAvailability moves available_copies by delta. Returns false when
	// the adjustment would leave the count outside [0, total_copies] or the
	// book does not exist.
	AdjustAvailability(ctx context.Context, bookID, delta int32) (bool, error)
}

// BorrowRepository owns borrow records. Records are closed, never deleted.
type BorrowRepository interface {
	CreateRecord(ctx context.Context, rec *domain.BorrowRecord) error
	// CloseRecord sets return_date on the open record for (patronID, bookID).
	// Returns false when no matching open record exists.
	CloseRecord(ctx context.Context, patronID string, bookID int32, returnedAt time.Time) (bool, error)
	// ListBorrowedByPatron returns the patron's open loans joined with book
	// details, each flagged overdue when its due date has passed.
	ListBorrowedByPatron(ctx context.Context, patronID string) ([]domain.BorrowedBook, error)
	CountOpenByPatron(ctx context.Context, patronID string) (int32, error)
	// ListHistoryByPatron returns the patron's closed records, newest first.
	ListHistoryByPatron(ctx context.Context, patronID string) ([]domain.BorrowRecord, error)
	// ListOverdueOpenRecords returns every open record past its due date,
	// across all patrons. Used by the overdue-notice job.
	ListOverdueOpenRecords(ctx context.Context) ([]domain.BorrowRecord, error)
}
