package service

import (
	"context"

	"libraria-backend/internal/domain"
)

// Public operations return (success, message) pairs instead of errors: every
// validation, not-found, state-conflict and collaborator failure is converted
// into a structured result at the service boundary and never raised further.

type CatalogService interface {
	AddBook(ctx context.Context, title, author, isbn string, totalCopies int32) (bool, string)
	ListBooks(ctx context.Context) []domain.Book
	SearchBooks(ctx context.Context, term, field string) []domain.Book
}

type BorrowingService interface {
	BorrowBook(ctx context.Context, patronID string, bookID int32) (bool, string)
	ReturnBook(ctx context.Context, patronID string, bookID int32) (bool, string)
}

type LateFeeService interface {
	CalculateLateFee(ctx context.Context, patronID string, bookID int32) domain.LateFeeResult
}

type StatusService interface {
	GetPatronStatusReport(ctx context.Context, patronID string) domain.PatronStatusReport
}

type PaymentService interface {
	// PayLateFees charges the patron's current late fee for one book through
	// the payment gateway. The transaction ID is empty on every failure path.
	PayLateFees(ctx context.Context, patronID string, bookID int32) (bool, string, string)
	// RefundLateFeePayment refunds a prior charge. The gateway's message is
	// passed through verbatim.
	RefundLateFeePayment(ctx context.Context, transactionID string, amountCents int32) (bool, string)
}

// PaymentGateway is the external payment processor. It is untrusted and
// fallible: a non-nil error means the call itself failed (network, timeout)
// and must be converted into a domain failure by the caller.
type PaymentGateway interface {
	ProcessPayment(ctx context.Context, patronID string, amountCents int32, description string) (success bool, transactionID string, message string, err error)
	RefundPayment(ctx context.Context, transactionID string, amountCents int32) (success bool, message string, err error)
}

type EmailService interface {
	// SendOverdueDigest mails the librarian a summary of all overdue loans.
	SendOverdueDigest(ctx context.Context, toEmail string, loans []domain.BorrowRecord, totalFeesCents int32) error
}
