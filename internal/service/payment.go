package service

import (
	"context"
	"fmt"

	"libraria-backend/internal/domain"
	"libraria-backend/internal/logger"
	"libraria-backend/internal/repository"
	"libraria-backend/internal/utils"
)

type paymentService struct {
	bookRepo repository.BookRepository
	feeSvc   LateFeeService
	gateway  PaymentGateway
	policy   domain.LendingPolicy
}

func NewPaymentService(
	bookRepo repository.BookRepository,
	feeSvc LateFeeService,
	gateway PaymentGateway,
	policy domain.LendingPolicy,
) PaymentService {
	return &paymentService{
		bookRepo: bookRepo,
		feeSvc:   feeSvc,
		gateway:  gateway,
		policy:   policy,
	}
}

// PayLateFees guards the gateway: invalid patron IDs and zero fees are
// rejected before any gateway call, and gateway errors are converted into
// failure results instead of propagating.
func (s *paymentService) PayLateFees(ctx context.Context, patronID string, bookID int32) (bool, string, string) {
	if err := utils.ValidatePatronID(patronID); err != nil {
		return false, err.Error(), ""
	}

	fee := s.feeSvc.CalculateLateFee(ctx, patronID, bookID)
	if fee.FeeCents == 0 {
		return false, fmt.Sprintf("No late fees owed for this book. %s", fee.Status), ""
	}

	book, err := s.bookRepo.GetByID(ctx, bookID)
	if err != nil {
		logger.Error("Failed to look up book for payment", "book_id", bookID, "error", err)
		return false, "Database error while looking up the book", ""
	}
	if book == nil {
		return false, "Book not found", ""
	}

	description := fmt.Sprintf("Late fees for '%s'", book.Title)
	logger.ExternalServiceCall("payment-gateway", "ProcessPayment", "patron_id", patronID, "amount_cents", fee.FeeCents)
	ok, transactionID, message, err := s.gateway.ProcessPayment(ctx, patronID, fee.FeeCents, description)
	logger.ExternalServiceResult("payment-gateway", "ProcessPayment", err, "success", ok)
	if err != nil {
		return false, fmt.Sprintf("Payment processing error: %v", err), ""
	}
	if !ok {
		return false, message, ""
	}

	return true, fmt.Sprintf("Payment of %s was successful. %s", utils.FormatCents(fee.FeeCents), message), transactionID
}

// RefundLateFeePayment validates the transaction ID, then the amount, before
// touching the gateway. The gateway's verdict is returned unchanged.
func (s *paymentService) RefundLateFeePayment(ctx context.Context, transactionID string, amountCents int32) (bool, string) {
	if err := utils.ValidateTransactionID(transactionID); err != nil {
		return false, err.Error()
	}
	if err := utils.ValidateRefundCents(amountCents, s.policy.LateFeeCapCents); err != nil {
		return false, err.Error()
	}

	logger.ExternalServiceCall("payment-gateway", "RefundPayment", "transaction_id", transactionID, "amount_cents", amountCents)
	ok, message, err := s.gateway.RefundPayment(ctx, transactionID, amountCents)
	logger.ExternalServiceResult("payment-gateway", "RefundPayment", err, "success", ok)
	if err != nil {
		return false, fmt.Sprintf("Refund processing error: %v", err)
	}
	return ok, message
}
