package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"libraria-backend/internal/domain"
	"libraria-backend/internal/utils"
)

// simulatedGateway stands in for a real payment processor. It accepts every
// well-formed charge, issues "txn_"-prefixed transaction IDs, and can be
// configured to decline charges above a limit to exercise the decline path.
type simulatedGateway struct {
	declineOverCents int32
}

// NewSimulatedGateway returns a gateway that declines charges above
// declineOverCents; pass 0 to accept any amount.
func NewSimulatedGateway(declineOverCents int32) PaymentGateway {
	return &simulatedGateway{declineOverCents: declineOverCents}
}

func (g *simulatedGateway) ProcessPayment(ctx context.Context, patronID string, amountCents int32, description string) (bool, string, string, error) {
	if amountCents <= 0 {
		return false, "", "Payment declined: amount must be positive", nil
	}
	if g.declineOverCents > 0 && amountCents > g.declineOverCents {
		return false, "", "Payment declined: amount exceeds limit", nil
	}

	transactionID := domain.TransactionIDPrefix + uuid.NewString()
	message := fmt.Sprintf("Payment of %s processed successfully for %s", utils.FormatCents(amountCents), description)
	return true, transactionID, message, nil
}

func (g *simulatedGateway) RefundPayment(ctx context.Context, transactionID string, amountCents int32) (bool, string, error) {
	if err := utils.ValidateTransactionID(transactionID); err != nil {
		return false, "Refund declined: unknown transaction", nil
	}
	if amountCents <= 0 {
		return false, "Refund declined: amount must be positive", nil
	}

	refundID := fmt.Sprintf("refund_%s_%s", transactionID, uuid.NewString()[:8])
	message := fmt.Sprintf("Refund of %s processed successfully. Refund ID: %s", utils.FormatCents(amountCents), refundID)
	return true, message, nil
}
