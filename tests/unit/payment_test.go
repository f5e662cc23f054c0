package unit

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"libraria-backend/internal/domain"
	"libraria-backend/internal/service"
)

func newPaymentFixture() (*MockBookRepo, *MockLateFeeService, *MockPaymentGateway, service.PaymentService) {
	bookRepo := new(MockBookRepo)
	feeSvc := new(MockLateFeeService)
	gateway := new(MockPaymentGateway)
	svc := service.NewPaymentService(bookRepo, feeSvc, gateway, domain.DefaultLendingPolicy())
	return bookRepo, feeSvc, gateway, svc
}

func TestPaymentService_PayLateFees(t *testing.T) {
	ctx := context.Background()
	book := &domain.Book{ID: 1, Title: "Test Book Title", Author: "Test Author", ISBN: "1234567890123"}

	t.Run("Success", func(t *testing.T) {
		bookRepo, feeSvc, gateway, svc := newPaymentFixture()

		feeSvc.On("CalculateLateFee", ctx, "123456", int32(1)).
			Return(domain.LateFeeResult{FeeCents: 1050, DaysOverdue: 14, Status: "Current late fee: $10.50 for 14 days overdue"})
		bookRepo.On("GetByID", ctx, int32(1)).Return(book, nil)
		gateway.On("ProcessPayment", ctx, "123456", int32(1050), "Late fees for 'Test Book Title'").
			Return(true, "txn_123456_789", "Payment processed successfully", nil)

		ok, msg, transactionID := svc.PayLateFees(ctx, "123456", 1)
		assert.True(t, ok)
		assert.Equal(t, "txn_123456_789", transactionID)
		assert.Contains(t, strings.ToLower(msg), "successful")
	})

	t.Run("Declined by gateway", func(t *testing.T) {
		bookRepo, feeSvc, gateway, svc := newPaymentFixture()

		feeSvc.On("CalculateLateFee", ctx, "123456", int32(2)).
			Return(domain.LateFeeResult{FeeCents: 1500, DaysOverdue: 30, Status: "Current late fee: $15.00 for 30 days overdue"})
		bookRepo.On("GetByID", ctx, int32(2)).Return(&domain.Book{ID: 2, Title: "Declined Payment Book"}, nil)
		gateway.On("ProcessPayment", ctx, "123456", int32(1500), "Late fees for 'Declined Payment Book'").
			Return(false, "", "Payment declined: amount exceeds limit", nil)

		ok, msg, transactionID := svc.PayLateFees(ctx, "123456", 2)
		assert.False(t, ok)
		assert.Empty(t, transactionID)
		assert.Contains(t, msg, "Payment declined")
	})

	t.Run("Invalid patron ID never touches the gateway", func(t *testing.T) {
		_, feeSvc, gateway, svc := newPaymentFixture()

		ok, msg, transactionID := svc.PayLateFees(ctx, "bad-id", 1)
		assert.False(t, ok)
		assert.Empty(t, transactionID)
		assert.Contains(t, msg, "Invalid patron ID")
		feeSvc.AssertNotCalled(t, "CalculateLateFee", mock.Anything, mock.Anything, mock.Anything)
		gateway.AssertNotCalled(t, "ProcessPayment", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Zero late fees never touches the gateway", func(t *testing.T) {
		bookRepo, feeSvc, gateway, svc := newPaymentFixture()

		feeSvc.On("CalculateLateFee", ctx, "123456", int32(1)).
			Return(domain.LateFeeResult{Status: "No late fees - not yet due"})

		ok, msg, transactionID := svc.PayLateFees(ctx, "123456", 1)
		assert.False(t, ok)
		assert.Empty(t, transactionID)
		assert.Contains(t, strings.ToLower(msg), "no late fees")
		bookRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
		gateway.AssertNotCalled(t, "ProcessPayment", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Gateway network error is converted to failure", func(t *testing.T) {
		bookRepo, feeSvc, gateway, svc := newPaymentFixture()

		feeSvc.On("CalculateLateFee", ctx, "123456", int32(1)).
			Return(domain.LateFeeResult{FeeCents: 850, DaysOverdue: 10, Status: "Current late fee: $8.50 for 10 days overdue"})
		bookRepo.On("GetByID", ctx, int32(1)).Return(book, nil)
		gateway.On("ProcessPayment", ctx, "123456", int32(850), mock.AnythingOfType("string")).
			Return(false, "", "", errors.New("network timeout"))

		ok, msg, transactionID := svc.PayLateFees(ctx, "123456", 1)
		assert.False(t, ok)
		assert.Empty(t, transactionID)
		assert.Contains(t, strings.ToLower(msg), "error")
		assert.Contains(t, strings.ToLower(msg), "network")
	})
}

func TestPaymentService_RefundLateFeePayment(t *testing.T) {
	ctx := context.Background()

	t.Run("Success passes the gateway message through", func(t *testing.T) {
		_, _, gateway, svc := newPaymentFixture()

		gatewayMsg := "Refund of $10.50 processed successfully. Refund ID: refund_txn_123456_789_123"
		gateway.On("RefundPayment", ctx, "txn_123456_789", int32(1050)).Return(true, gatewayMsg, nil)

		ok, msg := svc.RefundLateFeePayment(ctx, "txn_123456_789", 1050)
		assert.True(t, ok)
		assert.Equal(t, gatewayMsg, msg)
	})

	t.Run("Invalid transaction ID never touches the gateway", func(t *testing.T) {
		_, _, gateway, svc := newPaymentFixture()

		ok, msg := svc.RefundLateFeePayment(ctx, "invalid_txn_123", 1050)
		assert.False(t, ok)
		assert.Contains(t, strings.ToLower(msg), "invalid transaction id")
		gateway.AssertNotCalled(t, "RefundPayment", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Invalid amounts never touch the gateway", func(t *testing.T) {
		_, _, gateway, svc := newPaymentFixture()

		for _, cents := range []int32{0, -500} {
			ok, msg := svc.RefundLateFeePayment(ctx, "txn_123456_789", cents)
			assert.False(t, ok)
			assert.Contains(t, msg, "must be positive")
		}

		ok, msg := svc.RefundLateFeePayment(ctx, "txn_123456_789", 1501)
		assert.False(t, ok)
		assert.Contains(t, strings.ToLower(msg), "exceeds maximum late fee")

		gateway.AssertNotCalled(t, "RefundPayment", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Boundary amount of exactly the cap is charged", func(t *testing.T) {
		_, _, gateway, svc := newPaymentFixture()

		gateway.On("RefundPayment", ctx, "txn_123456_789", int32(1500)).
			Return(true, "Refund of $15.00 processed successfully", nil)

		ok, _ := svc.RefundLateFeePayment(ctx, "txn_123456_789", 1500)
		assert.True(t, ok)
		gateway.AssertCalled(t, "RefundPayment", ctx, "txn_123456_789", int32(1500))
	})

	t.Run("Gateway failure message is passed through verbatim", func(t *testing.T) {
		_, _, gateway, svc := newPaymentFixture()

		gateway.On("RefundPayment", ctx, "txn_123456_789", int32(500)).
			Return(false, "Refund declined: unknown transaction", nil)

		ok, msg := svc.RefundLateFeePayment(ctx, "txn_123456_789", 500)
		assert.False(t, ok)
		assert.Equal(t, "Refund declined: unknown transaction", msg)
	})

	t.Run("Gateway error is converted to failure", func(t *testing.T) {
		_, _, gateway, svc := newPaymentFixture()

		gateway.On("RefundPayment", ctx, "txn_123456_789", int32(500)).
			Return(false, "", errors.New("connection reset"))

		ok, msg := svc.RefundLateFeePayment(ctx, "txn_123456_789", 500)
		assert.False(t, ok)
		assert.Contains(t, strings.ToLower(msg), "error")
	})

	t.Run("Guard order checks transaction ID before amount", func(t *testing.T) {
		_, _, _, svc := newPaymentFixture()

		ok, msg := svc.RefundLateFeePayment(ctx, "bad_id", -1)
		assert.False(t, ok)
		assert.Contains(t, strings.ToLower(msg), "invalid transaction id")
	})
}
