package unit

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"libraria-backend/internal/domain"
)

// MockBookRepo
type MockBookRepo struct {
	mock.Mock
}

func (m *MockBookRepo) Create(ctx context.Context, book *domain.Book) error {
	args := m.Called(ctx, book)
	return args.Error(0)
}
func (m *MockBookRepo) GetByID(ctx context.Context, id int32) (*domain.Book, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Book), args.Error(1)
}
func (m *MockBookRepo) GetByISBN(ctx context.Context, isbn string) (*domain.Book, error) {
	args := m.Called(ctx, isbn)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Book), args.Error(1)
}
func (m *MockBookRepo) List(ctx context.Context) ([]domain.Book, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Book), args.Error(1)
}
func (m *MockBookRepo) AdjustAvailability(ctx context.Context, bookID, delta int32) (bool, error) {
	args := m.Called(ctx, bookID, delta)
	return args.Bool(0), args.Error(1)
}

// MockBorrowRepo
type MockBorrowRepo struct {
	mock.Mock
}

func (m *MockBorrowRepo) CreateRecord(ctx context.Context, rec *domain.BorrowRecord) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}
func (m *MockBorrowRepo) CloseRecord(ctx context.Context, patronID string, bookID int32, returnedAt time.Time) (bool, error) {
	args := m.Called(ctx, patronID, bookID, returnedAt)
	return args.Bool(0), args.Error(1)
}
func (m *MockBorrowRepo) ListBorrowedByPatron(ctx context.Context, patronID string) ([]domain.BorrowedBook, error) {
	args := m.Called(ctx, patronID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BorrowedBook), args.Error(1)
}
func (m *MockBorrowRepo) CountOpenByPatron(ctx context.Context, patronID string) (int32, error) {
	args := m.Called(ctx, patronID)
	return args.Get(0).(int32), args.Error(1)
}
func (m *MockBorrowRepo) ListHistoryByPatron(ctx context.Context, patronID string) ([]domain.BorrowRecord, error) {
	args := m.Called(ctx, patronID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BorrowRecord), args.Error(1)
}
func (m *MockBorrowRepo) ListOverdueOpenRecords(ctx context.Context) ([]domain.BorrowRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BorrowRecord), args.Error(1)
}

// MockLateFeeService
type MockLateFeeService struct {
	mock.Mock
}

func (m *MockLateFeeService) CalculateLateFee(ctx context.Context, patronID string, bookID int32) domain.LateFeeResult {
	args := m.Called(ctx, patronID, bookID)
	return args.Get(0).(domain.LateFeeResult)
}

// MockPaymentGateway
type MockPaymentGateway struct {
	mock.Mock
}

func (m *MockPaymentGateway) ProcessPayment(ctx context.Context, patronID string, amountCents int32, description string) (bool, string, string, error) {
	args := m.Called(ctx, patronID, amountCents, description)
	return args.Bool(0), args.String(1), args.String(2), args.Error(3)
}
func (m *MockPaymentGateway) RefundPayment(ctx context.Context, transactionID string, amountCents int32) (bool, string, error) {
	args := m.Called(ctx, transactionID, amountCents)
	return args.Bool(0), args.String(1), args.Error(2)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendOverdueDigest(ctx context.Context, toEmail string, loans []domain.BorrowRecord, totalFeesCents int32) error {
	args := m.Called(ctx, toEmail, loans, totalFeesCents)
	return args.Error(0)
}
