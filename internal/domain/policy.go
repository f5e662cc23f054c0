package domain

// TransactionIDPrefix is the reserved prefix of payment gateway transaction
// IDs. Refunds against IDs without it are rejected before any gateway call.
const TransactionIDPrefix = "txn_"

// LendingPolicy holds the numeric lending rules. All money values are cents.
type LendingPolicy struct {
	LoanPeriodDays     int32
	MaxBorrowedBooks   int32
	LateFeePerDayCents int32
	LateFeeCapCents    int32
}

// DefaultLendingPolicy returns the standard policy: 14-day loans, at most 5
// open loans per patron, $0.50/day late fee capped at $15.00 per book.
func DefaultLendingPolicy() LendingPolicy {
	return LendingPolicy{
		LoanPeriodDays:     14,
		MaxBorrowedBooks:   5,
		LateFeePerDayCents: 50,
		LateFeeCapCents:    1500,
	}
}
