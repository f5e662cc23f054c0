package domain

// LateFeeResult is the outcome of a late-fee calculation for a single
// (patron, book) pair. It is derived on demand and never persisted.
type LateFeeResult struct {
	FeeCents    int32  `json:"fee_cents"`
	DaysOverdue int32  `json:"days_overdue"`
	Status      string `json:"status"`
}

// PatronStatusReport aggregates a patron's current loans, accumulated late
// fees and borrow history. Error is set instead of the other fields when the
// report could not be generated.
type PatronStatusReport struct {
	PatronID           string         `json:"patron_id"`
	CurrentlyBorrowed  []BorrowedBook `json:"currently_borrowed"`
	TotalBooksBorrowed int32          `json:"total_books_borrowed"`
	TotalLateFeesCents int32          `json:"total_late_fees_cents"`
	BorrowHistory      []BorrowRecord `json:"borrow_history"`
	Status             string         `json:"status,omitempty"`
	Error              string         `json:"error,omitempty"`
}
