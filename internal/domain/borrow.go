package domain

import "time"

// BorrowRecord tracks one checkout of one book by one patron.
// A record with a nil ReturnDate is an open loan; setting ReturnDate closes
// it. Records are never deleted, so a book accumulates one closed record per
// historical borrow/return cycle.
type BorrowRecord struct {
	ID         int32      `json:"id"`
	PatronID   string     `json:"patron_id"`
	BookID     int32      `json:"book_id"`
	Title      string     `json:"title,omitempty"`
	Author     string     `json:"author,omitempty"`
	BorrowDate time.Time  `json:"borrow_date"`
	DueDate    time.Time  `json:"due_date"`
	ReturnDate *time.Time `json:"return_date,omitempty"`
}

// BorrowedBook is the joined view of an open loan used by the late-fee
// calculator and the patron status report.
type BorrowedBook struct {
	BookID     int32     `json:"book_id"`
	Title      string    `json:"title"`
	Author     string    `json:"author"`
	BorrowDate time.Time `json:"borrow_date"`
	DueDate    time.Time `json:"due_date"`
	IsOverdue  bool      `json:"is_overdue"`
}
