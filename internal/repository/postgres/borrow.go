package postgres

import (
	"context"
	"database/sql"
	"time"

	"libraria-backend/internal/domain"
	"libraria-backend/internal/logger"
	"libraria-backend/internal/repository"
)

type borrowRepository struct {
	db *sql.DB
}

func NewBorrowRepository(db *sql.DB) repository.BorrowRepository {
	return &borrowRepository{db: db}
}

func (r *borrowRepository) CreateRecord(ctx context.Context, rec *domain.BorrowRecord) error {
	query := `INSERT INTO borrow_records (patron_id, book_id, borrow_date, due_date)
	          VALUES ($1, $2, $3, $4) RETURNING id`
	logger.DatabaseCall("CreateBorrowRecord", query, "patron_id", rec.PatronID, "book_id", rec.BookID)
	return r.db.QueryRowContext(ctx, query, rec.PatronID, rec.BookID, rec.BorrowDate, rec.DueDate).Scan(&rec.ID)
}

func (r *borrowRepository) CloseRecord(ctx context.Context, patronID string, bookID int32, returnedAt time.Time) (bool, error) {
	query := `UPDATE borrow_records
	          SET return_date = $3
	          WHERE patron_id = $1 AND book_id = $2 AND return_date IS NULL`
	logger.DatabaseCall("CloseBorrowRecord", query, "patron_id", patronID, "book_id", bookID)
	res, err := r.db.ExecContext(ctx, query, patronID, bookID, returnedAt)
	if err != nil {
		logger.DatabaseResult("CloseBorrowRecord", 0, err)
		return false, err
	}
	affected, err := res.RowsAffected()
	logger.DatabaseResult("CloseBorrowRecord", affected, err)
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (r *borrowRepository) ListBorrowedByPatron(ctx context.Context, patronID string) ([]domain.BorrowedBook, error) {
	query := `SELECT br.book_id, b.title, b.author, br.borrow_date, br.due_date, br.due_date < NOW() AS is_overdue
	          FROM borrow_records br
	          JOIN books b ON b.id = br.book_id
	          WHERE br.patron_id = $1 AND br.return_date IS NULL
	          ORDER BY br.due_date`
	rows, err := r.db.QueryContext(ctx, query, patronID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var borrowed []domain.BorrowedBook
	for rows.Next() {
		var bb domain.BorrowedBook
		if err := rows.Scan(&bb.BookID, &bb.Title, &bb.Author, &bb.BorrowDate, &bb.DueDate, &bb.IsOverdue); err != nil {
			return nil, err
		}
		borrowed = append(borrowed, bb)
	}
	return borrowed, rows.Err()
}

func (r *borrowRepository) CountOpenByPatron(ctx context.Context, patronID string) (int32, error) {
	var count int32
	query := `SELECT count(*) FROM borrow_records WHERE patron_id = $1 AND return_date IS NULL`
	err := r.db.QueryRowContext(ctx, query, patronID).Scan(&count)
	return count, err
}

func (r *borrowRepository) ListHistoryByPatron(ctx context.Context, patronID string) ([]domain.BorrowRecord, error) {
	query := `SELECT br.id, br.patron_id, br.book_id, b.title, b.author, br.borrow_date, br.due_date, br.return_date
	          FROM borrow_records br
	          JOIN books b ON b.id = br.book_id
	          WHERE br.patron_id = $1 AND br.return_date IS NOT NULL
	          ORDER BY br.return_date DESC`
	rows, err := r.db.QueryContext(ctx, query, patronID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanBorrowRecords(rows)
}

func (r *borrowRepository) ListOverdueOpenRecords(ctx context.Context) ([]domain.BorrowRecord, error) {
	query := `SELECT br.id, br.patron_id, br.book_id, b.title, b.author, br.borrow_date, br.due_date, br.return_date
	          FROM borrow_records br
	          JOIN books b ON b.id = br.book_id
	          WHERE br.return_date IS NULL AND br.due_date < NOW()
	          ORDER BY br.due_date`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanBorrowRecords(rows)
}

func scanBorrowRecords(rows *sql.Rows) ([]domain.BorrowRecord, error) {
	var records []domain.BorrowRecord
	for rows.Next() {
		var rec domain.BorrowRecord
		if err := rows.Scan(&rec.ID, &rec.PatronID, &rec.BookID, &rec.Title, &rec.Author, &rec.BorrowDate, &rec.DueDate, &rec.ReturnDate); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
