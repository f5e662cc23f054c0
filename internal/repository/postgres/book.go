package postgres

import (
	"context"
	"database/sql"
	"time"

	"libraria-backend/internal/domain"
	"libraria-backend/internal/logger"
	"libraria-backend/internal/repository"
)

type bookRepository struct {
	db *sql.DB
}

func NewBookRepository(db *sql.DB) repository.BookRepository {
	return &bookRepository{db: db}
}

func (r *bookRepository) Create(ctx context.Context, b *domain.Book) error {
	query := `INSERT INTO books (title, author, isbn, total_copies, available_copies, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	logger.DatabaseCall("CreateBook", query, "isbn", b.ISBN)
	return r.db.QueryRowContext(ctx, query, b.Title, b.Author, b.ISBN, b.TotalCopies, b.AvailableCopies, time.Now()).Scan(&b.ID)
}

func (r *bookRepository) GetByID(ctx context.Context, id int32) (*domain.Book, error) {
	b := &domain.Book{}
	query := `SELECT id, title, author, isbn, total_copies, available_copies, created_on FROM books WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&b.ID, &b.Title, &b.Author, &b.ISBN, &b.TotalCopies, &b.AvailableCopies, &b.CreatedOn)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (r *bookRepository) GetByISBN(ctx context.Context, isbn string) (*domain.Book, error) {
	b := &domain.Book{}
	query := `SELECT id, title, author, isbn, total_copies, available_copies, created_on FROM books WHERE isbn = $1`
	err := r.db.QueryRowContext(ctx, query, isbn).Scan(&b.ID, &b.Title, &b.Author, &b.ISBN, &b.TotalCopies, &b.AvailableCopies, &b.CreatedOn)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (r *bookRepository) List(ctx context.Context) ([]domain.Book, error) {
	query := `SELECT id, title, author, isbn, total_copies, available_copies, created_on FROM books ORDER BY title`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var books []domain.Book
	for rows.Next() {
		var b domain.Book
		if err := rows.Scan(&b.ID, &b.Title, &b.Author, &b.ISBN, &b.TotalCopies, &b.AvailableCopies, &b.CreatedOn); err != nil {
			return nil, err
		}
		books = append(books, b)
	}
	return books, rows.Err()
}

func (r *bookRepository) AdjustAvailability(ctx context.Context, bookID, delta int32) (bool, error) {
	// The WHERE clause keeps available_copies inside [0, total_copies], so a
	// borrow racing on the last copy updates zero rows instead of going
	// negative.
	query := `UPDATE books
	          SET available_copies = available_copies + $2
	          WHERE id = $1
	            AND available_copies + $2 >= 0
	            AND available_copies + $2 <= total_copies`
	logger.DatabaseCall("AdjustAvailability", query, "book_id", bookID, "delta", delta)
	res, err := r.db.ExecContext(ctx, query, bookID, delta)
	if err != nil {
		logger.DatabaseResult("AdjustAvailability", 0, err)
		return false, err
	}
	affected, err := res.RowsAffected()
	logger.DatabaseResult("AdjustAvailability", affected, err)
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}
