package service

import (
	"context"
	"fmt"
	"strings"

	"libraria-backend/internal/domain"
	"libraria-backend/internal/logger"
	"libraria-backend/internal/repository"
	"libraria-backend/internal/utils"
)

type catalogService struct {
	bookRepo repository.BookRepository
}

func NewCatalogService(bookRepo repository.BookRepository) CatalogService {
	return &catalogService{bookRepo: bookRepo}
}

func (s *catalogService) AddBook(ctx context.Context, title, author, isbn string, totalCopies int32) (bool, string) {
	if err := utils.ValidateTitle(title); err != nil {
		return false, err.Error()
	}
	if err := utils.ValidateAuthor(author); err != nil {
		return false, err.Error()
	}
	if err := utils.ValidateISBN(isbn); err != nil {
		return false, err.Error()
	}
	if err := utils.ValidateTotalCopies(totalCopies); err != nil {
		return false, err.Error()
	}

	existing, err := s.bookRepo.GetByISBN(ctx, isbn)
	if err != nil {
		logger.Error("Failed to check for existing ISBN", "isbn", isbn, "error", err)
		return false, "Database error while checking for duplicate ISBN"
	}
	if existing != nil {
		return false, fmt.Sprintf("A book with ISBN %s already exists in the catalog", isbn)
	}

	book := &domain.Book{
		Title:           strings.TrimSpace(title),
		Author:          strings.TrimSpace(author),
		ISBN:            isbn,
		TotalCopies:     totalCopies,
		AvailableCopies: totalCopies,
	}
	if err := s.bookRepo.Create(ctx, book); err != nil {
		logger.Error("Failed to insert book", "isbn", isbn, "error", err)
		return false, "Database error while adding the book"
	}

	return true, fmt.Sprintf("Book %q successfully added to the catalog", book.Title)
}

// ListBooks degrades to an empty catalog on storage failure so the listing
// surface never propagates an error.
func (s *catalogService) ListBooks(ctx context.Context) []domain.Book {
	books, err := s.bookRepo.List(ctx)
	if err != nil {
		logger.Error("Failed to list books", "error", err)
		return []domain.Book{}
	}
	if books == nil {
		return []domain.Book{}
	}
	return books
}

// SearchBooks matches title and author case-insensitively as substrings and
// ISBN by exact equality. An empty term or unknown field matches nothing.
func (s *catalogService) SearchBooks(ctx context.Context, term, field string) []domain.Book {
	if term == "" {
		return []domain.Book{}
	}

	results := []domain.Book{}
	for _, book := range s.ListBooks(ctx) {
		var match bool
		switch field {
		case "title":
			match = strings.Contains(strings.ToLower(book.Title), strings.ToLower(term))
		case "author":
			match = strings.Contains(strings.ToLower(book.Author), strings.ToLower(term))
		case "isbn":
			match = book.ISBN == term
		}
		if match {
			results = append(results, book)
		}
	}
	return results
}
