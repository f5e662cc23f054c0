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

func TestCatalogService_AddBook(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		bookRepo := new(MockBookRepo)
		svc := service.NewCatalogService(bookRepo)

		bookRepo.On("GetByISBN", ctx, "7777567890140").Return(nil, nil)
		bookRepo.On("Create", ctx, mock.AnythingOfType("*domain.Book")).Return(nil)

		ok, msg := svc.AddBook(ctx, "Fine Book", "Good Author", "7777567890140", 9)
		assert.True(t, ok)
		assert.Contains(t, strings.ToLower(msg), "successfully added")

		// available_copies starts equal to total_copies
		created := bookRepo.Calls[1].Arguments.Get(1).(*domain.Book)
		assert.Equal(t, int32(9), created.TotalCopies)
		assert.Equal(t, int32(9), created.AvailableCopies)
	})

	t.Run("Duplicate ISBN", func(t *testing.T) {
		bookRepo := new(MockBookRepo)
		svc := service.NewCatalogService(bookRepo)

		existing := &domain.Book{ID: 1, Title: "Fine Book", ISBN: "7777567890140"}
		bookRepo.On("GetByISBN", ctx, "7777567890140").Return(existing, nil)

		ok, msg := svc.AddBook(ctx, "Fine Book", "Good Author", "7777567890140", 9)
		assert.False(t, ok)
		assert.Contains(t, msg, "already exists")
		bookRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Validation failures skip storage", func(t *testing.T) {
		bookRepo := new(MockBookRepo)
		svc := service.NewCatalogService(bookRepo)

		cases := []struct {
			name        string
			title       string
			author      string
			isbn        string
			copies      int32
			wantMessage string
		}{
			{"empty title", "", "Author", "1234567890123", 3, "Title is required"},
			{"title too long", strings.Repeat("a", 201), "Author", "1234567890123", 3, "200 characters"},
			{"whitespace author", "Title", "   ", "1234567890123", 3, "Author is required"},
			{"invalid isbn", "Title", "Author", "invalid-isbn", 5, "Invalid ISBN"},
			{"zero copies", "Title", "Author", "1234567890216", 0, "positive integer"},
			{"negative copies", "Title", "Author", "1234567890216", -1, "positive integer"},
		}
		for _, tc := range cases {
			ok, msg := svc.AddBook(ctx, tc.title, tc.author, tc.isbn, tc.copies)
			assert.False(t, ok, tc.name)
			assert.Contains(t, msg, tc.wantMessage, tc.name)
		}
		bookRepo.AssertNotCalled(t, "GetByISBN", mock.Anything, mock.Anything)
	})

	t.Run("Title at maximum length boundary", func(t *testing.T) {
		bookRepo := new(MockBookRepo)
		svc := service.NewCatalogService(bookRepo)

		bookRepo.On("GetByISBN", ctx, "1234567890123").Return(nil, nil)
		bookRepo.On("Create", ctx, mock.AnythingOfType("*domain.Book")).Return(nil)

		ok, _ := svc.AddBook(ctx, strings.Repeat("a", 200), "Test Author", "1234567890123", 5)
		assert.True(t, ok)
	})
}

func TestCatalogService_ListBooks(t *testing.T) {
	ctx := context.Background()

	t.Run("Returns catalog", func(t *testing.T) {
		bookRepo := new(MockBookRepo)
		svc := service.NewCatalogService(bookRepo)

		books := []domain.Book{{ID: 1, Title: "Python"}, {ID: 2, Title: "Go"}}
		bookRepo.On("List", ctx).Return(books, nil)

		assert.Len(t, svc.ListBooks(ctx), 2)
	})

	t.Run("Storage failure degrades to empty", func(t *testing.T) {
		bookRepo := new(MockBookRepo)
		svc := service.NewCatalogService(bookRepo)

		bookRepo.On("List", ctx).Return(nil, errors.New("connection refused"))

		assert.Empty(t, svc.ListBooks(ctx))
	})
}

func TestCatalogService_SearchBooks(t *testing.T) {
	ctx := context.Background()
	catalog := []domain.Book{
		{ID: 1, Title: "Python Basics", Author: "Alice Smith", ISBN: "1111111111111"},
		{ID: 2, Title: "Go in Practice", Author: "Bob Jones", ISBN: "2222222222222"},
	}

	newSvc := func() service.CatalogService {
		bookRepo := new(MockBookRepo)
		bookRepo.On("List", mock.Anything).Return(catalog, nil)
		return service.NewCatalogService(bookRepo)
	}

	t.Run("Empty term matches nothing", func(t *testing.T) {
		bookRepo := new(MockBookRepo)
		svc := service.NewCatalogService(bookRepo)

		assert.Empty(t, svc.SearchBooks(ctx, "", "title"))
		// No storage call for an empty term
		bookRepo.AssertNotCalled(t, "List", mock.Anything)
	})

	t.Run("Title search is case-insensitive substring", func(t *testing.T) {
		results := newSvc().SearchBooks(ctx, "python", "title")
		assert.Len(t, results, 1)
		assert.Equal(t, "Python Basics", results[0].Title)
	})

	t.Run("Author search is case-insensitive substring", func(t *testing.T) {
		results := newSvc().SearchBooks(ctx, "alice", "author")
		assert.Len(t, results, 1)
	})

	t.Run("ISBN search is exact match", func(t *testing.T) {
		assert.Len(t, newSvc().SearchBooks(ctx, "2222222222222", "isbn"), 1)
		assert.Empty(t, newSvc().SearchBooks(ctx, "2222", "isbn"))
	})

	t.Run("Unknown field matches nothing", func(t *testing.T) {
		assert.Empty(t, newSvc().SearchBooks(ctx, "python", "publisher"))
	})

	t.Run("No match", func(t *testing.T) {
		assert.Empty(t, newSvc().SearchBooks(ctx, "zzz", "title"))
	})
}
