package service

import (
	"context"
	"strings"

	"bookery/internal/cache"
	"bookery/internal/models"
	"bookery/internal/repository"
)

// BookService provides catalog business logic. Reads are public; writes are
// reached only through admin routes.
type BookService struct {
	bookRepo repository.BookRepository
}

// NewBookService returns a new BookService.
func NewBookService(bookRepo repository.BookRepository) *BookService {
	return &BookService{bookRepo: bookRepo}
}

// BookInput is the payload for creating or updating a catalog entry.
type BookInput struct {
	Title       string
	Author      string
	ISBN        string
	Price       float64
	CoverURL    string
	Description string
	PageCount   int
	Genres      []string
}

func (in *BookInput) validate() error {
	in.Title = strings.TrimSpace(in.Title)
	in.Author = strings.TrimSpace(in.Author)
	in.ISBN = strings.TrimSpace(in.ISBN)
	if in.Title == "" {
		return models.NewValidationError("Title is required")
	}
	if in.Author == "" {
		return models.NewValidationError("Author is required")
	}
	if in.ISBN == "" {
		return models.NewValidationError("ISBN is required")
	}
	if in.Price < 0 {
		return models.NewValidationError("Price cannot be negative")
	}
	return nil
}

// Create adds a book to the catalog, creating any missing genres.
func (s *BookService) Create(ctx context.Context, in BookInput) (*models.Book, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	genres, err := s.bookRepo.FindOrCreateGenres(ctx, in.Genres)
	if err != nil {
		return nil, err
	}

	book := &models.Book{
		Title:       in.Title,
		Author:      in.Author,
		ISBN:        in.ISBN,
		Price:       in.Price,
		CoverURL:    in.CoverURL,
		Description: in.Description,
		PageCount:   in.PageCount,
		Genres:      genres,
	}
	if err := s.bookRepo.Create(ctx, book); err != nil {
		return nil, err
	}
	return book, nil
}

// Get returns a book, served from cache when possible.
func (s *BookService) Get(ctx context.Context, id uint) (*models.Book, error) {
	var cached models.Book
	if cache.GetJSON(ctx, cache.BookKey(id), &cached) {
		return &cached, nil
	}

	book, err := s.bookRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	cache.SetJSON(ctx, cache.BookKey(id), book, cache.BookTTL)
	return book, nil
}

// List returns catalog entries matching the filter.
func (s *BookService) List(ctx context.Context, filter repository.BookFilter) ([]models.Book, error) {
	return s.bookRepo.List(ctx, filter)
}

// Update overwrites a book's catalog fields and genre set.
func (s *BookService) Update(ctx context.Context, id uint, in BookInput) (*models.Book, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	book, err := s.bookRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	book.Title = in.Title
	book.Author = in.Author
	book.ISBN = in.ISBN
	book.Price = in.Price
	book.CoverURL = in.CoverURL
	book.Description = in.Description
	book.PageCount = in.PageCount

	if err := s.bookRepo.Update(ctx, book); err != nil {
		return nil, err
	}

	genres, err := s.bookRepo.FindOrCreateGenres(ctx, in.Genres)
	if err != nil {
		return nil, err
	}
	if err := s.bookRepo.ReplaceGenres(ctx, book, genres); err != nil {
		return nil, err
	}
	book.Genres = genres

	cache.InvalidateBook(ctx, id)
	return book, nil
}

// Delete removes a book from the catalog.
func (s *BookService) Delete(ctx context.Context, id uint) error {
	if err := s.bookRepo.Delete(ctx, id); err != nil {
		return err
	}
	cache.InvalidateBook(ctx, id)
	return nil
}
