package repository

import (
	"context"
	"errors"

	"bookery/internal/models"

	"gorm.io/gorm"
)

// BookFilter narrows catalog listings.
type BookFilter struct {
	Genre  string
	Search string
	Limit  int
	Offset int
}

// BookRepository defines the interface for catalog data operations
type BookRepository interface {
	Create(ctx context.Context, book *models.Book) error
	GetByID(ctx context.Context, id uint) (*models.Book, error)
	Update(ctx context.Context, book *models.Book) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, filter BookFilter) ([]models.Book, error)
	FindOrCreateGenres(ctx context.Context, names []string) ([]models.Genre, error)
	ReplaceGenres(ctx context.Context, book *models.Book, genres []models.Genre) error
}

type bookRepository struct {
	db *gorm.DB
}

// NewBookRepository creates a new book repository
func NewBookRepository(db *gorm.DB) BookRepository {
	return &bookRepository{db: db}
}

func (r *bookRepository) Create(ctx context.Context, book *models.Book) error {
	if err := r.db.WithContext(ctx).Create(book).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.NewConflictError("A book with this ISBN already exists")
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *bookRepository) GetByID(ctx context.Context, id uint) (*models.Book, error) {
	var book models.Book
	if err := r.db.WithContext(ctx).Preload("Genres").First(&book, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Book", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &book, nil
}

func (r *bookRepository) Update(ctx context.Context, book *models.Book) error {
	if err := r.db.WithContext(ctx).Save(book).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.NewConflictError("A book with this ISBN already exists")
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *bookRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Book{}, id)
	if result.Error != nil {
		return models.NewInternalError(result.Error)
	}
	if result.RowsAffected == 0 {
		return models.NewNotFoundError("Book", id)
	}
	return nil
}

func (r *bookRepository) List(ctx context.Context, filter BookFilter) ([]models.Book, error) {
	query := r.db.WithContext(ctx).Model(&models.Book{}).Preload("Genres")

	if filter.Genre != "" {
		query = query.
			Joins("JOIN book_genres bg ON bg.book_id = books.id").
			Joins("JOIN genres g ON g.id = bg.genre_id").
			Where("g.name = ?", filter.Genre)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		// LOWER + LIKE instead of ILIKE so the same query runs on sqlite.
		query = query.Where("LOWER(books.title) LIKE LOWER(?) OR LOWER(books.author) LIKE LOWER(?)", like, like)
	}

	var books []models.Book
	if err := query.Limit(filter.Limit).Offset(filter.Offset).Order("books.id").Find(&books).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return books, nil
}

func (r *bookRepository) FindOrCreateGenres(ctx context.Context, names []string) ([]models.Genre, error) {
	genres := make([]models.Genre, 0, len(names))
	for _, name := range names {
		var genre models.Genre
		if err := r.db.WithContext(ctx).Where(models.Genre{Name: name}).FirstOrCreate(&genre).Error; err != nil {
			return nil, models.NewInternalError(err)
		}
		genres = append(genres, genre)
	}
	return genres, nil
}

func (r *bookRepository) ReplaceGenres(ctx context.Context, book *models.Book, genres []models.Genre) error {
	if err := r.db.WithContext(ctx).Model(book).Association("Genres").Replace(genres); err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
