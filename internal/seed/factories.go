// Package seed provides helpers to create test and demo data for the
// application database. These helpers are intended for development and
// testing only.
package seed

import (
	"fmt"
	"math/rand"
	"time"

	"bookery/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Factory builds domain entities and persists them to the database.
// It is a thin helper used by the seeder and tests.
type Factory struct {
	db *gorm.DB
	r  *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	//nolint:gosec // Weak random number generator is fine for seeding
	return &Factory{db: db, r: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// CreateUser constructs and persists a sample `models.User`.
// Optional override functions may modify the generated user before saving.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	user := &models.User{
		Name:   gofakeit.Username() + fmt.Sprintf("%d", gofakeit.Number(100, 999)),
		Email:  gofakeit.Email(),
		Bio:    gofakeit.Sentence(10),
		Avatar: fmt.Sprintf("https://i.pravatar.cc/150?u=%s", gofakeit.UUID()),
		Title:  gofakeit.JobTitle(),
	}

	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	user.Password = string(hashedPassword)

	for _, override := range overrides {
		override(user)
	}

	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CreateBook constructs and persists a sample `models.Book` with one to
// three genres attached.
func (f *Factory) CreateBook(overrides ...func(*models.Book)) (*models.Book, error) {
	info := gofakeit.Book()
	book := &models.Book{
		Title:       info.Title,
		Author:      info.Author,
		ISBN:        gofakeit.DigitN(13),
		Price:       float64(gofakeit.Number(499, 4999)) / 100,
		CoverURL:    fmt.Sprintf("https://picsum.photos/seed/%s/400/600", gofakeit.UUID()),
		Description: gofakeit.Paragraph(1, 3, 8, "\n"),
		PageCount:   gofakeit.Number(80, 1200),
	}

	published := gofakeit.DateRange(
		time.Date(1950, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Now(),
	)
	book.PublishedAt = &published

	genres := map[string]bool{info.Genre: true}
	for len(genres) < 1+f.r.Intn(3) {
		genres[gofakeit.BookGenre()] = true
	}
	for name := range genres {
		var genre models.Genre
		if err := f.db.Where(models.Genre{Name: name}).FirstOrCreate(&genre).Error; err != nil {
			return nil, err
		}
		book.Genres = append(book.Genres, genre)
	}

	for _, override := range overrides {
		override(book)
	}

	if err := f.db.Create(book).Error; err != nil {
		return nil, err
	}
	return book, nil
}

// CreateRating persists a star rating and shelf status from `user` on `book`.
func (f *Factory) CreateRating(user *models.User, book *models.Book) (*models.Rating, error) {
	stars := 1 + f.r.Intn(5)
	statuses := []models.ReadingStatus{
		models.StatusCompleted,
		models.StatusWantToRead,
		models.StatusCurrentlyReading,
		models.StatusDNF,
	}
	rating := &models.Rating{
		UserID: user.ID,
		BookID: book.ID,
		Stars:  &stars,
		Status: statuses[f.r.Intn(len(statuses))],
	}
	if err := f.db.Create(rating).Error; err != nil {
		return nil, err
	}
	return rating, nil
}

// CreateReview constructs and persists a review of `book` by `user`.
func (f *Factory) CreateReview(user *models.User, book *models.Book, overrides ...func(*models.Review)) (*models.Review, error) {
	review := &models.Review{
		UserID:  user.ID,
		BookID:  book.ID,
		Content: gofakeit.Paragraph(1, 4, 10, "\n"),
	}

	for _, override := range overrides {
		override(review)
	}

	if err := f.db.Create(review).Error; err != nil {
		return nil, err
	}
	return review, nil
}

// CreateReviewComment persists a comment on the provided review authored by
// the provided user.
func (f *Factory) CreateReviewComment(user *models.User, review *models.Review) (*models.ReviewComment, error) {
	comment := &models.ReviewComment{
		ReviewID: review.ID,
		UserID:   user.ID,
		Content:  gofakeit.Sentence(12),
	}
	if err := f.db.Create(comment).Error; err != nil {
		return nil, err
	}
	return comment, nil
}

// CreateThread constructs and persists a forum thread started by `user`,
// including the author's automatic follow row.
func (f *Factory) CreateThread(user *models.User, overrides ...func(*models.Thread)) (*models.Thread, error) {
	thread := &models.Thread{
		UserID:  user.ID,
		Title:   gofakeit.Sentence(6),
		Content: gofakeit.Paragraph(1, 3, 8, "\n"),
	}

	for _, override := range overrides {
		override(thread)
	}

	err := f.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(thread).Error; err != nil {
			return err
		}
		return tx.Create(&models.ThreadFollow{ThreadID: thread.ID, UserID: user.ID}).Error
	})
	if err != nil {
		return nil, err
	}
	return thread, nil
}

// CreateThreadComment persists a comment on the provided thread.
func (f *Factory) CreateThreadComment(user *models.User, thread *models.Thread) (*models.ThreadComment, error) {
	comment := &models.ThreadComment{
		ThreadID: thread.ID,
		UserID:   user.ID,
		Content:  gofakeit.Sentence(12),
	}
	if err := f.db.Create(comment).Error; err != nil {
		return nil, err
	}
	return comment, nil
}

// CreateFollow persists a follow edge from `follower` to `following`.
func (f *Factory) CreateFollow(follower, following *models.User) error {
	return f.db.Create(&models.Follow{
		FollowerID:  follower.ID,
		FollowingID: following.ID,
	}).Error
}

// CreateFavourite persists a favourite-book row for `user` on `book`.
func (f *Factory) CreateFavourite(user *models.User, book *models.Book) error {
	return f.db.Create(&models.FavouriteBook{
		UserID: user.ID,
		BookID: book.ID,
	}).Error
}
