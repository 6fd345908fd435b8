package seed

import (
	"fmt"
	"log"

	"bookery/internal/models"

	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers    int
	NumBooks    int
	ShouldClean bool
}

// Seed populates the database with test data: users, a book catalog, and a
// mesh of follows, ratings, reviews, comments, and forum threads on top.
func Seed(db *gorm.DB, opts Options) error {
	log.Printf("🌱 Starting database seeding with %d users and %d books...", opts.NumUsers, opts.NumBooks)

	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			log.Println("⚠️  Warning: Could not clear all existing data, but continuing anyway...")
		}
	}

	f := NewFactory(db)

	users, err := createUsers(f, opts.NumUsers)
	if err != nil {
		return fmt.Errorf("failed to create users: %w", err)
	}
	log.Printf("✓ %d test users created", len(users))

	books, err := createBooks(f, opts.NumBooks)
	if err != nil {
		return fmt.Errorf("failed to create books: %w", err)
	}
	log.Printf("✓ %d books created", len(books))

	if err := createSocialMesh(f, users); err != nil {
		return fmt.Errorf("failed to create follows: %w", err)
	}

	reviews, err := createShelves(f, users, books)
	if err != nil {
		return fmt.Errorf("failed to create shelves: %w", err)
	}
	log.Printf("✓ %d reviews created", len(reviews))

	if err := createDiscussion(f, users, reviews); err != nil {
		return fmt.Errorf("failed to create discussion: %w", err)
	}

	log.Println("🎉 Database seeding completed successfully!")
	return nil
}

func clearData(db *gorm.DB) error {
	log.Println("🗑️  Clearing existing data...")
	sql := `TRUNCATE TABLE alerts, order_items, orders, cart_items, messages,
		blocks, follows, thread_follows, thread_comments, threads,
		review_likes, review_comments, reviews, ratings, favourite_books,
		book_genres, genres, books, users RESTART IDENTITY CASCADE;`
	return db.Exec(sql).Error
}

func createUsers(f *Factory, count int) ([]*models.User, error) {
	users := make([]*models.User, 0, count+1)

	// Fixed admin account for local development.
	admin, err := f.CreateUser(func(u *models.User) {
		u.Name = "admin"
		u.Email = "admin@bookery.dev"
		u.IsAdmin = true
	})
	if err != nil {
		return nil, err
	}
	users = append(users, admin)

	for i := 0; i < count; i++ {
		user, err := f.CreateUser()
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}

func createBooks(f *Factory, count int) ([]*models.Book, error) {
	books := make([]*models.Book, 0, count)
	for i := 0; i < count; i++ {
		book, err := f.CreateBook()
		if err != nil {
			return nil, err
		}
		books = append(books, book)
	}
	return books, nil
}

// createSocialMesh gives every user a handful of follows so alert fan-out
// has edges to walk.
func createSocialMesh(f *Factory, users []*models.User) error {
	if len(users) < 2 {
		return nil
	}
	for _, user := range users {
		seen := map[uint]bool{user.ID: true}
		for n := 1 + f.r.Intn(4); n > 0; n-- {
			target := users[f.r.Intn(len(users))]
			if seen[target.ID] {
				continue
			}
			seen[target.ID] = true
			if err := f.CreateFollow(user, target); err != nil {
				return err
			}
		}
	}
	return nil
}

// createShelves gives each user ratings, favourites, and reviews over a
// random slice of the catalog.
func createShelves(f *Factory, users []*models.User, books []*models.Book) ([]*models.Review, error) {
	if len(books) == 0 {
		return nil, nil
	}

	var reviews []*models.Review
	for _, user := range users {
		seen := map[uint]bool{}
		for n := 2 + f.r.Intn(5); n > 0; n-- {
			book := books[f.r.Intn(len(books))]
			if seen[book.ID] {
				continue
			}
			seen[book.ID] = true

			if _, err := f.CreateRating(user, book); err != nil {
				return nil, err
			}
			if f.r.Intn(3) == 0 {
				if err := f.CreateFavourite(user, book); err != nil {
					return nil, err
				}
			}
			if f.r.Intn(2) == 0 {
				review, err := f.CreateReview(user, book)
				if err != nil {
					return nil, err
				}
				reviews = append(reviews, review)
			}
		}
	}
	return reviews, nil
}

// createDiscussion adds comments under reviews plus a forum layer of
// threads and thread comments.
func createDiscussion(f *Factory, users []*models.User, reviews []*models.Review) error {
	for _, review := range reviews {
		for n := f.r.Intn(3); n > 0; n-- {
			commenter := users[f.r.Intn(len(users))]
			if _, err := f.CreateReviewComment(commenter, review); err != nil {
				return err
			}
		}
	}

	threadCount := len(users) / 2
	for i := 0; i < threadCount; i++ {
		author := users[f.r.Intn(len(users))]
		thread, err := f.CreateThread(author)
		if err != nil {
			return err
		}
		for n := f.r.Intn(4); n > 0; n-- {
			commenter := users[f.r.Intn(len(users))]
			if _, err := f.CreateThreadComment(commenter, thread); err != nil {
				return err
			}
		}
	}
	return nil
}
