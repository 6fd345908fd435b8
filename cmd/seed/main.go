// Command seed runs the database seeder for Bookery.
package main

import (
	"flag"
	"log"

	"bookery/internal/config"
	"bookery/internal/database"
	"bookery/internal/seed"
)

func main() {
	numUsers := flag.Int("users", 50, "Number of users to create")
	numBooks := flag.Int("books", 200, "Number of books to create")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	flag.Parse()

	log.Println("🌱 Database Seeder")
	log.Println("==================")

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := seed.Seed(db, seed.Options{
		NumUsers:    *numUsers,
		NumBooks:    *numBooks,
		ShouldClean: *shouldClean,
	}); err != nil {
		log.Fatalf("❌ Seeding failed: %v", err)
	}

	log.Println("✨ All done! Your database is now populated with test data.")
	log.Println("📧 All test users have the password: password123")
}
