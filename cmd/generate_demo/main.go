// Command generate_demo creates a demo catalog with public domain books.
// Usage: go run cmd/generate_demo/main.go [-db path/to/demo.db]
package main

import (
	"flag"
	"log"
	"os"
	"time"

	"github.com/openshelf/catalog/internal/database"
	"github.com/openshelf/catalog/internal/entities"
)

const defaultDemoDatabasePath = "./demo/demo.db"

type demoBook struct {
	Title           string
	ISBN            string
	PublicationYear int
	Summary         string
	Rating          float64
}

type demoAuthor struct {
	Name        string
	BirthDate   time.Time
	DateOfDeath *time.Time
	Books       []demoBook
}

func main() {
	dbPath := flag.String("db", defaultDemoDatabasePath, "path to the demo database file")
	flag.Parse()

	log.Printf("Generating demo catalog at %s...", *dbPath)

	// Delete existing demo database to start fresh
	if err := os.Remove(*dbPath); err != nil && !os.IsNotExist(err) {
		log.Fatalf("Failed to remove existing demo database: %v", err)
	}

	db, err := database.NewDatabase(*dbPath)
	if err != nil {
		log.Fatalf("Failed to create database: %v", err)
	}
	defer db.Close()

	for _, cfg := range demoAuthors() {
		author := &entities.Author{
			Name:      cfg.Name,
			BirthDate: entities.NewDate(cfg.BirthDate),
		}
		if cfg.DateOfDeath != nil {
			death := entities.NewDate(*cfg.DateOfDeath)
			author.DateOfDeath = &death
		}

		if err := db.CreateAuthor(author); err != nil {
			log.Printf("Failed to save author %s: %v", cfg.Name, err)
			continue
		}

		for _, b := range cfg.Books {
			rating := b.Rating
			book := &entities.Book{
				Title:           b.Title,
				ISBN:            b.ISBN,
				AuthorID:        author.ID,
				PublicationYear: b.PublicationYear,
				Summary:         b.Summary,
				Rating:          &rating,
			}
			if err := db.CreateBook(book); err != nil {
				log.Printf("Failed to save book %s: %v", b.Title, err)
				continue
			}
		}
		log.Printf("Saved: %s (%d books)", cfg.Name, len(cfg.Books))
	}

	log.Println("Demo catalog generated successfully!")
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func datePtr(year int, month time.Month, day int) *time.Time {
	d := date(year, month, day)
	return &d
}

func demoAuthors() []demoAuthor {
	return []demoAuthor{
		{
			Name:        "Leo Tolstoy",
			BirthDate:   date(1828, time.September, 9),
			DateOfDeath: datePtr(1910, time.November, 20),
			Books: []demoBook{
				{
					Title:           "War and Peace",
					ISBN:            "9780199232765",
					PublicationYear: 1869,
					Summary:         "Napoleon's invasion of Russia through the lives of five aristocratic families.",
					Rating:          4.6,
				},
				{
					Title:           "Anna Karenina",
					ISBN:            "9780143035008",
					PublicationYear: 1878,
					Summary:         "A married aristocrat's affair with Count Vronsky and its unraveling.",
					Rating:          4.7,
				},
			},
		},
		{
			Name:        "Jane Austen",
			BirthDate:   date(1775, time.December, 16),
			DateOfDeath: datePtr(1817, time.July, 18),
			Books: []demoBook{
				{
					Title:           "Pride and Prejudice",
					ISBN:            "9780141439518",
					PublicationYear: 1813,
					Summary:         "Elizabeth Bennet navigates manners, upbringing and marriage in Georgian England.",
					Rating:          4.8,
				},
				{
					Title:           "Emma",
					ISBN:            "9780141439587",
					PublicationYear: 1815,
					Summary:         "A well-meaning but misguided matchmaker in the village of Highbury.",
					Rating:          4.2,
				},
			},
		},
		{
			Name:        "Mary Shelley",
			BirthDate:   date(1797, time.August, 30),
			DateOfDeath: datePtr(1851, time.February, 1),
			Books: []demoBook{
				{
					Title:           "Frankenstein",
					ISBN:            "9780141439471",
					PublicationYear: 1818,
					Summary:         "A young scientist creates a sapient creature in an unorthodox experiment.",
					Rating:          4.3,
				},
			},
		},
		{
			Name:        "Fyodor Dostoevsky",
			BirthDate:   date(1821, time.November, 11),
			DateOfDeath: datePtr(1881, time.February, 9),
			Books: []demoBook{
				{
					Title:           "Crime and Punishment",
					ISBN:            "9780143058142",
					PublicationYear: 1866,
					Summary:         "A destitute student commits murder and wrestles with guilt and redemption.",
					Rating:          4.5,
				},
			},
		},
	}
}
