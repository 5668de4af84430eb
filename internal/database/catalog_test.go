package database

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openshelf/catalog/internal/entities"
)

// setupTestDB creates a fresh test database
func setupTestDB(t *testing.T) (*Database, func()) {
	t.Helper()
	dbPath := "./test_" + strings.ReplaceAll(t.Name(), "/", "_") + ".db"
	db, err := NewDatabase(dbPath)
	require.NoError(t, err)

	cleanup := func() {
		db.Close()
		os.Remove(dbPath)
	}
	return db, cleanup
}

func date(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

func mustCreateAuthor(t *testing.T, db *Database, name string, birth time.Time) *entities.Author {
	t.Helper()
	author := &entities.Author{
		Name:      name,
		BirthDate: entities.NewDate(birth),
	}
	require.NoError(t, db.CreateAuthor(author))
	require.NotZero(t, author.ID)
	return author
}

func mustCreateBook(t *testing.T, db *Database, title, isbn string, authorID uint, year int, rating *float64) *entities.Book {
	t.Helper()
	book := &entities.Book{
		Title:           title,
		ISBN:            isbn,
		AuthorID:        authorID,
		PublicationYear: year,
		Rating:          rating,
	}
	require.NoError(t, db.CreateBook(book))
	require.NotZero(t, book.ID)
	return book
}

func ratingOf(v float64) *float64 {
	return &v
}

func TestCreateAuthor(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	t.Run("assigns a fresh id", func(t *testing.T) {
		first := mustCreateAuthor(t, db, "Leo Tolstoy", date(1828, 9, 9))
		second := mustCreateAuthor(t, db, "Jane Austen", date(1775, 12, 16))
		assert.NotEqual(t, first.ID, second.ID)
	})

	t.Run("rejects duplicate name and birth date", func(t *testing.T) {
		dup := &entities.Author{
			Name:      "Leo Tolstoy",
			BirthDate: entities.NewDate(date(1828, 9, 9)),
		}
		err := db.CreateAuthor(dup)
		assert.ErrorIs(t, err, entities.ErrDuplicateAuthor)

		var count int64
		require.NoError(t, db.DB.Model(&entities.Author{}).Where("name = ?", "Leo Tolstoy").Count(&count).Error)
		assert.Equal(t, int64(1), count)
	})

	t.Run("allows same name with different birth date", func(t *testing.T) {
		namesake := &entities.Author{
			Name:      "Leo Tolstoy",
			BirthDate: entities.NewDate(date(1900, 1, 1)),
		}
		assert.NoError(t, db.CreateAuthor(namesake))
	})

	t.Run("stores optional date of death", func(t *testing.T) {
		death := entities.NewDate(date(1910, 11, 20))
		author := &entities.Author{
			Name:        "Anton Chekhov",
			BirthDate:   entities.NewDate(date(1860, 1, 29)),
			DateOfDeath: &death,
		}
		require.NoError(t, db.CreateAuthor(author))

		var fetched entities.Author
		require.NoError(t, db.DB.First(&fetched, author.ID).Error)
		assert.NotNil(t, fetched.DateOfDeath)
	})
}

func TestCreateBook(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	author := mustCreateAuthor(t, db, "Leo Tolstoy", date(1828, 9, 9))

	t.Run("derives the cover URL from the ISBN", func(t *testing.T) {
		book := mustCreateBook(t, db, "War and Peace", "001", author.ID, 1869, nil)
		assert.Equal(t, "https://covers.openlibrary.org/b/isbn/001-L.jpg", book.ImgURL)
	})

	t.Run("rejects duplicate ISBN", func(t *testing.T) {
		dup := &entities.Book{
			Title:           "Another Edition",
			ISBN:            "001",
			AuthorID:        author.ID,
			PublicationYear: 1870,
		}
		err := db.CreateBook(dup)
		assert.ErrorIs(t, err, entities.ErrDuplicateISBN)

		count, err := db.CountBooks()
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})

	t.Run("rejects unknown author", func(t *testing.T) {
		book := &entities.Book{
			Title:           "Ghost Written",
			ISBN:            "002",
			AuthorID:        9999,
			PublicationYear: 2000,
		}
		err := db.CreateBook(book)
		assert.ErrorIs(t, err, entities.ErrAuthorNotFound)

		count, err := db.CountBooks()
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})
}

func TestGetBookByID(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	author := mustCreateAuthor(t, db, "Jane Austen", date(1775, 12, 16))
	book := mustCreateBook(t, db, "Emma", "101", author.ID, 1815, nil)

	t.Run("returns the book with its author", func(t *testing.T) {
		fetched, err := db.GetBookByID(book.ID)
		require.NoError(t, err)
		assert.Equal(t, "Emma", fetched.Title)
		assert.Equal(t, "Jane Austen", fetched.Author.Name)
	})

	t.Run("reports missing books", func(t *testing.T) {
		_, err := db.GetBookByID(9999)
		assert.ErrorIs(t, err, entities.ErrBookNotFound)
	})
}

func TestDeleteBook(t *testing.T) {
	t.Run("removes the author with their last book", func(t *testing.T) {
		db, cleanup := setupTestDB(t)
		defer cleanup()

		author := mustCreateAuthor(t, db, "Leo Tolstoy", date(1828, 9, 9))
		book := mustCreateBook(t, db, "War and Peace", "001", author.ID, 1869, nil)

		authorRemoved, err := db.DeleteBook(book.ID)
		require.NoError(t, err)
		assert.True(t, authorRemoved)

		var bookCount, authorCount int64
		require.NoError(t, db.DB.Model(&entities.Book{}).Count(&bookCount).Error)
		require.NoError(t, db.DB.Model(&entities.Author{}).Count(&authorCount).Error)
		assert.Zero(t, bookCount)
		assert.Zero(t, authorCount)
	})

	t.Run("keeps the author while other books remain", func(t *testing.T) {
		db, cleanup := setupTestDB(t)
		defer cleanup()

		author := mustCreateAuthor(t, db, "Leo Tolstoy", date(1828, 9, 9))
		first := mustCreateBook(t, db, "War and Peace", "001", author.ID, 1869, nil)
		mustCreateBook(t, db, "Anna Karenina", "002", author.ID, 1878, nil)

		authorRemoved, err := db.DeleteBook(first.ID)
		require.NoError(t, err)
		assert.False(t, authorRemoved)

		var authorCount int64
		require.NoError(t, db.DB.Model(&entities.Author{}).Count(&authorCount).Error)
		assert.Equal(t, int64(1), authorCount)

		remaining, err := db.ListBooks(entities.SortByTitle)
		require.NoError(t, err)
		require.Len(t, remaining, 1)
		assert.Equal(t, "Anna Karenina", remaining[0].Title)
	})

	t.Run("reports missing books", func(t *testing.T) {
		db, cleanup := setupTestDB(t)
		defer cleanup()

		_, err := db.DeleteBook(9999)
		assert.ErrorIs(t, err, entities.ErrBookNotFound)
	})
}

func TestListBooks(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	tolstoy := mustCreateAuthor(t, db, "Leo Tolstoy", date(1828, 9, 9))
	austen := mustCreateAuthor(t, db, "Jane Austen", date(1775, 12, 16))

	mustCreateBook(t, db, "War and Peace", "001", tolstoy.ID, 1869, ratingOf(4.5))
	mustCreateBook(t, db, "Anna Karenina", "002", tolstoy.ID, 1878, ratingOf(4.9))
	mustCreateBook(t, db, "Emma", "003", austen.ID, 1815, ratingOf(4.1))

	t.Run("orders by title by default", func(t *testing.T) {
		books, err := db.ListBooks(entities.SortByTitle)
		require.NoError(t, err)
		require.Len(t, books, 3)
		assert.Equal(t, "Anna Karenina", books[0].Title)
		assert.Equal(t, "Emma", books[1].Title)
		assert.Equal(t, "War and Peace", books[2].Title)
	})

	t.Run("unknown sort key falls back to title", func(t *testing.T) {
		books, err := db.ListBooks(entities.ParseSortKey("banana"))
		require.NoError(t, err)
		require.Len(t, books, 3)
		assert.Equal(t, "Anna Karenina", books[0].Title)
	})

	t.Run("orders by rating descending", func(t *testing.T) {
		books, err := db.ListBooks(entities.SortByRating)
		require.NoError(t, err)
		require.Len(t, books, 3)
		for i := 1; i < len(books); i++ {
			require.NotNil(t, books[i].Rating)
			assert.GreaterOrEqual(t, *books[i-1].Rating, *books[i].Rating)
		}
	})

	t.Run("orders by publication year ascending", func(t *testing.T) {
		books, err := db.ListBooks(entities.SortByPublicationYear)
		require.NoError(t, err)
		require.Len(t, books, 3)
		assert.Equal(t, 1815, books[0].PublicationYear)
		assert.Equal(t, 1878, books[2].PublicationYear)
	})

	t.Run("orders by author name", func(t *testing.T) {
		books, err := db.ListBooks(entities.SortByAuthor)
		require.NoError(t, err)
		require.Len(t, books, 3)
		assert.Equal(t, "Jane Austen", books[0].Author.Name)
		assert.Equal(t, "Leo Tolstoy", books[1].Author.Name)
		assert.Equal(t, "Leo Tolstoy", books[2].Author.Name)
	})
}

func TestSearchBooks(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	author := mustCreateAuthor(t, db, "Michael Morpurgo", date(1943, 10, 5))
	mustCreateBook(t, db, "War and Peace", "001", author.ID, 1869, nil)
	mustCreateBook(t, db, "Warhorse", "002", author.ID, 1982, nil)
	mustCreateBook(t, db, "Peace", "003", author.ID, 2000, nil)

	t.Run("matches substrings case-insensitively", func(t *testing.T) {
		books, err := db.SearchBooks("war")
		require.NoError(t, err)
		require.Len(t, books, 2)

		titles := []string{books[0].Title, books[1].Title}
		assert.Contains(t, titles, "War and Peace")
		assert.Contains(t, titles, "Warhorse")
	})

	t.Run("returns an empty result on no match", func(t *testing.T) {
		books, err := db.SearchBooks("nonexistent")
		require.NoError(t, err)
		assert.Empty(t, books)
	})
}

func TestListAuthors(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	mustCreateAuthor(t, db, "Leo Tolstoy", date(1828, 9, 9))
	mustCreateAuthor(t, db, "Jane Austen", date(1775, 12, 16))

	authors, err := db.ListAuthors()
	require.NoError(t, err)
	require.Len(t, authors, 2)
	assert.Equal(t, "Jane Austen", authors[0].Name)
	assert.Equal(t, "Leo Tolstoy", authors[1].Name)
}

func TestDeleteOrphanAuthors(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	orphan := mustCreateAuthor(t, db, "Forgotten Writer", date(1900, 1, 1))
	kept := mustCreateAuthor(t, db, "Leo Tolstoy", date(1828, 9, 9))
	mustCreateBook(t, db, "War and Peace", "001", kept.ID, 1869, nil)

	deleted, err := db.DeleteOrphanAuthors()
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	var remaining []entities.Author
	require.NoError(t, db.DB.Find(&remaining).Error)
	require.Len(t, remaining, 1)
	assert.NotEqual(t, orphan.ID, remaining[0].ID)
}

// End-to-end scenario: one author, one book, one delete, empty catalog.
func TestCatalogRoundTrip(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	author := mustCreateAuthor(t, db, "Leo Tolstoy", date(1828, 9, 9))
	book := mustCreateBook(t, db, "War and Peace", "001", author.ID, 1869, nil)

	books, err := db.ListBooks(entities.SortByTitle)
	require.NoError(t, err)
	require.Len(t, books, 1)
	assert.Equal(t, "War and Peace", books[0].Title)

	authorRemoved, err := db.DeleteBook(book.ID)
	require.NoError(t, err)
	assert.True(t, authorRemoved)

	count, err := db.CountBooks()
	require.NoError(t, err)
	assert.Zero(t, count)

	authors, err := db.ListAuthors()
	require.NoError(t, err)
	assert.Empty(t, authors)
}
