package database

import (
	"errors"

	"gorm.io/gorm"

	"github.com/openshelf/catalog/internal/covers"
	"github.com/openshelf/catalog/internal/entities"
)

// ListBooks returns every book with its author loaded, ordered by the
// given sort key. All keys order ascending except rating, which puts
// the highest-rated books first.
func (d *Database) ListBooks(sort entities.SortKey) ([]entities.Book, error) {
	var books []entities.Book
	query := d.DB.Preload("Author")

	switch sort {
	case entities.SortByAuthor:
		query = query.
			Joins("JOIN authors ON authors.id = books.author_id").
			Order("authors.name ASC")
	case entities.SortByPublicationYear:
		query = query.Order("books.publication_year ASC")
	case entities.SortByRating:
		query = query.Order("books.rating DESC")
	default:
		query = query.Order("books.title ASC")
	}

	err := query.Find(&books).Error
	return books, err
}

// SearchBooks matches the term against book titles, case-insensitively.
// A miss yields an empty slice, not an error. Result order is whatever
// the storage engine returns.
func (d *Database) SearchBooks(term string) ([]entities.Book, error) {
	var books []entities.Book
	searchPattern := "%" + term + "%"
	err := d.DB.Preload("Author").
		Where("LOWER(title) LIKE LOWER(?)", searchPattern).
		Find(&books).Error
	return books, err
}

// ListAuthors returns all authors ordered alphabetically by name.
func (d *Database) ListAuthors() ([]entities.Author, error) {
	var authors []entities.Author
	err := d.DB.Order("name ASC").Find(&authors).Error
	return authors, err
}

// GetBookByID fetches a single book with its author.
func (d *Database) GetBookByID(id uint) (*entities.Book, error) {
	var book entities.Book
	err := d.DB.Preload("Author").First(&book, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, entities.ErrBookNotFound
	}
	if err != nil {
		return nil, err
	}
	return &book, nil
}

// CountBooks returns the total number of books in the catalog.
func (d *Database) CountBooks() (int64, error) {
	var count int64
	err := d.DB.Model(&entities.Book{}).Count(&count).Error
	return count, err
}

// CreateAuthor inserts a new author. Two authors may never share both
// name and birth date; a match on that pair fails with
// entities.ErrDuplicateAuthor and inserts nothing. The check is backed
// by a unique index on the same pair.
func (d *Database) CreateAuthor(author *entities.Author) error {
	var existing entities.Author
	err := d.DB.
		Where("name = ? AND birth_date = ?", author.Name, author.BirthDate).
		First(&existing).Error
	if err == nil {
		return entities.ErrDuplicateAuthor
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	return d.DB.Create(author).Error
}

// CreateBook inserts a new book. It fails with
// entities.ErrDuplicateISBN when the ISBN is already in the catalog and
// with entities.ErrAuthorNotFound when AuthorID references nothing;
// neither failure inserts anything. The cover URL is derived from the
// ISBN here so callers can never supply their own.
func (d *Database) CreateBook(book *entities.Book) error {
	var existing entities.Book
	err := d.DB.Where("isbn = ?", book.ISBN).First(&existing).Error
	if err == nil {
		return entities.ErrDuplicateISBN
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	var author entities.Author
	err = d.DB.First(&author, book.AuthorID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.ErrAuthorNotFound
	}
	if err != nil {
		return err
	}

	book.ImgURL = covers.URL(book.ISBN)

	return d.DB.Create(book).Error
}

// DeleteBook removes a book and, when that was the author's last book,
// the author as well. The delete, the remaining-books check, and the
// conditional author delete all run inside one transaction so an
// insert for the same author can never slip between them.
// Returns whether the author was removed too.
func (d *Database) DeleteBook(id uint) (authorRemoved bool, err error) {
	err = d.DB.Transaction(func(tx *gorm.DB) error {
		var book entities.Book
		if err := tx.First(&book, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return entities.ErrBookNotFound
			}
			return err
		}

		if err := tx.Delete(&entities.Book{}, id).Error; err != nil {
			return err
		}

		var remaining int64
		if err := tx.Model(&entities.Book{}).
			Where("author_id = ?", book.AuthorID).
			Count(&remaining).Error; err != nil {
			return err
		}

		if remaining == 0 {
			if err := tx.Delete(&entities.Author{}, book.AuthorID).Error; err != nil {
				return err
			}
			authorRemoved = true
		}
		return nil
	})
	return authorRemoved, err
}

// DeleteOrphanAuthors removes authors that own no books. The request
// path keeps this invariant via DeleteBook's cascade; the sweep covers
// catalogs seeded or edited outside the application.
func (d *Database) DeleteOrphanAuthors() (int64, error) {
	result := d.DB.Exec(`
		DELETE FROM authors
		WHERE id NOT IN (SELECT author_id FROM books)
	`)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
