package http

import (
	"github.com/openshelf/catalog/internal/database"
	"github.com/openshelf/catalog/internal/entities"
)

// CatalogStore is the full set of query-layer operations the router's
// controllers draw from. Each controller declares the narrow slice it
// needs; *database.Database satisfies all of them.
type CatalogStore interface {
	ListBooks(sort entities.SortKey) ([]entities.Book, error)
	SearchBooks(term string) ([]entities.Book, error)
	ListAuthors() ([]entities.Author, error)
	GetBookByID(id uint) (*entities.Book, error)
	CountBooks() (int64, error)
	CreateAuthor(author *entities.Author) error
	CreateBook(book *entities.Book) error
	DeleteBook(id uint) (authorRemoved bool, err error)
}

// RouterConfig carries all dependencies needed to build the router.
type RouterConfig struct {
	Store         CatalogStore
	Database      *database.Database
	TemplatesPath string
	StaticPath    string
	Version       string
	CSRFSecret    []byte
	SecureCookies bool
}
