package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/openshelf/catalog/internal/entities"
)

// BookLister defines the read operations behind the home page.
type BookLister interface {
	ListBooks(sort entities.SortKey) ([]entities.Book, error)
	SearchBooks(term string) ([]entities.Book, error)
	CountBooks() (int64, error)
}

type CatalogController struct {
	store BookLister
}

func NewCatalogController(store BookLister) *CatalogController {
	return &CatalogController{store: store}
}

// HomePage renders the book list. A present "search" parameter wins
// over sorting and shows only matching titles; no match renders an
// empty list rather than falling back to the full catalog. The total
// book count is always displayed.
// GET /?sort=...&search=...
func (controller *CatalogController) HomePage(c *gin.Context) {
	var (
		books []entities.Book
		err   error
	)

	if search, ok := c.GetQuery("search"); ok {
		books, err = controller.store.SearchBooks(search)
	} else {
		books, err = controller.store.ListBooks(entities.ParseSortKey(c.Query("sort")))
	}
	if err != nil {
		respondInternalError(c, err, "load books")
		return
	}

	count, err := controller.store.CountBooks()
	if err != nil {
		respondInternalError(c, err, "count books")
		return
	}

	c.HTML(http.StatusOK, "home", gin.H{
		"Books":     books,
		"BookCount": count,
	})
}

// renderBookList re-renders the home template with a status message,
// used after delete attempts.
func renderBookList(c *gin.Context, store BookLister, status int, message string) {
	books, err := store.ListBooks(entities.SortByTitle)
	if err != nil {
		respondInternalError(c, err, "load books")
		return
	}
	count, err := store.CountBooks()
	if err != nil {
		respondInternalError(c, err, "count books")
		return
	}

	c.HTML(status, "home", gin.H{
		"Books":     books,
		"BookCount": count,
		"Message":   message,
	})
}
