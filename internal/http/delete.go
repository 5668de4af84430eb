package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/openshelf/catalog/internal/entities"
)

// BookDeleter defines the operations behind book deletion. Deleting
// re-renders the book list, so the read side comes along.
type BookDeleter interface {
	BookLister
	DeleteBook(id uint) (authorRemoved bool, err error)
}

type DeleteController struct {
	store BookDeleter
}

func NewDeleteController(store BookDeleter) *DeleteController {
	return &DeleteController{store: store}
}

// DeleteBook removes a book and, when it was its author's last one,
// the author as well. Either way the refreshed list view is rendered
// with a message saying what happened.
// GET /book/:id/delete
func (dc *DeleteController) DeleteBook(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		renderBookList(c, dc.store, http.StatusNotFound, "Book not found")
		return
	}

	authorRemoved, err := dc.store.DeleteBook(id)
	if errors.Is(err, entities.ErrBookNotFound) {
		renderBookList(c, dc.store, http.StatusNotFound, "Book not found")
		return
	}
	if err != nil {
		respondInternalError(c, err, "delete book")
		return
	}

	message := "Book deleted."
	if authorRemoved {
		message = "Book deleted. Also book's author deleted."
	}
	renderBookList(c, dc.store, http.StatusOK, message)
}
