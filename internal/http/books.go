package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/openshelf/catalog/internal/entities"
)

// BookCreator defines the operations behind the add-book form.
type BookCreator interface {
	ListAuthors() ([]entities.Author, error)
	CreateBook(book *entities.Book) error
}

// NewBookRequest is the typed form payload for adding a book. The
// rating arrives as a string so the optional field can stay empty.
type NewBookRequest struct {
	Title           string `form:"title" binding:"required"`
	ISBN            string `form:"isbn" binding:"required"`
	AuthorID        uint   `form:"author" binding:"required"`
	PublicationYear int    `form:"publication_year" binding:"required"`
	Summary         string `form:"summary"`
	Rating          string `form:"rating"`
}

type BooksController struct {
	store BookCreator
}

func NewBooksController(store BookCreator) *BooksController {
	return &BooksController{store: store}
}

// ShowForm renders the add-book form with the author list and the
// current calendar year for the publication-year input bound.
// GET /add_book
func (controller *BooksController) ShowForm(c *gin.Context) {
	controller.renderForm(c, http.StatusOK, "")
}

// Submit handles the add-book form. A duplicate ISBN or an unknown
// author re-renders the form with a message and a 404.
// POST /add_book
func (controller *BooksController) Submit(c *gin.Context) {
	var req NewBookRequest
	if err := c.ShouldBind(&req); err != nil {
		controller.renderForm(c, http.StatusBadRequest, "Title, ISBN, author and publication year are required.")
		return
	}

	book := &entities.Book{
		Title:           req.Title,
		ISBN:            req.ISBN,
		AuthorID:        req.AuthorID,
		PublicationYear: req.PublicationYear,
		Summary:         req.Summary,
	}

	if req.Rating != "" {
		rating, err := strconv.ParseFloat(req.Rating, 64)
		if err != nil {
			controller.renderForm(c, http.StatusBadRequest, "Rating must be a number.")
			return
		}
		book.Rating = &rating
	}

	err := controller.store.CreateBook(book)
	switch {
	case errors.Is(err, entities.ErrDuplicateISBN):
		controller.renderForm(c, http.StatusNotFound, "Book already exists!")
		return
	case errors.Is(err, entities.ErrAuthorNotFound):
		controller.renderForm(c, http.StatusNotFound, "Author not found.")
		return
	case err != nil:
		respondInternalError(c, err, "create book")
		return
	}

	controller.renderResult(c, book)
}

func (controller *BooksController) renderForm(c *gin.Context, status int, message string) {
	authors, err := controller.store.ListAuthors()
	if err != nil {
		respondInternalError(c, err, "load authors")
		return
	}

	c.HTML(status, "add_book", gin.H{
		"Authors":     authors,
		"CurrentYear": time.Now().Year(),
		"Message":     message,
		"CSRFField":   csrfField(c),
	})
}

func (controller *BooksController) renderResult(c *gin.Context, book *entities.Book) {
	authors, err := controller.store.ListAuthors()
	if err != nil {
		respondInternalError(c, err, "load authors")
		return
	}

	c.HTML(http.StatusOK, "add_book", gin.H{
		"Item":        book,
		"Authors":     authors,
		"CurrentYear": time.Now().Year(),
		"CSRFField":   csrfField(c),
	})
}
