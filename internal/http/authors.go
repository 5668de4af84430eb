package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/openshelf/catalog/internal/entities"
)

// dateLayout is the format the date inputs submit.
const dateLayout = "2006-01-02"

// AuthorCreator defines the write operation behind the add-author form.
type AuthorCreator interface {
	CreateAuthor(author *entities.Author) error
}

// NewAuthorRequest is the typed form payload for adding an author.
type NewAuthorRequest struct {
	Name        string `form:"name" binding:"required"`
	BirthDate   string `form:"birthdate" binding:"required"`
	DateOfDeath string `form:"date_of_death"`
}

type AuthorsController struct {
	store AuthorCreator
}

func NewAuthorsController(store AuthorCreator) *AuthorsController {
	return &AuthorsController{store: store}
}

// ShowForm renders the empty add-author form.
// GET /add_author
func (controller *AuthorsController) ShowForm(c *gin.Context) {
	c.HTML(http.StatusOK, "add_author", gin.H{
		"CSRFField": csrfField(c),
	})
}

// Submit handles the add-author form. A (name, birth date) pair that
// already exists renders the form again with a message and a 404.
// POST /add_author
func (controller *AuthorsController) Submit(c *gin.Context) {
	var req NewAuthorRequest
	if err := c.ShouldBind(&req); err != nil {
		controller.renderForm(c, http.StatusBadRequest, "Name and birth date are required.")
		return
	}

	birthDate, err := time.Parse(dateLayout, req.BirthDate)
	if err != nil {
		controller.renderForm(c, http.StatusBadRequest, "Birth date must be in YYYY-MM-DD format.")
		return
	}

	author := &entities.Author{
		Name:      req.Name,
		BirthDate: entities.NewDate(birthDate),
	}

	if req.DateOfDeath != "" {
		deathDate, err := time.Parse(dateLayout, req.DateOfDeath)
		if err != nil {
			controller.renderForm(c, http.StatusBadRequest, "Date of death must be in YYYY-MM-DD format.")
			return
		}
		death := entities.NewDate(deathDate)
		author.DateOfDeath = &death
	}

	err = controller.store.CreateAuthor(author)
	if errors.Is(err, entities.ErrDuplicateAuthor) {
		controller.renderForm(c, http.StatusNotFound, "Author already exists!")
		return
	}
	if err != nil {
		respondInternalError(c, err, "create author")
		return
	}

	c.HTML(http.StatusOK, "add_author", gin.H{
		"Item":      author,
		"CSRFField": csrfField(c),
	})
}

func (controller *AuthorsController) renderForm(c *gin.Context, status int, message string) {
	c.HTML(status, "add_author", gin.H{
		"Message":   message,
		"CSRFField": csrfField(c),
	})
}
