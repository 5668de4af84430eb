package entities

import "errors"

// Domain errors surfaced by the query layer. Handlers map these to a
// rendered message with a 404 status; everything else is treated as an
// internal failure.
var (
	ErrDuplicateAuthor = errors.New("author already exists")
	ErrDuplicateISBN   = errors.New("book with this ISBN already exists")
	ErrAuthorNotFound  = errors.New("author not found")
	ErrBookNotFound    = errors.New("book not found")
)
