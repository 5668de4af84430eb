package entities

import (
	"time"

	"gorm.io/datatypes"
)

// Author is a writer that owns zero or more books. An author is
// identified by the (name, birth date) pair; two records may never
// share both.
type Author struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	Name        string          `gorm:"size:256;not null;uniqueIndex:idx_authors_identity" json:"name"`
	BirthDate   datatypes.Date  `gorm:"not null;uniqueIndex:idx_authors_identity" json:"birth_date"`
	DateOfDeath *datatypes.Date `json:"date_of_death,omitempty"`
	Books       []Book          `gorm:"foreignKey:AuthorID" json:"books,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// Book belongs to exactly one author. The ISBN is the business key and
// is unique across the whole catalog; ImgURL is derived from it and is
// never user supplied.
type Book struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Title           string    `gorm:"index;size:512;not null" json:"title"`
	ISBN            string    `gorm:"uniqueIndex;size:20;not null" json:"isbn"`
	PublicationYear int       `gorm:"not null" json:"publication_year"`
	Summary         string    `gorm:"type:text" json:"summary,omitempty"`
	Rating          *float64  `json:"rating,omitempty"`
	ImgURL          string    `gorm:"size:2048" json:"img_url,omitempty"`
	AuthorID        uint      `gorm:"index;not null" json:"author_id"`
	Author          Author    `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (Author) TableName() string {
	return "authors"
}

func (Book) TableName() string {
	return "books"
}

// NewDate builds a date-only column value from a time.
func NewDate(t time.Time) datatypes.Date {
	return datatypes.Date(t)
}

// FormatBirthDate renders the birth date as YYYY-MM-DD for display.
func (a Author) FormatBirthDate() string {
	return time.Time(a.BirthDate).Format("2006-01-02")
}

// FormatDateOfDeath renders the death date as YYYY-MM-DD, or an empty
// string for living authors.
func (a Author) FormatDateOfDeath() string {
	if a.DateOfDeath == nil {
		return ""
	}
	return time.Time(*a.DateOfDeath).Format("2006-01-02")
}
