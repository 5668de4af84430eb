package entities

// SortKey selects the ordering of the book list.
type SortKey string

const (
	SortByTitle           SortKey = "title"
	SortByAuthor          SortKey = "author"
	SortByPublicationYear SortKey = "publication_year"
	SortByRating          SortKey = "rating"
)

// ParseSortKey maps a raw query value to a sort key. Unrecognized
// values fall back to title ordering rather than failing, matching the
// behavior users see when they hand-edit the URL.
func ParseSortKey(raw string) SortKey {
	switch SortKey(raw) {
	case SortByAuthor, SortByPublicationYear, SortByRating:
		return SortKey(raw)
	default:
		return SortByTitle
	}
}
