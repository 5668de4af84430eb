// Package covers derives cover-image URLs for books. Covers are served
// straight from OpenLibrary; the catalog only constructs the URL and
// never fetches the image itself.
package covers

import "fmt"

const openLibraryCoverTemplate = "https://covers.openlibrary.org/b/isbn/%s-L.jpg"

// URL returns the large OpenLibrary cover URL for the given ISBN.
// The result is deterministic: the same ISBN always yields the same URL.
func URL(isbn string) string {
	return fmt.Sprintf(openLibraryCoverTemplate, isbn)
}
