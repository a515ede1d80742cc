// Record codec for the colon-separated catalog line format.
//
// decode validates in a fixed order — field count, title, author, ISBN
// shape, copies parseability, copies positivity — and reports the first
// rule violated; later checks do not run. Whitespace around fields is
// trimmed at decode time and not reproduced by encode.
package shelf

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// fieldCount is the number of colon-separated fields per catalog line.
const fieldCount = 4

var isbnPattern = regexp.MustCompile(`^[0-9]{13}$`)

// Record is one catalog entry. All fields are valid by construction:
// a Record only exists if decode accepted every field.
type Record struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	ISBN   string `json:"isbn"`
	Copies int    `json:"copies"`
}

// decode parses one Title:Author:ISBN:Copies line.
func decode(line string) (*Record, error) {
	parts := strings.Split(line, ":")
	if len(parts) != fieldCount {
		return nil, fmt.Errorf("%w: expected %d fields separated by ':' but got %d",
			ErrMalformedRecord, fieldCount, len(parts))
	}

	title := strings.TrimSpace(parts[0])
	author := strings.TrimSpace(parts[1])
	isbn := strings.TrimSpace(parts[2])
	copies := strings.TrimSpace(parts[3])

	if title == "" {
		return nil, fmt.Errorf("%w: title must not be empty", ErrMalformedRecord)
	}
	if author == "" {
		return nil, fmt.Errorf("%w: author must not be empty", ErrMalformedRecord)
	}
	if !isbnPattern.MatchString(isbn) {
		return nil, fmt.Errorf("%w: expected exactly 13 digits, got %q", ErrInvalidISBN, isbn)
	}

	n, err := strconv.Atoi(copies)
	if err != nil {
		return nil, fmt.Errorf("%w: copies must be an integer, got %q", ErrMalformedRecord, copies)
	}
	if n <= 0 {
		return nil, fmt.Errorf("%w: copies must be > 0, got %d", ErrMalformedRecord, n)
	}

	return &Record{Title: title, Author: author, ISBN: isbn, Copies: n}, nil
}

// encode serializes the record back to catalog file format.
func (r *Record) encode() string {
	return r.Title + ":" + r.Author + ":" + r.ISBN + ":" + strconv.Itoa(r.Copies)
}
