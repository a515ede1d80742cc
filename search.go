// Search over the loaded catalog.
//
// Both searches are linear scans of the in-memory sequence; the catalog
// is small enough that no index is kept. FindISBN treats more than one
// match as corruption rather than a result set: Add refuses duplicate
// ISBNs, so two matches can only mean the backing file was edited out
// of band. The condition is audited, counted, and surfaced as
// ErrDuplicateISBN instead of being silently resolved.
package shelf

import (
	"fmt"
	"strings"
)

// FindISBN returns the record with the given ISBN, if any. The result
// holds at most one record; duplicate matches abort with
// ErrDuplicateISBN.
func (c *Catalog) FindISBN(isbn string) ([]*Record, error) {
	var results []*Record
	for _, b := range c.books {
		if b.ISBN == isbn {
			results = append(results, b)
		}
	}

	if len(results) > 1 {
		err := fmt.Errorf("%w: %d records share ISBN %s", ErrDuplicateISBN, len(results), isbn)
		c.errs++
		c.audit.Record(isbn, err)
		return nil, err
	}
	return results, nil
}

// FindTitle returns every record whose title contains keyword,
// case-insensitively, in catalog order.
func (c *Catalog) FindTitle(keyword string) []*Record {
	needle := strings.ToLower(keyword)
	var results []*Record
	for _, b := range c.books {
		if strings.Contains(strings.ToLower(b.Title), needle) {
			results = append(results, b)
		}
	}
	return results
}
