// Operation dispatch.
//
// The operation token's shape selects the behaviour, checked in
// priority order: exactly 13 digits is an ISBN search, exactly four
// colon-separated fields is an add, and anything else is a title
// substring search. A token that is both (impossible: a 13-digit
// number contains no colon) never arises, but the priority order is
// still fixed so the rule reads the same as it runs.
package shelf

import (
	"errors"
	"strings"
)

// Operation names, in classification priority order.
const (
	OpISBN  = "isbn-search"
	OpAdd   = "add"
	OpTitle = "title-search"
)

// Report is the outcome of one dispatched operation.
type Report struct {
	Op      string    `json:"operation"`
	Query   string    `json:"query"`
	Books   []*Record `json:"books"`
	Loaded  int       `json:"loaded"`
	Results int       `json:"results"`
	Added   int       `json:"added"`
	Errors  int       `json:"errors"`

	// Rejected holds a recoverable add failure. The run still
	// completes and reports statistics; the rejection is already
	// audited and counted in Errors.
	Rejected error `json:"-"`
}

// classify returns the operation selected by the token's shape.
func classify(op string) string {
	if isbnPattern.MatchString(op) {
		return OpISBN
	}
	if len(strings.Split(op, ":")) == fieldCount {
		return OpAdd
	}
	return OpTitle
}

// Run loads the catalog at path and executes the operation encoded in
// op. A nil error means the run completed and the Report carries its
// statistics, including any recoverable add rejection. Fatal
// conditions — an invalid file name, or an ISBN search that finds
// duplicates in the backing file — return an error and no Report.
func Run(path, op string, config Config) (*Report, error) {
	c, err := Open(path, config)
	if err != nil {
		return nil, err
	}

	report := &Report{Op: classify(op), Query: op, Loaded: c.Loaded()}

	switch report.Op {
	case OpISBN:
		books, err := c.FindISBN(op)
		if err != nil {
			return nil, err
		}
		report.Books = books
		report.Results = len(books)

	case OpAdd:
		book, err := c.Add(op)
		switch {
		case err == nil:
			report.Books = []*Record{book}
			report.Added = 1
		case errors.Is(err, ErrMalformedRecord),
			errors.Is(err, ErrInvalidISBN),
			errors.Is(err, ErrDuplicateISBN):
			report.Rejected = err
		default:
			return nil, err
		}

	default:
		books := c.FindTitle(op)
		report.Books = books
		report.Results = len(books)
	}

	report.Errors = c.Errors()
	return report, nil
}
