// Report rendering.
//
// Write produces the human-readable heading, record table, and fixed
// statistics block. WriteJSON emits the same report as a single JSON
// document for scripting. A rejected add renders no table — there is
// nothing to show — but the statistics block is always present.
package shelf

import (
	"fmt"
	"io"
	"strings"

	json "github.com/goccy/go-json"
)

// Table layout for matched records.
const (
	hdrFmt = "%-30s %-20s %-15s %5s\n"
	rowFmt = "%-30s %-20s %-15s %5d\n"
)

var separator = strings.Repeat("-", 73)

// Write renders the report for human consumption.
func (r *Report) Write(w io.Writer) {
	if r.Op != OpAdd || r.Added > 0 {
		switch r.Op {
		case OpISBN:
			fmt.Fprintf(w, "\n=== ISBN Search: %s ===\n", r.Query)
		case OpAdd:
			fmt.Fprintf(w, "\n=== Book Added ===\n")
		default:
			fmt.Fprintf(w, "\n=== Title Search: %q ===\n", r.Query)
		}

		fmt.Fprintf(w, hdrFmt, "Title", "Author", "ISBN", "Copies")
		fmt.Fprintln(w, separator)
		if len(r.Books) == 0 {
			fmt.Fprintln(w, "No results found.")
		}
		for _, b := range r.Books {
			fmt.Fprintf(w, rowFmt, b.Title, b.Author, b.ISBN, b.Copies)
		}
	}

	fmt.Fprintf(w, "\n=== Statistics ===\n")
	fmt.Fprintf(w, "Valid records processed : %d\n", r.Loaded)
	fmt.Fprintf(w, "Search results          : %d\n", r.Results)
	fmt.Fprintf(w, "Books added             : %d\n", r.Added)
	fmt.Fprintf(w, "Errors encountered      : %d\n", r.Errors)
}

// WriteJSON renders the report as indented JSON.
func (r *Report) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}
