// Append-only audit of rejected inputs.
//
// Every rejection lands here as one timestamped, human-readable entry:
//
//	[2026-08-28T09:15:04] INVALID: "Dune:Frank Herbert" - MalformedRecord: expected 4 fields separated by ':' but got 2
//
// The sink must never take down the primary operation: a failed append
// degrades to a diagnostic on stderr and nothing else. Entries recorded
// before a catalog path has been resolved (startup failures) fall back
// to errors.log in the working directory.
package shelf

import (
	"fmt"
	"os"
	"time"
)

// auditName is the audit file created next to the catalog.
const auditName = "errors.log"

// startupText is the raw-text marker for entries recorded before a
// catalog was opened.
const startupText = "<startup>"

// Audit appends rejection entries to a log file. The file is never
// read back by this package.
type Audit struct {
	Path string // empty means auditName in the working directory
}

// Record appends one entry for a rejected input. It never returns an
// error: append failures are reported on stderr and otherwise ignored.
func (a *Audit) Record(raw string, err error) {
	path := a.Path
	if path == "" {
		path = auditName
	}

	name, msg := kind(err)
	entry := fmt.Sprintf("[%s] INVALID: %q - %s: %s\n",
		time.Now().Format("2006-01-02T15:04:05"), raw, name, msg)

	f, ferr := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if ferr != nil {
		fmt.Fprintf(os.Stderr, "shelf: audit: %v\n", ferr)
		return
	}
	defer f.Close()

	if _, werr := f.WriteString(entry); werr != nil {
		fmt.Fprintf(os.Stderr, "shelf: audit: %v\n", werr)
	}
}
