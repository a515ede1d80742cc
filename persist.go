// Add and whole-file persistence.
//
// Every successful Add rewrites the catalog in full: all records are
// encoded to a temporary file, optionally fsynced, and renamed over the
// original. The rename is the unit of atomicity — a crash before it
// leaves the previous file intact, a crash after it leaves the new one,
// and a subsequent load never observes a partial catalog. In-place
// rewrite is avoided for the same reason: dying mid-write would lose
// both old and new contents.
//
// Add checks the candidate's ISBN against the loaded records only.
// Duplicates already present in a hand-edited file are not re-verified
// here; they surface later through FindISBN.
package shelf

import (
	"bytes"
	"fmt"
	"os"
	"slices"
	"strings"
)

// Add decodes a Title:Author:ISBN:Copies line and inserts it into the
// catalog. The catalog is re-sorted by title (case-insensitive, stable
// for ties) and persisted before Add returns. A malformed line or a
// duplicate ISBN is audited and counted, and leaves both the catalog
// and the backing file untouched.
func (c *Catalog) Add(line string) (*Record, error) {
	book, err := decode(line)
	if err != nil {
		c.errs++
		c.audit.Record(line, err)
		return nil, err
	}

	for _, b := range c.books {
		if b.ISBN == book.ISBN {
			err := fmt.Errorf("%w: ISBN %s already exists in catalog", ErrDuplicateISBN, book.ISBN)
			c.errs++
			c.audit.Record(line, err)
			return nil, err
		}
	}

	c.books = append(c.books, book)
	slices.SortStableFunc(c.books, func(a, b *Record) int {
		return strings.Compare(strings.ToLower(a.Title), strings.ToLower(b.Title))
	})

	if err := c.persist(); err != nil {
		return nil, err
	}
	return book, nil
}

// persist writes every record as the complete file contents, one line
// per record, then refreshes the checksum sidecar. With
// Config.Snapshots set, the outgoing file is preserved compressed
// first (see snapshot.go).
func (c *Catalog) persist() error {
	if c.config.Snapshots {
		if err := snapshot(c.path); err != nil {
			return fmt.Errorf("persist: snapshot: %w", err)
		}
	}

	var buf bytes.Buffer
	for _, b := range c.books {
		buf.WriteString(b.encode())
		buf.WriteByte('\n')
	}

	tmp := c.path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("persist: create temp: %w", err)
	}
	if _, err := f.Write(buf.Bytes()); err != nil {
		f.Close()
		return fmt.Errorf("persist: write: %w", err)
	}
	if c.config.SyncWrites {
		if err := f.Sync(); err != nil {
			f.Close()
			return fmt.Errorf("persist: sync: %w", err)
		}
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("persist: close temp: %w", err)
	}
	if err := os.Rename(tmp, c.path); err != nil {
		return fmt.Errorf("persist: rename: %w", err)
	}

	return c.seal(buf.Bytes())
}
