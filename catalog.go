// Catalog lifecycle and load path.
//
// A Catalog owns the in-memory record sequence for one run. Open
// validates the file name, creates missing directories and the file
// itself, then reads every line once. Decode failures are routed to the
// audit sink and counted without aborting the load. Mutation happens
// only through Add, which rewrites the whole file (see persist.go) —
// the process is a single-invocation batch tool, so there is no
// locking and no retained file handle.
package shelf

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Config holds catalog configuration options.
type Config struct {
	HashAlgorithm int  // 1=xxHash3, 2=FNV1a, 3=Blake2b (for the .sum sidecar)
	ReadBuffer    int  // Initial line buffer for loading (default 64KB)
	MaxLineSize   int  // Maximum single catalog line (default 1MB)
	SyncWrites    bool // Call fsync before renaming the rewritten catalog
	Snapshots     bool // Keep a compressed copy of the outgoing file on rewrite
}

// textSuffixes are the catalog file name suffixes accepted by Open.
var textSuffixes = []string{".txt", ".text"}

// Catalog is a loaded catalog file.
type Catalog struct {
	path   string
	audit  *Audit
	config Config
	books  []*Record
	loaded int // records accepted at load time; Add does not change this
	errs   int
}

// Open opens or creates the catalog at path and loads every record.
// The path must end in a recognized text suffix; missing parent
// directories and a missing file are created. Lines that fail to
// decode are audited and counted, and loading continues — a partially
// corrupt file still yields its valid records.
func Open(path string, config Config) (*Catalog, error) {
	if config.HashAlgorithm == 0 {
		config.HashAlgorithm = AlgXXHash3
	}
	if config.ReadBuffer == 0 {
		config.ReadBuffer = 64 * 1024
	}
	if config.MaxLineSize == 0 {
		config.MaxLineSize = 1024 * 1024
	}

	if !textName(path) {
		err := fmt.Errorf("%w: catalog file must end with %s, got %q",
			ErrInvalidFileName, strings.Join(textSuffixes, " or "), path)
		// The audit location derives from the catalog path, which is
		// invalid here, so the entry goes to the fallback location.
		(&Audit{}).Record(startupText, err)
		return nil, err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("open: create directories: %w", err)
	}

	f, err := os.OpenFile(path, os.O_RDONLY|os.O_CREATE, 0644)
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}
	f.Close()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open: read catalog: %w", err)
	}

	c := &Catalog{
		path:   path,
		audit:  &Audit{Path: filepath.Join(dir, auditName)},
		config: config,
	}
	c.verify(data)
	if err := c.load(data); err != nil {
		return nil, err
	}
	return c, nil
}

// load decodes the catalog bytes line by line. Blank and
// whitespace-only lines are skipped silently; everything else must
// decode or it is rejected into the audit log.
func (c *Catalog) load(data []byte) error {
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, c.config.ReadBuffer), c.config.MaxLineSize)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		book, err := decode(line)
		if err != nil {
			c.errs++
			c.audit.Record(line, err)
			continue
		}
		c.books = append(c.books, book)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("load: %w", err)
	}

	c.loaded = len(c.books)
	return nil
}

// Books returns the records in catalog order. The slice is the
// catalog's own; callers must not modify it.
func (c *Catalog) Books() []*Record {
	return c.books
}

// Loaded returns the count of records accepted at load time.
func (c *Catalog) Loaded() int {
	return c.loaded
}

// Errors returns the running count of rejected inputs: load-time
// decode failures plus rejections from the requested operation.
func (c *Catalog) Errors() int {
	return c.errs
}

// textName reports whether path ends in a recognized text suffix.
func textName(path string) bool {
	lower := strings.ToLower(path)
	for _, suffix := range textSuffixes {
		if strings.HasSuffix(lower, suffix) {
			return true
		}
	}
	return false
}
