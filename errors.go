// Package shelf maintains a flat-file catalog of book records. One
// catalog line holds one record in Title:Author:ISBN:Copies form. The
// catalog is loaded whole at Open, searched by ISBN or title substring,
// and extended by Add, which rewrites the file in full so a subsequent
// load never observes a partial catalog.
//
// Rejected inputs — malformed lines, bad ISBNs, duplicates — never
// abort a load. They are counted and appended to an errors.log audit
// file next to the catalog, and the load continues through the rest of
// the file.
package shelf

import (
	"errors"
	"strings"
)

// Sentinel errors for programmatic handling. Callers use errors.Is to
// distinguish fatal startup conditions (ErrInsufficientArguments,
// ErrInvalidFileName) from recoverable rejections (ErrMalformedRecord,
// ErrInvalidISBN, ErrDuplicateISBN). ErrDuplicateISBN is recoverable
// when raised by Add but fatal when raised by FindISBN, where it means
// the backing file itself holds duplicates.
var (
	ErrInsufficientArguments = errors.New("insufficient arguments")
	ErrInvalidFileName       = errors.New("invalid file name")
	ErrMalformedRecord       = errors.New("malformed record")
	ErrInvalidISBN           = errors.New("invalid isbn")
	ErrDuplicateISBN         = errors.New("duplicate isbn")
	ErrChecksumMismatch      = errors.New("checksum mismatch")
	ErrNoSnapshot            = errors.New("no snapshot")
)

// kinds maps sentinels to the names written in audit entries.
var kinds = []struct {
	err  error
	name string
}{
	{ErrMalformedRecord, "MalformedRecord"},
	{ErrInvalidISBN, "InvalidISBN"},
	{ErrDuplicateISBN, "DuplicateISBN"},
	{ErrInvalidFileName, "InvalidFileName"},
	{ErrInsufficientArguments, "InsufficientArguments"},
	{ErrChecksumMismatch, "ChecksumMismatch"},
}

// kind resolves an error to its audit name and detail message. The
// sentinel's own text is stripped from the message so audit entries
// read "Kind: detail" rather than repeating the kind twice.
func kind(err error) (name, msg string) {
	for _, k := range kinds {
		if errors.Is(err, k.err) {
			msg = strings.TrimPrefix(err.Error(), k.err.Error())
			msg = strings.TrimPrefix(msg, ": ")
			if msg == "" {
				msg = k.err.Error()
			}
			return k.name, msg
		}
	}
	return "Error", err.Error()
}
