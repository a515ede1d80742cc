// Checksum algorithms for the catalog integrity sidecar.
//
// persist records a 16 hex character digest of the catalog bytes in a
// .sum file next to the catalog; Open recomputes it to detect edits
// made outside the store. Three algorithms are supported, selectable
// via Config.HashAlgorithm. The sidecar stores the algorithm alongside
// the digest so verification survives a config change between runs.
package shelf

import (
	"fmt"
	"hash/fnv"
	"os"
	"strconv"
	"strings"

	"github.com/zeebo/xxh3"
	"golang.org/x/crypto/blake2b"
)

// Hash algorithm constants.
const (
	AlgXXHash3 = 1 // Default, fastest
	AlgFNV1a   = 2 // No external dependencies
	AlgBlake2b = 3 // Best distribution
)

// sumSuffix is appended to the catalog path for the checksum sidecar.
const sumSuffix = ".sum"

// checksum produces a 16 hex character digest using the given algorithm.
func checksum(data []byte, alg int) string {
	switch alg {
	case AlgXXHash3:
		return fmt.Sprintf("%016x", xxh3.Hash(data))
	case AlgFNV1a:
		h := fnv.New64a()
		h.Write(data)
		return fmt.Sprintf("%016x", h.Sum64())
	case AlgBlake2b:
		h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
		h.Write(data)
		return fmt.Sprintf("%016x", h.Sum(nil))
	default:
		return ""
	}
}

// seal writes the checksum sidecar for the freshly persisted bytes.
func (c *Catalog) seal(data []byte) error {
	line := fmt.Sprintf("%d:%s\n", c.config.HashAlgorithm, checksum(data, c.config.HashAlgorithm))
	if err := os.WriteFile(c.path+sumSuffix, []byte(line), 0644); err != nil {
		return fmt.Errorf("seal: %w", err)
	}
	return nil
}

// verify compares the catalog bytes against the sidecar, if one
// exists. A mismatch means the file was modified out of band; it is
// audited but not counted against the error tally — the load itself
// decides which lines are still valid.
func (c *Catalog) verify(data []byte) {
	raw, err := os.ReadFile(c.path + sumSuffix)
	if err != nil {
		return // no sidecar until the first persist
	}

	alg, want, ok := strings.Cut(strings.TrimSpace(string(raw)), ":")
	if !ok {
		return
	}
	n, err := strconv.Atoi(alg)
	if err != nil {
		return
	}

	if got := checksum(data, n); got != want {
		c.audit.Record(c.path, fmt.Errorf("%w: catalog was modified outside the store", ErrChecksumMismatch))
	}
}
