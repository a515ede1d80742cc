// Compressed snapshot of the catalog prior to each rewrite.
//
// With Config.Snapshots enabled, persist preserves the outgoing file
// contents as a zstd-compressed .snap sidecar before renaming the new
// catalog into place. Previous decodes the sidecar back into records,
// giving one level of history to recover from a regretted add.
package shelf

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
)

// Shared encoder/decoder — both are documented as safe for concurrent
// use, and construction is expensive relative to the small files being
// compressed.
var (
	zstdEncoder, _ = zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedFastest))
	zstdDecoder, _ = zstd.NewReader(nil)
)

// snapSuffix is appended to the catalog path for the snapshot sidecar.
const snapSuffix = ".snap"

// snapshot compresses the current catalog bytes to the snapshot
// sidecar. A missing catalog file (nothing persisted yet) is not an
// error.
func snapshot(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return os.WriteFile(path+snapSuffix, zstdEncoder.EncodeAll(data, nil), 0644)
}

// Previous returns the records the catalog held before its last
// rewrite, in their order at the time. ErrNoSnapshot is returned when
// no rewrite has happened yet or snapshots are disabled. Lines that no
// longer decode are skipped; Previous recovers what it can.
func (c *Catalog) Previous() ([]*Record, error) {
	compressed, err := os.ReadFile(c.path + snapSuffix)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNoSnapshot
		}
		return nil, err
	}

	data, err := zstdDecoder.DecodeAll(compressed, nil)
	if err != nil {
		return nil, fmt.Errorf("snapshot: zstd: %w", err)
	}

	var books []*Record
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, c.config.ReadBuffer), c.config.MaxLineSize)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		book, err := decode(line)
		if err != nil {
			continue
		}
		books = append(books, book)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("snapshot: %w", err)
	}
	return books, nil
}
