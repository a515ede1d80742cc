package shelf

import (
	"errors"
	"os"
	"testing"
)

func TestAddSortsByTitle(t *testing.T) {
	c := openTestCatalog(t,
		"Neuromancer:William Gibson:9780441569595:2",
		"Dune:Frank Herbert:9780441013593:3",
	)

	if _, err := c.Add("Foundation:Isaac Asimov:9780553293357:5"); err != nil {
		t.Fatalf("Add: %v", err)
	}

	want := []string{"Dune", "Foundation", "Neuromancer"}
	for i, b := range c.Books() {
		if b.Title != want[i] {
			t.Errorf("books[%d] = %q, want %q", i, b.Title, want[i])
		}
	}
}

func TestAddSortsCaseInsensitive(t *testing.T) {
	c := openTestCatalog(t, "zen:Somebody:9780000000001:1")

	if _, err := c.Add("Accelerando:Charles Stross:9780441014156:1"); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if _, err := c.Add("BRAVE NEW WORLD:Aldous Huxley:9780060850524:4"); err != nil {
		t.Fatalf("Add: %v", err)
	}

	want := []string{"Accelerando", "BRAVE NEW WORLD", "zen"}
	for i, b := range c.Books() {
		if b.Title != want[i] {
			t.Errorf("books[%d] = %q, want %q", i, b.Title, want[i])
		}
	}
}

// TestAddStableTies verifies that records whose titles compare equal
// case-insensitively keep their prior relative order across an add.
func TestAddStableTies(t *testing.T) {
	c := openTestCatalog(t,
		"Dune:Frank Herbert:9780441013593:3",
		"dune:Another Author:9780000000002:1",
	)

	if _, err := c.Add("Foundation:Isaac Asimov:9780553293357:5"); err != nil {
		t.Fatalf("Add: %v", err)
	}

	books := c.Books()
	if books[0].ISBN != "9780441013593" || books[1].ISBN != "9780000000002" {
		t.Errorf("tie order changed: got %s, %s", books[0].ISBN, books[1].ISBN)
	}
}

func TestAddDuplicateISBN(t *testing.T) {
	c := openTestCatalog(t, "Dune:Frank Herbert:9780441013593:3")
	before, err := os.ReadFile(c.path)
	if err != nil {
		t.Fatalf("read catalog: %v", err)
	}

	_, err = c.Add("Dune Messiah:Frank Herbert:9780441013593:2")
	if !errors.Is(err, ErrDuplicateISBN) {
		t.Fatalf("Add(duplicate) = %v, want ErrDuplicateISBN", err)
	}

	if len(c.Books()) != 1 {
		t.Errorf("catalog grew on rejected add: %d records", len(c.Books()))
	}
	if c.Errors() != 1 {
		t.Errorf("Errors = %d, want 1", c.Errors())
	}

	after, err := os.ReadFile(c.path)
	if err != nil {
		t.Fatalf("read catalog: %v", err)
	}
	if string(before) != string(after) {
		t.Error("backing file changed on rejected add")
	}
}

func TestAddMalformed(t *testing.T) {
	c := openTestCatalog(t, "Dune:Frank Herbert:9780441013593:3")

	tests := []struct {
		name string
		line string
		want error
	}{
		{"three fields", "Foundation:Isaac Asimov:9780553293357", ErrMalformedRecord},
		{"bad isbn", "Foundation:Isaac Asimov:isbn:5", ErrInvalidISBN},
		{"zero copies", "Foundation:Isaac Asimov:9780553293357:0", ErrMalformedRecord},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.Add(tt.line)
			if !errors.Is(err, tt.want) {
				t.Errorf("Add(%q) = %v, want %v", tt.line, err, tt.want)
			}
		})
	}

	if len(c.Books()) != 1 {
		t.Errorf("catalog grew on rejected adds: %d records", len(c.Books()))
	}
	if c.Errors() != len(tests) {
		t.Errorf("Errors = %d, want %d", c.Errors(), len(tests))
	}
}

// TestAddPersistsImmediately verifies the file is rewritten before Add
// returns, not lazily: a second process loading the file right after
// must see the new record.
func TestAddPersistsImmediately(t *testing.T) {
	c := openTestCatalog(t)

	if _, err := c.Add("Dune:Frank Herbert:9780441013593:3"); err != nil {
		t.Fatalf("Add: %v", err)
	}

	again, err := Open(c.path, Config{})
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if again.Loaded() != 1 {
		t.Errorf("Loaded after reopen = %d, want 1", again.Loaded())
	}
}

func TestAddLeavesNoTempFile(t *testing.T) {
	c := openTestCatalog(t)

	if _, err := c.Add("Dune:Frank Herbert:9780441013593:3"); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if _, err := os.Stat(c.path + ".tmp"); !os.IsNotExist(err) {
		t.Errorf("temp file left behind: %v", err)
	}
}
