package fat

import "testing"

func buildNestedImage(t *testing.T) *Header {
	t.Helper()

	root := concatEntries(
		encodeShortEntry("SUB", AttrDirectory, 2, 0),
		encodeShortEntry("FILE1.TXT", AttrArchive, 3, 5),
		make([]byte, entrySize),
	)

	subDir := concatEntries(
		encodeShortEntry("INNER.TXT", AttrArchive, 4, 3),
		make([]byte, entrySize),
	)

	return newFAT16HeaderWithRoot(t,
		[]uint16{0, 0, 0xFFFF, 0xFFFF, 0xFFFF},
		root,
		[][]byte{subDir, []byte("hello"), []byte("abc")},
	)
}

func TestSearchEntryRoot(t *testing.T) {
	h := buildNestedImage(t)
	e, err := h.SearchEntry("/")
	if err != nil {
		t.Fatalf("SearchEntry(/): %v", err)
	}
	if !e.IsDirectory() {
		t.Fatalf("root entry should report itself as a directory")
	}
}

func TestSearchEntryTopLevelFile(t *testing.T) {
	h := buildNestedImage(t)
	e, err := h.SearchEntry("/FILE1.TXT")
	if err != nil {
		t.Fatalf("SearchEntry: %v", err)
	}
	if e.FileSize != 5 {
		t.Fatalf("FileSize = %d, want 5", e.FileSize)
	}
}

func TestSearchEntryCaseInsensitiveShortName(t *testing.T) {
	h := buildNestedImage(t)
	if _, err := h.SearchEntry("/file1.txt"); err != nil {
		t.Fatalf("short-name matches must be case-insensitive: %v", err)
	}
}

func TestSearchEntryNested(t *testing.T) {
	h := buildNestedImage(t)
	e, err := h.SearchEntry("/SUB/INNER.TXT")
	if err != nil {
		t.Fatalf("SearchEntry: %v", err)
	}
	if e.FileSize != 3 {
		t.Fatalf("FileSize = %d, want 3", e.FileSize)
	}
}

func TestSearchEntryNotFound(t *testing.T) {
	h := buildNestedImage(t)
	if _, err := h.SearchEntry("/NOPE.TXT"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSearchEntryDescendsIntoNonDirectory(t *testing.T) {
	h := buildNestedImage(t)
	if _, err := h.SearchEntry("/FILE1.TXT/X"); err != ErrNotADirectory {
		t.Fatalf("expected ErrNotADirectory, got %v", err)
	}
}

func TestSearchEntryTrailingSlashRequiresDirectory(t *testing.T) {
	h := buildNestedImage(t)
	if _, err := h.SearchEntry("/FILE1.TXT/"); err != ErrNotADirectory {
		t.Fatalf("expected ErrNotADirectory for a file path with a trailing slash, got %v", err)
	}
	if _, err := h.SearchEntry("/SUB/"); err != nil {
		t.Fatalf("a directory path with a trailing slash should resolve fine: %v", err)
	}
}
