package fat

import (
	"errors"
	"testing"
)

func TestReadWholeFileSingleCluster(t *testing.T) {
	h := buildNestedImage(t)
	entry, err := h.SearchEntry("/FILE1.TXT")
	if err != nil {
		t.Fatalf("SearchEntry: %v", err)
	}

	dest := make([]byte, entry.FileSize)
	if err := h.ReadWholeFile(entry, dest); err != nil {
		t.Fatalf("ReadWholeFile: %v", err)
	}
	if string(dest) != "hello" {
		t.Fatalf("ReadWholeFile content = %q, want %q", dest, "hello")
	}
}

func TestReadWholeFileSpansClusterChain(t *testing.T) {
	// Two clusters of one sector (512 bytes) each, chained 2 -> 3 -> EOC,
	// holding a file just over one cluster in size.
	part1 := make([]byte, 512)
	for i := range part1 {
		part1[i] = 'A'
	}
	part2 := []byte("tail")

	root := concatEntries(
		encodeShortEntry("BIG.TXT", AttrArchive, 2, uint32(len(part1)+len(part2))),
		make([]byte, entrySize),
	)

	h := newFAT16HeaderWithRoot(t, []uint16{0, 0, 3, 0xFFFF}, root, [][]byte{part1, part2})

	entry, err := h.SearchEntry("/BIG.TXT")
	if err != nil {
		t.Fatalf("SearchEntry: %v", err)
	}

	dest := make([]byte, entry.FileSize)
	if err := h.ReadWholeFile(entry, dest); err != nil {
		t.Fatalf("ReadWholeFile: %v", err)
	}
	if string(dest[:512]) != string(part1) || string(dest[512:]) != "tail" {
		t.Fatalf("ReadWholeFile did not reassemble the chained clusters correctly")
	}
}

func TestReadWholeFileDestTooSmall(t *testing.T) {
	h := buildNestedImage(t)
	entry, err := h.SearchEntry("/FILE1.TXT")
	if err != nil {
		t.Fatalf("SearchEntry: %v", err)
	}
	if err := h.ReadWholeFile(entry, make([]byte, 1)); err == nil {
		t.Fatalf("expected an error when the destination buffer is smaller than the file")
	}
}

func TestReadWholeFilePrematureEOC(t *testing.T) {
	// The directory entry claims two clusters' worth of data, but the chain
	// hits EOC after the first: a malformed image, which ReadWholeFile must
	// surface as ErrTruncatedChain rather than a partial read.
	part1 := make([]byte, 512)
	for i := range part1 {
		part1[i] = 'A'
	}

	root := concatEntries(
		encodeShortEntry("BIG.TXT", AttrArchive, 2, uint32(len(part1)+4)),
		make([]byte, entrySize),
	)

	h := newFAT16HeaderWithRoot(t, []uint16{0, 0, 0xFFFF}, root, [][]byte{part1})

	entry, err := h.SearchEntry("/BIG.TXT")
	if err != nil {
		t.Fatalf("SearchEntry: %v", err)
	}

	dest := make([]byte, entry.FileSize)
	err = h.ReadWholeFile(entry, dest)
	if !errors.Is(err, ErrTruncatedChain) {
		t.Fatalf("ReadWholeFile error = %v, want ErrTruncatedChain", err)
	}
}

func TestUsedBytes(t *testing.T) {
	h := buildNestedImage(t)
	used, err := h.UsedBytes()
	if err != nil {
		t.Fatalf("UsedBytes: %v", err)
	}
	if used == 0 {
		t.Fatalf("expected a non-zero used-bytes estimate for a volume with allocated clusters")
	}
}
