package fat

import "testing"

func concatEntries(entries ...[]byte) []byte {
	var out []byte
	for _, e := range entries {
		out = append(out, e...)
	}
	return out
}

func TestWalkDirSkipsVolumeIDAndStopsAtSentinel(t *testing.T) {
	region := concatEntries(
		encodeShortEntry("VOLLABEL", AttrVolumeID, 0, 0),
		encodeShortEntry("FILE1.TXT", AttrArchive, 2, 10),
		encodeShortEntry("FILE2.TXT", AttrArchive, 3, 20),
		make([]byte, entrySize), // 0x00 sentinel: everything after is unused
		encodeShortEntry("SHOULDNOTAPPEAR", AttrArchive, 4, 1),
	)

	h := &Header{}
	var names []string
	err := h.WalkDir(0, region, func(_ *Header, entry *EntryHeader, _ string) (bool, error) {
		names = append(names, ShortName(entry))
		return false, nil
	})
	if err != nil {
		t.Fatalf("WalkDir: %v", err)
	}
	if len(names) != 2 || names[0] != "FILE1.TXT" || names[1] != "FILE2.TXT" {
		t.Fatalf("unexpected walk result: %v", names)
	}
}

func TestWalkDirSkipsDeletedEntry(t *testing.T) {
	deleted := encodeShortEntry("GONE.TXT", AttrArchive, 2, 1)
	deleted[0] = nameByteDeleted

	region := concatEntries(
		deleted,
		encodeShortEntry("KEPT.TXT", AttrArchive, 3, 1),
		make([]byte, entrySize),
	)

	h := &Header{}
	var names []string
	err := h.WalkDir(0, region, func(_ *Header, entry *EntryHeader, _ string) (bool, error) {
		names = append(names, ShortName(entry))
		return false, nil
	})
	if err != nil {
		t.Fatalf("WalkDir: %v", err)
	}
	if len(names) != 1 || names[0] != "KEPT.TXT" {
		t.Fatalf("expected only the surviving entry, got %v", names)
	}
}

func TestWalkDirReassemblesLongName(t *testing.T) {
	const long = "a-much-longer-name.txt"
	checksum := entryChecksum("ALONGN~1.TXT")

	region := concatEntries(
		encodeLongNameEntry(2, long[13:], checksum, true),
		encodeLongNameEntry(1, long[:13], checksum, false),
		encodeShortEntry("ALONGN~1.TXT", AttrArchive, 2, 100),
		make([]byte, entrySize),
	)

	h := &Header{}
	var gotLongName string
	err := h.WalkDir(0, region, func(_ *Header, _ *EntryHeader, longName string) (bool, error) {
		gotLongName = longName
		return false, nil
	})
	if err != nil {
		t.Fatalf("WalkDir: %v", err)
	}
	if gotLongName != long {
		t.Fatalf("reassembled long name = %q, want %q", gotLongName, long)
	}
}

func TestWalkDirDropsLongNameOnChecksumMismatch(t *testing.T) {
	region := concatEntries(
		encodeLongNameEntry(1, "mismatched", 0xAB, true),
		encodeShortEntry("FILE1.TXT", AttrArchive, 2, 1),
		make([]byte, entrySize),
	)

	h := &Header{}
	var gotLongName string
	var saw bool
	err := h.WalkDir(0, region, func(_ *Header, _ *EntryHeader, longName string) (bool, error) {
		gotLongName = longName
		saw = true
		return false, nil
	})
	if err != nil {
		t.Fatalf("WalkDir: %v", err)
	}
	if !saw {
		t.Fatalf("expected to see the short entry even though its long name didn't check out")
	}
	if gotLongName != "" {
		t.Fatalf("expected no long name on checksum mismatch, got %q", gotLongName)
	}
}

func TestWalkDirDropsLongNameOnInvalidCharacter(t *testing.T) {
	// Space is not in the short-name charset table, so a fragment
	// containing one must invalidate the whole run even though its
	// checksum matches the following short entry.
	const long = "bad name.txt"
	checksum := entryChecksum("BADNAM~1.TXT")

	region := concatEntries(
		encodeLongNameEntry(1, long, checksum, true),
		encodeShortEntry("BADNAM~1.TXT", AttrArchive, 2, 1),
		make([]byte, entrySize),
	)

	h := &Header{}
	var gotLongName string
	var saw bool
	err := h.WalkDir(0, region, func(_ *Header, _ *EntryHeader, longName string) (bool, error) {
		gotLongName = longName
		saw = true
		return false, nil
	})
	if err != nil {
		t.Fatalf("WalkDir: %v", err)
	}
	if !saw {
		t.Fatalf("expected to see the short entry even though its long name didn't check out")
	}
	if gotLongName != "" {
		t.Fatalf("expected no long name when a fragment has a disallowed character, got %q", gotLongName)
	}
}

func TestWalkDirStop(t *testing.T) {
	region := concatEntries(
		encodeShortEntry("FILE1.TXT", AttrArchive, 2, 1),
		encodeShortEntry("FILE2.TXT", AttrArchive, 3, 1),
		make([]byte, entrySize),
	)

	h := &Header{}
	var count int
	err := h.WalkDir(0, region, func(_ *Header, _ *EntryHeader, _ string) (bool, error) {
		count++
		return true, nil
	})
	if err != nil {
		t.Fatalf("WalkDir: %v", err)
	}
	if count != 1 {
		t.Fatalf("stop should end the walk after the first entry, got %d entries", count)
	}
}
