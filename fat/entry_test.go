package fat

import "testing"

func TestFirstCluster(t *testing.T) {
	e := &EntryHeader{FirstClusterHI: 0x0001, FirstClusterLO: 0x0002}
	if got := e.FirstCluster(); got != 0x00010002 {
		t.Fatalf("FirstCluster() = %#x, want %#x", got, 0x00010002)
	}
}

func TestIsLongNameFragmentRequiresExactMatch(t *testing.T) {
	if !isLongNameFragment(AttrLongName) {
		t.Fatalf("the exact long-name attribute combination must be recognized")
	}
	// Read-only + hidden + system + archive is a legal (if unusual) short
	// entry attribute combination, and must not be mistaken for a
	// long-name fragment just because it shares three of four bits.
	if isLongNameFragment(AttrReadOnly | AttrHidden | AttrSystem | AttrArchive) {
		t.Fatalf("a short entry with RO|H|S|A bits set must not be treated as a long-name fragment")
	}
}

func TestIsVolumeIDExcludesLongNameFragments(t *testing.T) {
	e := &EntryHeader{Attribute: AttrLongName}
	if e.IsVolumeID() {
		t.Fatalf("a long-name fragment must not be reported as a volume-id entry")
	}
	e2 := &EntryHeader{Attribute: AttrVolumeID}
	if !e2.IsVolumeID() {
		t.Fatalf("a plain volume-id entry must be reported as such")
	}
}
