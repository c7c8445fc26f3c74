package fat

import (
	"bytes"
	"encoding/binary"

	"github.com/smallkernel/fatfs/checkpoint"
)

// WalkFunc is called once per short directory entry found by WalkDir. If it
// returns stop == true, or a non-nil error, the walk ends immediately.
type WalkFunc func(header *Header, entry *EntryHeader, longName string) (stop bool, err error)

// longNameRun accumulates the fragments of a VFAT long name while a
// directory region is scanned. Fragments arrive in reverse order (the last
// part of the name first), so the buffer is filled back-to-front and
// reversed once a matching short entry is seen.
type longNameRun struct {
	buf      [260]byte
	size     int
	checksum int
	valid    bool
}

func (r *longNameRun) reset(checksum byte) {
	r.size = 0
	r.checksum = int(checksum)
	r.valid = true
}

// feed appends one fragment's UTF-16 code units (all three fields, in
// order), stopping at the embedded NUL/0xFFFF terminator and rejecting
// non-ASCII input (this engine, like the system it's grounded on, only
// supports the ASCII subset of long names). The fragment's characters are
// appended last-first, so once every fragment is in, the buffer holds the
// whole name back-to-front. Any character outside the short-name charset
// table invalidates the whole run, matching fat_handle_long_dir_entry's
// validation during reversal.
func (r *longNameRun) feed(units []uint16) {
	if !r.valid {
		return
	}
	var chars []byte
	for _, u := range units {
		if u == 0 || u == 0xFFFF {
			break
		}
		if u>>8 != 0 {
			r.valid = false
			return
		}
		chars = append(chars, byte(u))
	}
	for i := len(chars) - 1; i >= 0; i-- {
		if r.size >= len(r.buf) || !isValidNameChar(chars[i]) {
			r.valid = false
			return
		}
		r.buf[r.size] = chars[i]
		r.size++
	}
}

func (r *longNameRun) reversed() string {
	out := make([]byte, r.size)
	for i := 0; i < r.size; i++ {
		out[i] = r.buf[r.size-1-i]
	}
	return string(out)
}

func handleLongNameEntry(r *longNameRun, le *LongNameEntry) {
	if r.checksum != int(le.Checksum) {
		r.reset(le.Checksum)
	}
	if !r.valid {
		return
	}
	units := make([]uint16, 0, 13)
	units = append(units, le.First[:]...)
	units = append(units, le.Second[:]...)
	units = append(units, le.Third[:]...)
	r.feed(units)
}

// WalkDir scans one directory's entries, reassembling long names and
// invoking fn for every short entry found (volume-id pseudo-entries and
// deleted slots are skipped silently, never passed to fn). cluster == 0
// selects the fixed-size FAT12/16 root, in which case rootRegion must hold
// its entry bytes directly; any other cluster number follows the volume's
// FAT chain, reading one cluster's worth of entries at a time.
func (h *Header) WalkDir(cluster uint32, rootRegion []byte, fn WalkFunc) error {
	run := &longNameRun{checksum: -1}

	scan := func(data []byte) (done bool, err error) {
		n := len(data) / entrySize
		for i := 0; i < n; i++ {
			raw := data[i*entrySize : (i+1)*entrySize]
			attr := Attribute(raw[11])

			if isLongNameFragment(attr) {
				var le LongNameEntry
				if err := binary.Read(bytes.NewReader(raw), binary.LittleEndian, &le); err != nil {
					return false, checkpoint.From(err)
				}
				handleLongNameEntry(run, &le)
				continue
			}

			if raw[0] == nameByteFree {
				return true, nil
			}

			if raw[0] == nameByteDeleted {
				run.size = 0
				continue
			}

			var eh EntryHeader
			if err := binary.Read(bytes.NewReader(raw), binary.LittleEndian, &eh); err != nil {
				return false, checkpoint.From(err)
			}

			if eh.IsVolumeID() {
				run.size = 0
				continue
			}

			var longName string
			if run.size > 0 && run.valid && byte(run.checksum) == shortnameChecksum(eh.Name) {
				longName = run.reversed()
			}
			run.size = 0

			stop, err := fn(h, &eh, longName)
			if err != nil {
				return false, err
			}
			if stop {
				return true, nil
			}
		}
		return false, nil
	}

	if cluster == 0 {
		_, err := scan(rootRegion)
		return err
	}

	for {
		data, err := h.ClusterData(cluster)
		if err != nil {
			return err
		}
		done, err := scan(data)
		if err != nil {
			return err
		}
		if done {
			return nil
		}
		next, err := h.ReadFATEntry(cluster, 0)
		if err != nil {
			return err
		}
		if h.IsEOC(next) {
			return nil
		}
		if h.IsBad(next) {
			return checkpoint.Wrap(ErrBadCluster, ErrInvalidImage)
		}
		cluster = next
	}
}
