package fat

import "strings"

// packShortName renders "NAME.EXT" as the padded 11-byte on-disk form.
func packShortName(name string) [11]byte {
	var out [11]byte
	for i := range out {
		out[i] = ' '
	}
	base, ext, _ := strings.Cut(name, ".")
	copy(out[:8], strings.ToUpper(base))
	copy(out[8:11], strings.ToUpper(ext))
	return out
}

func encodeShortEntry(name string, attr Attribute, cluster, size uint32) []byte {
	buf := make([]byte, entrySize)
	n := packShortName(name)
	copy(buf[0:11], n[:])
	buf[11] = byte(attr)
	hi := uint16(cluster >> 16)
	lo := uint16(cluster & 0xFFFF)
	buf[20] = byte(hi)
	buf[21] = byte(hi >> 8)
	buf[26] = byte(lo)
	buf[27] = byte(lo >> 8)
	buf[28] = byte(size)
	buf[29] = byte(size >> 8)
	buf[30] = byte(size >> 16)
	buf[31] = byte(size >> 24)
	return buf
}

// encodeLongNameEntry packs up to 13 ASCII characters of one long-name
// fragment. seq is the fragment's 1-based ordinal in name order (1 holds
// the first 13 characters and is stored last, right before the short
// entry); last marks the highest-ordinal fragment, which is stored first.
func encodeLongNameEntry(seq int, part string, checksum byte, last bool) []byte {
	buf := make([]byte, entrySize)

	s := seq
	if last {
		s |= int(lastLongNameEntryBit)
	}
	buf[0] = byte(s)
	buf[11] = byte(AttrLongName)
	buf[13] = checksum

	units := make([]uint16, 13)
	for i := range units {
		units[i] = 0xFFFF
	}
	for i, c := range []byte(part) {
		units[i] = uint16(c)
	}
	if len(part) < 13 {
		units[len(part)] = 0
	}

	putUnits := func(offset int, u []uint16) {
		for _, v := range u {
			buf[offset] = byte(v)
			buf[offset+1] = byte(v >> 8)
			offset += 2
		}
	}
	putUnits(1, units[0:5])
	putUnits(14, units[5:11])
	putUnits(28, units[11:13])

	return buf
}

func entryChecksum(name string) byte {
	return shortnameChecksum(packShortName(name))
}
