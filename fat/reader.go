package fat

import "github.com/smallkernel/fatfs/checkpoint"

// ReadWholeFile copies entry's full contents into dest, which must be at
// least entry.FileSize bytes. It follows the cluster chain directly rather
// than going through Header.WalkDir, since it needs raw cluster payloads
// rather than directory entries.
func (h *Header) ReadWholeFile(entry *EntryHeader, dest []byte) error {
	fsize := entry.FileSize
	if uint32(len(dest)) < fsize {
		return checkpoint.Wrap(ErrDestTooSmall, ErrReadFile)
	}
	if fsize == 0 {
		return nil
	}

	clusterSize := h.ClusterSize()
	cluster := entry.FirstCluster()
	var written uint32

	for {
		data, err := h.ClusterData(cluster)
		if err != nil {
			return checkpoint.Wrap(err, ErrReadFile)
		}

		remaining := fsize - written
		if remaining <= clusterSize {
			copy(dest[written:written+remaining], data[:remaining])
			return nil
		}

		copy(dest[written:written+clusterSize], data[:clusterSize])
		written += clusterSize

		next, err := h.ReadFATEntry(cluster, 0)
		if err != nil {
			return checkpoint.Wrap(err, ErrReadFile)
		}
		if h.IsEOC(next) {
			return checkpoint.Wrap(ErrTruncatedChain, ErrReadFile)
		}
		if h.IsBad(next) {
			return checkpoint.Wrap(ErrBadCluster, ErrReadFile)
		}
		cluster = next
	}
}

// UsedBytes estimates the volume's used space by scanning the first FAT for
// the first entry that reads back as free (value 0), and reporting the byte
// offset of the cluster that entry corresponds to. It is an estimate, not an
// exact accounting: a fragmented volume with free clusters interleaved among
// allocated ones will read as more full than it is.
func (h *Header) UsedBytes() (uint32, error) {
	clusterCount := totalSectors(&h.BPB) / uint32(h.BPB.SectorsPerCluster)

	var cluster uint32
	for ; cluster < clusterCount; cluster++ {
		value, err := h.ReadFATEntry(cluster, 0)
		if err != nil {
			return 0, err
		}
		if value == 0 {
			break
		}
	}

	return h.SectorForCluster(cluster) * uint32(h.BPB.BytesPerSector), nil
}
