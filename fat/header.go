// Package fat implements a read-only FAT12/16/32 filesystem engine over an
// in-memory disk image. Every function in this package works on byte slices
// taken directly from the image; there is no block-device abstraction here,
// by design (see SPEC_FULL.md's non-goals).
package fat

import (
	"bytes"
	"encoding/binary"

	"github.com/smallkernel/fatfs/checkpoint"
)

// Type classifies a volume by its cluster count, per the FAT spec's
// (slightly historical) thresholds rather than any field in the BPB itself.
type Type int

const (
	Type12 Type = iota
	Type16
	Type32
)

func (t Type) String() string {
	switch t {
	case Type12:
		return "FAT12"
	case Type16:
		return "FAT16"
	case Type32:
		return "FAT32"
	default:
		return "unknown"
	}
}

// BPB is the common BIOS Parameter Block shared by all three FAT flavors,
// decoded straight from the first 36 bytes of the image, jump instruction
// included.
type BPB struct {
	BSJumpBoot          [3]byte
	BSOEMName           [8]byte
	BytesPerSector      uint16
	SectorsPerCluster   byte
	ReservedSectorCount uint16
	NumFATs             byte
	RootEntryCount      uint16
	TotalSectors16      uint16
	Media               byte
	FATSize16           uint16
	SectorsPerTrack     uint16
	NumberOfHeads       uint16
	HiddenSectors       uint32
	TotalSectors32      uint32
}

// BPB32 is the FAT32-specific extension that immediately follows the common
// BPB. On FAT12/FAT16 volumes the same 54 bytes hold a different (narrower)
// extended record; we only decode the fields FAT32 volumes actually need.
type BPB32 struct {
	FATSize32      uint32
	ExtFlags       uint16
	FSVersion      uint16
	RootCluster    uint32
	FSInfo         uint16
	BkBootSector   uint16
	Reserved       [12]byte
	DriveNumber    byte
	Reserved1      byte
	BootSignature  byte
	VolumeID       uint32
	VolumeLabel    [11]byte
	FileSystemType [8]byte
}

// Header is a parsed view over a disk image: the decoded BPB plus the raw
// image bytes every other function in this package indexes into.
type Header struct {
	Image []byte
	BPB   BPB
	BPB32 BPB32
	Type  Type
}

const bpbSize = 36
const bpb32Size = 54

// ParseHeader decodes the boot sector of image and classifies the volume.
// It does not validate anything beyond "enough bytes exist to decode a BPB";
// callers that need stronger guarantees should check SectorsPerCluster is a
// power of two and BytesPerSector is one of {512,1024,2048,4096} themselves.
func ParseHeader(image []byte) (*Header, error) {
	if len(image) < bpbSize+bpb32Size {
		return nil, checkpoint.Wrap(ErrImageTooSmall, ErrInvalidImage)
	}

	var bpb BPB
	if err := binary.Read(bytes.NewReader(image[:bpbSize]), binary.LittleEndian, &bpb); err != nil {
		return nil, checkpoint.From(err)
	}

	var bpb32 BPB32
	if err := binary.Read(bytes.NewReader(image[bpbSize:bpbSize+bpb32Size]), binary.LittleEndian, &bpb32); err != nil {
		return nil, checkpoint.From(err)
	}

	if bpb.BytesPerSector == 0 || bpb.SectorsPerCluster == 0 {
		return nil, checkpoint.Wrap(ErrZeroGeometry, ErrInvalidImage)
	}

	h := &Header{Image: image, BPB: bpb, BPB32: bpb32}
	h.Type = classify(&bpb, &bpb32)
	return h, nil
}

// fatSize returns the size in sectors of a single FAT, preferring the
// 16-bit field and falling back to the FAT32 extension when it is zero.
func fatSize(bpb *BPB, bpb32 *BPB32) uint32 {
	if bpb.FATSize16 != 0 {
		return uint32(bpb.FATSize16)
	}
	return bpb32.FATSize32
}

func totalSectors(bpb *BPB) uint32 {
	if bpb.TotalSectors16 != 0 {
		return uint32(bpb.TotalSectors16)
	}
	return bpb.TotalSectors32
}

func rootDirSectors(bpb *BPB) uint32 {
	return (uint32(bpb.RootEntryCount)*32 + uint32(bpb.BytesPerSector) - 1) / uint32(bpb.BytesPerSector)
}

// classify implements the cluster-count thresholds from the FAT spec: the
// volume type is derived, never read from a field, because nothing on disk
// declares it directly.
func classify(bpb *BPB, bpb32 *BPB32) Type {
	fatAreaSectors := uint32(bpb.NumFATs) * fatSize(bpb, bpb32)
	rootSectors := rootDirSectors(bpb)
	dataSectors := totalSectors(bpb) - (uint32(bpb.ReservedSectorCount) + fatAreaSectors + rootSectors)
	clusterCount := dataSectors / uint32(bpb.SectorsPerCluster)

	switch {
	case clusterCount < 4085:
		return Type12
	case clusterCount < 65525:
		return Type16
	default:
		return Type32
	}
}

// FirstDataSector returns the sector number of cluster 2, i.e. the first
// sector of the data region following the reserved area, FATs and (on
// FAT12/16) the fixed-size root directory.
func (h *Header) FirstDataSector() uint32 {
	return uint32(h.BPB.ReservedSectorCount) + uint32(h.BPB.NumFATs)*fatSize(&h.BPB, &h.BPB32) + rootDirSectors(&h.BPB)
}

// SectorForCluster maps a cluster number (>= 2) to its first sector.
func (h *Header) SectorForCluster(cluster uint32) uint32 {
	return (cluster-2)*uint32(h.BPB.SectorsPerCluster) + h.FirstDataSector()
}

// ClusterSize is the size in bytes of a single cluster.
func (h *Header) ClusterSize() uint32 {
	return uint32(h.BPB.SectorsPerCluster) * uint32(h.BPB.BytesPerSector)
}

// ClusterData returns the slice of Image backing cluster.
func (h *Header) ClusterData(cluster uint32) ([]byte, error) {
	base := uint64(h.SectorForCluster(cluster)) * uint64(h.BPB.BytesPerSector)
	size := uint64(h.ClusterSize())
	if base+size > uint64(len(h.Image)) {
		return nil, checkpoint.Wrap(ErrBadCluster, ErrInvalidImage)
	}
	return h.Image[base : base+size], nil
}

// RootDir returns the directory entry bytes for the volume root, and the
// cluster number they live at (0 for a fixed-size FAT12/16 root, which has
// no cluster of its own).
func (h *Header) RootDir() ([]byte, uint32, error) {
	if h.Type != Type32 {
		sector := uint32(h.BPB.ReservedSectorCount) + uint32(h.BPB.NumFATs)*fatSize(&h.BPB, &h.BPB32)
		base := uint64(sector) * uint64(h.BPB.BytesPerSector)
		size := uint64(rootDirSectors(&h.BPB)) * uint64(h.BPB.BytesPerSector)
		if base+size > uint64(len(h.Image)) {
			return nil, 0, checkpoint.Wrap(ErrBadCluster, ErrInvalidImage)
		}
		return h.Image[base : base+size], 0, nil
	}
	data, err := h.ClusterData(h.BPB32.RootCluster)
	return data, h.BPB32.RootCluster, err
}

// ReadFATEntry reads the raw next-cluster value for cluster out of FAT
// number fatIndex (0-based). FAT12 is explicitly unsupported: its packed
// 12-bit entries straddle byte boundaries and no component of this engine
// needs to write a chain back out, so we only ever read the two more common
// layouts.
func (h *Header) ReadFATEntry(cluster, fatIndex uint32) (uint32, error) {
	if h.Type == Type12 {
		return 0, ErrFAT12Unsupported
	}

	entrySize := uint32(4)
	if h.Type == Type16 {
		entrySize = 2
	}

	fatOffset := cluster * entrySize
	sector := uint32(h.BPB.ReservedSectorCount) + fatIndex*fatSize(&h.BPB, &h.BPB32) + fatOffset/uint32(h.BPB.BytesPerSector)
	offsetInSector := fatOffset % uint32(h.BPB.BytesPerSector)
	base := uint64(sector)*uint64(h.BPB.BytesPerSector) + uint64(offsetInSector)

	if base+uint64(entrySize) > uint64(len(h.Image)) {
		return 0, checkpoint.Wrap(ErrBadCluster, ErrInvalidImage)
	}

	if h.Type == Type16 {
		return uint32(binary.LittleEndian.Uint16(h.Image[base:])), nil
	}
	return binary.LittleEndian.Uint32(h.Image[base:]) & 0x0FFFFFFF, nil
}

// IsEOC reports whether value is an end-of-chain marker for the volume's
// FAT type.
func (h *Header) IsEOC(value uint32) bool {
	if h.Type == Type16 {
		return value >= 0xFFF8
	}
	return value >= 0x0FFFFFF8
}

// IsBad reports whether value marks a cluster as bad.
func (h *Header) IsBad(value uint32) bool {
	if h.Type == Type16 {
		return value == 0xFFF7
	}
	return value == 0x0FFFFFF7
}
