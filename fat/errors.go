package fat

import "errors"

// Sentinel errors, in the same style as the teacher's own file.go errors.
// Most return sites wrap them with checkpoint.Wrap; SearchEntry's
// ErrNotFound/ErrNotADirectory and ReadFATEntry's ErrFAT12Unsupported are
// returned bare.
var (
	ErrInvalidImage     = errors.New("fat: not a valid FAT volume")
	ErrImageTooSmall    = errors.New("fat: image too small to hold a boot sector")
	ErrZeroGeometry     = errors.New("fat: bytes-per-sector or sectors-per-cluster is zero")
	ErrBadCluster       = errors.New("fat: cluster reference falls outside the image")
	ErrFAT12Unsupported = errors.New("fat: FAT12 volumes are not supported")
	ErrNotFound         = errors.New("fat: no such file or directory")
	ErrNotADirectory    = errors.New("fat: not a directory")
	ErrIsADirectory     = errors.New("fat: is a directory")
	ErrReadFile         = errors.New("fat: failed reading file contents")
	ErrReadDir          = errors.New("fat: failed reading directory contents")
	ErrDestTooSmall     = errors.New("fat: destination buffer smaller than file size")
	ErrTruncatedChain   = errors.New("fat: cluster chain ended before the file's declared size")
	ErrNameTooLong      = errors.New("fat: path component exceeds the maximum name length")
)
