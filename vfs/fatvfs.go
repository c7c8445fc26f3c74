package vfs

import (
	"errors"
	"io"
	"os"
	"sync"
	"time"

	"github.com/smallkernel/fatfs/checkpoint"
	"github.com/smallkernel/fatfs/fat"
)

// FatFilesystem adapts a parsed fat.Header to the Filesystem contract. It
// is read-only: every file is read in full at Open time (this engine never
// writes, and spec.md's non-goals explicitly exclude partial/lazy reads as
// a requirement), so Read/Seek afterwards just index into an in-memory
// copy, in the same spirit as the teacher's File wrapping a fatFileFs.
type FatFilesystem struct {
	hdr *fat.Header
}

// NewFatFilesystem wraps an already-parsed volume header.
func NewFatFilesystem(hdr *fat.Header) *FatFilesystem {
	return &FatFilesystem{hdr: hdr}
}

func (f *FatFilesystem) Open(path string, flags int) (Handle, error) {
	if flags&os.O_WRONLY != 0 || flags&os.O_RDWR != 0 {
		return nil, checkpoint.Wrap(ErrReadOnly, ErrInvalidFlags)
	}

	entry, err := f.hdr.SearchEntry(path)
	if err != nil {
		return nil, mapFatError(err)
	}

	var data []byte
	if !entry.IsDirectory() {
		data = make([]byte, entry.FileSize)
		if err := f.hdr.ReadWholeFile(entry, data); err != nil {
			if isInvariantViolation(err) {
				Fatal(err)
			}
			return nil, checkpoint.Wrap(err, ErrNotExist)
		}
	}

	return &fatHandle{entry: entry, path: path, data: data}, nil
}

func (f *FatFilesystem) Close(h Handle) error {
	return h.Close()
}

func (f *FatFilesystem) Read(h Handle, buf []byte) (int, error) {
	return h.Read(buf)
}

func (f *FatFilesystem) Write(h Handle, buf []byte) (int, error) {
	return h.Write(buf)
}

func (f *FatFilesystem) Ioctl(h Handle, request uintptr, arg uintptr) (int, error) {
	return h.Ioctl(request, arg)
}

func (f *FatFilesystem) Stat(path string) (Stat, error) {
	entry, err := f.hdr.SearchEntry(path)
	if err != nil {
		return Stat{}, mapFatError(err)
	}
	return entryStat(entry), nil
}

// Lstat behaves exactly like Stat: symlinks are an explicit non-goal here,
// so there is never a link for Lstat to refrain from following.
func (f *FatFilesystem) Lstat(path string) (Stat, error) {
	return f.Stat(path)
}

func isInvariantViolation(err error) bool {
	return errors.Is(err, fat.ErrBadCluster) ||
		errors.Is(err, fat.ErrFAT12Unsupported) ||
		errors.Is(err, fat.ErrTruncatedChain)
}

func mapFatError(err error) error {
	switch {
	case errors.Is(err, fat.ErrNotFound):
		return checkpoint.Wrap(err, ErrNotExist)
	case errors.Is(err, fat.ErrNotADirectory):
		return checkpoint.Wrap(err, ErrNotDir)
	case isInvariantViolation(err):
		Fatal(err)
		return nil // unreachable: Fatal never returns on a non-nil error
	default:
		return checkpoint.Wrap(err, ErrNotExist)
	}
}

func entryStat(e *fat.EntryHeader) Stat {
	mode := os.FileMode(0o444)
	if e.IsDirectory() {
		mode |= os.ModeDir
	}
	return Stat{
		Size:    int64(e.FileSize),
		Mode:    mode,
		ModTime: modTimeUnix(e),
		IsDir:   e.IsDirectory(),
	}
}

// modTimeUnix merges the on-disk write date and write time fields into a
// single Unix timestamp, matching the teacher's entryHeaderFileInfo.ModTime
// construction. Zero if the date field is unspecified (day or month 0).
func modTimeUnix(e *fat.EntryHeader) int64 {
	date := fat.ParseDate(e.WriteDate)
	if date.IsZero() {
		return 0
	}
	clock := fat.ParseTime(e.WriteTime)
	full := date.Add(time.Duration(clock.Hour())*time.Hour +
		time.Duration(clock.Minute())*time.Minute +
		time.Duration(clock.Second())*time.Second)
	return full.Unix()
}

// fatHandle is an open file or directory backed by an in-memory copy of its
// contents, with a RWMutex standing in for the per-handle shared/exclusive
// lock spec.md's shlock/exlock vtable entries describe.
type fatHandle struct {
	entry  *fat.EntryHeader
	path   string
	data   []byte
	offset int64
	mu     sync.RWMutex
}

func (h *fatHandle) Read(buf []byte) (int, error) {
	if h.entry.IsDirectory() {
		return 0, checkpoint.Wrap(ErrIsDir, ErrIsDir)
	}
	if h.offset >= int64(len(h.data)) {
		return 0, io.EOF
	}
	n := copy(buf, h.data[h.offset:])
	h.offset += int64(n)
	return n, nil
}

func (h *fatHandle) Write(buf []byte) (int, error) {
	return 0, checkpoint.Wrap(ErrReadOnly, ErrReadOnly)
}

func (h *fatHandle) Seek(offset int64, whence int) (int64, error) {
	var newOffset int64
	switch whence {
	case io.SeekStart:
		newOffset = offset
	case io.SeekCurrent:
		newOffset = h.offset + offset
	case io.SeekEnd:
		newOffset = int64(len(h.data)) + offset
	default:
		return 0, checkpoint.Wrap(os.ErrInvalid, ErrInvalidFlags)
	}
	if newOffset < 0 {
		return 0, checkpoint.Wrap(os.ErrInvalid, ErrInvalidFlags)
	}
	h.offset = newOffset
	return h.offset, nil
}

func (h *fatHandle) Stat() (Stat, error) {
	return entryStat(h.entry), nil
}

// Ioctl is unconditionally unsupported: this engine exposes no device-like
// controls on a regular file or directory handle.
func (h *fatHandle) Ioctl(request uintptr, arg uintptr) (int, error) {
	return 0, checkpoint.Wrap(ErrInvalidFlags, ErrInvalidFlags)
}

func (h *fatHandle) Close() error {
	return nil
}

func (h *fatHandle) ShLock()   { h.mu.RLock() }
func (h *fatHandle) ShUnlock() { h.mu.RUnlock() }
func (h *fatHandle) ExLock()   { h.mu.Lock() }
func (h *fatHandle) ExUnlock() { h.mu.Unlock() }
