// Package sysfs implements the syscall-facing dispatch layer that
// multiplexes per-task file handles over a vfs.MountTable: open, close,
// read, write, readv, writev, ioctl, stat64, lstat64, and fcntl64, each
// returning a raw sptr the way a real syscall table entry would.
package sysfs

import (
	"encoding/binary"
	"errors"
	"io"

	"github.com/smallkernel/fatfs/klog"
	"github.com/smallkernel/fatfs/vfs"
)

// Syscalls binds a mount table and a UserMemory implementation together;
// every method takes the calling Task explicitly rather than storing one,
// since a real dispatch table is shared across every task in the system.
type Syscalls struct {
	Mounts *vfs.MountTable
	Mem    UserMemory
}

// NewSyscalls wires a syscall table against mounts and mem.
func NewSyscalls(mounts *vfs.MountTable, mem UserMemory) *Syscalls {
	return &Syscalls{Mounts: mounts, Mem: mem}
}

func (s *Syscalls) resolve(path string) (vfs.Filesystem, string, bool) {
	return s.Mounts.Resolve(path)
}

// Open resolves userPath against t.CWD, allocates the lowest free handle
// slot, and installs the opened Handle there. The path is copied out of
// user memory before the table is touched, but the compute/allocate/open
// sequence itself runs under t.fsMu, mirroring the original's single
// disable_preemption() span from compute_abs_path through the table write.
func (s *Syscalls) Open(t *Task, userPath uintptr, flags int) Sptr {
	var pathBuf [MaxPathLen]byte
	n, err := s.Mem.DuplicateUserPath(pathBuf[:], userPath, MaxPathLen)
	if err != nil {
		if errors.Is(err, ErrNameTooLong) {
			return Sptr(ENAMETOOLONG)
		}
		return Sptr(EFAULT)
	}
	origPath := string(pathBuf[:n])

	t.fsMu.Lock()
	defer t.fsMu.Unlock()

	abs, err := ComputeAbsPath(origPath, t.CWD, MaxPathLen)
	if err != nil {
		klog.Printk("sys_open", "path", origPath, "errno", ENAMETOOLONG)
		return Sptr(ENAMETOOLONG)
	}

	fd := t.freeSlot()
	if fd < 0 {
		klog.Printk("sys_open", "path", abs, "errno", EMFILE)
		return Sptr(EMFILE)
	}

	fs, rel, ok := s.resolve(abs)
	if !ok {
		klog.Printk("sys_open", "path", abs, "errno", ENOENT)
		return Sptr(ENOENT)
	}

	h, err := fs.Open(rel, flags)
	if err != nil {
		code := errnoFor(err)
		klog.Printk("sys_open", "path", abs, "errno", code)
		return Sptr(code)
	}

	t.Handles[fd] = h
	klog.Printk("sys_open", "path", abs, "fd", fd)
	return Sptr(fd)
}

// Close releases fd's handle and clears the slot. EBADF if fd is out of
// range or already closed.
func (s *Syscalls) Close(t *Task, fd int) Sptr {
	t.fsMu.Lock()
	defer t.fsMu.Unlock()

	if !t.isFDValid(fd) || t.Handles[fd] == nil {
		klog.Printk("sys_close", "fd", fd, "errno", EBADF)
		return Sptr(EBADF)
	}

	h := t.Handles[fd]
	t.Handles[fd] = nil
	if err := h.Close(); err != nil {
		return Sptr(errnoFor(err))
	}
	return 0
}

// Read transfers up to count bytes from fd into userBuf via t.IOCopyBuf.
// count is silently clamped to IOCopyBufSize. A fault copying the result
// back to user memory does not rewind the handle's offset: the read against
// the backing filesystem already completed and advanced it, and there is no
// staging buffer big enough to have deferred that until after the copy
// succeeded for an arbitrarily large request.
func (s *Syscalls) Read(t *Task, fd int, userBuf uintptr, count int) Sptr {
	h := t.getHandle(fd)
	if h == nil {
		return Sptr(EBADF)
	}
	if count > IOCopyBufSize {
		count = IOCopyBufSize
	}
	if count < 0 {
		return Sptr(EINVAL)
	}

	h.ShLock()
	n, err := h.Read(t.IOCopyBuf[:count])
	h.ShUnlock()

	if err != nil && !errors.Is(err, io.EOF) {
		return Sptr(errnoFor(err))
	}

	if n > 0 {
		if cerr := s.Mem.CopyToUser(userBuf, t.IOCopyBuf[:n]); cerr != nil {
			return Sptr(EFAULT)
		}
	}
	return Sptr(n)
}

// Write stages count bytes out of userBuf into t.IOCopyBuf before taking
// fd's exclusive lock, so a fault reading the user buffer is observed
// before any filesystem state changes rather than after a partial write.
func (s *Syscalls) Write(t *Task, fd int, userBuf uintptr, count int) Sptr {
	if count > IOCopyBufSize {
		count = IOCopyBufSize
	}
	if count < 0 {
		return Sptr(EINVAL)
	}

	if _, err := s.Mem.CopyFromUser(t.IOCopyBuf[:count], userBuf, count); err != nil {
		return Sptr(EFAULT)
	}

	h := t.getHandle(fd)
	if h == nil {
		return Sptr(EBADF)
	}

	h.ExLock()
	n, err := h.Write(t.IOCopyBuf[:count])
	h.ExUnlock()
	if err != nil {
		return Sptr(errnoFor(err))
	}
	return Sptr(n)
}

// Ioctl forwards request/arg to fd's handle under its exclusive lock.
func (s *Syscalls) Ioctl(t *Task, fd int, request, arg uintptr) Sptr {
	h := t.getHandle(fd)
	if h == nil {
		return Sptr(EBADF)
	}
	h.ExLock()
	n, err := h.Ioctl(request, arg)
	h.ExUnlock()
	if err != nil {
		return Sptr(errnoFor(err))
	}
	return Sptr(n)
}

// IOVec mirrors a struct iovec: a user pointer and a length, as consumed by
// Readv/Writev.
type IOVec struct {
	Base uintptr
	Len  int
}

const ioVecSize = 16 // two 8-byte fields, the layout a 64-bit struct iovec has

// Writev takes fd's exclusive lock once for the entire vector rather than
// once per segment: the original calls sys_write per iovec, each of which
// takes and releases the handle's lock on its own, so a concurrent writer
// can interleave with a single writev call. Locking once across the whole
// vector removes that interleaving, at the cost of holding the lock for
// longer.
func (s *Syscalls) Writev(t *Task, fd int, userIOV uintptr, iovcnt int) Sptr {
	if iovcnt < 0 || iovcnt*ioVecSize > ArgsCopyBufSize {
		return Sptr(EINVAL)
	}
	iov, err := s.copyIOVFromUser(t, userIOV, iovcnt)
	if err != nil {
		return Sptr(EFAULT)
	}

	h := t.getHandle(fd)
	if h == nil {
		return Sptr(EBADF)
	}

	h.ExLock()
	defer h.ExUnlock()

	var total int
	for _, v := range iov {
		n, werr := s.writeSegment(t, h, v.Base, v.Len)
		total += n
		if werr != nil {
			if total == 0 {
				return Sptr(errnoFor(werr))
			}
			return Sptr(total)
		}
		if n < v.Len {
			break
		}
	}
	return Sptr(total)
}

// Readv is Writev's read-side counterpart: one shared lock across the whole
// vector, cumulative byte count on a short or failed segment.
func (s *Syscalls) Readv(t *Task, fd int, userIOV uintptr, iovcnt int) Sptr {
	if iovcnt < 0 || iovcnt*ioVecSize > ArgsCopyBufSize {
		return Sptr(EINVAL)
	}
	iov, err := s.copyIOVFromUser(t, userIOV, iovcnt)
	if err != nil {
		return Sptr(EFAULT)
	}

	h := t.getHandle(fd)
	if h == nil {
		return Sptr(EBADF)
	}

	h.ShLock()
	defer h.ShUnlock()

	var total int
	for _, v := range iov {
		n, rerr := s.readSegment(t, h, v.Base, v.Len)
		total += n
		if rerr != nil {
			if total == 0 {
				return Sptr(errnoFor(rerr))
			}
			return Sptr(total)
		}
		if n < v.Len {
			break
		}
	}
	return Sptr(total)
}

func (s *Syscalls) copyIOVFromUser(t *Task, userIOV uintptr, iovcnt int) ([]IOVec, error) {
	raw := t.ArgsCopyBuf[:iovcnt*ioVecSize]
	if _, err := s.Mem.CopyFromUser(raw, userIOV, len(raw)); err != nil {
		return nil, err
	}
	iov := make([]IOVec, iovcnt)
	for i := range iov {
		off := i * ioVecSize
		iov[i].Base = uintptr(binary.LittleEndian.Uint64(raw[off:]))
		iov[i].Len = int(binary.LittleEndian.Uint64(raw[off+8:]))
	}
	return iov, nil
}

// writeSegment stages one iovec's bytes and writes them to an
// already-locked handle. count is clamped to IOCopyBufSize, so a single
// oversized segment within a writev call is transferred in one shot rather
// than looped — the same clamp Write applies to a standalone call.
func (s *Syscalls) writeSegment(t *Task, h vfs.Handle, userBuf uintptr, count int) (int, error) {
	if count > IOCopyBufSize {
		count = IOCopyBufSize
	}
	if _, err := s.Mem.CopyFromUser(t.IOCopyBuf[:count], userBuf, count); err != nil {
		return 0, ErrFault
	}
	return h.Write(t.IOCopyBuf[:count])
}

func (s *Syscalls) readSegment(t *Task, h vfs.Handle, userBuf uintptr, count int) (int, error) {
	if count > IOCopyBufSize {
		count = IOCopyBufSize
	}
	n, err := h.Read(t.IOCopyBuf[:count])
	if err != nil && !errors.Is(err, io.EOF) {
		return 0, err
	}
	if n > 0 {
		if cerr := s.Mem.CopyToUser(userBuf, t.IOCopyBuf[:n]); cerr != nil {
			return 0, ErrFault
		}
	}
	return n, nil
}

// StatBuf is the fixed-size record stat64/lstat64 write back into user
// memory: fields ordered and padded so binary.Write produces a stable
// layout regardless of the host's struct alignment rules.
type StatBuf struct {
	Size    int64
	Mode    uint32
	_       uint32
	ModTime int64
	IsDir   uint8
	_       [7]byte
}

func encodeStatBuf(st vfs.Stat) []byte {
	buf := StatBuf{
		Size:    st.Size,
		Mode:    uint32(st.Mode),
		ModTime: st.ModTime,
	}
	if st.IsDir {
		buf.IsDir = 1
	}
	out := make([]byte, 32)
	binary.LittleEndian.PutUint64(out[0:], uint64(buf.Size))
	binary.LittleEndian.PutUint32(out[8:], buf.Mode)
	binary.LittleEndian.PutUint64(out[16:], uint64(buf.ModTime))
	out[24] = buf.IsDir
	return out
}

func (s *Syscalls) Stat64(t *Task, userPath, userStatBuf uintptr) Sptr {
	return s.stat(t, userPath, userStatBuf, false)
}

// Lstat64 behaves exactly like Stat64: this filesystem has no symlinks, so
// there is never a link for it to refrain from following.
func (s *Syscalls) Lstat64(t *Task, userPath, userStatBuf uintptr) Sptr {
	return s.stat(t, userPath, userStatBuf, true)
}

func (s *Syscalls) stat(t *Task, userPath, userStatBuf uintptr, lstat bool) Sptr {
	var pathBuf [MaxPathLen]byte
	n, truncated, err := s.Mem.CopyStrFromUser(pathBuf[:], userPath, MaxPathLen)
	if err != nil {
		return Sptr(EFAULT)
	}
	if truncated {
		return Sptr(ENAMETOOLONG)
	}
	origPath := string(pathBuf[:n])

	t.fsMu.Lock()
	abs, err := ComputeAbsPath(origPath, t.CWD, MaxPathLen)
	t.fsMu.Unlock()
	if err != nil {
		return Sptr(ENAMETOOLONG)
	}

	fs, rel, ok := s.resolve(abs)
	if !ok {
		return Sptr(ENOENT)
	}

	var st vfs.Stat
	if lstat {
		st, err = fs.Lstat(rel)
	} else {
		st, err = fs.Stat(rel)
	}
	if err != nil {
		return Sptr(errnoFor(err))
	}

	if err := s.Mem.CopyToUser(userStatBuf, encodeStatBuf(st)); err != nil {
		return Sptr(EFAULT)
	}
	return 0
}

// fcntl command numbers, the subset the original recognizes by name before
// unconditionally refusing all of them.
const (
	fCmdDupFD        = 0
	fCmdGetFD        = 1
	fCmdSetFD        = 2
	fCmdGetFL        = 3
	fCmdSetFL        = 4
	fCmdGetLK        = 5
	fCmdSetLK        = 6
	fCmdSetLKW       = 7
	fCmdDupFDCloexec = 1030
)

var fcntlCommandNames = map[int]string{
	fCmdDupFD:        "F_DUPFD",
	fCmdGetFD:        "F_GETFD",
	fCmdSetFD:        "F_SETFD",
	fCmdGetFL:        "F_GETFL",
	fCmdSetFL:        "F_SETFL",
	fCmdGetLK:        "F_GETLK",
	fCmdSetLK:        "F_SETLK",
	fCmdSetLKW:       "F_SETLKW",
	fCmdDupFDCloexec: "F_DUPFD_CLOEXEC",
}

// Fcntl64 logs the recognized command name, if any, and always returns
// -EINVAL: none of fcntl's file-descriptor duplication or locking commands
// are implemented by this engine.
func (s *Syscalls) Fcntl64(t *Task, fd, cmd int, arg uintptr) Sptr {
	if name, ok := fcntlCommandNames[cmd]; ok {
		klog.Printk("sys_fcntl64", "fd", fd, "cmd", name)
	} else {
		klog.Printk("sys_fcntl64", "fd", fd, "cmd", cmd, "recognized", false)
	}
	return Sptr(EINVAL)
}

func errnoFor(err error) int {
	switch {
	case errors.Is(err, vfs.ErrNotExist):
		return ENOENT
	case errors.Is(err, vfs.ErrNotDir):
		return ENOTDIR
	case errors.Is(err, vfs.ErrIsDir):
		return EINVAL
	case errors.Is(err, vfs.ErrReadOnly):
		return EINVAL
	case errors.Is(err, vfs.ErrInvalidFlags):
		return EINVAL
	case errors.Is(err, ErrFault):
		return EFAULT
	default:
		return EINVAL
	}
}
