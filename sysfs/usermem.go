package sysfs

import (
	"errors"

	"github.com/smallkernel/fatfs/checkpoint"
)

// ErrFault mirrors -EFAULT at the Go error level, before a syscall method
// converts it into the numeric errno on return.
var ErrFault = errors.New("sysfs: invalid user memory access")

// ErrNameTooLong mirrors -ENAMETOOLONG at the Go error level.
var ErrNameTooLong = errors.New("sysfs: path exceeds the maximum length")

// UserMemory abstracts the copy_from_user/copy_to_user primitives a real
// kernel would use to move bytes across the user/kernel boundary. Every
// syscall method takes user pointers as uintptr and goes through this
// interface rather than touching a []byte directly, so a fault on invalid
// user memory is observable exactly where the original would trap it.
type UserMemory interface {
	CopyFromUser(dst []byte, userAddr uintptr, n int) (int, error)
	CopyToUser(userAddr uintptr, src []byte) error
	CopyStrFromUser(dst []byte, userAddr uintptr, maxLen int) (n int, truncated bool, err error)
	DuplicateUserPath(dst []byte, userAddr uintptr, maxLen int) (int, error)
}

// SimMemory is a reference UserMemory backed by a flat byte arena, standing
// in for a process's address space in tests. Address ranges registered via
// InjectFault fail every access that overlaps them, so a test can force a
// deterministic -EFAULT without needing real page-table plumbing.
type SimMemory struct {
	arena  []byte
	faults []faultRange
}

type faultRange struct {
	start, end uintptr
}

// NewSimMemory wraps arena as the simulated address space; addr 0 is the
// first byte of arena, addr len(arena) is one past the end.
func NewSimMemory(arena []byte) *SimMemory {
	return &SimMemory{arena: arena}
}

// InjectFault marks [start, end) as inaccessible for every subsequent copy.
func (m *SimMemory) InjectFault(start, end uintptr) {
	m.faults = append(m.faults, faultRange{start, end})
}

func (m *SimMemory) faulting(addr uintptr, n int) bool {
	end := addr + uintptr(n)
	for _, r := range m.faults {
		if addr < r.end && end > r.start {
			return true
		}
	}
	return int(addr)+n > len(m.arena) || n < 0
}

func (m *SimMemory) CopyFromUser(dst []byte, userAddr uintptr, n int) (int, error) {
	if m.faulting(userAddr, n) {
		return 0, ErrFault
	}
	return copy(dst, m.arena[userAddr:int(userAddr)+n]), nil
}

func (m *SimMemory) CopyToUser(userAddr uintptr, src []byte) error {
	if m.faulting(userAddr, len(src)) {
		return ErrFault
	}
	copy(m.arena[userAddr:], src)
	return nil
}

// CopyStrFromUser copies at most maxLen bytes up to and not including the
// first NUL. truncated reports whether the string was cut off because no
// NUL appeared within maxLen bytes.
func (m *SimMemory) CopyStrFromUser(dst []byte, userAddr uintptr, maxLen int) (int, bool, error) {
	if m.faulting(userAddr, 1) {
		return 0, false, ErrFault
	}
	start := int(userAddr)
	end := start
	for end < len(m.arena) && end-start < maxLen && m.arena[end] != 0 {
		end++
	}
	if end-start >= maxLen {
		return copy(dst, m.arena[start:end]), true, nil
	}
	return copy(dst, m.arena[start:end]), false, nil
}

// DuplicateUserPath copies a NUL-terminated path string, reporting
// ErrNameTooLong instead of a silently truncated result.
func (m *SimMemory) DuplicateUserPath(dst []byte, userAddr uintptr, maxLen int) (int, error) {
	n, truncated, err := m.CopyStrFromUser(dst, userAddr, maxLen)
	if err != nil {
		return 0, checkpoint.Wrap(err, ErrFault)
	}
	if truncated {
		return 0, checkpoint.Wrap(ErrNameTooLong, ErrNameTooLong)
	}
	return n, nil
}

// WriteString stages a NUL-terminated string at addr, for callers (such as
// cmd/fatls) that populate the simulated address space directly instead of
// going through a real user-space process.
func (m *SimMemory) WriteString(addr uintptr, s string) {
	n := copy(m.arena[addr:], s)
	m.arena[addr+uintptr(n)] = 0
}

// ReadBytes returns a copy of n bytes starting at addr, for callers reading
// back a syscall's result without reaching into the arena directly.
func (m *SimMemory) ReadBytes(addr uintptr, n int) []byte {
	out := make([]byte, n)
	copy(out, m.arena[addr:int(addr)+n])
	return out
}
