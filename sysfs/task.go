package sysfs

import (
	"sync"

	"github.com/smallkernel/fatfs/vfs"
)

const (
	// MaxOpenFiles bounds the per-task handle table; slot allocation always
	// picks the lowest free index, matching the original's get_free_handle_num.
	MaxOpenFiles = 32

	// MaxPathLen bounds any path this layer will accept from user memory.
	MaxPathLen = 256

	// ArgsCopyBufSize backs the scratch buffer used to stage argument
	// structures (an iovec array, for instance) copied from user memory in
	// one shot before they're interpreted.
	ArgsCopyBufSize = 2 * MaxPathLen

	// IOCopyBufSize bounds a single read/write transfer; larger requests are
	// silently clamped, exactly as sys_read/sys_write clamp against it.
	IOCopyBufSize = 4096
)

// Task holds one process's syscall-visible filesystem state: its open file
// table, working directory, and the scratch buffers every syscall stages
// user data through. fsMu serializes the whole table, replacing the
// original's disable_preemption()/enable_preemption() pair with a per-task
// lock — the redesign spec calls for since Go has no analogous global
// preemption switch to hook into.
type Task struct {
	ID  int
	CWD string

	Handles [MaxOpenFiles]vfs.Handle

	ArgsCopyBuf []byte
	IOCopyBuf   []byte

	fsMu sync.Mutex
}

// NewTask allocates a task with an empty handle table rooted at cwd.
func NewTask(id int, cwd string) *Task {
	return &Task{
		ID:          id,
		CWD:         cwd,
		ArgsCopyBuf: make([]byte, ArgsCopyBufSize),
		IOCopyBuf:   make([]byte, IOCopyBufSize),
	}
}

func (t *Task) isFDValid(fd int) bool {
	return fd >= 0 && fd < len(t.Handles)
}

// freeSlot returns the lowest-numbered empty slot, or -1 if the table is
// full. Callers must hold fsMu.
func (t *Task) freeSlot() int {
	for i, h := range t.Handles {
		if h == nil {
			return i
		}
	}
	return -1
}

// getHandle looks up fd under a short-lived lock, mirroring get_fs_handle's
// own disable/enable pair around just the table read rather than the whole
// syscall body.
func (t *Task) getHandle(fd int) vfs.Handle {
	t.fsMu.Lock()
	defer t.fsMu.Unlock()
	if !t.isFDValid(fd) {
		return nil
	}
	return t.Handles[fd]
}
