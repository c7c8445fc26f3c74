package sysfs

import (
	"testing"

	"github.com/golang/mock/gomock"

	"github.com/smallkernel/fatfs/vfs/vfsmock"
)

func TestTaskFreeSlotScansLowestFirst(t *testing.T) {
	task := NewTask(1, "/")
	ctrl := gomock.NewController(t)
	h := vfsmock.NewMockHandle(ctrl)

	task.Handles[0] = h
	task.Handles[1] = h
	if got := task.freeSlot(); got != 2 {
		t.Fatalf("freeSlot() = %d, want 2", got)
	}

	task.Handles[0] = nil
	if got := task.freeSlot(); got != 0 {
		t.Fatalf("freeSlot() after freeing slot 0 = %d, want 0", got)
	}
}

func TestTaskFreeSlotFullTableReturnsNegativeOne(t *testing.T) {
	task := NewTask(1, "/")
	ctrl := gomock.NewController(t)
	h := vfsmock.NewMockHandle(ctrl)
	for i := range task.Handles {
		task.Handles[i] = h
	}
	if got := task.freeSlot(); got != -1 {
		t.Fatalf("freeSlot() on a full table = %d, want -1", got)
	}
}

func TestTaskIsFDValid(t *testing.T) {
	task := NewTask(1, "/")
	cases := []struct {
		fd   int
		want bool
	}{
		{-1, false},
		{0, true},
		{MaxOpenFiles - 1, true},
		{MaxOpenFiles, false},
	}
	for _, c := range cases {
		if got := task.isFDValid(c.fd); got != c.want {
			t.Fatalf("isFDValid(%d) = %v, want %v", c.fd, got, c.want)
		}
	}
}

func TestTaskGetHandleReturnsNilForEmptySlot(t *testing.T) {
	task := NewTask(1, "/")
	if h := task.getHandle(0); h != nil {
		t.Fatalf("getHandle() on an empty slot = %v, want nil", h)
	}
}
