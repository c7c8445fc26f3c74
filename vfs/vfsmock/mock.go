// Source: vfs/vfs.go

// Package vfsmock is a hand-maintained mock of vfs.Filesystem and vfs.Handle,
// kept in the exact shape mockgen produces (Controller/Recorder/EXPECT), so
// sysfs's syscall tests can exercise EMFILE/EBADF/EFAULT/partial-writev
// paths without constructing a real on-disk image for every case.
package vfsmock

import (
	reflect "reflect"

	gomock "github.com/golang/mock/gomock"

	vfs "github.com/smallkernel/fatfs/vfs"
)

// MockFilesystem is a mock of vfs.Filesystem.
type MockFilesystem struct {
	ctrl     *gomock.Controller
	recorder *MockFilesystemMockRecorder
}

// MockFilesystemMockRecorder is the recorder for MockFilesystem.
type MockFilesystemMockRecorder struct {
	mock *MockFilesystem
}

// NewMockFilesystem creates a new mock instance.
func NewMockFilesystem(ctrl *gomock.Controller) *MockFilesystem {
	mock := &MockFilesystem{ctrl: ctrl}
	mock.recorder = &MockFilesystemMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockFilesystem) EXPECT() *MockFilesystemMockRecorder {
	return m.recorder
}

func (m *MockFilesystem) Open(path string, flags int) (vfs.Handle, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Open", path, flags)
	ret0, _ := ret[0].(vfs.Handle)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockFilesystemMockRecorder) Open(path, flags interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Open", reflect.TypeOf((*MockFilesystem)(nil).Open), path, flags)
}

func (m *MockFilesystem) Close(h vfs.Handle) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Close", h)
	ret0, _ := ret[0].(error)
	return ret0
}

func (mr *MockFilesystemMockRecorder) Close(h interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Close", reflect.TypeOf((*MockFilesystem)(nil).Close), h)
}

func (m *MockFilesystem) Read(h vfs.Handle, buf []byte) (int, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Read", h, buf)
	ret0, _ := ret[0].(int)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockFilesystemMockRecorder) Read(h, buf interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Read", reflect.TypeOf((*MockFilesystem)(nil).Read), h, buf)
}

func (m *MockFilesystem) Write(h vfs.Handle, buf []byte) (int, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Write", h, buf)
	ret0, _ := ret[0].(int)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockFilesystemMockRecorder) Write(h, buf interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Write", reflect.TypeOf((*MockFilesystem)(nil).Write), h, buf)
}

func (m *MockFilesystem) Ioctl(h vfs.Handle, request uintptr, arg uintptr) (int, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Ioctl", h, request, arg)
	ret0, _ := ret[0].(int)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockFilesystemMockRecorder) Ioctl(h, request, arg interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Ioctl", reflect.TypeOf((*MockFilesystem)(nil).Ioctl), h, request, arg)
}

func (m *MockFilesystem) Stat(path string) (vfs.Stat, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Stat", path)
	ret0, _ := ret[0].(vfs.Stat)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockFilesystemMockRecorder) Stat(path interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Stat", reflect.TypeOf((*MockFilesystem)(nil).Stat), path)
}

func (m *MockFilesystem) Lstat(path string) (vfs.Stat, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Lstat", path)
	ret0, _ := ret[0].(vfs.Stat)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockFilesystemMockRecorder) Lstat(path interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Lstat", reflect.TypeOf((*MockFilesystem)(nil).Lstat), path)
}

// MockHandle is a mock of vfs.Handle.
type MockHandle struct {
	ctrl     *gomock.Controller
	recorder *MockHandleMockRecorder
}

// MockHandleMockRecorder is the recorder for MockHandle.
type MockHandleMockRecorder struct {
	mock *MockHandle
}

// NewMockHandle creates a new mock instance.
func NewMockHandle(ctrl *gomock.Controller) *MockHandle {
	mock := &MockHandle{ctrl: ctrl}
	mock.recorder = &MockHandleMockRecorder{mock}
	return mock
}

func (m *MockHandle) EXPECT() *MockHandleMockRecorder {
	return m.recorder
}

func (m *MockHandle) Read(buf []byte) (int, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Read", buf)
	ret0, _ := ret[0].(int)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockHandleMockRecorder) Read(buf interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Read", reflect.TypeOf((*MockHandle)(nil).Read), buf)
}

func (m *MockHandle) Write(buf []byte) (int, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Write", buf)
	ret0, _ := ret[0].(int)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockHandleMockRecorder) Write(buf interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Write", reflect.TypeOf((*MockHandle)(nil).Write), buf)
}

func (m *MockHandle) Seek(offset int64, whence int) (int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Seek", offset, whence)
	ret0, _ := ret[0].(int64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockHandleMockRecorder) Seek(offset, whence interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Seek", reflect.TypeOf((*MockHandle)(nil).Seek), offset, whence)
}

func (m *MockHandle) Stat() (vfs.Stat, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Stat")
	ret0, _ := ret[0].(vfs.Stat)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockHandleMockRecorder) Stat() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Stat", reflect.TypeOf((*MockHandle)(nil).Stat))
}

func (m *MockHandle) Ioctl(request uintptr, arg uintptr) (int, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Ioctl", request, arg)
	ret0, _ := ret[0].(int)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockHandleMockRecorder) Ioctl(request, arg interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Ioctl", reflect.TypeOf((*MockHandle)(nil).Ioctl), request, arg)
}

func (m *MockHandle) Close() error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Close")
	ret0, _ := ret[0].(error)
	return ret0
}

func (mr *MockHandleMockRecorder) Close() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Close", reflect.TypeOf((*MockHandle)(nil).Close))
}

func (m *MockHandle) ShLock() {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "ShLock")
}

func (mr *MockHandleMockRecorder) ShLock() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ShLock", reflect.TypeOf((*MockHandle)(nil).ShLock))
}

func (m *MockHandle) ShUnlock() {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "ShUnlock")
}

func (mr *MockHandleMockRecorder) ShUnlock() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ShUnlock", reflect.TypeOf((*MockHandle)(nil).ShUnlock))
}

func (m *MockHandle) ExLock() {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "ExLock")
}

func (mr *MockHandleMockRecorder) ExLock() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ExLock", reflect.TypeOf((*MockHandle)(nil).ExLock))
}

func (m *MockHandle) ExUnlock() {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "ExUnlock")
}

func (mr *MockHandleMockRecorder) ExUnlock() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ExUnlock", reflect.TypeOf((*MockHandle)(nil).ExUnlock))
}
