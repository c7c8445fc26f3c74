package sysfs

import "testing"

func TestComputeAbsPath(t *testing.T) {
	tests := []struct {
		name string
		in   string
		cwd  string
		want string
	}{
		{"already absolute", "/a/b", "/x", "/a/b"},
		{"relative to cwd", "b/c", "/a", "/a/b/c"},
		{"dot segments collapse", "/a/./b/../c", "/", "/a/c"},
		{"leading dotdot at root is a no-op", "/../a", "/", "/a"},
		{"cwd itself", ".", "/a/b", "/a/b"},
		{"trailing slash", "/a/b/", "/", "/a/b"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ComputeAbsPath(tt.in, tt.cwd, MaxPathLen)
			if err != nil {
				t.Fatalf("ComputeAbsPath() error = %v", err)
			}
			if got != tt.want {
				t.Fatalf("ComputeAbsPath(%q, %q) = %q, want %q", tt.in, tt.cwd, got, tt.want)
			}
		})
	}
}

func TestComputeAbsPathTooLong(t *testing.T) {
	if _, err := ComputeAbsPath("/abcdef", "/", 4); err != ErrNameTooLong {
		t.Fatalf("ComputeAbsPath() error = %v, want ErrNameTooLong", err)
	}
}
