package vfs

import (
	"sort"
	"strings"
)

// mountpoint pairs a path prefix with the Filesystem mounted there.
type mountpoint struct {
	prefix string
	fs     Filesystem
}

// MountTable resolves an absolute path to the Filesystem responsible for it
// by longest-prefix match, the same rule spec.md's single-root design
// degenerates to once more than one mountpoint is registered.
type MountTable struct {
	mounts []mountpoint
}

// NewMountTable builds an empty table; callers mount at least "/" before
// resolving any path.
func NewMountTable() *MountTable {
	return &MountTable{}
}

// Mount registers fs at prefix, replacing any previous registration at the
// exact same prefix. prefix must be absolute; "/" is the root mount.
func (t *MountTable) Mount(prefix string, fs Filesystem) {
	prefix = normalizePrefix(prefix)

	for i, m := range t.mounts {
		if m.prefix == prefix {
			t.mounts[i].fs = fs
			return
		}
	}

	t.mounts = append(t.mounts, mountpoint{prefix: prefix, fs: fs})
	sort.Slice(t.mounts, func(i, j int) bool {
		return len(t.mounts[i].prefix) > len(t.mounts[j].prefix)
	})
}

// Unmount removes the mountpoint registered at the exact prefix, if any.
func (t *MountTable) Unmount(prefix string) {
	prefix = normalizePrefix(prefix)
	for i, m := range t.mounts {
		if m.prefix == prefix {
			t.mounts = append(t.mounts[:i], t.mounts[i+1:]...)
			return
		}
	}
}

// Resolve finds the Filesystem mounted at the longest prefix of path, and
// returns the path relative to that mountpoint (always starting with "/").
func (t *MountTable) Resolve(path string) (fs Filesystem, relative string, ok bool) {
	for _, m := range t.mounts {
		if m.prefix == "/" {
			return m.fs, path, true
		}
		if path == m.prefix || strings.HasPrefix(path, m.prefix+"/") {
			rel := strings.TrimPrefix(path, m.prefix)
			if rel == "" {
				rel = "/"
			}
			return m.fs, rel, true
		}
	}
	return nil, "", false
}

func normalizePrefix(prefix string) string {
	if prefix == "/" {
		return prefix
	}
	return strings.TrimSuffix(prefix, "/")
}
