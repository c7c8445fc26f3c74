package fat

import "strings"

// rootDirEntry synthesizes the short entry describing "/" itself: FAT has
// no on-disk entry for the root, so callers that need to stat it (or that
// resolve a path of just "/") get this instead.
func rootDirEntry(rootCluster uint32) *EntryHeader {
	return &EntryHeader{
		Attribute:      AttrDirectory,
		FirstClusterHI: uint16(rootCluster >> 16),
		FirstClusterLO: uint16(rootCluster & 0xFFFF),
	}
}

// SearchEntry resolves an absolute, '/'-separated path to its short
// directory entry.
//
// Long-name components are matched case-sensitively; short-name components
// fall back to a case-insensitive match. This is a deliberate departure
// from the FAT spec (which treats both as case-insensitive) so a
// Unix-style caller can rely on case-sensitive lookups as long as every
// file it creates carries a long name.
func (h *Header) SearchEntry(absPath string) (*EntryHeader, error) {
	if !strings.HasPrefix(absPath, "/") {
		return nil, ErrNotFound
	}

	rootRegion, rootCluster, err := h.RootDir()
	if err != nil {
		return nil, err
	}

	trimmed := absPath[1:]
	if trimmed == "" {
		return rootDirEntry(rootCluster), nil
	}

	trailingSlash := strings.HasSuffix(trimmed, "/")
	parts := strings.Split(strings.Trim(trimmed, "/"), "/")

	cluster := rootCluster
	region := rootRegion
	var found *EntryHeader

	for idx, component := range parts {
		last := idx == len(parts)-1
		found = nil
		var notDir bool

		err := h.WalkDir(cluster, region, func(_ *Header, entry *EntryHeader, longName string) (bool, error) {
			var match bool
			if longName != "" {
				match = longName == component
			} else {
				match = strings.EqualFold(ShortName(entry), component)
			}
			if !match {
				return false, nil
			}
			found = entry
			if !last && !entry.IsDirectory() {
				notDir = true
			}
			return true, nil
		})
		if err != nil {
			return nil, err
		}
		if found == nil {
			return nil, ErrNotFound
		}
		if notDir {
			return nil, ErrNotADirectory
		}
		if last && trailingSlash && !found.IsDirectory() {
			return nil, ErrNotADirectory
		}
		if !last {
			cluster = found.FirstCluster()
			region = nil
		}
	}

	return found, nil
}
