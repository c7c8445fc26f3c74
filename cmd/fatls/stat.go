package main

import (
	"encoding/binary"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var statCmd = &cobra.Command{
	Use:   "stat <path>",
	Short: "print a file's metadata by round-tripping through stat64",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		writePath(args[0])

		if rc := calls.Stat64(fsTask, pathAddr, statBufAddr); rc < 0 {
			return fmt.Errorf("stat %s: errno %d", args[0], rc)
		}

		raw := mem.ReadBytes(statBufAddr, 32)
		size := int64(binary.LittleEndian.Uint64(raw[0:]))
		mode := binary.LittleEndian.Uint32(raw[8:])
		modTime := int64(binary.LittleEndian.Uint64(raw[16:]))
		isDir := raw[24] != 0

		fmt.Printf("size:     %d\n", size)
		fmt.Printf("mode:     %#o\n", mode)
		fmt.Printf("modified: %s\n", time.Unix(modTime, 0).UTC())
		fmt.Printf("isDir:    %v\n", isDir)
		return nil
	},
}
