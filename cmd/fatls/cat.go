package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var catCmd = &cobra.Command{
	Use:   "cat <path>",
	Short: "print a file's contents by round-tripping through the syscall dispatch layer",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		writePath(args[0])

		fd := calls.Open(fsTask, pathAddr, os.O_RDONLY)
		if fd < 0 {
			return fmt.Errorf("open %s: errno %d", args[0], fd)
		}
		defer calls.Close(fsTask, int(fd))

		for {
			n := calls.Read(fsTask, int(fd), ioBufAddr, ioBufSize)
			if n < 0 {
				return fmt.Errorf("read %s: errno %d", args[0], n)
			}
			if n == 0 {
				break
			}
			os.Stdout.Write(mem.ReadBytes(ioBufAddr, int(n)))
		}
		return nil
	},
}
