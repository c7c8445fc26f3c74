// Command fatls mounts a raw FAT12/16/32 image and inspects it the way the
// kernel's read-only engine sees it: ls walks the directory structure
// directly against the parsed volume, while cat and stat round-trip through
// the same sysfs.Syscalls dispatch a task-visible open/read/stat64 call
// would go through, with a SimMemory arena standing in for user memory.
package main

import (
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/smallkernel/fatfs/fat"
	"github.com/smallkernel/fatfs/sysfs"
	"github.com/smallkernel/fatfs/vfs"
)

const (
	// Layout of the CLI's simulated user-memory arena. Generous enough for
	// any path this tool is likely to be pointed at and a handful of
	// kilobytes of file content per read.
	arenaSize   = 64 * 1024
	pathAddr    = 0
	statBufAddr = 512
	ioBufAddr   = 1024
	ioBufSize   = arenaSize - ioBufAddr
)

var (
	imagePath string
	hostFs    afero.Fs = afero.NewOsFs()

	hdr    *fat.Header
	mounts *vfs.MountTable
	calls  *sysfs.Syscalls
	mem    *sysfs.SimMemory
	fsTask *sysfs.Task
)

var rootCmd = &cobra.Command{
	Use:   "fatls",
	Short: "inspect a FAT12/16/32 image the way the kernel's read-only engine sees it",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return mountImage()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&imagePath, "image", "i", "", "path to a FAT volume image")
	rootCmd.MarkPersistentFlagRequired("image")

	rootCmd.AddCommand(lsCmd)
	rootCmd.AddCommand(catCmd)
	rootCmd.AddCommand(statCmd)
}

func mountImage() error {
	data, err := afero.ReadFile(hostFs, imagePath)
	if err != nil {
		return err
	}

	hdr, err = fat.ParseHeader(data)
	if err != nil {
		return err
	}

	mounts = vfs.NewMountTable()
	mounts.Mount("/", vfs.NewFatFilesystem(hdr))

	mem = sysfs.NewSimMemory(make([]byte, arenaSize))
	calls = sysfs.NewSyscalls(mounts, mem)
	fsTask = sysfs.NewTask(0, "/")
	return nil
}

func writePath(path string) {
	mem.WriteString(pathAddr, path)
}
