package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/smallkernel/fatfs/fat"
)

var lsCmd = &cobra.Command{
	Use:   "ls [path]",
	Short: "list a directory's entries",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "/"
		if len(args) == 1 {
			path = args[0]
		}

		entry, err := hdr.SearchEntry(path)
		if err != nil {
			return err
		}
		if !entry.IsDirectory() {
			return fmt.Errorf("%s: not a directory", path)
		}

		cluster := entry.FirstCluster()
		var region []byte
		if cluster == 0 {
			region, cluster, err = hdr.RootDir()
			if err != nil {
				return err
			}
		}

		return hdr.WalkDir(cluster, region, func(_ *fat.Header, e *fat.EntryHeader, longName string) (bool, error) {
			if e.IsVolumeID() {
				return false, nil
			}
			name := longName
			if name == "" {
				name = fat.ShortName(e)
			}
			kind := "-"
			if e.IsDirectory() {
				kind = "d"
			}
			fmt.Printf("%s %8d %s\n", kind, e.FileSize, name)
			return false, nil
		})
	},
}
