package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/smallkernel/fatfs/klog"
)

func main() {
	if dev, err := zap.NewDevelopment(); err == nil {
		klog.SetLogger(dev.Sugar())
	}
	defer klog.Sync()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
