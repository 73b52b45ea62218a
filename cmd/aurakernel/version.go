package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/aurakernel/bridge"
	"github.com/joshuapare/aurakernel/kernel"
)

var (
	commit = "none"
	date   = "unknown"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runVersion()
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

type versionInfo struct {
	Kernel string `json:"kernel"`
	Bridge string `json:"bridge"`
	Commit string `json:"commit"`
	Built  string `json:"built"`
}

// versionStrings hands out the bridge version string. It goes through the
// handle table like any other caller's.
var versionStrings = bridge.NewStrings()

func runVersion() (err error) {
	h, bv := versionStrings.Acquire()
	defer func() {
		if rerr := versionStrings.Release(h); rerr != nil && err == nil {
			err = fmt.Errorf("release bridge version string: %w", rerr)
		}
	}()

	if _, err := bridge.ParsedVersion(); err != nil {
		return fmt.Errorf("bridge version %q: %w", bv, err)
	}

	info := versionInfo{Kernel: kernel.Version, Bridge: bv, Commit: commit, Built: date}
	if jsonOut {
		return printJSON(info)
	}

	fmt.Printf("aurakernel %s\n", info.Kernel)
	fmt.Printf("  bridge: %s\n", info.Bridge)
	fmt.Printf("  commit: %s\n", info.Commit)
	fmt.Printf("  built: %s\n", info.Built)
	return nil
}
