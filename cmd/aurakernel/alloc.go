package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/joshuapare/aurakernel/alloc"
)

var allocCapacity uint64

func init() {
	rootCmd.AddCommand(newAllocCmd())
}

func newAllocCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "alloc <size>...",
		Short: "Run a sequence of allocations against a fresh allocator",
		Long: `The alloc command creates an allocator and requests each size in order,
reporting which requests were granted and the final usage. Rejected requests
are reported, not treated as command failures.

Sizes accept decimal, 0x hex or 0o octal.

Example:
  aurakernel alloc --capacity 100 60 50 40 1
  aurakernel alloc 4096 0x1000 --json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var capacity *uint64
			if cmd.Flags().Changed("capacity") {
				capacity = &allocCapacity
			}
			return runAlloc(args, capacity)
		},
	}
	cmd.Flags().
		Uint64Var(&allocCapacity, "capacity", 0, "Allocator capacity in bytes; 0 is a valid capacity (default: memory.capacity from config)")
	return cmd
}

type allocStep struct {
	Size   uint64 `json:"size"`
	Result string `json:"result"`
	Base   string `json:"base,omitempty"`
}

type allocReport struct {
	Steps     []allocStep `json:"steps"`
	Allocated uint64      `json:"allocated_bytes"`
	Capacity  uint64      `json:"capacity_bytes"`
}

// runAlloc allocates each size in args against a fresh allocator. A nil
// capacity means the flag was not given and memory.capacity is used.
func runAlloc(args []string, capacity *uint64) error {
	sizes := make([]uint64, 0, len(args))
	for _, a := range args {
		n, err := strconv.ParseUint(a, 0, 64)
		if err != nil {
			return fmt.Errorf("invalid size %q: %w", a, err)
		}
		sizes = append(sizes, n)
	}

	if capacity == nil {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		capacity = &cfg.Memory.Capacity
	}

	ra := alloc.New(*capacity)
	report := allocReport{Steps: make([]allocStep, 0, len(sizes))}
	for _, size := range sizes {
		r, err := ra.Allocate(size)
		step := allocStep{Size: size, Result: alloc.Kind(err)}
		if err == nil {
			step.Base = fmt.Sprintf("0x%x", r.Base)
		}
		report.Steps = append(report.Steps, step)
	}
	u := ra.Usage()
	report.Allocated, report.Capacity = u.Allocated, u.Capacity

	if jsonOut {
		return printJSON(report)
	}
	for _, st := range report.Steps {
		if st.Base != "" {
			printInfo("allocate(%d): %s base=%s\n", st.Size, st.Result, st.Base)
		} else {
			printInfo("allocate(%d): %s\n", st.Size, st.Result)
		}
	}
	printInfo("usage: %d/%d bytes\n", report.Allocated, report.Capacity)
	return nil
}
