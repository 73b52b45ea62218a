package main

import (
	"github.com/spf13/cobra"

	"github.com/joshuapare/aurakernel/privacy"
)

var maskLevel string

func init() {
	cmd := newMaskCmd()
	cmd.Flags().StringVarP(&maskLevel, "level", "l", "", "Privacy level: standard, high, paranoid (default: privacy.level from config)")
	rootCmd.AddCommand(cmd)
}

func newMaskCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mask <input>...",
		Short: "Mask strings with the privacy shield",
		Long: `The mask command runs each input through the privacy shield.

Example:
  aurakernel mask user@example.com abcd1234
  aurakernel mask --level paranoid session-token`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMask(args)
		},
	}
}

type maskResult struct {
	Input  string `json:"input"`
	Output string `json:"output"`
}

func runMask(args []string) error {
	name := maskLevel
	if name == "" {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		name = cfg.Privacy.Level
	}
	level, err := privacy.ParseLevel(name)
	if err != nil {
		return err
	}

	shield := privacy.New(level)
	results := make([]maskResult, 0, len(args))
	for _, in := range args {
		results = append(results, maskResult{Input: in, Output: shield.Mask(in)})
	}

	if jsonOut {
		return printJSON(results)
	}
	for _, r := range results {
		printInfo("%s -> %s\n", r.Input, r.Output)
	}
	return nil
}
