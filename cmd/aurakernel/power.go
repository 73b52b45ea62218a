package main

import (
	"github.com/spf13/cobra"

	"github.com/joshuapare/aurakernel/power"
)

var powerMode string

func init() {
	cmd := newPowerCmd()
	cmd.Flags().StringVarP(&powerMode, "mode", "m", "", "Power mode: performance, balanced, efficient (default: power.mode from config)")
	rootCmd.AddCommand(cmd)
}

func newPowerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "power",
		Short: "Show the optimization factor for a power mode",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPower()
		},
	}
}

type powerReport struct {
	Mode   string  `json:"mode"`
	Factor float32 `json:"factor"`
}

func runPower() error {
	name := powerMode
	if name == "" {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		name = cfg.Power.Mode
	}
	mode, err := power.ParseMode(name)
	if err != nil {
		return err
	}

	p := power.New(mode)
	if jsonOut {
		return printJSON(powerReport{Mode: mode.String(), Factor: p.OptimizationFactor()})
	}
	printInfo("%s: %.2f\n", mode.Label(), p.OptimizationFactor())
	return nil
}
