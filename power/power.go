// Package power maps power modes to optimization factors for on-device work
// such as refresh rate or inference frequency.
package power

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Mode is a power core mode.
type Mode uint8

const (
	Performance Mode = iota
	Balanced
	Efficient
)

var modeNames = [...]string{
	Performance: "Performance",
	Balanced:    "Balanced",
	Efficient:   "Efficient",
}

var factors = [...]float32{
	Performance: 1.0,
	Balanced:    0.75,
	Efficient:   0.4,
}

func (m Mode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return "Mode(" + strconv.Itoa(int(m)) + ")"
}

// Label returns the upper-case name used in status reports, e.g. "BALANCED".
func (m Mode) Label() string {
	return cases.Upper(language.Und).String(m.String())
}

// ParseMode converts a mode name to a Mode. Matching ignores case.
func ParseMode(s string) (Mode, error) {
	fold := cases.Fold()
	want := fold.String(strings.TrimSpace(s))
	for m, name := range modeNames {
		if fold.String(name) == want {
			return Mode(m), nil
		}
	}
	return 0, fmt.Errorf("power: unknown mode %q", s)
}

// Profile holds a fixed power mode.
type Profile struct {
	mode Mode
}

// New returns a Profile for mode.
func New(mode Mode) *Profile {
	return &Profile{mode: mode}
}

// Default returns a Balanced profile.
func Default() *Profile {
	return New(Balanced)
}

// Mode returns the profile's mode.
func (p *Profile) Mode() Mode {
	return p.mode
}

// OptimizationFactor returns the efficiency multiplier for the profile's mode.
func (p *Profile) OptimizationFactor() float32 {
	return Factor(p.mode)
}

// Factor returns the efficiency multiplier for mode. Unknown modes get the
// Efficient factor.
func Factor(mode Mode) float32 {
	if int(mode) < len(factors) {
		return factors[mode]
	}
	return factors[Efficient]
}

// Report logs the profile's status. A nil logger discards the report.
func (p *Profile) Report(log *slog.Logger) {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	log.Info("power manager active",
		"mode", p.mode.Label(),
		"multiplier", strconv.FormatFloat(float64(p.OptimizationFactor()), 'f', 2, 32),
	)
}
