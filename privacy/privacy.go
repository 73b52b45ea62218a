// Package privacy masks strings before they leave the device.
//
// A Shield applies one Level to every input:
//
//	Standard  input unchanged
//	High      "***@masked.ch" for anything containing '@',
//	          otherwise "SECURE-" plus the first four characters
//	Paranoid  "HASH-" plus a hex digest of the whole input
//
// The digest is a mock checksum, stable across runs but not cryptographic.
package privacy

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
)

// Level controls how aggressively input is transformed.
type Level uint8

const (
	Standard Level = iota
	High
	Paranoid // non-networked processing, hashes only
)

// Output markers.
const (
	MaskedEmail  = "***@masked.ch"
	SecurePrefix = "SECURE-"
	HashPrefix   = "HASH-"

	securePrefixLen = 4
)

var levelNames = [...]string{
	Standard: "Standard",
	High:     "High",
	Paranoid: "Paranoid",
}

func (l Level) String() string {
	if int(l) < len(levelNames) {
		return levelNames[l]
	}
	return "Level(" + strconv.Itoa(int(l)) + ")"
}

// ParseLevel converts a level name to a Level. Matching ignores case.
func ParseLevel(s string) (Level, error) {
	fold := cases.Fold()
	want := fold.String(strings.TrimSpace(s))
	for l, name := range levelNames {
		if fold.String(name) == want {
			return Level(l), nil
		}
	}
	return 0, fmt.Errorf("privacy: unknown level %q", s)
}

// Shield masks data at a fixed Level.
type Shield struct {
	level Level
}

// New returns a Shield for level.
func New(level Level) *Shield {
	return &Shield{level: level}
}

// Level returns the shield's level.
func (s *Shield) Level() Level {
	return s.level
}

// Mask transforms data according to the shield's level.
func (s *Shield) Mask(data string) string {
	return Mask(s.level, data)
}

// Mask transforms data according to level. Unknown levels are treated as Paranoid.
func Mask(level Level, data string) string {
	switch level {
	case Standard:
		return data
	case High:
		if strings.Contains(data, "@") {
			return MaskedEmail
		}
		return SecurePrefix + firstRunes(data, securePrefixLen)
	default:
		return HashPrefix + strconv.FormatUint(mockHash(data), 16)
	}
}

// firstRunes returns up to n leading characters of s.
func firstRunes(s string, n int) string {
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}

// mockHash sums the code points of s with wrapping arithmetic.
func mockHash(s string) uint64 {
	var h uint64
	for _, r := range s {
		h += uint64(r)
	}
	return h
}
