package output

import (
	"strings"

	"github.com/hejijunhao/vmcat/internal/model"
)

// Verbosity controls which event fields are written.
type Verbosity int

const (
	Minimal  Verbosity = iota // trigger and literal only
	Standard                  // plus provenance and raw line
	Full                      // plus description
)

// ParseVerbosity maps "minimal", "standard", "full" to a Verbosity.
// Unknown strings default to Standard.
func ParseVerbosity(s string) Verbosity {
	switch strings.ToLower(s) {
	case "minimal":
		return Minimal
	case "full":
		return Full
	default:
		return Standard
	}
}

func (v Verbosity) String() string {
	switch v {
	case Minimal:
		return "minimal"
	case Full:
		return "full"
	default:
		return "standard"
	}
}

// FormatEvent returns a copy of the event with fields stripped according to verbosity.
// At Minimal: Source, Line, Raw and Description are zeroed (omitted from JSON via omitempty).
// At Standard: Description is zeroed.
// At Full: all fields preserved.
func FormatEvent(e model.TriggerEvent, verbosity Verbosity) model.TriggerEvent {
	switch verbosity {
	case Minimal:
		e.Source = ""
		e.Line = 0
		e.Raw = ""
		e.Description = ""
	case Standard:
		e.Description = ""
	}
	return e
}
