package classifier

import (
	"regexp"
	"strings"

	"github.com/hejijunhao/vmcat/internal/engine/trigger"
)

// Strategy names the log format a token was extracted from.
type Strategy string

const (
	Unified    Strategy = "unified"    // JDK 9+ -Xlog:safepoint
	Statistics Strategy = "statistics" // JDK 8 -XX:+PrintSafepointStatistics
	Fallback   Strategy = "fallback"   // a known literal as a whole word, outside tagged non-safepoint lines
)

var (
	// [0.270s][info][safepoint] Safepoint "G1CollectForAllocation", Time since last: ...
	unifiedQuoted = regexp.MustCompile(`Safepoint "([^"]*)"`)
	// [5.210s][info][safepoint] Entering safepoint region: RedefineClasses
	unifiedRegion = regexp.MustCompile(`Entering safepoint region: (.+?)\s*$`)
	// 0.263: ParallelGCFailedAllocation       [      10          0              0    ] ...
	statsRow = regexp.MustCompile(`^\s*\d+\.\d+:\s+(.+?)\s+\[`)
	// [0.200s][info][gc,phases] ... : the leading decorations of a unified line.
	decorations = regexp.MustCompile(`^\s*(?:\[[^\]]*\])+`)
	// Literals as whole words, so "Exiting" is not EXIT.
	wholeWord = regexp.MustCompile(`\b` + trigger.Pattern() + `\b`)
)

// Result holds the outcome of classifying a single log line.
type Result struct {
	Kind     trigger.Kind
	Token    string
	Strategy Strategy
}

// Classifier isolates the trigger token in a log line and identifies it
// against the trigger catalog.
type Classifier struct {
	Fallback bool
}

// New creates a Classifier. With fallback enabled, lines in an unrecognised
// format still match when they contain a cataloged literal as a whole word.
// Unified lines whose tags do not include safepoint never fall back, so
// "[gc] GC(3) Pause Cleanup" is not a CLEANUP safepoint.
func New(fallback bool) *Classifier {
	return &Classifier{Fallback: fallback}
}

// Classify returns the trigger found in line. The second return is false when
// the line carries no trigger token. A token found in a known position but
// absent from the catalog classifies as trigger.Unknown.
func (c *Classifier) Classify(line string) (Result, bool) {
	if tok, ok := submatch(unifiedQuoted, line); ok {
		return Result{Kind: trigger.Identify(tok), Token: tok, Strategy: Unified}, true
	}
	if tok, ok := submatch(unifiedRegion, line); ok {
		return Result{Kind: trigger.Identify(tok), Token: tok, Strategy: Unified}, true
	}
	if tok, ok := submatch(statsRow, line); ok {
		return Result{Kind: trigger.Identify(tok), Token: tok, Strategy: Statistics}, true
	}
	if c.Fallback && !foreignTagged(line) {
		if tok, ok := submatch(wholeWord, line); ok {
			return Result{Kind: trigger.Identify(tok), Token: tok, Strategy: Fallback}, true
		}
	}
	return Result{}, false
}

// foreignTagged reports whether line carries unified logging decorations
// without a safepoint tag.
func foreignTagged(line string) bool {
	dec := decorations.FindString(line)
	return dec != "" && !strings.Contains(dec, "safepoint")
}

func submatch(re *regexp.Regexp, line string) (string, bool) {
	m := re.FindStringSubmatch(line)
	if m == nil || m[1] == "" {
		return "", false
	}
	return m[1], true
}
