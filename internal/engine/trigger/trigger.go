// Package trigger holds the closed catalog of safepoint triggers: the named
// reasons a JVM stops all application threads, and the exact text each one is
// logged as.
//
// The catalog is built once at package initialisation and is read-only
// afterwards, so every function here is safe for concurrent use.
package trigger

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// Kind identifies a safepoint trigger. The zero value is Unknown.
type Kind int

// Unknown marks a token that was recognised as a trigger position in a log
// line but did not match any cataloged literal. It has no literal.
const Unknown Kind = 0

const (
	BulkRevokeBias Kind = iota + 1
	CGCOperation
	Cleanup
	CMSFinalRemark
	CMSInitialMark
	CollectForMetadataAllocation
	Deoptimize
	EnableBiasedLocking
	Exit
	FindDeadlocks
	ForceSafepoint
	G1CollectForAllocation
	G1IncCollectionPause
	GenCollectForAllocation
	GenCollectFullConcurrent
	GetAllStackTraces
	GetThreadListStackTraces
	ICBufferFull
	NoVMOperation
	ParallelGCFailedAllocation
	ParallelGCSystemGC
	PrintJNI
	PrintThreads
	RedefineClasses
	RevokeBias
	ShenandoahDegeneratedGC
	ShenandoahFinalMarkStartEvac
	ShenandoahFinalUpdateRefs
	ShenandoahInitMark
	ShenandoahInitUpdateRefs
	ThreadDump

	numKinds // must stay last
)

// entry is one row of the catalog.
type entry struct {
	name    string
	literal string
	gc      bool
	desc    string
}

var (
	byLiteral map[string]Kind
	byName    map[string]Kind
	kinds     []Kind
	pattern   string
	re        *regexp.Regexp
)

func init() {
	if err := build(catalog[:]); err != nil {
		panic(err)
	}
}

// build derives the lookup structures from the catalog table and fails when
// the enumeration and the table have drifted apart.
func build(table []entry) error {
	lits := make(map[string]Kind, len(table))
	names := make(map[string]Kind, len(table))
	all := make([]Kind, 0, len(table))

	for i := 1; i < len(table); i++ {
		k := Kind(i)
		e := table[i]
		if e.name == "" || e.literal == "" || e.desc == "" {
			return fmt.Errorf("trigger: catalog entry %d is incomplete", i)
		}
		if prev, dup := lits[e.literal]; dup {
			return fmt.Errorf("trigger: literal %q shared by %s and %s", e.literal, table[prev].name, e.name)
		}
		if prev, dup := names[e.name]; dup {
			return fmt.Errorf("trigger: name %q used by entries %d and %d", e.name, prev, i)
		}
		lits[e.literal] = k
		names[e.name] = k
		all = append(all, k)
	}

	// Alternatives are sorted by kind name so the pattern is reproducible
	// regardless of declaration order.
	sorted := make([]Kind, len(all))
	copy(sorted, all)
	sort.Slice(sorted, func(a, b int) bool {
		return table[sorted[a]].name < table[sorted[b]].name
	})
	quoted := make([]string, len(sorted))
	for i, k := range sorted {
		quoted[i] = regexp.QuoteMeta(table[k].literal)
	}
	p := "(" + strings.Join(quoted, "|") + ")"

	compiled, err := regexp.Compile(p)
	if err != nil {
		return fmt.Errorf("trigger: compile pattern: %w", err)
	}

	byLiteral, byName, kinds, pattern, re = lits, names, all, p, compiled
	return nil
}

// Literal returns the exact text the trigger is logged as.
// It panics for Unknown or any value outside the catalog: that can only
// happen when code and catalog are out of sync.
func Literal(k Kind) string {
	if k <= Unknown || k >= numKinds {
		panic(fmt.Sprintf("trigger: unexpected trigger value: %s", k))
	}
	return catalog[k].literal
}

// Identify returns the Kind whose literal equals text exactly, or Unknown.
// Matching is case-sensitive whole-token equality; callers isolate the token
// from the surrounding log line first.
func Identify(text string) Kind {
	if k, ok := byLiteral[text]; ok {
		return k
	}
	return Unknown
}

// ParseName returns the Kind with the given name (as produced by String),
// or Unknown.
func ParseName(name string) Kind {
	if k, ok := byName[name]; ok {
		return k
	}
	return Unknown
}

// Pattern returns a regular expression alternation "(A|B|...)" matching any
// cataloged literal. Alternatives are escaped and ordered by kind name.
func Pattern() string {
	return pattern
}

// Regexp returns the compiled form of Pattern.
func Regexp() *regexp.Regexp {
	return re
}

// Kinds returns every cataloged Kind, excluding Unknown, in declaration order.
func Kinds() []Kind {
	out := make([]Kind, len(kinds))
	copy(out, kinds)
	return out
}

// String returns the kind name, e.g. "REDEFINE_CLASSES".
func (k Kind) String() string {
	switch {
	case k == Unknown:
		return "UNKNOWN"
	case k > Unknown && k < numKinds:
		return catalog[k].name
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Known reports whether k is a cataloged trigger.
func (k Kind) Known() bool {
	return k > Unknown && k < numKinds
}

// IsGC reports whether the trigger is a garbage collection operation.
func (k Kind) IsGC() bool {
	return k.Known() && catalog[k].gc
}

// Description returns a one-line explanation of the trigger, or "" for
// Unknown.
func (k Kind) Description() string {
	if !k.Known() {
		return ""
	}
	return catalog[k].desc
}
