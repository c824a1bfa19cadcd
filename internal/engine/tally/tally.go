package tally

import (
	"sort"

	"github.com/hejijunhao/vmcat/internal/model"
)

// Tally counts trigger events by trigger. Unknown triggers are counted per
// distinct literal so unrecognised operations stay visible in reports.
// A Tally is not safe for concurrent use.
type Tally struct {
	order   []*group
	groups  map[string]*group
	sources map[string]struct{}
	lines   int
	matched int
	unknown int
}

// group accumulates events with the same key.
type group struct {
	count model.TriggerCount
}

// New creates an empty Tally.
func New() *Tally {
	return &Tally{
		groups:  make(map[string]*group),
		sources: make(map[string]struct{}),
	}
}

// Line records that a line from source was read, whether or not it carried a trigger.
func (t *Tally) Line(source string) {
	t.lines++
	t.sources[source] = struct{}{}
}

// Add counts a classified event.
func (t *Tally) Add(e model.TriggerEvent) {
	t.matched++
	key := e.Trigger
	if !e.Known {
		t.unknown++
		// Keyed by literal: every unknown shares the UNKNOWN name.
		key = "?" + e.Literal
	}

	g, ok := t.groups[key]
	if !ok {
		g = &group{count: model.TriggerCount{
			Trigger: e.Trigger,
			Literal: e.Literal,
			Known:   e.Known,
			GC:      e.GC,
		}}
		t.groups[key] = g
		t.order = append(t.order, g)
	}
	g.count.Count++
}

// Seen reports whether an unknown literal has already been counted.
func (t *Tally) Seen(literal string) bool {
	_, ok := t.groups["?"+literal]
	return ok
}

// Counts returns trigger counts in first-occurrence order.
func (t *Tally) Counts() []model.TriggerCount {
	out := make([]model.TriggerCount, len(t.order))
	for i, g := range t.order {
		out[i] = g.count
	}
	return out
}

// Summary returns a snapshot ordered by count (descending), then trigger
// name, then literal.
func (t *Tally) Summary() model.Summary {
	counts := t.Counts()
	sort.SliceStable(counts, func(i, j int) bool {
		a, b := counts[i], counts[j]
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		if a.Trigger != b.Trigger {
			return a.Trigger < b.Trigger
		}
		return a.Literal < b.Literal
	})
	return model.Summary{
		Sources:  len(t.sources),
		Lines:    t.lines,
		Matched:  t.matched,
		Unknown:  t.unknown,
		Triggers: counts,
	}
}
