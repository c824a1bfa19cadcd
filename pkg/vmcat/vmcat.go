package vmcat

import (
	"github.com/hejijunhao/vmcat/internal/engine"
	"github.com/hejijunhao/vmcat/internal/engine/classifier"
	"github.com/hejijunhao/vmcat/internal/engine/tally"
	"github.com/hejijunhao/vmcat/internal/model"
)

// Scanner finds and classifies safepoint triggers in VM log lines.
// Safe for concurrent use.
type Scanner struct {
	engine *engine.Engine
}

// New creates a Scanner. Construction is cheap; the trigger catalog is
// built once per process.
func New(opts ...Option) *Scanner {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Scanner{engine: engine.New(classifier.New(o.fallback))}
}

// Scan classifies one log line. The second return is false when the line
// carries no trigger.
func (s *Scanner) Scan(line string) (Event, bool) {
	ev, ok := s.engine.Process(model.RawLog{Text: line})
	if !ok {
		return Event{}, false
	}
	return eventFromModel(ev), true
}

// ScanAll classifies every line and returns the matched events in input
// order together with their aggregate.
func (s *Scanner) ScanAll(lines []string) ([]Event, Summary) {
	t := tally.New()
	var events []Event
	for i, line := range lines {
		raw := model.RawLog{Line: i + 1, Text: line}
		t.Line(raw.Source)
		ev, ok := s.engine.Process(raw)
		if !ok {
			continue
		}
		t.Add(ev)
		events = append(events, eventFromModel(ev))
	}
	return events, summaryFromModel(t.Summary())
}

// eventFromModel converts the internal TriggerEvent to the public Event type.
func eventFromModel(e model.TriggerEvent) Event {
	return Event{
		Trigger:     ParseName(e.Trigger),
		Name:        e.Trigger,
		Literal:     e.Literal,
		Known:       e.Known,
		GC:          e.GC,
		Description: e.Description,
		Line:        e.Raw,
	}
}

func summaryFromModel(s model.Summary) Summary {
	counts := make([]Count, len(s.Triggers))
	for i, tc := range s.Triggers {
		counts[i] = Count{
			Name:    tc.Trigger,
			Literal: tc.Literal,
			Known:   tc.Known,
			GC:      tc.GC,
			Count:   tc.Count,
		}
	}
	return Summary{
		Sources:  s.Sources,
		Lines:    s.Lines,
		Matched:  s.Matched,
		Unknown:  s.Unknown,
		Triggers: counts,
	}
}
