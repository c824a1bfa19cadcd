package tally

import (
	"testing"

	"github.com/hejijunhao/vmcat/internal/model"
)

func event(name, literal string, known bool) model.TriggerEvent {
	return model.TriggerEvent{Source: "gc.log", Trigger: name, Literal: literal, Known: known}
}

func TestTallyEmpty(t *testing.T) {
	s := New().Summary()
	if s.Lines != 0 || s.Matched != 0 || s.Unknown != 0 || s.Sources != 0 {
		t.Fatalf("expected zero summary, got %+v", s)
	}
	if len(s.Triggers) != 0 {
		t.Fatalf("expected no triggers, got %v", s.Triggers)
	}
}

func TestTallyFirstOccurrenceOrder(t *testing.T) {
	tl := New()
	tl.Add(event("REVOKE_BIAS", "RevokeBias", true))
	tl.Add(event("THREAD_DUMP", "ThreadDump", true))
	tl.Add(event("REVOKE_BIAS", "RevokeBias", true))

	counts := tl.Counts()
	if len(counts) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(counts))
	}
	if counts[0].Trigger != "REVOKE_BIAS" || counts[0].Count != 2 {
		t.Fatalf("expected REVOKE_BIAS x2 first, got %s x%d", counts[0].Trigger, counts[0].Count)
	}
	if counts[1].Trigger != "THREAD_DUMP" || counts[1].Count != 1 {
		t.Fatalf("expected THREAD_DUMP x1 second, got %s x%d", counts[1].Trigger, counts[1].Count)
	}
}

func TestTallyUnknownPerLiteral(t *testing.T) {
	tl := New()
	tl.Add(event("UNKNOWN", "ZMarkStart", false))
	tl.Add(event("UNKNOWN", "ZMarkEnd", false))
	tl.Add(event("UNKNOWN", "ZMarkStart", false))

	s := tl.Summary()
	if s.Unknown != 3 || s.Matched != 3 {
		t.Fatalf("expected 3 unknown of 3 matched, got %d of %d", s.Unknown, s.Matched)
	}
	if len(s.Triggers) != 2 {
		t.Fatalf("expected 2 unknown groups, got %d", len(s.Triggers))
	}
	if s.Triggers[0].Literal != "ZMarkStart" || s.Triggers[0].Count != 2 {
		t.Fatalf("expected ZMarkStart x2 first, got %+v", s.Triggers[0])
	}
	if !tl.Seen("ZMarkEnd") || tl.Seen("RevokeBias") {
		t.Fatal("Seen reports wrong literals")
	}
}

func TestTallySummaryOrdering(t *testing.T) {
	tl := New()
	tl.Add(event("THREAD_DUMP", "ThreadDump", true))
	tl.Add(event("EXIT", "Exit", true))
	tl.Add(event("CLEANUP", "Cleanup", true))
	tl.Add(event("CLEANUP", "Cleanup", true))

	s := tl.Summary()
	want := []string{"CLEANUP", "EXIT", "THREAD_DUMP"}
	for i, w := range want {
		if s.Triggers[i].Trigger != w {
			t.Errorf("Triggers[%d] = %s, want %s", i, s.Triggers[i].Trigger, w)
		}
	}
}

func TestTallyLinesAndSources(t *testing.T) {
	tl := New()
	tl.Line("a.log")
	tl.Line("a.log")
	tl.Line("b.log")

	s := tl.Summary()
	if s.Lines != 3 {
		t.Errorf("Lines = %d, want 3", s.Lines)
	}
	if s.Sources != 2 {
		t.Errorf("Sources = %d, want 2", s.Sources)
	}
}

func TestSummaryGCCount(t *testing.T) {
	tl := New()
	e := event("G1_INC_COLLECTION_PAUSE", "G1IncCollectionPause", true)
	e.GC = true
	tl.Add(e)
	tl.Add(e)
	tl.Add(event("REVOKE_BIAS", "RevokeBias", true))

	if got := tl.Summary().GCCount(); got != 2 {
		t.Errorf("GCCount() = %d, want 2", got)
	}
}
