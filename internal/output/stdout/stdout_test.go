package stdout

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/hejijunhao/vmcat/internal/model"
	"github.com/hejijunhao/vmcat/internal/output"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

func testEvent() model.TriggerEvent {
	return model.TriggerEvent{
		Source:      "gc.log",
		Line:        3,
		Trigger:     "G1_INC_COLLECTION_PAUSE",
		Literal:     "G1IncCollectionPause",
		Known:       true,
		GC:          true,
		Description: "G1 incremental (young or mixed) collection pause",
		Raw:         `[1.0s][info][safepoint] Safepoint "G1IncCollectionPause", Total: 1 ns`,
	}
}

func testSummary() model.Summary {
	return model.Summary{
		Sources: 1,
		Lines:   12345,
		Matched: 1203,
		Unknown: 3,
		Triggers: []model.TriggerCount{
			{Trigger: "G1_INC_COLLECTION_PAUSE", Literal: "G1IncCollectionPause", Known: true, GC: true, Count: 1100},
			{Trigger: "REVOKE_BIAS", Literal: "RevokeBias", Known: true, Count: 100},
			{Trigger: "UNKNOWN", Literal: "ZMarkStart", Count: 3},
		},
	}
}

func TestOutputCompactJSON(t *testing.T) {
	var buf bytes.Buffer
	out := NewWriter(&buf, JSON, output.Standard, false)
	if err := out.Write(context.Background(), testEvent()); err != nil {
		t.Fatalf("Write: %v", err)
	}

	// Should be single line (NDJSON).
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}

	var m map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &m); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if m["trigger"] != "G1_INC_COLLECTION_PAUSE" {
		t.Errorf("trigger = %v", m["trigger"])
	}
	if _, ok := m["description"]; ok {
		t.Error("description should be omitted at Standard")
	}
	if m["raw"] == nil {
		t.Error("raw should be present at Standard")
	}
}

func TestOutputPrettyJSON(t *testing.T) {
	var buf bytes.Buffer
	out := NewWriter(&buf, JSON, output.Full, true)
	out.Write(context.Background(), testEvent())

	if !strings.Contains(buf.String(), "\n  \"trigger\"") {
		t.Fatalf("expected indented JSON, got %s", buf.String())
	}
}

func TestOutputJSONSummary(t *testing.T) {
	var buf bytes.Buffer
	out := NewWriter(&buf, JSON, output.Standard, false)
	if err := out.Summarize(context.Background(), testSummary()); err != nil {
		t.Fatalf("Summarize: %v", err)
	}

	var s model.Summary
	if err := json.Unmarshal(buf.Bytes(), &s); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if s.Matched != 1203 || len(s.Triggers) != 3 {
		t.Fatalf("unexpected summary: %+v", s)
	}
}

func TestOutputTextEvent(t *testing.T) {
	var buf bytes.Buffer
	out := NewWriter(&buf, Text, output.Standard, false)
	out.Write(context.Background(), testEvent())

	got := strings.TrimSpace(buf.String())
	want := `gc.log:3 G1_INC_COLLECTION_PAUSE "G1IncCollectionPause"`
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestOutputTextSummary(t *testing.T) {
	var buf bytes.Buffer
	out := NewWriter(&buf, Text, output.Standard, false)
	if err := out.Summarize(context.Background(), testSummary()); err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	got := buf.String()

	for _, want := range []string{
		"Safepoint triggers: 1,203 in 12,345 lines from 1 sources",
		"1,100  G1_INC_COLLECTION_PAUSE (gc)  G1IncCollectionPause",
		"UNKNOWN",
		"ZMarkStart",
		"GC: 1,100  non-GC: 100  unknown: 3",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("summary missing %q:\n%s", want, got)
		}
	}
}

func TestOutputTextSummaryEmpty(t *testing.T) {
	var buf bytes.Buffer
	out := NewWriter(&buf, Text, output.Standard, false)
	out.Summarize(context.Background(), model.Summary{Lines: 4})

	if !strings.Contains(buf.String(), "(none)") {
		t.Fatalf("expected (none) marker, got %q", buf.String())
	}
}

func TestUnknownFormatFallsBackToJSON(t *testing.T) {
	var buf bytes.Buffer
	out := NewWriter(&buf, Format("xml"), output.Standard, false)
	out.Write(context.Background(), testEvent())

	var m map[string]any
	if err := json.Unmarshal(buf.Bytes(), &m); err != nil {
		t.Fatalf("expected JSON fallback, got %q", buf.String())
	}
}

func TestClose(t *testing.T) {
	if err := New(JSON, output.Standard, false).Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
}
