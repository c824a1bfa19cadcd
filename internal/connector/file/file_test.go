package file

import (
	"bufio"
	"context"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/hejijunhao/vmcat/internal/connector"
	"github.com/hejijunhao/vmcat/internal/model"
)

func writeLog(t *testing.T, dir, name string, lines ...string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func drain(t *testing.T, ch <-chan model.RawLog) []model.RawLog {
	t.Helper()
	var out []model.RawLog
	timeout := time.After(5 * time.Second)
	for {
		select {
		case raw, ok := <-ch:
			if !ok {
				return out
			}
			out = append(out, raw)
		case <-timeout:
			t.Fatal("timed out waiting for stream to close")
		}
	}
}

func TestRegistered(t *testing.T) {
	ctor, err := connector.Get("file")
	if err != nil {
		t.Fatalf("Get(file): %v", err)
	}
	if _, ok := ctor().(*Connector); !ok {
		t.Fatal("constructor did not return *file.Connector")
	}
}

func TestStreamMultipleFiles(t *testing.T) {
	dir := t.TempDir()
	a := writeLog(t, dir, "a.log", "a1", "a2", "a3")
	b := writeLog(t, dir, "b.log", "b1", "b2")

	c := &Connector{}
	ch, _, err := c.Stream(context.Background(), connector.ConnectorConfig{Paths: []string{a, b}})
	if err != nil {
		t.Fatalf("Stream: %v", err)
	}
	got := drain(t, ch)
	if len(got) != 5 {
		t.Fatalf("expected 5 lines, got %d", len(got))
	}

	// Per-file order is preserved.
	bySource := map[string][]string{}
	for _, raw := range got {
		bySource[raw.Source] = append(bySource[raw.Source], raw.Text)
	}
	if strings.Join(bySource[a], ",") != "a1,a2,a3" {
		t.Errorf("a.log lines = %v", bySource[a])
	}
	if strings.Join(bySource[b], ",") != "b1,b2" {
		t.Errorf("b.log lines = %v", bySource[b])
	}
}

func TestStreamLineNumbers(t *testing.T) {
	dir := t.TempDir()
	a := writeLog(t, dir, "a.log", "x", "y")

	ch, _, err := (&Connector{}).Stream(context.Background(), connector.ConnectorConfig{Paths: []string{a}})
	if err != nil {
		t.Fatalf("Stream: %v", err)
	}
	got := drain(t, ch)
	lines := []int{got[0].Line, got[1].Line}
	sort.Ints(lines)
	if lines[0] != 1 || lines[1] != 2 {
		t.Errorf("line numbers = %v, want [1 2]", lines)
	}
}

func TestStreamStdin(t *testing.T) {
	c := &Connector{Stdin: strings.NewReader("one\ntwo\n")}
	ch, _, err := c.Stream(context.Background(), connector.ConnectorConfig{})
	if err != nil {
		t.Fatalf("Stream: %v", err)
	}
	got := drain(t, ch)
	if len(got) != 2 || got[0].Source != Stdin || got[1].Text != "two" {
		t.Fatalf("unexpected stdin lines: %+v", got)
	}
}

func TestStreamCleanEndClosesErrors(t *testing.T) {
	a := writeLog(t, t.TempDir(), "a.log", "x")
	ch, errc, err := (&Connector{}).Stream(context.Background(), connector.ConnectorConfig{Paths: []string{a}})
	if err != nil {
		t.Fatalf("Stream: %v", err)
	}
	drain(t, ch)
	if err, ok := <-errc; ok || err != nil {
		t.Fatalf("expected closed error channel, got %v", err)
	}
}

func TestStreamLineTooLong(t *testing.T) {
	long := strings.Repeat("x", 2*maxLineSize)
	a := writeLog(t, t.TempDir(), "huge.log",
		`[0.1s][info][safepoint] Safepoint "RevokeBias", Total: 1 ns`,
		long,
		`[0.3s][info][safepoint] Safepoint "ThreadDump", Total: 1 ns`,
	)

	ch, errc, err := (&Connector{}).Stream(context.Background(), connector.ConnectorConfig{Paths: []string{a}})
	if err != nil {
		t.Fatalf("Stream: %v", err)
	}
	got := drain(t, ch)
	if len(got) != 1 {
		t.Errorf("got %d lines before the error, want 1", len(got))
	}
	readErr := <-errc
	if !errors.Is(readErr, bufio.ErrTooLong) {
		t.Fatalf("expected bufio.ErrTooLong, got %v", readErr)
	}
	if !strings.Contains(readErr.Error(), "huge.log") {
		t.Errorf("error does not name the file: %v", readErr)
	}
}

func TestStreamMissingFile(t *testing.T) {
	_, _, err := (&Connector{}).Stream(context.Background(), connector.ConnectorConfig{
		Paths: []string{filepath.Join(t.TempDir(), "missing.log")},
	})
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestStreamCancel(t *testing.T) {
	dir := t.TempDir()
	lines := make([]string, 1000)
	for i := range lines {
		lines[i] = "line"
	}
	a := writeLog(t, dir, "big.log", lines...)

	ctx, cancel := context.WithCancel(context.Background())
	ch, _, err := (&Connector{}).Stream(ctx, connector.ConnectorConfig{Paths: []string{a}})
	if err != nil {
		t.Fatalf("Stream: %v", err)
	}
	<-ch
	cancel()
	// Channel must close after cancellation even if nobody reads the rest.
	drain(t, ch)
}

func TestQueryOrderFilterLimit(t *testing.T) {
	dir := t.TempDir()
	a := writeLog(t, dir, "a.log", "keep a1", "drop a2", "keep a3")
	b := writeLog(t, dir, "b.log", "keep b1", "keep b2")
	cfg := connector.ConnectorConfig{Paths: []string{a, b}}
	c := &Connector{}

	all, err := c.Query(context.Background(), cfg, connector.QueryParams{})
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if len(all) != 5 || all[0].Text != "keep a1" || all[3].Text != "keep b1" {
		t.Fatalf("unexpected order: %+v", all)
	}

	filtered, err := c.Query(context.Background(), cfg, connector.QueryParams{Filter: "keep"})
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if len(filtered) != 4 {
		t.Fatalf("expected 4 filtered lines, got %d", len(filtered))
	}

	limited, err := c.Query(context.Background(), cfg, connector.QueryParams{Limit: 3})
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if len(limited) != 3 || limited[2].Text != "keep a3" {
		t.Fatalf("unexpected limited result: %+v", limited)
	}
}
