package stdout

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/hejijunhao/vmcat/internal/model"
)

var printer = message.NewPrinter(language.English)

func eventLine(e model.TriggerEvent) string {
	var b strings.Builder
	if e.Source != "" {
		fmt.Fprintf(&b, "%s:%d ", e.Source, e.Line)
	}
	b.WriteString(e.Trigger)
	if e.Trigger != e.Literal {
		fmt.Fprintf(&b, " %q", e.Literal)
	}
	if e.Description != "" {
		fmt.Fprintf(&b, " - %s", e.Description)
	}
	return b.String()
}

// writeTable renders the summary as an aligned table with grouped counts.
func writeTable(w io.Writer, s model.Summary) error {
	bold := color.New(color.Bold)
	if _, err := bold.Fprintln(w, printer.Sprintf("Safepoint triggers: %d in %d lines from %d sources", s.Matched, s.Lines, s.Sources)); err != nil {
		return err
	}
	if len(s.Triggers) == 0 {
		_, err := fmt.Fprintln(w, "  (none)")
		return err
	}

	counts := make([]string, len(s.Triggers))
	names := make([]string, len(s.Triggers))
	countW, nameW := len("COUNT"), len("TRIGGER")
	for i, tc := range s.Triggers {
		counts[i] = printer.Sprintf("%d", tc.Count)
		names[i] = tc.Trigger
		if tc.GC {
			names[i] += " (gc)"
		}
		countW = max(countW, len(counts[i]))
		nameW = max(nameW, len(names[i]))
	}

	header := fmt.Sprintf("  %*s  %-*s  %s", countW, "COUNT", nameW, "TRIGGER", "LITERAL")
	if _, err := bold.Fprintln(w, header); err != nil {
		return err
	}
	unknown := color.New(color.FgYellow)
	for i, tc := range s.Triggers {
		row := fmt.Sprintf("  %*s  %-*s  %s", countW, counts[i], nameW, names[i], tc.Literal)
		var err error
		if tc.Known {
			_, err = fmt.Fprintln(w, row)
		} else {
			_, err = unknown.Fprintln(w, row)
		}
		if err != nil {
			return err
		}
	}

	gc := s.GCCount()
	_, err := fmt.Fprintln(w, printer.Sprintf("GC: %d  non-GC: %d  unknown: %d", gc, s.Matched-s.Unknown-gc, s.Unknown))
	return err
}
