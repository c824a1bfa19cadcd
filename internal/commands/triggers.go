package commands

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/hejijunhao/vmcat/internal/engine/trigger"
)

type triggerInfo struct {
	Name        string `json:"name"`
	Literal     string `json:"literal"`
	GC          bool   `json:"gc"`
	Description string `json:"description"`
}

// NewTriggersCmd creates the triggers command.
func NewTriggersCmd() *cobra.Command {
	var (
		asJSON bool
		gcOnly bool
		byName bool
	)

	cmd := &cobra.Command{
		Use:   "triggers",
		Short: "List the trigger catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var infos []triggerInfo
			for _, k := range trigger.Kinds() {
				if gcOnly && !k.IsGC() {
					continue
				}
				infos = append(infos, triggerInfo{
					Name:        k.String(),
					Literal:     trigger.Literal(k),
					GC:          k.IsGC(),
					Description: k.Description(),
				})
			}
			if byName {
				sort.Slice(infos, func(i, j int) bool { return infos[i].Name < infos[j].Name })
			}

			w := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(w)
				enc.SetIndent("", "  ")
				return enc.Encode(infos)
			}

			bold := color.New(color.Bold)
			_, _ = bold.Fprintf(w, "Safepoint triggers (%d):\n\n", len(infos))
			width := 0
			for _, info := range infos {
				width = max(width, len(info.Literal))
			}
			for _, info := range infos {
				kind := "    "
				if info.GC {
					kind = color.GreenString("gc  ")
				}
				fmt.Fprintf(w, "  %s%-*s  %s\n", kind, width, info.Literal, info.Name)
				fmt.Fprintf(w, "      %s\n", color.New(color.Faint).Sprint(info.Description))
			}
			return nil
		},
	}

	fl := cmd.Flags()
	fl.BoolVar(&asJSON, "json", false, "print the catalog as JSON")
	fl.BoolVar(&gcOnly, "gc", false, "only list garbage collection triggers")
	fl.BoolVar(&byName, "sort", false, "sort by trigger name instead of catalog order")
	return cmd
}
