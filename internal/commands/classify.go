package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hejijunhao/vmcat/internal/engine/trigger"
)

type classification struct {
	Token   string `json:"token"`
	Trigger string `json:"trigger"`
	Known   bool   `json:"known"`
	GC      bool   `json:"gc"`
}

// NewClassifyCmd creates the classify command.
func NewClassifyCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "classify <token>...",
		Short: "Classify trigger tokens taken from a log line",
		Long: `Looks each token up in the trigger catalog by exact, case-sensitive match
and prints its trigger name, or UNKNOWN.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results := make([]classification, len(args))
			for i, tok := range args {
				k := trigger.Identify(tok)
				results[i] = classification{Token: tok, Trigger: k.String(), Known: k.Known(), GC: k.IsGC()}
			}

			w := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(w)
				for _, r := range results {
					if err := enc.Encode(r); err != nil {
						return err
					}
				}
				return nil
			}
			for _, r := range results {
				if _, err := fmt.Fprintf(w, "%s\t%s\n", r.Token, r.Trigger); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print one JSON object per token")
	return cmd
}
