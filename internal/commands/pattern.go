package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hejijunhao/vmcat/internal/engine/trigger"
)

// NewPatternCmd creates the pattern command.
func NewPatternCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pattern",
		Short: "Print a regular expression matching any trigger literal",
		Long: `Prints "(A|B|...)" over every cataloged literal, escaped and ordered by
trigger name, for use with grep -E or other log tooling.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), trigger.Pattern())
			return err
		},
	}
}
