package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hejijunhao/vmcat/internal/commands"
	"github.com/hejijunhao/vmcat/internal/config"
)

func main() {
	root := &cobra.Command{
		Use:   "vmcat",
		Short: "Classify JVM safepoint log lines by trigger",
		Long: `vmcat reads JVM safepoint logs (-Xlog:safepoint or -XX:+PrintSafepointStatistics)
and reports which VM operations stopped the application: collections, bias
revocations, class redefinitions, thread dumps and the rest of the catalog.`,
		Version:       config.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		commands.NewScanCmd(),
		commands.NewClassifyCmd(),
		commands.NewTriggersCmd(),
		commands.NewPatternCmd(),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
