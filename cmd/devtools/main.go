package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "devtools",
		Short:         "DevTools Playground API: dictionary, shopping calculator and word utilities",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	serve := newServeCmd()
	rootCmd.AddCommand(serve, newMigrateCmd())
	rootCmd.RunE = serve.RunE

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
