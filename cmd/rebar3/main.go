package main

import (
	"fmt"
	"os"

	"github.com/namjae/rebar3/internal/cli"
	"github.com/namjae/rebar3/pkg/ui/styles"
)

func main() {
	rootCmd := cli.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, styles.Render(os.Stderr, "Error", fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
