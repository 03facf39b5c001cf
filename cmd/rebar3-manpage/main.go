package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/namjae/rebar3/internal/cli"
	"github.com/namjae/rebar3/internal/version"
)

func main() {
	rootCmd := cli.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "REBAR3",
		Section: "1",
		Source:  "rebar3 " + version.Version,
		Manual:  "rebar3 manual",
	}

	dir := "."
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}

	if err := doc.GenManTree(rootCmd, header, dir); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man pages: %v\n", err)
		os.Exit(1)
	}
}
