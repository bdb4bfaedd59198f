/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"bytes"
	"os"
	"runtime"
	"time"

	"github.com/samwightt/gqlast/pkg/render"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	outputFormat render.Format
	verbose      bool
	timeout      time.Duration
	jobs         int
	maxTokens    int
)

func formatFlag() string {
	if term.IsTerminal(int(os.Stdout.Fd())) {
		return string(render.FormatPretty)
	}
	return string(render.FormatText)
}

// NewRootCmd creates and returns the root command with all subcommands attached.
// This function creates a fresh command tree, ensuring no state leaks between invocations.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gqlast",
		Short: "Parse GraphQL query documents into a typed, position-annotated AST",
		Long: `gqlast parses GraphQL query documents (queries, mutations, subscriptions
and fragments) into a typed syntax tree where every definition, selection, field,
type and directive carries its source line and column.

It does not validate documents against a schema; it only reports what the
document says and whether it is syntactically well formed.

Documents are read from the files given as arguments, or from stdin.

Output can be formatted as pretty trees and tables (default in terminals), plain
text (default when piping), JSON or YAML for integration with other tools.`,
		Example: `  # Print the AST of a query as JSON
  gqlast parse query.graphql -f json

  # Syntax-check a document from stdin
  echo '{ user { id } }' | gqlast check

  # List every named mutation in a directory of documents
  gqlast operations queries/*.graphql --kind mutation

  # Parse many files, eight at a time, giving up on any that take over a second
  gqlast parse queries/*.graphql -j 8 --timeout 1s -f json | jq '.[].source'`,
	}

	var formatStr string
	cmd.PersistentFlags().StringVarP(&formatStr, "format", "f", formatFlag(), "Output format: json, yaml, text, pretty (default: pretty if interactive, text otherwise)")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug output to stderr")
	cmd.PersistentFlags().DurationVar(&timeout, "timeout", 0, "Give up on a document that takes longer than this to parse (0 disables)")
	cmd.PersistentFlags().IntVarP(&jobs, "jobs", "j", runtime.GOMAXPROCS(0), "Number of documents to parse concurrently")
	cmd.PersistentFlags().IntVar(&maxTokens, "max-tokens", 0, "Reject documents with more tokens than this (0 disables)")

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		var err error
		outputFormat, err = render.ParseFormat(formatStr)
		if err != nil {
			return err
		}
		return configureLogging(cmd.ErrOrStderr(), verbose)
	}

	cmd.AddCommand(NewParseCmd())
	cmd.AddCommand(NewCheckCmd())
	cmd.AddCommand(NewOperationsCmd())

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// ExecuteWithArgs runs the CLI with the given arguments and returns stdout, stderr, and any error.
// This is useful for testing.
func ExecuteWithArgs(args []string) (stdout string, stderr string, err error) {
	return ExecuteWithArgsAndStdin(args, nil)
}

// ExecuteWithArgsAndStdin runs the CLI with the given arguments and stdin, returns stdout, stderr, and any error.
// This is useful for testing commands that read from stdin.
func ExecuteWithArgsAndStdin(args []string, stdin *bytes.Buffer) (stdout string, stderr string, err error) {
	cmd := NewRootCmd()

	stdoutBuf := new(bytes.Buffer)
	stderrBuf := new(bytes.Buffer)

	cmd.SetOut(stdoutBuf)
	cmd.SetErr(stderrBuf)
	cmd.SetArgs(args)
	if stdin != nil {
		cmd.SetIn(stdin)
	}

	err = cmd.Execute()

	return stdoutBuf.String(), stderrBuf.String(), err
}
