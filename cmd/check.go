/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/samwightt/gqlast/pkg/diagnostic"
	"github.com/samwightt/gqlast/pkg/language"
	"github.com/samwightt/gqlast/pkg/render"
	"github.com/spf13/cobra"
)

// ErrCheckFailed is returned when a document has a syntax error.
// This is a sentinel error that indicates the document is invalid,
// not that the command itself failed.
var ErrCheckFailed = errors.New("check failed")

// Syntax Error Display
//
// The grammar reports a single position for each error and no span. To
// underline the whole offending token we pick the token text back out of the
// message where the grammar quotes it (`Unexpected Name "quer"`,
// `Expected "on", found Name "onn"`). Anything else gets a single caret.
//
// Names that sit close to a keyword get a "did you mean" suggestion.

var (
	foundNameRegex       = regexp.MustCompile(`(?:Unexpected|found) Name "([^"]+)"`)
	unexpectedNameRegex  = regexp.MustCompile(`^Unexpected Name "([^"]+)"`)
	expectedKeywordRegex = regexp.MustCompile(`^Expected "([^"]+)", found Name "([^"]+)"`)
)

var definitionKeywords = []string{"query", "mutation", "subscription", "fragment"}

// errorSpanLength returns the number of columns to underline for message.
func errorSpanLength(message string) int {
	if matches := foundNameRegex.FindStringSubmatch(message); len(matches) == 2 {
		return len([]rune(matches[1]))
	}
	return 1
}

// keywordSuggestion returns a "did you mean" hint for a misspelt keyword.
func keywordSuggestion(message string) string {
	if matches := expectedKeywordRegex.FindStringSubmatch(message); len(matches) == 3 {
		if findClosest(matches[2], []string{matches[1]}) != "" {
			return fmt.Sprintf("did you mean `%s`?", matches[1])
		}
		return ""
	}
	if matches := unexpectedNameRegex.FindStringSubmatch(message); len(matches) == 2 {
		closest := findClosest(matches[1], definitionKeywords)
		if closest != "" && closest != matches[1] {
			return fmt.Sprintf("did you mean `%s`?", closest)
		}
	}
	return ""
}

// detectZshEscapeIssue checks if a syntax error might be caused by zsh's history
// expansion escaping `!` as `\!`. Returns a help message if detected.
func detectZshEscapeIssue(line, column int, sourceContent string, sourceName string) string {
	if sourceName != "stdin" {
		return ""
	}
	if !strings.Contains(sourceContent, `\!`) {
		return ""
	}
	lines := strings.Split(sourceContent, "\n")
	if line < 1 || line > len(lines) {
		return ""
	}
	runes := []rune(lines[line-1])
	col := column - 1
	if col >= 0 && col < len(runes)-1 && runes[col] == '\\' && runes[col+1] == '!' {
		return "it looks like zsh escaped `!` as `\\!`. Try using a heredoc instead:\n" +
			"       cat <<'EOF' | gqlast check\n" +
			"       query { ... }\n" +
			"       EOF"
	}
	return ""
}

func errorHelp(in input, syntaxErr *language.SyntaxError) string {
	if help := detectZshEscapeIssue(syntaxErr.Line, syntaxErr.Column, in.content, in.name); help != "" {
		return help
	}
	return keywordSuggestion(syntaxErr.Message)
}

func checkDiagnostic(in input, syntaxErr *language.SyntaxError) diagnostic.Diagnostic {
	return diagnostic.Diagnostic{
		File:    in.name,
		Line:    syntaxErr.Line,
		Column:  syntaxErr.Column,
		Length:  errorSpanLength(syntaxErr.Message),
		Message: syntaxErr.Message,
		Help:    errorHelp(in, syntaxErr),
	}
}

func checkResult(result parseResult) CheckResult {
	var syntaxErr *language.SyntaxError
	if !errors.As(result.err, &syntaxErr) {
		return CheckResult{
			Source:      result.name,
			Valid:       true,
			Definitions: len(result.doc.Definitions),
		}
	}

	checkErr := CheckError{
		Message: syntaxErr.Message,
		Help:    errorHelp(result.input, syntaxErr),
	}
	if syntaxErr.Line > 0 {
		checkErr.Location = &Location{Line: syntaxErr.Line, Column: syntaxErr.Column}
	}
	return CheckResult{Source: result.name, Valid: false, Errors: []CheckError{checkErr}}
}

func formatCheckResultText(result CheckResult, in input) string {
	if result.Valid {
		return "✓ Document is valid"
	}

	var b strings.Builder
	if len(result.Errors) == 1 {
		b.WriteString("✗ Document has 1 error:\n")
	} else {
		fmt.Fprintf(&b, "✗ Document has %d errors:\n", len(result.Errors))
	}

	for _, checkErr := range result.Errors {
		d := diagnostic.Diagnostic{
			File:    in.name,
			Length:  errorSpanLength(checkErr.Message),
			Message: checkErr.Message,
			Help:    checkErr.Help,
		}
		if checkErr.Location != nil {
			d.Line = checkErr.Location.Line
			d.Column = checkErr.Location.Column
		}
		b.WriteString(d.Render(in.content))
	}
	return b.String()
}

func NewCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [file]",
		Short: "Check that a GraphQL document is syntactically valid",
		Long: `Parses a GraphQL query document and reports whether it is well formed.

Only syntax is checked; the document is not validated against a schema.
The document can be provided as a file path argument or piped via stdin.

Exit codes:
  0 - Document is valid
  1 - Document has a syntax error

Output formats:
  text    Human-readable error with the offending source line
  json    {"source": "...", "valid": bool, "errors": [...]}
  yaml    Same shape as json`,
		Example: `  # Check a file
  gqlast check query.graphql

  # Check from stdin
  echo "query { user { id } }" | gqlast check

  # JSON output for CI integration
  gqlast check query.graphql -f json`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runCheckCmd,
	}

	return cmd
}

func runCheckCmd(cmd *cobra.Command, args []string) error {
	inputs, err := readInputs(cmd, args)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), "Error:", err)
		return err
	}

	results, err := parseInputs(cmd.Context(), inputs)
	if err != nil {
		if errors.Is(err, language.ErrDefect) {
			fmt.Fprintln(cmd.ErrOrStderr(), "internal error:", err)
		} else {
			fmt.Fprintln(cmd.ErrOrStderr(), "Error:", err)
		}
		return err
	}

	result := checkResult(results[0])
	in := results[0].input

	switch outputFormat {
	case render.FormatJSON, render.FormatYAML:
		output, err := render.Value(result, outputFormat)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), output)
	default:
		fmt.Fprintln(cmd.OutOrStdout(), strings.TrimSuffix(formatCheckResultText(result, in), "\n"))
	}

	if !result.Valid {
		return ErrCheckFailed
	}
	return nil
}
