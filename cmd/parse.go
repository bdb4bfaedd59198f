package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/tree"
	"github.com/samwightt/gqlast/pkg/language"
	"github.com/samwightt/gqlast/pkg/render"
	"github.com/spf13/cobra"
)

// ErrParseFailed is returned when at least one input had a syntax error.
// The errors themselves have already been printed to stderr.
var ErrParseFailed = errors.New("parse failed")

var (
	sourceStyle   = lipgloss.NewStyle().Bold(true)
	locationStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
)

// outline is a display-only view of the tree shared by the text and pretty
// formats.
type outline struct {
	label    string
	loc      *language.Location
	children []*outline
}

func documentOutline(doc *language.Document) []*outline {
	nodes := make([]*outline, 0, len(doc.Definitions))
	for _, def := range doc.Definitions {
		nodes = append(nodes, definitionOutline(def))
	}
	return nodes
}

func definitionOutline(def language.Definition) *outline {
	switch def := def.(type) {
	case *language.OperationDefinition:
		label := def.Operation.String()
		if def.Name != nil {
			label += " " + *def.Name
		}
		if def.Shorthand {
			label += " (shorthand)"
		}
		label += language.VariableDefinitionsString(def.VariableDefinitions)
		label += language.DirectivesString(def.Directives)
		return &outline{label: label, loc: def.Loc, children: selectionOutlines(def.SelectionSet)}
	case *language.FragmentDefinition:
		label := "fragment " + def.Name + language.VariableDefinitionsString(def.VariableDefinitions)
		label += " on " + def.TypeCondition.Name + language.DirectivesString(def.Directives)
		return &outline{label: label, loc: def.Loc, children: selectionOutlines(def.SelectionSet)}
	default:
		panic(fmt.Sprintf("unexpected definition %T", def))
	}
}

func selectionOutlines(set *language.SelectionSet) []*outline {
	if set == nil {
		return nil
	}
	nodes := make([]*outline, 0, len(set.Selections))
	for _, sel := range set.Selections {
		nodes = append(nodes, selectionOutline(sel))
	}
	return nodes
}

func selectionOutline(sel language.Selection) *outline {
	switch sel := sel.(type) {
	case *language.Field:
		label := sel.Name
		if sel.Alias != nil {
			label = *sel.Alias + ": " + label
		}
		label += language.ArgumentsString(sel.Arguments) + language.DirectivesString(sel.Directives)
		return &outline{label: label, loc: sel.Loc, children: selectionOutlines(sel.SelectionSet)}
	case *language.FragmentSpread:
		return &outline{label: "..." + sel.Name + language.DirectivesString(sel.Directives), loc: sel.Loc}
	case *language.InlineFragment:
		label := "..."
		if sel.TypeCondition != nil {
			label += " on " + sel.TypeCondition.Name
		}
		label += language.DirectivesString(sel.Directives)
		return &outline{label: label, loc: sel.Loc, children: selectionOutlines(sel.SelectionSet)}
	default:
		panic(fmt.Sprintf("unexpected selection %T", sel))
	}
}

func writeOutline(b *strings.Builder, node *outline, depth int) {
	b.WriteString(strings.Repeat("  ", depth))
	b.WriteString(node.label)
	b.WriteString(" [")
	b.WriteString(node.loc.String())
	b.WriteString("]\n")
	for _, child := range node.children {
		writeOutline(b, child, depth+1)
	}
}

func formatParsedText(doc ParsedDocument) string {
	var b strings.Builder
	b.WriteString(doc.Source)
	b.WriteString(":\n")
	for _, node := range documentOutline(doc.Document) {
		writeOutline(&b, node, 1)
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func outlineTree(node *outline) *tree.Tree {
	t := tree.Root(node.label + " " + locationStyle.Render(node.loc.String()))
	for _, child := range node.children {
		t.Child(outlineTree(child))
	}
	return t
}

func formatParsedPretty(docs []ParsedDocument) string {
	parts := make([]string, 0, len(docs))
	for _, doc := range docs {
		t := tree.Root(sourceStyle.Render(doc.Source))
		for _, node := range documentOutline(doc.Document) {
			t.Child(outlineTree(node))
		}
		parts = append(parts, t.String())
	}
	return strings.Join(parts, "\n\n")
}

// syntaxDiagnostic renders a syntax error against the input it came from.
func syntaxDiagnostic(in input, syntaxErr *language.SyntaxError) string {
	return checkDiagnostic(in, syntaxErr).Render(in.content)
}

func NewParseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse [file...]",
		Short: "Parse GraphQL documents and print their syntax tree",
		Long: `Parses one or more GraphQL query documents and prints the resulting syntax
tree. Every node carries the line and column it starts at; nodes the grammar
keeps no position for show "-".

Documents are read from the given files, or from stdin when no file is given.
Files are parsed concurrently (see --jobs).

Output formats:
  text    Indented outline, one node per line with [line:column]
  json    [{"source": "...", "document": {"kind": "Document", ...}}, ...]
  yaml    Same shape as json
  pretty  Tree view (default in terminal)

Syntax errors are printed to stderr and the command exits with status 1 after
printing every document that did parse.`,
		Example: `  # Print the tree of a query
  gqlast parse query.graphql

  # Full JSON tree of everything in a directory
  gqlast parse queries/*.graphql -f json

  # From stdin
  echo '{ user(id: 4) { name } }' | gqlast parse -f yaml`,
		SilenceUsage: true,
		RunE:         runParse,
	}

	return cmd
}

func runParse(cmd *cobra.Command, args []string) error {
	inputs, err := readInputs(cmd, args)
	if err != nil {
		return err
	}

	results, err := parseInputs(cmd.Context(), inputs)
	if err != nil {
		return err
	}

	var docs []ParsedDocument
	failed := false
	for _, result := range results {
		var syntaxErr *language.SyntaxError
		if errors.As(result.err, &syntaxErr) {
			failed = true
			fmt.Fprint(cmd.ErrOrStderr(), syntaxDiagnostic(result.input, syntaxErr))
			continue
		}
		docs = append(docs, ParsedDocument{Source: result.name, Document: result.doc})
	}

	if len(docs) > 0 {
		renderer := render.Renderer[ParsedDocument]{
			Data:         docs,
			TextFormat:   formatParsedText,
			PrettyFormat: formatParsedPretty,
		}
		output, err := renderer.Render(outputFormat)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), output)
	}

	if failed {
		return ErrParseFailed
	}
	return nil
}
