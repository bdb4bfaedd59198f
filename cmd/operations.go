package cmd

import (
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/samwightt/gqlast/pkg/language"
	"github.com/samwightt/gqlast/pkg/render"
	"github.com/spf13/cobra"
)

type operationsOptions struct {
	kind      string
	shorthand bool
	name      string
	nameRegex string
}

func definitionToInfo(source string, def language.Definition) DefinitionInfo {
	info := DefinitionInfo{Source: source, Fields: countFields(def)}
	if loc := def.Location(); loc != nil {
		info.Line = loc.Line
		info.Column = loc.Column
	}

	switch def := def.(type) {
	case *language.OperationDefinition:
		info.Kind = def.Operation.String()
		if def.Name != nil {
			info.Name = *def.Name
		}
		info.Shorthand = def.Shorthand
		info.Variables = language.VariableDefinitionsString(def.VariableDefinitions)
	case *language.FragmentDefinition:
		info.Kind = "fragment"
		info.Name = def.Name
		info.TypeCondition = def.TypeCondition.Name
		info.Variables = language.VariableDefinitionsString(def.VariableDefinitions)
	}
	return info
}

func validateKind(kind string) error {
	if kind == "" || slices.Contains(definitionKeywords, kind) {
		return nil
	}
	if closest := findClosest(kind, definitionKeywords); closest != "" {
		return fmt.Errorf("invalid kind: %s, did you mean %s?", kind, closest)
	}
	return fmt.Errorf("invalid kind: %s (valid: %s)", kind, strings.Join(definitionKeywords, ", "))
}

func definitionSignature(info DefinitionInfo) string {
	var b strings.Builder
	b.WriteString(info.Kind)
	if info.Name != "" {
		b.WriteString(" ")
		b.WriteString(info.Name)
	}
	b.WriteString(info.Variables)
	if info.TypeCondition != "" {
		b.WriteString(" on ")
		b.WriteString(info.TypeCondition)
	}
	if info.Shorthand {
		b.WriteString(" (shorthand)")
	}
	return b.String()
}

func formatDefinitionText(info DefinitionInfo) string {
	return fmt.Sprintf("%s:%d:%d: %s # %d fields", info.Source, info.Line, info.Column, definitionSignature(info), info.Fields)
}

func formatDefinitionsPretty(infos []DefinitionInfo) string {
	t := makeTable()

	for _, info := range infos {
		name := info.Name
		if info.Shorthand {
			name = "(shorthand)"
		}
		signature := info.Variables
		if info.TypeCondition != "" {
			signature = strings.TrimSpace(signature + " on " + info.TypeCondition)
		}
		location := fmt.Sprintf("%s:%d:%d", info.Source, info.Line, info.Column)
		t.Row(info.Kind, name, signature, strconv.Itoa(info.Fields), location)
	}
	t.Headers("kind", "name", "signature", "fields", "location")

	return t.String()
}

func NewOperationsCmd() *cobra.Command {
	opts := &operationsOptions{}

	cmd := &cobra.Command{
		Use:     "operations [file...]",
		Aliases: []string{"ops"},
		Short:   "Lists the operations and fragments defined in GraphQL documents",
		Long: `Lists every top-level definition (queries, mutations, subscriptions and
fragments) in the given documents, in source order, with its location and the
number of fields it selects.

Documents are read from the given files, or from stdin when no file is given.
A document with a syntax error is reported on stderr and the command exits
with status 1 after listing the rest.

Output formats:
  text    "query.graphql:1:1: query GetUser($id: ID!) # 3 fields" (default when piping)
  json    [{"source": "...", "kind": "query", "name": "GetUser", ...}, ...]
  yaml    Same shape as json
  pretty  Formatted table with columns (default in terminal)

Multiple filters can be combined and are applied with AND logic.`,
		Example: `  # List everything in a directory of documents
  gqlast operations queries/*.graphql

  # Only mutations
  gqlast operations queries/*.graphql --kind mutation

  # Find anonymous shorthand queries
  gqlast operations queries/*.graphql --shorthand

  # Find fragments on User
  gqlast operations queries/*.graphql --kind fragment --name "User*"

  # Operations whose name matches a regex
  gqlast operations queries/*.graphql --name-regex "^(Get|Fetch)"`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOperations(cmd, args, opts)
		},
	}

	cmd.Flags().StringVar(&opts.kind, "kind", "", "Filter by kind: query, mutation, subscription, fragment")
	cmd.Flags().BoolVar(&opts.shorthand, "shorthand", false, "Filter to only show shorthand queries ({ ... } with no keyword)")
	cmd.Flags().StringVar(&opts.name, "name", "", "Filter definitions by name using a glob pattern (e.g., Get*, *Fields)")
	cmd.Flags().StringVar(&opts.nameRegex, "name-regex", "", "Filter definitions by name using a regex pattern")

	return cmd
}

func runOperations(cmd *cobra.Command, args []string, opts *operationsOptions) error {
	if err := validateKind(opts.kind); err != nil {
		return err
	}

	var nameRegex *regexp.Regexp
	if opts.nameRegex != "" {
		var err error
		nameRegex, err = regexp.Compile(opts.nameRegex)
		if err != nil {
			return fmt.Errorf("invalid regex pattern for --name-regex: %w", err)
		}
	}

	inputs, err := readInputs(cmd, args)
	if err != nil {
		return err
	}

	results, err := parseInputs(cmd.Context(), inputs)
	if err != nil {
		return err
	}

	var infos []DefinitionInfo
	failed := false
	for _, result := range results {
		var syntaxErr *language.SyntaxError
		if errors.As(result.err, &syntaxErr) {
			failed = true
			fmt.Fprint(cmd.ErrOrStderr(), syntaxDiagnostic(result.input, syntaxErr))
			continue
		}
		for _, def := range result.doc.Definitions {
			infos = append(infos, definitionToInfo(result.name, def))
		}
	}

	infos = filterSlice(infos, func(info DefinitionInfo) bool {
		if opts.kind != "" && info.Kind != opts.kind {
			return false
		}
		if opts.shorthand && !info.Shorthand {
			return false
		}
		if opts.name != "" {
			matched, _ := filepath.Match(opts.name, info.Name)
			if !matched {
				return false
			}
		}
		if nameRegex != nil && !nameRegex.MatchString(info.Name) {
			return false
		}
		return true
	})

	if len(infos) == 0 {
		fmt.Fprintln(cmd.ErrOrStderr(), "No definitions found that match the filters.")
	}

	renderer := render.Renderer[DefinitionInfo]{
		Data:         infos,
		TextFormat:   formatDefinitionText,
		PrettyFormat: formatDefinitionsPretty,
	}

	output, err := renderer.Render(outputFormat)
	if err != nil {
		return fmt.Errorf("error rendering output: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), output)

	if failed {
		return ErrParseFailed
	}
	return nil
}
