package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/agnivade/levenshtein"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/samwightt/gqlast/pkg/language"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var tableStyle = lipgloss.NewStyle().PaddingRight(1)

func makeTable() *table.Table {
	return table.New().
		Width(120).
		Wrap(true).
		StyleFunc(func(row, col int) lipgloss.Style {
			return tableStyle
		})
}

const maxSuggestionDistance = 2

func findClosest(input string, candidates []string) string {
	minDist := -1
	closest := ""
	for _, c := range candidates {
		dist := levenshtein.ComputeDistance(input, c)
		if minDist == -1 || dist < minDist {
			minDist = dist
			closest = c
		}
	}
	if minDist > maxSuggestionDistance {
		return ""
	}
	return closest
}

// filterSlice returns a new slice containing only the elements that satisfy the predicate.
func filterSlice[T any](items []T, predicate func(T) bool) []T {
	var result []T
	for _, item := range items {
		if predicate(item) {
			result = append(result, item)
		}
	}
	return result
}

type input struct {
	name    string
	content string
}

// readInputs reads every file in args, or stdin when there are none.
func readInputs(cmd *cobra.Command, args []string) ([]input, error) {
	if len(args) == 0 {
		bytes, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("failed to read from stdin: %w", err)
		}
		return []input{{name: "stdin", content: string(bytes)}}, nil
	}

	inputs := make([]input, 0, len(args))
	for _, path := range args {
		bytes, err := os.ReadFile(path)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("query file does not exist: %s", path)
			}
			return nil, fmt.Errorf("failed to read query file: %w", err)
		}
		inputs = append(inputs, input{name: path, content: string(bytes)})
	}
	return inputs, nil
}

type parseResult struct {
	input
	doc *language.Document
	err error
}

// parseInputs parses inputs concurrently, at most --jobs at a time. A syntax
// error is kept on its result; a defect or an expired --timeout aborts the
// whole run.
func parseInputs(ctx context.Context, inputs []input) ([]parseResult, error) {
	results := make([]parseResult, len(inputs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(jobs, 1))
	for i, in := range inputs {
		g.Go(func() error {
			start := time.Now()
			doc, err := parseInput(ctx, in)
			entry := log.WithFields(logrus.Fields{
				"source":   in.name,
				"duration": time.Since(start),
			})
			if err != nil && !errors.Is(err, language.ErrSyntax) {
				entry.WithError(err).Error("parse aborted")
				return fmt.Errorf("%s: %w", in.name, err)
			}
			if err != nil {
				entry.WithError(err).Debug("syntax error")
			} else {
				entry.WithField("definitions", len(doc.Definitions)).Debug("parsed document")
			}
			results[i] = parseResult{input: in, doc: doc, err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func parseInput(ctx context.Context, in input) (*language.Document, error) {
	opts := []language.Option{language.WithSourceName(in.name)}
	if maxTokens > 0 {
		opts = append(opts, language.WithTokenLimit(maxTokens))
	}
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	return language.ParseContext(ctx, in.content, opts...)
}

// countFields counts every field selection below node.
func countFields(node language.Node) int {
	n := 0
	language.Walk(node, func(node language.Node) bool {
		if _, ok := node.(*language.Field); ok {
			n++
		}
		return true
	})
	return n
}
