package language

import (
	"context"
	"errors"

	"github.com/vektah/gqlparser/v2/ast"
)

type options struct {
	grammar    Grammar
	sourceName string
}

// Option configures a single Parse call.
type Option func(*options)

// WithGrammar replaces the default gqlparser grammar.
func WithGrammar(g Grammar) Option {
	return func(o *options) {
		o.grammar = g
	}
}

// WithSourceName names the source in syntax errors, e.g. a file name.
func WithSourceName(name string) Option {
	return func(o *options) {
		o.sourceName = name
	}
}

// WithTokenLimit rejects documents with more than n tokens. Use it for input
// from untrusted callers.
func WithTokenLimit(n int) Option {
	return func(o *options) {
		o.grammar = &GQLParser{MaxTokens: n}
	}
}

func newOptions(opts []Option) *options {
	o := &options{grammar: NewGQLParser()}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Parse parses one GraphQL query document.
//
// A syntax error is returned as a *SyntaxError. If the builder hits a defect,
// only this call fails and the error is a *Defect; callers can tell the two
// apart with errors.Is(err, ErrSyntax) and errors.Is(err, ErrDefect).
func Parse(text string, opts ...Option) (*Document, error) {
	o := newOptions(opts)
	return parseSource(&ast.Source{Name: o.sourceName, Input: text}, o)
}

// ParseSource is Parse for an existing gqlparser source. The source name is
// used in syntax errors.
func ParseSource(src *ast.Source, opts ...Option) (*Document, error) {
	return parseSource(src, newOptions(opts))
}

func parseSource(src *ast.Source, o *options) (doc *Document, err error) {
	tree, err := o.grammar.Parse(src)
	if err != nil {
		var syntaxErr *SyntaxError
		if !errors.As(err, &syntaxErr) {
			err = newSyntaxError(src.Name, err)
		}
		return nil, err
	}

	defer func() {
		if r := recover(); r != nil {
			defect, ok := r.(*Defect)
			if !ok {
				panic(r)
			}
			doc, err = nil, defect
		}
	}()
	return Build(tree), nil
}

// ParseContext runs Parse and gives up when ctx is done first. Parsing cannot
// be interrupted; an abandoned call finishes in the background and its result
// is dropped. A panic other than a *Defect is raised again on the caller's
// goroutine, unless the call was already abandoned.
func ParseContext(ctx context.Context, text string, opts ...Option) (*Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	type result struct {
		doc      *Document
		err      error
		panicked any
	}
	done := make(chan result, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- result{panicked: r}
			}
		}()
		doc, err := Parse(text, opts...)
		done <- result{doc: doc, err: err}
	}()

	select {
	case r := <-done:
		if r.panicked != nil {
			panic(r.panicked)
		}
		return r.doc, r.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
