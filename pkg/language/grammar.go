package language

import (
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"
)

// Tree is the generic parse tree a Grammar hands to Build.
type Tree struct {
	Source   *ast.Source
	Document *ast.QueryDocument
	// Tokens indexes the lexed source. Build falls back to what Document alone
	// records when it is nil.
	Tokens *TokenIndex
}

// Grammar turns query text into a parse tree, or fails with a *SyntaxError.
type Grammar interface {
	Parse(src *ast.Source) (*Tree, error)
}

// GQLParser is the Grammar backed by gqlparser.
type GQLParser struct {
	// MaxTokens caps the number of tokens read from one document. Zero means
	// no limit.
	MaxTokens int
}

func NewGQLParser() *GQLParser {
	return &GQLParser{}
}

func (g *GQLParser) Parse(src *ast.Source) (*Tree, error) {
	var (
		doc *ast.QueryDocument
		err error
	)
	if g.MaxTokens > 0 {
		doc, err = parser.ParseQueryWithTokenLimit(src, g.MaxTokens)
	} else {
		doc, err = parser.ParseQuery(src)
	}
	if err != nil {
		return nil, newSyntaxError(src.Name, err)
	}

	tokens, err := IndexTokens(src)
	if err != nil {
		return nil, newSyntaxError(src.Name, err)
	}

	return &Tree{Source: src, Document: doc, Tokens: tokens}, nil
}
