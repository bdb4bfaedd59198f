package language

import (
	"sort"

	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/lexer"
)

// TokenIndex is the token stream of one source, ordered by offset. The query
// AST drops the spans of a few productions (selection set braces, type
// conditions, list brackets); the index recovers them.
type TokenIndex struct {
	tokens []lexer.Token
}

// IndexTokens lexes src, skipping comments.
func IndexTokens(src *ast.Source) (*TokenIndex, error) {
	lex := lexer.New(src)
	var tokens []lexer.Token
	for {
		tok, err := lex.ReadToken()
		if err != nil {
			return nil, err
		}
		if tok.Kind == lexer.EOF {
			break
		}
		if tok.Kind == lexer.Comment {
			continue
		}
		tokens = append(tokens, tok)
	}
	return &TokenIndex{tokens: tokens}, nil
}

func (ti *TokenIndex) Len() int {
	if ti == nil {
		return 0
	}
	return len(ti.tokens)
}

// at returns the index of the token starting at pos, or -1.
func (ti *TokenIndex) at(pos *ast.Position) int {
	if ti == nil || pos == nil {
		return -1
	}
	i := sort.Search(len(ti.tokens), func(i int) bool {
		return ti.tokens[i].Pos.Start >= pos.Start
	})
	if i == len(ti.tokens) || ti.tokens[i].Pos.Start != pos.Start {
		return -1
	}
	return i
}

// kindAt reports the kind of the token at pos; ok is false when pos is unknown.
func (ti *TokenIndex) kindAt(pos *ast.Position) (kind lexer.Type, ok bool) {
	i := ti.at(pos)
	if i < 0 {
		return lexer.Invalid, false
	}
	return ti.tokens[i].Kind, true
}

// followedBy reports whether the token after the one at pos has the given kind.
func (ti *TokenIndex) followedBy(pos *ast.Position, kind lexer.Type) (found, ok bool) {
	i := ti.at(pos)
	if i < 0 {
		return false, false
	}
	return i+1 < len(ti.tokens) && ti.tokens[i+1].Kind == kind, true
}

// selectionSetOpen finds the `{` opening the selection set of the construct
// starting at pos. Object literals only occur inside parentheses, so the first
// brace outside them is the one.
func (ti *TokenIndex) selectionSetOpen(pos *ast.Position) (lexer.Token, bool) {
	i := ti.at(pos)
	if i < 0 {
		return lexer.Token{}, false
	}
	depth := 0
	for ; i < len(ti.tokens); i++ {
		switch ti.tokens[i].Kind {
		case lexer.ParenL:
			depth++
		case lexer.ParenR:
			depth--
		case lexer.BraceL:
			if depth == 0 {
				return ti.tokens[i], true
			}
		}
	}
	return lexer.Token{}, false
}

// typeCondition finds the type name following the `on` keyword of the
// fragment starting at pos.
func (ti *TokenIndex) typeCondition(pos *ast.Position) (lexer.Token, bool) {
	i := ti.at(pos)
	if i < 0 {
		return lexer.Token{}, false
	}
	depth := 0
	for ; i < len(ti.tokens); i++ {
		tok := ti.tokens[i]
		switch tok.Kind {
		case lexer.ParenL:
			depth++
		case lexer.ParenR:
			depth--
		case lexer.BraceL, lexer.At:
			if depth == 0 {
				return lexer.Token{}, false
			}
		case lexer.Name:
			if depth == 0 && tok.Value == "on" && i+1 < len(ti.tokens) && ti.tokens[i+1].Kind == lexer.Name {
				return ti.tokens[i+1], true
			}
		}
	}
	return lexer.Token{}, false
}

// listOpen returns the `[` preceding the element type starting at pos.
func (ti *TokenIndex) listOpen(pos *ast.Position) (lexer.Token, bool) {
	i := ti.at(pos)
	if i <= 0 || ti.tokens[i-1].Kind != lexer.BracketL {
		return lexer.Token{}, false
	}
	return ti.tokens[i-1], true
}
