package language

import (
	"fmt"
	"sort"

	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/lexer"
)

// Location is the 1-based line and column a node starts at.
// A nil *Location means the grammar reports no span for the production.
type Location struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

func (l *Location) String() string {
	if l == nil {
		return "-"
	}
	return fmt.Sprintf("%d:%d", l.Line, l.Column)
}

func locationOf(pos *ast.Position) *Location {
	if pos == nil {
		return nil
	}
	return &Location{Line: pos.Line, Column: pos.Column}
}

func tokenLocation(tok lexer.Token) *Location {
	return &Location{Line: tok.Pos.Line, Column: tok.Pos.Column}
}

// lineIndex maps rune offsets in a source to lines. Line breaks are counted
// the way the lexer counts them: "\r\n" is one break, a lone "\r" is another.
type lineIndex struct {
	starts []int
}

func indexLines(input string) *lineIndex {
	runes := []rune(input)
	starts := []int{0}
	for i := 0; i < len(runes); i++ {
		switch runes[i] {
		case '\r':
			if i+1 < len(runes) && runes[i+1] == '\n' {
				i++
			}
			starts = append(starts, i+1)
		case '\n':
			starts = append(starts, i+1)
		}
	}
	return &lineIndex{starts: starts}
}

// location converts a rune offset to a 1-based line and column.
func (li *lineIndex) location(offset int) *Location {
	line := sort.Search(len(li.starts), func(i int) bool {
		return li.starts[i] > offset
	})
	if line == 0 {
		line = 1
	}
	return &Location{Line: line, Column: offset - li.starts[line-1] + 1}
}
