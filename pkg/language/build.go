package language

import (
	"cmp"
	"slices"
	"strconv"

	"github.com/tidwall/btree"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/lexer"
)

// Build reshapes a parse tree into a Document.
//
// It does not return an error: the tree has already passed the grammar, so
// anything Build cannot represent is a defect and panics with a *Defect.
// Build keeps no reference to tree or to the returned Document.
func Build(tree *Tree) *Document {
	if tree == nil || tree.Document == nil {
		panic(defectf("nil parse tree"))
	}
	b := builder{tokens: tree.Tokens}
	if tree.Source != nil {
		b.lines = indexLines(tree.Source.Input)
	}
	return b.document(tree.Document)
}

type builder struct {
	tokens *TokenIndex
	lines  *lineIndex
}

type positionedDefinition struct {
	start int
	def   Definition
}

func (b *builder) document(doc *ast.QueryDocument) *Document {
	defs := make([]positionedDefinition, 0, len(doc.Operations)+len(doc.Fragments))
	for _, op := range doc.Operations {
		defs = append(defs, positionedDefinition{start: startOf(op.Position), def: b.operation(op)})
	}
	for _, frag := range doc.Fragments {
		defs = append(defs, positionedDefinition{start: startOf(frag.Position), def: b.fragment(frag)})
	}
	// gqlparser splits operations from fragments; put them back in source order.
	slices.SortStableFunc(defs, func(x, y positionedDefinition) int {
		return cmp.Compare(x.start, y.start)
	})

	out := &Document{Definitions: make([]Definition, 0, len(defs))}
	for _, d := range defs {
		out.Definitions = append(out.Definitions, d.def)
	}
	return out
}

func startOf(pos *ast.Position) int {
	if pos == nil {
		return 0
	}
	return pos.Start
}

func (b *builder) operation(op *ast.OperationDefinition) *OperationDefinition {
	if op == nil {
		panic(defectf("nil operation definition"))
	}
	if b.isShorthand(op) {
		return &OperationDefinition{
			Operation:           OperationQuery,
			VariableDefinitions: []*VariableDefinition{},
			Directives:          []*Directive{},
			SelectionSet:        b.selectionSet(op.SelectionSet, op.Position),
			Shorthand:           true,
			Loc:                 locationOf(op.Position),
		}
	}

	out := &OperationDefinition{
		Operation:           operationType(op.Operation),
		VariableDefinitions: b.variableDefinitions(op.VariableDefinitions),
		Directives:          b.directives(op.Directives),
		SelectionSet:        b.selectionSet(op.SelectionSet, op.Position),
		Loc:                 locationOf(op.Position),
	}
	if op.Name != "" {
		name := op.Name
		out.Name = &name
	}
	return out
}

// isShorthand reports whether the operation is a bare selection set. With a
// token index that is exact: the operation starts at `{`. Without one, an
// anonymous query with nothing but a selection set is taken as shorthand.
func (b *builder) isShorthand(op *ast.OperationDefinition) bool {
	if kind, ok := b.tokens.kindAt(op.Position); ok {
		return kind == lexer.BraceL
	}
	return op.Operation == ast.Query && op.Name == "" &&
		len(op.VariableDefinitions) == 0 && len(op.Directives) == 0
}

func operationType(op ast.Operation) OperationType {
	switch op {
	case ast.Query:
		return OperationQuery
	case ast.Mutation:
		return OperationMutation
	case ast.Subscription:
		return OperationSubscription
	}
	panic(defectf("unknown operation type %q", op))
}

func (b *builder) fragment(frag *ast.FragmentDefinition) *FragmentDefinition {
	if frag == nil {
		panic(defectf("nil fragment definition"))
	}
	if frag.Name == "" {
		panic(defectf("fragment definition without a name"))
	}
	return &FragmentDefinition{
		Name:                frag.Name,
		VariableDefinitions: b.variableDefinitions(frag.VariableDefinition),
		TypeCondition:       b.typeCondition(frag.TypeCondition, frag.Position),
		Directives:          b.directives(frag.Directives),
		SelectionSet:        b.selectionSet(frag.SelectionSet, frag.Position),
		Loc:                 locationOf(frag.Position),
	}
}

func (b *builder) typeCondition(name string, owner *ast.Position) *NamedType {
	if name == "" {
		return nil
	}
	named := &NamedType{Name: name}
	if tok, ok := b.tokens.typeCondition(owner); ok {
		named.Loc = tokenLocation(tok)
	}
	return named
}

func (b *builder) variableDefinitions(defs ast.VariableDefinitionList) []*VariableDefinition {
	out := make([]*VariableDefinition, 0, len(defs))
	for _, def := range defs {
		if def == nil {
			panic(defectf("nil variable definition"))
		}
		vd := &VariableDefinition{
			Variable:   &Variable{Name: def.Variable, Loc: locationOf(def.Position)},
			Type:       b.typeRef(def.Type),
			Directives: b.directives(def.Directives),
			Loc:        locationOf(def.Position),
		}
		if def.DefaultValue != nil {
			vd.DefaultValue = b.value(def.DefaultValue)
		}
		out = append(out, vd)
	}
	return out
}

// selectionSet builds the selection set of the construct starting at owner.
func (b *builder) selectionSet(set ast.SelectionSet, owner *ast.Position) *SelectionSet {
	out := &SelectionSet{Selections: make([]Selection, 0, len(set))}
	if tok, ok := b.tokens.selectionSetOpen(owner); ok {
		out.Loc = tokenLocation(tok)
	}
	for _, sel := range set {
		out.Selections = append(out.Selections, b.selection(sel))
	}
	return out
}

func (b *builder) selection(sel ast.Selection) Selection {
	switch sel := sel.(type) {
	case *ast.Field:
		return b.field(sel)
	case *ast.FragmentSpread:
		return &FragmentSpread{
			Name:       sel.Name,
			Directives: b.directives(sel.Directives),
			Loc:        locationOf(sel.Position),
		}
	case *ast.InlineFragment:
		return &InlineFragment{
			TypeCondition: b.typeCondition(sel.TypeCondition, sel.Position),
			Directives:    b.directives(sel.Directives),
			SelectionSet:  b.selectionSet(sel.SelectionSet, sel.Position),
			Loc:           locationOf(sel.Position),
		}
	}
	panic(defectf("unknown selection %T", sel))
}

func (b *builder) field(f *ast.Field) *Field {
	out := &Field{
		Name:       f.Name,
		Arguments:  b.arguments(f.Arguments),
		Directives: b.directives(f.Directives),
		Loc:        locationOf(f.Position),
	}
	if b.hasAlias(f) {
		alias := f.Alias
		out.Alias = &alias
	}
	// `a` and `a { }` are the same field.
	if len(f.SelectionSet) > 0 {
		out.SelectionSet = b.selectionSet(f.SelectionSet, f.Position)
	}
	return out
}

// hasAlias reports whether the source spelled `alias: name`. gqlparser sets
// Alias to Name when there is none, so `a: a` is only visible in the tokens.
func (b *builder) hasAlias(f *ast.Field) bool {
	if colon, ok := b.tokens.followedBy(f.Position, lexer.Colon); ok {
		return colon
	}
	return f.Alias != "" && f.Alias != f.Name
}

func (b *builder) arguments(args ast.ArgumentList) []*Argument {
	out := make([]*Argument, 0, len(args))
	for _, arg := range args {
		if arg == nil {
			panic(defectf("nil argument"))
		}
		out = append(out, &Argument{Name: arg.Name, Value: b.value(arg.Value)})
	}
	return out
}

func (b *builder) directives(dirs ast.DirectiveList) []*Directive {
	out := make([]*Directive, 0, len(dirs))
	for _, dir := range dirs {
		if dir == nil {
			panic(defectf("nil directive"))
		}
		out = append(out, &Directive{
			Name:      dir.Name,
			Arguments: b.arguments(dir.Arguments),
			Loc:       locationOf(dir.Position),
		})
	}
	return out
}

func (b *builder) typeRef(t *ast.Type) Type {
	if t == nil {
		panic(defectf("nil type reference"))
	}
	loc := locationOf(t.Position)

	var inner Type
	if t.Elem != nil {
		list := &ListType{Type: b.typeRef(t.Elem), Loc: loc}
		if tok, ok := b.tokens.listOpen(t.Position); ok {
			list.Loc = tokenLocation(tok)
		}
		inner = list
	} else {
		if t.NamedType == "" {
			panic(defectf("type reference without a name"))
		}
		inner = &NamedType{Name: t.NamedType, Loc: loc}
	}

	if t.NonNull {
		return &NonNullType{Type: inner, Loc: inner.Location()}
	}
	return inner
}

func (b *builder) value(v *ast.Value) Value {
	if v == nil {
		panic(defectf("nil value"))
	}
	switch v.Kind {
	case ast.StringValue:
		return &StringValue{Value: v.Raw, Loc: b.stringLocation(v.Position)}
	case ast.BlockValue:
		return &StringValue{Value: v.Raw, Block: true, Loc: b.stringLocation(v.Position)}
	case ast.IntValue:
		n, err := strconv.ParseInt(v.Raw, 10, 64)
		if err != nil {
			panic(defectf("integer literal %s does not fit in 64 bits", v.Raw))
		}
		return &IntValue{Value: n}
	case ast.FloatValue:
		f, err := strconv.ParseFloat(v.Raw, 64)
		if err != nil {
			panic(defectf("float literal %s does not fit in 64 bits", v.Raw))
		}
		return &FloatValue{Value: f}
	case ast.BooleanValue:
		return &BooleanValue{Value: v.Raw == "true"}
	case ast.NullValue:
		return &NullValue{}
	case ast.EnumValue:
		return &EnumValue{Value: v.Raw}
	case ast.Variable:
		return &Variable{Name: v.Raw}
	case ast.ListValue:
		list := &ListValue{Values: make([]Value, 0, len(v.Children))}
		for _, child := range v.Children {
			list.Values = append(list.Values, b.value(child.Value))
		}
		return list
	case ast.ObjectValue:
		return b.object(v.Children)
	}
	panic(defectf("unknown value kind %d", v.Kind))
}

// stringLocation places a string literal at its opening quote. The lexer
// reports line and column past the quote, and at the closing line for block
// strings, so only the rune offset is trusted.
func (b *builder) stringLocation(pos *ast.Position) *Location {
	if pos == nil {
		return nil
	}
	if b.lines == nil {
		return locationOf(pos)
	}
	return b.lines.location(pos.Start)
}

// object orders fields by name. A repeated name keeps its last value.
func (b *builder) object(children ast.ChildValueList) *ObjectValue {
	var fields btree.Map[string, *ast.Value]
	for _, child := range children {
		fields.Set(child.Name, child.Value)
	}
	out := &ObjectValue{Fields: make([]*ObjectField, 0, fields.Len())}
	fields.Scan(func(name string, value *ast.Value) bool {
		out.Fields = append(out.Fields, &ObjectField{Name: name, Value: b.value(value)})
		return true
	})
	return out
}
