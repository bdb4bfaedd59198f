package language

// Walk visits node and everything below it depth-first, in source order.
// Children of a node are skipped when fn returns false for it.
func Walk(node Node, fn func(Node) bool) {
	if node == nil || !fn(node) {
		return
	}

	switch n := node.(type) {
	case *Document:
		for _, def := range n.Definitions {
			Walk(def, fn)
		}
	case *OperationDefinition:
		for _, vd := range n.VariableDefinitions {
			Walk(vd, fn)
		}
		walkDirectives(n.Directives, fn)
		walkSelectionSet(n.SelectionSet, fn)
	case *FragmentDefinition:
		for _, vd := range n.VariableDefinitions {
			Walk(vd, fn)
		}
		if n.TypeCondition != nil {
			Walk(n.TypeCondition, fn)
		}
		walkDirectives(n.Directives, fn)
		walkSelectionSet(n.SelectionSet, fn)
	case *VariableDefinition:
		if n.Variable != nil {
			Walk(n.Variable, fn)
		}
		Walk(n.Type, fn)
		if n.DefaultValue != nil {
			Walk(n.DefaultValue, fn)
		}
		walkDirectives(n.Directives, fn)
	case *SelectionSet:
		for _, sel := range n.Selections {
			Walk(sel, fn)
		}
	case *Field:
		walkArguments(n.Arguments, fn)
		walkDirectives(n.Directives, fn)
		walkSelectionSet(n.SelectionSet, fn)
	case *FragmentSpread:
		walkDirectives(n.Directives, fn)
	case *InlineFragment:
		if n.TypeCondition != nil {
			Walk(n.TypeCondition, fn)
		}
		walkDirectives(n.Directives, fn)
		walkSelectionSet(n.SelectionSet, fn)
	case *Argument:
		Walk(n.Value, fn)
	case *Directive:
		walkArguments(n.Arguments, fn)
	case *ListType:
		Walk(n.Type, fn)
	case *NonNullType:
		Walk(n.Type, fn)
	case *ListValue:
		for _, v := range n.Values {
			Walk(v, fn)
		}
	case *ObjectValue:
		for _, f := range n.Fields {
			Walk(f, fn)
		}
	case *ObjectField:
		Walk(n.Value, fn)
	case *NamedType, *StringValue, *IntValue, *FloatValue, *BooleanValue,
		*NullValue, *EnumValue, *Variable:
	default:
		panic(defectf("unknown node %T", node))
	}
}

func walkSelectionSet(set *SelectionSet, fn func(Node) bool) {
	if set != nil {
		Walk(set, fn)
	}
}

func walkDirectives(dirs []*Directive, fn func(Node) bool) {
	for _, dir := range dirs {
		if dir != nil {
			Walk(dir, fn)
		}
	}
}

func walkArguments(args []*Argument, fn func(Node) bool) {
	for _, arg := range args {
		if arg != nil {
			Walk(arg, fn)
		}
	}
}
