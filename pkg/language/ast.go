package language

// OperationType is the kind of an operation definition.
type OperationType int

const (
	OperationQuery OperationType = iota
	OperationMutation
	OperationSubscription
)

func (o OperationType) String() string {
	switch o {
	case OperationQuery:
		return "query"
	case OperationMutation:
		return "mutation"
	case OperationSubscription:
		return "subscription"
	}
	return "unknown"
}

func (o OperationType) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// Document is a whole parsed query file. Definitions keep source order.
type Document struct {
	Definitions []Definition `json:"definitions"`
	Loc         *Location    `json:"loc"`
}

// Definition is either an *OperationDefinition or a *FragmentDefinition.
type Definition interface {
	Node
	isDefinition()
}

// OperationDefinition is a query, mutation or subscription.
//
// Shorthand is set for a bare selection set with no operation keyword. Such an
// operation is always a query with no name, variables or directives.
type OperationDefinition struct {
	Operation           OperationType         `json:"operation"`
	Name                *string               `json:"name"`
	VariableDefinitions []*VariableDefinition `json:"variableDefinitions"`
	Directives          []*Directive          `json:"directives"`
	SelectionSet        *SelectionSet         `json:"selectionSet"`
	Shorthand           bool                  `json:"shorthand"`
	Loc                 *Location             `json:"loc"`
}

// FragmentDefinition is `fragment Name on Type @dir { ... }`.
//
// VariableDefinitions holds the experimental `fragment Name($v: T) on ...`
// form and is usually empty.
type FragmentDefinition struct {
	Name                string                `json:"name"`
	VariableDefinitions []*VariableDefinition `json:"variableDefinitions,omitempty"`
	TypeCondition       *NamedType            `json:"typeCondition"`
	Directives          []*Directive          `json:"directives"`
	SelectionSet        *SelectionSet         `json:"selectionSet"`
	Loc                 *Location             `json:"loc"`
}

// VariableDefinition is `$name: Type = default @dir`.
type VariableDefinition struct {
	Variable     *Variable    `json:"variable"`
	Type         Type         `json:"type"`
	DefaultValue Value        `json:"defaultValue"`
	Directives   []*Directive `json:"directives"`
	Loc          *Location    `json:"loc"`
}

// SelectionSet is a brace-delimited block of selections.
type SelectionSet struct {
	Selections []Selection `json:"selections"`
	Loc        *Location   `json:"loc"`
}

// Selection is a *Field, *FragmentSpread or *InlineFragment.
type Selection interface {
	Node
	isSelection()
}

// Field is `alias: name(args) @dir { ... }`.
// SelectionSet is nil when the field has no sub-selections.
type Field struct {
	Alias        *string       `json:"alias"`
	Name         string        `json:"name"`
	Arguments    []*Argument   `json:"arguments"`
	Directives   []*Directive  `json:"directives"`
	SelectionSet *SelectionSet `json:"selectionSet"`
	Loc          *Location     `json:"loc"`
}

// FragmentSpread is `...Name @dir`.
type FragmentSpread struct {
	Name       string       `json:"name"`
	Directives []*Directive `json:"directives"`
	Loc        *Location    `json:"loc"`
}

// InlineFragment is `... on Type @dir { ... }`; the type condition is optional.
type InlineFragment struct {
	TypeCondition *NamedType    `json:"typeCondition"`
	Directives    []*Directive  `json:"directives"`
	SelectionSet  *SelectionSet `json:"selectionSet"`
	Loc           *Location     `json:"loc"`
}

// Argument is a `name: value` pair. The grammar keeps no span for it, so Loc
// is always nil.
type Argument struct {
	Name  string    `json:"name"`
	Value Value     `json:"value"`
	Loc   *Location `json:"loc"`
}

// Directive is `@name(args)`.
type Directive struct {
	Name      string      `json:"name"`
	Arguments []*Argument `json:"arguments"`
	Loc       *Location   `json:"loc"`
}

// Node is implemented by every element of the tree.
type Node interface {
	Location() *Location
}

func (n *Document) Location() *Location            { return n.Loc }
func (n *OperationDefinition) Location() *Location { return n.Loc }
func (n *FragmentDefinition) Location() *Location  { return n.Loc }
func (n *VariableDefinition) Location() *Location  { return n.Loc }
func (n *SelectionSet) Location() *Location        { return n.Loc }
func (n *Field) Location() *Location               { return n.Loc }
func (n *FragmentSpread) Location() *Location      { return n.Loc }
func (n *InlineFragment) Location() *Location      { return n.Loc }
func (n *Argument) Location() *Location            { return n.Loc }
func (n *Directive) Location() *Location           { return n.Loc }

func (*OperationDefinition) isDefinition() {}
func (*FragmentDefinition) isDefinition()  {}

func (*Field) isSelection()          {}
func (*FragmentSpread) isSelection() {}
func (*InlineFragment) isSelection() {}
