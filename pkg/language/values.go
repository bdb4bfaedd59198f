package language

// Value is one of the literal or reference variants below. Only StringValue
// carries a location; the grammar reports no span for the other variants.
type Value interface {
	Node
	isValue()
}

type StringValue struct {
	Value string `json:"value"`
	// Block is set for """block strings""".
	Block bool      `json:"block,omitempty"`
	Loc   *Location `json:"loc"`
}

type IntValue struct {
	Value int64     `json:"value"`
	Loc   *Location `json:"loc"`
}

type FloatValue struct {
	Value float64   `json:"value"`
	Loc   *Location `json:"loc"`
}

type BooleanValue struct {
	Value bool      `json:"value"`
	Loc   *Location `json:"loc"`
}

type NullValue struct {
	Loc *Location `json:"loc"`
}

type EnumValue struct {
	Value string    `json:"value"`
	Loc   *Location `json:"loc"`
}

// Variable is a `$name` reference. It has a location when it names the
// variable of a VariableDefinition and none when used as a value.
type Variable struct {
	Name string    `json:"name"`
	Loc  *Location `json:"loc"`
}

type ListValue struct {
	Values []Value   `json:"values"`
	Loc    *Location `json:"loc"`
}

// ObjectValue fields are sorted by name, not kept in source order.
type ObjectValue struct {
	Fields []*ObjectField `json:"fields"`
	Loc    *Location      `json:"loc"`
}

// ObjectField is a `name: value` entry of an object literal. Loc is always nil.
type ObjectField struct {
	Name  string    `json:"name"`
	Value Value     `json:"value"`
	Loc   *Location `json:"loc"`
}

func (n *StringValue) Location() *Location  { return n.Loc }
func (n *IntValue) Location() *Location     { return n.Loc }
func (n *FloatValue) Location() *Location   { return n.Loc }
func (n *BooleanValue) Location() *Location { return n.Loc }
func (n *NullValue) Location() *Location    { return n.Loc }
func (n *EnumValue) Location() *Location    { return n.Loc }
func (n *Variable) Location() *Location     { return n.Loc }
func (n *ListValue) Location() *Location    { return n.Loc }
func (n *ObjectValue) Location() *Location  { return n.Loc }
func (n *ObjectField) Location() *Location  { return n.Loc }

func (*StringValue) isValue()  {}
func (*IntValue) isValue()     {}
func (*FloatValue) isValue()   {}
func (*BooleanValue) isValue() {}
func (*NullValue) isValue()    {}
func (*EnumValue) isValue()    {}
func (*Variable) isValue()     {}
func (*ListValue) isValue()    {}
func (*ObjectValue) isValue()  {}
