package language

// Type is a *NamedType, *ListType or *NonNullType.
type Type interface {
	Node
	isType()
}

type NamedType struct {
	Name string    `json:"name"`
	Loc  *Location `json:"loc"`
}

// ListType is `[Type]`.
type ListType struct {
	Type Type      `json:"type"`
	Loc  *Location `json:"loc"`
}

// NonNullType is `Type!`. Type is never itself a *NonNullType.
type NonNullType struct {
	Type Type      `json:"type"`
	Loc  *Location `json:"loc"`
}

func (n *NamedType) Location() *Location   { return n.Loc }
func (n *ListType) Location() *Location    { return n.Loc }
func (n *NonNullType) Location() *Location { return n.Loc }

func (*NamedType) isType()   {}
func (*ListType) isType()    {}
func (*NonNullType) isType() {}

// TypeString prints a type reference the way it is written in source,
// e.g. "[User!]!".
func TypeString(t Type) string {
	switch t := t.(type) {
	case *NamedType:
		return t.Name
	case *ListType:
		return "[" + TypeString(t.Type) + "]"
	case *NonNullType:
		return TypeString(t.Type) + "!"
	case nil:
		return ""
	}
	panic(defectf("unknown type node %T", t))
}

// BaseTypeName returns the named type at the bottom of a wrapped type.
func BaseTypeName(t Type) string {
	switch t := t.(type) {
	case *NamedType:
		return t.Name
	case *ListType:
		return BaseTypeName(t.Type)
	case *NonNullType:
		return BaseTypeName(t.Type)
	case nil:
		return ""
	}
	panic(defectf("unknown type node %T", t))
}
