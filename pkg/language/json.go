package language

import (
	"bytes"
	"encoding/json"
)

// Every node marshals with a "kind" member naming its type, so the unions
// (Definition, Selection, Type, Value) can be told apart by consumers.
func marshalNode(kind string, v any) ([]byte, error) {
	body, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	buf.WriteString(`{"kind":"`)
	buf.WriteString(kind)
	buf.WriteByte('"')
	if len(body) > 2 {
		buf.WriteByte(',')
		buf.Write(body[1:])
	} else {
		buf.WriteByte('}')
	}
	return buf.Bytes(), nil
}

func (n *Document) MarshalJSON() ([]byte, error) {
	type plain Document
	return marshalNode("Document", (*plain)(n))
}

func (n *OperationDefinition) MarshalJSON() ([]byte, error) {
	type plain OperationDefinition
	return marshalNode("OperationDefinition", (*plain)(n))
}

func (n *FragmentDefinition) MarshalJSON() ([]byte, error) {
	type plain FragmentDefinition
	return marshalNode("FragmentDefinition", (*plain)(n))
}

func (n *VariableDefinition) MarshalJSON() ([]byte, error) {
	type plain VariableDefinition
	return marshalNode("VariableDefinition", (*plain)(n))
}

func (n *SelectionSet) MarshalJSON() ([]byte, error) {
	type plain SelectionSet
	return marshalNode("SelectionSet", (*plain)(n))
}

func (n *Field) MarshalJSON() ([]byte, error) {
	type plain Field
	return marshalNode("Field", (*plain)(n))
}

func (n *FragmentSpread) MarshalJSON() ([]byte, error) {
	type plain FragmentSpread
	return marshalNode("FragmentSpread", (*plain)(n))
}

func (n *InlineFragment) MarshalJSON() ([]byte, error) {
	type plain InlineFragment
	return marshalNode("InlineFragment", (*plain)(n))
}

func (n *Argument) MarshalJSON() ([]byte, error) {
	type plain Argument
	return marshalNode("Argument", (*plain)(n))
}

func (n *Directive) MarshalJSON() ([]byte, error) {
	type plain Directive
	return marshalNode("Directive", (*plain)(n))
}

func (n *NamedType) MarshalJSON() ([]byte, error) {
	type plain NamedType
	return marshalNode("NamedType", (*plain)(n))
}

func (n *ListType) MarshalJSON() ([]byte, error) {
	type plain ListType
	return marshalNode("ListType", (*plain)(n))
}

func (n *NonNullType) MarshalJSON() ([]byte, error) {
	type plain NonNullType
	return marshalNode("NonNullType", (*plain)(n))
}

func (n *StringValue) MarshalJSON() ([]byte, error) {
	type plain StringValue
	return marshalNode("StringValue", (*plain)(n))
}

func (n *IntValue) MarshalJSON() ([]byte, error) {
	type plain IntValue
	return marshalNode("IntValue", (*plain)(n))
}

func (n *FloatValue) MarshalJSON() ([]byte, error) {
	type plain FloatValue
	return marshalNode("FloatValue", (*plain)(n))
}

func (n *BooleanValue) MarshalJSON() ([]byte, error) {
	type plain BooleanValue
	return marshalNode("BooleanValue", (*plain)(n))
}

func (n *NullValue) MarshalJSON() ([]byte, error) {
	type plain NullValue
	return marshalNode("NullValue", (*plain)(n))
}

func (n *EnumValue) MarshalJSON() ([]byte, error) {
	type plain EnumValue
	return marshalNode("EnumValue", (*plain)(n))
}

func (n *Variable) MarshalJSON() ([]byte, error) {
	type plain Variable
	return marshalNode("Variable", (*plain)(n))
}

func (n *ListValue) MarshalJSON() ([]byte, error) {
	type plain ListValue
	return marshalNode("ListValue", (*plain)(n))
}

func (n *ObjectValue) MarshalJSON() ([]byte, error) {
	type plain ObjectValue
	return marshalNode("ObjectValue", (*plain)(n))
}

func (n *ObjectField) MarshalJSON() ([]byte, error) {
	type plain ObjectField
	return marshalNode("ObjectField", (*plain)(n))
}
