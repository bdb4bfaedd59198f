package language

import (
	"fmt"
	"strconv"
	"strings"
)

// ValueString prints a value as a GraphQL literal.
func ValueString(v Value) string {
	var b strings.Builder
	writeValue(&b, v)
	return b.String()
}

func writeValue(b *strings.Builder, v Value) {
	switch v := v.(type) {
	case *StringValue:
		if v.Block {
			b.WriteString(`"""`)
			b.WriteString(strings.ReplaceAll(v.Value, `"""`, `\"""`))
			b.WriteString(`"""`)
			return
		}
		writeQuoted(b, v.Value)
	case *IntValue:
		b.WriteString(strconv.FormatInt(v.Value, 10))
	case *FloatValue:
		b.WriteString(strconv.FormatFloat(v.Value, 'g', -1, 64))
	case *BooleanValue:
		b.WriteString(strconv.FormatBool(v.Value))
	case *NullValue:
		b.WriteString("null")
	case *EnumValue:
		b.WriteString(v.Value)
	case *Variable:
		b.WriteByte('$')
		b.WriteString(v.Name)
	case *ListValue:
		b.WriteByte('[')
		for i, item := range v.Values {
			if i > 0 {
				b.WriteString(", ")
			}
			writeValue(b, item)
		}
		b.WriteByte(']')
	case *ObjectValue:
		b.WriteByte('{')
		for i, f := range v.Fields {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(f.Name)
			b.WriteString(": ")
			writeValue(b, f.Value)
		}
		b.WriteByte('}')
	default:
		panic(defectf("unknown value node %T", v))
	}
}

// writeQuoted writes s as a GraphQL string literal. Control characters are
// escaped; everything else, non-ASCII text included, is written as is.
func writeQuoted(b *strings.Builder, s string) {
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if r < 0x20 {
				fmt.Fprintf(b, `\u%04X`, r)
				continue
			}
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
}

// ArgumentsString prints `(name: value, ...)`, or "" for no arguments.
func ArgumentsString(args []*Argument) string {
	if len(args) == 0 {
		return ""
	}
	parts := make([]string, 0, len(args))
	for _, arg := range args {
		parts = append(parts, arg.Name+": "+ValueString(arg.Value))
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// DirectivesString prints ` @a(x: 1) @b`, with a leading space, or "".
func DirectivesString(dirs []*Directive) string {
	var b strings.Builder
	for _, dir := range dirs {
		b.WriteString(" @")
		b.WriteString(dir.Name)
		b.WriteString(ArgumentsString(dir.Arguments))
	}
	return b.String()
}

// VariableDefinitionsString prints `($a: Int = 1, $b: [ID!])`, or "".
func VariableDefinitionsString(defs []*VariableDefinition) string {
	if len(defs) == 0 {
		return ""
	}
	parts := make([]string, 0, len(defs))
	for _, def := range defs {
		part := "$" + def.Variable.Name + ": " + TypeString(def.Type)
		if def.DefaultValue != nil {
			part += " = " + ValueString(def.DefaultValue)
		}
		part += DirectivesString(def.Directives)
		parts = append(parts, part)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
