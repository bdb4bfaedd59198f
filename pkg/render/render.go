// Package render formats command output as json, yaml, plain text or
// terminal-styled text.
package render

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

type Format string

const (
	FormatJSON   Format = "json"
	FormatYAML   Format = "yaml"
	FormatText   Format = "text"
	FormatPretty Format = "pretty"
)

var ValidFormats = []Format{FormatJSON, FormatYAML, FormatText, FormatPretty}

func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "text":
		return FormatText, nil
	case "pretty":
		return FormatPretty, nil
	default:
		return "", fmt.Errorf("invalid format: %s (valid: json, yaml, text, pretty)", s)
	}
}

// Renderer renders a list of items. JSON and YAML encode Data directly;
// text joins TextFormat of each item with newlines.
type Renderer[T any] struct {
	Data         []T
	TextFormat   func(T) string
	PrettyFormat func([]T) string
}

func (r Renderer[T]) Render(format Format) (string, error) {
	switch format {
	case FormatJSON:
		return r.renderJSON()
	case FormatYAML:
		return r.renderYAML()
	case FormatPretty:
		return r.renderPretty()
	case FormatText:
		return r.renderText()
	default:
		return "", fmt.Errorf("unsupported format: %s", format)
	}
}

func (r Renderer[T]) renderPretty() (string, error) {
	if r.PrettyFormat == nil {
		return "", fmt.Errorf("pretty format not defined for this type")
	}
	return r.PrettyFormat(r.Data), nil
}

func (r Renderer[T]) renderJSON() (string, error) {
	data := r.Data
	if data == nil {
		data = []T{}
	}
	return encodeJSON(data)
}

func (r Renderer[T]) renderYAML() (string, error) {
	data := r.Data
	if data == nil {
		data = []T{}
	}
	return encodeYAML(data)
}

// Value renders a single value as a json or yaml object rather than a list.
func Value(v any, format Format) (string, error) {
	switch format {
	case FormatJSON:
		return encodeJSON(v)
	case FormatYAML:
		return encodeYAML(v)
	default:
		return "", fmt.Errorf("unsupported format for a single value: %s", format)
	}
}

func encodeJSON(v any) (string, error) {
	bytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// encodeYAML goes through JSON first so types with custom JSON encodings
// (like AST nodes) keep their shape.
func encodeYAML(v any) (string, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	var generic any
	if err := json.Unmarshal(raw, &generic); err != nil {
		return "", err
	}
	out, err := yaml.Marshal(generic)
	if err != nil {
		return "", err
	}
	return strings.TrimSuffix(string(out), "\n"), nil
}

func (r Renderer[T]) renderText() (string, error) {
	if r.TextFormat == nil {
		return "", fmt.Errorf("text format not defined for this type")
	}

	var lines []string
	for _, item := range r.Data {
		lines = append(lines, r.TextFormat(item))
	}
	return strings.Join(lines, "\n"), nil
}
