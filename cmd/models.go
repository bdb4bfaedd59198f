package cmd

import "github.com/samwightt/gqlast/pkg/language"

// ParsedDocument is one input of the parse command.
type ParsedDocument struct {
	Source   string             `json:"source"`
	Document *language.Document `json:"document"`
}

// DefinitionInfo summarises one top-level definition for the operations command.
type DefinitionInfo struct {
	Source        string `json:"source"`
	Kind          string `json:"kind"`
	Name          string `json:"name,omitempty"`
	Shorthand     bool   `json:"shorthand,omitempty"`
	TypeCondition string `json:"typeCondition,omitempty"`
	Variables     string `json:"variables,omitempty"`
	Fields        int    `json:"fields"`
	Line          int    `json:"line"`
	Column        int    `json:"column"`
}

type Location struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

type CheckError struct {
	Message  string    `json:"message"`
	Location *Location `json:"location,omitempty"`
	Help     string    `json:"help,omitempty"`
}

type CheckResult struct {
	Source      string       `json:"source"`
	Valid       bool         `json:"valid"`
	Definitions int          `json:"definitions,omitempty"`
	Errors      []CheckError `json:"errors,omitempty"`
}
