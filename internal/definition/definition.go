// Package definition loads automaton definitions from TOML or JSON and turns
// them into NFAs.
//
// A definition mirrors the nested transition tables automata are usually
// written as: for every state, a table from symbol to the list of target
// states, plus the start state and the final states.
//
//	start = "q0"
//	final = ["q0"]
//
//	[transitions.q0]
//	"0" = ["q0"]
//	"1" = ["q1"]
//
// Symbols are one-rune strings. A state without an entry for a symbol has
// no move on it.
package definition

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/coregx/fsa/nfa"
)

// Definition is an automaton as written in a definition file.
type Definition struct {
	Start       string                         `toml:"start" json:"start"`
	Final       []string                       `toml:"final" json:"final"`
	Transitions map[string]map[string][]string `toml:"transitions" json:"transitions"`
}

// Format is the encoding of a definition file.
type Format string

// Supported formats
const (
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unsupported definition file extension %q (want .toml or .json)", filepath.Ext(path))
	}
}

// Load reads and validates the definition at path.
func Load(path string) (*Definition, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, &Error{Path: path, Err: err}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &Error{Path: path, Err: err}
	}
	def, err := Parse(data, format)
	if err != nil {
		return nil, &Error{Path: path, Err: err}
	}
	return def, nil
}

// Parse decodes and validates a definition. Unknown keys are rejected so a
// misspelled field cannot silently drop part of the automaton.
func Parse(data []byte, format Format) (*Definition, error) {
	var def Definition
	switch format {
	case FormatTOML:
		md, err := toml.Decode(string(data), &def)
		if err != nil {
			return nil, fmt.Errorf("decode toml: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("unknown keys: %v", undecoded)
		}
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&def); err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}

	if err := def.Validate(); err != nil {
		return nil, err
	}
	return &def, nil
}

// Validate checks the definition can be turned into an NFA.
func (d *Definition) Validate() error {
	if d.Start == "" {
		return ErrNoStart
	}
	for _, f := range d.Final {
		if f == "" {
			return fmt.Errorf("%w: empty final state name", ErrInvalidState)
		}
	}
	for state, row := range d.Transitions {
		if state == "" {
			return fmt.Errorf("%w: empty source state name", ErrInvalidState)
		}
		for symbol, targets := range row {
			if _, ok := nfa.ParseSymbol(symbol); !ok {
				return fmt.Errorf("%w: state %q has symbol %q, want exactly one character", ErrInvalidSymbol, state, symbol)
			}
			for _, t := range targets {
				if t == "" {
					return fmt.Errorf("%w: empty target of %q on %q", ErrInvalidState, state, symbol)
				}
			}
		}
	}
	return nil
}

// NFA builds the automaton. State IDs are assigned deterministically: the
// start state first, then source states, symbols and targets in sorted
// order, then final states.
func (d *Definition) NFA() (*nfa.NFA, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	b := nfa.NewBuilder()
	b.SetStart(d.Start)

	states := maps.Keys(d.Transitions)
	slices.Sort(states)
	for _, state := range states {
		row := d.Transitions[state]
		symbols := maps.Keys(row)
		slices.Sort(symbols)
		for _, symbol := range symbols {
			a, _ := nfa.ParseSymbol(symbol)
			b.AddTransition(state, a, row[symbol]...)
		}
	}
	b.AddFinal(d.Final...)

	return b.Build()
}

// Encode writes the definition in the given format.
func (d *Definition) Encode(format Format) ([]byte, error) {
	var buf bytes.Buffer
	switch format {
	case FormatTOML:
		if err := toml.NewEncoder(&buf).Encode(d); err != nil {
			return nil, err
		}
	case FormatJSON:
		enc := json.NewEncoder(&buf)
		enc.SetIndent("", "  ")
		if err := enc.Encode(d); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}
	return buf.Bytes(), nil
}
