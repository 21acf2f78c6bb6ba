package definition

import (
	"embed"
	"fmt"
	"path"
	"strings"

	"golang.org/x/exp/slices"
)

//go:embed builtin/*.toml
var builtins embed.FS

// BuiltinNames lists the embedded automata, sorted.
func BuiltinNames() []string {
	entries, err := builtins.ReadDir("builtin")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".toml"))
	}
	slices.Sort(names)
	return names
}

// Builtin returns an embedded automaton by name:
//   - mod7: decimal strings whose value is a multiple of 7
//   - sample: a 19-state nondeterministic automaton over the decimal digits
func Builtin(name string) (*Definition, error) {
	file := path.Join("builtin", name+".toml")
	data, err := builtins.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("%w %q (available: %s)", ErrUnknownBuiltin, name, strings.Join(BuiltinNames(), ", "))
	}
	def, err := Parse(data, FormatTOML)
	if err != nil {
		return nil, &Error{Path: file, Err: err}
	}
	return def, nil
}
