package catalog

import (
	"embed"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed rulesets/*.yaml
var rulesetFS embed.FS

// ErrUnknownRuleset is returned when a built-in rule set does not exist.
var ErrUnknownRuleset = errors.New("unknown ruleset")

// DefaultRuleset is the name of the rule set used when none is configured.
const DefaultRuleset = "standard"

// ruleset is the YAML document form of a catalog.
type ruleset struct {
	Name        string  `yaml:"name"`
	Description string  `yaml:"description"`
	Entries     []Entry `yaml:"entries"`
}

// Parse decodes a YAML rule set document.
func Parse(data []byte) (*Catalog, error) {
	var rs ruleset
	if err := yaml.Unmarshal(data, &rs); err != nil {
		return nil, fmt.Errorf("parsing ruleset: %w", err)
	}
	return New(rs.Name, rs.Entries)
}

// LoadFile reads a YAML rule set from path.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading ruleset: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// LoadBuiltin loads an embedded rule set by name.
func LoadBuiltin(name string) (*Catalog, error) {
	data, err := rulesetFS.ReadFile("rulesets/" + name + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRuleset, name)
	}
	return Parse(data)
}

// Builtins returns the names of all embedded rule sets, sorted.
func Builtins() []string {
	entries, err := rulesetFS.ReadDir("rulesets")
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		if name, ok := strings.CutSuffix(e.Name(), ".yaml"); ok {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// Default returns the standard rule set.
func Default() *Catalog {
	c, err := LoadBuiltin(DefaultRuleset)
	if err != nil {
		panic(fmt.Sprintf("embedded %s ruleset: %v", DefaultRuleset, err))
	}
	return c
}
