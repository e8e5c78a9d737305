package catalog

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Catalog errors.
var (
	ErrEmptyCatalog    = errors.New("catalog has no entries")
	ErrInvalidDuration = errors.New("invalid program duration")
	ErrInvalidKind     = errors.New("invalid rule kind")
)

// Kind is the duration rule applied to a program.
type Kind uint8

const (
	// Max penalizes programs that run past the target.
	Max Kind = iota + 1

	// Window penalizes programs outside a band around the target.
	Window
)

// String returns the rule name.
func (k Kind) String() string {
	switch k {
	case Max:
		return "MAX"
	case Window:
		return "WINDOW"
	default:
		return "UNKNOWN"
	}
}

// Label returns the short text shown next to the target duration.
func (k Kind) Label() string {
	switch k {
	case Max:
		return "MAX"
	case Window:
		return "+ / -"
	default:
		return ""
	}
}

// ParseKind parses a rule name. The single letters M and W used on the
// device's duration tables are accepted as well.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "max", "m":
		return Max, nil
	case "window", "w", "+/-":
		return Window, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidKind, s)
	}
}

// MarshalYAML encodes the kind as its lower-case name.
func (k Kind) MarshalYAML() (any, error) {
	if k != Max && k != Window {
		return nil, fmt.Errorf("%w: %d", ErrInvalidKind, k)
	}
	return strings.ToLower(k.String()), nil
}

// UnmarshalYAML decodes a kind from its name.
func (k *Kind) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseKind(s)
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// Entry pairs a program duration with its rule.
type Entry struct {
	Duration int  `yaml:"duration"`
	Kind     Kind `yaml:"kind"`
}

// Catalog is an immutable ordered rule set.
type Catalog struct {
	name    string
	entries []Entry
}

// New creates a catalog from entries. The slice is copied.
func New(name string, entries []Entry) (*Catalog, error) {
	if len(entries) == 0 {
		return nil, ErrEmptyCatalog
	}
	for i, e := range entries {
		if e.Duration <= 0 {
			return nil, fmt.Errorf("%w: entry %d has %d seconds", ErrInvalidDuration, i, e.Duration)
		}
		if e.Kind != Max && e.Kind != Window {
			return nil, fmt.Errorf("%w: entry %d", ErrInvalidKind, i)
		}
	}
	return &Catalog{
		name:    name,
		entries: append([]Entry(nil), entries...),
	}, nil
}

// Name returns the rule set name.
func (c *Catalog) Name() string { return c.name }

// Len returns the number of entries.
func (c *Catalog) Len() int { return len(c.entries) }

// At returns the entry at index i modulo the catalog length.
func (c *Catalog) At(i int) Entry {
	n := len(c.entries)
	return c.entries[((i%n)+n)%n]
}

// Entries returns a copy of the entries in order.
func (c *Catalog) Entries() []Entry {
	return append([]Entry(nil), c.entries...)
}

// Cursor walks a catalog as a ring.
type Cursor struct {
	catalog *Catalog
	index   int
}

// NewCursor positions a cursor at the first entry of c.
func NewCursor(c *Catalog) *Cursor {
	return &Cursor{catalog: c}
}

// Current returns the selected entry.
func (cur *Cursor) Current() Entry { return cur.catalog.At(cur.index) }

// Index returns the selected position.
func (cur *Cursor) Index() int { return cur.index }

// Catalog returns the catalog being walked.
func (cur *Cursor) Catalog() *Catalog { return cur.catalog }

// Cycle advances to the next entry, wrapping to the first after the last,
// and returns it.
func (cur *Cursor) Cycle() Entry {
	cur.index = (cur.index + 1) % cur.catalog.Len()
	return cur.Current()
}

// Set selects position i modulo the catalog length.
func (cur *Cursor) Set(i int) {
	n := cur.catalog.Len()
	cur.index = ((i % n) + n) % n
}
