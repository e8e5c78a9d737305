package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// standardTable is the reference device table, in order.
var standardTable = []Entry{
	{90, Window}, {120, Window}, {140, Window}, {150, Window},
	{160, Window}, {180, Window}, {210, Window}, {240, Window},
	{60, Max}, {70, Max}, {75, Max}, {90, Max}, {100, Max}, {110, Max},
	{130, Max}, {150, Max}, {160, Max}, {190, Max}, {220, Max},
}

func TestDefaultMatchesStandardTable(t *testing.T) {
	c := Default()

	require.Equal(t, len(standardTable), c.Len())
	assert.Equal(t, "standard", c.Name())
	for i, want := range standardTable {
		assert.Equal(t, want, c.At(i), "entry %d", i)
	}
}

func TestCursorCyclesThroughEveryEntry(t *testing.T) {
	c := Default()
	cur := NewCursor(c)

	assert.Equal(t, 0, cur.Index())
	assert.Equal(t, standardTable[0], cur.Current())

	for i := 1; i < c.Len(); i++ {
		got := cur.Cycle()
		assert.Equal(t, standardTable[i], got, "cycle %d", i)
		assert.Equal(t, i, cur.Index())
	}

	// The N-th cycle wraps back to index 0.
	assert.Equal(t, standardTable[0], cur.Cycle())
	assert.Equal(t, 0, cur.Index())
}

func TestCursorSetWraps(t *testing.T) {
	cur := NewCursor(Default())

	cur.Set(20)
	assert.Equal(t, 1, cur.Index())

	cur.Set(-1)
	assert.Equal(t, 18, cur.Index())
	assert.Equal(t, Entry{220, Max}, cur.Current())
}

func TestNewValidates(t *testing.T) {
	tests := []struct {
		name    string
		entries []Entry
		wantErr error
	}{
		{"Empty", nil, ErrEmptyCatalog},
		{"ZeroDuration", []Entry{{0, Max}}, ErrInvalidDuration},
		{"NegativeDuration", []Entry{{150, Max}, {-5, Window}}, ErrInvalidDuration},
		{"MissingKind", []Entry{{150, 0}}, ErrInvalidKind},
		{"Valid", []Entry{{150, Max}}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New("test", tt.entries)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, tt.wantErr), "got %v, want %v", err, tt.wantErr)
		})
	}
}

func TestNewCopiesEntries(t *testing.T) {
	entries := []Entry{{150, Max}, {240, Window}}
	c, err := New("copy", entries)
	require.NoError(t, err)

	entries[0].Duration = 1
	assert.Equal(t, 150, c.At(0).Duration)

	out := c.Entries()
	out[1].Duration = 2
	assert.Equal(t, 240, c.At(1).Duration)
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		in      string
		want    Kind
		wantErr bool
	}{
		{"max", Max, false},
		{"MAX", Max, false},
		{"M", Max, false},
		{"window", Window, false},
		{" W ", Window, false},
		{"+/-", Window, false},
		{"both", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseKind(tt.in)
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrInvalidKind, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestKindLabels(t *testing.T) {
	assert.Equal(t, "MAX", Max.Label())
	assert.Equal(t, "+ / -", Window.Label())
	assert.Equal(t, "", Kind(0).Label())
	assert.Equal(t, "WINDOW", Window.String())
	assert.Equal(t, "UNKNOWN", Kind(7).String())
}

func TestKindYAMLRoundTrip(t *testing.T) {
	data, err := yaml.Marshal(Entry{Duration: 150, Kind: Window})
	require.NoError(t, err)
	assert.Contains(t, string(data), "kind: window")

	var e Entry
	require.NoError(t, yaml.Unmarshal(data, &e))
	assert.Equal(t, Entry{150, Window}, e)
}

func TestParseRejectsBadKind(t *testing.T) {
	_, err := Parse([]byte("name: bad\nentries:\n  - {duration: 90, kind: sideways}\n"))
	assert.ErrorIs(t, err, ErrInvalidKind)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "club.yaml")
	doc := `name: club
entries:
  - {duration: 100, kind: max}
  - {duration: 150, kind: W}
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0644))

	c, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "club", c.Name())
	assert.Equal(t, []Entry{{100, Max}, {150, Window}}, c.Entries())

	_, err = LoadFile(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadBuiltin(t *testing.T) {
	assert.Contains(t, Builtins(), DefaultRuleset)

	_, err := LoadBuiltin("no-such-set")
	assert.ErrorIs(t, err, ErrUnknownRuleset)
}
