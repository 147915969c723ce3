package theme

import (
	_ "embed"
	"fmt"
	"sort"

	"github.com/BurntSushi/toml"
)

//go:embed themes.toml
var builtinCatalog string

type catalogFile struct {
	Themes []catalogEntry `toml:"theme"`
}

type catalogEntry struct {
	Name    string   `toml:"name"`
	Palette []string `toml:"palette"`
}

// Catalog is an immutable set of themes with their names in sorted order.
// It is built once at startup and shared read-only.
type Catalog struct {
	names  []string
	themes map[string]Theme
}

// Builtin decodes the catalog compiled into the binary.
func Builtin() (*Catalog, error) {
	return Parse(builtinCatalog)
}

// Parse decodes a TOML catalog of [[theme]] tables. Entries without a name
// are skipped; a later entry replaces an earlier one of the same name.
func Parse(data string) (*Catalog, error) {
	var f catalogFile
	if _, err := toml.Decode(data, &f); err != nil {
		return nil, fmt.Errorf("theme: decode catalog: %w", err)
	}
	themes := make([]Theme, 0, len(f.Themes))
	for _, e := range f.Themes {
		if e.Name == "" {
			continue
		}
		themes = append(themes, New(e.Name, e.Palette))
	}
	return NewCatalog(themes...), nil
}

// NewCatalog indexes themes by name.
func NewCatalog(themes ...Theme) *Catalog {
	c := &Catalog{themes: make(map[string]Theme, len(themes))}
	for _, t := range themes {
		c.themes[t.Name] = t
	}
	c.names = make([]string, 0, len(c.themes))
	for name := range c.themes {
		c.names = append(c.names, name)
	}
	sort.Strings(c.names)
	return c
}

// Len returns the number of distinct themes.
func (c *Catalog) Len() int {
	return len(c.names)
}

// Names returns the sorted theme names.
func (c *Catalog) Names() []string {
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}

// Lookup finds a theme by name.
func (c *Catalog) Lookup(name string) (Theme, bool) {
	t, ok := c.themes[name]
	return t, ok
}

// At returns the theme at position i of the sorted name list.
func (c *Catalog) At(i int) (Theme, bool) {
	if i < 0 || i >= len(c.names) {
		return Theme{}, false
	}
	return c.themes[c.names[i]], true
}

// IndexOf returns the position of name in the sorted list. An unknown name
// falls back to 0, the first theme alphabetically.
func (c *Catalog) IndexOf(name string) int {
	i := sort.SearchStrings(c.names, name)
	if i < len(c.names) && c.names[i] == name {
		return i
	}
	return 0
}
