// Package catalog holds the closed vocabulary of named colors and the
// bidirectional lookup between a name and its position.
//
// The position of a name is its wire encoding for Named colors, so the order
// of the default catalog is fixed. Reordering it changes the meaning of every
// previously packed Named value.
package catalog

import "fmt"

// Catalog is an ordered set of color names. It is immutable after New returns
// and safe for concurrent use.
type Catalog struct {
	names []string
	index map[string]int
}

var defaultCatalog = mustNew("Red", "Green", "Blue", "Purple", "Orange", "Yellow")

// Default returns the process-wide catalog used by the codec.
func Default() *Catalog {
	return defaultCatalog
}

// New creates a catalog from names in the given order.
func New(names ...string) (*Catalog, error) {
	c := &Catalog{
		names: make([]string, 0, len(names)),
		index: make(map[string]int, len(names)),
	}
	for i, name := range names {
		if name == "" {
			return nil, fmt.Errorf("catalog entry %d is empty", i)
		}
		if prev, ok := c.index[name]; ok {
			return nil, fmt.Errorf("duplicate catalog entry %q at %d and %d", name, prev, i)
		}
		c.index[name] = i
		c.names = append(c.names, name)
	}
	return c, nil
}

func mustNew(names ...string) *Catalog {
	c, err := New(names...)
	if err != nil {
		panic(err)
	}
	return c
}

// Size returns the number of entries.
func (c *Catalog) Size() int {
	return len(c.names)
}

// NameAt returns the name at index.
func (c *Catalog) NameAt(index int) (string, error) {
	if index < 0 || index >= len(c.names) {
		return "", &OutOfRangeError{Field: "catalog index", Value: index, Min: 0, Max: len(c.names) - 1}
	}
	return c.names[index], nil
}

// IndexOf returns the position of name.
func (c *Catalog) IndexOf(name string) (int, error) {
	i, ok := c.index[name]
	if !ok {
		return 0, &UnknownNameError{Name: name}
	}
	return i, nil
}

// Contains reports whether name is in the catalog.
func (c *Catalog) Contains(name string) bool {
	_, ok := c.index[name]
	return ok
}

// Names returns a copy of the entries in catalog order.
func (c *Catalog) Names() []string {
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}
