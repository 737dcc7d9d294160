package grid

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/zyedidia/generic/mapset"
)

// TileDef is one entry of the tile catalog: a label and its fill color.
type TileDef struct {
	Label string
	Color color.RGBA
}

// Catalog is the fixed, ordered set of tile definitions. It is read-only once
// constructed.
type Catalog struct {
	tiles []TileDef
}

// NewCatalog copies defs into a catalog. The catalog must be non-empty and
// labels must be non-blank and unique.
func NewCatalog(defs []TileDef) (*Catalog, error) {
	if len(defs) == 0 {
		return nil, fmt.Errorf("%w: catalog is empty", ErrInvalidCatalog)
	}

	seen := mapset.New[string]()
	tiles := make([]TileDef, len(defs))
	for i, d := range defs {
		label := strings.TrimSpace(d.Label)
		if label == "" {
			return nil, fmt.Errorf("%w: entry %d has an empty label", ErrInvalidCatalog, i)
		}
		if seen.Has(label) {
			return nil, fmt.Errorf("%w: duplicate label %q", ErrInvalidCatalog, label)
		}
		seen.Put(label)
		tiles[i] = TileDef{Label: label, Color: d.Color}
	}
	return &Catalog{tiles: tiles}, nil
}

// MustCatalog is NewCatalog for static tables; it panics on error.
func MustCatalog(defs []TileDef) *Catalog {
	c, err := NewCatalog(defs)
	if err != nil {
		panic(err)
	}
	return c
}

// Len returns the number of tile definitions.
func (c *Catalog) Len() int {
	return len(c.tiles)
}

// At returns the definition at index i.
func (c *Catalog) At(i int) TileDef {
	return c.tiles[i]
}

// For returns the definition shown at world position (row, col).
func (c *Catalog) For(row, col int) TileDef {
	return c.tiles[TileIndexFor(row, col, len(c.tiles))]
}

// Zip pairs labels with colors, cycling through colors when there are more
// labels than colors.
func Zip(labels []string, colors []color.RGBA) []TileDef {
	if len(colors) == 0 {
		return nil
	}
	defs := make([]TileDef, len(labels))
	for i, l := range labels {
		defs[i] = TileDef{Label: l, Color: colors[i%len(colors)]}
	}
	return defs
}

// Hex parses "#RRGGBB" into an opaque color. Malformed input yields black.
func Hex(s string) color.RGBA {
	c, err := ParseHex(s)
	if err != nil {
		return color.RGBA{A: 255}
	}
	return c
}

// ParseHex parses "#RRGGBB" or "RRGGBB" into an opaque color.
func ParseHex(s string) (color.RGBA, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return color.RGBA{}, fmt.Errorf("color %q: want #RRGGBB", s)
	}
	var r, g, b uint8
	if _, err := fmt.Sscanf(s, "%02x%02x%02x", &r, &g, &b); err != nil {
		return color.RGBA{}, fmt.Errorf("color %q: %w", s, err)
	}
	return color.RGBA{r, g, b, 255}, nil
}
