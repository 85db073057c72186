package badge

import (
	"errors"
	"fmt"
)

// Definition describes one achievement in the catalog.
//
// Requirement is interpreted per category: total hikes for count, total miles
// for distance, total feet climbed for elevation, consecutive days for streak.
// Seasonal definitions carry a Season and holiday definitions a Holiday key
// instead. Manual categories have neither.
type Definition struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Icon        string   `json:"icon"`
	Category    Category `json:"category"`
	Requirement float64  `json:"requirement,omitempty"`
	Season      Season   `json:"season,omitempty"`
	Holiday     Holiday  `json:"holiday,omitempty"`
	Description string   `json:"description"`
}

// ErrInvalidCatalogEntry indicates a badge definition that is malformed for
// its category. This is a data-authoring bug and aborts initialization.
var ErrInvalidCatalogEntry = errors.New("invalid catalog entry")

// Catalog is the immutable, ordered set of badge definitions. Construct one
// with NewCatalog; the zero value is not usable.
type Catalog struct {
	defs []Definition
	byID map[string]int
}

// NewCatalog validates the supplied definitions and builds a catalog.
// Ordering of defs is preserved and determines evaluation output order.
func NewCatalog(defs []Definition) (*Catalog, error) {
	byID := make(map[string]int, len(defs))
	for i, def := range defs {
		if def.ID == "" {
			return nil, fmt.Errorf("%w: entry %d has no id", ErrInvalidCatalogEntry, i)
		}
		if _, dup := byID[def.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate id %q", ErrInvalidCatalogEntry, def.ID)
		}
		if !def.Category.Valid() {
			return nil, fmt.Errorf("%w: %q has unknown category %q", ErrInvalidCatalogEntry, def.ID, def.Category)
		}

		switch def.Category {
		case CategoryCount, CategoryDistance, CategoryElevation, CategoryStreak:
			if def.Requirement <= 0 {
				return nil, fmt.Errorf("%w: %q (%s) requires a positive requirement", ErrInvalidCatalogEntry, def.ID, def.Category)
			}
		case CategorySeasonal:
			if !def.Season.Valid() {
				return nil, fmt.Errorf("%w: %q has invalid season %q", ErrInvalidCatalogEntry, def.ID, def.Season)
			}
		case CategoryHoliday:
			if !def.Holiday.Valid() {
				return nil, fmt.Errorf("%w: %q has invalid holiday %q", ErrInvalidCatalogEntry, def.ID, def.Holiday)
			}
		}

		byID[def.ID] = i
	}

	out := make([]Definition, len(defs))
	copy(out, defs)
	return &Catalog{defs: out, byID: byID}, nil
}

// Default builds the catalog from the built-in definitions.
func Default() (*Catalog, error) {
	return NewCatalog(Definitions())
}

// All returns every definition in catalog order. The slice is a copy.
func (c *Catalog) All() []Definition {
	out := make([]Definition, len(c.defs))
	copy(out, c.defs)
	return out
}

// Len returns the number of definitions in the catalog.
func (c *Catalog) Len() int {
	return len(c.defs)
}

// ByID looks up a definition by its stable identifier.
func (c *Catalog) ByID(id string) (Definition, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Definition{}, false
	}
	return c.defs[i], true
}

// CategoryOf returns the category of the badge with the given id.
func (c *Catalog) CategoryOf(id string) (Category, bool) {
	def, ok := c.ByID(id)
	if !ok {
		return "", false
	}
	return def.Category, true
}
