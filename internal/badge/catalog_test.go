package badge

import (
	"errors"
	"testing"
)

func TestDefaultCatalogValidates(t *testing.T) {
	c, err := Default()
	if err != nil {
		t.Fatalf("default catalog failed validation: %v", err)
	}
	if c.Len() == 0 {
		t.Fatal("default catalog is empty")
	}

	for _, def := range c.All() {
		switch def.Category {
		case CategoryCount, CategoryDistance, CategoryElevation, CategoryStreak:
			if def.Requirement <= 0 {
				t.Fatalf("%s: threshold category without positive requirement", def.ID)
			}
		case CategorySeasonal:
			if !def.Season.Valid() {
				t.Fatalf("%s: invalid season %q", def.ID, def.Season)
			}
		case CategoryHoliday:
			if !def.Holiday.Valid() {
				t.Fatalf("%s: invalid holiday %q", def.ID, def.Holiday)
			}
		}
	}
}

func TestNewCatalogRejectsMalformedEntries(t *testing.T) {
	tests := []struct {
		name string
		defs []Definition
	}{
		{"missing id", []Definition{{Name: "x", Category: CategoryCount, Requirement: 1}}},
		{"duplicate id", []Definition{
			{ID: "a", Name: "a", Category: CategoryCount, Requirement: 1},
			{ID: "a", Name: "b", Category: CategoryCount, Requirement: 2},
		}},
		{"unknown category", []Definition{{ID: "a", Name: "a", Category: "mystery"}}},
		{"count without requirement", []Definition{{ID: "a", Name: "a", Category: CategoryCount}}},
		{"streak with negative requirement", []Definition{{ID: "a", Name: "a", Category: CategoryStreak, Requirement: -3}}},
		{"seasonal without season", []Definition{{ID: "a", Name: "a", Category: CategorySeasonal}}},
		{"holiday without key", []Definition{{ID: "a", Name: "a", Category: CategoryHoliday}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewCatalog(tt.defs); !errors.Is(err, ErrInvalidCatalogEntry) {
				t.Fatalf("expected ErrInvalidCatalogEntry, got %v", err)
			}
		})
	}
}

func TestCategoryManualSplit(t *testing.T) {
	manual := []Category{CategoryWeather, CategoryDiscovery, CategoryLocation, CategorySpecial, CategorySocial}
	automatic := []Category{CategoryCount, CategoryDistance, CategoryElevation, CategorySeasonal, CategoryStreak, CategoryHoliday}

	for _, c := range manual {
		if !c.Manual() {
			t.Fatalf("expected %s to be manual", c)
		}
	}
	for _, c := range automatic {
		if c.Manual() {
			t.Fatalf("expected %s to be automatic", c)
		}
	}
}

func TestCategoryOf(t *testing.T) {
	c, err := Default()
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}

	got, ok := c.CategoryOf("streak7")
	if !ok || got != CategoryStreak {
		t.Fatalf("CategoryOf(streak7) = %q, %v", got, ok)
	}
	if _, ok := c.CategoryOf("no-such-badge"); ok {
		t.Fatal("expected lookup miss for unknown id")
	}
}
