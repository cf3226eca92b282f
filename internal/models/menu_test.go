package models

import (
	"strings"
	"testing"
)

func TestValidateMenuItem(t *testing.T) {
	valid := MenuItem{Name: "Mufete", Price: 8500, Category: CategoryMains}

	tests := []struct {
		name    string
		mutate  func(*MenuItem)
		wantErr bool
	}{
		{"valid item", func(*MenuItem) {}, false},
		{"free item", func(m *MenuItem) { m.Price = 0 }, false},
		{"blank name", func(m *MenuItem) { m.Name = "   " }, true},
		{"negative price", func(m *MenuItem) { m.Price = -1 }, true},
		{"unknown category", func(m *MenuItem) { m.Category = "Snacks" }, true},
		{"wildcard category", func(m *MenuItem) { m.Category = CategoryAll }, true},
		{"negative prep time", func(m *MenuItem) { m.PrepTime = -5 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := valid
			tt.mutate(&item)
			err := ValidateMenuItem(&item)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateMenuItem() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestMenuItemMatchesSearch(t *testing.T) {
	item := MenuItem{Name: "Calulu de Peixe", Description: "Tradicional calulu com quiabos."}

	tests := []struct {
		term string
		want bool
	}{
		{"", true},
		{"calulu", true},
		{"CALULU", true},
		{"quiabos", true},
		{"funge", false},
	}

	for _, tt := range tests {
		if got := item.MatchesSearch(tt.term); got != tt.want {
			t.Errorf("MatchesSearch(%q) = %v, want %v", tt.term, got, tt.want)
		}
	}
}

func TestMenuItemIsInCategory(t *testing.T) {
	item := MenuItem{Category: CategoryDrinks}

	if !item.IsInCategory(CategoryAll) {
		t.Error("IsInCategory(All) = false, want true")
	}
	if !item.IsInCategory(CategoryDrinks) {
		t.Error("IsInCategory(Drinks) = false, want true")
	}
	if item.IsInCategory(CategoryMains) {
		t.Error("IsInCategory(Mains) = true, want false")
	}
}

func TestSeedMenuIDsUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, item := range SeedMenu() {
		if seen[item.ID] {
			t.Errorf("duplicate seed id %q", item.ID)
		}
		seen[item.ID] = true
		if err := ValidateMenuItem(&item); err != nil {
			t.Errorf("seed item %q invalid: %v", item.Name, err)
		}
	}
}

func TestFormatKz(t *testing.T) {
	got := FormatKz(8500)
	if !strings.HasSuffix(got, "Kz") {
		t.Errorf("FormatKz(8500) = %q, want a Kz suffix", got)
	}
	if !strings.Contains(got, "8") || !strings.Contains(got, "500") {
		t.Errorf("FormatKz(8500) = %q, digits missing", got)
	}
}
