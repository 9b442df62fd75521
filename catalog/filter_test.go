package catalog

import (
	"testing"

	"embervale/models"
)

func plant(name, description, category string) models.Plant {
	return models.Plant{Name: name, Description: description, Category: category}
}

func TestFilterQueryMatchesNameOrDescription(t *testing.T) {
	items := []models.Plant{
		plant("Yarrow", "Wound herb found near old roads", "Medicinal"),
		plant("Potato", "Staple crop, grows in poor soil", "Food"),
		plant("Sage", "Aromatic, used for teas and wounds", "Medicinal"),
	}

	got := Filter(items, FilterOptions{Query: "wound"})
	if len(got) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(got))
	}
	if got[0].Name != "Yarrow" || got[1].Name != "Sage" {
		t.Fatalf("order not preserved: %s, %s", got[0].Name, got[1].Name)
	}
}

func TestFilterQueryIsCaseInsensitive(t *testing.T) {
	items := []models.Plant{plant("Echinacea", "Immune booster", "Medicinal")}

	for _, q := range []string{"ECHINACEA", "echin", "Immune", "immune BOOST"} {
		if got := Filter(items, FilterOptions{Query: q}); len(got) != 1 {
			t.Errorf("query %q: expected a match", q)
		}
	}
	if got := Filter(items, FilterOptions{Query: "cactus"}); len(got) != 0 {
		t.Errorf("query cactus: expected no match, got %d", len(got))
	}
}

func TestFilterCategoryIsExact(t *testing.T) {
	items := []models.Plant{
		plant("Yarrow", "", "Medicinal"),
		plant("Potato", "", "Food"),
		plant("Corn", "", "Food"),
	}

	got := Filter(items, FilterOptions{Category: "Medicinal"})
	if len(got) != 1 || got[0].Name != "Yarrow" {
		t.Fatalf("expected only Yarrow, got %v", got)
	}

	// category match is case-sensitive
	if got := Filter(items, FilterOptions{Category: "medicinal"}); len(got) != 0 {
		t.Fatalf("lowercase category should not match, got %d", len(got))
	}
}

func TestFilterEmptyOptionsAreNoOp(t *testing.T) {
	items := []models.Plant{
		plant("A", "", "Food"),
		plant("B", "", "Medicinal"),
		plant("C", "", "Food"),
	}

	got := Filter(items, FilterOptions{})
	if len(got) != len(items) {
		t.Fatalf("expected all %d items, got %d", len(items), len(got))
	}
	for i := range got {
		if got[i].Name != items[i].Name {
			t.Fatalf("order changed at %d", i)
		}
	}
}

func TestFilterCombinesQueryAndCategory(t *testing.T) {
	plants := []models.Plant{
		plant("Yarrow", "wound herb", "Medicinal"),
		plant("Wound berry", "snack", "Food"),
	}
	got := Filter(plants, FilterOptions{Query: "wound", Category: "Medicinal"})
	if len(got) != 1 || got[0].Name != "Yarrow" {
		t.Fatalf("expected only Yarrow, got %v", got)
	}
}
