package market

import (
	"testing"

	"github.com/pisoplay/tycoon/tycoon/database/models"
	"github.com/sahilm/fuzzy"
)

func TestListingSourceRanking(t *testing.T) {
	listings := listingSource{
		{Title: "Sack of Rice"},
		{Title: "Dried Fish Bundle"},
		{Title: "Coconut Lumber", Description: "treated timber"},
		{Title: "Jeepney Spare Parts"},
	}

	matches := fuzzy.FindFrom("rice", listings)
	if len(matches) == 0 {
		t.Fatal("no matches for 'rice'")
	}
	if listings[matches[0].Index].Title != "Sack of Rice" {
		t.Errorf("best match = %q, want Sack of Rice", listings[matches[0].Index].Title)
	}
}

func TestListingSourceMatchesDescription(t *testing.T) {
	listings := listingSource{
		{Title: "Mystery Crate"},
		{Title: "Coconut Lumber", Description: "treated timber"},
	}

	matches := fuzzy.FindFrom("timber", listings)
	if len(matches) == 0 {
		t.Fatal("description text should be searchable")
	}
	if listings[matches[0].Index].Title != "Coconut Lumber" {
		t.Errorf("best match = %q, want Coconut Lumber", listings[matches[0].Index].Title)
	}
}

func TestListingSourceNoMatch(t *testing.T) {
	listings := listingSource{{Title: "Sack of Rice"}}
	if matches := fuzzy.FindFrom("xyzzyq", listings); len(matches) != 0 {
		t.Errorf("unexpected matches: %d", len(matches))
	}
}

func TestListingSourceLen(t *testing.T) {
	listings := listingSource{
		&models.Listing{Title: "a"},
		&models.Listing{Title: "b"},
	}
	if listings.Len() != 2 {
		t.Errorf("Len = %d, want 2", listings.Len())
	}
}
