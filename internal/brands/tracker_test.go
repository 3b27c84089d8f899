package brands

import (
	"testing"

	"trendsight/internal/models"
)

func TestTrack_CountsWholeWordMentions(t *testing.T) {
	doc := models.NormalizedDocument{Text: "Acme phones are great, I love my Acme phone!"}
	watchlist := models.BrandWatchlist{
		{Name: "Acme"},
		{Name: "Globex"},
	}

	table := Track(doc, watchlist)

	if len(table) != 2 {
		t.Fatalf("Expected table length 2, got %d", len(table))
	}

	if table.Count("Acme") != 2 {
		t.Errorf("Expected 2 Acme mentions, got %d", table.Count("Acme"))
	}

	if table.Count("Globex") != 0 {
		t.Errorf("Expected 0 Globex mentions, got %d", table.Count("Globex"))
	}
}

func TestTrack_CaseInsensitive(t *testing.T) {
	doc := models.NormalizedDocument{Text: "ACME acme Acme"}
	table := Track(doc, models.BrandWatchlist{{Name: "Acme"}})

	if table.Count("Acme") != 3 {
		t.Errorf("Expected 3 mentions regardless of case, got %d", table.Count("Acme"))
	}
}

func TestTrack_NoPartialWordMatches(t *testing.T) {
	doc := models.NormalizedDocument{Text: "Acmeville is not a mention, and neither is megaacme."}
	table := Track(doc, models.BrandWatchlist{{Name: "Acme"}})

	if table.Count("Acme") != 0 {
		t.Errorf("Expected no partial-word matches, got %d", table.Count("Acme"))
	}
}

func TestTrack_AliasesAccumulate(t *testing.T) {
	doc := models.NormalizedDocument{Text: "Initech shipped a patch. ITC stock rose after Initech Corp confirmed it."}
	watchlist := models.BrandWatchlist{
		{Name: "Initech", Aliases: []string{"ITC"}},
	}

	table := Track(doc, watchlist)

	// "Initech" twice (the standalone word also matches inside "Initech Corp")
	// plus the ITC alias once.
	if table.Count("Initech") != 3 {
		t.Errorf("Expected 3 accumulated mentions, got %d", table.Count("Initech"))
	}
}

func TestTrack_PreservesWatchlistOrder(t *testing.T) {
	doc := models.NormalizedDocument{Text: "Globex beat Acme this quarter."}
	watchlist := models.BrandWatchlist{
		{Name: "Acme"},
		{Name: "Globex"},
		{Name: "Hooli"},
	}

	table := Track(doc, watchlist)

	expected := []string{"Acme", "Globex", "Hooli"}
	for i, name := range expected {
		if table[i].Brand != name {
			t.Errorf("Expected position %d to be %q, got %q", i, name, table[i].Brand)
		}
	}
}

func TestTrack_EmptyText(t *testing.T) {
	table := Track(models.NormalizedDocument{}, models.BrandWatchlist{{Name: "Acme"}, {Name: "Globex"}})

	if len(table) != 2 {
		t.Fatalf("Expected table to mirror watchlist length, got %d", len(table))
	}

	for _, m := range table {
		if m.Count != 0 {
			t.Errorf("Expected zero mentions in empty text, got %d for %s", m.Count, m.Brand)
		}
	}
}
