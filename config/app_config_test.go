package config

import (
	"testing"
)

func TestParseBrandWatchlist_NamesAndAliases(t *testing.T) {
	watchlist := ParseBrandWatchlist("Acme:ACME Inc|AcmeCorp, Globex ,Initech:ITC")

	if len(watchlist) != 3 {
		t.Fatalf("Expected 3 brands, got %d", len(watchlist))
	}

	if watchlist[0].Name != "Acme" || len(watchlist[0].Aliases) != 2 {
		t.Errorf("Unexpected first brand: %+v", watchlist[0])
	}

	if watchlist[1].Name != "Globex" || len(watchlist[1].Aliases) != 0 {
		t.Errorf("Unexpected second brand: %+v", watchlist[1])
	}

	if watchlist[2].Name != "Initech" || watchlist[2].Aliases[0] != "ITC" {
		t.Errorf("Unexpected third brand: %+v", watchlist[2])
	}
}

func TestParseBrandWatchlist_PreservesOrder(t *testing.T) {
	watchlist := ParseBrandWatchlist("Zeta,Alpha,Mid")

	expected := []string{"Zeta", "Alpha", "Mid"}
	for i, name := range expected {
		if watchlist[i].Name != name {
			t.Errorf("Expected position %d to be %q, got %q", i, name, watchlist[i].Name)
		}
	}
}

func TestParseBrandWatchlist_Empty(t *testing.T) {
	if watchlist := ParseBrandWatchlist(""); len(watchlist) != 0 {
		t.Errorf("Expected empty watchlist, got %+v", watchlist)
	}

	if watchlist := ParseBrandWatchlist(" , ,"); len(watchlist) != 0 {
		t.Errorf("Expected empty watchlist for blank entries, got %+v", watchlist)
	}
}
