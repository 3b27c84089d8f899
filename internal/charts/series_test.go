package charts

import (
	"testing"

	"trendsight/internal/models"
)

func TestBrandSeries_MirrorsTableOrder(t *testing.T) {
	table := models.BrandMentionTable{
		{Brand: "Acme", Count: 2},
		{Brand: "Globex", Count: 0},
	}

	series := BrandSeries(table)

	if len(series.Labels) != 2 || len(series.Values) != 2 {
		t.Fatalf("Expected 2 entries, got %d labels / %d values", len(series.Labels), len(series.Values))
	}

	if series.Labels[0] != "Acme" || series.Values[0] != 2 {
		t.Errorf("Unexpected first entry: %s=%f", series.Labels[0], series.Values[0])
	}

	if series.Labels[1] != "Globex" || series.Values[1] != 0 {
		t.Errorf("Unexpected second entry: %s=%f", series.Labels[1], series.Values[1])
	}
}

func TestSentimentSeries_ThreeBuckets(t *testing.T) {
	series := SentimentSeries(models.SentimentResult{Negative: 0.1, Neutral: 0.6, Positive: 0.3})

	if len(series.Labels) != 3 {
		t.Fatalf("Expected 3 buckets, got %d", len(series.Labels))
	}

	if series.Values[0] != 0.1 || series.Values[1] != 0.6 || series.Values[2] != 0.3 {
		t.Errorf("Unexpected values: %v", series.Values)
	}
}
