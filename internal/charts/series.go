package charts

import "trendsight/internal/models"

// SentimentSeries builds the negative/neutral/positive bar series shown
// alongside a report. Rendering is the display layer's concern.
func SentimentSeries(s models.SentimentResult) models.BarSeries {
	return models.BarSeries{
		Title:  "Sentiment Scores",
		Labels: []string{"Negative", "Neutral", "Positive"},
		Values: []float64{s.Negative, s.Neutral, s.Positive},
	}
}

// BrandSeries builds the brand-mention bar series keyed by brand name in
// watchlist order.
func BrandSeries(table models.BrandMentionTable) models.BarSeries {
	labels := make([]string, 0, len(table))
	values := make([]float64, 0, len(table))
	for _, m := range table {
		labels = append(labels, m.Brand)
		values = append(values, float64(m.Count))
	}

	return models.BarSeries{
		Title:  "Brand Mention Frequency",
		Labels: labels,
		Values: values,
	}
}
