package brands

import (
	"regexp"

	"trendsight/internal/models"
)

// Track counts case-insensitive whole-word occurrences of each watched
// brand and its aliases. Alias hits accumulate onto the canonical brand
// name. The result preserves the watchlist order and includes brands with
// zero mentions; matching is exact tokens only, no fuzzy matching.
func Track(doc models.NormalizedDocument, watchlist models.BrandWatchlist) models.BrandMentionTable {
	table := make(models.BrandMentionTable, 0, len(watchlist))

	for _, brand := range watchlist {
		count := countWholeWord(doc.Text, brand.Name)
		for _, alias := range brand.Aliases {
			count += countWholeWord(doc.Text, alias)
		}
		table = append(table, models.BrandMention{Brand: brand.Name, Count: count})
	}

	return table
}

func countWholeWord(text, term string) int {
	if term == "" || text == "" {
		return 0
	}
	pattern := regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(term) + `\b`)
	return len(pattern.FindAllStringIndex(text, -1))
}
