package keywords

import (
	"regexp"
	"sort"
	"strings"

	"trendsight/internal/models"
)

var (
	wordPattern     = regexp.MustCompile(`[a-zA-Z]+`)
	nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)
)

// Extract ranks candidate terms by frequency after stop-word exclusion.
// Ordering is descending weight with ties broken by first occurrence, so
// identical text always yields the identical keyword list. At most
// maxKeywords entries are returned, plus the hashtag forms derived from
// them with duplicates removed.
func Extract(doc models.NormalizedDocument, maxKeywords int) (models.KeywordSet, models.HashtagSet) {
	if maxKeywords <= 0 || doc.Text == "" {
		return models.KeywordSet{}, models.HashtagSet{}
	}

	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	var order []string

	for i, token := range wordPattern.FindAllString(strings.ToLower(doc.Text), -1) {
		if len(token) < 2 {
			continue
		}
		if _, skip := stopWords[token]; skip {
			continue
		}
		if _, seen := counts[token]; !seen {
			firstSeen[token] = i
			order = append(order, token)
		}
		counts[token]++
	}

	sort.SliceStable(order, func(a, b int) bool {
		if counts[order[a]] != counts[order[b]] {
			return counts[order[a]] > counts[order[b]]
		}
		return firstSeen[order[a]] < firstSeen[order[b]]
	})

	if len(order) > maxKeywords {
		order = order[:maxKeywords]
	}

	keywordSet := make(models.KeywordSet, 0, len(order))
	for _, term := range order {
		keywordSet = append(keywordSet, models.Keyword{Term: term, Weight: float64(counts[term])})
	}

	return keywordSet, deriveHashtags(keywordSet)
}

// deriveHashtags turns each keyword into its hashtag form, dropping
// duplicates after transformation while preserving first occurrence.
func deriveHashtags(keywords models.KeywordSet) models.HashtagSet {
	seen := make(map[string]struct{}, len(keywords))
	hashtags := make(models.HashtagSet, 0, len(keywords))

	for _, kw := range keywords {
		tag := nonAlphanumeric.ReplaceAllString(strings.ToLower(kw.Term), "")
		if tag == "" {
			continue
		}
		if _, dup := seen[tag]; dup {
			continue
		}
		seen[tag] = struct{}{}
		hashtags = append(hashtags, "#"+tag)
	}

	return hashtags
}
