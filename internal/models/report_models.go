package models

// RawInput is a single user submission: exactly one of URL or Text is set.
type RawInput struct {
	URL  string `json:"url,omitempty"`
	Text string `json:"text,omitempty"`
}

func (r RawInput) IsURL() bool {
	return r.URL != ""
}

// NormalizedDocument is plain text ready for analysis, produced once per
// submission and never mutated afterwards.
type NormalizedDocument struct {
	Text      string `json:"text"`
	SourceURL string `json:"source_url,omitempty"`
}

type SentimentResult struct {
	Polarity     float64 `json:"polarity"`
	Subjectivity float64 `json:"subjectivity"`
	Label        string  `json:"label"`
	Positive     float64 `json:"positive"`
	Neutral      float64 `json:"neutral"`
	Negative     float64 `json:"negative"`
}

type Keyword struct {
	Term   string  `json:"term"`
	Weight float64 `json:"weight"`
}

// KeywordSet is ordered by descending weight, ties broken by first
// occurrence in the source text.
type KeywordSet []Keyword

// HashtagSet holds hashtag forms derived from a KeywordSet, deduplicated
// preserving first occurrence.
type HashtagSet []string

type BrandMention struct {
	Brand string `json:"brand"`
	Count int    `json:"count"`
}

// BrandMentionTable preserves the configured brand order, including brands
// with zero mentions.
type BrandMentionTable []BrandMention

func (t BrandMentionTable) Count(brand string) int {
	for _, m := range t {
		if m.Brand == brand {
			return m.Count
		}
	}
	return 0
}

// AnalysisReport is the aggregate output of one pipeline run. It is built
// once, read-only afterwards, and discarded when the next submission begins.
type AnalysisReport struct {
	Document      NormalizedDocument `json:"document"`
	Sentiment     SentimentResult    `json:"sentiment"`
	Keywords      KeywordSet         `json:"keywords"`
	Hashtags      HashtagSet         `json:"hashtags"`
	BrandMentions BrandMentionTable  `json:"brand_mentions"`
	Charts        ReportCharts       `json:"charts"`
}

type ReportCharts struct {
	Sentiment     BarSeries `json:"sentiment"`
	BrandMentions BarSeries `json:"brand_mentions"`
}
