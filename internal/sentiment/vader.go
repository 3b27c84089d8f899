package sentiment

import (
	"github.com/jonreiter/govader"

	"trendsight/internal/models"
)

var analyzer = govader.NewSentimentIntensityAnalyzer()

const (
	positiveThreshold = 0.05
	negativeThreshold = -0.05
)

// Analyze scores a normalized document with VADER. Pure function of the
// input text; identical text and lexicon version give identical scores.
// Empty text yields neutral zero scores rather than an error.
func Analyze(doc models.NormalizedDocument) models.SentimentResult {
	if doc.Text == "" {
		return models.SentimentResult{Label: "neutral", Neutral: 1}
	}

	scores := analyzer.PolarityScores(doc.Text)

	subjectivity := 1 - scores.Neutral
	if subjectivity < 0 {
		subjectivity = 0
	} else if subjectivity > 1 {
		subjectivity = 1
	}

	var label string
	switch {
	case scores.Compound > positiveThreshold:
		label = "positive"
	case scores.Compound < negativeThreshold:
		label = "negative"
	default:
		label = "neutral"
	}

	return models.SentimentResult{
		Polarity:     scores.Compound,
		Subjectivity: subjectivity,
		Label:        label,
		Positive:     scores.Positive,
		Neutral:      scores.Neutral,
		Negative:     scores.Negative,
	}
}
