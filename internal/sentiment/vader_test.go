package sentiment

import (
	"testing"

	"trendsight/internal/models"
)

func TestAnalyze_PositiveText(t *testing.T) {
	doc := models.NormalizedDocument{Text: "Acme phones are great, I love my Acme phone!"}

	result := Analyze(doc)

	if result.Polarity <= 0 {
		t.Errorf("Expected positive polarity, got %f", result.Polarity)
	}

	if result.Label != "positive" {
		t.Errorf("Expected positive label, got %q", result.Label)
	}
}

func TestAnalyze_NegativeText(t *testing.T) {
	doc := models.NormalizedDocument{Text: "This is terrible, I hate it. Worst product ever."}

	result := Analyze(doc)

	if result.Polarity >= 0 {
		t.Errorf("Expected negative polarity, got %f", result.Polarity)
	}

	if result.Label != "negative" {
		t.Errorf("Expected negative label, got %q", result.Label)
	}
}

func TestAnalyze_ScoresStayInRange(t *testing.T) {
	docs := []string{
		"Absolutely amazing, wonderful, fantastic, the best!!!",
		"Horrible awful terrible disgusting worst hate hate hate",
		"The meeting is scheduled for Tuesday at noon.",
		"ok",
	}

	for _, text := range docs {
		result := Analyze(models.NormalizedDocument{Text: text})

		if result.Polarity < -1.0 || result.Polarity > 1.0 {
			t.Errorf("Polarity out of range for %q: %f", text, result.Polarity)
		}

		if result.Subjectivity < 0.0 || result.Subjectivity > 1.0 {
			t.Errorf("Subjectivity out of range for %q: %f", text, result.Subjectivity)
		}
	}
}

func TestAnalyze_EmptyText_NeutralZeroScores(t *testing.T) {
	result := Analyze(models.NormalizedDocument{})

	if result.Polarity != 0.0 || result.Subjectivity != 0.0 {
		t.Errorf("Expected (0.0, 0.0) for empty text, got (%f, %f)", result.Polarity, result.Subjectivity)
	}

	if result.Label != "neutral" {
		t.Errorf("Expected neutral label, got %q", result.Label)
	}
}

func TestAnalyze_Deterministic(t *testing.T) {
	doc := models.NormalizedDocument{Text: "The launch was good but the rollout had some annoying problems."}

	first := Analyze(doc)
	second := Analyze(doc)

	if first != second {
		t.Errorf("Expected identical results for identical input, got %+v and %+v", first, second)
	}
}
