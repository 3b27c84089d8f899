package keywords

import (
	"testing"

	"trendsight/internal/models"
)

func TestExtract_RanksByFrequency(t *testing.T) {
	doc := models.NormalizedDocument{
		Text: "camera camera camera battery battery screen",
	}

	kws, _ := Extract(doc, 10)

	if len(kws) != 3 {
		t.Fatalf("Expected 3 keywords, got %d", len(kws))
	}

	expected := []string{"camera", "battery", "screen"}
	for i, term := range expected {
		if kws[i].Term != term {
			t.Errorf("Expected keyword %d to be %q, got %q", i, term, kws[i].Term)
		}
	}

	if kws[0].Weight != 3 || kws[1].Weight != 2 || kws[2].Weight != 1 {
		t.Errorf("Unexpected weights: %+v", kws)
	}
}

func TestExtract_ExcludesStopWords(t *testing.T) {
	doc := models.NormalizedDocument{
		Text: "the launch of the product was the event of the year",
	}

	kws, _ := Extract(doc, 10)

	for _, kw := range kws {
		if kw.Term == "the" || kw.Term == "of" || kw.Term == "was" {
			t.Errorf("Stop word %q should not appear in keywords", kw.Term)
		}
	}
}

func TestExtract_TiesBrokenByFirstOccurrence(t *testing.T) {
	doc := models.NormalizedDocument{
		Text: "zebra apple zebra apple mango mango",
	}

	kws, _ := Extract(doc, 10)

	expected := []string{"zebra", "apple", "mango"}
	for i, term := range expected {
		if kws[i].Term != term {
			t.Errorf("Expected keyword %d to be %q (first-occurrence tie break), got %q", i, term, kws[i].Term)
		}
	}
}

func TestExtract_RespectsMaxKeywords(t *testing.T) {
	doc := models.NormalizedDocument{
		Text: "alpha bravo charlie delta echo foxtrot golf hotel india juliet",
	}

	kws, tags := Extract(doc, 3)

	if len(kws) > 3 {
		t.Errorf("Expected at most 3 keywords, got %d", len(kws))
	}

	if len(tags) > 3 {
		t.Errorf("Expected at most 3 hashtags, got %d", len(tags))
	}
}

func TestExtract_FewerCandidatesThanBound(t *testing.T) {
	doc := models.NormalizedDocument{Text: "rocket rocket launch"}

	kws, _ := Extract(doc, 25)

	if len(kws) != 2 {
		t.Errorf("Expected all 2 distinct terms, got %d", len(kws))
	}
}

func TestExtract_HashtagForm(t *testing.T) {
	doc := models.NormalizedDocument{Text: "Rocket rocket LAUNCH launch"}

	_, tags := Extract(doc, 10)

	if len(tags) != 2 {
		t.Fatalf("Expected 2 hashtags, got %d: %v", len(tags), tags)
	}

	if tags[0] != "#rocket" || tags[1] != "#launch" {
		t.Errorf("Unexpected hashtags: %v", tags)
	}
}

func TestExtract_EmptyDocument(t *testing.T) {
	kws, tags := Extract(models.NormalizedDocument{}, 10)

	if len(kws) != 0 || len(tags) != 0 {
		t.Errorf("Expected empty sets for empty document, got %v / %v", kws, tags)
	}
}
