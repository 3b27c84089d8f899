package summarizer

import (
	"context"
	"strings"
	"testing"

	"trendsight/internal/models"
)

func TestMarkdownToText_StripsFormatting(t *testing.T) {
	input := "# Trends\n\n- **Acme** is gaining ground\n- *Globex* is slipping"

	got := markdownToText(input)

	if strings.ContainsAny(got, "#*") {
		t.Errorf("Expected markdown syntax to be stripped, got %q", got)
	}

	if !strings.Contains(got, "Acme is gaining ground") {
		t.Errorf("Expected text content to survive, got %q", got)
	}
}

func TestAnswerQuestion_RejectsEmptyQuestion(t *testing.T) {
	doc := models.NormalizedDocument{Text: "Acme shipments doubled."}

	for _, question := range []string{"", "   ", "\n\t"} {
		if _, err := AnswerQuestion(context.Background(), doc, question); err == nil {
			t.Errorf("Expected error for blank question %q", question)
		}
	}
}

func TestAnswerQuestion_RejectsEmptyDocument(t *testing.T) {
	_, err := AnswerQuestion(context.Background(), models.NormalizedDocument{}, "Is Acme growing?")
	if err == nil {
		t.Errorf("Expected error when there is no content to answer against")
	}
}

func TestMarkdownToText_CollapsesWhitespace(t *testing.T) {
	got := markdownToText("line one\n\n\n\nline    two")

	if strings.Contains(got, "  ") || strings.Contains(got, "\n") {
		t.Errorf("Expected single-spaced plain text, got %q", got)
	}
}
