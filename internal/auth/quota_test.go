package auth

import (
	"testing"

	"trendsight/internal/models"
)

func TestLimitFor_FreePlan(t *testing.T) {
	if got := limitFor(models.PlanFree, models.QuotaAnalysis); got != 5 {
		t.Errorf("Expected 5 analyses on the free plan, got %d", got)
	}

	if got := limitFor(models.PlanFree, models.QuotaSummary); got != 10 {
		t.Errorf("Expected 10 summaries on the free plan, got %d", got)
	}

	if got := limitFor(models.PlanFree, models.QuotaQuestion); got != 20 {
		t.Errorf("Expected 20 questions on the free plan, got %d", got)
	}
}

func TestLimitFor_PremiumUnlimited(t *testing.T) {
	if got := limitFor(models.PlanPremium, models.QuotaAnalysis); got != 0 {
		t.Errorf("Expected unlimited analyses on premium, got %d", got)
	}
}

func TestQuotaExceededError_NamesTheQuota(t *testing.T) {
	err := &QuotaExceededError{Kind: models.QuotaAnalysis, Limit: 5}

	expected := `monthly analysis quota of 5 exhausted`
	if err.Error() != expected {
		t.Errorf("Expected %q, got %q", expected, err.Error())
	}
}
