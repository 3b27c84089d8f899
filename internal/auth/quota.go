package auth

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"trendsight/internal/clients"
	"trendsight/internal/models"
)

// QuotaExceededError is returned when a plan's monthly allowance for one
// quota kind is used up.
type QuotaExceededError struct {
	Kind  string
	Limit int
}

func (e *QuotaExceededError) Error() string {
	return fmt.Sprintf("monthly %s quota of %d exhausted", e.Kind, e.Limit)
}

// QuotaStore enforces monthly allowances. Check runs before the work;
// Record charges one use only after the work succeeded, so a failed
// submission never burns allowance.
type QuotaStore interface {
	Check(ctx context.Context, session models.Session, kind string) error
	Record(ctx context.Context, session models.Session, kind string)
}

// ValkeyQuotaStore keeps the counters in Valkey under month-scoped keys, so
// allowances reset at each calendar month without any scheduled job.
type ValkeyQuotaStore struct {
	client *clients.ValkeyClient
}

func NewValkeyQuotaStore(client *clients.ValkeyClient) *ValkeyQuotaStore {
	return &ValkeyQuotaStore{client: client}
}

func (q *ValkeyQuotaStore) Check(ctx context.Context, session models.Session, kind string) error {
	limit := limitFor(session.Plan, kind)
	if limit <= 0 {
		return nil // unlimited plan
	}

	count, err := q.client.GetUsage(ctx, session.UserID, kind, currentMonth())
	if err != nil {
		// Quota accounting must not take the analysis feature down with it.
		slog.Warn("[QuotaStore] Failed to read usage, allowing request",
			slog.String("kind", kind),
			slog.String("error", err.Error()))
		return nil
	}

	if count >= int64(limit) {
		return &QuotaExceededError{Kind: kind, Limit: limit}
	}

	return nil
}

func (q *ValkeyQuotaStore) Record(ctx context.Context, session models.Session, kind string) {
	if limitFor(session.Plan, kind) <= 0 {
		return
	}

	if _, err := q.client.IncrUsage(ctx, session.UserID, kind, currentMonth()); err != nil {
		slog.Warn("[QuotaStore] Failed to record usage",
			slog.String("kind", kind),
			slog.String("error", err.Error()))
	}
}

func currentMonth() string {
	return time.Now().UTC().Format("2006-01")
}

func limitFor(plan, kind string) int {
	limits := models.LimitsForPlan(plan)
	switch kind {
	case models.QuotaAnalysis:
		return limits.Analyses
	case models.QuotaSummary:
		return limits.Summaries
	case models.QuotaQuestion:
		return limits.Questions
	default:
		return 0
	}
}
