package models

import "time"

const (
	PlanFree    = "free"
	PlanPremium = "premium"
)

const (
	QuotaAnalysis = "analysis"
	QuotaSummary  = "summary"
	QuotaQuestion = "question"
)

type User struct {
	ID           string    `json:"id" dynamodbav:"id"`
	Email        string    `json:"email" dynamodbav:"email"`
	PasswordHash string    `json:"-" dynamodbav:"password_hash"`
	Plan         string    `json:"plan" dynamodbav:"plan"`
	CreatedAt    time.Time `json:"created_at" dynamodbav:"created_at"`
}

// Session is the authenticated context passed into the pipeline entry
// point; it is derived from a validated token, never from global state.
type Session struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Plan   string `json:"plan"`
}

// QuotaLimits holds per-month allowances; zero means unlimited.
type QuotaLimits struct {
	Analyses  int `json:"analyses"`
	Summaries int `json:"summaries"`
	Questions int `json:"questions"`
}

func LimitsForPlan(plan string) QuotaLimits {
	switch plan {
	case PlanPremium:
		return QuotaLimits{}
	default:
		return QuotaLimits{Analyses: 5, Summaries: 10, Questions: 20}
	}
}
