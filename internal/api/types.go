package api

import (
	"context"
	"time"

	"trendsight/internal/auth"
	"trendsight/internal/models"
)

// AuthService is the slice of the identity provider the handlers need.
// Quota checks run before the work; usage is recorded only once the work
// succeeded, so a rejected or failed submission never burns allowance.
type AuthService interface {
	SignUp(ctx context.Context, creds auth.Credentials) (auth.TokenGrant, error)
	Login(ctx context.Context, creds auth.Credentials) (auth.TokenGrant, error)
	Authenticate(token string) (models.Session, error)
	CheckQuota(ctx context.Context, session models.Session, kind string) error
	RecordUsage(ctx context.Context, session models.Session, kind string)
}

// SummarizeFunc produces the LLM trend digest for a document.
type SummarizeFunc func(ctx context.Context, doc models.NormalizedDocument) (models.TrendSummary, error)

// AnswerFunc answers a user question against a document.
type AnswerFunc func(ctx context.Context, doc models.NormalizedDocument, question string) (models.QuestionAnswer, error)

type CredentialsRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type TokenResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	Email     string    `json:"email"`
	Plan      string    `json:"plan"`
}

// AnalyzeRequest carries exactly one of URL or Text.
type AnalyzeRequest struct {
	URL  string `json:"url"`
	Text string `json:"text"`
}

type SummarizeRequest struct {
	URL  string `json:"url"`
	Text string `json:"text"`
}

// AskRequest carries a question plus exactly one of URL or Text.
type AskRequest struct {
	URL      string `json:"url"`
	Text     string `json:"text"`
	Question string `json:"question" binding:"required"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	Stage string `json:"stage,omitempty"`
}
