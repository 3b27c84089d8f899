package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"trendsight/internal/analysis"
	"trendsight/internal/auth"
	"trendsight/internal/content"
	"trendsight/internal/models"
)

type Handler struct {
	authService AuthService
	pipeline    *analysis.Pipeline
	loader      *content.Loader
	summarize   SummarizeFunc
	answer      AnswerFunc
}

func NewHandler(authService AuthService, pipeline *analysis.Pipeline, loader *content.Loader, summarize SummarizeFunc, answer AnswerFunc) *Handler {
	return &Handler{
		authService: authService,
		pipeline:    pipeline,
		loader:      loader,
		summarize:   summarize,
		answer:      answer,
	}
}

func (h *Handler) SignUp(c *gin.Context) {
	var req CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "email and password are required"})
		return
	}

	grant, err := h.authService.SignUp(c.Request.Context(), auth.Credentials{Email: req.Email, Password: req.Password})
	if err != nil {
		if errors.Is(err, auth.ErrEmailTaken) {
			c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
			return
		}
		if errors.Is(err, auth.ErrInvalidCredentials) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		slog.Error("[API] Signup failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "account creation failed"})
		return
	}

	c.JSON(http.StatusCreated, tokenResponse(grant))
}

func (h *Handler) Login(c *gin.Context) {
	var req CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "email and password are required"})
		return
	}

	grant, err := h.authService.Login(c.Request.Context(), auth.Credentials{Email: req.Email, Password: req.Password})
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "invalid email or password"})
			return
		}
		slog.Error("[API] Login failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "login failed"})
		return
	}

	c.JSON(http.StatusOK, tokenResponse(grant))
}

func (h *Handler) Me(c *gin.Context) {
	session := sessionFromContext(c)
	c.JSON(http.StatusOK, session)
}

func (h *Handler) Analyze(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body", Stage: "input"})
		return
	}

	session := sessionFromContext(c)

	if err := h.authService.CheckQuota(c.Request.Context(), session, models.QuotaAnalysis); err != nil {
		h.renderError(c, err)
		return
	}

	report, err := h.pipeline.Run(c.Request.Context(), session, models.RawInput{URL: req.URL, Text: req.Text})
	if err != nil {
		h.renderError(c, err)
		return
	}

	h.authService.RecordUsage(c.Request.Context(), session, models.QuotaAnalysis)
	c.JSON(http.StatusOK, report)
}

func (h *Handler) Summarize(c *gin.Context) {
	var req SummarizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body", Stage: "input"})
		return
	}

	session := sessionFromContext(c)

	if err := h.authService.CheckQuota(c.Request.Context(), session, models.QuotaSummary); err != nil {
		h.renderError(c, err)
		return
	}

	doc, err := h.loader.Load(c.Request.Context(), models.RawInput{URL: req.URL, Text: req.Text})
	if err != nil {
		h.renderError(c, err)
		return
	}

	summary, err := h.summarize(c.Request.Context(), doc)
	if err != nil {
		slog.Error("[API] Summary failed", slog.String("error", err.Error()))
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: "trend summary failed", Stage: "summarize"})
		return
	}

	h.authService.RecordUsage(c.Request.Context(), session, models.QuotaSummary)
	c.JSON(http.StatusOK, summary)
}

func (h *Handler) Ask(c *gin.Context) {
	var req AskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "a question is required", Stage: "input"})
		return
	}

	session := sessionFromContext(c)

	if err := h.authService.CheckQuota(c.Request.Context(), session, models.QuotaQuestion); err != nil {
		h.renderError(c, err)
		return
	}

	doc, err := h.loader.Load(c.Request.Context(), models.RawInput{URL: req.URL, Text: req.Text})
	if err != nil {
		h.renderError(c, err)
		return
	}

	answer, err := h.answer(c.Request.Context(), doc, req.Question)
	if err != nil {
		slog.Error("[API] Question failed", slog.String("error", err.Error()))
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: "question answering failed", Stage: "question"})
		return
	}

	h.authService.RecordUsage(c.Request.Context(), session, models.QuotaQuestion)
	c.JSON(http.StatusOK, answer)
}

func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// renderError maps pipeline and quota errors to status codes, always naming
// the stage that failed so the user knows what to retry.
func (h *Handler) renderError(c *gin.Context, err error) {
	var (
		invalidInput  *content.InvalidInputError
		fetchErr      *content.FetchError
		analysisErr   *analysis.AnalysisError
		quotaExceeded *auth.QuotaExceededError
	)

	switch {
	case errors.As(err, &quotaExceeded):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: quotaExceeded.Error(), Stage: "quota"})
	case errors.As(err, &invalidInput):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: invalidInput.Error(), Stage: "input"})
	case errors.As(err, &fetchErr):
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: fetchErr.Error(), Stage: "fetch"})
	case errors.As(err, &analysisErr):
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: analysisErr.Error(), Stage: analysisErr.Stage})
	default:
		slog.Error("[API] Unexpected error", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}

func tokenResponse(grant auth.TokenGrant) TokenResponse {
	return TokenResponse{
		Token:     grant.Token,
		ExpiresAt: grant.ExpiresAt,
		Email:     grant.User.Email,
		Plan:      grant.User.Plan,
	}
}
