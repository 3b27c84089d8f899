package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"trendsight/internal/db"
	"trendsight/internal/models"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("an account with this email already exists")
)

// Service is the identity provider in front of the pipeline: email/password
// accounts, signed session tokens, and per-plan usage quotas.
type Service struct {
	jwtManager *JWTManager
	quotas     QuotaStore
}

func NewService(jwtManager *JWTManager, quotas QuotaStore) *Service {
	return &Service{
		jwtManager: jwtManager,
		quotas:     quotas,
	}
}

type Credentials struct {
	Email    string
	Password string
}

type TokenGrant struct {
	Token     string
	ExpiresAt time.Time
	User      models.User
}

func (s *Service) SignUp(ctx context.Context, creds Credentials) (TokenGrant, error) {
	email := strings.ToLower(strings.TrimSpace(creds.Email))
	if email == "" || !strings.Contains(email, "@") {
		return TokenGrant{}, fmt.Errorf("%w: malformed email", ErrInvalidCredentials)
	}
	if len(creds.Password) < 6 {
		return TokenGrant{}, fmt.Errorf("%w: password too short", ErrInvalidCredentials)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(creds.Password), bcrypt.DefaultCost)
	if err != nil {
		return TokenGrant{}, fmt.Errorf("[AuthService] Failed to hash password: %w", err)
	}

	user := models.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
		Plan:         models.PlanFree,
		CreatedAt:    time.Now().UTC(),
	}

	if err := db.CreateUser(ctx, user); err != nil {
		if errors.Is(err, db.ErrUserExists) {
			return TokenGrant{}, ErrEmailTaken
		}
		return TokenGrant{}, err
	}

	slog.Info("[AuthService] Account created", slog.String("email", email))
	return s.grant(user)
}

func (s *Service) Login(ctx context.Context, creds Credentials) (TokenGrant, error) {
	user, err := db.GetUserByEmail(ctx, creds.Email)
	if err != nil {
		if errors.Is(err, db.ErrUserNotFound) {
			return TokenGrant{}, ErrInvalidCredentials
		}
		return TokenGrant{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(creds.Password)); err != nil {
		return TokenGrant{}, ErrInvalidCredentials
	}

	slog.Info("[AuthService] Login", slog.String("email", user.Email))
	return s.grant(user)
}

// Authenticate turns a bearer token into the session passed to the
// pipeline entry point.
func (s *Service) Authenticate(token string) (models.Session, error) {
	return s.jwtManager.ValidateToken(token)
}

// CheckQuota verifies the session's plan still has allowance for a quota
// kind. It charges nothing; callers record usage after the work succeeds.
func (s *Service) CheckQuota(ctx context.Context, session models.Session, kind string) error {
	return s.quotas.Check(ctx, session, kind)
}

// RecordUsage charges one successful use of a quota kind.
func (s *Service) RecordUsage(ctx context.Context, session models.Session, kind string) {
	s.quotas.Record(ctx, session, kind)
}

func (s *Service) grant(user models.User) (TokenGrant, error) {
	token, expiresAt, err := s.jwtManager.GenerateToken(user)
	if err != nil {
		return TokenGrant{}, fmt.Errorf("[AuthService] Failed to sign token: %w", err)
	}

	return TokenGrant{Token: token, ExpiresAt: expiresAt, User: user}, nil
}
