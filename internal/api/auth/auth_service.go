package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/FACorreiaa/go-bookmark-api/app/observability/metrics"
	"github.com/FACorreiaa/go-bookmark-api/internal/types"
)

var _ AuthService = (*AuthServiceImpl)(nil)

type AuthService interface {
	// SignUp creates the account and returns an access token for it.
	SignUp(ctx context.Context, req types.SignUpRequest) (string, error)
	// SignIn returns types.ErrInvalidCredentials for an unknown email and for a wrong password alike.
	SignIn(ctx context.Context, req types.SignInRequest) (string, error)
}

type AuthServiceImpl struct {
	logger *slog.Logger
	repo   AuthRepo
	hasher PasswordHasher
	tokens TokenIssuer

	dummyOnce sync.Once
	dummyHash string
}

func NewAuthService(repo AuthRepo, hasher PasswordHasher, tokens TokenIssuer, logger *slog.Logger) *AuthServiceImpl {
	return &AuthServiceImpl{
		logger: logger,
		repo:   repo,
		hasher: hasher,
		tokens: tokens,
	}
}

func (s *AuthServiceImpl) SignUp(ctx context.Context, req types.SignUpRequest) (string, error) {
	ctx, span := otel.Tracer("AuthService").Start(ctx, "SignUp")
	defer span.End()

	l := s.logger.With(slog.String("method", "SignUp"))
	l.DebugContext(ctx, "Signing up user", slog.String("email", req.Email))

	token, outcome, err := s.signUp(ctx, req)
	metrics.CountOutcome(ctx, metrics.Get().SignupTotal, "outcome", outcome)
	if err != nil {
		endSpan(span, err)
		if !errors.Is(err, types.ErrDuplicateEmail) {
			l.ErrorContext(ctx, "Signup failed", slog.Any("error", err))
		}
		return "", err
	}

	span.SetStatus(codes.Ok, "User signed up")
	return token, nil
}

func (s *AuthServiceImpl) signUp(ctx context.Context, req types.SignUpRequest) (string, string, error) {
	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return "", "error", fmt.Errorf("hashing password: %w", err)
	}

	user, err := s.repo.CreateUser(ctx, types.NewUser{
		Email:        req.Email,
		PasswordHash: hash,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
	})
	if err != nil {
		if errors.Is(err, types.ErrDuplicateEmail) {
			return "", "duplicate_email", types.ErrDuplicateEmail
		}
		return "", "error", err
	}

	token, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return "", "error", fmt.Errorf("issuing token: %w", err)
	}
	return token, "success", nil
}

func (s *AuthServiceImpl) SignIn(ctx context.Context, req types.SignInRequest) (string, error) {
	ctx, span := otel.Tracer("AuthService").Start(ctx, "SignIn")
	defer span.End()

	l := s.logger.With(slog.String("method", "SignIn"))

	token, outcome, err := s.signIn(ctx, req)
	metrics.CountOutcome(ctx, metrics.Get().SigninTotal, "outcome", outcome)
	if err != nil {
		endSpan(span, err)
		if errors.Is(err, types.ErrInvalidCredentials) {
			l.DebugContext(ctx, "Rejected credentials", slog.String("email", req.Email))
		} else {
			l.ErrorContext(ctx, "Signin failed", slog.Any("error", err))
		}
		return "", err
	}

	span.SetStatus(codes.Ok, "User signed in")
	return token, nil
}

func (s *AuthServiceImpl) signIn(ctx context.Context, req types.SignInRequest) (string, string, error) {
	user, err := s.repo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, types.ErrNotFound) {
			// Spend the same hashing work as for a known email.
			s.verifyDummy(req.Password)
			return "", "invalid_credentials", types.ErrInvalidCredentials
		}
		return "", "error", err
	}

	ok, err := s.hasher.Verify(user.PasswordHash, req.Password)
	if err != nil {
		return "", "error", fmt.Errorf("verifying password for user %d: %w", user.ID, err)
	}
	if !ok {
		return "", "invalid_credentials", types.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return "", "error", fmt.Errorf("issuing token: %w", err)
	}
	return token, "success", nil
}

func (s *AuthServiceImpl) verifyDummy(password string) {
	s.dummyOnce.Do(func() {
		hash, err := s.hasher.Hash("dummy-password-never-matches")
		if err != nil {
			s.logger.Error("Failed to prepare dummy hash", slog.Any("error", err))
			return
		}
		s.dummyHash = hash
	})
	if s.dummyHash != "" {
		_, _ = s.hasher.Verify(s.dummyHash, password)
	}
}

func endSpan(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
