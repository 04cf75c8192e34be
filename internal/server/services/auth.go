// Package services contains server-side business logic: credential
// validation and token issuance, user registration, and task CRUD.
package services

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/dmitrijs2005/taskkeeper/internal/common"
	"github.com/dmitrijs2005/taskkeeper/internal/server/auth"
	"github.com/dmitrijs2005/taskkeeper/internal/server/config"
	"github.com/dmitrijs2005/taskkeeper/internal/server/models"
	"github.com/dmitrijs2005/taskkeeper/internal/server/repositories/repomanager"
)

// SignInResult pairs a freshly issued access token with the signed-in user.
type SignInResult struct {
	AccessToken string
	User        *models.User
}

// AuthService verifies credentials and mints access tokens. It is the only
// component with real decision logic; everything else passes through to a
// store.
type AuthService struct {
	db                          *sql.DB
	repomanager                 repomanager.RepositoryManager
	jwtSecret                   []byte
	accessTokenValidityDuration time.Duration
}

// NewAuthService constructs an AuthService using repositories and server config.
func NewAuthService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *AuthService {
	return &AuthService{
		db:                          db,
		repomanager:                 m,
		jwtSecret:                   []byte(cfg.SecretKey),
		accessTokenValidityDuration: cfg.AccessTokenValidityDuration,
	}
}

// ValidateCredentials looks the user up by email and verifies the password.
// An unknown email and a wrong password both return (nil, nil): callers
// cannot tell which one failed, so the API does not leak account existence.
func (s *AuthService) ValidateCredentials(ctx context.Context, email string, password string) (*models.User, error) {
	repo := s.repomanager.Users(s.db)
	user, err := repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, nil
		}
		return nil, common.ErrorInternal
	}
	if !auth.CheckPassword(password, user.Password) {
		return nil, nil
	}
	return user, nil
}

// SignIn issues an access token for an already-authenticated user. It never
// re-verifies credentials; the caller is responsible for having done so.
func (s *AuthService) SignIn(user *models.User) (*SignInResult, error) {
	token, err := auth.IssueToken(user.ID, user.Email, s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		return nil, common.ErrorInternal
	}
	return &SignInResult{AccessToken: token, User: user}, nil
}

// VerifyToken validates a bearer token and resolves the user it names.
// Expired and malformed tokens keep their distinct errors; a token whose
// user no longer exists yields ErrUnauthenticated rather than a stale
// identity.
func (s *AuthService) VerifyToken(ctx context.Context, tokenString string) (*models.User, error) {
	claims, err := auth.ParseToken(tokenString, s.jwtSecret)
	if err != nil {
		return nil, err
	}

	userID, err := claims.UserID()
	if err != nil {
		return nil, common.ErrInvalidToken
	}

	repo := s.repomanager.Users(s.db)
	user, err := repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrUnauthenticated
		}
		return nil, common.ErrorInternal
	}
	return user, nil
}
