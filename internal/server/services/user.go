package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/taskkeeper/internal/common"
	"github.com/dmitrijs2005/taskkeeper/internal/server/auth"
	"github.com/dmitrijs2005/taskkeeper/internal/server/config"
	"github.com/dmitrijs2005/taskkeeper/internal/server/models"
	"github.com/dmitrijs2005/taskkeeper/internal/server/repositories/repomanager"
)

// UserService handles registration and lookup of accounts.
type UserService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	bcryptCost  int
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:          db,
		repomanager: m,
		bcryptCost:  cfg.BcryptCost,
	}
}

// CreateUser hashes the password and persists a new account. A taken email
// yields common.ErrDuplicateEmail.
func (s *UserService) CreateUser(ctx context.Context, name string, email string, password string) (*models.User, error) {
	digest, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, common.ErrorInternal
	}

	user := &models.User{Name: name, Email: email, Password: digest}
	repo := s.repomanager.Users(s.db)
	u, err := repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrDuplicateEmail) {
			return nil, common.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}
	return u, nil
}

// GetUserByEmail returns the account for email, or (nil, nil) if absent.
func (s *UserService) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	repo := s.repomanager.Users(s.db)
	user, err := repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, nil
		}
		return nil, common.ErrorInternal
	}
	return user, nil
}
