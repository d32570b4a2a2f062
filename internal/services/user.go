package services

import (
	"context"
	stderrors "errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/rangevault/rangevault/internal/errors"
	"github.com/rangevault/rangevault/internal/logger"
	"github.com/rangevault/rangevault/internal/models"
	"github.com/rangevault/rangevault/internal/repository"
)

// MinPasswordLength is the minimum accepted password length.
const MinPasswordLength = 8

// UserService handles account registration and credential checks. Token
// issuance lives in the auth package; this service only proves who the
// caller is and hands back an id.
type UserService struct {
	log  logger.Logger
	repo repository.UserRepository
}

// NewUserService creates a new UserService
func NewUserService(log logger.Logger, repo repository.UserRepository) *UserService {
	return &UserService{log: log, repo: repo}
}

// Register creates a new account with a bcrypt-hashed password
func (s *UserService) Register(ctx context.Context, email, password string) (*models.User, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, errors.Validation("a valid email is required")
	}
	if len(password) < MinPasswordLength {
		return nil, errors.Validationf("password must be at least %d characters", MinPasswordLength)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.Internal(err)
	}

	id, err := s.repo.CreateUser(ctx, email, string(hash))
	if err != nil {
		if stderrors.Is(err, repository.ErrEmailTaken) {
			return nil, errors.Validation("email already registered")
		}
		return nil, errors.Unavailable(err)
	}

	s.log.Info("User registered", "user_id", id)
	u, err := s.repo.GetUser(ctx, id)
	if err != nil {
		return nil, errors.Unavailable(err)
	}
	return u, nil
}

// Authenticate checks credentials and returns the user id. Wrong email
// and wrong password are reported identically.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (int64, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	id, hash, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if stderrors.Is(err, repository.ErrNotFound) {
			return 0, errors.Unauthorized("invalid email or password")
		}
		return 0, errors.Unavailable(err)
	}

	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) != nil {
		return 0, errors.Unauthorized("invalid email or password")
	}
	return id, nil
}

// Delete removes an account; owned range sets are cascaded by the store
func (s *UserService) Delete(ctx context.Context, userID int64) error {
	if err := s.repo.DeleteUser(ctx, userID); err != nil {
		return errors.Unavailable(err)
	}
	s.log.Info("User deleted", "user_id", userID)
	return nil
}
