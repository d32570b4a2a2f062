package mock

import (
	"context"

	"github.com/rangevault/rangevault/internal/models"
	"github.com/rangevault/rangevault/internal/repository"
)

// Repository wraps a real repository and allows injecting errors for testing.
// This provides a flexible way to test error paths without complex database
// manipulation.
//
// Usage:
//
//	realRepo := testutil.NewTestRepository(t)
//	mockRepo := mock.NewRepository(realRepo)
//	mockRepo.CreateRangeSetError = errors.New("database error")
//	svc := services.NewRangeService(log, mockRepo)
type Repository struct {
	repository.FullRepository

	CreateUserError     error
	GetUserError        error
	GetUserByEmailError error
	DeleteUserError     error

	CreateRangeSetError error
	GetRangeSetError    error
	ListRangeSetsError  error
	UpdateRangeSetError error
	DeleteRangeSetError error
}

// NewRepository creates a mock wrapping the given repository
func NewRepository(real repository.FullRepository) *Repository {
	return &Repository{FullRepository: real}
}

func (m *Repository) CreateUser(ctx context.Context, email, passwordHash string) (int64, error) {
	if m.CreateUserError != nil {
		return 0, m.CreateUserError
	}
	return m.FullRepository.CreateUser(ctx, email, passwordHash)
}

func (m *Repository) GetUser(ctx context.Context, id int64) (*models.User, error) {
	if m.GetUserError != nil {
		return nil, m.GetUserError
	}
	return m.FullRepository.GetUser(ctx, id)
}

func (m *Repository) GetUserByEmail(ctx context.Context, email string) (int64, string, error) {
	if m.GetUserByEmailError != nil {
		return 0, "", m.GetUserByEmailError
	}
	return m.FullRepository.GetUserByEmail(ctx, email)
}

func (m *Repository) DeleteUser(ctx context.Context, id int64) error {
	if m.DeleteUserError != nil {
		return m.DeleteUserError
	}
	return m.FullRepository.DeleteUser(ctx, id)
}

func (m *Repository) CreateRangeSet(ctx context.Context, userID int64, name, kind, tableType, category string, startingStack int, bounty bool, rangeData map[string]any) (*models.RangeSet, error) {
	if m.CreateRangeSetError != nil {
		return nil, m.CreateRangeSetError
	}
	return m.FullRepository.CreateRangeSet(ctx, userID, name, kind, tableType, category, startingStack, bounty, rangeData)
}

func (m *Repository) GetRangeSet(ctx context.Context, id, userID int64) (*models.RangeSet, error) {
	if m.GetRangeSetError != nil {
		return nil, m.GetRangeSetError
	}
	return m.FullRepository.GetRangeSet(ctx, id, userID)
}

func (m *Repository) ListRangeSets(ctx context.Context, userID int64, filter models.RangeSetFilter) ([]models.RangeSet, error) {
	if m.ListRangeSetsError != nil {
		return nil, m.ListRangeSetsError
	}
	return m.FullRepository.ListRangeSets(ctx, userID, filter)
}

func (m *Repository) UpdateRangeSet(ctx context.Context, id, userID int64, name string, rangeData map[string]any) (*models.RangeSet, error) {
	if m.UpdateRangeSetError != nil {
		return nil, m.UpdateRangeSetError
	}
	return m.FullRepository.UpdateRangeSet(ctx, id, userID, name, rangeData)
}

func (m *Repository) DeleteRangeSet(ctx context.Context, id, userID int64) (bool, error) {
	if m.DeleteRangeSetError != nil {
		return false, m.DeleteRangeSetError
	}
	return m.FullRepository.DeleteRangeSet(ctx, id, userID)
}
