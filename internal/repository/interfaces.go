package repository

import (
	"context"

	"github.com/rangevault/rangevault/internal/models"
)

// UserRepository defines account data operations
type UserRepository interface {
	CreateUser(ctx context.Context, email, passwordHash string) (int64, error)
	GetUser(ctx context.Context, id int64) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (id int64, passwordHash string, err error)
	DeleteUser(ctx context.Context, id int64) error
}

// RangeSetRepository defines ownership-scoped range set operations.
// Every method takes the authenticated user id explicitly; there is no
// default or fallback user anywhere in this layer.
type RangeSetRepository interface {
	CreateRangeSet(ctx context.Context, userID int64, name, kind, tableType, category string, startingStack int, bounty bool, rangeData map[string]any) (*models.RangeSet, error)
	GetRangeSet(ctx context.Context, id, userID int64) (*models.RangeSet, error)
	ListRangeSets(ctx context.Context, userID int64, filter models.RangeSetFilter) ([]models.RangeSet, error)
	UpdateRangeSet(ctx context.Context, id, userID int64, name string, rangeData map[string]any) (*models.RangeSet, error)
	DeleteRangeSet(ctx context.Context, id, userID int64) (bool, error)
}

// FullRepository combines all repository interfaces
type FullRepository interface {
	UserRepository
	RangeSetRepository
}

// Ensure Repository implements all interfaces
var _ FullRepository = (*Repository)(nil)
