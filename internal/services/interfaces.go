package services

import (
	"context"

	"github.com/rangevault/rangevault/internal/engine"
	"github.com/rangevault/rangevault/internal/models"
)

// RangeServicer defines the range set operations used by handlers
type RangeServicer interface {
	Create(ctx context.Context, userID int64, input RangeSetInput) (*models.RangeSet, error)
	Get(ctx context.Context, userID, id int64) (*models.RangeSet, error)
	List(ctx context.Context, userID int64, filter models.RangeSetFilter) ([]models.RangeSet, error)
	Update(ctx context.Context, userID, id int64, upd RangeSetUpdate) (*models.RangeSet, error)
	Delete(ctx context.Context, userID, id int64) (bool, error)
	QRImage(ctx context.Context, userID, id int64) ([]byte, error)
	Skeleton(kind string) (map[string]any, error)
}

// UserServicer defines the account operations used by handlers
type UserServicer interface {
	Register(ctx context.Context, email, password string) (*models.User, error)
	Authenticate(ctx context.Context, email, password string) (int64, error)
	Delete(ctx context.Context, userID int64) error
}

// ReviewServicer defines the betting review operations used by handlers
type ReviewServicer interface {
	AvailableActions(level int) []engine.ActionKind
	Resolve(kind engine.ActionKind, amount int, state engine.State) (engine.State, []engine.ActionKind, error)
}

// Ensure services implement their interfaces
var (
	_ RangeServicer  = (*RangeService)(nil)
	_ UserServicer   = (*UserService)(nil)
	_ ReviewServicer = (*ReviewService)(nil)
)
