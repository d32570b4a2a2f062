package services

import (
	"github.com/rangevault/rangevault/internal/engine"
	"github.com/rangevault/rangevault/internal/errors"
	"github.com/rangevault/rangevault/internal/logger"
)

// ReviewService fronts the betting-action engine for hand review. The
// engine itself is pure; this layer only translates its errors into the
// application taxonomy and logs decision points.
type ReviewService struct {
	log logger.Logger
}

// NewReviewService creates a new ReviewService
func NewReviewService(log logger.Logger) *ReviewService {
	return &ReviewService{log: log}
}

// AvailableActions returns the ordered legal actions for a betting level
func (s *ReviewService) AvailableActions(level int) []engine.ActionKind {
	return engine.AvailableActions(level)
}

// Resolve applies an action to a betting state and returns the new state
// together with the actions available from it
func (s *ReviewService) Resolve(kind engine.ActionKind, amount int, state engine.State) (engine.State, []engine.ActionKind, error) {
	next, err := engine.Resolve(kind, amount, state)
	if err != nil {
		return engine.State{}, nil, errors.Wrap(err, errors.ErrValidation, "illegal action")
	}
	s.log.Debug("Action resolved", "action", kind, "level", next.Level, "pot", next.Pot)
	return next, engine.AvailableActions(next.Level), nil
}
