package services

import (
	"context"
	stderrors "errors"
	"fmt"
	"strings"

	qrcode "github.com/skip2/go-qrcode"

	"github.com/rangevault/rangevault/internal/errors"
	"github.com/rangevault/rangevault/internal/logger"
	"github.com/rangevault/rangevault/internal/models"
	"github.com/rangevault/rangevault/internal/rangeschema"
	"github.com/rangevault/rangevault/internal/repository"
)

// MaxNameLength caps range set display names.
const MaxNameLength = 255

// RangeService handles range set business logic: input validation,
// payload shape checks and ownership threading. The authenticated user id
// is an explicit argument on every call.
type RangeService struct {
	log     logger.Logger
	repo    repository.RangeSetRepository
	baseURL string
}

// NewRangeService creates a new RangeService. baseURL is used for the QR
// deep links.
func NewRangeService(log logger.Logger, repo repository.RangeSetRepository, baseURL string) *RangeService {
	return &RangeService{log: log, repo: repo, baseURL: strings.TrimRight(baseURL, "/")}
}

// RangeSetInput carries the fields for creating a range set
type RangeSetInput struct {
	Name          string
	Kind          string
	TableType     string
	Category      string
	StartingStack int
	Bounty        bool
	RangeData     map[string]any
}

// RangeSetUpdate carries the fields for updating a range set. RangeData
// replaces the stored payload whole; Name is applied only when non-empty.
type RangeSetUpdate struct {
	Name      string
	RangeData map[string]any
}

// Create validates the input and persists a new range set for the user
func (s *RangeService) Create(ctx context.Context, userID int64, input RangeSetInput) (*models.RangeSet, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	rs, err := s.repo.CreateRangeSet(ctx, userID, input.Name, input.Kind, input.TableType,
		input.Category, input.StartingStack, input.Bounty, input.RangeData)
	if err != nil {
		return nil, storeError(err)
	}

	s.log.Info("Range set created", "id", rs.ID, "user_id", userID, "kind", rs.Kind)
	return rs, nil
}

// Get returns one of the user's range sets
func (s *RangeService) Get(ctx context.Context, userID, id int64) (*models.RangeSet, error) {
	rs, err := s.repo.GetRangeSet(ctx, id, userID)
	if err != nil {
		return nil, storeError(err)
	}
	return rs, nil
}

// List returns the user's range sets, most recently updated first,
// optionally narrowed by a conjunctive filter
func (s *RangeService) List(ctx context.Context, userID int64, filter models.RangeSetFilter) ([]models.RangeSet, error) {
	if filter.TableType != nil && !rangeschema.ValidTableType(*filter.TableType) {
		return nil, errors.Validationf("unknown table type %q", *filter.TableType)
	}
	if filter.StartingStack != nil && *filter.StartingStack <= 0 {
		return nil, errors.Validation("starting stack filter must be positive")
	}

	sets, err := s.repo.ListRangeSets(ctx, userID, filter)
	if err != nil {
		return nil, storeError(err)
	}
	return sets, nil
}

// Update replaces a range set's payload and optionally renames it. The
// stored kind decides which payload shape the replacement must match.
func (s *RangeService) Update(ctx context.Context, userID, id int64, upd RangeSetUpdate) (*models.RangeSet, error) {
	if upd.Name != "" && len(upd.Name) > MaxNameLength {
		return nil, errors.Validationf("name must be at most %d characters", MaxNameLength)
	}
	if upd.RangeData == nil {
		return nil, errors.Validation("rangeData is required")
	}

	existing, err := s.repo.GetRangeSet(ctx, id, userID)
	if err != nil {
		return nil, storeError(err)
	}
	if !rangeschema.Validate(rangeschema.Kind(existing.Kind), upd.RangeData) {
		return nil, errors.Validationf("rangeData does not match the %s schema", existing.Kind)
	}

	rs, err := s.repo.UpdateRangeSet(ctx, id, userID, upd.Name, upd.RangeData)
	if err != nil {
		return nil, storeError(err)
	}

	s.log.Info("Range set updated", "id", id, "user_id", userID)
	return rs, nil
}

// Delete removes a range set. The returned bool reports whether a row was
// deleted; a foreign or missing id is false, never an error.
func (s *RangeService) Delete(ctx context.Context, userID, id int64) (bool, error) {
	deleted, err := s.repo.DeleteRangeSet(ctx, id, userID)
	if err != nil {
		return false, storeError(err)
	}
	if deleted {
		s.log.Info("Range set deleted", "id", id, "user_id", userID)
	}
	return deleted, nil
}

// QRImage renders a QR code PNG of the viewer deep link for one of the
// user's range sets, for pulling a chart up on another of the owner's
// devices. Ownership is checked the same way as Get.
func (s *RangeService) QRImage(ctx context.Context, userID, id int64) ([]byte, error) {
	rs, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/ranges/%d", s.baseURL, rs.ID)
	png, err := qrcode.Encode(url, qrcode.Medium, 256)
	if err != nil {
		return nil, errors.Internal(err)
	}
	return png, nil
}

// Skeleton returns the canonical empty payload for a kind, used to seed
// new charts client-side
func (s *RangeService) Skeleton(kind string) (map[string]any, error) {
	k := rangeschema.Kind(kind)
	if !rangeschema.ValidKind(k) {
		return nil, errors.Validationf("unknown range set kind %q", kind)
	}
	return rangeschema.Skeleton(k), nil
}

func validateInput(input RangeSetInput) error {
	if input.Name == "" {
		return errors.Validation("name is required")
	}
	if len(input.Name) > MaxNameLength {
		return errors.Validationf("name must be at most %d characters", MaxNameLength)
	}
	if !rangeschema.ValidKind(rangeschema.Kind(input.Kind)) {
		return errors.Validationf("unknown range set kind %q", input.Kind)
	}
	if !rangeschema.ValidTableType(input.TableType) {
		return errors.Validationf("unknown table type %q", input.TableType)
	}
	if input.Category == "" {
		return errors.Validation("category is required")
	}
	if input.StartingStack <= 0 {
		return errors.Validation("starting stack must be positive")
	}
	if input.RangeData == nil {
		return errors.Validation("rangeData is required")
	}
	if !rangeschema.Validate(rangeschema.Kind(input.Kind), input.RangeData) {
		return errors.Validationf("rangeData does not match the %s schema", input.Kind)
	}
	return nil
}

// storeError translates repository errors into the application taxonomy.
// Not-found keeps its deliberately merged meaning; anything else is a
// store failure surfaced for the caller to decide retry policy.
func storeError(err error) error {
	if stderrors.Is(err, repository.ErrNotFound) {
		return errors.NotFound("range set not found")
	}
	return errors.Unavailable(err)
}
