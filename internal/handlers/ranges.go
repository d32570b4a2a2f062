package handlers

import (
	"net/http"
	"strconv"

	"github.com/rangevault/rangevault/internal/auth"
	"github.com/rangevault/rangevault/internal/models"
	"github.com/rangevault/rangevault/internal/services"
)

// requireUser pulls the authenticated user id out of the request context.
// The auth middleware guarantees it for protected routes.
func requireUser(w http.ResponseWriter, r *http.Request) (int64, bool) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		respondError(w, Unauthorized("Unauthorized"))
		return 0, false
	}
	return userID, true
}

// handleListRanges returns the user's range sets, optionally filtered by
// table_type, category, starting_stack and bounty query parameters.
// Supplied filters combine with AND.
func (h *Handlers) handleListRanges(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	filter, err := filterFromQuery(r)
	if err != nil {
		respondError(w, err)
		return
	}

	sets, err := h.Ranges.List(r.Context(), userID, filter)
	if err != nil {
		respondError(w, err)
		return
	}
	if sets == nil {
		sets = []models.RangeSet{}
	}
	respondOK(w, RangeSetListResponse{RangeSets: sets})
}

// handleCreateRange creates a new range set for the user
func (h *Handlers) handleCreateRange(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req RangeSetCreateRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	rs, err := h.Ranges.Create(r.Context(), userID, services.RangeSetInput{
		Name:          req.Name,
		Kind:          req.Kind,
		TableType:     req.TableType,
		Category:      req.Category,
		StartingStack: req.StartingStack,
		Bounty:        req.Bounty,
		RangeData:     req.RangeData,
	})
	if err != nil {
		respondError(w, err)
		return
	}
	respondCreated(w, rs)
}

// handleGetRange returns one of the user's range sets
func (h *Handlers) handleGetRange(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	id, err := parseIDParam(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}

	rs, err := h.Ranges.Get(r.Context(), userID, id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, rs)
}

// handleUpdateRange replaces a range set's payload and optionally renames it
func (h *Handlers) handleUpdateRange(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	id, err := parseIDParam(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}

	var req RangeSetUpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	rs, err := h.Ranges.Update(r.Context(), userID, id, services.RangeSetUpdate{
		Name:      req.Name,
		RangeData: req.RangeData,
	})
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, rs)
}

// handleDeleteRange deletes a range set. A missing or foreign id is a
// plain 404; the API never says "forbidden" for someone else's row.
func (h *Handlers) handleDeleteRange(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	id, err := parseIDParam(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}

	deleted, err := h.Ranges.Delete(r.Context(), userID, id)
	if err != nil {
		respondError(w, err)
		return
	}
	if !deleted {
		respondError(w, NotFound("Range set not found"))
		return
	}
	respondDeleted(w)
}

// handleRangeQR returns a QR code PNG linking to the range set viewer
func (h *Handlers) handleRangeQR(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	id, err := parseIDParam(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}

	png, err := h.Ranges.QRImage(r.Context(), userID, id)
	if err != nil {
		respondError(w, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-cache")
	w.Write(png)
}

// handleGetSkeleton returns the canonical empty payload for a kind
func (h *Handlers) handleGetSkeleton(w http.ResponseWriter, r *http.Request) {
	kind := r.URL.Query().Get("kind")
	if kind == "" {
		kind = "hero"
	}

	data, err := h.Ranges.Skeleton(kind)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, SkeletonResponse{Kind: kind, RangeData: data})
}

// filterFromQuery assembles a RangeSetFilter from query parameters
func filterFromQuery(r *http.Request) (models.RangeSetFilter, error) {
	var filter models.RangeSetFilter
	q := r.URL.Query()

	if v := q.Get("table_type"); v != "" {
		filter.TableType = &v
	}
	if v := q.Get("category"); v != "" {
		filter.Category = &v
	}
	if v := q.Get("starting_stack"); v != "" {
		stack, err := strconv.Atoi(v)
		if err != nil {
			return filter, BadRequest("Invalid starting_stack parameter")
		}
		filter.StartingStack = &stack
	}
	if v := q.Get("bounty"); v != "" {
		bounty, err := strconv.ParseBool(v)
		if err != nil {
			return filter, BadRequest("Invalid bounty parameter")
		}
		filter.Bounty = &bounty
	}
	return filter, nil
}
