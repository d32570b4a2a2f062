package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rangevault/rangevault/internal/auth"
	"github.com/rangevault/rangevault/internal/engine"
	"github.com/rangevault/rangevault/internal/handlers"
	"github.com/rangevault/rangevault/internal/logger"
	"github.com/rangevault/rangevault/internal/models"
	"github.com/rangevault/rangevault/internal/rangeschema"
	"github.com/rangevault/rangevault/internal/review"
	"github.com/rangevault/rangevault/internal/services"
	"github.com/rangevault/rangevault/internal/testutil"
)

func newTestHandlers(t *testing.T) *handlers.Handlers {
	t.Helper()

	repo := testutil.NewTestRepository(t)
	log := logger.New()
	rangeService := services.NewRangeService(log, repo, "http://example.com")
	userService := services.NewUserService(log, repo)
	reviewService := services.NewReviewService(log)
	tokenAuth := auth.New("test-secret")
	session := review.NewSessionHandler(log, reviewService)

	return handlers.New(rangeService, userService, reviewService, tokenAuth, session, handlers.NoopHTTPLogger{})
}

func doJSON(t *testing.T, router http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("failed to encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("failed to decode response %q: %v", rec.Body.String(), err)
	}
	return out
}

func registerUser(t *testing.T, router http.Handler, email string) string {
	t.Helper()
	rec := doJSON(t, router, "POST", "/api/auth/register", "", map[string]string{
		"email":    email,
		"password": "correct-horse",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("register returned %d: %s", rec.Code, rec.Body.String())
	}
	return decode[handlers.AuthResponse](t, rec).Token
}

func createRequestBody() map[string]any {
	return map[string]any{
		"name":           "Standard MTT",
		"kind":           "hero",
		"table_type":     "8-max",
		"category":       "mtt",
		"starting_stack": 100,
		"bounty":         false,
		"range_data":     rangeschema.Skeleton(rangeschema.KindHero),
	}
}

func TestAuthEndpoints(t *testing.T) {
	h := newTestHandlers(t)
	router := h.Router()

	token := registerUser(t, router, "alice@example.com")
	if token == "" {
		t.Fatal("register returned empty token")
	}

	rec := doJSON(t, router, "POST", "/api/auth/login", "", map[string]string{
		"email":    "alice@example.com",
		"password": "correct-horse",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("login returned %d: %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, router, "POST", "/api/auth/login", "", map[string]string{
		"email":    "alice@example.com",
		"password": "wrong-password",
	})
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("bad login returned %d, want 401", rec.Code)
	}

	rec = doJSON(t, router, "POST", "/api/auth/register", "", map[string]string{
		"email":    "alice@example.com",
		"password": "correct-horse",
	})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("duplicate register returned %d, want 400", rec.Code)
	}
}

func TestRangeEndpointsRequireAuth(t *testing.T) {
	h := newTestHandlers(t)
	router := h.Router()

	for _, tc := range []struct{ method, path string }{
		{"GET", "/api/ranges"},
		{"POST", "/api/ranges"},
		{"GET", "/api/ranges/1"},
		{"PUT", "/api/ranges/1"},
		{"DELETE", "/api/ranges/1"},
		{"GET", "/api/ranges/1/qr"},
		{"GET", "/api/ranges/skeleton"},
		{"DELETE", "/api/account"},
	} {
		rec := doJSON(t, router, tc.method, tc.path, "", nil)
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("%s %s without token returned %d, want 401", tc.method, tc.path, rec.Code)
		}
	}
}

func TestRangeCRUD(t *testing.T) {
	h := newTestHandlers(t)
	router := h.Router()
	token := registerUser(t, router, "alice@example.com")

	// Create
	rec := doJSON(t, router, "POST", "/api/ranges", token, createRequestBody())
	if rec.Code != http.StatusCreated {
		t.Fatalf("create returned %d: %s", rec.Code, rec.Body.String())
	}
	created := decode[models.RangeSet](t, rec)
	if created.ID == 0 || created.Name != "Standard MTT" {
		t.Fatalf("unexpected created range set: %+v", created)
	}

	// Get
	rec = doJSON(t, router, "GET", fmt.Sprintf("/api/ranges/%d", created.ID), token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("get returned %d", rec.Code)
	}

	// List
	rec = doJSON(t, router, "GET", "/api/ranges", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("list returned %d", rec.Code)
	}
	list := decode[handlers.RangeSetListResponse](t, rec)
	if len(list.RangeSets) != 1 {
		t.Errorf("list has %d entries, want 1", len(list.RangeSets))
	}

	// Update
	rec = doJSON(t, router, "PUT", fmt.Sprintf("/api/ranges/%d", created.ID), token, map[string]any{
		"name":       "Renamed",
		"range_data": rangeschema.Skeleton(rangeschema.KindHero),
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("update returned %d: %s", rec.Code, rec.Body.String())
	}
	if updated := decode[models.RangeSet](t, rec); updated.Name != "Renamed" {
		t.Errorf("updated name = %q", updated.Name)
	}

	// Delete
	rec = doJSON(t, router, "DELETE", fmt.Sprintf("/api/ranges/%d", created.ID), token, nil)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("delete returned %d", rec.Code)
	}

	rec = doJSON(t, router, "DELETE", fmt.Sprintf("/api/ranges/%d", created.ID), token, nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("repeated delete returned %d, want 404", rec.Code)
	}
}

func TestRangeOwnershipOpacity(t *testing.T) {
	h := newTestHandlers(t)
	router := h.Router()
	alice := registerUser(t, router, "alice@example.com")
	bob := registerUser(t, router, "bob@example.com")

	rec := doJSON(t, router, "POST", "/api/ranges", alice, createRequestBody())
	if rec.Code != http.StatusCreated {
		t.Fatalf("create returned %d", rec.Code)
	}
	created := decode[models.RangeSet](t, rec)

	// Bob's view of alice's row is identical to a missing row
	paths := []string{
		fmt.Sprintf("/api/ranges/%d", created.ID),
		fmt.Sprintf("/api/ranges/%d", created.ID+100),
	}
	for _, path := range paths {
		rec := doJSON(t, router, "GET", path, bob, nil)
		if rec.Code != http.StatusNotFound {
			t.Errorf("GET %s as bob returned %d, want 404", path, rec.Code)
		}
	}
}

func TestRangeCreateValidationError(t *testing.T) {
	h := newTestHandlers(t)
	router := h.Router()
	token := registerUser(t, router, "alice@example.com")

	body := createRequestBody()
	body["kind"] = "villain"
	rec := doJSON(t, router, "POST", "/api/ranges", token, body)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("create with bad kind returned %d, want 400", rec.Code)
	}

	rec = doJSON(t, router, "POST", "/api/ranges", token, nil)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("create with empty body returned %d, want 400", rec.Code)
	}
}

func TestRangeListFilters(t *testing.T) {
	h := newTestHandlers(t)
	router := h.Router()
	token := registerUser(t, router, "alice@example.com")

	body := createRequestBody()
	doJSON(t, router, "POST", "/api/ranges", token, body)
	body["table_type"] = "6-max"
	body["bounty"] = true
	doJSON(t, router, "POST", "/api/ranges", token, body)

	rec := doJSON(t, router, "GET", "/api/ranges?table_type=6-max&bounty=true", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("filtered list returned %d", rec.Code)
	}
	list := decode[handlers.RangeSetListResponse](t, rec)
	if len(list.RangeSets) != 1 {
		t.Errorf("filtered list has %d entries, want 1", len(list.RangeSets))
	}

	rec = doJSON(t, router, "GET", "/api/ranges?starting_stack=abc", token, nil)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("bad stack filter returned %d, want 400", rec.Code)
	}
}

func TestSkeletonEndpoint(t *testing.T) {
	h := newTestHandlers(t)
	router := h.Router()
	token := registerUser(t, router, "alice@example.com")

	rec := doJSON(t, router, "GET", "/api/ranges/skeleton?kind=opponent", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("skeleton returned %d: %s", rec.Code, rec.Body.String())
	}
	resp := decode[handlers.SkeletonResponse](t, rec)
	if resp.Kind != "opponent" || resp.RangeData == nil {
		t.Errorf("unexpected skeleton response: %+v", resp.Kind)
	}

	rec = doJSON(t, router, "GET", "/api/ranges/skeleton?kind=villain", token, nil)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("bad kind returned %d, want 400", rec.Code)
	}
}

func TestRangeQREndpoint(t *testing.T) {
	h := newTestHandlers(t)
	router := h.Router()
	token := registerUser(t, router, "alice@example.com")

	rec := doJSON(t, router, "POST", "/api/ranges", token, createRequestBody())
	created := decode[models.RangeSet](t, rec)

	rec = doJSON(t, router, "GET", fmt.Sprintf("/api/ranges/%d/qr", created.ID), token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("qr returned %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/png" {
		t.Errorf("content type = %q, want image/png", ct)
	}
}

func TestReviewEndpoints(t *testing.T) {
	h := newTestHandlers(t)
	router := h.Router()

	rec := doJSON(t, router, "GET", "/api/review/actions?level=4", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("actions returned %d", rec.Code)
	}
	actions := decode[handlers.ActionsResponse](t, rec)
	if len(actions.Actions) != 4 || actions.Actions[2] != engine.FiveBet {
		t.Errorf("level 4 actions = %v", actions.Actions)
	}

	rec = doJSON(t, router, "GET", "/api/review/actions?level=9", "", nil)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("out-of-range level returned %d, want 400", rec.Code)
	}

	rec = doJSON(t, router, "POST", "/api/review/resolve", "", map[string]any{
		"action": "bet",
		"amount": 20,
		"state":  engine.State{Level: 0, Pot: 15, PlayerStack: 1000, MinRaise: 20},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("resolve returned %d: %s", rec.Code, rec.Body.String())
	}
	resolved := decode[handlers.ResolveResponse](t, rec)
	if resolved.State.Pot != 35 || resolved.State.Level != 1 {
		t.Errorf("resolved state = %+v", resolved.State)
	}

	rec = doJSON(t, router, "POST", "/api/review/resolve", "", map[string]any{
		"action": "check",
		"state":  engine.State{Level: 1, CurrentBet: 20, Pot: 35, PlayerStack: 980, MinRaise: 20},
	})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("illegal action returned %d, want 400", rec.Code)
	}

	rec = doJSON(t, router, "POST", "/api/review/resolve", "", map[string]any{
		"state": engine.State{},
	})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("missing action returned %d, want 400", rec.Code)
	}
}

func TestDeleteAccountCascades(t *testing.T) {
	h := newTestHandlers(t)
	router := h.Router()
	token := registerUser(t, router, "alice@example.com")

	doJSON(t, router, "POST", "/api/ranges", token, createRequestBody())

	rec := doJSON(t, router, "DELETE", "/api/account", token, nil)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("account delete returned %d", rec.Code)
	}

	// The token still verifies but the rows are gone
	rec = doJSON(t, router, "GET", "/api/ranges", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("list after delete returned %d", rec.Code)
	}
	list := decode[handlers.RangeSetListResponse](t, rec)
	if len(list.RangeSets) != 0 {
		t.Errorf("range sets survived account deletion: %d", len(list.RangeSets))
	}
}
