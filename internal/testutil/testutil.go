package testutil

import (
	"context"
	"testing"

	"github.com/rangevault/rangevault/internal/repository"
)

// NewTestRepository creates a new in-memory repository for testing.
// Each call creates a fresh database with all migrations applied.
func NewTestRepository(t *testing.T) *repository.Repository {
	t.Helper()

	repo, err := repository.New(":memory:")
	if err != nil {
		t.Fatalf("failed to create test repository: %v", err)
	}

	t.Cleanup(func() {
		repo.Close()
	})

	return repo
}

// NewTestUser creates a user row and returns its id. Range set rows need
// an owning user because of the foreign key.
func NewTestUser(t *testing.T, repo *repository.Repository, email string) int64 {
	t.Helper()

	id, err := repo.CreateUser(context.Background(), email, "x")
	if err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return id
}
