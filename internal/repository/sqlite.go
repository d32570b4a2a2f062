package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/mattn/go-sqlite3"

	"github.com/rangevault/rangevault/internal/models"
)

// Repository provides data access methods
type Repository struct {
	db *sql.DB
}

// New creates a new Repository
func New(dbPath string) (*Repository, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, err
	}

	// Enable foreign key constraints (needed for the user -> range_sets cascade)
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return nil, err
	}

	// SQLite works best with a single connection
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	repo := &Repository{db: db}

	if err := repo.migrate(); err != nil {
		return nil, err
	}

	return repo, nil
}

// DB returns the underlying database connection
func (r *Repository) DB() *sql.DB {
	return r.db
}

// Close closes the database connection
func (r *Repository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// Ping checks if the database connection is alive
func (r *Repository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

// migrate runs database migrations
func (r *Repository) migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			email TEXT UNIQUE NOT NULL,
			password_hash TEXT NOT NULL,
			created_at DATETIME NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS range_sets (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			user_id INTEGER NOT NULL,
			name TEXT NOT NULL,
			kind TEXT NOT NULL,
			table_type TEXT NOT NULL,
			category TEXT NOT NULL,
			starting_stack INTEGER NOT NULL,
			bounty BOOLEAN NOT NULL DEFAULT 0,
			range_data TEXT NOT NULL,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL,
			FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE
		)`,
		`CREATE INDEX IF NOT EXISTS idx_range_sets_user ON range_sets(user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_range_sets_user_updated ON range_sets(user_id, updated_at)`,
	}

	for _, migration := range migrations {
		if _, err := r.db.Exec(migration); err != nil {
			return err
		}
	}
	return nil
}

// ==================== User Methods ====================

// CreateUser creates a new user account
func (r *Repository) CreateUser(ctx context.Context, email, passwordHash string) (int64, error) {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO users (email, password_hash, created_at) VALUES (?, ?, ?)`,
		email, passwordHash, time.Now().UTC())
	if err != nil {
		if isUniqueViolation(err) {
			return 0, ErrEmailTaken
		}
		return 0, err
	}
	return result.LastInsertId()
}

// GetUser returns a user by ID
func (r *Repository) GetUser(ctx context.Context, id int64) (*models.User, error) {
	var u models.User
	err := r.db.QueryRowContext(ctx,
		`SELECT id, email, created_at FROM users WHERE id = ?`, id).
		Scan(&u.ID, &u.Email, &u.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// GetUserByEmail returns the id and password hash for an email
func (r *Repository) GetUserByEmail(ctx context.Context, email string) (int64, string, error) {
	var id int64
	var hash string
	err := r.db.QueryRowContext(ctx,
		`SELECT id, password_hash FROM users WHERE email = ?`, email).
		Scan(&id, &hash)
	if err == sql.ErrNoRows {
		return 0, "", ErrNotFound
	}
	if err != nil {
		return 0, "", err
	}
	return id, hash, nil
}

// DeleteUser deletes a user; owned range sets cascade
func (r *Repository) DeleteUser(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, id)
	return err
}

// ==================== Range Set Methods ====================

const rangeSetColumns = `id, user_id, name, kind, table_type, category, starting_stack, bounty, range_data, created_at, updated_at`

// CreateRangeSet inserts a new range set and returns it with id and
// timestamps assigned. created_at and updated_at start equal.
func (r *Repository) CreateRangeSet(ctx context.Context, userID int64, name, kind, tableType, category string, startingStack int, bounty bool, rangeData map[string]any) (*models.RangeSet, error) {
	doc, err := json.Marshal(rangeData)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	result, err := r.db.ExecContext(ctx, `
		INSERT INTO range_sets (user_id, name, kind, table_type, category, starting_stack, bounty, range_data, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, userID, name, kind, tableType, category, startingStack, bounty, string(doc), now, now)
	if err != nil {
		return nil, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}
	return r.GetRangeSet(ctx, id, userID)
}

// GetRangeSet returns a range set by id, scoped to its owner. A missing
// row and a row owned by someone else both return ErrNotFound.
func (r *Repository) GetRangeSet(ctx context.Context, id, userID int64) (*models.RangeSet, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+rangeSetColumns+` FROM range_sets WHERE id = ? AND user_id = ?`,
		id, userID)
	return scanRangeSet(row)
}

// ListRangeSets returns the user's range sets, most recently updated
// first. Filter fields are optional and combine with AND.
func (r *Repository) ListRangeSets(ctx context.Context, userID int64, filter models.RangeSetFilter) ([]models.RangeSet, error) {
	query := `SELECT ` + rangeSetColumns + ` FROM range_sets WHERE user_id = ?`
	args := []any{userID}

	if filter.TableType != nil {
		query += ` AND table_type = ?`
		args = append(args, *filter.TableType)
	}
	if filter.Category != nil {
		query += ` AND category = ?`
		args = append(args, *filter.Category)
	}
	if filter.StartingStack != nil {
		query += ` AND starting_stack = ?`
		args = append(args, *filter.StartingStack)
	}
	if filter.Bounty != nil {
		query += ` AND bounty = ?`
		args = append(args, *filter.Bounty)
	}
	query += ` ORDER BY updated_at DESC, id DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sets []models.RangeSet
	for rows.Next() {
		rs, err := scanRangeSet(rows)
		if err != nil {
			return nil, err
		}
		sets = append(sets, *rs)
	}
	return sets, rows.Err()
}

// UpdateRangeSet replaces the payload of a range set and optionally
// renames it (empty name keeps the current one). The whole operation is a
// single UPDATE; concurrent writers are last-writer-wins.
func (r *Repository) UpdateRangeSet(ctx context.Context, id, userID int64, name string, rangeData map[string]any) (*models.RangeSet, error) {
	doc, err := json.Marshal(rangeData)
	if err != nil {
		return nil, err
	}

	result, err := r.db.ExecContext(ctx, `
		UPDATE range_sets
		   SET name = COALESCE(NULLIF(?, ''), name),
		       range_data = ?,
		       updated_at = ?
		 WHERE id = ? AND user_id = ?
	`, name, string(doc), time.Now().UTC(), id, userID)
	if err != nil {
		return nil, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, ErrNotFound
	}
	return r.GetRangeSet(ctx, id, userID)
}

// DeleteRangeSet deletes a range set, scoped to its owner. Deleting a
// nonexistent or foreign id reports false, never "forbidden".
func (r *Repository) DeleteRangeSet(ctx context.Context, id, userID int64) (bool, error) {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM range_sets WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// scanner covers both *sql.Row and *sql.Rows
type scanner interface {
	Scan(dest ...any) error
}

func scanRangeSet(row scanner) (*models.RangeSet, error) {
	var rs models.RangeSet
	var doc string
	err := row.Scan(&rs.ID, &rs.UserID, &rs.Name, &rs.Kind, &rs.TableType, &rs.Category,
		&rs.StartingStack, &rs.Bounty, &doc, &rs.CreatedAt, &rs.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(doc), &rs.RangeData); err != nil {
		return nil, err
	}
	return &rs, nil
}

func isUniqueViolation(err error) bool {
	if se, ok := err.(sqlite3.Error); ok {
		return se.Code == sqlite3.ErrConstraint
	}
	return false
}
