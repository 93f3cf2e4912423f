package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// Postgres-backed lookup cache. Unlike the Redis store, entries persist
// until overwritten; updated_at records when a key was last refreshed.
type SQLStore struct {
	DB *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{DB: db}
}

// Get returns the cached value for key; found is false on a miss.
func (s *SQLStore) Get(ctx context.Context, key string) (string, bool, error) {
	if s.DB == nil {
		return "", false, errors.New("lookup cache: db is nil")
	}

	q := `
	SELECT cache_value
	FROM lookup_cache
	WHERE cache_key = $1;
	`

	var v string
	err := s.DB.QueryRowContext(ctx, q, key).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get lookup cache: query lookup_cache table: %w", err)
	}

	return v, true, nil
}

// Put stores value under key, replacing any previous entry.
func (s *SQLStore) Put(ctx context.Context, key, value string) error {
	if s.DB == nil {
		return errors.New("lookup cache: db is nil")
	}

	q := `
	INSERT INTO lookup_cache (cache_key, cache_value, updated_at)
	VALUES ($1, $2, NOW())
	ON CONFLICT (cache_key) DO UPDATE
	SET cache_value = EXCLUDED.cache_value,
		updated_at = EXCLUDED.updated_at;
	`

	if _, err := s.DB.ExecContext(ctx, q, key, value); err != nil {
		return fmt.Errorf("insert lookup cache key=%q: %w", key, err)
	}

	return nil
}
