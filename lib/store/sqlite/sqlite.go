package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/hangarworks/gauntlet/lib/store"
	_ "modernc.org/sqlite"
)

// Store implements store.Interface on top of a single-file SQLite database.
//
// Every value lives in one row of the gauntlet_kv table together with its
// expiry timestamp (time.RFC3339Nano). Take maps to DELETE ... RETURNING, so
// reading and consuming a record is one statement and two concurrent Take
// calls for the same key cannot both get a row back.
//
// Like bbolt, this backend is for single-instance deployments. Use valkey
// when multiple Gauntlet instances share one store.
type Store struct {
	db *sql.DB
}

const schema = `CREATE TABLE IF NOT EXISTS gauntlet_kv (
	key TEXT PRIMARY KEY,
	data BLOB NOT NULL,
	expiry TEXT NOT NULL
)`

func (s *Store) Delete(ctx context.Context, key string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM gauntlet_kv WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("can't delete from sqlite: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("can't read rows affected: %w", err)
	}

	if n == 0 {
		return fmt.Errorf("%w: %q", store.ErrNotFound, key)
	}

	return nil
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	var data []byte
	var expiryStr string

	err := s.db.QueryRowContext(ctx, `SELECT data, expiry FROM gauntlet_kv WHERE key = ?`, key).Scan(&data, &expiryStr)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil, fmt.Errorf("%w: %q", store.ErrNotFound, key)
	case err != nil:
		return nil, fmt.Errorf("can't fetch from sqlite: %w", err)
	}

	expired, err := parseExpired(expiryStr)
	if err != nil {
		return nil, err
	}

	if expired {
		go s.Delete(context.Background(), key)
		return nil, fmt.Errorf("%w: %q", store.ErrNotFound, key)
	}

	return data, nil
}

func (s *Store) Set(ctx context.Context, key string, value []byte, expiry time.Duration) error {
	expires := time.Now().Add(expiry).Format(time.RFC3339Nano)

	if _, err := s.db.ExecContext(ctx,
		`INSERT INTO gauntlet_kv (key, data, expiry) VALUES (?, ?, ?)
		 ON CONFLICT (key) DO UPDATE SET data = excluded.data, expiry = excluded.expiry`,
		key, value, expires,
	); err != nil {
		return fmt.Errorf("%w: %q: %w", store.ErrCantEncode, key, err)
	}

	return nil
}

func (s *Store) Take(ctx context.Context, key string) ([]byte, error) {
	var data []byte
	var expiryStr string

	err := s.db.QueryRowContext(ctx, `DELETE FROM gauntlet_kv WHERE key = ? RETURNING data, expiry`, key).Scan(&data, &expiryStr)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil, fmt.Errorf("%w: %q", store.ErrNotFound, key)
	case err != nil:
		return nil, fmt.Errorf("can't take from sqlite: %w", err)
	}

	expired, err := parseExpired(expiryStr)
	if err != nil {
		return nil, err
	}

	if expired {
		return nil, fmt.Errorf("%w: %q", store.ErrNotFound, key)
	}

	return data, nil
}

func parseExpired(expiryStr string) (bool, error) {
	expiry, err := time.Parse(time.RFC3339Nano, expiryStr)
	if err != nil {
		return false, fmt.Errorf("[unexpected] %w: %w", store.ErrCantDecode, err)
	}

	return time.Now().After(expiry), nil
}

func (s *Store) cleanup(ctx context.Context) error {
	now := time.Now().Format(time.RFC3339Nano)

	// RFC3339Nano timestamps at the same UTC offset sort lexically, so the
	// comparison can happen inside SQLite.
	if _, err := s.db.ExecContext(ctx, `DELETE FROM gauntlet_kv WHERE expiry < ?`, now); err != nil {
		return fmt.Errorf("can't clean up sqlite: %w", err)
	}

	return nil
}

func (s *Store) cleanupThread(ctx context.Context) {
	t := time.NewTicker(5 * time.Minute)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if err := s.cleanup(ctx); err != nil {
				slog.Error("error during sqlite cleanup", "err", err)
			}
		}
	}
}
