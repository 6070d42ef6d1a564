package metadata

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/superapp/internal/client/migrations"
	"github.com/dmitrijs2005/superapp/internal/dbx"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite"
)

// OpenSQLite opens (creating if needed) the client database at dsn and
// applies the embedded migrations.
func OpenSQLite(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open client database: %w", err)
	}

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate client database: %w", err)
	}
	return db, nil
}

func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}

	return goose.UpContext(ctx, db, ".")
}

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := r.db.QueryRowContext(ctx, `SELECT value FROM metadata WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get metadata[%s]: %w", key, err)
	}
	return value, nil
}

func upsert(ctx context.Context, db dbx.DBTX, key string, value []byte) error {
	_, err := db.ExecContext(ctx, `
		INSERT INTO metadata (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set metadata[%s]: %w", key, err)
	}
	return nil
}

func (r *SQLiteRepository) Set(ctx context.Context, key string, value []byte) error {
	return upsert(ctx, r.db, key, value)
}

func (r *SQLiteRepository) SetMany(ctx context.Context, values map[string][]byte) error {
	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		for k, v := range values {
			if err := upsert(ctx, tx, k, v); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *SQLiteRepository) Delete(ctx context.Context, keys ...string) error {
	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		for _, key := range keys {
			if _, err := tx.ExecContext(ctx, `DELETE FROM metadata WHERE key = ?`, key); err != nil {
				return fmt.Errorf("failed to delete metadata[%s]: %w", key, err)
			}
		}
		return nil
	})
}

func (r *SQLiteRepository) Clear(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM metadata`)
	if err != nil {
		return fmt.Errorf("failed to clear metadata: %w", err)
	}
	return nil
}
