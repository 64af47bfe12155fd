package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// SQL stores documents in a board_documents table. It works with the mysql,
// pgx and sqlite drivers.
type SQL struct {
	db *sqlx.DB
}

func NewSQL(db *sqlx.DB) *SQL {
	return &SQL{db: db}
}

func (s *SQL) schema() string {
	switch s.db.DriverName() {
	case "mysql":
		return `CREATE TABLE IF NOT EXISTS board_documents (
			doc_key VARCHAR(191) NOT NULL PRIMARY KEY,
			body LONGTEXT NOT NULL,
			updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
		) DEFAULT CHARSET=utf8mb4`
	case "pgx":
		return `CREATE TABLE IF NOT EXISTS board_documents (
			doc_key TEXT PRIMARY KEY,
			body TEXT NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`
	default:
		return `CREATE TABLE IF NOT EXISTS board_documents (
			doc_key TEXT PRIMARY KEY,
			body TEXT NOT NULL,
			updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`
	}
}

// Migrate creates the documents table if it does not exist.
func (s *SQL) Migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, s.schema()); err != nil {
		return fmt.Errorf("migrate board_documents: %w", err)
	}
	return nil
}

func (s *SQL) Get(ctx context.Context, key string) (string, error) {
	var body string
	err := s.db.GetContext(ctx, &body,
		s.db.Rebind("SELECT body FROM board_documents WHERE doc_key = ?"), key)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	return body, err
}

func (s *SQL) Set(ctx context.Context, key, value string) error {
	query := `INSERT INTO board_documents (doc_key, body, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT (doc_key) DO UPDATE SET body = excluded.body, updated_at = CURRENT_TIMESTAMP`
	if s.db.DriverName() == "mysql" {
		query = `INSERT INTO board_documents (doc_key, body) VALUES (?, ?)
			ON DUPLICATE KEY UPDATE body = VALUES(body)`
	}

	_, err := s.db.ExecContext(ctx, s.db.Rebind(query), key, value)
	return err
}

func (s *SQL) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *SQL) Close() error {
	return s.db.Close()
}
