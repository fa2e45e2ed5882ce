package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq" // PostgreSQL driver

	"feedbackportal/internal/model"
)

// PostgresStorage keeps the session in a shared Postgres instance, for
// deployments where several operator hosts share one login.
type PostgresStorage struct {
	db *sqlx.DB
}

func NewPostgresStorage(ctx context.Context, databaseURL string) (*PostgresStorage, error) {
	db, err := sqlx.ConnectContext(ctx, "postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	s := &PostgresStorage{db: db}
	if err := s.initSchema(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

var _ Storage = (*PostgresStorage)(nil)

func (s *PostgresStorage) initSchema(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS sessions (
			id         INT PRIMARY KEY,
			token      TEXT NOT NULL,
			user_id    TEXT NOT NULL,
			user_name  TEXT NOT NULL DEFAULT '',
			user_role  TEXT NOT NULL DEFAULT '',
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)
	`
	if _, err := s.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("init schema: %w", err)
	}
	return nil
}

type sessionRow struct {
	Token    string `db:"token"`
	UserID   string `db:"user_id"`
	UserName string `db:"user_name"`
	UserRole string `db:"user_role"`
}

// A single row keyed by id=1 holds the current session.
func (s *PostgresStorage) SaveSession(ctx context.Context, sess Session) error {
	query := `
		INSERT INTO sessions (id, token, user_id, user_name, user_role, updated_at)
		VALUES (1, $1, $2, $3, $4, now())
		ON CONFLICT (id) DO UPDATE
		SET token = $1, user_id = $2, user_name = $3, user_role = $4, updated_at = now()
	`
	if _, err := s.db.ExecContext(ctx, query, sess.Token, sess.User.ID, sess.User.Name, sess.User.Role); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (s *PostgresStorage) LoadSession(ctx context.Context) (*Session, error) {
	var row sessionRow
	query := `SELECT token, user_id, user_name, user_role FROM sessions WHERE id = 1`
	err := s.db.GetContext(ctx, &row, query)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	return &Session{
		Token: row.Token,
		User:  model.User{ID: row.UserID, Name: row.UserName, Role: row.UserRole},
	}, nil
}

func (s *PostgresStorage) ClearSession(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE id = 1`); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

func (s *PostgresStorage) Close() error {
	return s.db.Close()
}
