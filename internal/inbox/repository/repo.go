package repository

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/Developer-Sahil/portfolio-system/internal/inbox/domain"
)

//go:embed schema.sql
var schemaSQL string

// Repository persists contact messages.
type Repository interface {
	Create(ctx context.Context, m *domain.Message) error
	List(ctx context.Context) ([]domain.Message, error)
	MarkRead(ctx context.Context, id string) (*domain.Message, error)
	Delete(ctx context.Context, id string) error
}

var (
	_ Repository = (*MessageRepository)(nil)
	_ Repository = (*Memory)(nil)
)

// Migrate creates the messages table when it is missing.
func Migrate(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("migrate messages: %w", err)
	}
	return nil
}

// MessageRepository stores messages in Postgres through database/sql.
type MessageRepository struct {
	db *sql.DB
}

func NewMessageRepository(db *sql.DB) *MessageRepository {
	return &MessageRepository{db: db}
}

func (r *MessageRepository) Create(ctx context.Context, m *domain.Message) error {
	const q = `
INSERT INTO messages (id, name, email, company, type, message, read, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
`
	_, err := r.db.ExecContext(ctx, q, m.ID, m.Name, m.Email, nullString(m.Company), m.Type, m.Message, m.Read, m.CreatedAt)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert message: %w", err)
	}
	return nil
}

// List returns every message, newest first.
func (r *MessageRepository) List(ctx context.Context) ([]domain.Message, error) {
	const q = `
SELECT id, name, email, company, type, message, read, created_at
FROM messages
ORDER BY created_at DESC, id;
`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Message, 0, 16)
	for rows.Next() {
		m, err := scanMessage(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *MessageRepository) MarkRead(ctx context.Context, id string) (*domain.Message, error) {
	const q = `
UPDATE messages
SET read = true
WHERE id = $1
RETURNING id, name, email, company, type, message, read, created_at;
`
	m, err := scanMessage(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return m, nil
}

func (r *MessageRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM messages WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete message: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanMessage(s scanner) (*domain.Message, error) {
	var (
		m       domain.Message
		company sql.NullString
	)
	if err := s.Scan(&m.ID, &m.Name, &m.Email, &company, &m.Type, &m.Message, &m.Read, &m.CreatedAt); err != nil {
		return nil, err
	}
	if company.Valid {
		m.Company = &company.String
	}
	m.CreatedAt = m.CreatedAt.UTC()
	return &m, nil
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}
