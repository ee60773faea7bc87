package repository

import (
	"context"
	_ "embed"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Developer-Sahil/portfolio-system/internal/content/domain"
)

//go:embed schema.sql
var schemaSQL string

const uniqueViolation = "23505"

var tables = map[domain.Kind]string{
	domain.KindProject: "projects",
	domain.KindWriting: "writings",
	domain.KindSystem:  "systems",
	domain.KindVault:   "vault_entries",
	domain.KindArena:   "arena_threads",
}

// Postgres stores each kind as JSONB documents in its own table.
type Postgres struct {
	db *pgxpool.Pool
}

func NewPostgres(db *pgxpool.Pool) *Postgres {
	return &Postgres{db: db}
}

// Migrate creates the tables if they do not exist yet.
func Migrate(ctx context.Context, db *pgxpool.Pool) error {
	if _, err := db.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}

func table(kind domain.Kind) (string, error) {
	t, ok := tables[kind]
	if !ok {
		return "", fmt.Errorf("unknown kind %q", kind)
	}
	return t, nil
}

func nullableSlug(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func scanDocument(row pgx.Row, kind domain.Kind) (Document, error) {
	var d Document
	if err := row.Scan(&d.ID, &d.Slug, &d.Body); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Document{}, domain.NotFound(kind)
		}
		return Document{}, err
	}
	return d, nil
}

func conflictErr(err error, kind domain.Kind, doc Document) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		if doc.Slug != "" && pgErr.ConstraintName != "" && pgErr.ConstraintName != tables[kind]+"_pkey" {
			return domain.SlugConflict(kind, doc.Slug)
		}
		return fmt.Errorf("%w: %s %q already exists", domain.ErrConflict, kind.Singular(), doc.ID)
	}
	return err
}

func (p *Postgres) Insert(ctx context.Context, kind domain.Kind, doc Document) error {
	t, err := table(kind)
	if err != nil {
		return err
	}
	q := fmt.Sprintf(`insert into %s (id, slug, doc) values ($1, $2, $3)`, t)
	if _, err := p.db.Exec(ctx, q, doc.ID, nullableSlug(doc.Slug), doc.Body); err != nil {
		return conflictErr(err, kind, doc)
	}
	return nil
}

func (p *Postgres) Get(ctx context.Context, kind domain.Kind, id string) (Document, error) {
	t, err := table(kind)
	if err != nil {
		return Document{}, err
	}
	q := fmt.Sprintf(`select id, coalesce(slug, ''), doc from %s where id = $1`, t)
	return scanDocument(p.db.QueryRow(ctx, q, id), kind)
}

func (p *Postgres) GetBySlug(ctx context.Context, kind domain.Kind, slug string) (Document, error) {
	t, err := table(kind)
	if err != nil {
		return Document{}, err
	}
	q := fmt.Sprintf(`select id, coalesce(slug, ''), doc from %s where slug = $1`, t)
	return scanDocument(p.db.QueryRow(ctx, q, slug), kind)
}

func (p *Postgres) List(ctx context.Context, kind domain.Kind) ([]Document, error) {
	t, err := table(kind)
	if err != nil {
		return nil, err
	}
	rows, err := p.db.Query(ctx, fmt.Sprintf(`select id, coalesce(slug, ''), doc from %s order by seq`, t))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Document, 0, 16)
	for rows.Next() {
		var d Document
		if err := rows.Scan(&d.ID, &d.Slug, &d.Body); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (p *Postgres) Update(ctx context.Context, kind domain.Kind, id string, mutate MutateFunc) (Document, error) {
	t, err := table(kind)
	if err != nil {
		return Document{}, err
	}

	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return Document{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	current, err := scanDocument(tx.QueryRow(ctx,
		fmt.Sprintf(`select id, coalesce(slug, ''), doc from %s where id = $1 for update`, t), id), kind)
	if err != nil {
		return Document{}, err
	}

	next, err := mutate(current)
	if err != nil {
		return Document{}, err
	}
	next.ID = id

	q := fmt.Sprintf(`update %s set slug = $2, doc = $3, updated_at = now() where id = $1`, t)
	if _, err := tx.Exec(ctx, q, id, nullableSlug(next.Slug), next.Body); err != nil {
		return Document{}, conflictErr(err, kind, next)
	}
	if err := tx.Commit(ctx); err != nil {
		return Document{}, err
	}
	return next, nil
}

func (p *Postgres) Delete(ctx context.Context, kind domain.Kind, id string) error {
	t, err := table(kind)
	if err != nil {
		return err
	}
	tag, err := p.db.Exec(ctx, fmt.Sprintf(`delete from %s where id = $1`, t), id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.NotFound(kind)
	}
	return nil
}

func (p *Postgres) Increment(ctx context.Context, kind domain.Kind, id, field string) (Document, error) {
	t, err := table(kind)
	if err != nil {
		return Document{}, err
	}
	q := fmt.Sprintf(`
update %s
set doc = jsonb_set(doc, $2::text[], to_jsonb(coalesce((doc #>> $2::text[])::bigint, 0) + 1)),
    updated_at = now()
where id = $1
returning id, coalesce(slug, ''), doc`, t)
	return scanDocument(p.db.QueryRow(ctx, q, id, []string{field}), kind)
}

func (p *Postgres) AppendItem(ctx context.Context, kind domain.Kind, id, field string, item []byte) (Document, error) {
	t, err := table(kind)
	if err != nil {
		return Document{}, err
	}
	q := fmt.Sprintf(`
update %s
set doc = jsonb_set(
        doc,
        $2::text[],
        case when jsonb_typeof(doc #> $2::text[]) = 'array' then doc #> $2::text[] else '[]'::jsonb end
            || jsonb_build_array($3::jsonb)),
    updated_at = now()
where id = $1
returning id, coalesce(slug, ''), doc`, t)
	return scanDocument(p.db.QueryRow(ctx, q, id, []string{field}, item), kind)
}

func (p *Postgres) Ping(ctx context.Context) error {
	return p.db.Ping(ctx)
}
