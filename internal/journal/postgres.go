package journal

import (
	"context"
	"database/sql"
	"time"

	_ "github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/saqib40/kit-and-adapter/internal/model"
)

const schema = `
CREATE TABLE IF NOT EXISTS activity (
	id BIGSERIAL PRIMARY KEY,
	kind TEXT NOT NULL,
	from_address TEXT NOT NULL,
	to_address TEXT NOT NULL,
	lamports NUMERIC(20, 0) NOT NULL,
	signature TEXT NOT NULL DEFAULT '',
	status TEXT NOT NULL,
	error TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS activity_signature_idx ON activity (signature);
`

type Postgres struct {
	DB *sql.DB
}

var _ Journal = (*Postgres)(nil)

func OpenPostgres(ctx context.Context, dsn string) (*Postgres, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, errors.Wrap(err, "open postgres")
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "ping postgres")
	}
	return &Postgres{DB: db}, nil
}

func (p *Postgres) Migrate(ctx context.Context) error {
	_, err := p.DB.ExecContext(ctx, schema)
	return errors.Wrap(err, "migrate activity table")
}

func (p *Postgres) Record(ctx context.Context, entry model.Activity) (model.Activity, error) {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	err := p.DB.QueryRowContext(ctx,
		`INSERT INTO activity (kind, from_address, to_address, lamports, signature, status, error, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`,
		string(entry.Kind), entry.From, entry.To, entry.Lamports, entry.Signature, string(entry.Status), entry.Error, entry.CreatedAt,
	).Scan(&entry.ID)
	if err != nil {
		return model.Activity{}, errors.Wrap(err, "insert activity")
	}
	return entry, nil
}

func (p *Postgres) Recent(ctx context.Context, limit int) ([]model.Activity, error) {
	rows, err := p.DB.QueryContext(ctx,
		`SELECT id, kind, from_address, to_address, lamports, signature, status, error, created_at
		FROM activity ORDER BY id DESC LIMIT $1`, normalizeLimit(limit))
	if err != nil {
		return nil, errors.Wrap(err, "query activity")
	}
	defer rows.Close()

	entries := []model.Activity{}
	for rows.Next() {
		entry, err := scanActivity(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, errors.Wrap(rows.Err(), "iterate activity")
}

func (p *Postgres) Lookup(ctx context.Context, signature string) (*model.Activity, error) {
	// failed submissions are recorded without a signature
	if signature == "" {
		return nil, nil
	}
	row := p.DB.QueryRowContext(ctx,
		`SELECT id, kind, from_address, to_address, lamports, signature, status, error, created_at
		FROM activity WHERE signature = $1 ORDER BY id DESC LIMIT 1`, signature)

	entry, err := scanActivity(row)
	if err != nil {
		if errors.Cause(err) == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entry, nil
}

func (p *Postgres) Close() error {
	if p.DB == nil {
		return nil
	}
	return p.DB.Close()
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanActivity(s scanner) (model.Activity, error) {
	var (
		entry        model.Activity
		kind, status string
	)
	err := s.Scan(&entry.ID, &kind, &entry.From, &entry.To, &entry.Lamports, &entry.Signature, &status, &entry.Error, &entry.CreatedAt)
	if err != nil {
		return model.Activity{}, errors.WithStack(err)
	}
	entry.Kind = model.ActionKind(kind)
	entry.Status = model.ActivityStatus(status)
	return entry, nil
}
