package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"huffzip_go/internal/model"
)

func Open(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}
	cfg.MaxConns = 5
	cfg.MinConns = 1
	cfg.MaxConnLifetime = time.Hour
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("pgxpool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping: %w", err)
	}
	return pool, nil
}

func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS jobs (
  id          TEXT PRIMARY KEY,
  op          TEXT NOT NULL,
  file_name   TEXT NOT NULL,
  output_name TEXT NOT NULL DEFAULT '',
  input_size  BIGINT NOT NULL,
  output_size BIGINT NOT NULL,
  duration_ms BIGINT NOT NULL,
  error       TEXT NOT NULL DEFAULT '',
  created_at  TIMESTAMPTZ NOT NULL
)`)
	if err != nil {
		return fmt.Errorf("migrate jobs: %w", err)
	}
	return nil
}

type jobRepoPG struct {
	pool *pgxpool.Pool
}

func NewJobRepoPG(pool *pgxpool.Pool) JobRepo {
	return &jobRepoPG{pool: pool}
}

const jobColumns = `id, op, file_name, output_name, input_size, output_size, duration_ms, error, created_at`

func (r *jobRepoPG) Save(ctx context.Context, j *model.Job) error {
	_, err := r.pool.Exec(ctx, `
INSERT INTO jobs (`+jobColumns+`)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
ON CONFLICT (id) DO UPDATE SET
  output_name = EXCLUDED.output_name,
  output_size = EXCLUDED.output_size,
  duration_ms = EXCLUDED.duration_ms,
  error       = EXCLUDED.error`,
		j.ID, string(j.Op), j.FileName, j.OutputName, j.InputSize, j.OutputSize, j.DurationMs, j.Error, j.CreatedAt)
	if err != nil {
		return fmt.Errorf("save job %s: %w", j.ID, err)
	}
	return nil
}

func (r *jobRepoPG) FindByID(ctx context.Context, id string) (*model.Job, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+jobColumns+` FROM jobs WHERE id = $1`, id)
	j, err := scanJob(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find job %s: %w", id, err)
	}
	return j, nil
}

func (r *jobRepoPG) List(ctx context.Context) ([]*model.Job, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+jobColumns+` FROM jobs ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	defer rows.Close()

	out := make([]*model.Job, 0)
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, fmt.Errorf("list jobs: %w", err)
		}
		out = append(out, j)
	}
	return out, rows.Err()
}

func scanJob(row pgx.Row) (*model.Job, error) {
	var (
		j  model.Job
		op string
	)
	if err := row.Scan(&j.ID, &op, &j.FileName, &j.OutputName, &j.InputSize, &j.OutputSize, &j.DurationMs, &j.Error, &j.CreatedAt); err != nil {
		return nil, err
	}
	j.Op = model.Op(op)
	return &j, nil
}
