package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/TechWithDunamix/govevote/internal/store"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	pool *pgxpool.Pool
}

func NewStore(databaseURL string) (*Store, error) {
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}

	// Ping to fail fast.
	ctxPing, cancelPing := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelPing()
	if err := pool.Ping(ctxPing); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping: %w", err)
	}

	s := &Store{pool: pool}
	if err := s.ensureSchema(context.Background()); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}
	return s, nil
}

func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// ensureSchema creates the two tables on startup. The unique constraints on
// username, pvc_number and nin are the authoritative duplicate guard; the
// application-level pre-checks only exist for friendlier errors.
func (s *Store) ensureSchema(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	_, err := s.pool.Exec(ctx, `
		create extension if not exists pgcrypto;

		create table if not exists public.admins (
			id uuid primary key default gen_random_uuid(),
			username text not null,
			password_hash text not null,
			created_at timestamptz not null default now(),
			updated_at timestamptz not null default now(),
			constraint admins_username_key unique (username)
		);

		create table if not exists public.voters (
			id uuid primary key default gen_random_uuid(),
			full_name text not null,
			state text not null,
			lga text not null,
			ward text not null,
			senatorial_zone text not null,
			polling_unit text not null,
			pvc_number text not null,
			nin text not null,
			is_pvc_verified boolean not null default false,
			is_nin_verified boolean not null default false,
			created_at timestamptz not null default now(),
			updated_at timestamptz not null default now(),
			constraint voters_pvc_number_key unique (pvc_number),
			constraint voters_nin_key unique (nin)
		);
	`)
	return err
}

func mapPgErr(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return store.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation; the constraint name says which key
			switch {
			case strings.Contains(pgErr.ConstraintName, "pvc"):
				return store.ErrDuplicatePVC
			case strings.Contains(pgErr.ConstraintName, "nin"):
				return store.ErrDuplicateNIN
			default:
				return store.ErrConflict
			}
		case "22P02": // invalid uuid text counts as an unknown id
			return store.ErrNotFound
		}
	}
	return err
}
