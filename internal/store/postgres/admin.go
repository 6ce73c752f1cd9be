package postgres

import (
	"context"

	"github.com/TechWithDunamix/govevote/internal/model"
)

func (s *Store) CreateAdmin(ctx context.Context, a model.Admin) (model.Admin, error) {
	var out model.Admin
	err := s.pool.QueryRow(ctx, `
		insert into public.admins (username, password_hash)
		values ($1, $2)
		returning id::text, username, password_hash, created_at, updated_at
	`, a.Username, a.PasswordHash).Scan(
		&out.ID,
		&out.Username,
		&out.PasswordHash,
		&out.CreatedAt,
		&out.UpdatedAt,
	)
	if err != nil {
		return model.Admin{}, mapPgErr(err)
	}
	return out, nil
}

func (s *Store) GetAdminByID(ctx context.Context, id string) (*model.Admin, error) {
	var a model.Admin
	err := s.pool.QueryRow(ctx, `
		select id::text, username, password_hash, created_at, updated_at
		from public.admins
		where id = $1::uuid
	`, id).Scan(
		&a.ID,
		&a.Username,
		&a.PasswordHash,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		return nil, mapPgErr(err)
	}
	return &a, nil
}

func (s *Store) GetAdminByUsername(ctx context.Context, username string) (*model.Admin, error) {
	var a model.Admin
	err := s.pool.QueryRow(ctx, `
		select id::text, username, password_hash, created_at, updated_at
		from public.admins
		where username = $1
	`, username).Scan(
		&a.ID,
		&a.Username,
		&a.PasswordHash,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		return nil, mapPgErr(err)
	}
	return &a, nil
}

func (s *Store) CountAdmins(ctx context.Context) (int, error) {
	var n int
	err := s.pool.QueryRow(ctx, `select count(*) from public.admins`).Scan(&n)
	if err != nil {
		return 0, mapPgErr(err)
	}
	return n, nil
}
