package postgres

import (
	"context"

	"github.com/TechWithDunamix/govevote/internal/model"
	"github.com/TechWithDunamix/govevote/internal/store"
)

const voterColumns = `
	id::text, full_name, state, lga, ward, senatorial_zone, polling_unit,
	pvc_number, nin, is_pvc_verified, is_nin_verified, created_at, updated_at`

func scanVoter(row interface{ Scan(...any) error }) (model.Voter, error) {
	var v model.Voter
	err := row.Scan(
		&v.ID,
		&v.FullName,
		&v.State,
		&v.LGA,
		&v.Ward,
		&v.SenatorialZone,
		&v.PollingUnit,
		&v.PVCNumber,
		&v.NIN,
		&v.PVCVerified,
		&v.NINVerified,
		&v.CreatedAt,
		&v.UpdatedAt,
	)
	return v, err
}

func (s *Store) CreateVoter(ctx context.Context, v model.Voter) (model.Voter, error) {
	row := s.pool.QueryRow(ctx, `
		insert into public.voters
			(full_name, state, lga, ward, senatorial_zone, polling_unit, pvc_number, nin)
		values ($1, $2, $3, $4, $5, $6, $7, $8)
		returning `+voterColumns,
		v.FullName, v.State, v.LGA, v.Ward, v.SenatorialZone, v.PollingUnit, v.PVCNumber, v.NIN)
	out, err := scanVoter(row)
	if err != nil {
		return model.Voter{}, mapPgErr(err)
	}
	return out, nil
}

func (s *Store) ListVoters(ctx context.Context) ([]model.Voter, error) {
	rows, err := s.pool.Query(ctx, `
		select `+voterColumns+`
		from public.voters
		order by created_at asc
	`)
	if err != nil {
		return nil, mapPgErr(err)
	}
	defer rows.Close()

	var out []model.Voter
	for rows.Next() {
		v, err := scanVoter(rows)
		if err != nil {
			return nil, mapPgErr(err)
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func (s *Store) GetVoter(ctx context.Context, id string) (*model.Voter, error) {
	row := s.pool.QueryRow(ctx, `
		select `+voterColumns+`
		from public.voters
		where id = $1::uuid
	`, id)
	v, err := scanVoter(row)
	if err != nil {
		return nil, mapPgErr(err)
	}
	return &v, nil
}

func (s *Store) GetVoterByPVC(ctx context.Context, pvcNumber string) (*model.Voter, error) {
	row := s.pool.QueryRow(ctx, `
		select `+voterColumns+`
		from public.voters
		where pvc_number = $1
	`, pvcNumber)
	v, err := scanVoter(row)
	if err != nil {
		return nil, mapPgErr(err)
	}
	return &v, nil
}

func (s *Store) GetVoterByNIN(ctx context.Context, nin string) (*model.Voter, error) {
	row := s.pool.QueryRow(ctx, `
		select `+voterColumns+`
		from public.voters
		where nin = $1
	`, nin)
	v, err := scanVoter(row)
	if err != nil {
		return nil, mapPgErr(err)
	}
	return &v, nil
}

func (s *Store) UpdateVoter(ctx context.Context, id string, p store.VoterPatch) (*model.Voter, error) {
	row := s.pool.QueryRow(ctx, `
		update public.voters set
			full_name       = coalesce($2, full_name),
			state           = coalesce($3, state),
			lga             = coalesce($4, lga),
			ward            = coalesce($5, ward),
			senatorial_zone = coalesce($6, senatorial_zone),
			polling_unit    = coalesce($7, polling_unit),
			pvc_number      = coalesce($8, pvc_number),
			nin             = coalesce($9, nin),
			is_pvc_verified = coalesce($10, is_pvc_verified),
			is_nin_verified = coalesce($11, is_nin_verified),
			updated_at      = now()
		where id = $1::uuid
		returning `+voterColumns,
		id, p.FullName, p.State, p.LGA, p.Ward, p.SenatorialZone, p.PollingUnit,
		p.PVCNumber, p.NIN, p.PVCVerified, p.NINVerified)
	v, err := scanVoter(row)
	if err != nil {
		return nil, mapPgErr(err)
	}
	return &v, nil
}

func (s *Store) DeleteVoter(ctx context.Context, id string) error {
	tag, err := s.pool.Exec(ctx, `delete from public.voters where id = $1::uuid`, id)
	if err != nil {
		return mapPgErr(err)
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}
