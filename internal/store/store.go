package store

import (
	"context"
	"errors"

	"github.com/TechWithDunamix/govevote/internal/model"
)

var (
	ErrNotFound     = errors.New("not_found")
	ErrConflict     = errors.New("conflict")
	ErrDuplicatePVC = errors.New("duplicate_pvc_number")
	ErrDuplicateNIN = errors.New("duplicate_nin")
)

// VoterPatch is a sparse update; nil fields are left unchanged.
type VoterPatch struct {
	FullName       *string `json:"full_name,omitempty"`
	State          *string `json:"state,omitempty"`
	LGA            *string `json:"lga,omitempty"`
	Ward           *string `json:"ward,omitempty"`
	SenatorialZone *string `json:"senatorial_zone,omitempty"`
	PollingUnit    *string `json:"polling_unit,omitempty"`
	PVCNumber      *string `json:"pvc_number,omitempty"`
	NIN            *string `json:"nin,omitempty"`
	PVCVerified    *bool   `json:"is_pvc_verified,omitempty"`
	NINVerified    *bool   `json:"is_nin_verified,omitempty"`
}

type Store interface {
	CreateAdmin(ctx context.Context, a model.Admin) (model.Admin, error)
	GetAdminByID(ctx context.Context, id string) (*model.Admin, error)
	GetAdminByUsername(ctx context.Context, username string) (*model.Admin, error)
	CountAdmins(ctx context.Context) (int, error)

	CreateVoter(ctx context.Context, v model.Voter) (model.Voter, error)
	ListVoters(ctx context.Context) ([]model.Voter, error)
	GetVoter(ctx context.Context, id string) (*model.Voter, error)
	GetVoterByPVC(ctx context.Context, pvcNumber string) (*model.Voter, error)
	GetVoterByNIN(ctx context.Context, nin string) (*model.Voter, error)
	UpdateVoter(ctx context.Context, id string, p VoterPatch) (*model.Voter, error)
	DeleteVoter(ctx context.Context, id string) error
}
