package memory

import (
	"context"
	"testing"

	"github.com/TechWithDunamix/govevote/internal/model"
	"github.com/TechWithDunamix/govevote/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAdmin(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	a, err := s.CreateAdmin(ctx, model.Admin{Username: "oversight", PasswordHash: "hash"})
	assert.NoError(t, err)
	assert.NotEmpty(t, a.ID)
	assert.NotZero(t, a.CreatedAt)
	assert.NotZero(t, a.UpdatedAt)

	// Duplicate username
	_, err = s.CreateAdmin(ctx, model.Admin{Username: "oversight", PasswordHash: "other"})
	assert.ErrorIs(t, err, store.ErrConflict)

	// Usernames are case-sensitive; a different casing is a different admin.
	_, err = s.CreateAdmin(ctx, model.Admin{Username: "Oversight", PasswordHash: "other"})
	assert.NoError(t, err)

	// Missing username
	_, err = s.CreateAdmin(ctx, model.Admin{PasswordHash: "hash"})
	assert.Error(t, err)
}

func TestGetAdmin(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	a, err := s.CreateAdmin(ctx, model.Admin{Username: "oversight", PasswordHash: "hash"})
	require.NoError(t, err)

	byID, err := s.GetAdminByID(ctx, a.ID)
	assert.NoError(t, err)
	assert.Equal(t, a.Username, byID.Username)

	byName, err := s.GetAdminByUsername(ctx, "oversight")
	assert.NoError(t, err)
	assert.Equal(t, a.ID, byName.ID)

	_, err = s.GetAdminByID(ctx, "missing")
	assert.ErrorIs(t, err, store.ErrNotFound)
	_, err = s.GetAdminByUsername(ctx, "missing")
	assert.ErrorIs(t, err, store.ErrNotFound)

	n, err := s.CountAdmins(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 1, n)
}

func testVoter(pvc, nin string) model.Voter {
	return model.Voter{
		FullName:       "Adaeze Okafor",
		State:          "Anambra",
		LGA:            "Awka South",
		Ward:           "Amawbia",
		SenatorialZone: "Anambra Central",
		PollingUnit:    "PU 004",
		PVCNumber:      pvc,
		NIN:            nin,
	}
}

func TestCreateVoter(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	v, err := s.CreateVoter(ctx, testVoter("PVC1000001", "11111111111"))
	assert.NoError(t, err)
	assert.NotEmpty(t, v.ID)
	assert.False(t, v.PVCVerified)
	assert.False(t, v.NINVerified)

	_, err = s.CreateVoter(ctx, testVoter("PVC1000001", "22222222222"))
	assert.ErrorIs(t, err, store.ErrDuplicatePVC)

	_, err = s.CreateVoter(ctx, testVoter("PVC2000002", "11111111111"))
	assert.ErrorIs(t, err, store.ErrDuplicateNIN)

	_, err = s.CreateVoter(ctx, testVoter("", "33333333333"))
	assert.Error(t, err)
	_, err = s.CreateVoter(ctx, testVoter("PVC3000003", ""))
	assert.Error(t, err)
}

func TestLookupVoter(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	v, err := s.CreateVoter(ctx, testVoter("PVC1000001", "11111111111"))
	require.NoError(t, err)

	byID, err := s.GetVoter(ctx, v.ID)
	assert.NoError(t, err)
	assert.Equal(t, v.PVCNumber, byID.PVCNumber)

	byPVC, err := s.GetVoterByPVC(ctx, "PVC1000001")
	assert.NoError(t, err)
	assert.Equal(t, v.ID, byPVC.ID)

	byNIN, err := s.GetVoterByNIN(ctx, "11111111111")
	assert.NoError(t, err)
	assert.Equal(t, v.ID, byNIN.ID)

	_, err = s.GetVoter(ctx, "missing")
	assert.ErrorIs(t, err, store.ErrNotFound)
	_, err = s.GetVoterByPVC(ctx, "missing")
	assert.ErrorIs(t, err, store.ErrNotFound)
	_, err = s.GetVoterByNIN(ctx, "missing")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestListVoters(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	_, err := s.CreateVoter(ctx, testVoter("PVC1000001", "11111111111"))
	require.NoError(t, err)
	_, err = s.CreateVoter(ctx, testVoter("PVC2000002", "22222222222"))
	require.NoError(t, err)

	out, err := s.ListVoters(ctx)
	assert.NoError(t, err)
	assert.Len(t, out, 2)
}

func TestUpdateVoter(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	a, err := s.CreateVoter(ctx, testVoter("PVC1000001", "11111111111"))
	require.NoError(t, err)
	b, err := s.CreateVoter(ctx, testVoter("PVC2000002", "22222222222"))
	require.NoError(t, err)

	ward := "Nibo"
	verified := true
	updated, err := s.UpdateVoter(ctx, a.ID, store.VoterPatch{Ward: &ward, PVCVerified: &verified})
	assert.NoError(t, err)
	assert.Equal(t, "Nibo", updated.Ward)
	assert.True(t, updated.PVCVerified)
	// Untouched fields survive a sparse patch.
	assert.Equal(t, a.FullName, updated.FullName)
	assert.Equal(t, a.NIN, updated.NIN)

	// Identity keys collide against other records but not against self.
	_, err = s.UpdateVoter(ctx, b.ID, store.VoterPatch{PVCNumber: &a.PVCNumber})
	assert.ErrorIs(t, err, store.ErrDuplicatePVC)
	_, err = s.UpdateVoter(ctx, b.ID, store.VoterPatch{NIN: &a.NIN})
	assert.ErrorIs(t, err, store.ErrDuplicateNIN)
	_, err = s.UpdateVoter(ctx, b.ID, store.VoterPatch{PVCNumber: &b.PVCNumber, NIN: &b.NIN})
	assert.NoError(t, err)

	_, err = s.UpdateVoter(ctx, "missing", store.VoterPatch{Ward: &ward})
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestDeleteVoter(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	v, err := s.CreateVoter(ctx, testVoter("PVC1000001", "11111111111"))
	require.NoError(t, err)

	assert.ErrorIs(t, s.DeleteVoter(ctx, "missing"), store.ErrNotFound)
	assert.NoError(t, s.DeleteVoter(ctx, v.ID))

	_, err = s.GetVoter(ctx, v.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
	assert.ErrorIs(t, s.DeleteVoter(ctx, v.ID), store.ErrNotFound)
}
