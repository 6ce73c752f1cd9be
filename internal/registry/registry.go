package registry

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/TechWithDunamix/govevote/internal/model"
	"github.com/TechWithDunamix/govevote/internal/store"
)

var (
	ErrNothingToVerify  = errors.New("nothing_to_verify")
	ErrDocumentMismatch = errors.New("document_mismatch")
)

// DuplicateIdentityError reports which identity document collided, so the
// caller can tell the registrant whether the PVC number or the NIN was
// already taken. That leak is intentional.
type DuplicateIdentityError struct {
	Field string // "pvc" or "nin"
}

func (e *DuplicateIdentityError) Error() string {
	return fmt.Sprintf("duplicate %s", e.Field)
}

// Verifier checks identity documents against an external authority and
// reports whether they hold up. The registry only records the answer.
type Verifier interface {
	VerifyPVC(ctx context.Context, pvcNumber string) (bool, error)
	VerifyNIN(ctx context.Context, nin string) (bool, error)
}

// Registry owns voter records: registration with identity-uniqueness
// enforcement, admin CRUD, and verification-state updates.
type Registry struct {
	store    store.Store
	verifier Verifier
}

func New(st store.Store, v Verifier) *Registry {
	return &Registry{store: st, verifier: v}
}

type Candidate struct {
	FullName       string `json:"full_name"`
	State          string `json:"state"`
	LGA            string `json:"lga"`
	Ward           string `json:"ward"`
	SenatorialZone string `json:"senatorial_zone"`
	PollingUnit    string `json:"polling_unit"`
	PVCNumber      string `json:"pvc_number"`
	NIN            string `json:"nin"`
}

func (c *Candidate) trim() {
	c.FullName = strings.TrimSpace(c.FullName)
	c.State = strings.TrimSpace(c.State)
	c.LGA = strings.TrimSpace(c.LGA)
	c.Ward = strings.TrimSpace(c.Ward)
	c.SenatorialZone = strings.TrimSpace(c.SenatorialZone)
	c.PollingUnit = strings.TrimSpace(c.PollingUnit)
	c.PVCNumber = strings.TrimSpace(c.PVCNumber)
	c.NIN = strings.TrimSpace(c.NIN)
}

func (c Candidate) validate() error {
	for _, f := range []struct{ name, value string }{
		{"full_name", c.FullName},
		{"state", c.State},
		{"lga", c.LGA},
		{"ward", c.Ward},
		{"senatorial_zone", c.SenatorialZone},
		{"polling_unit", c.PollingUnit},
		{"pvc_number", c.PVCNumber},
		{"nin", c.NIN},
	} {
		if f.value == "" {
			return fmt.Errorf("%s is required", f.name)
		}
	}
	return nil
}

// Register creates a voter with both verification flags false. The PVC and
// NIN lookups are a fast-path rejection only; the store's unique constraints
// are the authoritative guard, and a constraint violation at insert time is
// reported as the same duplicate-identity error.
func (r *Registry) Register(ctx context.Context, c Candidate) (model.Voter, error) {
	c.trim()
	if err := c.validate(); err != nil {
		return model.Voter{}, err
	}

	if _, err := r.store.GetVoterByPVC(ctx, c.PVCNumber); err == nil {
		return model.Voter{}, &DuplicateIdentityError{Field: "pvc"}
	} else if !errors.Is(err, store.ErrNotFound) {
		return model.Voter{}, err
	}
	if _, err := r.store.GetVoterByNIN(ctx, c.NIN); err == nil {
		return model.Voter{}, &DuplicateIdentityError{Field: "nin"}
	} else if !errors.Is(err, store.ErrNotFound) {
		return model.Voter{}, err
	}

	v, err := r.store.CreateVoter(ctx, model.Voter{
		FullName:       c.FullName,
		State:          c.State,
		LGA:            c.LGA,
		Ward:           c.Ward,
		SenatorialZone: c.SenatorialZone,
		PollingUnit:    c.PollingUnit,
		PVCNumber:      c.PVCNumber,
		NIN:            c.NIN,
	})
	if err != nil {
		return model.Voter{}, translateDuplicate(err)
	}
	return v, nil
}

func (r *Registry) List(ctx context.Context) ([]model.Voter, error) {
	return r.store.ListVoters(ctx)
}

func (r *Registry) Get(ctx context.Context, id string) (*model.Voter, error) {
	return r.store.GetVoter(ctx, id)
}

// Update applies a sparse patch. Identity fields are updatable; the store
// re-checks uniqueness against every record except this one.
func (r *Registry) Update(ctx context.Context, id string, p store.VoterPatch) (*model.Voter, error) {
	v, err := r.store.UpdateVoter(ctx, id, p)
	if err != nil {
		return nil, translateDuplicate(err)
	}
	return v, nil
}

func (r *Registry) Delete(ctx context.Context, id string) error {
	return r.store.DeleteVoter(ctx, id)
}

func translateDuplicate(err error) error {
	switch {
	case errors.Is(err, store.ErrDuplicatePVC):
		return &DuplicateIdentityError{Field: "pvc"}
	case errors.Is(err, store.ErrDuplicateNIN):
		return &DuplicateIdentityError{Field: "nin"}
	}
	return err
}

// VerificationRequest names the documents to verify. A supplied number must
// match the one on record; verification never doubles as an update.
type VerificationRequest struct {
	PVCNumber *string `json:"pvc_number,omitempty"`
	NIN       *string `json:"nin,omitempty"`
}

type VerificationResult struct {
	PVCVerified *bool  `json:"pvc_verified,omitempty"`
	NINVerified *bool  `json:"nin_verified,omitempty"`
	Message     string `json:"message"`
}

// Verify consults the external verifier for each requested document and
// records the outcome. This is the only path that mutates the verification
// flags.
func (r *Registry) Verify(ctx context.Context, id string, req VerificationRequest) (VerificationResult, error) {
	var res VerificationResult

	if req.PVCNumber == nil && req.NIN == nil {
		return res, ErrNothingToVerify
	}

	voter, err := r.store.GetVoter(ctx, id)
	if err != nil {
		return res, err
	}

	var patch store.VoterPatch
	if req.PVCNumber != nil {
		if strings.TrimSpace(*req.PVCNumber) != voter.PVCNumber {
			return res, ErrDocumentMismatch
		}
		ok, err := r.verifier.VerifyPVC(ctx, voter.PVCNumber)
		if err != nil {
			return res, fmt.Errorf("verify pvc: %w", err)
		}
		patch.PVCVerified = &ok
		res.PVCVerified = &ok
	}
	if req.NIN != nil {
		if strings.TrimSpace(*req.NIN) != voter.NIN {
			return res, ErrDocumentMismatch
		}
		ok, err := r.verifier.VerifyNIN(ctx, voter.NIN)
		if err != nil {
			return res, fmt.Errorf("verify nin: %w", err)
		}
		patch.NINVerified = &ok
		res.NINVerified = &ok
	}

	if _, err := r.store.UpdateVoter(ctx, id, patch); err != nil {
		return res, err
	}
	res.Message = "verification recorded"
	return res, nil
}
