package memory

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/TechWithDunamix/govevote/internal/model"
	"github.com/TechWithDunamix/govevote/internal/store"
)

func (s *Store) CreateVoter(_ context.Context, v model.Voter) (model.Voter, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if strings.TrimSpace(v.PVCNumber) == "" {
		return model.Voter{}, errWithCode("pvc_number_required")
	}
	if strings.TrimSpace(v.NIN) == "" {
		return model.Voter{}, errWithCode("nin_required")
	}

	for _, existing := range s.voters {
		if existing.PVCNumber == v.PVCNumber {
			return model.Voter{}, store.ErrDuplicatePVC
		}
	}
	for _, existing := range s.voters {
		if existing.NIN == v.NIN {
			return model.Voter{}, store.ErrDuplicateNIN
		}
	}

	now := time.Now().UTC()
	v.ID = newID()
	v.PVCVerified = false
	v.NINVerified = false
	v.CreatedAt = now
	v.UpdatedAt = now
	s.voters[v.ID] = v
	return v, nil
}

func (s *Store) ListVoters(_ context.Context) ([]model.Voter, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.Voter, 0, len(s.voters))
	for _, v := range s.voters {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (s *Store) GetVoter(_ context.Context, id string) (*model.Voter, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.voters[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &v, nil
}

func (s *Store) GetVoterByPVC(_ context.Context, pvcNumber string) (*model.Voter, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, v := range s.voters {
		if v.PVCNumber == pvcNumber {
			return &v, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *Store) GetVoterByNIN(_ context.Context, nin string) (*model.Voter, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, v := range s.voters {
		if v.NIN == nin {
			return &v, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *Store) UpdateVoter(_ context.Context, id string, p store.VoterPatch) (*model.Voter, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.voters[id]
	if !ok {
		return nil, store.ErrNotFound
	}

	// Uniqueness is re-checked against every other record when an identity
	// key changes.
	if p.PVCNumber != nil {
		for otherID, other := range s.voters {
			if otherID != id && other.PVCNumber == *p.PVCNumber {
				return nil, store.ErrDuplicatePVC
			}
		}
		v.PVCNumber = *p.PVCNumber
	}
	if p.NIN != nil {
		for otherID, other := range s.voters {
			if otherID != id && other.NIN == *p.NIN {
				return nil, store.ErrDuplicateNIN
			}
		}
		v.NIN = *p.NIN
	}

	if p.FullName != nil {
		v.FullName = *p.FullName
	}
	if p.State != nil {
		v.State = *p.State
	}
	if p.LGA != nil {
		v.LGA = *p.LGA
	}
	if p.Ward != nil {
		v.Ward = *p.Ward
	}
	if p.SenatorialZone != nil {
		v.SenatorialZone = *p.SenatorialZone
	}
	if p.PollingUnit != nil {
		v.PollingUnit = *p.PollingUnit
	}
	if p.PVCVerified != nil {
		v.PVCVerified = *p.PVCVerified
	}
	if p.NINVerified != nil {
		v.NINVerified = *p.NINVerified
	}

	v.UpdatedAt = time.Now().UTC()
	s.voters[id] = v
	return &v, nil
}

func (s *Store) DeleteVoter(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.voters[id]; !ok {
		return store.ErrNotFound
	}
	delete(s.voters, id)
	return nil
}
