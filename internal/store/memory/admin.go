package memory

import (
	"context"
	"strings"
	"time"

	"github.com/TechWithDunamix/govevote/internal/model"
	"github.com/TechWithDunamix/govevote/internal/store"
)

func (s *Store) CreateAdmin(_ context.Context, a model.Admin) (model.Admin, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	username := strings.TrimSpace(a.Username)
	if username == "" {
		return model.Admin{}, errWithCode("username_required")
	}

	for _, existing := range s.admins {
		if existing.Username == username {
			return model.Admin{}, store.ErrConflict
		}
	}

	now := time.Now().UTC()
	a.ID = newID()
	a.Username = username
	a.CreatedAt = now
	a.UpdatedAt = now
	s.admins[a.ID] = a
	return a, nil
}

func (s *Store) GetAdminByID(_ context.Context, id string) (*model.Admin, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.admins[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &a, nil
}

func (s *Store) GetAdminByUsername(_ context.Context, username string) (*model.Admin, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, a := range s.admins {
		if a.Username == username {
			return &a, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *Store) CountAdmins(_ context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.admins), nil
}
