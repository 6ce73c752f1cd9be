package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/TechWithDunamix/govevote/internal/model"
	"github.com/TechWithDunamix/govevote/internal/store"

	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials covers both "unknown username" and "wrong password";
// callers must not be able to tell the two apart.
var ErrInvalidCredentials = errors.New("invalid_credentials")

// dummyHash is compared against when the username does not exist, so both
// failure paths cost one bcrypt comparison.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("govevote-placeholder"), bcrypt.DefaultCost)

// Credentials manages administrator accounts. Password hashes never leave
// this package except inside model.Admin, which hides them from JSON.
type Credentials struct {
	store store.Store
	cost  int
}

func NewCredentials(st store.Store, cost int) *Credentials {
	if cost < bcrypt.MinCost {
		cost = bcrypt.DefaultCost
	}
	return &Credentials{store: st, cost: cost}
}

func (c *Credentials) Create(ctx context.Context, username, password string) (model.Admin, error) {
	username = strings.TrimSpace(username)
	if len(username) < 3 || len(username) > 100 {
		return model.Admin{}, errors.New("username must be 3-100 characters")
	}
	if len(password) < 8 {
		return model.Admin{}, errors.New("password must be at least 8 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), c.cost)
	if err != nil {
		return model.Admin{}, fmt.Errorf("hash password: %w", err)
	}

	return c.store.CreateAdmin(ctx, model.Admin{
		Username:     username,
		PasswordHash: string(hash),
	})
}

func (c *Credentials) Verify(ctx context.Context, username, password string) (*model.Admin, error) {
	admin, err := c.store.GetAdminByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return admin, nil
}

// Bootstrap creates the default administrator when none exist and reports
// whether it did. The default credentials are an operational seam: they must
// be changed right after first startup, not relied on.
func (c *Credentials) Bootstrap(ctx context.Context, username, password string) (bool, error) {
	n, err := c.store.CountAdmins(ctx)
	if err != nil {
		return false, fmt.Errorf("count admins: %w", err)
	}
	if n > 0 {
		return false, nil
	}
	if _, err := c.Create(ctx, username, password); err != nil {
		// Lost a startup race; an admin exists now, which is all we need.
		if errors.Is(err, store.ErrConflict) {
			return false, nil
		}
		return false, fmt.Errorf("create default admin: %w", err)
	}
	return true, nil
}
