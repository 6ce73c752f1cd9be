package memory

import (
	"sync"

	"github.com/TechWithDunamix/govevote/internal/model"
)

// Store is an in-memory implementation of store.Store, used for development
// and tests. All uniqueness checks run under a single mutex, so check-then-act
// sequences are atomic here.
type Store struct {
	mu sync.Mutex

	admins map[string]model.Admin
	voters map[string]model.Voter
}

func NewStore() *Store {
	return &Store{
		admins: make(map[string]model.Admin),
		voters: make(map[string]model.Voter),
	}
}

type errWithCode string

func (e errWithCode) Error() string { return string(e) }
