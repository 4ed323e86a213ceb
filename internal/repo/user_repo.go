package repo

import (
	"context"
	"sync"

	dom "crewboard/internal/domain"
	"crewboard/internal/store"
)

// UserDocument is the shape of the bootstrap users file.
type UserDocument struct {
	Users []dom.User `json:"users"`
}

// UserRepo provides read-only access to the user reference data.
type UserRepo interface {
	List(ctx context.Context) ([]dom.User, error)
	GetByName(ctx context.Context, name string) (dom.User, error)
	Reload(ctx context.Context) error
}

// FileUserRepo reads users from the bootstrap document. The system
// never mutates users, so there is no save path.
type FileUserRepo struct {
	file *store.File[UserDocument]

	mu    sync.RWMutex
	users []dom.User
}

func NewFileUserRepo(file *store.File[UserDocument]) *FileUserRepo {
	r := &FileUserRepo{file: file}
	r.users = file.Load(UserDocument{}).Users
	return r
}

func (r *FileUserRepo) List(ctx context.Context) ([]dom.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]dom.User, len(r.users))
	copy(out, r.users)
	return out, nil
}

// GetByName matches names exactly, case-sensitively.
func (r *FileUserRepo) GetByName(ctx context.Context, name string) (dom.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.Name == name {
			return u, nil
		}
	}
	return dom.User{}, ErrNotFound
}

func (r *FileUserRepo) Reload(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users = r.file.Load(UserDocument{}).Users
	return nil
}
