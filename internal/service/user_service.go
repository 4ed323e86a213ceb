package service

import (
	"context"
	"errors"

	dom "crewboard/internal/domain"
	"crewboard/internal/repo"
)

var ErrUserNotFound = errors.New("user not found")

// UserService resolves login-by-name against the read-only user list.
type UserService struct {
	repo repo.UserRepo
}

func NewUserService(r repo.UserRepo) *UserService {
	return &UserService{repo: r}
}

// Login finds the user by exact, case-sensitive name match. There are
// no credentials beyond the name.
func (s *UserService) Login(ctx context.Context, name string) (dom.User, error) {
	u, err := s.repo.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return dom.User{}, ErrUserNotFound
		}
		return dom.User{}, err
	}
	return u, nil
}
