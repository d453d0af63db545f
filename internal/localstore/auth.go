package localstore

import (
	"context"
	"time"

	repo "tasktrack/internal/auth/repository"
	"tasktrack/internal/model"
	"tasktrack/pkg/log"
)

type authRepository struct {
	s *Store
	l log.Logger
}

// AuthRepository exposes the store through the auth domain's Repository port.
func (s *Store) AuthRepository() repo.Repository {
	return &authRepository{s: s, l: s.l}
}

func (r *authRepository) CreateUser(ctx context.Context, opt repo.CreateUserOptions) (model.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.users.NextID++
	user := model.User{
		ID:             r.s.users.NextID,
		Email:          opt.Email,
		Username:       opt.Username,
		HashedPassword: opt.HashedPassword,
		OAuthProvider:  opt.OAuthProvider,
		OAuthID:        opt.OAuthID,
		CreatedAt:      time.Now(),
	}
	r.s.users.Users = append(r.s.users.Users, user)

	if err := r.s.writeJSON(r.s.usersPath(), r.s.users); err != nil {
		r.l.Errorf(ctx, "localstore.CreateUser save: %v", err)
		return model.User{}, repo.ErrFailedToInsertUser
	}
	return user, nil
}

func (r *authRepository) GetOneUser(ctx context.Context, opt repo.GetOneUserOptions) (model.User, error) {
	if opt.ID == 0 && opt.Email == "" && (opt.OAuthProvider == "" || opt.OAuthID == "") {
		return model.User{}, repo.ErrFailedToGetUser
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, u := range r.s.users.Users {
		if opt.ID != 0 && u.ID != opt.ID {
			continue
		}
		if opt.Email != "" && u.Email != opt.Email {
			continue
		}
		if opt.OAuthProvider != "" && (u.OAuthProvider != opt.OAuthProvider || u.OAuthID != opt.OAuthID) {
			continue
		}
		return u, nil
	}
	return model.User{}, nil
}
