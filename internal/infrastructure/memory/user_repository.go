// Package memory provides process-local repositories used for development
// (STORAGE_DRIVER=memory) and for exercising repository semantics in tests.
package memory

import (
	"context"
	"errors"
	"sync"

	"github.com/oksasatya/go-ddd-recipe-api/internal/domain/entity"
	"github.com/oksasatya/go-ddd-recipe-api/internal/domain/repository"
	"github.com/oksasatya/go-ddd-recipe-api/internal/domain/valueobject"
)

type UserRepository struct {
	mu    sync.RWMutex
	byID  map[string]*entity.User
	order []string
}

func NewUserRepository() *UserRepository {
	return &UserRepository{byID: map[string]*entity.User{}}
}

func cloneUser(u *entity.User) *entity.User {
	c := *u
	if u.EmailVerifiedAt != nil {
		t := *u.EmailVerifiedAt
		c.EmailVerifiedAt = &t
	}
	if u.PasswordResetToken != nil {
		s := *u.PasswordResetToken
		c.PasswordResetToken = &s
	}
	if u.PasswordResetTokenExpiresAt != nil {
		t := *u.PasswordResetTokenExpiresAt
		c.PasswordResetTokenExpiresAt = &t
	}
	if u.UpdatedAt != nil {
		t := *u.UpdatedAt
		c.UpdatedAt = &t
	}
	return &c
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return cloneUser(u), nil
}

func (r *UserRepository) findLocked(match func(*entity.User) bool) *entity.User {
	for _, id := range r.order {
		if u := r.byID[id]; match(u) {
			return u
		}
	}
	return nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email valueobject.Email) (*entity.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	u := r.findLocked(func(u *entity.User) bool { return u.Email.Equals(email) })
	if u == nil {
		return nil, repository.ErrNotFound
	}
	return cloneUser(u), nil
}

func (r *UserRepository) GetByPasswordResetToken(ctx context.Context, token string) (*entity.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	u := r.findLocked(func(u *entity.User) bool {
		return u.PasswordResetToken != nil && *u.PasswordResetToken == token
	})
	if u == nil {
		return nil, repository.ErrNotFound
	}
	return cloneUser(u), nil
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email valueobject.Email) (bool, error) {
	_, err := r.GetByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		return false, nil
	}
	return err == nil, err
}

func (r *UserRepository) Add(ctx context.Context, u *entity.User) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.findLocked(func(x *entity.User) bool { return x.Email.Equals(u.Email) }) != nil {
		return repository.ErrDuplicateEmail
	}
	r.byID[u.ID] = cloneUser(u)
	r.order = append(r.order, u.ID)
	return nil
}

func (r *UserRepository) Update(ctx context.Context, u *entity.User) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[u.ID]; !ok {
		return repository.ErrNotFound
	}
	r.byID[u.ID] = cloneUser(u)
	return nil
}

func (r *UserRepository) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byID), nil
}

var _ repository.UserRepository = (*UserRepository)(nil)
