package auth

import (
	"context"
	"errors"

	"github.com/oksasatya/go-ddd-recipe-api/internal/application/ports"
	"github.com/oksasatya/go-ddd-recipe-api/internal/domain/entity"
	"github.com/oksasatya/go-ddd-recipe-api/internal/domain/repository"
	"github.com/oksasatya/go-ddd-recipe-api/internal/domain/valueobject"
)

// mockUserRepository simulates repository.UserRepository.
// Unset funcs fall back to "not found" lookups and successful writes.
type mockUserRepository struct {
	GetByIDFunc                 func(ctx context.Context, id string) (*entity.User, error)
	GetByEmailFunc              func(ctx context.Context, email valueobject.Email) (*entity.User, error)
	GetByPasswordResetTokenFunc func(ctx context.Context, token string) (*entity.User, error)
	ExistsByEmailFunc           func(ctx context.Context, email valueobject.Email) (bool, error)
	AddFunc                     func(ctx context.Context, u *entity.User) error
	UpdateFunc                  func(ctx context.Context, u *entity.User) error

	updated []*entity.User
}

func (m *mockUserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, repository.ErrNotFound
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email valueobject.Email) (*entity.User, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return nil, repository.ErrNotFound
}

func (m *mockUserRepository) GetByPasswordResetToken(ctx context.Context, token string) (*entity.User, error) {
	if m.GetByPasswordResetTokenFunc != nil {
		return m.GetByPasswordResetTokenFunc(ctx, token)
	}
	return nil, repository.ErrNotFound
}

func (m *mockUserRepository) ExistsByEmail(ctx context.Context, email valueobject.Email) (bool, error) {
	if m.ExistsByEmailFunc != nil {
		return m.ExistsByEmailFunc(ctx, email)
	}
	return false, nil
}

func (m *mockUserRepository) Add(ctx context.Context, u *entity.User) error {
	if m.AddFunc != nil {
		return m.AddFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) Update(ctx context.Context, u *entity.User) error {
	m.updated = append(m.updated, u)
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) Count(ctx context.Context) (int, error) { return 0, nil }

// mockPasswordService hashes by prefixing "hashed:".
type mockPasswordService struct {
	HashFunc    func(plain string) (string, error)
	verifyCalls []string
}

func (m *mockPasswordService) Hash(plain string) (string, error) {
	if m.HashFunc != nil {
		return m.HashFunc(plain)
	}
	return "hashed:" + plain, nil
}

func (m *mockPasswordService) Verify(plain, hash string) bool {
	m.verifyCalls = append(m.verifyCalls, hash)
	return hash == "hashed:"+plain
}

type mockTokenService struct {
	IssueFunc func(u *entity.User) (string, error)
}

func (m *mockTokenService) Issue(u *entity.User) (string, error) {
	if m.IssueFunc != nil {
		return m.IssueFunc(u)
	}
	return "token", nil
}

func (m *mockTokenService) Validate(token string) (*ports.TokenClaims, error) {
	return nil, errors.New("not implemented")
}

type sentReset struct {
	Email string
	Token string
}

type mockEmailService struct {
	SendFunc func(ctx context.Context, email, token string) error
	sent     []sentReset
}

func (m *mockEmailService) SendPasswordReset(ctx context.Context, email, token string) error {
	m.sent = append(m.sent, sentReset{Email: email, Token: token})
	if m.SendFunc != nil {
		return m.SendFunc(ctx, email, token)
	}
	return nil
}

func mustEmail(raw string) valueobject.Email {
	r := valueobject.CreateEmail(raw)
	if r.IsFailure() {
		panic(r.Message())
	}
	return r.Value()
}
