package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/go-ddd-recipe-api/internal/domain/entity"
	"github.com/oksasatya/go-ddd-recipe-api/internal/domain/repository"
	"github.com/oksasatya/go-ddd-recipe-api/internal/domain/valueobject"
)

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

const userColumns = `id, name, email, password_hash, email_verified_at,
	password_reset_token, password_reset_token_expires_at, created_at, updated_at`

func scanUser(row pgx.Row) (*entity.User, error) {
	var (
		u     entity.User
		email string
	)
	if err := row.Scan(&u.ID, &u.Name, &email, &u.PasswordHash, &u.EmailVerifiedAt,
		&u.PasswordResetToken, &u.PasswordResetTokenExpiresAt, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, translate(err)
	}
	e := valueobject.CreateEmail(email)
	if e.IsSuccess() {
		u.Email = e.Value()
	}
	return &u, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	if !isUUID(id) {
		return nil, repository.ErrNotFound
	}
	row := r.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	return scanUser(row)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email valueobject.Email) (*entity.User, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE lower(email) = lower($1)`, email.String())
	return scanUser(row)
}

func (r *UserRepository) GetByPasswordResetToken(ctx context.Context, token string) (*entity.User, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE password_reset_token = $1`, token)
	return scanUser(row)
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email valueobject.Email) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE lower(email) = lower($1))`, email.String()).Scan(&exists)
	return exists, err
}

func (r *UserRepository) Add(ctx context.Context, u *entity.User) error {
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now().UTC()
	}
	_, err := r.pool.Exec(ctx, `
		INSERT INTO users (id, name, email, password_hash, email_verified_at,
			password_reset_token, password_reset_token_expires_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, u.ID, u.Name, u.Email.String(), u.PasswordHash, u.EmailVerifiedAt,
		u.PasswordResetToken, u.PasswordResetTokenExpiresAt, u.CreatedAt, u.UpdatedAt)
	return translate(err)
}

func (r *UserRepository) Update(ctx context.Context, u *entity.User) error {
	res, err := r.pool.Exec(ctx, `
		UPDATE users
		SET name = $1, email = $2, password_hash = $3, email_verified_at = $4,
			password_reset_token = $5, password_reset_token_expires_at = $6, updated_at = $7
		WHERE id = $8
	`, u.Name, u.Email.String(), u.PasswordHash, u.EmailVerifiedAt,
		u.PasswordResetToken, u.PasswordResetTokenExpiresAt, u.UpdatedAt, u.ID)
	if err != nil {
		return translate(err)
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *UserRepository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT count(*) FROM users`).Scan(&n)
	return n, err
}

var _ repository.UserRepository = (*UserRepository)(nil)
