package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/stpnv0/HotelBooker/internal/domain"
)

const userColumns = `id, name, email, password_hash, role, image_url, telegram_chat_id, created_at, updated_at`

type UserRepository struct {
	base
}

func NewUserRepo(db DB, opts ...Option) *UserRepository {
	return &UserRepository{base: newBase(db, opts...)}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	query := `INSERT INTO users (` + userColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.db.ExecWithRetry(ctx, r.strategy, query,
		user.ID, user.Name, user.Email, user.PasswordHash, user.Role,
		user.ImageURL, user.TelegramChatID, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailTaken
		}
		return storeErr("insert user", err)
	}

	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
}

func (r *UserRepository) Update(ctx context.Context, user *domain.User) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	query := `UPDATE users
			  SET name = $2, password_hash = $3, role = $4, image_url = $5,
			      telegram_chat_id = $6, updated_at = $7
			  WHERE id = $1`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query,
		user.ID, user.Name, user.PasswordHash, user.Role,
		user.ImageURL, user.TelegramChatID, user.UpdatedAt,
	)
	if err != nil {
		return storeErr("update user", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return storeErr("user rows affected", err)
	}
	if rows == 0 {
		return domain.ErrUserNotFound
	}

	return nil
}

func (r *UserRepository) getOne(ctx context.Context, query string, arg string) (*domain.User, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, arg)
	if err != nil {
		return nil, storeErr("get user", err)
	}

	var u domain.User
	if err = row.Scan(
		&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role,
		&u.ImageURL, &u.TelegramChatID, &u.CreatedAt, &u.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, storeErr("scan user", err)
	}

	return &u, nil
}
