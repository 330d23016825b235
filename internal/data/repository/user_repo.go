package repository

import (
	"context"
	"errors"
	"fmt"

	"cinemahub/internal/data/entity"
	"cinemahub/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type UserRepository interface {
	FindByNIC(ctx context.Context, nic string) (*entity.User, error)

	// GetOrCreate resolves the user by NIC inside the caller's
	// transaction, inserting a new row when absent. The resolved id is
	// written back onto the entity.
	GetOrCreate(ctx context.Context, tx pgx.Tx, user *entity.User) error
}

type userRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewUserRepository(db database.PgxIface, log *zap.Logger) UserRepository {
	return &userRepository{
		db:  db,
		log: log.With(zap.String("repository", "user")),
	}
}

func (r *userRepository) FindByNIC(ctx context.Context, nic string) (*entity.User, error) {
	query := `SELECT user_id, nic, name, email FROM users WHERE nic = $1`

	var user entity.User
	err := r.db.QueryRow(ctx, query, nic).Scan(&user.ID, &user.NIC, &user.Name, &user.Email)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find user by NIC", zap.Error(err), zap.String("nic", nic))
		return nil, fmt.Errorf("find user by NIC %s: %w", nic, err)
	}

	return &user, nil
}

func (r *userRepository) GetOrCreate(ctx context.Context, tx pgx.Tx, user *entity.User) error {
	selectUser := `SELECT user_id FROM users WHERE nic = $1`

	err := tx.QueryRow(ctx, selectUser, user.NIC).Scan(&user.ID)
	if err == nil {
		return nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		r.log.Error("Failed to look up user", zap.Error(err), zap.String("nic", user.NIC))
		return fmt.Errorf("look up user by NIC %s: %w", user.NIC, err)
	}

	insertUser := `
		INSERT INTO users (nic, name, email)
		VALUES ($1, $2, $3)
		RETURNING user_id
	`

	if err := tx.QueryRow(ctx, insertUser, user.NIC, user.Name, user.Email).Scan(&user.ID); err != nil {
		r.log.Error("Failed to create user", zap.Error(err), zap.String("nic", user.NIC))
		return fmt.Errorf("create user %s: %w", user.NIC, err)
	}

	return nil
}
