package store

import (
	"context"
	"errors"

	"employee-admin/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresIdentityStore struct {
	pool *pgxpool.Pool
}

func NewPostgresIdentityStore(pool *pgxpool.Pool) *PostgresIdentityStore {
	return &PostgresIdentityStore{pool: pool}
}

func (s *PostgresIdentityStore) FindByUsername(ctx context.Context, username string) (*models.Admin, error) {
	var admin models.Admin
	err := s.pool.QueryRow(ctx,
		`SELECT id, username, password_hash FROM admins WHERE username=$1`,
		username).Scan(&admin.ID, &admin.Username, &admin.PasswordHash)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

func (s *PostgresIdentityStore) Insert(ctx context.Context, admin *models.Admin) error {
	if admin.ID == "" {
		admin.ID = uuid.NewString()
	}
	_, err := s.pool.Exec(ctx,
		`INSERT INTO admins (id, username, password_hash) VALUES ($1, $2, $3)`,
		admin.ID, admin.Username, admin.PasswordHash)
	return err
}
