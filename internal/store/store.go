// Package store is the persistence boundary: records are found, inserted,
// updated and deleted by id. Handlers only see the interfaces, so tests can
// swap the Postgres implementations for in-memory ones.
package store

import (
	"context"
	"errors"

	"employee-admin/internal/models"
)

// ErrNotFound is returned when no record matches the given id or username.
var ErrNotFound = errors.New("record not found")

type IdentityStore interface {
	FindByUsername(ctx context.Context, username string) (*models.Admin, error)
	Insert(ctx context.Context, admin *models.Admin) error
}

type EmployeeStore interface {
	List(ctx context.Context) ([]models.Employee, error)
	FindByID(ctx context.Context, id string) (*models.Employee, error)
	// Insert assigns the id and creation timestamp.
	Insert(ctx context.Context, emp *models.Employee) error
	Update(ctx context.Context, emp *models.Employee) error
	Delete(ctx context.Context, id string) error
}
