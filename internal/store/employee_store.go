package store

import (
	"context"
	"errors"
	"time"

	"employee-admin/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresEmployeeStore struct {
	pool *pgxpool.Pool
}

func NewPostgresEmployeeStore(pool *pgxpool.Pool) *PostgresEmployeeStore {
	return &PostgresEmployeeStore{pool: pool}
}

const employeeColumns = `id, name, email, mobile, designation, gender, course, image, created_date`

func (s *PostgresEmployeeStore) List(ctx context.Context) ([]models.Employee, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+employeeColumns+` FROM employees ORDER BY created_date DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]models.Employee, 0)
	for rows.Next() {
		var emp models.Employee
		if err := rows.Scan(&emp.ID, &emp.Name, &emp.Email, &emp.Mobile,
			&emp.Designation, &emp.Gender, &emp.Course, &emp.Image, &emp.CreatedDate); err != nil {
			return nil, err
		}
		list = append(list, emp)
	}
	return list, rows.Err()
}

func (s *PostgresEmployeeStore) FindByID(ctx context.Context, id string) (*models.Employee, error) {
	var emp models.Employee
	err := s.pool.QueryRow(ctx,
		`SELECT `+employeeColumns+` FROM employees WHERE id=$1`, id).
		Scan(&emp.ID, &emp.Name, &emp.Email, &emp.Mobile,
			&emp.Designation, &emp.Gender, &emp.Course, &emp.Image, &emp.CreatedDate)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &emp, nil
}

func (s *PostgresEmployeeStore) Insert(ctx context.Context, emp *models.Employee) error {
	emp.ID = uuid.NewString()
	emp.CreatedDate = time.Now().UTC()
	_, err := s.pool.Exec(ctx, `
		INSERT INTO employees (`+employeeColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		emp.ID, emp.Name, emp.Email, emp.Mobile,
		emp.Designation, emp.Gender, emp.Course, emp.Image, emp.CreatedDate)
	return err
}

func (s *PostgresEmployeeStore) Update(ctx context.Context, emp *models.Employee) error {
	ct, err := s.pool.Exec(ctx, `
		UPDATE employees
		SET name=$2, email=$3, mobile=$4, designation=$5, gender=$6, course=$7, image=$8
		WHERE id=$1`,
		emp.ID, emp.Name, emp.Email, emp.Mobile,
		emp.Designation, emp.Gender, emp.Course, emp.Image)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *PostgresEmployeeStore) Delete(ctx context.Context, id string) error {
	ct, err := s.pool.Exec(ctx, `DELETE FROM employees WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
