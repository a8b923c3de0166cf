package models

import "time"

// Employee is a single record in the store. JSON field names match what the
// frontend expects (`_id`, `createdDate`).
type Employee struct {
	ID          string    `json:"_id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Mobile      string    `json:"mobile"`
	Designation string    `json:"designation"`
	Gender      string    `json:"gender"`
	Course      string    `json:"course"`
	Image       string    `json:"image"` // relative URL like /uploads/<name>, empty when absent
	CreatedDate time.Time `json:"createdDate"`
}

// CreateEmployeeInput binds the multipart form of POST /api/employees.
// The image file is read separately from the `image` form field.
type CreateEmployeeInput struct {
	Name        string `form:"name" binding:"required"`
	Email       string `form:"email" binding:"required,email"`
	Mobile      string `form:"mobile" binding:"required"`
	Designation string `form:"designation" binding:"required,oneof=HR Manager Sales"`
	Gender      string `form:"gender" binding:"required,oneof=Male Female"`
	Course      string `form:"course" binding:"required,oneof=MCA BCA BSC BTech"`
}

// UpdateEmployeeInput binds the multipart form of PUT /api/employees/:id.
// Every field is optional; nil means "leave unchanged".
type UpdateEmployeeInput struct {
	Name        *string `form:"name"`
	Email       *string `form:"email" binding:"omitempty,email"`
	Mobile      *string `form:"mobile"`
	Designation *string `form:"designation" binding:"omitempty,oneof=HR Manager Sales"`
	Gender      *string `form:"gender" binding:"omitempty,oneof=Male Female"`
	Course      *string `form:"course" binding:"omitempty,oneof=MCA BCA BSC BTech"`
}
