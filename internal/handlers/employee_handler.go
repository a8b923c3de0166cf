package handlers

import (
	"errors"
	"net/http"

	"employee-admin/internal/models"
	"employee-admin/internal/store"
	"employee-admin/internal/upload"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// imageField is the fixed multipart field name for the profile image.
const imageField = "image"

type EmployeeHandler struct {
	employees store.EmployeeStore
	uploads   *upload.Store
	log       *zap.Logger
}

func NewEmployeeHandler(employees store.EmployeeStore, uploads *upload.Store, log *zap.Logger) *EmployeeHandler {
	return &EmployeeHandler{employees: employees, uploads: uploads, log: log}
}

// List returns all employee records. No pagination; the dataset is small.
// GET /api/employees
func (h *EmployeeHandler) List(c *gin.Context) {
	list, err := h.employees.List(c.Request.Context())
	if err != nil {
		h.log.Error("list employees failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server error"})
		return
	}
	c.JSON(http.StatusOK, list)
}

// Get returns a single record by id.
// GET /api/employees/:id
func (h *EmployeeHandler) Get(c *gin.Context) {
	emp, err := h.employees.FindByID(c.Request.Context(), c.Param("id"))
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"msg": "Employee not found"})
		return
	}
	if err != nil {
		h.log.Error("get employee failed", zap.String("id", c.Param("id")), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server error"})
		return
	}
	c.JSON(http.StatusOK, emp)
}

// Create validates the form, stores the optional image and inserts a new
// record. Validation runs before anything is written, so a rejected request
// persists nothing.
// POST /api/employees
func (h *EmployeeHandler) Create(c *gin.Context) {
	var in models.CreateEmployeeInput
	if err := c.ShouldBind(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid employee data", "details": err.Error()})
		return
	}

	imagePath := ""
	if fh, err := c.FormFile(imageField); err == nil {
		imagePath, err = h.uploads.Save(fh)
		if err != nil {
			h.log.Error("image upload failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server error"})
			return
		}
	}

	emp := models.Employee{
		Name:        in.Name,
		Email:       in.Email,
		Mobile:      in.Mobile,
		Designation: in.Designation,
		Gender:      in.Gender,
		Course:      in.Course,
		Image:       imagePath,
	}
	if err := h.employees.Insert(c.Request.Context(), &emp); err != nil {
		h.uploads.Remove(imagePath) // don't leak the staged file
		h.log.Error("insert employee failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server error"})
		return
	}
	c.JSON(http.StatusOK, emp)
}

// Update merges the supplied fields over the existing record. A new image is
// staged first; the old file is only removed after the record update commits.
// PUT /api/employees/:id
func (h *EmployeeHandler) Update(c *gin.Context) {
	id := c.Param("id")
	emp, err := h.employees.FindByID(c.Request.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"msg": "Employee not found"})
		return
	}
	if err != nil {
		h.log.Error("load employee failed", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server error"})
		return
	}

	var in models.UpdateEmployeeInput
	if err := c.ShouldBind(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid employee data", "details": err.Error()})
		return
	}

	if in.Name != nil {
		emp.Name = *in.Name
	}
	if in.Email != nil {
		emp.Email = *in.Email
	}
	if in.Mobile != nil {
		emp.Mobile = *in.Mobile
	}
	if in.Designation != nil {
		emp.Designation = *in.Designation
	}
	if in.Gender != nil {
		emp.Gender = *in.Gender
	}
	if in.Course != nil {
		emp.Course = *in.Course
	}

	oldImage := emp.Image
	newImage := ""
	if fh, err := c.FormFile(imageField); err == nil {
		newImage, err = h.uploads.Save(fh)
		if err != nil {
			h.log.Error("image upload failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server error"})
			return
		}
		emp.Image = newImage
	}

	if err := h.employees.Update(c.Request.Context(), emp); err != nil {
		h.uploads.Remove(newImage)
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"msg": "Employee not found"})
			return
		}
		h.log.Error("update employee failed", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server error"})
		return
	}

	if newImage != "" && oldImage != newImage {
		h.uploads.Remove(oldImage)
	}
	c.JSON(http.StatusOK, emp)
}

// Delete removes the record and, best-effort, its image file. Deleting an
// already-deleted id is a 404, not a silent success.
// DELETE /api/employees/:id
func (h *EmployeeHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	emp, err := h.employees.FindByID(c.Request.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"msg": "Employee not found"})
		return
	}
	if err != nil {
		h.log.Error("load employee failed", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server error"})
		return
	}

	if err := h.employees.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"msg": "Employee not found"})
			return
		}
		h.log.Error("delete employee failed", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server error"})
		return
	}

	h.uploads.Remove(emp.Image)
	c.JSON(http.StatusOK, gin.H{"msg": "Employee removed"})
}
