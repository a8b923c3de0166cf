package handlers

import (
	"errors"
	"net/http"

	"employee-admin/internal/auth"
	"employee-admin/internal/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AuthHandler struct {
	auth *auth.Service
	log  *zap.Logger
}

func NewAuthHandler(svc *auth.Service, log *zap.Logger) *AuthHandler {
	return &AuthHandler{auth: svc, log: log}
}

// Login authenticates the admin and returns a JWT token.
// POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var in models.LoginRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Username and password are required"})
		return
	}

	token, err := h.auth.Login(c.Request.Context(), in.Username, in.Password)
	switch {
	case errors.Is(err, auth.ErrUnknownUser):
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
	case errors.Is(err, auth.ErrInvalidCredentials):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid credentials"})
	case err != nil:
		h.log.Error("login failed", zap.String("username", in.Username), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
	default:
		c.JSON(http.StatusOK, gin.H{"token": token})
	}
}
