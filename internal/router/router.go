package router

import (
	"net/http"

	"employee-admin/internal/handlers"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Deps struct {
	Auth      *handlers.AuthHandler
	Employees *handlers.EmployeeHandler
	Guard     gin.HandlerFunc
	UploadDir string
	Pool      *pgxpool.Pool // nil in tests
}

func Setup(r *gin.Engine, deps Deps) {
	// health (also verifies DB connectivity)
	r.GET("/health", func(c *gin.Context) {
		if deps.Pool != nil {
			var one int
			if err := deps.Pool.QueryRow(c.Request.Context(), "select 1").Scan(&one); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"status": "db_error"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// stored profile images
	r.Static("/uploads", deps.UploadDir)

	api := r.Group("/api")
	api.POST("/auth/login", deps.Auth.Login)

	emp := api.Group("/employees", deps.Guard)
	emp.GET("", deps.Employees.List)
	emp.POST("", deps.Employees.Create)
	emp.GET("/:id", deps.Employees.Get)
	emp.PUT("/:id", deps.Employees.Update)
	emp.DELETE("/:id", deps.Employees.Delete)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Route not found"})
	})
}
