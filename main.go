package main

import (
	"context"
	"log"
	"net/http"

	"employee-admin/internal/auth"
	"employee-admin/internal/config"
	"employee-admin/internal/db"
	"employee-admin/internal/handlers"
	"employee-admin/internal/middleware"
	"employee-admin/internal/router"
	"employee-admin/internal/store"
	"employee-admin/internal/upload"
	"employee-admin/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logg := logger.New(cfg.LogPath)
	defer logg.Sync()

	ctx := context.Background()
	pool, err := db.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		logg.Fatal("connect database", zap.Error(err))
	}
	defer pool.Close()

	if err := db.EnsureSchema(ctx, pool); err != nil {
		logg.Fatal("ensure schema", zap.Error(err))
	}

	identities := store.NewPostgresIdentityStore(pool)
	employees := store.NewPostgresEmployeeStore(pool)

	signer := auth.NewTokenSigner(cfg.JWTSecret, cfg.TokenTTL)
	authSvc := auth.NewService(identities, signer, logg)

	// Seeding must finish before the API accepts traffic.
	if err := authSvc.EnsureAdmin(ctx, cfg.AdminUsername, cfg.AdminPassword); err != nil {
		logg.Fatal("seed default admin", zap.Error(err))
	}

	uploads, err := upload.NewStore(cfg.UploadDir, logg)
	if err != nil {
		logg.Fatal("create uploads dir", zap.Error(err))
	}

	r := gin.Default()
	router.Setup(r, router.Deps{
		Auth:      handlers.NewAuthHandler(authSvc, logg),
		Employees: handlers.NewEmployeeHandler(employees, uploads, logg),
		Guard:     middleware.Authenticate(signer),
		UploadDir: cfg.UploadDir,
		Pool:      pool,
	})

	// The SPA is served from another origin.
	handler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowedHeaders: []string{"Authorization", "Content-Type", "x-auth-token"},
	}).Handler(r)

	logg.Info("server listening", zap.String("port", cfg.Port))
	if err := http.ListenAndServe(":"+cfg.Port, handler); err != nil {
		logg.Fatal("server error", zap.Error(err))
	}
}
