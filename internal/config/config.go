package config

import (
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// AppConfig holds everything the process needs from the environment.
// Loaded once at startup and passed down; nothing reads os.Getenv after that.
type AppConfig struct {
	Port          string        `env:"PORT" envDefault:"5000"`
	DatabaseURL   string        `env:"DATABASE_URL,required,notEmpty"`
	JWTSecret     string        `env:"JWT_SECRET,required,notEmpty"`
	AdminUsername string        `env:"DEFAULT_ADMIN_USERNAME,required,notEmpty"`
	AdminPassword string        `env:"DEFAULT_ADMIN_PASSWORD,required,notEmpty"`
	UploadDir     string        `env:"UPLOAD_DIR" envDefault:"./uploads"`
	LogPath       string        `env:"LOG_PATH" envDefault:"./logs/app.log"`
	TokenTTL      time.Duration `env:"TOKEN_TTL" envDefault:"1h"`
}

func Load() (AppConfig, error) {
	_ = godotenv.Load() // load .env if present
	var cfg AppConfig
	if err := env.Parse(&cfg); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}
