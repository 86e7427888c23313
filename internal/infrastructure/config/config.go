package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string        `env:"PORT,      default=3333"`
	Env       string        `env:"ENV,       default=development"`
	JWTSecret string        `env:"JWT_SECRET"`
	TokenTTL  time.Duration `env:"TOKEN_TTL, default=24h"`
	LogLevel  string        `env:"LOG_LEVEL, default=info"`

	Mongo   MongoConfig
	Redis   RedisConfig
	Uploads UploadsConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=backoffice"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// UploadsConfig controls where avatar files land on disk and under which
// URL prefix they are served back.
type UploadsConfig struct {
	Dir     string `env:"UPLOADS_DIR,      default=uploads"`
	BaseURL string `env:"UPLOADS_BASE_URL, default=/uploads"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
