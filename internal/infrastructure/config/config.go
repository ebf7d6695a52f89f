package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,     default=8080"`
	Env      string `env:"ENV,      default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// StorageDriver selects the user store: "file" or "mongo".
	StorageDriver string `env:"STORAGE_DRIVER, default=file"`

	// AuthEnabled guards the /admin surface with JWT + RBAC middleware.
	// The report's own role check applies either way.
	AuthEnabled bool   `env:"AUTH_ENABLED, default=false"`
	JWTSecret   string `env:"JWT_SECRET"`

	File  FileConfig
	Mongo MongoConfig
	Redis RedisConfig
}

type FileConfig struct {
	UsersPath       string `env:"USERS_DB_PATH,       default=data/users_db.json"`
	CredentialsPath string `env:"CREDENTIALS_DB_PATH, default=data/credentials_db.json"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=simpletimeclock"`
}

type RedisConfig struct {
	// Enabled turns on the cross-replica per-user lock. Only useful with
	// the mongo driver; a single replica is already serialized in process.
	Enabled bool   `env:"REDIS_ENABLED, default=false"`
	Addr    string `env:"REDIS_ADDR,    default=localhost:6379"`
	DB      int    `env:"REDIS_DB,      default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
