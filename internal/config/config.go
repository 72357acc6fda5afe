package config

import (
	"crypto"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/golang-jwt/jwt/v4"
)

const jwtSigningAlgorithmEd25519 = "EdDSA"

// Supported storage backends
const (
	StoragePostgres = "postgres"
	StorageMongo    = "mongo"
	StorageRedis    = "redis"
	StorageMemory   = "memory"
)

type HTTPCfg struct {
	Port            int           `env:"HTTP_PORT" envDefault:"3000"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

type LogCfg struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

type StorageCfg struct {
	Backend        string        `env:"STORAGE_BACKEND" envDefault:"postgres"`
	ConnectTimeout time.Duration `env:"STORAGE_CONNECT_TIMEOUT" envDefault:"5s"`
}

type PostgresCfg struct {
	User        string `env:"POSTGRES_USER"`
	Password    string `env:"POSTGRES_PASSWORD"`
	Host        string `env:"POSTGRES_HOST" envDefault:"pg-customers"`
	Port        int    `env:"POSTGRES_PORT" envDefault:"5432"`
	Database    string `env:"POSTGRES_DB" envDefault:"customers"`
	SslMode     string `env:"POSTGRES_SLL_MODE" envDefault:"disable"`
	PoolMaxConn int    `env:"POSTGRES_POOL_MAX_CONN" envDefault:"100"`
}

// DSN builds connection string for pgx
func (c PostgresCfg) DSN() string {
	return fmt.Sprintf(
		"user=%s password=%s host=%s port=%d dbname=%s sslmode=%s pool_max_conns=%d",
		c.User, c.Password, c.Host, c.Port, c.Database, c.SslMode, c.PoolMaxConn,
	)
}

type MongoCfg struct {
	User        string `env:"MONGO_USER"`
	Password    string `env:"MONGO_PASSWORD"`
	Host        string `env:"MONGO_HOST" envDefault:"mongo-customers"`
	Port        int    `env:"MONGO_PORT" envDefault:"27017"`
	Database    string `env:"MONGO_DB" envDefault:"customers"`
	MaxPoolSize int    `env:"MONGO_MAX_POOL_SIZE" envDefault:"100"`
}

// URI builds connection uri for mongo client
func (c MongoCfg) URI() string {
	if c.User == "" {
		return fmt.Sprintf("mongodb://%s:%d/?maxPoolSize=%d", c.Host, c.Port, c.MaxPoolSize)
	}
	return fmt.Sprintf("mongodb://%s:%s@%s:%d/?maxPoolSize=%d", c.User, c.Password, c.Host, c.Port, c.MaxPoolSize)
}

type RedisCfg struct {
	Addr     string `env:"REDIS_ADDR" envDefault:"redis-customers:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
}

type JwtCfg struct {
	PublicKeyFile string `env:"AUTH_JWT_PUBLIC_KEY_FILE"`
	SigningMethod jwt.SigningMethod
	PublicKey     crypto.PublicKey
}

// Enabled reports whether requests must be authorized with jwt
func (c JwtCfg) Enabled() bool {
	return c.PublicKey != nil
}

type Config struct {
	HTTPCfg     HTTPCfg
	LogCfg      LogCfg
	StorageCfg  StorageCfg
	PostgresCfg PostgresCfg
	MongoCfg    MongoCfg
	RedisCfg    RedisCfg
	JwtCfg      JwtCfg
}

// Build reads configuration from environment variables
func Build() (Config, error) {
	var cfg Config

	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse environment variables - %w", err)
	}

	switch cfg.StorageCfg.Backend {
	case StoragePostgres, StorageMongo, StorageRedis, StorageMemory:
	default:
		return cfg, fmt.Errorf("unsupported storage backend %q", cfg.StorageCfg.Backend)
	}

	if cfg.HTTPCfg.Port <= 0 || cfg.HTTPCfg.Port > 65535 {
		return cfg, fmt.Errorf("invalid http port %d", cfg.HTTPCfg.Port)
	}

	if cfg.JwtCfg.PublicKeyFile == "" {
		return cfg, nil
	}

	cfg.JwtCfg.SigningMethod = jwt.GetSigningMethod(jwtSigningAlgorithmEd25519)

	jwtPublicKeyBytes, err := os.ReadFile(cfg.JwtCfg.PublicKeyFile)
	if err != nil {
		return cfg, fmt.Errorf("failed to read public key file for jwt - %w", err)
	}

	jwtPublicKey, err := jwt.ParseEdPublicKeyFromPEM(jwtPublicKeyBytes)
	if err != nil {
		return cfg, fmt.Errorf("failed to parse public key for jwt - %w", err)
	}
	cfg.JwtCfg.PublicKey = jwtPublicKey

	return cfg, nil
}
