package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/fhuszti/portfolio-ms-go/internal/db"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	StorageMinio = "minio"
	StorageLocal = "local"
)

type Settings struct {
	MariaDBDSN      string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ServerPort      int

	StorageDriver    string
	MinioEndpoint    string
	MinioAccessKey   string
	MinioSecretKey   string
	MinioUseSSL      bool
	MinioBucket      string
	LocalStorageRoot string

	RedisAddr     string
	RedisPassword string

	JWTPublicKey string
	JWTIssuer    string
	JWTAudience  string

	MaxUploadSize     int64
	ImageOptimise     bool
	PortfolioCacheTTL time.Duration
	WorkerConcurrency int
}

// MariaDB returns the connection pool settings.
func (s *Settings) MariaDB() db.MariaDbConfig {
	return db.MariaDbConfig{
		DSN:             s.MariaDBDSN,
		MaxOpenConns:    s.MaxOpenConns,
		MaxIdleConns:    s.MaxIdleConns,
		ConnMaxLifetime: s.ConnMaxLifetime,
	}
}

func Load() (*Settings, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file found; proceeding with OS environment variables")
	}

	v := viper.New()
	v.AutomaticEnv()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	if err := v.ReadInConfig(); err != nil {
		log.Printf("Warning: could not read .env file: %v", err)
	}

	v.SetDefault("STORAGE_DRIVER", StorageMinio)
	v.SetDefault("MINIO_BUCKET", "portfolio")
	v.SetDefault("MINIO_USE_SSL", false)
	v.SetDefault("LOCAL_STORAGE_ROOT", "./public")
	v.SetDefault("JWT_ISSUER", "core")
	v.SetDefault("JWT_AUDIENCE", "portfolio")
	v.SetDefault("MAX_UPLOAD_SIZE_MB", 10)
	v.SetDefault("IMAGE_OPTIMISE", true)
	v.SetDefault("PORTFOLIO_CACHE_TTL", 300)
	v.SetDefault("WORKER_CONCURRENCY", 5)

	for _, key := range []string{
		"MARIADB_DSN",
		"MARIADB_MAX_OPEN_CONN",
		"MARIADB_MAX_IDLE_CONNS",
		"MARIADB_CONN_MAX_LIFETIME",
		"SERVER_PORT",
		"REDIS_ADDR",
	} {
		if !v.IsSet(key) {
			return nil, fmt.Errorf("%s is required", key)
		}
	}

	driver := strings.ToLower(v.GetString("STORAGE_DRIVER"))
	switch driver {
	case StorageMinio:
		for _, key := range []string{"MINIO_ENDPOINT", "MINIO_ACCESS_KEY", "MINIO_SECRET_KEY"} {
			if !v.IsSet(key) {
				return nil, fmt.Errorf("%s is required", key)
			}
		}
	case StorageLocal:
	default:
		return nil, fmt.Errorf("STORAGE_DRIVER must be %q or %q, got %q", StorageMinio, StorageLocal, driver)
	}

	maxMB := v.GetInt64("MAX_UPLOAD_SIZE_MB")
	if maxMB <= 0 {
		return nil, fmt.Errorf("MAX_UPLOAD_SIZE_MB must be positive")
	}

	return &Settings{
		MariaDBDSN:      v.GetString("MARIADB_DSN"),
		MaxOpenConns:    v.GetInt("MARIADB_MAX_OPEN_CONN"),
		MaxIdleConns:    v.GetInt("MARIADB_MAX_IDLE_CONNS"),
		ConnMaxLifetime: time.Duration(v.GetInt("MARIADB_CONN_MAX_LIFETIME")) * time.Second,
		ServerPort:      v.GetInt("SERVER_PORT"),

		StorageDriver:    driver,
		MinioEndpoint:    v.GetString("MINIO_ENDPOINT"),
		MinioAccessKey:   v.GetString("MINIO_ACCESS_KEY"),
		MinioSecretKey:   v.GetString("MINIO_SECRET_KEY"),
		MinioUseSSL:      v.GetBool("MINIO_USE_SSL"),
		MinioBucket:      v.GetString("MINIO_BUCKET"),
		LocalStorageRoot: v.GetString("LOCAL_STORAGE_ROOT"),

		RedisAddr:     v.GetString("REDIS_ADDR"),
		RedisPassword: v.GetString("REDIS_PASSWORD"),

		JWTPublicKey: v.GetString("JWT_PUBLIC_KEY"),
		JWTIssuer:    v.GetString("JWT_ISSUER"),
		JWTAudience:  v.GetString("JWT_AUDIENCE"),

		MaxUploadSize:     maxMB << 20,
		ImageOptimise:     v.GetBool("IMAGE_OPTIMISE"),
		PortfolioCacheTTL: time.Duration(v.GetInt("PORTFOLIO_CACHE_TTL")) * time.Second,
		WorkerConcurrency: v.GetInt("WORKER_CONCURRENCY"),
	}, nil
}
