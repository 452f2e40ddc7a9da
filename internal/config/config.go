package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type DBConfig struct {
	Host     string
	User     string
	Password string
	Name     string
	Port     string
	SSLMode  string
}

type MinioConfig struct {
	Endpoint      string
	AccessKey     string
	SecretKey     string
	UseSSL        bool
	Bucket        string
	PublicBaseURL string
}

type Config struct {
	Port             string
	DB               DBConfig
	RedisAddr        string
	KafkaBroker      string
	JWTSecret        string
	Minio            MinioConfig
	RBACModelPath    string
	RBACPolicyPath   string
	ImportSessionTTL time.Duration
	MaxRetries       int
}

// Load reads .env (if present) and then the process environment.
func Load() (Config, error) {
	_ = godotenv.Load()

	ttl, err := durationEnv("IMPORT_SESSION_TTL", 30*time.Minute)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		Port: getEnv("PORT", "3000"),
		DB: DBConfig{
			Host:     os.Getenv("DB_HOST"),
			User:     os.Getenv("DB_USER"),
			Password: os.Getenv("DB_PASSWORD"),
			Name:     os.Getenv("DB_NAME"),
			Port:     getEnv("DB_PORT", "5432"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		RedisAddr:   getEnv("REDIS_ADDR", "localhost:6379"),
		KafkaBroker: os.Getenv("KAFKA_BROKER"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		Minio: MinioConfig{
			Endpoint:      os.Getenv("MINIO_ENDPOINT"),
			AccessKey:     os.Getenv("MINIO_ACCESS_KEY"),
			SecretKey:     os.Getenv("MINIO_SECRET_KEY"),
			UseSSL:        boolEnv("MINIO_USE_SSL"),
			Bucket:        getEnv("MINIO_BUCKET", "payslips"),
			PublicBaseURL: os.Getenv("MINIO_PUBLIC_BASE_URL"),
		},
		RBACModelPath:    getEnv("RBAC_MODEL_PATH", "config/rbac_model.conf"),
		RBACPolicyPath:   getEnv("RBAC_POLICY_PATH", "config/rbac_policy.csv"),
		ImportSessionTTL: ttl,
		MaxRetries:       5,
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func boolEnv(key string) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	return err == nil && v
}

func durationEnv(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}
