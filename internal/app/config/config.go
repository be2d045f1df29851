package config

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Источники датасета
const (
	SourceURL      = "url"
	SourceFile     = "file"
	SourceMinio    = "minio"
	SourcePostgres = "postgres"
)

const DefaultDatasetURL = "https://raw.githubusercontent.com/vqrca/dashboard_salarios_dados/refs/heads/main/dados-imersao-final.csv"

type DatasetConfig struct {
	Source string
	URL    string
	Path   string
	Bucket string
	Object string
}

type Config struct {
	ServiceHost string
	ServicePort int
	LogLevel    string

	Dataset  DatasetConfig
	CacheTTL time.Duration

	// JWT Configuration
	JWTSecret       string
	JWTAccessExpire time.Duration
	AdminKey        string

	// Redis Configuration
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int

	// MinIO Configuration
	MinioEnabled   bool
	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioUseSSL    bool
	ExportBucket   string
}

func NewConfig() (*Config, error) {
	// Загружаем .env файл
	_ = godotenv.Load()

	// Загружаем TOML конфигурацию
	configName := "config"
	if os.Getenv("CONFIG_NAME") != "" {
		configName = os.Getenv("CONFIG_NAME")
	}

	v := viper.New()
	v.SetConfigName(configName)
	v.SetConfigType("toml")
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		v.AddConfigPath(path)
	}
	v.AddConfigPath("config")
	v.AddConfigPath(".")

	v.SetDefault("ServiceHost", "0.0.0.0")
	v.SetDefault("ServicePort", 8080)
	v.SetDefault("LogLevel", "info")
	v.SetDefault("CacheTTL", "10m")
	v.SetDefault("Dataset.Source", SourceURL)
	v.SetDefault("Dataset.URL", DefaultDatasetURL)
	v.SetDefault("Dataset.Bucket", "salary-datasets")
	v.SetDefault("Dataset.Object", "dados-imersao-final.csv")
	v.SetDefault("ExportBucket", "salary-exports")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
		log.Warnf("config file %q not found, using defaults", configName)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}

	// Переопределения из окружения
	if src := os.Getenv("DATASET_SOURCE"); src != "" {
		cfg.Dataset.Source = src
	}
	if url := os.Getenv("DATASET_URL"); url != "" {
		cfg.Dataset.URL = url
	}
	if path := os.Getenv("DATASET_PATH"); path != "" {
		cfg.Dataset.Path = path
	}

	switch cfg.Dataset.Source {
	case SourceURL, SourceFile, SourceMinio, SourcePostgres:
	default:
		return nil, errors.New("unknown dataset source: " + cfg.Dataset.Source)
	}

	// Загружаем JWT конфигурацию из .env
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		jwtSecret = "your-default-secret-key-for-development-change-in-production"
		log.Warn("Using default JWT secret - change in production!")
	}
	cfg.JWTSecret = jwtSecret
	cfg.AdminKey = os.Getenv("ADMIN_KEY")

	accessExpire := 24 * time.Hour
	if exp := os.Getenv("JWT_ACCESS_EXPIRE"); exp != "" {
		if parsed, err := time.ParseDuration(exp); err == nil {
			accessExpire = parsed
		}
	}
	cfg.JWTAccessExpire = accessExpire

	// Redis конфигурация из .env
	cfg.RedisHost = getEnv("REDIS_HOST", "localhost")
	cfg.RedisPort = getEnv("REDIS_PORT", "6379")
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", "")

	redisDB := 0
	if dbStr := os.Getenv("REDIS_DB"); dbStr != "" {
		if db, err := strconv.Atoi(dbStr); err == nil {
			redisDB = db
		}
	}
	cfg.RedisDB = redisDB

	// MinIO конфигурация из .env
	cfg.MinioEndpoint = getEnv("MINIO_ENDPOINT", "localhost:9000")
	cfg.MinioAccessKey = getEnv("MINIO_ACCESS_KEY", "minio")
	cfg.MinioSecretKey = getEnv("MINIO_SECRET_KEY", "minio124")
	cfg.MinioUseSSL = getEnv("MINIO_USE_SSL", "false") == "true"
	if enabled := os.Getenv("MINIO_ENABLED"); enabled != "" {
		cfg.MinioEnabled = enabled == "true"
	}
	if cfg.Dataset.Source == SourceMinio {
		cfg.MinioEnabled = true
	}

	log.Info("config parsed")

	return cfg, nil
}

// getEnv вспомогательная функция для получения environment variables
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
