package repository

import (
	"Salary-Dashboard/internal/app/config"
	"Salary-Dashboard/internal/app/dataset"
	"Salary-Dashboard/internal/app/dsn"
	"Salary-Dashboard/internal/app/redis"
	"context"
	"fmt"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Repository struct {
	db          *gorm.DB
	redisClient *redis.Client
	minioClient *minio.Client
	Salary      *SalaryRepository
	Export      *ExportRepository
}

func NewRepository(ctx context.Context, cfg *config.Config) (*Repository, error) {
	var err error
	repo := &Repository{}

	// База нужна только если датасет лежит в Postgres
	if cfg.Dataset.Source == config.SourcePostgres {
		repo.db, err = gorm.Open(postgres.Open(dsn.FromEnv()), &gorm.Config{})
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
	}

	// Инициализируем Redis клиент
	repo.redisClient, err = redis.NewClient(cfg)
	if err != nil {
		logrus.Warnf("Failed to initialize Redis client: %v", err)
		// Продолжаем без кэша
		repo.redisClient = nil
	}

	// Инициализируем MinIO клиент
	if cfg.MinioEnabled {
		repo.minioClient, err = InitMinIOClient(ctx, cfg)
		if err != nil {
			if cfg.Dataset.Source == config.SourceMinio {
				return nil, err
			}
			logrus.Warnf("Failed to initialize MinIO client, exports disabled: %v", err)
			repo.minioClient = nil
		}
	}

	source, err := newSource(cfg, repo.db, repo.minioClient)
	if err != nil {
		repo.Close()
		return nil, err
	}

	var cache DashboardCache
	if repo.redisClient != nil {
		cache = repo.redisClient
	}
	repo.Salary = NewSalaryRepository(source, cache, cfg.CacheTTL)
	if _, err := repo.Salary.Reload(ctx); err != nil {
		repo.Close()
		return nil, err
	}

	repo.Export = NewExportRepository(repo.minioClient, cfg.ExportBucket, minioBaseURL(cfg))

	return repo, nil
}

// NewLocalRepository репозиторий без внешней инфраструктуры: без кэша и выгрузок
func NewLocalRepository(ctx context.Context, source dataset.Source) (*Repository, error) {
	repo := &Repository{
		Salary: NewSalaryRepository(source, nil, 0),
		Export: NewExportRepository(nil, "", ""),
	}
	if _, err := repo.Salary.Reload(ctx); err != nil {
		return nil, err
	}
	return repo, nil
}

// GetRedisClient возвращает Redis клиент
func (r *Repository) GetRedisClient() *redis.Client {
	return r.redisClient
}

// Close закрывает все соединения
func (r *Repository) Close() {
	if r.redisClient != nil {
		if err := r.redisClient.Close(); err != nil {
			logrus.Errorf("Error closing Redis client: %v", err)
		}
	}
	if r.db != nil {
		if sqlDB, err := r.db.DB(); err == nil {
			sqlDB.Close()
		}
	}
}

func newSource(cfg *config.Config, db *gorm.DB, minioClient *minio.Client) (dataset.Source, error) {
	switch cfg.Dataset.Source {
	case config.SourceURL:
		return dataset.NewURLSource(cfg.Dataset.URL), nil
	case config.SourceFile:
		if cfg.Dataset.Path == "" {
			return nil, fmt.Errorf("dataset source %q requires Dataset.Path", cfg.Dataset.Source)
		}
		return &dataset.FileSource{Path: cfg.Dataset.Path}, nil
	case config.SourceMinio:
		return &dataset.MinioSource{Client: minioClient, Bucket: cfg.Dataset.Bucket, Object: cfg.Dataset.Object}, nil
	case config.SourcePostgres:
		return &dataset.PostgresSource{DB: db}, nil
	}
	return nil, fmt.Errorf("unknown dataset source: %s", cfg.Dataset.Source)
}

func InitMinIOClient(ctx context.Context, cfg *config.Config) (*minio.Client, error) {
	minioClient, err := minio.New(cfg.MinioEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinioAccessKey, cfg.MinioSecretKey, ""),
		Secure: cfg.MinioUseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	// Проверяем подключение
	if _, err = minioClient.ListBuckets(ctx); err != nil {
		return nil, fmt.Errorf("minio connection test failed: %w", err)
	}

	// Создаем bucket для выгрузок если не существует
	exists, err := minioClient.BucketExists(ctx, cfg.ExportBucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}

	if !exists {
		err = minioClient.MakeBucket(ctx, cfg.ExportBucket, minio.MakeBucketOptions{})
		if err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	logrus.Info("MinIO client initialized successfully")
	return minioClient, nil
}

func minioBaseURL(cfg *config.Config) string {
	scheme := "http"
	if cfg.MinioUseSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s", scheme, cfg.MinioEndpoint)
}
