package dataset

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	"Salary-Dashboard/internal/app/ds"

	"github.com/minio/minio-go/v7"
	"gorm.io/gorm"
)

// Source откуда берется датасет
type Source interface {
	Load(ctx context.Context) ([]ds.Salary, int, error)
	String() string
}

// ==================== HTTP ====================

type URLSource struct {
	URL    string
	Client *http.Client
}

func NewURLSource(url string) *URLSource {
	return &URLSource{
		URL:    url,
		Client: &http.Client{Timeout: 30 * time.Second},
	}
}

func (s *URLSource) Load(ctx context.Context) ([]ds.Salary, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, 0, err
	}

	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch dataset: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, 0, fmt.Errorf("failed to fetch dataset: unexpected status %d", resp.StatusCode)
	}

	return Parse(resp.Body)
}

func (s *URLSource) String() string {
	return s.URL
}

// ==================== Локальный файл ====================

type FileSource struct {
	Path string
}

func (s *FileSource) Load(ctx context.Context) ([]ds.Salary, int, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

func (s *FileSource) String() string {
	return "file://" + s.Path
}

// ==================== MinIO ====================

type MinioSource struct {
	Client *minio.Client
	Bucket string
	Object string
}

func (s *MinioSource) Load(ctx context.Context) ([]ds.Salary, int, error) {
	obj, err := s.Client.GetObject(ctx, s.Bucket, s.Object, minio.GetObjectOptions{})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get dataset object: %w", err)
	}
	defer obj.Close()

	return Parse(obj)
}

func (s *MinioSource) String() string {
	return fmt.Sprintf("minio://%s/%s", s.Bucket, s.Object)
}

// ==================== Postgres ====================

// PostgresSource читает таблицу salaries, заполненную salaryctl import
type PostgresSource struct {
	DB *gorm.DB
}

func (s *PostgresSource) Load(ctx context.Context) ([]ds.Salary, int, error) {
	var records []ds.Salary
	if err := s.DB.WithContext(ctx).Order("id ASC").Find(&records).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to query salaries: %w", err)
	}
	return records, 0, nil
}

func (s *PostgresSource) String() string {
	return "postgres://" + ds.Salary{}.TableName()
}

// Version короткий хэш содержимого, ключ кэша снимка
func Version(records []ds.Salary) string {
	h := sha256.New()
	for _, r := range records {
		h.Write([]byte(strconv.Itoa(r.Year)))
		for _, s := range []string{r.Seniority, r.Contract, r.CompanySize, r.Title, r.Remote, r.ResidenceISO3} {
			h.Write([]byte{0})
			h.Write([]byte(s))
		}
		h.Write([]byte{0})
		h.Write([]byte(strconv.FormatFloat(r.USD, 'g', -1, 64)))
		h.Write([]byte{'\n'})
	}
	return hex.EncodeToString(h.Sum(nil))[:12]
}
