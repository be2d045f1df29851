package repository

import (
	"Salary-Dashboard/internal/app/dataset"
	"Salary-Dashboard/internal/app/ds"
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/sirupsen/logrus"
)

var ErrExportsDisabled = errors.New("exports are disabled: MinIO is not configured")

type ExportRepository struct {
	minioClient *minio.Client
	bucket      string
	baseURL     string
}

func NewExportRepository(minioClient *minio.Client, bucket, baseURL string) *ExportRepository {
	return &ExportRepository{
		minioClient: minioClient,
		bucket:      bucket,
		baseURL:     baseURL,
	}
}

// Enabled сообщает, настроен ли MinIO
func (r *ExportRepository) Enabled() bool {
	return r.minioClient != nil
}

// Export сохраняет выборку в MinIO как CSV под exports/<uuid>.csv
func (r *ExportRepository) Export(ctx context.Context, records []ds.Salary) (ds.ExportInfo, error) {
	if !r.Enabled() {
		return ds.ExportInfo{}, ErrExportsDisabled
	}

	var buf bytes.Buffer
	if err := dataset.Write(&buf, records); err != nil {
		return ds.ExportInfo{}, fmt.Errorf("failed to encode export: %w", err)
	}

	object := fmt.Sprintf("exports/%s.csv", uuid.NewString())
	_, err := r.minioClient.PutObject(ctx, r.bucket, object, &buf, int64(buf.Len()), minio.PutObjectOptions{
		ContentType: "text/csv",
	})
	if err != nil {
		return ds.ExportInfo{}, fmt.Errorf("failed to upload export: %w", err)
	}

	logrus.Infof("Exported %d rows to MinIO: %s/%s", len(records), r.bucket, object)

	return ds.ExportInfo{
		Bucket: r.bucket,
		Object: object,
		URL:    fmt.Sprintf("%s/%s/%s", r.baseURL, r.bucket, object),
		Rows:   len(records),
	}, nil
}
