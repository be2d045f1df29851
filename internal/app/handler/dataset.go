package handler

import (
	"Salary-Dashboard/internal/app/repository"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type DatasetHandler struct {
	repo *repository.Repository
}

func NewDatasetHandler(repo *repository.Repository) *DatasetHandler {
	return &DatasetHandler{
		repo: repo,
	}
}

// GetDataset godoc
// @Summary Get dataset info
// @Description Source, content version and row counts of the loaded snapshot
// @Tags Dataset
// @Produce json
// @Success 200 {object} ds.DatasetInfo
// @Router /dataset [get]
func (h *DatasetHandler) GetDataset(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, h.repo.Salary.Snapshot().Info())
}

// ReloadDataset godoc
// @Summary Reload dataset
// @Description Re-read the configured source and swap the snapshot (admin only)
// @Tags Dataset
// @Security BearerAuth
// @Produce json
// @Success 200 {object} ds.DatasetInfo
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /dataset/reload [post]
func (h *DatasetHandler) ReloadDataset(ctx *gin.Context) {
	snapshot, err := h.repo.Salary.Reload(ctx.Request.Context())
	if err != nil {
		logrus.Error("Failed to reload dataset: ", err)
		ctx.JSON(http.StatusBadGateway, gin.H{"error": "Failed to reload dataset"})
		return
	}

	ctx.JSON(http.StatusOK, snapshot.Info())
}

// CreateExport godoc
// @Summary Export filtered records to MinIO
// @Description Upload the filtered view as CSV to the exports bucket (admin only)
// @Tags Dataset
// @Security BearerAuth
// @Produce json
// @Param ano query []int false "Years" collectionFormat(multi)
// @Param senioridade query []string false "Seniority levels" collectionFormat(multi)
// @Param contrato query []string false "Contract types" collectionFormat(multi)
// @Param tamanho_empresa query []string false "Company sizes" collectionFormat(multi)
// @Param remoto query []string false "Work arrangements" collectionFormat(multi)
// @Success 201 {object} ds.ExportInfo
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /exports [post]
func (h *DatasetHandler) CreateExport(ctx *gin.Context) {
	filters, err := parseFilters(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	info, err := h.repo.Export.Export(ctx.Request.Context(), h.repo.Salary.Filter(filters))
	if errors.Is(err, repository.ErrExportsDisabled) {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		logrus.Error("Failed to export records: ", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export records"})
		return
	}

	ctx.JSON(http.StatusCreated, info)
}
