package handler

import (
	"Salary-Dashboard/internal/app/dataset"
	"Salary-Dashboard/internal/app/ds"
	"Salary-Dashboard/internal/app/repository"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const pageTitle = "Dashboard de Salários na Área de Dados"

type DashboardHandler struct {
	repo *repository.Repository
}

func NewDashboardHandler(repo *repository.Repository) *DashboardHandler {
	return &DashboardHandler{
		repo: repo,
	}
}

// Index отдает HTML страницу дашборда с уже посчитанными метриками
func (h *DashboardHandler) Index(ctx *gin.Context) {
	filters, err := parseFilters(ctx)
	if err != nil {
		ctx.String(http.StatusBadRequest, err.Error())
		return
	}

	snapshot := h.repo.Salary.Snapshot()
	dashboard := h.repo.Salary.Dashboard(ctx.Request.Context(), filters)

	ctx.HTML(http.StatusOK, "dashboard.html", gin.H{
		"Title":     pageTitle,
		"Options":   snapshot.Options,
		"Filters":   filters,
		"Dashboard": dashboard,
		"Info":      snapshot.Info(),
	})
}

// GetFilters godoc
// @Summary Get filter options
// @Description Sorted distinct values of every filter; all of them are selected by default
// @Tags Dashboard
// @Produce json
// @Success 200 {object} ds.FilterOptions
// @Router /filters [get]
func (h *DashboardHandler) GetFilters(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, h.repo.Salary.Snapshot().Options)
}

// GetDashboard godoc
// @Summary Get dashboard
// @Description Metrics and chart data for the selected filters. A missing parameter selects every value, an empty one selects none.
// @Tags Dashboard
// @Produce json
// @Param ano query []int false "Years" collectionFormat(multi)
// @Param senioridade query []string false "Seniority levels" collectionFormat(multi)
// @Param contrato query []string false "Contract types" collectionFormat(multi)
// @Param tamanho_empresa query []string false "Company sizes" collectionFormat(multi)
// @Param remoto query []string false "Work arrangements" collectionFormat(multi)
// @Success 200 {object} ds.Dashboard
// @Failure 400 {object} map[string]string
// @Router /dashboard [get]
func (h *DashboardHandler) GetDashboard(ctx *gin.Context) {
	filters, err := parseFilters(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, h.repo.Salary.Dashboard(ctx.Request.Context(), filters))
}

// GetRecords godoc
// @Summary Get filtered records
// @Description Paginated raw table of the filtered view
// @Tags Dashboard
// @Produce json
// @Param ano query []int false "Years" collectionFormat(multi)
// @Param senioridade query []string false "Seniority levels" collectionFormat(multi)
// @Param contrato query []string false "Contract types" collectionFormat(multi)
// @Param tamanho_empresa query []string false "Company sizes" collectionFormat(multi)
// @Param remoto query []string false "Work arrangements" collectionFormat(multi)
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 50, max 500)"
// @Success 200 {object} ds.PaginatedSalariesResponse
// @Failure 400 {object} map[string]string
// @Router /records [get]
func (h *DashboardHandler) GetRecords(ctx *gin.Context) {
	filters, err := parseFilters(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	page, err := intQuery(ctx, "page", 1)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid page parameter"})
		return
	}
	pageSize, err := intQuery(ctx, "page_size", repository.DefaultPageSize)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid page_size parameter"})
		return
	}

	rows, pagination := h.repo.Salary.Records(filters, page, pageSize)

	ctx.JSON(http.StatusOK, ds.PaginatedSalariesResponse{
		Data:       rows,
		Pagination: pagination,
		Filters:    filters,
	})
}

// ExportCSV godoc
// @Summary Download filtered records
// @Description Filtered view as a CSV attachment
// @Tags Dashboard
// @Produce text/csv
// @Param ano query []int false "Years" collectionFormat(multi)
// @Param senioridade query []string false "Seniority levels" collectionFormat(multi)
// @Param contrato query []string false "Contract types" collectionFormat(multi)
// @Param tamanho_empresa query []string false "Company sizes" collectionFormat(multi)
// @Param remoto query []string false "Work arrangements" collectionFormat(multi)
// @Success 200 {string} string "CSV"
// @Failure 400 {object} map[string]string
// @Router /records/export.csv [get]
func (h *DashboardHandler) ExportCSV(ctx *gin.Context) {
	filters, err := parseFilters(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	records := h.repo.Salary.Filter(filters)

	ctx.Header("Content-Type", "text/csv; charset=utf-8")
	ctx.Header("Content-Disposition", `attachment; filename="salarios-filtrados.csv"`)
	ctx.Status(http.StatusOK)

	if err := dataset.Write(ctx.Writer, records); err != nil {
		logrus.Error("Failed to write CSV export: ", err)
	}
}

func intQuery(ctx *gin.Context, name string, defaultValue int) (int, error) {
	raw := ctx.Query(name)
	if raw == "" {
		return defaultValue, nil
	}
	return strconv.Atoi(raw)
}
