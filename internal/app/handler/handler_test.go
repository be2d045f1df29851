package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"Salary-Dashboard/internal/app/config"
	"Salary-Dashboard/internal/app/ds"
	"Salary-Dashboard/internal/app/repository"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedSource struct{}

func (fixedSource) Load(ctx context.Context) ([]ds.Salary, int, error) {
	return []ds.Salary{
		{Year: 2023, Seniority: "senior", Contract: "integral", CompanySize: "grande", Title: "Data Scientist", USD: 150000, Remote: "remoto", ResidenceISO3: "USA"},
		{Year: 2023, Seniority: "pleno", Contract: "integral", CompanySize: "media", Title: "Data Engineer", USD: 100000, Remote: "presencial", ResidenceISO3: "BRA"},
		{Year: 2024, Seniority: "junior", Contract: "freelancer", CompanySize: "pequena", Title: "Data Analyst", USD: 50000, Remote: "hibrido", ResidenceISO3: "BRA"},
		{Year: 2024, Seniority: "senior", Contract: "integral", CompanySize: "grande", Title: "Data Scientist", USD: 170000, Remote: "remoto", ResidenceISO3: "DEU"},
	}, 1, nil
}

func (fixedSource) String() string { return "fixed" }

func newTestRouter(t *testing.T, cfg *config.Config) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo, err := repository.NewLocalRepository(context.Background(), fixedSource{})
	require.NoError(t, err)

	router := gin.New()
	require.NoError(t, RegisterHandlers(router, repo, cfg))
	return router
}

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:       "secret",
		JWTAccessExpire: time.Hour,
		AdminKey:        "admin-key",
	}
}

func do(router *gin.Engine, method, target, token string, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v))
}

func TestHealth(t *testing.T) {
	router := newTestRouter(t, testConfig())

	w := do(router, http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestGetFilters(t *testing.T) {
	router := newTestRouter(t, testConfig())

	w := do(router, http.MethodGet, "/api/filters", "", "")
	require.Equal(t, http.StatusOK, w.Code)

	var options ds.FilterOptions
	decode(t, w, &options)
	assert.Equal(t, []int{2023, 2024}, options.Years)
	assert.Equal(t, []string{"junior", "pleno", "senior"}, options.Seniorities)
	assert.Equal(t, []string{"freelancer", "integral"}, options.Contracts)
	assert.Equal(t, []string{"grande", "media", "pequena"}, options.CompanySizes)
	assert.Equal(t, []string{"hibrido", "presencial", "remoto"}, options.Remote)
}

func TestGetDashboard(t *testing.T) {
	router := newTestRouter(t, testConfig())

	t.Run("no parameters selects everything", func(t *testing.T) {
		w := do(router, http.MethodGet, "/api/dashboard", "", "")
		require.Equal(t, http.StatusOK, w.Code)

		var d ds.Dashboard
		decode(t, w, &d)
		assert.False(t, d.Empty)
		assert.Equal(t, 4, d.Metrics.Total)
		assert.Equal(t, 170000.0, d.Metrics.MaxUSD)
		assert.Equal(t, "Data Scientist", d.Metrics.TopTitle)
		assert.Equal(t, "$117,500", d.Display.MeanUSD)
		assert.NotEmpty(t, d.Version)
	})

	t.Run("repeated and comma separated values", func(t *testing.T) {
		w := do(router, http.MethodGet, "/api/dashboard?senioridade=senior,pleno&contrato=integral&ano=2023&ano=2024", "", "")
		require.Equal(t, http.StatusOK, w.Code)

		var d ds.Dashboard
		decode(t, w, &d)
		assert.Equal(t, 3, d.Metrics.Total)
	})

	t.Run("empty parameter selects nothing", func(t *testing.T) {
		w := do(router, http.MethodGet, "/api/dashboard?ano=", "", "")
		require.Equal(t, http.StatusOK, w.Code)

		var d ds.Dashboard
		decode(t, w, &d)
		assert.True(t, d.Empty)
		assert.Equal(t, 0, d.Metrics.Total)
		assert.Equal(t, "N/A", d.Metrics.TopTitle)
		assert.Equal(t, "$0", d.Display.MeanUSD)
		assert.NotEmpty(t, d.Warnings.TopTitles)
	})

	t.Run("invalid year", func(t *testing.T) {
		w := do(router, http.MethodGet, "/api/dashboard?ano=abc", "", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "invalid ano parameter")
	})
}

func TestGetRecords(t *testing.T) {
	router := newTestRouter(t, testConfig())

	w := do(router, http.MethodGet, "/api/records?tamanho_empresa=grande&page=2&page_size=1", "", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp ds.PaginatedSalariesResponse
	decode(t, w, &resp)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, 2024, resp.Data[0].Year)
	assert.Equal(t, ds.PaginationInfo{Page: 2, PageSize: 1, Total: 2, TotalPages: 2}, resp.Pagination)
	assert.Equal(t, []string{"grande"}, resp.Filters.CompanySizes)

	// пустая выборка отличается от отсутствующего параметра
	w = do(router, http.MethodGet, "/api/records?ano=", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	var raw struct {
		Data    []ds.Salary                `json:"data"`
		Filters map[string]json.RawMessage `json:"filters"`
	}
	decode(t, w, &raw)
	assert.Empty(t, raw.Data)
	assert.JSONEq(t, `[]`, string(raw.Filters["ano"]))
	assert.JSONEq(t, `null`, string(raw.Filters["senioridade"]))

	w = do(router, http.MethodGet, "/api/records?page=x", "", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestExportCSV(t *testing.T) {
	router := newTestRouter(t, testConfig())

	w := do(router, http.MethodGet, "/api/records/export.csv?remoto=remoto", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "attachment")
	assert.Contains(t, w.Header().Get("Content-Type"), "text/csv")

	lines := strings.Split(strings.TrimSpace(w.Body.String()), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "ano,"))
}

func TestGetDataset(t *testing.T) {
	router := newTestRouter(t, testConfig())

	w := do(router, http.MethodGet, "/api/dataset", "", "")
	require.Equal(t, http.StatusOK, w.Code)

	var info ds.DatasetInfo
	decode(t, w, &info)
	assert.Equal(t, "fixed", info.Source)
	assert.Equal(t, 4, info.Rows)
	assert.Equal(t, 1, info.Skipped)
}

func TestIndex(t *testing.T) {
	router := newTestRouter(t, testConfig())

	w := do(router, http.MethodGet, "/?ano=2024", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, pageTitle)
	assert.Contains(t, body, "$110,000")

	w = do(router, http.MethodGet, "/?ano=x", "", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAdminFlow(t *testing.T) {
	router := newTestRouter(t, testConfig())

	// Без токена админские маршруты закрыты
	w := do(router, http.MethodPost, "/api/dataset/reload", "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = do(router, http.MethodPost, "/api/auth/token", "", `{"key":"wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = do(router, http.MethodPost, "/api/auth/token", "", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(router, http.MethodPost, "/api/auth/token", "", `{"key":"admin-key"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var token ds.TokenResponse
	decode(t, w, &token)
	assert.Equal(t, "Bearer", token.TokenType)
	assert.Equal(t, ds.RoleAdmin, token.Role)
	require.NotEmpty(t, token.AccessToken)

	w = do(router, http.MethodPost, "/api/dataset/reload", token.AccessToken, "")
	require.Equal(t, http.StatusOK, w.Code)
	var info ds.DatasetInfo
	decode(t, w, &info)
	assert.Equal(t, 4, info.Rows)

	// MinIO не настроен
	w = do(router, http.MethodPost, "/api/exports?ano=2024", token.AccessToken, "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	w = do(router, http.MethodPost, "/api/exports?ano=bad", token.AccessToken, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(router, http.MethodPost, "/api/auth/logout", token.AccessToken, "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestIssueTokenDisabled(t *testing.T) {
	cfg := testConfig()
	cfg.AdminKey = ""
	router := newTestRouter(t, cfg)

	w := do(router, http.MethodPost, "/api/auth/token", "", `{"key":""}`)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
