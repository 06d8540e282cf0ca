package handlers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"osm-hvac-report/internal/api/models"
	"osm-hvac-report/internal/data"
	"osm-hvac-report/internal/harvest"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func upload(t *testing.T, target string, body []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if body != nil {
		fw, err := w.CreateFormFile("model", "model.osm")
		require.NoError(t, err)
		_, err = fw.Write(body)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, target, &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func fixture(t *testing.T) []byte {
	t.Helper()
	raw, err := os.ReadFile("../../osm/testdata/small_office.osm")
	require.NoError(t, err)
	return raw
}

func serve(r http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHealthAndList(t *testing.T) {
	r := NewRouter(nil)

	rec := serve(r, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(r, httptest.NewRequest(http.MethodGet, "/api/v1/reports", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Reports []models.ReportInfo `json:"reports"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Reports, len(harvest.Kinds()))
	for _, r := range body.Reports {
		assert.NotEmpty(t, r.Description, r.Kind)
	}
}

func TestBuildReport_JSON(t *testing.T) {
	r := NewRouter(nil)

	rec := serve(r, upload(t, "/api/v1/reports/"+harvest.EquipmentListsReport, fixture(t)))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		Kind     string           `json:"kind"`
		Version  string           `json:"model_version"`
		Building string           `json:"building"`
		Columns  []string         `json:"columns"`
		RowCount int              `json:"row_count"`
		Rows     []map[string]any `json:"rows"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, harvest.EquipmentListsReport, resp.Kind)
	assert.Equal(t, "3.7.0", resp.Version)
	assert.Equal(t, "Small Office", resp.Building)
	assert.Equal(t, 3, resp.RowCount)
	require.Len(t, resp.Rows, 3)
	assert.Equal(t, "Zone A Equipment List", resp.Rows[0]["Name"])
	assert.Equal(t, float64(2), resp.Rows[0]["HeatingSeq 1"])
	assert.Nil(t, resp.Rows[2]["Equipment 1"])
}

func TestBuildReport_CSVWithoutTranslator(t *testing.T) {
	r := NewRouter(nil)

	rec := serve(r, upload(t, "/api/v1/reports/"+harvest.VRFTerminalsReport+"?format=csv&version_translator=false", fixture(t)))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/csv")

	lines := strings.Split(strings.TrimSpace(rec.Body.String()), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "Handle,Name,Terminal Unit Availability schedule,"))
	assert.Contains(t, lines[1], "VRF Terminal Unit A")
}

func TestBuildReport_Errors(t *testing.T) {
	r := NewRouter(nil)

	cases := []struct {
		name   string
		req    *http.Request
		status int
		code   string
	}{
		{"unknown kind", upload(t, "/api/v1/reports/thermal-zones", fixture(t)), http.StatusNotFound, "UNKNOWN_REPORT"},
		{"bad format", upload(t, "/api/v1/reports/sizing-zones?format=xml", fixture(t)), http.StatusBadRequest, "INVALID_PARAM"},
		{"bad flag", upload(t, "/api/v1/reports/sizing-zones?version_translator=maybe", fixture(t)), http.StatusBadRequest, "INVALID_PARAM"},
		{"missing file", upload(t, "/api/v1/reports/sizing-zones", nil), http.StatusBadRequest, "MISSING_MODEL"},
		{"not a model", upload(t, "/api/v1/reports/sizing-zones", []byte("Version,9.6;\n")), http.StatusUnprocessableEntity, "INVALID_MODEL"},
		{"newer model", upload(t, "/api/v1/reports/sizing-zones", []byte("OS:Version,{00000000-0000-0000-0000-000000000001},9.0.0;\n")), http.StatusUnprocessableEntity, "UNSUPPORTED_VERSION"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := serve(r, tc.req)
			assert.Equal(t, tc.status, rec.Code)
			var body models.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tc.code, body.Error.Code)
		})
	}
}

func TestBuildReport_UsesCache(t *testing.T) {
	cache := data.NewModelCache(time.Minute)
	r := NewRouter(cache)

	for i := 0; i < 2; i++ {
		rec := serve(r, upload(t, "/api/v1/reports/"+harvest.SizingZonesReport, fixture(t)))
		require.Equal(t, http.StatusOK, rec.Code)
	}
	assert.Equal(t, 1, cache.Len())
}

func TestErrorHandlerRecoversPanics(t *testing.T) {
	r := NewRouter(nil)
	r.GET("/boom", func(c *gin.Context) { panic("boom") })

	rec := serve(r, httptest.NewRequest(http.MethodGet, "/boom", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	var body models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "INTERNAL_ERROR", body.Error.Code)
	assert.Equal(t, "boom", body.Error.Message)
}
