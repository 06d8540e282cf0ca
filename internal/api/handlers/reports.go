package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"osm-hvac-report/internal/api/models"
	"osm-hvac-report/internal/data"
	"osm-hvac-report/internal/harvest"
	"osm-hvac-report/internal/osm"
	"osm-hvac-report/internal/report"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// maxModelBytes bounds uploaded model size.
const maxModelBytes = 64 << 20

var reportDescriptions = map[string]string{
	harvest.SizingZonesReport:    "Thermal zone sizing parameters (OS:Sizing:Zone)",
	harvest.EquipmentListsReport: "Zone HVAC equipment lists with per-equipment priorities and fraction schedules",
	harvest.VRFTerminalsReport:   "Variable refrigerant flow zone terminal unit settings",
}

// ReportHandler serves report requests against uploaded models.
type ReportHandler struct {
	cache *data.ModelCache
}

// NewReportHandler creates a handler. A nil cache disables caching.
func NewReportHandler(cache *data.ModelCache) *ReportHandler {
	return &ReportHandler{cache: cache}
}

// ListReports handles GET /api/v1/reports
func (h *ReportHandler) ListReports(c *gin.Context) {
	kinds := harvest.Kinds()
	out := make([]models.ReportInfo, len(kinds))
	for i, k := range kinds {
		out[i] = models.ReportInfo{Kind: k, Description: reportDescriptions[k]}
	}
	c.JSON(http.StatusOK, gin.H{"reports": out})
}

// BuildReport handles POST /api/v1/reports/:kind
//
// The model is sent as a multipart file field named "model". Query
// parameters: version_translator (default true), format (json|csv).
func (h *ReportHandler) BuildReport(c *gin.Context) {
	kind := c.Param("kind")
	if _, ok := reportDescriptions[kind]; !ok {
		abort(c, http.StatusNotFound, "UNKNOWN_REPORT", fmt.Sprintf("unknown report %q", kind))
		return
	}

	translate := true
	if v := c.Query("version_translator"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			abort(c, http.StatusBadRequest, "INVALID_PARAM", "version_translator must be a boolean")
			return
		}
		translate = b
	}
	format := c.DefaultQuery("format", "json")
	if format != "json" && format != "csv" {
		abort(c, http.StatusBadRequest, "INVALID_PARAM", "format must be json or csv")
		return
	}

	raw, err := readModelUpload(c)
	if err != nil {
		abort(c, http.StatusBadRequest, "MISSING_MODEL", err.Error())
		return
	}

	m, err := h.loadModel(raw, translate)
	if err != nil {
		code := "INVALID_MODEL"
		if errors.Is(err, osm.ErrUnsupportedVersion) {
			code = "UNSUPPORTED_VERSION"
		}
		abort(c, http.StatusUnprocessableEntity, code, err.Error())
		return
	}

	t, err := harvest.Build(kind, m)
	if err != nil {
		abort(c, http.StatusInternalServerError, "REPORT_ERROR", err.Error())
		return
	}

	if format == "csv" {
		c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.csv"`, kind))
		c.Header("Content-Type", "text/csv; charset=utf-8")
		c.Status(http.StatusOK)
		if err := report.WriteCSV(c.Writer, t); err != nil {
			log.Error().Err(err).Str("report", kind).Msg("write csv response")
		}
		return
	}

	rows, err := report.MarshalRows(t)
	if err != nil {
		abort(c, http.StatusInternalServerError, "REPORT_ERROR", err.Error())
		return
	}
	resp := models.ReportResponse{
		Kind:     kind,
		Columns:  t.Columns,
		RowCount: t.Len(),
		Rows:     json.RawMessage(rows),
	}
	resp.Version, _ = m.Version()
	if b, ok := m.Building(); ok {
		resp.Building, _ = b.Name()
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ReportHandler) loadModel(raw []byte, translate bool) (*osm.Model, error) {
	key := data.GenerateCacheKey(raw, translate)
	if m, ok := h.cache.Get(key); ok {
		return m, nil
	}
	m, err := osm.LoadBytes(raw, translate)
	if err != nil {
		return nil, err
	}
	h.cache.Set(key, m)
	return m, nil
}

func readModelUpload(c *gin.Context) ([]byte, error) {
	fh, err := c.FormFile("model")
	if err != nil {
		return nil, fmt.Errorf("multipart field \"model\" is required")
	}
	if fh.Size > maxModelBytes {
		return nil, fmt.Errorf("model exceeds %d bytes", maxModelBytes)
	}
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(io.LimitReader(f, maxModelBytes))
}

func abort(c *gin.Context, status int, code, msg string) {
	c.JSON(status, models.ErrorResponse{
		Error: models.ErrorDetail{Code: code, Message: msg},
	})
}
