package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	"smartpark/internal/service"
)

// ReportsHandlers serves the /api/reports endpoints.
type ReportsHandlers struct {
	reports *service.ReportsService
	logger  *zap.Logger
}

// NewReportsHandlers builds ReportsHandlers.
func NewReportsHandlers(reports *service.ReportsService, logger *zap.Logger) *ReportsHandlers {
	return &ReportsHandlers{reports: reports, logger: logger}
}

// Daily handles GET /api/reports/daily?date=YYYY-MM-DD. The date defaults
// to today.
func (h *ReportsHandlers) Daily(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		date = time.Now().UTC().Format("2006-01-02")
	}

	report, err := h.reports.Daily(r.Context(), date)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

// Monthly handles GET /api/reports/monthly/{year}/{month}.
func (h *ReportsHandlers) Monthly(w http.ResponseWriter, r *http.Request) {
	year, month, err := yearMonth(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid year or month")
		return
	}

	report, err := h.reports.Monthly(r.Context(), year, month)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

// MonthlyExport handles GET /api/reports/monthly/{year}/{month}/export.
func (h *ReportsHandlers) MonthlyExport(w http.ResponseWriter, r *http.Request) {
	year, month, err := yearMonth(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid year or month")
		return
	}

	data, err := h.reports.MonthlyXLSX(r.Context(), year, month)
	if err != nil {
		h.logger.Error("monthly export failed", zap.Int("year", year), zap.Int("month", month), zap.Error(err))
		writeServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=report-%04d-%02d.xlsx", year, month))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// Summary handles GET /api/reports/summary.
func (h *ReportsHandlers) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.reports.Summary(r.Context())
	if err != nil {
		h.logger.Error("summary report failed", zap.Error(err))
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

// Trends handles GET /api/reports/trends.
func (h *ReportsHandlers) Trends(w http.ResponseWriter, r *http.Request) {
	trends, err := h.reports.Trends(r.Context())
	if err != nil {
		h.logger.Error("trends report failed", zap.Error(err))
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"trends": trends})
}

func yearMonth(r *http.Request) (int, int, error) {
	year, err := strconv.Atoi(r.PathValue("year"))
	if err != nil {
		return 0, 0, err
	}
	month, err := strconv.Atoi(r.PathValue("month"))
	if err != nil {
		return 0, 0, err
	}
	return year, month, nil
}
