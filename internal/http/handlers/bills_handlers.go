package handlers

import (
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"smartpark/internal/export"
	"smartpark/internal/service"
)

// BillsHandlers serves the /api/bills endpoints.
type BillsHandlers struct {
	payments *service.PaymentsService
	logger   *zap.Logger
}

// NewBillsHandlers builds BillsHandlers.
func NewBillsHandlers(payments *service.PaymentsService, logger *zap.Logger) *BillsHandlers {
	return &BillsHandlers{payments: payments, logger: logger}
}

// Get handles GET /api/bills/{paymentId}.
func (h *BillsHandlers) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "paymentId")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid payment id")
		return
	}

	bill, err := h.payments.Bill(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, bill)
}

// PDF handles GET /api/bills/{paymentId}/pdf.
func (h *BillsHandlers) PDF(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "paymentId")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid payment id")
		return
	}

	bill, err := h.payments.Bill(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	data, err := export.BillPDF(bill)
	if err != nil {
		h.logger.Error("bill pdf rendering failed", zap.Int64("payment_id", id), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to render bill")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s.pdf", bill.BillNumber))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
