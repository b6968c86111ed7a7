package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"smartpark/internal/service"
)

// PaymentsHandlers serves the /api/payments endpoints.
type PaymentsHandlers struct {
	payments *service.PaymentsService
	logger   *zap.Logger
}

// NewPaymentsHandlers builds PaymentsHandlers.
func NewPaymentsHandlers(payments *service.PaymentsService, logger *zap.Logger) *PaymentsHandlers {
	return &PaymentsHandlers{payments: payments, logger: logger}
}

// Record handles POST /api/payments.
func (h *PaymentsHandlers) Record(w http.ResponseWriter, r *http.Request) {
	var req struct {
		TicketID   int64   `json:"ticket_id"`
		AmountPaid float64 `json:"amount_paid"`
		Method     string  `json:"method"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	payment, err := h.payments.Record(r.Context(), service.RecordPaymentInput{
		TicketID:   req.TicketID,
		AmountPaid: req.AmountPaid,
		Method:     req.Method,
	})
	if err != nil {
		h.logger.Debug("record payment rejected", zap.Int64("ticket_id", req.TicketID), zap.Error(err))
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, payment)
}

// List handles GET /api/payments.
func (h *PaymentsHandlers) List(w http.ResponseWriter, r *http.Request) {
	payments, err := h.payments.List(r.Context(), queryLimit(r, 100))
	if err != nil {
		h.logger.Error("list payments failed", zap.Error(err))
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"payments": payments})
}

// Get handles GET /api/payments/{id}.
func (h *PaymentsHandlers) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid payment id")
		return
	}

	payment, err := h.payments.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, payment)
}
