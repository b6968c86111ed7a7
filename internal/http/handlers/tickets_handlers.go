package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"smartpark/internal/service"
)

// TicketsHandlers serves the /api/tickets endpoints.
type TicketsHandlers struct {
	tickets *service.TicketsService
	logger  *zap.Logger
}

// NewTicketsHandlers builds TicketsHandlers.
func NewTicketsHandlers(tickets *service.TicketsService, logger *zap.Logger) *TicketsHandlers {
	return &TicketsHandlers{tickets: tickets, logger: logger}
}

// Open handles POST /api/tickets.
func (h *TicketsHandlers) Open(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Plate  string `json:"plate"`
		RateID int64  `json:"rate_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	ticket, err := h.tickets.Open(r.Context(), service.OpenTicketInput{Plate: req.Plate, RateID: req.RateID})
	if err != nil {
		h.logger.Debug("open ticket rejected", zap.Error(err))
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, ticket)
}

// Complete handles PUT /api/tickets/{id}/complete.
func (h *TicketsHandlers) Complete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid ticket id")
		return
	}

	var req struct {
		Quantity float64 `json:"quantity"`
	}
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}
	}

	ticket, err := h.tickets.Complete(r.Context(), id, req.Quantity)
	if err != nil {
		h.logger.Debug("complete ticket rejected", zap.Int64("ticket_id", id), zap.Error(err))
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ticket)
}

// List handles GET /api/tickets.
func (h *TicketsHandlers) List(w http.ResponseWriter, r *http.Request) {
	tickets, err := h.tickets.List(r.Context(), queryLimit(r, 100))
	if err != nil {
		h.logger.Error("list tickets failed", zap.Error(err))
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"tickets": tickets})
}

// ListActive handles GET /api/tickets/active.
func (h *TicketsHandlers) ListActive(w http.ResponseWriter, r *http.Request) {
	tickets, err := h.tickets.ListActive(r.Context(), queryLimit(r, 100))
	if err != nil {
		h.logger.Error("list active tickets failed", zap.Error(err))
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"tickets": tickets})
}

// Get handles GET /api/tickets/{id}.
func (h *TicketsHandlers) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid ticket id")
		return
	}

	ticket, err := h.tickets.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ticket)
}
