package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"smartpark/internal/models"
)

// InventoryStore is the storage contract for fuel stock.
type InventoryStore interface {
	List(ctx context.Context) ([]models.InventoryItem, error)
	SetStock(ctx context.Context, id int64, stockLiters float64) error
}

// InventoryHandlers serves the /api/inventory endpoints.
type InventoryHandlers struct {
	store  InventoryStore
	logger *zap.Logger
}

// NewInventoryHandlers builds InventoryHandlers.
func NewInventoryHandlers(store InventoryStore, logger *zap.Logger) *InventoryHandlers {
	return &InventoryHandlers{store: store, logger: logger}
}

// List handles GET /api/inventory.
func (h *InventoryHandlers) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.store.List(r.Context())
	if err != nil {
		h.logger.Error("list inventory failed", zap.Error(err))
		writeServiceError(w, err)
		return
	}
	if items == nil {
		items = []models.InventoryItem{}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"inventory": items})
}

// SetStock handles PUT /api/inventory/{id}.
func (h *InventoryHandlers) SetStock(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid inventory id")
		return
	}

	var req struct {
		StockLiters float64 `json:"stock_liters"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.StockLiters < 0 {
		writeError(w, http.StatusBadRequest, "stock must not be negative")
		return
	}

	if err := h.store.SetStock(r.Context(), id, req.StockLiters); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "stock updated"})
}
