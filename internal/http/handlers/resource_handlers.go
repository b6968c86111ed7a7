package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// ResourceStore is the storage contract behind a reference-data resource.
type ResourceStore[T any] interface {
	List(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id int64) (*T, error)
	Create(ctx context.Context, item *T) (int64, error)
	Update(ctx context.Context, id int64, item *T) error
	Delete(ctx context.Context, id int64) error
}

// ResourceHandlers serves list/get/create/update/delete for one reference
// table. Customers, vehicles, rates, service points and tasks all share it.
type ResourceHandlers[T any] struct {
	store  ResourceStore[T]
	plural string
	logger *zap.Logger
}

// NewResourceHandlers builds handlers for one resource; plural names the
// collection in list responses ("vehicles", "rates", ...).
func NewResourceHandlers[T any](store ResourceStore[T], plural string, logger *zap.Logger) *ResourceHandlers[T] {
	return &ResourceHandlers[T]{store: store, plural: plural, logger: logger}
}

// List handles GET on the collection.
func (h *ResourceHandlers[T]) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.store.List(r.Context())
	if err != nil {
		h.logger.Error("list failed", zap.String("resource", h.plural), zap.Error(err))
		writeServiceError(w, err)
		return
	}
	if items == nil {
		items = []T{}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{h.plural: items})
}

// Get handles GET on a single item.
func (h *ResourceHandlers[T]) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	item, err := h.store.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

// Create handles POST on the collection and returns the stored row.
func (h *ResourceHandlers[T]) Create(w http.ResponseWriter, r *http.Request) {
	var item T
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	id, err := h.store.Create(r.Context(), &item)
	if err != nil {
		h.logger.Debug("create rejected", zap.String("resource", h.plural), zap.Error(err))
		writeServiceError(w, err)
		return
	}

	created, err := h.store.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// Update handles PUT on a single item and returns the stored row.
func (h *ResourceHandlers[T]) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	var item T
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if err := h.store.Update(r.Context(), id, &item); err != nil {
		writeServiceError(w, err)
		return
	}

	updated, err := h.store.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// Delete handles DELETE on a single item.
func (h *ResourceHandlers[T]) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	if err := h.store.Delete(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "deleted"})
}
