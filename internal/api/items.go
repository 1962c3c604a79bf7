package api

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/g-s-k/wear/internal/model"
	"github.com/g-s-k/wear/internal/store"
)

// ListItems handles GET /api/items. Accepts the same sort and descending
// query parameters as the index page.
func (s *Server) ListItems(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var order store.SortColumn
	if sortParam := query.Get("sort"); sortParam != "" {
		var ok bool
		if order, ok = store.ParseSortColumn(sortParam); !ok {
			jsonError(w, http.StatusBadRequest, "unknown sort column")
			return
		}
	}
	descending := query.Get("descending") == "true"

	garments, err := store.ListGarments(r.Context(), s.DB, order, !descending)
	if err != nil {
		slog.Error("failed to list garments", "error", err)
		jsonError(w, http.StatusNotFound, "not found")
		return
	}
	if garments == nil {
		garments = []model.Garment{}
	}

	jsonResponse(w, http.StatusOK, garments)
}

// CreateItem handles POST /api/items.
func (s *Server) CreateItem(w http.ResponseWriter, r *http.Request) {
	var g model.Garment
	if err := decodeJSON(r, &g); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if g.Name == "" {
		jsonError(w, http.StatusBadRequest, "name is required")
		return
	}
	if g.Color == "" {
		g.Color = model.DefaultColor
	}

	id, err := store.CreateGarment(r.Context(), s.DB, &g)
	if err != nil {
		slog.Error("failed to create garment", "error", err)
		jsonError(w, http.StatusNotFound, "not found")
		return
	}

	created, err := store.GetGarment(r.Context(), s.DB, id)
	if err != nil || created == nil {
		slog.Error("failed to load created garment", "id", id, "error", err)
		jsonError(w, http.StatusNotFound, "not found")
		return
	}

	jsonResponse(w, http.StatusCreated, created)
}

// GetItem handles GET /api/items/{id}.
func (s *Server) GetItem(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	g, err := store.GetGarment(r.Context(), s.DB, id)
	if err != nil {
		slog.Error("failed to get garment", "error", err)
		jsonError(w, http.StatusNotFound, "not found")
		return
	}
	if g == nil {
		jsonError(w, http.StatusNotFound, "not found")
		return
	}

	jsonResponse(w, http.StatusOK, g)
}

// UpdateItem handles PUT /api/items/{id}.
func (s *Server) UpdateItem(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var g model.Garment
	if err := decodeJSON(r, &g); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	g.ID = id
	if g.Color == "" {
		g.Color = model.DefaultColor
	}

	affected, err := store.UpdateGarment(r.Context(), s.DB, &g)
	if err != nil {
		slog.Error("failed to update garment", "error", err)
		jsonError(w, http.StatusNotFound, "not found")
		return
	}
	if affected == 0 {
		jsonError(w, http.StatusNotFound, "not found")
		return
	}

	updated, err := store.GetGarment(r.Context(), s.DB, id)
	if err != nil || updated == nil {
		jsonError(w, http.StatusNotFound, "not found")
		return
	}
	jsonResponse(w, http.StatusOK, updated)
}

// DeleteItem handles DELETE /api/items/{id}.
func (s *Server) DeleteItem(w http.ResponseWriter, r *http.Request) {
	s.logEvent(w, r, store.DeleteGarment)
}

// LogWear handles POST /api/items/{id}/wear.
func (s *Server) LogWear(w http.ResponseWriter, r *http.Request) {
	s.logEvent(w, r, store.LogWear)
}

// LogWash handles POST /api/items/{id}/wash.
func (s *Server) LogWash(w http.ResponseWriter, r *http.Request) {
	s.logEvent(w, r, store.LogWash)
}

// logEvent runs a single-id store mutation; a zero affected-row count maps
// to a 404.
func (s *Server) logEvent(w http.ResponseWriter, r *http.Request, op func(ctx context.Context, db *sql.DB, id int64) (int64, error)) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	affected, err := op(r.Context(), s.DB, id)
	if err != nil {
		slog.Error("store operation failed", "id", id, "error", err)
		jsonError(w, http.StatusNotFound, "not found")
		return
	}
	if affected == 0 {
		jsonError(w, http.StatusNotFound, "not found")
		return
	}

	jsonResponse(w, http.StatusNoContent, nil)
}

// pathID parses the {id} path segment, writing a 400 on failure.
func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return id, true
}
