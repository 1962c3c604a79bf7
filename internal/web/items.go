package web

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/g-s-k/wear/internal/imaging"
	"github.com/g-s-k/wear/internal/model"
	"github.com/g-s-k/wear/internal/store"
)

// maxFormBytes caps form-encoded request bodies.
const maxFormBytes = 32 << 10

// maxPhotoBytes caps multipart photo uploads.
const maxPhotoBytes = 5 << 20

// IndexPage handles GET /.
func (s *Server) IndexPage(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var order store.SortColumn
	if sortParam := query.Get("sort"); sortParam != "" {
		order, _ = store.ParseSortColumn(sortParam)
	}
	descending := query.Get("descending") == "true"

	garments, err := store.ListGarments(r.Context(), s.DB, order, !descending)
	if err != nil {
		// Render an empty list rather than failing the page.
		slog.Error("failed to list garments", "error", err)
	}

	now := time.Now().UTC()
	views := make([]GarmentView, len(garments))
	for i, g := range garments {
		views[i] = NewGarmentView(g, now)
	}

	s.Templates.Render(w, "index.html", &struct {
		PageData
		Items      []GarmentView
		NumItems   int
		Sort       string
		Descending bool
	}{
		PageData:   PageData{Title: "wear"},
		Items:      views,
		NumItems:   len(views),
		Sort:       string(order),
		Descending: descending,
	})
}

// ItemNewPage handles GET /item/new.
func (s *Server) ItemNewPage(w http.ResponseWriter, r *http.Request) {
	s.Templates.Render(w, "item_new.html", &struct {
		PageData
		GarmentView
		Edit bool
	}{
		PageData:    PageData{Title: "New garment"},
		GarmentView: GarmentView{Color: model.DefaultColor},
	})
}

// ItemCreateSubmit handles POST /item.
func (s *Server) ItemCreateSubmit(w http.ResponseWriter, r *http.Request) {
	garment, ok := parseGarmentForm(w, r)
	if !ok {
		return
	}
	if garment.Name == "" {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	if _, err := store.CreateGarment(r.Context(), s.DB, garment); err != nil {
		slog.Error("failed to create garment", "error", err)
		http.NotFound(w, r)
		return
	}

	slog.Info("garment created", "name", garment.Name)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// ItemEditPage handles GET /item/{id}.
func (s *Server) ItemEditPage(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	garment, err := store.GetGarment(r.Context(), s.DB, id)
	if err != nil {
		slog.Error("failed to get garment", "error", err)
		http.NotFound(w, r)
		return
	}
	if garment == nil {
		http.NotFound(w, r)
		return
	}

	s.Templates.Render(w, "item_edit.html", &struct {
		PageData
		GarmentView
		Edit bool
	}{
		PageData:    PageData{Title: garment.Name},
		GarmentView: NewGarmentView(*garment, time.Now().UTC()),
		Edit:        true,
	})
}

// ItemUpdateSubmit handles POST /item/{id}.
func (s *Server) ItemUpdateSubmit(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	garment, ok := parseGarmentForm(w, r)
	if !ok {
		return
	}
	garment.ID = id

	if _, err := store.UpdateGarment(r.Context(), s.DB, garment); err != nil {
		slog.Error("failed to update garment", "error", err)
		http.NotFound(w, r)
		return
	}

	slog.Info("garment updated", "id", id, "name", garment.Name)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// ItemIncrementSubmit handles POST /item/{id}/increment.
func (s *Server) ItemIncrementSubmit(w http.ResponseWriter, r *http.Request) {
	s.logEvent(w, r, "wear logged", store.LogWear)
}

// ItemResetSubmit handles POST /item/{id}/reset.
func (s *Server) ItemResetSubmit(w http.ResponseWriter, r *http.Request) {
	s.logEvent(w, r, "wash logged", store.LogWash)
}

// ItemRemoveSubmit handles POST /item/{id}/remove.
func (s *Server) ItemRemoveSubmit(w http.ResponseWriter, r *http.Request) {
	s.logEvent(w, r, "garment removed", store.DeleteGarment)
}

// ItemPhotoSubmit handles POST /item/{id}/photo.
func (s *Server) ItemPhotoSubmit(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxPhotoBytes)
	if err := r.ParseMultipartForm(maxPhotoBytes); err != nil {
		http.Error(w, "file too large", http.StatusBadRequest)
		return
	}

	file, _, err := r.FormFile("photo")
	if err != nil {
		http.Error(w, "photo required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	data, mime, err := imaging.ProcessPhoto(file)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := store.SetGarmentPhoto(r.Context(), s.DB, id, data, mime); err != nil {
		slog.Error("failed to save photo", "error", err)
		http.NotFound(w, r)
		return
	}

	slog.Info("garment photo uploaded", "id", id)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// ItemPhotoGet handles GET /item/{id}/photo.
func (s *Server) ItemPhotoGet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	data, mime, err := store.GetGarmentPhoto(r.Context(), s.DB, id)
	if err != nil {
		slog.Error("failed to get photo", "error", err)
		http.NotFound(w, r)
		return
	}
	if data == nil {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", mime)
	w.Header().Set("Content-Disposition", "inline")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	if _, err := w.Write(data); err != nil {
		slog.Error("failed to write photo response", "error", err)
	}
}

// logEvent runs a single-id store mutation and redirects home. A zero
// affected-row count is a silent no-op.
func (s *Server) logEvent(w http.ResponseWriter, r *http.Request, msg string, op func(ctx context.Context, db *sql.DB, id int64) (int64, error)) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	affected, err := op(r.Context(), s.DB, id)
	if err != nil {
		slog.Error("store operation failed", "id", id, "error", err)
		http.NotFound(w, r)
		return
	}
	if affected > 0 {
		slog.Info(msg, "id", id)
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// pathID parses the {id} path segment, writing a 400 on failure.
func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

// parseGarmentForm decodes a form-encoded garment body, applying field
// defaults. Writes a 400 and returns false on malformed or oversized bodies.
func parseGarmentForm(w http.ResponseWriter, r *http.Request) (*model.Garment, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return nil, false
	}

	color := r.PostForm.Get("color")
	if color == "" {
		color = model.DefaultColor
	}

	return &model.Garment{
		Name:        r.PostForm.Get("name"),
		Description: r.PostForm.Get("description"),
		Color:       color,
		Tags:        model.ParseTags(r.PostForm.Get("tags")),
	}, true
}
