package web

import (
	"database/sql"
	"io/fs"
	"log/slog"
	"net/http"

	webembed "github.com/g-s-k/wear/web"
)

// NewRouter creates the web page router with all page routes registered.
func NewRouter(db *sql.DB) (http.Handler, error) {
	templates, err := LoadTemplates()
	if err != nil {
		return nil, err
	}

	s := &Server{
		DB:        db,
		Templates: templates,
	}

	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", s.IndexPage)
	mux.HandleFunc("GET /styles.css", s.Stylesheet)

	mux.HandleFunc("GET /item/new", s.ItemNewPage)
	mux.HandleFunc("POST /item", s.ItemCreateSubmit)
	mux.HandleFunc("GET /item/{id}", s.ItemEditPage)
	mux.HandleFunc("POST /item/{id}", s.ItemUpdateSubmit)
	mux.HandleFunc("POST /item/{id}/increment", s.ItemIncrementSubmit)
	mux.HandleFunc("POST /item/{id}/reset", s.ItemResetSubmit)
	mux.HandleFunc("POST /item/{id}/remove", s.ItemRemoveSubmit)

	mux.HandleFunc("POST /item/{id}/photo", s.ItemPhotoSubmit)
	mux.HandleFunc("GET /item/{id}/photo", s.ItemPhotoGet)

	return mux, nil
}

// Stylesheet handles GET /styles.css from the embedded static files.
func (s *Server) Stylesheet(w http.ResponseWriter, r *http.Request) {
	data, err := fs.ReadFile(webembed.StaticFS(), "styles.css")
	if err != nil {
		slog.Error("failed to read stylesheet", "error", err)
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	if _, err := w.Write(data); err != nil {
		slog.Error("failed to write stylesheet response", "error", err)
	}
}
