package api

import (
	"database/sql"
	"net/http"
)

// Server holds all dependencies for API handlers.
type Server struct {
	DB *sql.DB
}

// NewRouter creates the API router with all routes registered.
func NewRouter(db *sql.DB) http.Handler {
	s := &Server{DB: db}

	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/items", s.ListItems)
	mux.HandleFunc("POST /api/items", s.CreateItem)
	mux.HandleFunc("GET /api/items/{id}", s.GetItem)
	mux.HandleFunc("PUT /api/items/{id}", s.UpdateItem)
	mux.HandleFunc("DELETE /api/items/{id}", s.DeleteItem)
	mux.HandleFunc("POST /api/items/{id}/wear", s.LogWear)
	mux.HandleFunc("POST /api/items/{id}/wash", s.LogWash)

	return mux
}
