package api

import (
	"net/http"

	"github.com/gorilla/mux"
)

// NewRouter builds the HTTP API router over h.
func NewRouter(h *Handler) *mux.Router {
	r := mux.NewRouter()
	r.Use(h.withIdentity)
	r.Use(h.logRequests)

	r.HandleFunc("/health", h.Health).Methods(http.MethodGet)
	r.HandleFunc("/register", h.Register).Methods(http.MethodPost)
	r.HandleFunc("/login", h.Login).Methods(http.MethodPost)
	r.HandleFunc("/users", h.ListUsers).Methods(http.MethodGet)
	r.HandleFunc("/profiles/{username}", h.GetProfile).Methods(http.MethodGet)
	r.HandleFunc("/profile/bio", h.UpdateBio).Methods(http.MethodPut)
	r.HandleFunc("/posts", h.ListPosts).Methods(http.MethodGet)
	r.HandleFunc("/posts", h.CreatePost).Methods(http.MethodPost)
	r.HandleFunc("/messages/{peer}", h.GetHistory).Methods(http.MethodGet)
	r.HandleFunc("/messages/{peer}", h.SendMessage).Methods(http.MethodPost)
	r.HandleFunc("/calls/{peer}", h.StartCall).Methods(http.MethodPost)
	return r
}
