package httpapi

import (
	"net/http"

	"github.com/TechWithDunamix/govevote/internal/auth"
	"github.com/TechWithDunamix/govevote/internal/config"
	"github.com/TechWithDunamix/govevote/internal/registry"
	"github.com/TechWithDunamix/govevote/internal/store"
)

type Server struct {
	cfg      config.Config
	store    store.Store
	creds    *auth.Credentials
	tokens   *auth.Tokens
	registry *registry.Registry
	mux      *http.ServeMux
}

func NewServer(cfg config.Config, st store.Store, creds *auth.Credentials, tokens *auth.Tokens, reg *registry.Registry) *Server {
	s := &Server{
		cfg:      cfg,
		store:    st,
		creds:    creds,
		tokens:   tokens,
		registry: reg,
		mux:      http.NewServeMux(),
	}
	s.registerRoutes()
	return s
}

func (s *Server) Handler() http.Handler {
	var h http.Handler = s.mux
	h = recoverMiddleware(h)
	h = requestIDMiddleware(h)
	h = loggingMiddleware(h)
	h = s.authMiddleware(h)
	h = corsMiddleware(h)
	return h
}

func (s *Server) registerRoutes() {
	s.mux.HandleFunc("/health", s.handleHealth)

	s.mux.HandleFunc("/api/admins/login", s.handleAdminLogin)
	s.mux.HandleFunc("/api/admins/voters", s.handleVotersList)
	s.mux.HandleFunc("/api/admins/voter/{id}", s.handleVoter)
	s.mux.HandleFunc("/api/admins/voter/{id}/verify", s.handleVoterVerify)

	s.mux.HandleFunc("/api/voters", s.handleVoterRegister)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
