package sidenav

import (
	"net/http"
	"time"

	json "github.com/json-iterator/go"
	g "maragu.dev/gomponents"

	navauth "github.com/xraph/sidenav/auth"
)

// manifestResponse is the nav.json payload.
type manifestResponse struct {
	Title       string          `json:"title"`
	Groups      []ResolvedGroup `json:"groups"`
	GeneratedAt time.Time       `json:"generated_at"`
}

// handleIndex serves the navigation page around the request's content.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	var content g.Node
	if s.content != nil {
		content = s.content(r)
	}

	user := navauth.UserFromContext(r.Context())

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")

	if err := s.renderer.WritePage(r.Context(), w, user, content); err != nil {
		s.logger.Error("failed to write page", Error(err))
	}
}

// handleManifest returns the resolved navigation as JSON.
func (s *Server) handleManifest(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "no-cache")

	s.respondJSON(w, manifestResponse{
		Title:       s.renderer.cfg.Title,
		Groups:      s.renderer.Manifest(),
		GeneratedAt: time.Now().UTC(),
	})
}

// handleHealth reports liveness.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, map[string]interface{}{
		"status": "ok",
		"uptime": s.Uptime().String(),
	})
}

// respondJSON writes data as a JSON response.
func (s *Server) respondJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error("failed to encode JSON response", Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}
