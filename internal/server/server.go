package server

import (
	"net/http"

	"github.com/Tomas-vilte/DoraPulse/internal/i18n"
	"github.com/Tomas-vilte/DoraPulse/internal/services/ai"
	"github.com/Tomas-vilte/DoraPulse/internal/services/contributors"
)

// Server expone la superficie HTTP del backend de analytics.
type Server struct {
	router     *http.ServeMux
	gateway    *ai.Gateway
	resolver   *ai.CredentialResolver
	aggregator *contributors.Aggregator
	teams      *contributors.TeamRegistry
	trans      *i18n.Translations
}

// New crea el server y registra todas las rutas.
func New(gateway *ai.Gateway, resolver *ai.CredentialResolver, aggregator *contributors.Aggregator, teams *contributors.TeamRegistry, trans *i18n.Translations) *Server {
	s := &Server{
		router:     http.NewServeMux(),
		gateway:    gateway,
		resolver:   resolver,
		aggregator: aggregator,
		teams:      teams,
		trans:      trans,
	}

	s.initializeRoutes()
	return s
}

func (s *Server) initializeRoutes() {
	s.router.HandleFunc("GET /health", s.handleHealth)
	s.router.HandleFunc("GET /ai/models", s.handleListModels)

	for _, route := range summaryRoutes {
		s.router.HandleFunc("POST "+route.path, s.newSummaryHandler(route))
	}

	s.router.HandleFunc("POST /ai/contributor-summary", s.handleContributorSummary)
	s.router.HandleFunc("POST /ai/dora_agent", s.handleAgent)
	s.router.HandleFunc("GET /teams/{team_id}/contributors", s.handleTeamContributors)
}

// Handler returns the full middleware-wrapped handler.
func (s *Server) Handler() http.Handler {
	return withRequestLogging(s.router)
}
