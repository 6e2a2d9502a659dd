package http

import (
	"net/http"

	"github.com/MainigB/optcgjourney/internal/config"
	"github.com/MainigB/optcgjourney/internal/metrics"
	"github.com/MainigB/optcgjourney/internal/tracker"
)

func NewServer(store tracker.Store, metricsSvc metrics.Metrics, metricsHandler http.Handler, cfg config.Config) *Server {
	server := &Server{
		Store:          store,
		Metrics:        metricsSvc,
		MetricsHandler: metricsHandler,
		Cfg:            cfg,
		Router:         http.NewServeMux(),
	}

	server.routes()
	return server
}

func (s *Server) routes() {
	// All handlers are wrapped with middleware using the Chain helper.
	// This makes it easy to add more middlewares in the future, like an authentication middleware.
	// e.g. Chain(s.MyHandler(), paramsMiddleware, authMiddleware)
	s.Router.Handle("/metrics", s.MetricsHandler)
	s.Router.Handle("/health", Chain(s.HealthCheckHandler(), paramsMiddleware))
	s.Router.Handle("GET /tournaments", Chain(s.ListTournamentsHandler(), paramsMiddleware))
	s.Router.Handle("POST /tournaments", Chain(s.CreateTournamentHandler(), paramsMiddleware))
	s.Router.Handle("GET /tournaments/{id}", Chain(s.GetTournamentHandler(), paramsMiddleware))
	s.Router.Handle("PATCH /tournaments/{id}", Chain(s.UpdateTournamentHandler(), paramsMiddleware))
	s.Router.Handle("DELETE /tournaments/{id}", Chain(s.DeleteTournamentHandler(), paramsMiddleware))
	s.Router.Handle("POST /tournaments/{id}/rounds", Chain(s.AppendRoundHandler(), paramsMiddleware))
	s.Router.Handle("DELETE /tournaments/{id}/rounds/{roundID}", Chain(s.RemoveRoundHandler(), paramsMiddleware))
	s.Router.Handle("POST /tournaments/{id}/finalize", Chain(s.FinalizeHandler(), paramsMiddleware))
	s.Router.Handle("POST /tournaments/{id}/reopen", Chain(s.ReopenHandler(), paramsMiddleware))
	s.Router.Handle("GET /decks", Chain(s.DeckAggregatesHandler(), paramsMiddleware))
	s.Router.Handle("GET /decks/stats", Chain(s.DeckStatsHandler(), paramsMiddleware))
	s.Router.Handle("GET /decks/matchups", Chain(s.DeckMatchupsHandler(), paramsMiddleware))
	s.Router.Handle("GET /decks/splits", Chain(s.DeckSplitsHandler(), paramsMiddleware))
	s.Router.Handle("GET /decks/matchup-splits", Chain(s.DeckMatchupSplitsHandler(), paramsMiddleware))
	s.Router.Handle("GET /decks/suggest", Chain(s.SuggestDecksHandler(), paramsMiddleware))
	s.Router.Handle("GET /export", Chain(s.ExportHandler(), paramsMiddleware))
	s.Router.Handle("POST /import", Chain(s.ImportHandler(), paramsMiddleware))
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}
