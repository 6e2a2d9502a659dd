package http

import (
	"net/http"

	"github.com/MainigB/optcgjourney/internal/config"
	"github.com/MainigB/optcgjourney/internal/metrics"
	"github.com/MainigB/optcgjourney/internal/tracker"
)

type Server struct {
	Store          tracker.Store
	Metrics        metrics.Metrics
	MetricsHandler http.Handler
	Cfg            config.Config
	Router         *http.ServeMux
}
