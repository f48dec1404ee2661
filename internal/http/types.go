package http

import (
	"net/http"

	"github.com/mauv0809/season-standings/internal/config"
	"github.com/mauv0809/season-standings/internal/metrics"
	"github.com/mauv0809/season-standings/internal/notifier"
	"github.com/mauv0809/season-standings/internal/processor"
	"github.com/mauv0809/season-standings/internal/pubsub"
	"github.com/mauv0809/season-standings/internal/season"
)

type Server struct {
	Store          season.SeasonStore
	Metrics        metrics.Metrics
	MetricsHandler http.Handler
	Cfg            config.Config
	Notifier       notifier.Notifier
	Processor      *processor.Processor
	Router         *http.ServeMux
	pubsub         pubsub.PubSubClient
}
