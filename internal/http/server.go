package http

import (
	"net/http"

	"github.com/mauv0809/season-standings/internal/config"
	"github.com/mauv0809/season-standings/internal/http/handlers"
	"github.com/mauv0809/season-standings/internal/metrics"
	"github.com/mauv0809/season-standings/internal/notifier"
	"github.com/mauv0809/season-standings/internal/processor"
	"github.com/mauv0809/season-standings/internal/pubsub"
	"github.com/mauv0809/season-standings/internal/season"
)

func NewServer(store season.SeasonStore, metricsSvc metrics.Metrics, metricsHandler http.Handler, cfg config.Config, notifier notifier.Notifier, processor *processor.Processor, pubsub pubsub.PubSubClient) *Server {
	server := &Server{
		Store:          store,
		Metrics:        metricsSvc,
		MetricsHandler: metricsHandler,
		Cfg:            cfg,
		Notifier:       notifier,
		Processor:      processor,
		Router:         http.NewServeMux(),
		pubsub:         pubsub,
	}

	server.routes()
	return server
}

func (s *Server) routes() {
	// All handlers are wrapped with middleware using the Chain helper.
	// e.g. Chain(s.MyHandler(), paramsMiddleware, authMiddleware)
	slackAuth := slackVerifyMiddleware(s.Cfg.Slack.SigningSecret)

	s.Router.Handle("/metrics", s.MetricsHandler)
	s.Router.Handle("/health", Chain(handlers.HealthCheckHandler(s.Store), paramsMiddleware))
	s.Router.Handle("/clear", Chain(handlers.ClearStoreHandler(s.Store), paramsMiddleware))
	s.Router.Handle("/recompute", Chain(handlers.RecomputeHandler(s.Processor), paramsMiddleware))
	s.Router.Handle("/standings", Chain(handlers.StandingsHandler(s.Store), paramsMiddleware))
	s.Router.Handle("/champions", Chain(handlers.ChampionsHandler(s.Store), paramsMiddleware))
	s.Router.Handle("/events", Chain(handlers.ListEventsHandler(s.Store), paramsMiddleware))
	s.Router.Handle("/players", Chain(handlers.PlayersHandler(s.Store), paramsMiddleware))
	s.Router.Handle("/runs", Chain(handlers.RunsHandler(s.Store), paramsMiddleware))
	s.Router.Handle("/events/import", Chain(handlers.ImportEventsHandler(s.Processor), paramsMiddleware))
	s.Router.Handle("/pubsub/recompute", Chain(handlers.RecomputePushHandler(s.Processor, s.pubsub), paramsMiddleware))
	s.Router.Handle("/slack/command/standings", Chain(handlers.StandingsCommandHandler(s.Store, s.Notifier), paramsMiddleware, slackAuth))
	s.Router.Handle("/slack/command/player", Chain(handlers.PlayerCommandHandler(s.Store, s.Notifier), paramsMiddleware, slackAuth))
	s.Router.Handle("/slack/command/champions", Chain(handlers.ChampionsCommandHandler(s.Store, s.Notifier), paramsMiddleware, slackAuth))
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}
