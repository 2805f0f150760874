package main

import (
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/cmeynet/holbertonschool-hbnb/internal/adapters/hbnb"
	"github.com/cmeynet/holbertonschool-hbnb/internal/adapters/observability"
	"github.com/cmeynet/holbertonschool-hbnb/internal/adapters/rediscache"
	"github.com/cmeynet/holbertonschool-hbnb/internal/app"
	"github.com/cmeynet/holbertonschool-hbnb/internal/shared"
	"github.com/cmeynet/holbertonschool-hbnb/internal/web"
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	observability.Serve(cfg.MetricsAddr)

	// deps
	client := hbnb.New(cfg.APIBase, cfg.UpstreamRPS)
	cache := rediscache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB, cfg.CacheTTL)

	// http
	srv := web.New()
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&web.Handlers{
		Pages:   app.NewPageService(client, cache),
		Reviews: app.NewReviewService(client),
		API:     client,
		R:       web.NewRenderer(),
	})

	log.Info().Str("addr", cfg.HTTPAddr).Str("api", cfg.APIBase).Msg("web front-end listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}
