package cmd

import (
	"fmt"
	"net/http"
	"time"

	"github.com/rs/cors"
	"go.uber.org/zap"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"droscher.com/AuthenticEats/configs"
	"droscher.com/AuthenticEats/pkg/auth"
	"droscher.com/AuthenticEats/pkg/integrations"
	"droscher.com/AuthenticEats/pkg/repository"
	"droscher.com/AuthenticEats/pkg/server"
)

const timeout = 5 * time.Second

type ServeCmd struct {
	ConfigFile string `default:".AuthenticEats.toml" help:"Path to config file" short:"c"`
}

func (s *ServeCmd) Run(_ *Context) error {
	logConfig := zap.NewProductionConfig()

	logger, _ := logConfig.Build()
	defer logger.Sync() //nolint:errcheck // we don't care about logger sync errors

	conf, err := configs.GetConfig(s.ConfigFile, logger)
	if err != nil {
		logger.Error("error loading config", zap.Error(err))

		return err
	}

	repo, err := repository.Open(conf, logger)
	if err != nil {
		logger.Error("error connecting to database", zap.Error(err))

		return err
	}
	defer repo.Close()

	places, err := integrations.GetPlaceSource(conf.Integrations.Places, conf, logger)
	if err != nil {
		logger.Error("error creating place source", zap.Error(err))

		return err
	}

	enrichers := make([]integrations.Enricher, 0, len(conf.Integrations.Enrichment))

	for _, name := range conf.Integrations.Enrichment {
		if enricher := integrations.GetEnricher(name, logger); enricher != nil {
			enrichers = append(enrichers, enricher)
		} else {
			logger.Warn("skipping unknown enricher", zap.String("name", name))
		}
	}

	authManager := auth.NewAuthManager(conf, repo, logger)

	mux := http.NewServeMux()
	server.NewRestaurantServer(repo, places, enrichers, logger, conf).Register(mux, authManager)
	server.NewReviewServer(repo, repo, logger).Register(mux, authManager)
	server.NewUserServer(logger).Register(mux, authManager)

	address := fmt.Sprintf(":%d", conf.Server.Port)

	corsHandler := configureCORS(mux)
	serverHandler := h2c.NewHandler(corsHandler, &http2.Server{})

	svr := &http.Server{
		Addr:              address,
		ReadHeaderTimeout: timeout,
		Handler:           serverHandler,
	}

	err = svr.ListenAndServe()
	if err != nil {
		logger.Error("failed to start server", zap.Error(err))

		return err
	}

	return nil
}

func configureCORS(mux *http.ServeMux) http.Handler {
	corsOpts := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "HEAD", "PATCH"},
		AllowedHeaders: []string{
			"accept",
			"accept-encoding",
			"accept-language",
			"authorization",
			"cache-control",
			"content-encoding",
			"content-length",
			"content-type",
			"date",
			"keep-alive",
			"origin",
			"referer",
			"user-agent",
		},
		ExposedHeaders: []string{
			"cache-control",
			"content-type",
		},
		MaxAge:             86400, // 24 hours
		OptionsPassthrough: false, // Handle OPTIONS requests in CORS middleware
	})

	corsHandler := corsOpts.Handler(mux)

	return corsHandler
}
