package cmd

import (
	"context"
	"time"

	"go.uber.org/zap"

	"droscher.com/AuthenticEats/configs"
	"droscher.com/AuthenticEats/pkg/integrations"
	"droscher.com/AuthenticEats/pkg/repository"
)

type RefreshCmd struct {
	ConfigFile string        `default:".AuthenticEats.toml" help:"Path to config file" short:"c"`
	MaxAge     time.Duration `default:"720h"                help:"Refresh records not updated within this window"`
}

// Run re-fetches place details for records whose external fields have not
// been updated within the MaxAge window. Resolution never refreshes on the
// request path, so staleness is handled here instead.
func (r *RefreshCmd) Run(_ *Context) error {
	logConfig := zap.NewDevelopmentConfig()
	logConfig.DisableStacktrace = true

	logger, _ := logConfig.Build()
	defer logger.Sync() //nolint:errcheck // we don't care about logger sync errors

	conf, err := configs.GetConfig(r.ConfigFile, logger)
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

	ctx := context.Background()

	stale, err := repo.ListRestaurantsNotUpdatedSince(ctx, time.Now().Add(-r.MaxAge))
	if err != nil {
		return err
	}

	logger.Info("refreshing stale restaurants", zap.Int("count", len(stale)))

	refreshed := 0

	for _, restaurant := range stale {
		place, err := places.PlaceDetails(ctx, restaurant.PlaceID)
		if err != nil {
			logger.Warn("error fetching place details", zap.String("place_id", restaurant.PlaceID), zap.Error(err))

			continue
		}

		if place == nil {
			logger.Warn("place no longer known to source", zap.String("place_id", restaurant.PlaceID))

			continue
		}

		if err = repo.UpdateExternalFields(ctx, restaurant.ID, *place); err != nil {
			logger.Warn("error saving refreshed fields", zap.String("place_id", restaurant.PlaceID), zap.Error(err))

			continue
		}

		refreshed++
	}

	logger.Info("refresh complete", zap.Int("refreshed", refreshed), zap.Int("skipped", len(stale)-refreshed))

	return nil
}
