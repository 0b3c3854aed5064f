package integrations

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"droscher.com/AuthenticEats/configs"
	googleplaces "droscher.com/AuthenticEats/pkg/integrations/google-places"
	websitemeta "droscher.com/AuthenticEats/pkg/integrations/website-meta"
	"droscher.com/AuthenticEats/pkg/model"
)

// PlaceSource is an external place lookup service. PlaceDetails returns
// (nil, nil) when the source does not know the place id.
type PlaceSource interface {
	PlaceDetails(ctx context.Context, placeID string) (*model.PlaceSummary, error)
	TextSearch(ctx context.Context, query string, radius uint) ([]model.PlaceSummary, error)
	NearbySearch(ctx context.Context, latitude float64, longitude float64, radius uint, keyword string) ([]model.PlaceSummary, error)
	Photo(ctx context.Context, reference string, maxWidth uint, maxHeight uint) (*model.PlacePhoto, error)
}

// Enricher backfills gaps in a freshly cached restaurant from a secondary
// source. Best effort only; callers log and move on.
type Enricher interface {
	Enrich(restaurant *model.Restaurant) error
}

var ErrUnknownIntegration = fmt.Errorf("unknown integration")

func GetPlaceSource(name string, conf *configs.Config, logger *zap.Logger) (PlaceSource, error) {
	if name == googleplaces.IntegrationName {
		return googleplaces.NewGooglePlacesIntegration(conf.Places.APIKey, logger)
	}

	return nil, fmt.Errorf("%w: %s", ErrUnknownIntegration, name)
}

func GetEnricher(name string, logger *zap.Logger) Enricher {
	if name == websitemeta.IntegrationName {
		return websitemeta.NewWebsiteMetaIntegration(logger)
	}

	return nil
}
