package googleplaces

import (
	"go.uber.org/zap"
	"googlemaps.github.io/maps"
)

const IntegrationName = "google_places"

type GooglePlacesIntegration struct {
	client *maps.Client
	logger *zap.Logger
}

// NewGooglePlacesIntegration builds a Places client. Extra options are for
// tests pointing the client at a fake endpoint.
func NewGooglePlacesIntegration(apiKey string, logger *zap.Logger, options ...maps.ClientOption) (*GooglePlacesIntegration, error) {
	options = append([]maps.ClientOption{maps.WithAPIKey(apiKey)}, options...)

	client, err := maps.NewClient(options...)
	if err != nil {
		return nil, err
	}

	return &GooglePlacesIntegration{client: client, logger: logger}, nil
}
