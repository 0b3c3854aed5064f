package googleplaces

import (
	"context"
	"strings"

	"go.openly.dev/pointy"
	"go.uber.org/zap"
	"googlemaps.github.io/maps"

	"droscher.com/AuthenticEats/pkg/model"
)

// detailFields mirrors the field mask the web app always requested.
var detailFields = []maps.PlaceDetailsFieldMask{
	maps.PlaceDetailsFieldMaskPlaceID,
	maps.PlaceDetailsFieldMaskName,
	maps.PlaceDetailsFieldMaskFormattedAddress,
	maps.PlaceDetailsFieldMaskGeometry,
	maps.PlaceDetailsFieldMaskRatings,
	maps.PlaceDetailsFieldMaskPriceLevel,
	maps.PlaceDetailsFieldMaskWebsite,
	maps.PlaceDetailsFieldMaskFormattedPhoneNumber,
	maps.PlaceDetailsFieldMaskTypes,
	maps.PlaceDetailsFieldMaskPhotos,
}

func (g *GooglePlacesIntegration) PlaceDetails(ctx context.Context, placeID string) (*model.PlaceSummary, error) {
	request := &maps.PlaceDetailsRequest{
		PlaceID: placeID,
		Fields:  detailFields,
	}

	details, err := g.client.PlaceDetails(ctx, request)
	if err != nil {
		if strings.Contains(err.Error(), "NOT_FOUND") || strings.Contains(err.Error(), "ZERO_RESULTS") {
			g.logger.Info("place id unknown upstream", zap.String("place_id", placeID))

			return nil, nil
		}

		return nil, err
	}

	place := placeFromDetails(placeID, details)

	return &place, nil
}

func (g *GooglePlacesIntegration) TextSearch(ctx context.Context, query string, radius uint) ([]model.PlaceSummary, error) {
	request := &maps.TextSearchRequest{
		Query:  query,
		Radius: radius,
		Type:   maps.PlaceTypeRestaurant,
	}

	g.logger.Info("text search", zap.String("query", query), zap.Uint("radius", radius))

	response, err := g.client.TextSearch(ctx, request)
	if err != nil {
		return nil, err
	}

	return placesFromSearchResults(response.Results), nil
}

func (g *GooglePlacesIntegration) NearbySearch(ctx context.Context, latitude float64, longitude float64, radius uint, keyword string) ([]model.PlaceSummary, error) {
	request := &maps.NearbySearchRequest{
		Location: &maps.LatLng{Lat: latitude, Lng: longitude},
		Radius:   radius,
		Keyword:  keyword,
		Type:     maps.PlaceTypeRestaurant,
	}

	g.logger.Info("nearby search", zap.Float64("lat", latitude), zap.Float64("lng", longitude), zap.Uint("radius", radius), zap.String("keyword", keyword))

	response, err := g.client.NearbySearch(ctx, request)
	if err != nil {
		return nil, err
	}

	return placesFromSearchResults(response.Results), nil
}

func (g *GooglePlacesIntegration) Photo(ctx context.Context, reference string, maxWidth uint, maxHeight uint) (*model.PlacePhoto, error) {
	request := &maps.PlacePhotoRequest{
		PhotoReference: reference,
		MaxWidth:       maxWidth,
		MaxHeight:      maxHeight,
	}

	response, err := g.client.PlacePhoto(ctx, request)
	if err != nil {
		return nil, err
	}

	return &model.PlacePhoto{ContentType: response.ContentType, Data: response.Data}, nil
}

func placesFromSearchResults(results []maps.PlacesSearchResult) []model.PlaceSummary {
	places := make([]model.PlaceSummary, 0, len(results))

	for index := range results {
		places = append(places, placeFromSearchResult(results[index]))
	}

	return places
}

func placeFromSearchResult(result maps.PlacesSearchResult) model.PlaceSummary {
	// Nearby results carry a vicinity instead of a formatted address.
	address := result.Vicinity
	if len(address) == 0 {
		address = result.FormattedAddress
	}

	return model.PlaceSummary{
		PlaceID:         result.PlaceID,
		Name:            result.Name,
		Address:         address,
		Latitude:        result.Geometry.Location.Lat,
		Longitude:       result.Geometry.Location.Lng,
		Rating:          ratingPointer(result.Rating),
		PriceLevel:      priceLevelPointer(result.PriceLevel),
		PhotoReferences: photoReferences(result.Photos),
		Types:           result.Types,
	}
}

func placeFromDetails(placeID string, details maps.PlaceDetailsResult) model.PlaceSummary {
	return model.PlaceSummary{
		PlaceID:         placeID,
		Name:            details.Name,
		Address:         details.FormattedAddress,
		Latitude:        details.Geometry.Location.Lat,
		Longitude:       details.Geometry.Location.Lng,
		Rating:          ratingPointer(details.Rating),
		PriceLevel:      priceLevelPointer(details.PriceLevel),
		Website:         stringPointer(details.Website),
		PhoneNumber:     stringPointer(details.FormattedPhoneNumber),
		PhotoReferences: photoReferences(details.Photos),
		Types:           details.Types,
	}
}

func photoReferences(photos []maps.Photo) []string {
	references := make([]string, 0, len(photos))

	for _, photo := range photos {
		references = append(references, photo.PhotoReference)
	}

	return references
}

func ratingPointer(rating float32) *float64 {
	if rating > 0 {
		return pointy.Float64(float64(rating))
	}

	return nil
}

func priceLevelPointer(level int) *int {
	if level > 0 {
		return pointy.Int(level)
	}

	return nil
}

func stringPointer(value string) *string {
	if len(value) > 0 {
		return &value
	}

	return nil
}
