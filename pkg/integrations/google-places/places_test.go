package googleplaces_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"googlemaps.github.io/maps"

	. "droscher.com/AuthenticEats/pkg/integrations/google-places"
)

const detailsResponse = `{
	"status": "OK",
	"result": {
		"place_id": "ChIJdetails",
		"name": "Z & Y Restaurant",
		"formatted_address": "655 Jackson St, San Francisco, CA 94133",
		"formatted_phone_number": "(415) 981-8988",
		"website": "https://www.zandyrestaurant.com/",
		"rating": 4.2,
		"price_level": 2,
		"geometry": {"location": {"lat": 37.7956, "lng": -122.4058}},
		"types": ["restaurant", "food"],
		"photos": [{"photo_reference": "ref-1", "width": 400, "height": 300}]
	}
}`

const textSearchResponse = `{
	"status": "OK",
	"html_attributions": [],
	"results": [
		{
			"place_id": "ChIJtext1",
			"name": "Shan Dong",
			"formatted_address": "328 10th St, Oakland, CA 94607",
			"rating": 4.3,
			"geometry": {"location": {"lat": 37.8012, "lng": -122.2699}},
			"types": ["restaurant"]
		}
	]
}`

const nearbySearchResponse = `{
	"status": "OK",
	"html_attributions": [],
	"results": [
		{
			"place_id": "ChIJnearby1",
			"name": "Mandalay",
			"vicinity": "4348 California St, San Francisco",
			"formatted_address": "4348 California St, San Francisco, CA 94118",
			"geometry": {"location": {"lat": 37.7841, "lng": -122.4643}},
			"types": ["restaurant"]
		}
	]
}`

func newTestIntegration(t *testing.T, handler http.Handler) *GooglePlacesIntegration {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	integration, err := NewGooglePlacesIntegration("test-key", zaptest.NewLogger(t), maps.WithBaseURL(server.URL))
	require.NoError(t, err)

	return integration
}

func TestPlaceDetails(t *testing.T) {
	integration := newTestIntegration(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/maps/api/place/details/json", request.URL.Path)
		assert.Equal(t, "ChIJdetails", request.URL.Query().Get("placeid"))
		_, _ = writer.Write([]byte(detailsResponse))
	}))

	place, err := integration.PlaceDetails(context.Background(), "ChIJdetails")
	require.NoError(t, err)
	require.NotNil(t, place)

	assert.Equal(t, "ChIJdetails", place.PlaceID)
	assert.Equal(t, "Z & Y Restaurant", place.Name)
	assert.Equal(t, "655 Jackson St, San Francisco, CA 94133", place.Address)
	assert.InDelta(t, 37.7956, place.Latitude, 0.0001)
	assert.InDelta(t, -122.4058, place.Longitude, 0.0001)
	require.NotNil(t, place.Rating)
	assert.InDelta(t, 4.2, *place.Rating, 0.01)
	require.NotNil(t, place.PriceLevel)
	assert.Equal(t, 2, *place.PriceLevel)
	require.NotNil(t, place.Website)
	assert.Equal(t, "https://www.zandyrestaurant.com/", *place.Website)
	require.NotNil(t, place.PhoneNumber)
	assert.Equal(t, "(415) 981-8988", *place.PhoneNumber)
	assert.Equal(t, []string{"ref-1"}, place.PhotoReferences)
}

func TestPlaceDetails_UnknownIDReturnsNil(t *testing.T) {
	integration := newTestIntegration(t, http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
		_, _ = writer.Write([]byte(`{"status": "NOT_FOUND", "result": {}}`))
	}))

	place, err := integration.PlaceDetails(context.Background(), "ChIJgone")
	require.NoError(t, err)
	assert.Nil(t, place)
}

func TestTextSearch(t *testing.T) {
	integration := newTestIntegration(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/maps/api/place/textsearch/json", request.URL.Path)
		assert.Equal(t, "Shan Dong Oakland", request.URL.Query().Get("query"))
		assert.Equal(t, "restaurant", request.URL.Query().Get("type"))
		_, _ = writer.Write([]byte(textSearchResponse))
	}))

	places, err := integration.TextSearch(context.Background(), "Shan Dong Oakland", 5000)
	require.NoError(t, err)
	require.Len(t, places, 1)

	assert.Equal(t, "ChIJtext1", places[0].PlaceID)
	assert.Equal(t, "Shan Dong", places[0].Name)
	assert.Equal(t, "328 10th St, Oakland, CA 94607", places[0].Address)
	require.NotNil(t, places[0].Rating)
	assert.InDelta(t, 4.3, *places[0].Rating, 0.01)
	assert.Nil(t, places[0].PriceLevel)
}

func TestNearbySearch_PrefersVicinityAsAddress(t *testing.T) {
	integration := newTestIntegration(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/maps/api/place/nearbysearch/json", request.URL.Path)
		assert.Equal(t, "Burmese", request.URL.Query().Get("keyword"))
		_, _ = writer.Write([]byte(nearbySearchResponse))
	}))

	places, err := integration.NearbySearch(context.Background(), 37.78, -122.46, 2000, "Burmese")
	require.NoError(t, err)
	require.Len(t, places, 1)

	assert.Equal(t, "Mandalay", places[0].Name)
	assert.Equal(t, "4348 California St, San Francisco", places[0].Address)
}

func TestPhoto(t *testing.T) {
	imageBytes := []byte{0xff, 0xd8, 0xff, 0xdb}

	integration := newTestIntegration(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/maps/api/place/photo", request.URL.Path)
		assert.Equal(t, "ref-1", request.URL.Query().Get("photoreference"))
		assert.Equal(t, "400", request.URL.Query().Get("maxwidth"))
		writer.Header().Set("Content-Type", "image/jpeg")
		_, _ = writer.Write(imageBytes)
	}))

	photo, err := integration.Photo(context.Background(), "ref-1", 400, 0)
	require.NoError(t, err)
	require.NotNil(t, photo)
	defer photo.Data.Close()

	assert.Equal(t, "image/jpeg", photo.ContentType)

	data, err := io.ReadAll(photo.Data)
	require.NoError(t, err)
	assert.Equal(t, imageBytes, data)
}
