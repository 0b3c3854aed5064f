package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"droscher.com/AuthenticEats/configs"
	"droscher.com/AuthenticEats/pkg/auth"
	"droscher.com/AuthenticEats/pkg/integrations"
	"droscher.com/AuthenticEats/pkg/model"
	"droscher.com/AuthenticEats/pkg/repository"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("bad request")
	ErrValidation   = errors.New("validation failed")
	ErrUpstream     = errors.New("place lookup failed")
)

// detailCuisine is the tag attached to records created through the detail
// path, which carries no cuisine hint of its own.
const detailCuisine = "Restaurant"

const photoCacheControl = "public, max-age=86400"

const placeholderImage = "/images/placeholder-restaurant.jpg"

type RestaurantServer struct {
	repository repository.RestaurantRepository
	places     integrations.PlaceSource
	enrichers  []integrations.Enricher
	logger     *zap.Logger
	config     *configs.Config
}

func NewRestaurantServer(repo repository.RestaurantRepository, places integrations.PlaceSource, enrichers []integrations.Enricher, logger *zap.Logger, config *configs.Config) *RestaurantServer {
	return &RestaurantServer{repository: repo, places: places, enrichers: enrichers, logger: logger, config: config}
}

// SearchCriteria is a parsed search request. Limit is the local result
// ceiling for whichever path is executing; the caller decides whether that is
// its own limit (listing) or the configured search ceiling.
type SearchCriteria struct {
	Query     string
	Cuisine   string
	Latitude  *float64
	Longitude *float64
	Radius    uint
	Limit     int
}

func (c SearchCriteria) hasLocation() bool {
	return c.Latitude != nil && c.Longitude != nil
}

// Resolve looks an identifier up locally first. Identifiers that parse as a
// UUID are internal ids and are never resolvable externally. Anything else is
// treated as an external place id: a cache miss pulls details from the place
// source and persists them. The second return reports whether a record was
// created.
func (s *RestaurantServer) Resolve(ctx context.Context, identifier string) (*model.Restaurant, bool, error) {
	if internalID, err := uuid.Parse(identifier); err == nil {
		restaurant, err := s.repository.FindRestaurantByUUID(ctx, internalID)
		if err != nil {
			if errors.Is(err, repository.ErrRestaurantNotFound) {
				return nil, false, fmt.Errorf("%w: restaurant %s", ErrNotFound, identifier)
			}

			return nil, false, err
		}

		return restaurant, false, nil
	}

	restaurant, err := s.repository.FindRestaurantByPlaceID(ctx, identifier)
	if err == nil {
		// Cached records are returned as-is; external fields are only
		// refreshed by the refresh command.
		return restaurant, false, nil
	}

	if !errors.Is(err, repository.ErrRestaurantNotFound) {
		return nil, false, err
	}

	place, err := s.places.PlaceDetails(ctx, identifier)
	if err != nil {
		return nil, false, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	if place == nil {
		return nil, false, fmt.Errorf("%w: place %s", ErrNotFound, identifier)
	}

	created, err := s.cache(ctx, *place, detailCuisine)
	if err != nil {
		return nil, false, err
	}

	return created, true, nil
}

// Search runs the local query, and when it comes back under the threshold,
// backfills from the place source: text search when a query string was given,
// nearby search otherwise. New places are cached before merging. An upstream
// failure fails the whole search rather than returning a partial result.
func (s *RestaurantServer) Search(ctx context.Context, criteria SearchCriteria) ([]*model.Restaurant, error) {
	if len(criteria.Query) == 0 && !criteria.hasLocation() {
		return nil, fmt.Errorf("%w: provide either a query or a location", ErrInvalidInput)
	}

	if criteria.Radius == 0 {
		criteria.Radius = s.config.Places.DefaultRadius
	}

	local, err := s.repository.SearchRestaurants(ctx, repository.RestaurantFilter{
		Cuisine:      criteria.Cuisine,
		Latitude:     criteria.Latitude,
		Longitude:    criteria.Longitude,
		RadiusMeters: criteria.Radius,
		Limit:        criteria.Limit,
	})
	if err != nil {
		return nil, err
	}

	if len(local) >= s.config.Places.LocalThreshold {
		return local, nil
	}

	var places []model.PlaceSummary

	if len(criteria.Query) > 0 {
		query := strings.TrimSpace(criteria.Query + " " + criteria.Cuisine)
		places, err = s.places.TextSearch(ctx, query, criteria.Radius)
	} else {
		places, err = s.places.NearbySearch(ctx, *criteria.Latitude, *criteria.Longitude, criteria.Radius, criteria.Cuisine)
	}

	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	return s.merge(ctx, local, places, criteria.Cuisine)
}

// List serves the plain listing path. Without criteria it is a local-only
// top-by-authenticity list; with criteria it runs the search flow capped at
// the caller's limit instead of the search ceiling.
func (s *RestaurantServer) List(ctx context.Context, criteria SearchCriteria) ([]*model.Restaurant, error) {
	if len(criteria.Cuisine) == 0 && !criteria.hasLocation() && len(criteria.Query) == 0 {
		return s.repository.ListRestaurantsByAuthenticity(ctx, criteria.Limit)
	}

	if criteria.Radius == 0 {
		criteria.Radius = s.config.Places.DefaultRadius
	}

	local, err := s.repository.SearchRestaurants(ctx, repository.RestaurantFilter{
		Cuisine:      criteria.Cuisine,
		Latitude:     criteria.Latitude,
		Longitude:    criteria.Longitude,
		RadiusMeters: criteria.Radius,
		Limit:        criteria.Limit,
	})
	if err != nil {
		return nil, err
	}

	if len(local) >= criteria.Limit || !criteria.hasLocation() {
		return local, nil
	}

	places, err := s.places.NearbySearch(ctx, *criteria.Latitude, *criteria.Longitude, criteria.Radius, criteria.Cuisine)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	return s.merge(ctx, local, places, criteria.Cuisine)
}

// merge appends cache-filled external places to the local results,
// de-duplicating by place id with local rows winning. Order is preserved:
// local first, then external results in response order.
func (s *RestaurantServer) merge(ctx context.Context, local []*model.Restaurant, places []model.PlaceSummary, cuisine string) ([]*model.Restaurant, error) {
	merged := local
	seen := make(map[string]bool, len(local)+len(places))

	for _, restaurant := range local {
		seen[restaurant.PlaceID] = true
	}

	for index := range places {
		place := places[index]
		if seen[place.PlaceID] {
			continue
		}

		restaurant, err := s.repository.FindRestaurantByPlaceID(ctx, place.PlaceID)
		if err != nil {
			if !errors.Is(err, repository.ErrRestaurantNotFound) {
				return nil, err
			}

			restaurant, err = s.cache(ctx, place, cuisine)
			if err != nil {
				return nil, err
			}
		}

		seen[place.PlaceID] = true
		merged = append(merged, restaurant)
	}

	return merged, nil
}

// cache persists a new record for an external place with zeroed authenticity
// fields and runs the configured enrichers over it.
func (s *RestaurantServer) cache(ctx context.Context, place model.PlaceSummary, cuisine string) (*model.Restaurant, error) {
	restaurant := model.Restaurant{
		UUID:         uuid.New(),
		PlaceID:      place.PlaceID,
		Name:         place.Name,
		Address:      place.Address,
		Latitude:     place.Latitude,
		Longitude:    place.Longitude,
		GoogleRating: place.Rating,
		Photos:       place.PhotoReferences,
		PriceLevel:   place.PriceLevel,
		Website:      place.Website,
		PhoneNumber:  place.PhoneNumber,
	}

	if len(cuisine) > 0 {
		restaurant.Cuisines = s.fetchCuisines(ctx, []string{cuisine})
	}

	saved, err := s.repository.AddRestaurant(ctx, restaurant)
	if err != nil {
		return nil, err
	}

	s.enrich(ctx, saved)

	return saved, nil
}

func (s *RestaurantServer) fetchCuisines(ctx context.Context, names []string) []model.Cuisine {
	cuisines := make([]model.Cuisine, 0, len(names))

	cuisinesByName, err := s.repository.GetCuisinesByNames(ctx, names)
	if err != nil {
		s.logger.Error("error getting cuisines by name", zap.Error(err))

		cuisinesByName = map[string]model.Cuisine{}
	}

	for _, name := range names {
		if cuisine, ok := cuisinesByName[name]; ok {
			cuisines = append(cuisines, cuisine)
		} else {
			cuisines = append(cuisines, model.Cuisine{Name: name})
		}
	}

	return cuisines
}

// enrich lets the configured enrichers fill photo/phone gaps on a freshly
// cached record. Failures are logged and never fail the resolve.
func (s *RestaurantServer) enrich(ctx context.Context, restaurant *model.Restaurant) {
	if len(s.enrichers) == 0 || restaurant.Website == nil {
		return
	}

	if len(restaurant.Photos) > 0 && restaurant.PhoneNumber != nil {
		return
	}

	filled := false

	for _, enricher := range s.enrichers {
		photos, phone := len(restaurant.Photos), restaurant.PhoneNumber

		if err := enricher.Enrich(restaurant); err != nil {
			s.logger.Warn("enrichment failed", zap.String("restaurant", restaurant.Name), zap.Error(err))

			continue
		}

		if len(restaurant.Photos) != photos || restaurant.PhoneNumber != phone {
			filled = true
		}
	}

	if !filled {
		return
	}

	err := s.repository.UpdateExternalFields(ctx, restaurant.ID, model.PlaceSummary{
		Rating:          restaurant.GoogleRating,
		PriceLevel:      restaurant.PriceLevel,
		Website:         restaurant.Website,
		PhoneNumber:     restaurant.PhoneNumber,
		PhotoReferences: restaurant.Photos,
	})
	if err != nil {
		s.logger.Warn("error saving enriched fields", zap.String("restaurant", restaurant.Name), zap.Error(err))
	}
}

// Update applies the caller-editable descriptive fields by internal id.
func (s *RestaurantServer) Update(ctx context.Context, identifier string, name *string, address *string) (*model.Restaurant, error) {
	internalID, err := uuid.Parse(identifier)
	if err != nil {
		return nil, fmt.Errorf("%w: %s is not a restaurant id", ErrInvalidInput, identifier)
	}

	restaurant, err := s.repository.UpdateRestaurantDetails(ctx, internalID, name, address)
	if err != nil {
		if errors.Is(err, repository.ErrRestaurantNotFound) {
			return nil, fmt.Errorf("%w: restaurant %s", ErrNotFound, identifier)
		}

		return nil, err
	}

	return restaurant, nil
}

// Register wires the restaurant routes. Reads are public; writes go through
// the auth middleware.
func (s *RestaurantServer) Register(mux *http.ServeMux, authManager *auth.Manager) {
	mux.HandleFunc("GET /api/restaurants", s.handleList)
	mux.Handle("POST /api/restaurants", authManager.RequireUser(http.HandlerFunc(s.handleCreate)))
	mux.HandleFunc("GET /api/restaurants/search", s.handleSearch)
	mux.HandleFunc("GET /api/restaurants/photo", s.handlePhoto)
	mux.HandleFunc("GET /api/restaurants/{id}", s.handleGet)
	mux.Handle("PUT /api/restaurants/{id}", authManager.RequireUser(http.HandlerFunc(s.handleUpdate)))
}

func (s *RestaurantServer) handleGet(writer http.ResponseWriter, request *http.Request) {
	restaurant, _, err := s.Resolve(request.Context(), request.PathValue("id"))
	if err != nil {
		writeError(s.logger, writer, err)

		return
	}

	writeData(writer, http.StatusOK, RestaurantFromModel(restaurant))
}

func (s *RestaurantServer) handleCreate(writer http.ResponseWriter, request *http.Request) {
	var body struct {
		PlaceID string `json:"placeId"`
	}

	if err := json.NewDecoder(request.Body).Decode(&body); err != nil || len(body.PlaceID) == 0 {
		writeError(s.logger, writer, fmt.Errorf("%w: place id is required", ErrInvalidInput))

		return
	}

	restaurant, created, err := s.Resolve(request.Context(), body.PlaceID)
	if err != nil {
		writeError(s.logger, writer, err)

		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}

	writeData(writer, status, RestaurantFromModel(restaurant))
}

func (s *RestaurantServer) handleUpdate(writer http.ResponseWriter, request *http.Request) {
	var body struct {
		Name    *string `json:"name"`
		Address *string `json:"address"`
	}

	if err := json.NewDecoder(request.Body).Decode(&body); err != nil {
		writeError(s.logger, writer, fmt.Errorf("%w: malformed body", ErrInvalidInput))

		return
	}

	restaurant, err := s.Update(request.Context(), request.PathValue("id"), body.Name, body.Address)
	if err != nil {
		writeError(s.logger, writer, err)

		return
	}

	writeData(writer, http.StatusOK, RestaurantFromModel(restaurant))
}

func (s *RestaurantServer) handleList(writer http.ResponseWriter, request *http.Request) {
	criteria, err := s.parseCriteria(request)
	if err != nil {
		writeError(s.logger, writer, err)

		return
	}

	if criteria.Limit <= 0 {
		criteria.Limit = s.config.Places.ListLimit
	}

	restaurants, err := s.List(request.Context(), criteria)
	if err != nil {
		writeError(s.logger, writer, err)

		return
	}

	writeData(writer, http.StatusOK, RestaurantsFromModel(restaurants))
}

func (s *RestaurantServer) handleSearch(writer http.ResponseWriter, request *http.Request) {
	criteria, err := s.parseCriteria(request)
	if err != nil {
		writeError(s.logger, writer, err)

		return
	}

	criteria.Limit = s.config.Places.SearchCeiling

	restaurants, err := s.Search(request.Context(), criteria)
	if err != nil {
		writeError(s.logger, writer, err)

		return
	}

	writeData(writer, http.StatusOK, RestaurantsFromModel(restaurants))
}

func (s *RestaurantServer) handlePhoto(writer http.ResponseWriter, request *http.Request) {
	reference := request.URL.Query().Get("photo_reference")
	if len(reference) == 0 {
		writeError(s.logger, writer, fmt.Errorf("%w: photo reference is required", ErrInvalidInput))

		return
	}

	// Enriched records may carry a plain URL instead of an opaque reference.
	if strings.HasPrefix(reference, "http://") || strings.HasPrefix(reference, "https://") {
		http.Redirect(writer, request, reference, http.StatusFound)

		return
	}

	maxWidth := parseUint(request.URL.Query().Get("maxwidth"), 400)
	maxHeight := parseUint(request.URL.Query().Get("maxheight"), 0)

	photo, err := s.places.Photo(request.Context(), reference, maxWidth, maxHeight)
	if err != nil {
		s.logger.Warn("error fetching photo", zap.String("reference", reference), zap.Error(err))
		http.Redirect(writer, request, placeholderImage, http.StatusFound)

		return
	}

	defer photo.Data.Close() //nolint:errcheck // nothing to do about a failed close

	writer.Header().Set("Content-Type", photo.ContentType)
	writer.Header().Set("Cache-Control", photoCacheControl)

	if _, err = io.Copy(writer, photo.Data); err != nil {
		s.logger.Warn("error streaming photo", zap.String("reference", reference), zap.Error(err))
	}
}

func (s *RestaurantServer) parseCriteria(request *http.Request) (SearchCriteria, error) {
	values := request.URL.Query()

	criteria := SearchCriteria{
		Query:   values.Get("query"),
		Cuisine: values.Get("cuisine"),
		Radius:  parseUint(values.Get("radius"), 0),
	}

	if limit := values.Get("limit"); len(limit) > 0 {
		parsed, err := strconv.Atoi(limit)
		if err != nil || parsed <= 0 {
			return criteria, fmt.Errorf("%w: limit must be a positive number", ErrInvalidInput)
		}

		criteria.Limit = parsed
	}

	if location := values.Get("location"); len(location) > 0 {
		latitude, longitude, err := parseLocation(location)
		if err != nil {
			return criteria, err
		}

		criteria.Latitude = &latitude
		criteria.Longitude = &longitude
	}

	return criteria, nil
}

// parseLocation expects "lat,lng", the format the web client has always sent.
func parseLocation(location string) (float64, float64, error) {
	parts := strings.Split(location, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%w: please provide location as lat,lng", ErrInvalidInput)
	}

	latitude, latErr := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	longitude, lngErr := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)

	if latErr != nil || lngErr != nil {
		return 0, 0, fmt.Errorf("%w: please provide location as lat,lng", ErrInvalidInput)
	}

	return latitude, longitude, nil
}

func parseUint(value string, fallback uint) uint {
	if len(value) == 0 {
		return fallback
	}

	parsed, err := strconv.ParseUint(value, 10, 32)
	if err != nil {
		return fallback
	}

	return uint(parsed)
}
