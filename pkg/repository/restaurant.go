package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"droscher.com/AuthenticEats/pkg/model"
)

var ErrRestaurantNotFound = errors.New("restaurant not found")

// RestaurantFilter narrows a local search. Latitude and Longitude must be set
// together; RadiusMeters only applies when they are.
type RestaurantFilter struct {
	Cuisine      string
	Latitude     *float64
	Longitude    *float64
	RadiusMeters uint
	Limit        int
}

type RestaurantRepository interface {
	AddRestaurant(ctx context.Context, restaurant model.Restaurant) (*model.Restaurant, error)
	FindRestaurantByUUID(ctx context.Context, id uuid.UUID) (*model.Restaurant, error)
	FindRestaurantByPlaceID(ctx context.Context, placeID string) (*model.Restaurant, error)
	GetCuisinesByNames(ctx context.Context, names []string) (map[string]model.Cuisine, error)
	ListRestaurantsByAuthenticity(ctx context.Context, limit int) ([]*model.Restaurant, error)
	ListRestaurantsNotUpdatedSince(ctx context.Context, cutoff time.Time) ([]*model.Restaurant, error)
	SearchRestaurants(ctx context.Context, filter RestaurantFilter) ([]*model.Restaurant, error)
	UpdateRestaurantDetails(ctx context.Context, id uuid.UUID, name *string, address *string) (*model.Restaurant, error)
	UpdateExternalFields(ctx context.Context, restaurantID uint, place model.PlaceSummary) error
}

func (r *Repository) AddRestaurant(ctx context.Context, restaurant model.Restaurant) (*model.Restaurant, error) {
	result := r.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "place_id"}},
		DoNothing: true,
	}).Create(&restaurant)

	if result.Error != nil {
		return nil, result.Error
	}

	// A lost insert race means another request cached the same place first;
	// the stored row wins.
	if restaurant.ID == 0 {
		return r.FindRestaurantByPlaceID(ctx, restaurant.PlaceID)
	}

	return &restaurant, nil
}

func (r *Repository) FindRestaurantByUUID(ctx context.Context, id uuid.UUID) (*model.Restaurant, error) {
	var restaurant model.Restaurant

	result := r.DB.WithContext(ctx).Preload("Cuisines").Where("uuid = ?", id).First(&restaurant)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrRestaurantNotFound
		}

		return nil, result.Error
	}

	return &restaurant, nil
}

func (r *Repository) FindRestaurantByPlaceID(ctx context.Context, placeID string) (*model.Restaurant, error) {
	var restaurant model.Restaurant

	result := r.DB.WithContext(ctx).Preload("Cuisines").Where("place_id = ?", placeID).First(&restaurant)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrRestaurantNotFound
		}

		return nil, result.Error
	}

	return &restaurant, nil
}

func (r *Repository) GetCuisinesByNames(ctx context.Context, names []string) (map[string]model.Cuisine, error) {
	var cuisines []*model.Cuisine

	if result := r.DB.WithContext(ctx).Where("name in (?)", names).Find(&cuisines); result.Error != nil {
		return nil, result.Error
	}

	cuisinesByName := make(map[string]model.Cuisine, len(cuisines))

	for index := range cuisines {
		cuisine := cuisines[index]
		cuisinesByName[cuisine.Name] = *cuisine
	}

	return cuisinesByName, nil
}

func (r *Repository) ListRestaurantsByAuthenticity(ctx context.Context, limit int) ([]*model.Restaurant, error) {
	var restaurants []*model.Restaurant

	result := r.DB.WithContext(ctx).Preload("Cuisines").
		Order("authenticity_rating desc").
		Limit(limit).
		Find(&restaurants)
	if result.Error != nil {
		return nil, result.Error
	}

	return restaurants, nil
}

func (r *Repository) ListRestaurantsNotUpdatedSince(ctx context.Context, cutoff time.Time) ([]*model.Restaurant, error) {
	var restaurants []*model.Restaurant

	result := r.DB.WithContext(ctx).Where("updated_at < ?", cutoff).Find(&restaurants)
	if result.Error != nil {
		return nil, result.Error
	}

	return restaurants, nil
}

func (r *Repository) SearchRestaurants(ctx context.Context, filter RestaurantFilter) ([]*model.Restaurant, error) {
	var restaurants []*model.Restaurant

	query := r.DB.WithContext(ctx).Model(&model.Restaurant{}).Preload("Cuisines")

	if len(filter.Cuisine) > 0 {
		query = query.
			Joins("JOIN restaurant_cuisines rc ON rc.restaurant_id = restaurants.id").
			Joins("JOIN cuisines ON cuisines.id = rc.cuisine_id").
			Where("cuisines.name = ?", filter.Cuisine)
	}

	if filter.Latitude != nil && filter.Longitude != nil {
		// earthdistance-backed proximity; nearest first, matching the order
		// a $near-style query would produce.
		query = query.
			Where("earth_distance(ll_to_earth(latitude, longitude), ll_to_earth(?, ?)) <= ?",
				*filter.Latitude, *filter.Longitude, filter.RadiusMeters).
			Clauses(clause.OrderBy{Expression: clause.Expr{
				SQL:  "earth_distance(ll_to_earth(latitude, longitude), ll_to_earth(?, ?))",
				Vars: []interface{}{*filter.Latitude, *filter.Longitude},
			}})
	}

	result := query.Limit(filter.Limit).Find(&restaurants)
	if result.Error != nil {
		r.Logger.Error("error searching restaurants", zap.String("cuisine", filter.Cuisine), zap.Error(result.Error))

		return nil, result.Error
	}

	return restaurants, nil
}

func (r *Repository) UpdateRestaurantDetails(ctx context.Context, id uuid.UUID, name *string, address *string) (*model.Restaurant, error) {
	restaurant, err := r.FindRestaurantByUUID(ctx, id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}

	if name != nil {
		updates["name"] = *name
	}

	if address != nil {
		updates["address"] = *address
	}

	if len(updates) > 0 {
		result := r.DB.WithContext(ctx).Model(restaurant).Updates(updates)
		if result.Error != nil {
			return nil, result.Error
		}
	}

	return restaurant, nil
}

func (r *Repository) UpdateExternalFields(ctx context.Context, restaurantID uint, place model.PlaceSummary) error {
	result := r.DB.WithContext(ctx).Model(&model.Restaurant{}).
		Where("id = ?", restaurantID).
		Select("GoogleRating", "PriceLevel", "Website", "PhoneNumber", "Photos").
		Updates(model.Restaurant{
			GoogleRating: place.Rating,
			PriceLevel:   place.PriceLevel,
			Website:      place.Website,
			PhoneNumber:  place.PhoneNumber,
			Photos:       place.PhotoReferences,
		})

	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrRestaurantNotFound
	}

	return nil
}
