package server

import (
	"time"

	"droscher.com/AuthenticEats/pkg/model"
)

// GeoPoint is a GeoJSON point, coordinates ordered longitude then latitude.
type GeoPoint struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"`
}

type Restaurant struct {
	ID                 string    `json:"id"`
	PlaceID            string    `json:"placeId"`
	Name               string    `json:"name"`
	Address            string    `json:"address"`
	Location           GeoPoint  `json:"location"`
	CuisineType        []string  `json:"cuisineType"`
	GoogleRating       *float64  `json:"googleRating,omitempty"`
	AuthenticityRating float64   `json:"authenticityRating"`
	AuthenticityVotes  int64     `json:"authenticityVotes"`
	Photos             []string  `json:"photos"`
	PriceLevel         *int      `json:"priceLevel,omitempty"`
	Website            *string   `json:"website,omitempty"`
	PhoneNumber        *string   `json:"phoneNumber,omitempty"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

type Author struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Picture          *string  `json:"picture,omitempty"`
	CuisineExpertise []string `json:"cuisineExpertise"`
}

type Review struct {
	ID                 string    `json:"id"`
	RestaurantID       string    `json:"restaurantId"`
	Author             *Author   `json:"author,omitempty"`
	Rating             int       `json:"rating"`
	AuthenticityRating int       `json:"authenticityRating"`
	Comment            string    `json:"comment"`
	Dishes             []string  `json:"dishes"`
	HelpfulVotes       int64     `json:"helpfulVotes"`
	CreatedAt          time.Time `json:"createdAt"`
}

func RestaurantsFromModel(restaurants []*model.Restaurant) []*Restaurant {
	converted := make([]*Restaurant, 0, len(restaurants))

	for _, restaurant := range restaurants {
		converted = append(converted, RestaurantFromModel(restaurant))
	}

	return converted
}

func RestaurantFromModel(restaurant *model.Restaurant) *Restaurant {
	converted := Restaurant{
		ID:      restaurant.UUID.String(),
		PlaceID: restaurant.PlaceID,
		Name:    restaurant.Name,
		Address: restaurant.Address,
		Location: GeoPoint{
			Type:        "Point",
			Coordinates: []float64{restaurant.Longitude, restaurant.Latitude},
		},
		CuisineType:        restaurant.CuisineNames(),
		GoogleRating:       restaurant.GoogleRating,
		AuthenticityRating: restaurant.AuthenticityRating,
		AuthenticityVotes:  restaurant.AuthenticityVotes,
		Photos:             restaurant.Photos,
		PriceLevel:         restaurant.PriceLevel,
		Website:            restaurant.Website,
		PhoneNumber:        restaurant.PhoneNumber,
		CreatedAt:          restaurant.CreatedAt,
		UpdatedAt:          restaurant.UpdatedAt,
	}

	if converted.Photos == nil {
		converted.Photos = []string{}
	}

	return &converted
}

func ReviewsFromModel(reviews []*model.Review) []*Review {
	converted := make([]*Review, 0, len(reviews))

	for _, review := range reviews {
		converted = append(converted, ReviewFromModel(review))
	}

	return converted
}

func ReviewFromModel(review *model.Review) *Review {
	converted := Review{
		ID:                 review.UUID.String(),
		Rating:             review.Rating,
		AuthenticityRating: review.AuthenticityRating,
		Comment:            review.Comment,
		Dishes:             review.Dishes,
		HelpfulVotes:       review.HelpfulVotes,
		CreatedAt:          review.CreatedAt,
	}

	if converted.Dishes == nil {
		converted.Dishes = []string{}
	}

	if review.Restaurant.ID != 0 {
		converted.RestaurantID = review.Restaurant.UUID.String()
	}

	if review.Author.ID != 0 {
		expertise := make([]string, 0, len(review.Author.CuisineExpertise))
		for _, cuisine := range review.Author.CuisineExpertise {
			expertise = append(expertise, cuisine.Name)
		}

		converted.Author = &Author{
			ID:               review.Author.UUID.String(),
			Name:             review.Author.Name,
			Picture:          review.Author.Picture,
			CuisineExpertise: expertise,
		}
	}

	return &converted
}
