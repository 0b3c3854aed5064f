package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Cuisine struct {
	gorm.Model
	Name string `gorm:"uniqueIndex"`
}

// Restaurant is the cached local record for an external place. External
// fields (GoogleRating, Photos, PriceLevel, Website, PhoneNumber) are only
// ever overwritten from the place source; AuthenticityRating and
// AuthenticityVotes are only ever written by review aggregation.
type Restaurant struct {
	gorm.Model
	UUID               uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	PlaceID            string    `gorm:"uniqueIndex"`
	Name               string
	Address            string
	Latitude           float64
	Longitude          float64
	Cuisines           []Cuisine `gorm:"many2many:restaurant_cuisines;"`
	GoogleRating       *float64
	AuthenticityRating float64
	AuthenticityVotes  int64
	Photos             []string `gorm:"serializer:json"`
	PriceLevel         *int
	Website            *string
	PhoneNumber        *string
}

func (r *Restaurant) CuisineNames() []string {
	names := make([]string, 0, len(r.Cuisines))

	for _, cuisine := range r.Cuisines {
		names = append(names, cuisine.Name)
	}

	return names
}
