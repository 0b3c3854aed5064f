package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User mirrors the identity provider's profile. Subject is the provider's
// stable subject id and is the only key the auth layer trusts.
type User struct {
	gorm.Model
	UUID             uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	Subject          string    `gorm:"uniqueIndex"`
	Name             string
	Email            string
	Picture          *string
	CuisineExpertise []Cuisine `gorm:"many2many:user_cuisine_expertise;"`
}
