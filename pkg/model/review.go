package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Review struct {
	gorm.Model
	UUID               uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	RestaurantID       uint      `gorm:"index"`
	AuthorID           uint
	Rating             int
	AuthenticityRating int
	Comment            string
	Dishes             []string `gorm:"serializer:json"`
	HelpfulVotes       int64

	Restaurant Restaurant `gorm:"foreignKey:RestaurantID"`
	Author     User       `gorm:"foreignKey:AuthorID"`
}
