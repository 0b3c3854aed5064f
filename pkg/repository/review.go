package repository

import (
	"context"
	"errors"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"droscher.com/AuthenticEats/pkg/model"
)

var (
	ErrReviewNotFound = errors.New("review not found")
	ErrVoteConflict   = errors.New("authenticity vote conflict")
)

const voteRetries = 3

type ReviewRepository interface {
	SubmitReview(ctx context.Context, review model.Review) (*model.Review, error)
	GetReviewsForRestaurant(ctx context.Context, restaurantID uint) ([]*model.Review, error)
	AddHelpfulVote(ctx context.Context, reviewID uuid.UUID) error
}

// SubmitReview persists the review and folds its authenticity value into the
// owning restaurant's running mean in a single transaction, so the review and
// the aggregate can never diverge on a write failure.
func (r *Repository) SubmitReview(ctx context.Context, review model.Review) (*model.Review, error) {
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if result := tx.Create(&review); result.Error != nil {
			return result.Error
		}

		return r.applyAuthenticityVote(tx, review.RestaurantID, review.AuthenticityRating)
	})
	if err != nil {
		return nil, err
	}

	return &review, nil
}

// applyAuthenticityVote updates the running mean with a conditional write
// keyed on the vote count read beforehand. A concurrent submission makes the
// condition miss; the update is then re-read and retried with backoff rather
// than silently dropping a contribution.
func (r *Repository) applyAuthenticityVote(tx *gorm.DB, restaurantID uint, value int) error {
	vote := func() error {
		var restaurant model.Restaurant

		result := tx.Select("authenticity_rating", "authenticity_votes").First(&restaurant, restaurantID)
		if result.Error != nil {
			if errors.Is(result.Error, gorm.ErrRecordNotFound) {
				return backoff.Permanent(ErrRestaurantNotFound)
			}

			return backoff.Permanent(result.Error)
		}

		votes := restaurant.AuthenticityVotes + 1
		rating := (restaurant.AuthenticityRating*float64(restaurant.AuthenticityVotes) + float64(value)) / float64(votes)

		update := tx.Model(&model.Restaurant{}).
			Where("id = ? AND authenticity_votes = ?", restaurantID, restaurant.AuthenticityVotes).
			Updates(map[string]interface{}{
				"authenticity_rating": rating,
				"authenticity_votes":  votes,
			})
		if update.Error != nil {
			return backoff.Permanent(update.Error)
		}

		if update.RowsAffected == 0 {
			r.Logger.Warn("authenticity vote conflict", zap.Uint("restaurant_id", restaurantID))

			return ErrVoteConflict
		}

		return nil
	}

	return backoff.Retry(vote, backoff.WithMaxRetries(backoff.NewExponentialBackOff(), voteRetries))
}

func (r *Repository) GetReviewsForRestaurant(ctx context.Context, restaurantID uint) ([]*model.Review, error) {
	var reviews []*model.Review

	result := r.DB.WithContext(ctx).
		Preload("Author").
		Preload("Author.CuisineExpertise").
		Where("restaurant_id = ?", restaurantID).
		Order("created_at desc").
		Find(&reviews)
	if result.Error != nil {
		return nil, result.Error
	}

	return reviews, nil
}

func (r *Repository) AddHelpfulVote(ctx context.Context, reviewID uuid.UUID) error {
	result := r.DB.WithContext(ctx).Model(&model.Review{}).
		Where("uuid = ?", reviewID).
		UpdateColumn("helpful_votes", gorm.Expr("helpful_votes + ?", 1))

	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrReviewNotFound
	}

	return nil
}
