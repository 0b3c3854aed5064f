package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"droscher.com/AuthenticEats/pkg/auth"
	"droscher.com/AuthenticEats/pkg/model"
	"droscher.com/AuthenticEats/pkg/repository"
)

type ReviewServer struct {
	reviews     repository.ReviewRepository
	restaurants repository.RestaurantRepository
	logger      *zap.Logger
	validate    *validator.Validate
}

func NewReviewServer(reviews repository.ReviewRepository, restaurants repository.RestaurantRepository, logger *zap.Logger) *ReviewServer {
	return &ReviewServer{
		reviews:     reviews,
		restaurants: restaurants,
		logger:      logger,
		validate:    validator.New(validator.WithRequiredStructEnabled()),
	}
}

type ReviewSubmission struct {
	RestaurantID       string   `json:"restaurantId"       validate:"required,uuid"`
	Rating             int      `json:"rating"             validate:"required,min=1,max=5"`
	AuthenticityRating int      `json:"authenticityRating" validate:"required,min=1,max=5"`
	Comment            string   `json:"comment"            validate:"required"`
	Dishes             []string `json:"dishes"`
}

// SubmitReview validates the submission, persists it for the named restaurant
// and returns the stored review. Blank dish entries are dropped rather than
// rejected.
func (s *ReviewServer) SubmitReview(ctx context.Context, author *model.User, submission ReviewSubmission) (*model.Review, error) {
	if err := s.validate.Struct(submission); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	if len(strings.TrimSpace(submission.Comment)) == 0 {
		return nil, fmt.Errorf("%w: comment must not be blank", ErrValidation)
	}

	restaurantID := uuid.MustParse(submission.RestaurantID)

	restaurant, err := s.restaurants.FindRestaurantByUUID(ctx, restaurantID)
	if err != nil {
		if errors.Is(err, repository.ErrRestaurantNotFound) {
			return nil, fmt.Errorf("%w: restaurant %s", ErrNotFound, submission.RestaurantID)
		}

		return nil, err
	}

	review := model.Review{
		UUID:               uuid.New(),
		RestaurantID:       restaurant.ID,
		AuthorID:           author.ID,
		Rating:             submission.Rating,
		AuthenticityRating: submission.AuthenticityRating,
		Comment:            submission.Comment,
		Dishes:             filterBlank(submission.Dishes),
	}

	saved, err := s.reviews.SubmitReview(ctx, review)
	if err != nil {
		return nil, err
	}

	saved.Restaurant = *restaurant
	saved.Author = *author

	return saved, nil
}

// ListReviews returns the reviews for a restaurant, newest first.
func (s *ReviewServer) ListReviews(ctx context.Context, restaurantID string) ([]*model.Review, error) {
	internalID, err := uuid.Parse(restaurantID)
	if err != nil {
		return nil, fmt.Errorf("%w: %s is not a restaurant id", ErrInvalidInput, restaurantID)
	}

	restaurant, err := s.restaurants.FindRestaurantByUUID(ctx, internalID)
	if err != nil {
		if errors.Is(err, repository.ErrRestaurantNotFound) {
			return nil, fmt.Errorf("%w: restaurant %s", ErrNotFound, restaurantID)
		}

		return nil, err
	}

	reviews, err := s.reviews.GetReviewsForRestaurant(ctx, restaurant.ID)
	if err != nil {
		return nil, err
	}

	for _, review := range reviews {
		review.Restaurant = *restaurant
	}

	return reviews, nil
}

func filterBlank(dishes []string) []string {
	filtered := make([]string, 0, len(dishes))

	for _, dish := range dishes {
		if trimmed := strings.TrimSpace(dish); len(trimmed) > 0 {
			filtered = append(filtered, trimmed)
		}
	}

	return filtered
}

func (s *ReviewServer) Register(mux *http.ServeMux, authManager *auth.Manager) {
	mux.HandleFunc("GET /api/reviews", s.handleList)
	mux.Handle("POST /api/reviews", authManager.RequireUser(http.HandlerFunc(s.handleSubmit)))
	mux.Handle("POST /api/reviews/{id}/helpful", authManager.RequireUser(http.HandlerFunc(s.handleHelpfulVote)))
}

func (s *ReviewServer) handleSubmit(writer http.ResponseWriter, request *http.Request) {
	author, ok := auth.UserFromContext(request.Context())
	if !ok {
		writeError(s.logger, writer, fmt.Errorf("%w: no authenticated user", ErrInvalidInput))

		return
	}

	var submission ReviewSubmission
	if err := json.NewDecoder(request.Body).Decode(&submission); err != nil {
		writeError(s.logger, writer, fmt.Errorf("%w: malformed body", ErrInvalidInput))

		return
	}

	review, err := s.SubmitReview(request.Context(), author, submission)
	if err != nil {
		writeError(s.logger, writer, err)

		return
	}

	writeData(writer, http.StatusCreated, ReviewFromModel(review))
}

func (s *ReviewServer) handleList(writer http.ResponseWriter, request *http.Request) {
	restaurantID := request.URL.Query().Get("restaurantId")
	if len(restaurantID) == 0 {
		writeError(s.logger, writer, fmt.Errorf("%w: restaurantId is required", ErrInvalidInput))

		return
	}

	reviews, err := s.ListReviews(request.Context(), restaurantID)
	if err != nil {
		writeError(s.logger, writer, err)

		return
	}

	writeData(writer, http.StatusOK, ReviewsFromModel(reviews))
}

func (s *ReviewServer) handleHelpfulVote(writer http.ResponseWriter, request *http.Request) {
	reviewID, err := uuid.Parse(request.PathValue("id"))
	if err != nil {
		writeError(s.logger, writer, fmt.Errorf("%w: %s is not a review id", ErrInvalidInput, request.PathValue("id")))

		return
	}

	if err = s.reviews.AddHelpfulVote(request.Context(), reviewID); err != nil {
		writeError(s.logger, writer, err)

		return
	}

	writeData(writer, http.StatusOK, nil)
}
