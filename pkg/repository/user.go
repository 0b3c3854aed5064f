package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"droscher.com/AuthenticEats/pkg/model"
)

var ErrUserNotFound = errors.New("user not found")

func (r *Repository) GetUserBySubject(ctx context.Context, subject string) (*model.User, error) {
	var user model.User

	result := r.DB.WithContext(ctx).Preload("CuisineExpertise").Where("subject = ?", subject).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}

		return nil, result.Error
	}

	return &user, nil
}

func (r *Repository) AddUser(ctx context.Context, subject string, name string, email string, picture *string) (*model.User, error) {
	user := model.User{
		UUID:    uuid.New(),
		Subject: subject,
		Name:    name,
		Email:   email,
		Picture: picture,
	}

	if result := r.DB.WithContext(ctx).Create(&user); result.Error != nil {
		return nil, result.Error
	}

	return &user, nil
}

// GetOrCreateUser backs the auth middleware: identities arrive from the
// provider already verified, so an unknown subject simply becomes a new user.
func (r *Repository) GetOrCreateUser(ctx context.Context, subject string, name string, email string, picture *string) (*model.User, error) {
	user, err := r.GetUserBySubject(ctx, subject)
	if err == nil {
		return user, nil
	}

	if !errors.Is(err, ErrUserNotFound) {
		return nil, err
	}

	return r.AddUser(ctx, subject, name, email, picture)
}
