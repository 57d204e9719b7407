package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/courtneystore/catalog-api/internal/models"
)

func (r *GormRepo) CreateUser(ctx context.Context, u *models.User) error {
	return r.DB.WithContext(ctx).Create(u).Error
}

// FindByUsername returns (nil, nil) when no user matches. Uniqueness of
// usernames is enforced only by the store's index, never checked here.
func (r *GormRepo) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := r.DB.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}
