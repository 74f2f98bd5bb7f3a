// Package repository holds the GORM-backed repository implementations used
// when a relational driver is configured.
package repository

import (
	"context"
	stderrors "errors"

	"gorm.io/gorm"

	"github.com/Menatic/IT-Support/internal/domain/user"
	"github.com/Menatic/IT-Support/internal/infrastructure/persistence/mappers"
	"github.com/Menatic/IT-Support/internal/infrastructure/persistence/models"
	"github.com/Menatic/IT-Support/internal/shared/errors"
)

type UserRepository struct {
	db     *gorm.DB
	mapper mappers.UserMapper
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{
		db:     db,
		mapper: mappers.NewUserMapper(),
	}
}

func (r *UserRepository) Save(ctx context.Context, u *user.User) error {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.UserModel{}).
		Where("username = ? OR email = ?", u.Username(), u.Email()).
		Count(&count).Error; err != nil {
		return errors.NewInternalError("Failed to check user uniqueness", err.Error())
	}
	if count > 0 {
		return errors.NewConflictError("Username or email already exists")
	}

	model := r.mapper.ToModel(u)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return errors.NewInternalError("Failed to save user", err.Error())
	}

	return u.SetID(model.ID)
}

func (r *UserRepository) GetByID(ctx context.Context, userID uint) (*user.User, error) {
	var model models.UserModel
	if err := r.db.WithContext(ctx).First(&model, userID).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewNotFoundError("User not found")
		}
		return nil, errors.NewInternalError("Failed to find user", err.Error())
	}
	return r.mapper.ToDomain(&model)
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	var model models.UserModel
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&model).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewNotFoundError("User not found")
		}
		return nil, errors.NewInternalError("Failed to find user", err.Error())
	}
	return r.mapper.ToDomain(&model)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	var model models.UserModel
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&model).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewNotFoundError("User not found")
		}
		return nil, errors.NewInternalError("Failed to find user", err.Error())
	}
	return r.mapper.ToDomain(&model)
}

func (r *UserRepository) List(ctx context.Context) ([]*user.User, error) {
	var userModels []models.UserModel
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&userModels).Error; err != nil {
		return nil, errors.NewInternalError("Failed to list users", err.Error())
	}

	users := make([]*user.User, 0, len(userModels))
	for i := range userModels {
		u, err := r.mapper.ToDomain(&userModels[i])
		if err != nil {
			return nil, errors.NewInternalError("Failed to map user", err.Error())
		}
		users = append(users, u)
	}
	return users, nil
}

func (r *UserRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.UserModel{}).Count(&count).Error; err != nil {
		return 0, errors.NewInternalError("Failed to count users", err.Error())
	}
	return count, nil
}
