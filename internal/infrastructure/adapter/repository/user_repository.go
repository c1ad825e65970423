package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/fintrackhq/fintrack-api/internal/domain/entity"
	errs "github.com/fintrackhq/fintrack-api/internal/domain/error"
	coreport "github.com/fintrackhq/fintrack-api/internal/domain/port/core"
	"github.com/fintrackhq/fintrack-api/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// UserRepository implements persistence.UserRepository using GORM
type UserRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewUserRepository creates a new UserRepository instance
func NewUserRepository(db *gorm.DB, logger coreport.Logger) *UserRepository {
	return &UserRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// modelToEntity converts a user model to an entity
func (r *UserRepository) modelToEntity(userModel *model.User) *entity.User {
	return &entity.User{
		ID:           userModel.ID,
		Email:        userModel.Email,
		PasswordHash: userModel.PasswordHash,
		FirstName:    userModel.FirstName,
		LastName:     userModel.LastName,
		Role:         entity.Role(userModel.Role),
		CreatedAt:    userModel.CreatedAt,
		UpdatedAt:    userModel.UpdatedAt,
	}
}

// handleDatabaseError standardizes database error handling
func (r *UserRepository) handleDatabaseError(operation string, err error, userID uint64) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		r.logger.Warn("User not found", map[string]any{
			"user_id": userID,
		})
		return errs.ErrUserNotFound
	}

	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"user_id": userID,
		"error":   err.Error(),
	})

	if r.errorClassifier.IsDuplicateKeyError(err) {
		return errs.ErrEmailInUse
	}

	if r.errorClassifier.IsConnectionError(err) {
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}

	return err
}

// Create persists a new user and fills the store-generated fields
func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	userModel := model.User{
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		Role:         string(user.Role),
	}

	result := r.db.WithContext(ctx).Create(&userModel)
	if result.Error != nil {
		return r.handleDatabaseError("creating user", result.Error, 0)
	}

	user.ID = userModel.ID
	user.CreatedAt = userModel.CreatedAt
	user.UpdatedAt = userModel.UpdatedAt

	r.logger.Debug("User created", map[string]any{
		"user_id": user.ID,
	})
	return nil
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id uint64) (*entity.User, error) {
	var userModel model.User
	result := r.db.WithContext(ctx).First(&userModel, id)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting user", result.Error, id)
	}

	return r.modelToEntity(&userModel), nil
}

// List returns users matching the query's equality filters, ordered by
// creation time and paginated
func (r *UserRepository) List(ctx context.Context, query entity.ListUsersQuery) ([]entity.User, error) {
	tx := r.db.WithContext(ctx).Model(&model.User{})

	if query.Role != nil {
		tx = tx.Where("role = ?", string(*query.Role))
	}
	if query.Email != nil {
		tx = tx.Where("email = ?", *query.Email)
	}

	var userModels []model.User
	result := tx.
		Order(orderByCreatedAt(query.Sort == entity.SortAsc)).
		Limit(query.Take).
		Offset(query.Skip).
		Find(&userModels)
	if result.Error != nil {
		return nil, r.handleDatabaseError("listing users", result.Error, 0)
	}

	users := make([]entity.User, 0, len(userModels))
	for i := range userModels {
		users = append(users, *r.modelToEntity(&userModels[i]))
	}
	return users, nil
}

// Update applies a sparse patch to the user with the given ID and
// returns the updated record
func (r *UserRepository) Update(ctx context.Context, id uint64, patch entity.UserPatch) (*entity.User, error) {
	fields := map[string]interface{}{}
	if patch.Email != nil {
		fields["email"] = *patch.Email
	}
	if patch.PasswordHash != nil {
		fields["password_hash"] = *patch.PasswordHash
	}
	if patch.FirstName != nil {
		fields["first_name"] = *patch.FirstName
	}
	if patch.LastName != nil {
		fields["last_name"] = *patch.LastName
	}
	if patch.Role != nil {
		fields["role"] = string(*patch.Role)
	}

	result := r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", id).
		Updates(fields)
	if result.Error != nil {
		return nil, r.handleDatabaseError("updating user", result.Error, id)
	}
	if result.RowsAffected == 0 {
		r.logger.Warn("User not found during update", map[string]any{
			"user_id": id,
		})
		return nil, errs.ErrUserNotFound
	}

	return r.GetByID(ctx, id)
}

// Delete removes the user with the given ID
func (r *UserRepository) Delete(ctx context.Context, id uint64) error {
	result := r.db.WithContext(ctx).Delete(&model.User{}, id)
	if result.Error != nil {
		return r.handleDatabaseError("deleting user", result.Error, id)
	}
	if result.RowsAffected == 0 {
		r.logger.Warn("User not found during delete", map[string]any{
			"user_id": id,
		})
		return errs.ErrUserNotFound
	}

	r.logger.Debug("User deleted", map[string]any{
		"user_id": id,
	})
	return nil
}
