package persistence

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/budget-control/backend/internal/application/adapter"
	"github.com/budget-control/backend/internal/domain/entity"
	"github.com/budget-control/backend/internal/integration/persistence/model"
)

const userLabel = "User"

// userRepository implements the adapter.UserRepository interface.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository instance.
func NewUserRepository(db *gorm.DB) adapter.UserRepository {
	return &userRepository{
		db: db,
	}
}

// Create creates a new user in the database.
func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	userModel := model.UserFromEntity(user)
	if err := r.db.WithContext(ctx).Create(userModel).Error; err != nil {
		return translateWriteError(err, userLabel)
	}
	user.ID = userModel.ID
	return nil
}

// FindByID retrieves a user by their ID.
func (r *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userModel model.UserModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&userModel).Error; err != nil {
		return nil, translateReadError(err)
	}
	return userModel.ToEntity(), nil
}

// FindByEmail retrieves a user by their email address.
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userModel model.UserModel
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&userModel).Error; err != nil {
		return nil, translateReadError(err)
	}
	return userModel.ToEntity(), nil
}

// FindByIdentity retrieves users sharing the candidate's names, CPF and email.
func (r *userRepository) FindByIdentity(ctx context.Context, candidate *entity.User) ([]*entity.User, error) {
	var userModels []model.UserModel
	result := r.db.WithContext(ctx).
		Where("first_name = ? AND last_name = ? AND cpf = ? AND email = ?",
			candidate.FirstName, candidate.LastName, candidate.CPF, candidate.Email).
		Find(&userModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toUserEntities(userModels), nil
}

// FindByFilter retrieves users matching every supplied criterion.
func (r *userRepository) FindByFilter(ctx context.Context, filter adapter.UserFilter) ([]*entity.User, error) {
	query := r.db.WithContext(ctx).Model(&model.UserModel{})

	if filter.FirstName != nil && *filter.FirstName != "" {
		query = query.Where("first_name = ?", *filter.FirstName)
	}
	if filter.LastName != nil && *filter.LastName != "" {
		query = query.Where("last_name = ?", *filter.LastName)
	}
	if filter.Email != nil && *filter.Email != "" {
		query = query.Where("email = ?", *filter.Email)
	}
	if filter.CPF != nil && *filter.CPF != "" {
		query = query.Where("cpf = ?", *filter.CPF)
	}
	if filter.BirthDate != nil {
		query = query.Where("birth_date = ?", *filter.BirthDate)
	}
	if filter.Role != nil {
		query = query.Where("role = ?", string(*filter.Role))
	}

	var userModels []model.UserModel
	if err := query.Order("created_at ASC").Find(&userModels).Error; err != nil {
		return nil, err
	}
	return toUserEntities(userModels), nil
}

// FindByGroupID retrieves every user belonging to the group.
func (r *userRepository) FindByGroupID(ctx context.Context, groupID uuid.UUID) ([]*entity.User, error) {
	var userModels []model.UserModel
	result := r.db.WithContext(ctx).
		Where("group_id = ?", groupID).
		Order("created_at ASC").
		Find(&userModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toUserEntities(userModels), nil
}

// Update saves every field of an existing user.
func (r *userRepository) Update(ctx context.Context, user *entity.User) error {
	if err := r.db.WithContext(ctx).Save(model.UserFromEntity(user)).Error; err != nil {
		return translateWriteError(err, userLabel)
	}
	return nil
}

// Delete removes a user by ID.
func (r *userRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.UserModel{}, "id = ?", id).Error
}

func toUserEntities(userModels []model.UserModel) []*entity.User {
	users := make([]*entity.User, len(userModels))
	for i := range userModels {
		users[i] = userModels[i].ToEntity()
	}
	return users
}
