package persistence

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/budget-control/backend/internal/application/adapter"
	"github.com/budget-control/backend/internal/domain/entity"
	"github.com/budget-control/backend/internal/integration/persistence/model"
)

const groupLabel = "Group"

// groupRepository implements the adapter.GroupRepository interface.
type groupRepository struct {
	db *gorm.DB
}

// NewGroupRepository creates a new group repository instance.
func NewGroupRepository(db *gorm.DB) adapter.GroupRepository {
	return &groupRepository{
		db: db,
	}
}

// Create creates a new group in the database.
func (r *groupRepository) Create(ctx context.Context, group *entity.Group) error {
	groupModel := model.GroupFromEntity(group)
	if err := r.db.WithContext(ctx).Create(groupModel).Error; err != nil {
		return translateWriteError(err, groupLabel)
	}
	group.ID = groupModel.ID
	group.ReferenceID = groupModel.ReferenceID
	return nil
}

// FindByID retrieves a group by its ID.
func (r *groupRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Group, error) {
	var groupModel model.GroupModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&groupModel).Error; err != nil {
		return nil, translateReadError(err)
	}
	return groupModel.ToEntity(), nil
}

// FindByIdentity retrieves groups sharing the candidate's name, owner and reference ID.
func (r *groupRepository) FindByIdentity(ctx context.Context, candidate *entity.Group) ([]*entity.Group, error) {
	query := r.db.WithContext(ctx).
		Where("name = ? AND user_id = ?", candidate.Name, candidate.UserID)
	if candidate.ReferenceID != nil {
		query = query.Where("reference_id = ?", *candidate.ReferenceID)
	} else {
		query = query.Where("reference_id IS NULL")
	}

	var groupModels []model.GroupModel
	if err := query.Find(&groupModels).Error; err != nil {
		return nil, err
	}
	return toGroupEntities(groupModels), nil
}

// FindByFilter retrieves groups matching every supplied criterion.
func (r *groupRepository) FindByFilter(ctx context.Context, filter adapter.GroupFilter) ([]*entity.Group, error) {
	query := r.db.WithContext(ctx).Model(&model.GroupModel{})

	if filter.Name != nil && *filter.Name != "" {
		query = query.Where("name = ?", *filter.Name)
	}
	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}
	if filter.ReferenceID != nil {
		query = query.Where("reference_id = ?", *filter.ReferenceID)
	}

	var groupModels []model.GroupModel
	if err := query.Order("created_at ASC").Find(&groupModels).Error; err != nil {
		return nil, err
	}
	return toGroupEntities(groupModels), nil
}

// Update saves every field of an existing group.
func (r *groupRepository) Update(ctx context.Context, group *entity.Group) error {
	if err := r.db.WithContext(ctx).Save(model.GroupFromEntity(group)).Error; err != nil {
		return translateWriteError(err, groupLabel)
	}
	return nil
}

// Delete removes a group by ID.
func (r *groupRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.GroupModel{}, "id = ?", id).Error
}

func toGroupEntities(groupModels []model.GroupModel) []*entity.Group {
	groups := make([]*entity.Group, len(groupModels))
	for i := range groupModels {
		groups[i] = groupModels[i].ToEntity()
	}
	return groups
}
