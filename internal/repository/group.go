package repository

import (
	"context"

	"circles/internal/model"
	"circles/internal/pkg/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type GroupRepository struct {
	db *db.DB
}

func NewGroupRepository(db *db.DB) *GroupRepository {
	return &GroupRepository{db}
}

func (g *GroupRepository) List(ctx context.Context) ([]*model.Group, error) {
	resp := make([]*model.Group, 0)
	err := g.db.Wrap(ctx, "ListGroups", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("id").Find(&resp)
	})
	if err != nil {
		return nil, errors.Wrap(err, "ListGroups")
	}
	return resp, nil
}

func (g *GroupRepository) FindOne(ctx context.Context, id int64) (*model.Group, error) {
	var resp *model.Group
	err := g.db.Wrap(ctx, "FindOne", func(tx *gorm.DB) *gorm.DB {
		return tx.First(&resp, "id=?", id)
	})
	if err != nil {
		return nil, errors.Wrap(err, "FindOne")
	}
	return resp, nil
}

func (g *GroupRepository) Create(ctx context.Context, group *model.Group) (int64, error) {
	err := g.db.Wrap(ctx, "CreateGroup", func(tx *gorm.DB) *gorm.DB {
		return tx.Create(&group)
	})
	if err != nil {
		return 0, errors.Wrap(err, "CreateGroup")
	}
	return group.ID, nil
}

// Update applies the present fields and returns the resulting row, or
// gorm.ErrRecordNotFound when the id does not exist. It never decides
// authorization; callers own that.
func (g *GroupRepository) Update(ctx context.Context, id int64, values map[string]any) (*model.Group, error) {
	if len(values) > 0 {
		err := g.db.Wrap(ctx, "UpdateGroup", func(tx *gorm.DB) *gorm.DB {
			return tx.Model(&model.Group{}).Where("id=?", id).Updates(values)
		})
		if err != nil {
			return nil, errors.Wrap(err, "UpdateGroup")
		}
	}
	var resp *model.Group
	err := g.db.Wrap(ctx, "FindOne", func(tx *gorm.DB) *gorm.DB {
		return tx.First(&resp, "id=?", id)
	})
	if err != nil {
		return nil, errors.Wrap(err, "UpdateGroup")
	}
	return resp, nil
}

// Delete is a no-op when the id does not exist.
func (g *GroupRepository) Delete(ctx context.Context, id int64) error {
	err := g.db.Wrap(ctx, "DeleteGroup", func(tx *gorm.DB) *gorm.DB {
		return tx.Delete(&model.Group{}, "id=?", id)
	})
	if err != nil {
		return errors.Wrap(err, "DeleteGroup")
	}
	return nil
}
