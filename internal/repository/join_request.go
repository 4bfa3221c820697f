package repository

import (
	"context"

	"circles/internal/model"
	"circles/internal/pkg/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const (
	JoinRequestPendingStatus  = "pending"
	JoinRequestApprovedStatus = "approved"
	JoinRequestRejectedStatus = "rejected"
)

type JoinRequestRepository struct {
	db *db.DB
}

func NewJoinRequestRepository(db *db.DB) *JoinRequestRepository {
	return &JoinRequestRepository{db}
}

func (j *JoinRequestRepository) Insert(ctx context.Context, data *model.JoinRequest) (int64, error) {
	if data.Status == "" {
		data.Status = JoinRequestPendingStatus
	}
	err := j.db.Wrap(ctx, "Insert", func(tx *gorm.DB) *gorm.DB {
		return tx.Create(&data)
	})
	if err != nil {
		return 0, errors.Wrap(err, "Insert")
	}
	return data.ID, nil
}

func (j *JoinRequestRepository) ListByGroupId(ctx context.Context, groupID int64) ([]*model.JoinRequest, error) {
	result := make([]*model.JoinRequest, 0)
	err := j.db.Wrap(ctx, "ListByGroupId", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("id").Find(&result, "group_id=?", groupID)
	})
	if err != nil {
		return nil, errors.Wrap(err, "ListByGroupId")
	}
	return result, nil
}
