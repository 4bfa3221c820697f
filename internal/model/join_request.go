package model

import (
	"time"
)

type JoinRequest struct {
	ID        int64     `gorm:"column:id;primaryKey" json:"id"`
	GroupID   int64     `gorm:"column:group_id" json:"groupId"`
	UserID    int64     `gorm:"column:user_id" json:"userId"`
	Email     string    `gorm:"column:email" json:"email"`
	Status    string    `gorm:"column:status" json:"status"`
	CreatedAt time.Time `gorm:"column:created_at" json:"createdAt"`
}

func (jr JoinRequest) TableName() string {
	return "join_requests"
}
