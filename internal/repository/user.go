package repository

import (
	"context"

	"circles/internal/model"
	"circles/internal/pkg/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type UserRepository struct {
	db *db.DB
}

func NewUserRepository(db *db.DB) *UserRepository {
	return &UserRepository{db}
}

func (u *UserRepository) Insert(ctx context.Context, user *model.User) (int64, error) {
	err := u.db.Wrap(ctx, "Insert", func(tx *gorm.DB) *gorm.DB {
		return tx.Create(&user)
	})
	if err != nil {
		return 0, errors.Wrap(err, "Insert")
	}
	return user.ID, nil
}

func (u *UserRepository) FindOne(ctx context.Context, id int64) (*model.User, error) {
	var resp *model.User
	err := u.db.Wrap(ctx, "FindOne", func(tx *gorm.DB) *gorm.DB {
		return tx.First(&resp, "id=?", id)
	})
	if err != nil {
		return nil, errors.Wrap(err, "FindOne")
	}
	return resp, nil
}

func (u *UserRepository) FindOneByEmail(ctx context.Context, email string) (*model.User, error) {
	var resp *model.User
	err := u.db.Wrap(ctx, "FindOneByEmail", func(tx *gorm.DB) *gorm.DB {
		return tx.First(&resp, "email=?", email)
	})
	if err != nil {
		return nil, errors.Wrap(err, "FindOneByEmail")
	}
	return resp, nil
}
