package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"loco-backend/internal/model"
)

// UserStore 사용자 저장소
type UserStore struct {
	db *gorm.DB
}

// NewUserStore UserStore 생성
func NewUserStore(db *gorm.DB) *UserStore {
	return &UserStore{db: db}
}

// FindActiveByID 활성 사용자 단건 조회
func (s *UserStore) FindActiveByID(ctx context.Context, id int64) (*model.User, error) {
	var user model.User
	err := s.db.WithContext(ctx).First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Save 사용자 저장
func (s *UserStore) Save(ctx context.Context, user *model.User) error {
	err := s.db.WithContext(ctx).Save(user).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateEntry
	}
	return err
}

// SoftDelete 사용자 소프트 삭제 (탈퇴)
func (s *UserStore) SoftDelete(ctx context.Context, user *model.User) error {
	return s.db.WithContext(ctx).Delete(user).Error
}
