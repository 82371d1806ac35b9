package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"loco-backend/internal/model"
)

// NoticeStore 공지사항 저장소
type NoticeStore struct {
	db *gorm.DB
}

// NewNoticeStore NoticeStore 생성
func NewNoticeStore(db *gorm.DB) *NoticeStore {
	return &NoticeStore{db: db}
}

// FindActiveByID 활성 공지 단건 조회
func (s *NoticeStore) FindActiveByID(ctx context.Context, id int64) (*model.Notice, error) {
	var notice model.Notice
	err := s.db.WithContext(ctx).First(&notice, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &notice, nil
}

// ListActive 활성 공지 페이지 조회 (최신순) + 전체 건수
func (s *NoticeStore) ListActive(ctx context.Context, offset, limit int) ([]model.Notice, int64, error) {
	var total int64
	if err := s.db.WithContext(ctx).Model(&model.Notice{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var notices []model.Notice
	err := s.db.WithContext(ctx).
		Order("created_at DESC").
		Order("id DESC").
		Offset(offset).
		Limit(limit).
		Find(&notices).Error
	if err != nil {
		return nil, 0, err
	}
	return notices, total, nil
}

// Save 공지 저장
func (s *NoticeStore) Save(ctx context.Context, notice *model.Notice) error {
	return s.db.WithContext(ctx).Save(notice).Error
}

// SoftDelete 공지 소프트 삭제
func (s *NoticeStore) SoftDelete(ctx context.Context, notice *model.Notice) error {
	return s.db.WithContext(ctx).Delete(notice).Error
}
