package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"loco-backend/internal/model"
)

// RoomStore 방 저장소
type RoomStore struct {
	db *gorm.DB
}

// NewRoomStore RoomStore 생성
func NewRoomStore(db *gorm.DB) *RoomStore {
	return &RoomStore{db: db}
}

// FindActiveByID 활성 방 단건 조회 (호스트 즉시 로딩)
func (s *RoomStore) FindActiveByID(ctx context.Context, id int64) (*model.Room, error) {
	var room model.Room
	err := s.db.WithContext(ctx).
		Preload("Host").
		First(&room, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &room, nil
}

// ExistsByInviteCode 초대코드 사용 여부
//
// 소프트 삭제된 방까지 포함해 검사한다. 삭제 시 코드가 NULL로 풀리므로
// 보통은 활성 방만 걸리지만, 삭제 직전 경합까지 막으려면 Unscoped가 맞다.
func (s *RoomStore) ExistsByInviteCode(ctx context.Context, code string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Unscoped().
		Model(&model.Room{}).
		Where("invite_code = ?", code).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListPublic 공개방 최신순
func (s *RoomStore) ListPublic(ctx context.Context) ([]model.Room, error) {
	return s.listByVisibility(ctx, false)
}

// ListPrivate 비공개방 최신순
func (s *RoomStore) ListPrivate(ctx context.Context) ([]model.Room, error) {
	return s.listByVisibility(ctx, true)
}

func (s *RoomStore) listByVisibility(ctx context.Context, isPrivate bool) ([]model.Room, error) {
	var rooms []model.Room
	err := s.db.WithContext(ctx).
		Preload("Host").
		Where("is_private = ?", isPrivate).
		Order("created_at DESC").
		Order("id DESC").
		Find(&rooms).Error
	if err != nil {
		return nil, err
	}
	return rooms, nil
}

// ListByHost 호스트가 만든 활성 방 최신순
func (s *RoomStore) ListByHost(ctx context.Context, hostID int64) ([]model.Room, error) {
	var rooms []model.Room
	err := s.db.WithContext(ctx).
		Preload("Host").
		Where("host_id = ?", hostID).
		Order("created_at DESC").
		Order("id DESC").
		Find(&rooms).Error
	if err != nil {
		return nil, err
	}
	return rooms, nil
}

// Save 방 저장 (ID가 있으면 갱신, 없으면 생성)
func (s *RoomStore) Save(ctx context.Context, room *model.Room) error {
	err := s.db.WithContext(ctx).Save(room).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateEntry
	}
	return err
}

// SoftDelete 방 소프트 삭제
//
// 한 트랜잭션에서 초대코드를 NULL로 풀고(코드 공간 반납), 참가자 행을
// 같이 소프트 삭제한 뒤(cascade), 방 자체를 소프트 삭제한다.
func (s *RoomStore) SoftDelete(ctx context.Context, room *model.Room) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(room).Update("invite_code", nil).Error; err != nil {
			return err
		}
		if err := tx.Where("room_id = ?", room.ID).Delete(&model.RoomParticipant{}).Error; err != nil {
			return err
		}
		return tx.Delete(room).Error
	})
}
