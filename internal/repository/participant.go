package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"loco-backend/internal/model"
)

// ParticipantStore 방 참가자 저장소
type ParticipantStore struct {
	db *gorm.DB
}

// NewParticipantStore ParticipantStore 생성
func NewParticipantStore(db *gorm.DB) *ParticipantStore {
	return &ParticipantStore{db: db}
}

// ExistsActive 활성 멤버십 존재 여부
func (s *ParticipantStore) ExistsActive(ctx context.Context, roomID, userID int64) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&model.RoomParticipant{}).
		Where("room_id = ? AND user_id = ?", roomID, userID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// FindActive 활성 멤버십 단건 조회
func (s *ParticipantStore) FindActive(ctx context.Context, roomID, userID int64) (*model.RoomParticipant, error) {
	var rp model.RoomParticipant
	err := s.db.WithContext(ctx).
		Where("room_id = ? AND user_id = ?", roomID, userID).
		First(&rp).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rp, nil
}

// ListJoinedRooms 유저가 참가 중인 활성 방 목록 (방 생성일 최신순, 호스트 즉시 로딩)
//
// 호스트인 방은 참가자 행이 없으므로 여기 포함되지 않는다.
func (s *ParticipantStore) ListJoinedRooms(ctx context.Context, userID int64) ([]model.Room, error) {
	var rooms []model.Room
	err := s.db.WithContext(ctx).
		Model(&model.Room{}).
		Joins("JOIN room_participants ON room_participants.room_id = rooms.id").
		Where("room_participants.user_id = ? AND room_participants.deleted_at IS NULL", userID).
		Preload("Host").
		Order("rooms.created_at DESC").
		Order("rooms.id DESC").
		Find(&rooms).Error
	if err != nil {
		return nil, err
	}
	return rooms, nil
}

// Save 참가자 행 생성
//
// (room_id, user_id) unique index 위반은 동시 join 경합이므로
// ErrDuplicateEntry로 변환해 서비스가 ROOM_ALREADY_JOINED로 올리게 한다.
func (s *ParticipantStore) Save(ctx context.Context, rp *model.RoomParticipant) error {
	err := s.db.WithContext(ctx).Create(rp).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateEntry
	}
	return err
}

// Delete 참가자 행 하드 삭제
//
// leave 후 재참가가 가능해야 하므로 소프트 삭제가 아니라 행을 지운다.
func (s *ParticipantStore) Delete(ctx context.Context, rp *model.RoomParticipant) error {
	return s.db.WithContext(ctx).Unscoped().Delete(rp).Error
}

// CountActiveByRoomIDs 방별 활성 참가자 수 일괄 조회 (호스트 제외)
//
// 참가자가 없는 방은 결과 맵에서 빠진다. 목록 조회당 쿼리 한 번으로
// N+1을 피한다.
func (s *ParticipantStore) CountActiveByRoomIDs(ctx context.Context, roomIDs []int64) (map[int64]int64, error) {
	counts := make(map[int64]int64, len(roomIDs))
	if len(roomIDs) == 0 {
		return counts, nil
	}

	var rows []struct {
		RoomID int64
		Count  int64
	}
	err := s.db.WithContext(ctx).
		Model(&model.RoomParticipant{}).
		Select("room_id, COUNT(*) as count").
		Where("room_id IN ?", roomIDs).
		Group("room_id").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		counts[row.RoomID] = row.Count
	}
	return counts, nil
}
