package service

import (
	"context"
	"errors"
	"strings"

	"loco-backend/internal/apperr"
	"loco-backend/internal/cache"
	"loco-backend/internal/invite"
	"loco-backend/internal/model"
	"loco-backend/internal/repository"
)

// 초대코드 길이
const inviteCodeLength = 8

// membership 호출 시점에 한 번 계산되는 유효 멤버십
type membership int

const (
	membershipNone membership = iota
	membershipParticipant
	membershipHost
)

// RoomService 방 생성/조회/수정/삭제와 참가/탈퇴 비즈니스 로직
type RoomService struct {
	rooms        *repository.RoomStore
	users        *repository.UserStore
	participants *repository.ParticipantStore
	codes        *invite.Generator
	counts       *cache.MemberCountCache // nil 허용
}

// NewRoomService RoomService 생성
func NewRoomService(
	rooms *repository.RoomStore,
	users *repository.UserStore,
	participants *repository.ParticipantStore,
	codes *invite.Generator,
	counts *cache.MemberCountCache,
) *RoomService {
	return &RoomService{
		rooms:        rooms,
		users:        users,
		participants: participants,
		codes:        codes,
		counts:       counts,
	}
}

// Create 방 생성
//
// 초대코드는 공개방에도 발급한다. 비공개 전환 대비용이고 검사는 비공개
// join에서만 한다.
func (s *RoomService) Create(ctx context.Context, req RoomCreateRequest, hostID int64) (*RoomResponse, error) {
	host, err := s.users.FindActiveByID(ctx, hostID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.ErrUserNotFound
		}
		return nil, err
	}

	if strings.TrimSpace(req.Name) == "" {
		return nil, apperr.ErrInvalidInput
	}

	code, err := s.generateUniqueInviteCode(ctx, inviteCodeLength)
	if err != nil {
		return nil, err
	}

	room := &model.Room{
		Name:        req.Name,
		Description: req.Description,
		IsPrivate:   req.IsPrivate != nil && *req.IsPrivate,
		InviteCode:  &code,
		Thumbnail:   req.Thumbnail,
		HostID:      host.ID,
	}
	if err := s.rooms.Save(ctx, room); err != nil {
		return nil, err
	}
	room.Host = *host

	// 참가자 없이 호스트뿐이므로 멤버 수는 1
	resp := roomResponseFrom(room, 1)
	return &resp, nil
}

// generateUniqueInviteCode 미사용 초대코드가 나올 때까지 생성-검사 반복
//
// 코드 공간(32^8)이 방 수에 비해 압도적으로 커서 사실상 한두 번에 끝난다.
// 최종 유일성 보장은 rooms.invite_code unique index 몫이다.
func (s *RoomService) generateUniqueInviteCode(ctx context.Context, length int) (string, error) {
	for {
		code := s.codes.Generate(length)
		exists, err := s.rooms.ExistsByInviteCode(ctx, code)
		if err != nil {
			return "", err
		}
		if !exists {
			return code, nil
		}
	}
}

// GetPublicDetail 공개방 상세 조회
//
// 비공개방을 공개 엔드포인트로 조회하면 404로 응답한다. 존재 여부 자체를
// 숨기기 위해 mismatch와 부재를 구분하지 않는다.
func (s *RoomService) GetPublicDetail(ctx context.Context, roomID int64) (*RoomResponse, error) {
	return s.getDetail(ctx, roomID, false)
}

// GetPrivateDetail 비공개방 상세 조회
func (s *RoomService) GetPrivateDetail(ctx context.Context, roomID int64) (*RoomResponse, error) {
	return s.getDetail(ctx, roomID, true)
}

func (s *RoomService) getDetail(ctx context.Context, roomID int64, wantPrivate bool) (*RoomResponse, error) {
	room, err := s.findActiveRoom(ctx, roomID)
	if err != nil {
		return nil, err
	}
	if room.IsPrivate != wantPrivate {
		return nil, apperr.ErrRoomNotFound
	}

	count, err := s.memberCount(ctx, room.ID)
	if err != nil {
		return nil, err
	}
	resp := roomResponseFrom(room, count)
	return &resp, nil
}

// ListPublic 공개방 목록 (최신순)
func (s *RoomService) ListPublic(ctx context.Context) ([]RoomResponse, error) {
	rooms, err := s.rooms.ListPublic(ctx)
	if err != nil {
		return nil, err
	}
	return s.toResponses(ctx, rooms)
}

// ListPrivate 비공개방 목록 (최신순)
func (s *RoomService) ListPrivate(ctx context.Context) ([]RoomResponse, error) {
	rooms, err := s.rooms.ListPrivate(ctx)
	if err != nil {
		return nil, err
	}
	return s.toResponses(ctx, rooms)
}

// Update 방 정보 부분 수정 (호스트 전용)
func (s *RoomService) Update(ctx context.Context, roomID, requesterID int64, req RoomUpdateRequest) (*RoomResponse, error) {
	room, err := s.findActiveRoom(ctx, roomID)
	if err != nil {
		return nil, err
	}
	if room.HostID != requesterID {
		return nil, apperr.ErrRoomNotHost
	}

	// 부분 업데이트: 빈 name은 에러가 아니라 "변경 없음"
	if req.Name != nil && strings.TrimSpace(*req.Name) != "" {
		room.Name = *req.Name
	}
	if req.Description != nil {
		room.Description = req.Description
	}
	if req.IsPrivate != nil {
		room.IsPrivate = *req.IsPrivate
	}
	if req.Thumbnail != nil {
		room.Thumbnail = req.Thumbnail
	}

	if err := s.rooms.Save(ctx, room); err != nil {
		return nil, err
	}

	count, err := s.memberCount(ctx, room.ID)
	if err != nil {
		return nil, err
	}
	resp := roomResponseFrom(room, count)
	return &resp, nil
}

// Delete 방 소프트 삭제 (호스트 전용), 삭제된 방 ID 반환
func (s *RoomService) Delete(ctx context.Context, roomID, requesterID int64) (int64, error) {
	room, err := s.findActiveRoom(ctx, roomID)
	if err != nil {
		return 0, err
	}
	if room.HostID != requesterID {
		return 0, apperr.ErrRoomNotHost
	}

	if err := s.rooms.SoftDelete(ctx, room); err != nil {
		return 0, err
	}
	s.counts.Invalidate(ctx, room.ID)
	return room.ID, nil
}

// ListHosted 내가 호스트인 활성 방 목록 (최신순)
func (s *RoomService) ListHosted(ctx context.Context, userID int64) ([]RoomResponse, error) {
	if err := s.requireUser(ctx, userID); err != nil {
		return nil, err
	}
	rooms, err := s.rooms.ListByHost(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.toResponses(ctx, rooms)
}

// ListJoined 내가 참가자인 활성 방 목록 (방 생성일 최신순)
//
// 호스트인 방은 포함되지 않는다. 호스팅과 참가는 이 뷰에서 서로 다른
// 범주다.
func (s *RoomService) ListJoined(ctx context.Context, userID int64) ([]RoomResponse, error) {
	if err := s.requireUser(ctx, userID); err != nil {
		return nil, err
	}
	rooms, err := s.participants.ListJoinedRooms(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.toResponses(ctx, rooms)
}

// Join 방 참가
func (s *RoomService) Join(ctx context.Context, roomID, userID int64, inviteCode *string) (*RoomResponse, error) {
	room, err := s.findActiveRoom(ctx, roomID)
	if err != nil {
		return nil, err
	}
	if err := s.requireUser(ctx, userID); err != nil {
		return nil, err
	}

	m, err := s.effectiveMembership(ctx, room, userID)
	if err != nil {
		return nil, err
	}
	switch m {
	case membershipHost:
		// 호스트는 항상 암묵 멤버. 참가자 행 없이 성공으로 응답한다(멱등).
		return s.respondWithCount(ctx, room)
	case membershipParticipant:
		return nil, apperr.ErrAlreadyJoined
	}

	// 비공개방은 초대코드 정확 일치 필요. 공개방은 코드가 와도 무시한다.
	if room.IsPrivate {
		codeOk := inviteCode != nil && room.InviteCode != nil && *inviteCode == *room.InviteCode
		if !codeOk {
			return nil, apperr.ErrInvalidInviteCode
		}
	}

	rp := &model.RoomParticipant{
		RoomID: room.ID,
		UserID: userID,
	}
	if err := s.participants.Save(ctx, rp); err != nil {
		// 동시 join 경합: unique index가 잡아낸 중복은 이미 참가한 것
		if errors.Is(err, repository.ErrDuplicateEntry) {
			return nil, apperr.ErrAlreadyJoined
		}
		return nil, err
	}
	s.counts.Invalidate(ctx, room.ID)

	return s.respondWithCount(ctx, room)
}

// Leave 방 나가기 (호스트 금지)
func (s *RoomService) Leave(ctx context.Context, roomID, userID int64) (*RoomResponse, error) {
	room, err := s.findActiveRoom(ctx, roomID)
	if err != nil {
		return nil, err
	}
	if err := s.requireUser(ctx, userID); err != nil {
		return nil, err
	}

	if room.HostID == userID {
		return nil, apperr.ErrHostCannotLeave
	}

	rp, err := s.participants.FindActive(ctx, roomID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.ErrParticipantNotFound
		}
		return nil, err
	}
	if err := s.participants.Delete(ctx, rp); err != nil {
		return nil, err
	}
	s.counts.Invalidate(ctx, room.ID)

	return s.respondWithCount(ctx, room)
}

// --- 내부 헬퍼 ---

func (s *RoomService) findActiveRoom(ctx context.Context, roomID int64) (*model.Room, error) {
	room, err := s.rooms.FindActiveByID(ctx, roomID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.ErrRoomNotFound
		}
		return nil, err
	}
	return room, nil
}

func (s *RoomService) requireUser(ctx context.Context, userID int64) error {
	if _, err := s.users.FindActiveByID(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperr.ErrUserNotFound
		}
		return err
	}
	return nil
}

// effectiveMembership (room, user) 쌍의 유효 멤버십을 한 번 계산
func (s *RoomService) effectiveMembership(ctx context.Context, room *model.Room, userID int64) (membership, error) {
	if room.HostID == userID {
		return membershipHost, nil
	}
	exists, err := s.participants.ExistsActive(ctx, room.ID, userID)
	if err != nil {
		return membershipNone, err
	}
	if exists {
		return membershipParticipant, nil
	}
	return membershipNone, nil
}

// memberCount 방 멤버 수 (참가자 + 호스트 1)
func (s *RoomService) memberCount(ctx context.Context, roomID int64) (int64, error) {
	if cached, ok := s.counts.Get(ctx, roomID); ok {
		return cached + 1, nil
	}
	counts, err := s.participants.CountActiveByRoomIDs(ctx, []int64{roomID})
	if err != nil {
		return 0, err
	}
	s.counts.Set(ctx, roomID, counts[roomID])
	return counts[roomID] + 1, nil
}

func (s *RoomService) respondWithCount(ctx context.Context, room *model.Room) (*RoomResponse, error) {
	count, err := s.memberCount(ctx, room.ID)
	if err != nil {
		return nil, err
	}
	resp := roomResponseFrom(room, count)
	return &resp, nil
}

// toResponses 목록 변환: 멤버 수는 페이지당 한 번의 집계 쿼리로 채운다
func (s *RoomService) toResponses(ctx context.Context, rooms []model.Room) ([]RoomResponse, error) {
	ids := make([]int64, 0, len(rooms))
	counts := make(map[int64]int64, len(rooms))
	for _, room := range rooms {
		if cached, ok := s.counts.Get(ctx, room.ID); ok {
			counts[room.ID] = cached
			continue
		}
		ids = append(ids, room.ID)
	}

	if len(ids) > 0 {
		fetched, err := s.participants.CountActiveByRoomIDs(ctx, ids)
		if err != nil {
			return nil, err
		}
		for _, id := range ids {
			counts[id] = fetched[id] // 집계에 없는 방은 0
			s.counts.Set(ctx, id, fetched[id])
		}
	}

	responses := make([]RoomResponse, len(rooms))
	for i := range rooms {
		responses[i] = roomResponseFrom(&rooms[i], counts[rooms[i].ID]+1)
	}
	return responses, nil
}
