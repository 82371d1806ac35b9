package service

import (
	"time"

	"loco-backend/internal/model"
)

// RoomCreateRequest 방 생성 요청
type RoomCreateRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	IsPrivate   *bool   `json:"is_private,omitempty"`
	Thumbnail   *string `json:"thumbnail,omitempty"`
}

// RoomUpdateRequest 방 부분 수정 요청
//
// 누락(null) 필드는 기존 값을 유지한다. name은 빈 문자열도 "변경 없음"으로
// 취급한다.
type RoomUpdateRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	IsPrivate   *bool   `json:"is_private,omitempty"`
	Thumbnail   *string `json:"thumbnail,omitempty"`
}

// RoomResponse 방 생성/조회 응답
type RoomResponse struct {
	ID                  int64   `json:"id"`
	Name                string  `json:"name"`
	Description         *string `json:"description,omitempty"`
	IsPrivate           bool    `json:"is_private"`
	Thumbnail           *string `json:"thumbnail,omitempty"`
	HostID              int64   `json:"host_id"`
	InviteCode          *string `json:"invite_code,omitempty"`
	HostNickname        string  `json:"host_nickname"`
	HostProfileImageURL *string `json:"host_profile_image_url,omitempty"`
	MemberCount         int64   `json:"member_count"` // 호스트 포함
	CreatedAt           string  `json:"created_at"`
}

// roomResponseFrom Room 엔티티 → 응답 변환 (memberCount는 호스트 포함 값)
func roomResponseFrom(room *model.Room, memberCount int64) RoomResponse {
	return RoomResponse{
		ID:                  room.ID,
		Name:                room.Name,
		Description:         room.Description,
		IsPrivate:           room.IsPrivate,
		Thumbnail:           room.Thumbnail,
		HostID:              room.HostID,
		InviteCode:          room.InviteCode,
		HostNickname:        room.Host.Nickname,
		HostProfileImageURL: room.Host.ProfileImageURL,
		MemberCount:         memberCount,
		CreatedAt:           room.CreatedAt.Format(time.RFC3339),
	}
}

// UserResponse 사용자 응답
type UserResponse struct {
	ID              int64   `json:"id"`
	Provider        string  `json:"provider"`
	Email           *string `json:"email,omitempty"`
	Nickname        string  `json:"nickname"`
	ProfileImageURL *string `json:"profile_image_url,omitempty"`
	CreatedAt       string  `json:"created_at"`
}

func userResponseFrom(user *model.User) UserResponse {
	return UserResponse{
		ID:              user.ID,
		Provider:        user.Provider,
		Email:           user.Email,
		Nickname:        user.Nickname,
		ProfileImageURL: user.ProfileImageURL,
		CreatedAt:       user.CreatedAt.Format(time.RFC3339),
	}
}

// UserUpdateRequest 프로필 부분 수정 요청 (null/blank는 덮어쓰지 않음)
type UserUpdateRequest struct {
	Nickname        *string `json:"nickname,omitempty"`
	ProfileImageURL *string `json:"profile_image_url,omitempty"`
	Email           *string `json:"email,omitempty"`
}

// NoticeRequest 공지 생성/수정 요청
type NoticeRequest struct {
	Title   *string `json:"title,omitempty"`
	Content *string `json:"content,omitempty"`
}

// NoticeResponse 공지 응답
type NoticeResponse struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

func noticeResponseFrom(notice *model.Notice) NoticeResponse {
	return NoticeResponse{
		ID:        notice.ID,
		Title:     notice.Title,
		Content:   notice.Content,
		CreatedAt: notice.CreatedAt.Format(time.RFC3339),
		UpdatedAt: notice.UpdatedAt.Format(time.RFC3339),
	}
}

// PageResponse 페이지 응답 래퍼
type PageResponse[T any] struct {
	Content     []T   `json:"content"`
	Page        int   `json:"page"`
	Size        int   `json:"size"`
	TotalCount  int64 `json:"total_count"`
	TotalPages  int   `json:"total_pages"`
	HasNext     bool  `json:"has_next"`
	HasPrevious bool  `json:"has_previous"`
}
