package service

import (
	"context"
	"errors"
	"strings"

	"loco-backend/internal/apperr"
	"loco-backend/internal/repository"
)

// UserService 사용자 프로필 비즈니스 로직
type UserService struct {
	users *repository.UserStore
}

// NewUserService UserService 생성
func NewUserService(users *repository.UserStore) *UserService {
	return &UserService{users: users}
}

// Get 사용자 단건 조회
func (s *UserService) Get(ctx context.Context, userID int64) (*UserResponse, error) {
	user, err := s.users.FindActiveByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.ErrUserNotFound
		}
		return nil, err
	}
	resp := userResponseFrom(user)
	return &resp, nil
}

// Update 프로필 부분 수정
//
// null/blank 필드는 덮어쓰지 않는다.
func (s *UserService) Update(ctx context.Context, userID int64, req UserUpdateRequest) (*UserResponse, error) {
	user, err := s.users.FindActiveByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.ErrUserNotFound
		}
		return nil, err
	}

	if req.Nickname != nil && strings.TrimSpace(*req.Nickname) != "" {
		user.Nickname = *req.Nickname
	}
	if req.ProfileImageURL != nil && strings.TrimSpace(*req.ProfileImageURL) != "" {
		user.ProfileImageURL = req.ProfileImageURL
	}
	if req.Email != nil && strings.TrimSpace(*req.Email) != "" {
		user.Email = req.Email
	}

	if err := s.users.Save(ctx, user); err != nil {
		return nil, err
	}
	resp := userResponseFrom(user)
	return &resp, nil
}

// Withdraw 회원 탈퇴 (소프트 삭제), 탈퇴한 사용자 ID 반환
func (s *UserService) Withdraw(ctx context.Context, userID int64) (int64, error) {
	user, err := s.users.FindActiveByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return 0, apperr.ErrUserNotFound
		}
		return 0, err
	}
	if err := s.users.SoftDelete(ctx, user); err != nil {
		return 0, err
	}
	return user.ID, nil
}
