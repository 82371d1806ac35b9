package service

import (
	"context"
	"errors"
	"strings"

	"loco-backend/internal/apperr"
	"loco-backend/internal/model"
	"loco-backend/internal/repository"
)

// NoticeService 공지사항 비즈니스 로직
type NoticeService struct {
	notices *repository.NoticeStore
}

// NewNoticeService NoticeService 생성
func NewNoticeService(notices *repository.NoticeStore) *NoticeService {
	return &NoticeService{notices: notices}
}

// List 공지 페이지 조회 (page는 0부터)
func (s *NoticeService) List(ctx context.Context, page, size int) (*PageResponse[NoticeResponse], error) {
	if page < 0 {
		page = 0
	}
	if size < 1 || size > 100 {
		size = 10
	}

	notices, total, err := s.notices.ListActive(ctx, page*size, size)
	if err != nil {
		return nil, err
	}

	content := make([]NoticeResponse, len(notices))
	for i := range notices {
		content[i] = noticeResponseFrom(&notices[i])
	}

	totalPages := int((total + int64(size) - 1) / int64(size))
	return &PageResponse[NoticeResponse]{
		Content:     content,
		Page:        page,
		Size:        size,
		TotalCount:  total,
		TotalPages:  totalPages,
		HasNext:     page+1 < totalPages,
		HasPrevious: page > 0,
	}, nil
}

// Get 공지 단건 조회
func (s *NoticeService) Get(ctx context.Context, id int64) (*NoticeResponse, error) {
	notice, err := s.findActive(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := noticeResponseFrom(notice)
	return &resp, nil
}

// Create 공지 생성
func (s *NoticeService) Create(ctx context.Context, req NoticeRequest) (*NoticeResponse, error) {
	if req.Title == nil || strings.TrimSpace(*req.Title) == "" ||
		req.Content == nil || strings.TrimSpace(*req.Content) == "" {
		return nil, apperr.ErrInvalidInput
	}

	notice := &model.Notice{Title: *req.Title, Content: *req.Content}
	if err := s.notices.Save(ctx, notice); err != nil {
		return nil, err
	}
	resp := noticeResponseFrom(notice)
	return &resp, nil
}

// Update 공지 부분 수정 (null/blank 필드는 유지)
func (s *NoticeService) Update(ctx context.Context, id int64, req NoticeRequest) (*NoticeResponse, error) {
	notice, err := s.findActive(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil && strings.TrimSpace(*req.Title) != "" {
		notice.Title = *req.Title
	}
	if req.Content != nil && strings.TrimSpace(*req.Content) != "" {
		notice.Content = *req.Content
	}

	if err := s.notices.Save(ctx, notice); err != nil {
		return nil, err
	}
	resp := noticeResponseFrom(notice)
	return &resp, nil
}

// Delete 공지 소프트 삭제
func (s *NoticeService) Delete(ctx context.Context, id int64) error {
	notice, err := s.findActive(ctx, id)
	if err != nil {
		return err
	}
	return s.notices.SoftDelete(ctx, notice)
}

func (s *NoticeService) findActive(ctx context.Context, id int64) (*model.Notice, error) {
	notice, err := s.notices.FindActiveByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.ErrNoticeNotFound
		}
		return nil, err
	}
	return notice, nil
}
