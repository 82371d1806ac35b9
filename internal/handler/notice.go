package handler

import (
	"github.com/gofiber/fiber/v2"

	"loco-backend/internal/service"
)

// NoticeHandler 공지사항 핸들러
type NoticeHandler struct {
	svc *service.NoticeService
}

// NewNoticeHandler NoticeHandler 생성
func NewNoticeHandler(svc *service.NoticeService) *NoticeHandler {
	return &NoticeHandler{svc: svc}
}

// ListNotices 공지사항 목록 (페이지네이션)
func (h *NoticeHandler) ListNotices(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	size := c.QueryInt("size", 10)

	resp, err := h.svc.List(c.Context(), page, size)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(resp)
}

// GetNotice 공지사항 단건 조회
func (h *NoticeHandler) GetNotice(c *fiber.Ctx) error {
	id, err := c.ParamsInt("noticeId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid notice id",
		})
	}

	resp, err := h.svc.Get(c.Context(), int64(id))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(resp)
}

// CreateNotice 공지사항 작성
func (h *NoticeHandler) CreateNotice(c *fiber.Ctx) error {
	var req service.NoticeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	if req.Title != nil {
		cleaned := sanitizeString(*req.Title)
		req.Title = &cleaned
	}

	resp, err := h.svc.Create(c.Context(), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// UpdateNotice 공지사항 수정
func (h *NoticeHandler) UpdateNotice(c *fiber.Ctx) error {
	id, err := c.ParamsInt("noticeId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid notice id",
		})
	}

	var req service.NoticeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	if req.Title != nil {
		cleaned := sanitizeString(*req.Title)
		req.Title = &cleaned
	}

	resp, err := h.svc.Update(c.Context(), int64(id), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(resp)
}

// DeleteNotice 공지사항 삭제
func (h *NoticeHandler) DeleteNotice(c *fiber.Ctx) error {
	id, err := c.ParamsInt("noticeId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid notice id",
		})
	}

	if err := h.svc.Delete(c.Context(), int64(id)); err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{
		"deleted_notice_id": id,
	})
}
