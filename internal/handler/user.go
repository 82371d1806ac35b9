package handler

import (
	"github.com/gofiber/fiber/v2"

	"loco-backend/internal/auth"
	"loco-backend/internal/service"
)

// UserHandler 사용자 핸들러
type UserHandler struct {
	svc *service.UserService
}

// NewUserHandler UserHandler 생성
func NewUserHandler(svc *service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// GetMe 내 프로필 조회
func (h *UserHandler) GetMe(c *fiber.Ctx) error {
	claims, err := auth.GetClaimsFromContext(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "unauthorized",
		})
	}

	resp, err := h.svc.Get(c.Context(), claims.UserID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(resp)
}

// UpdateMe 내 프로필 수정
func (h *UserHandler) UpdateMe(c *fiber.Ctx) error {
	claims, err := auth.GetClaimsFromContext(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "unauthorized",
		})
	}

	var req service.UserUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	if req.Nickname != nil {
		cleaned := sanitizeString(*req.Nickname)
		req.Nickname = &cleaned
	}

	resp, err := h.svc.Update(c.Context(), claims.UserID, req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(resp)
}

// DeleteMe 회원 탈퇴 (소프트 삭제)
func (h *UserHandler) DeleteMe(c *fiber.Ctx) error {
	claims, err := auth.GetClaimsFromContext(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "unauthorized",
		})
	}

	deletedID, err := h.svc.Withdraw(c.Context(), claims.UserID)
	if err != nil {
		return writeError(c, err)
	}

	// 토큰 쿠키 제거
	c.ClearCookie("access_token", "refresh_token")

	return c.JSON(fiber.Map{
		"deleted_user_id": deletedID,
	})
}
