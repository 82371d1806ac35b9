package handler

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"loco-backend/internal/apperr"
)

// writeError 서비스 에러를 HTTP 응답으로 변환
//
// apperr에 정의된 예상된 비즈니스 에러만 상태코드/코드를 그대로 내리고,
// 나머지는 전부 500으로 감춘 뒤 서버 로그에만 남긴다.
func writeError(c *fiber.Ctx, err error) error {
	var ae *apperr.AppError
	if errors.As(err, &ae) {
		return c.Status(ae.Status).JSON(fiber.Map{
			"error": ae.Message,
			"code":  ae.Code,
		})
	}

	log.Printf("❌ internal error: %s %s: %v", c.Method(), c.Path(), err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": "internal server error",
		"code":  "INTERNAL_SERVER_ERROR",
	})
}

// sanitizeString 입력 정제 (태그 문자 제거)
func sanitizeString(s string) string {
	s = strings.ReplaceAll(s, "<", "")
	s = strings.ReplaceAll(s, ">", "")
	return strings.TrimSpace(s)
}
