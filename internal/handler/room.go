package handler

import (
	"github.com/gofiber/fiber/v2"

	"loco-backend/internal/auth"
	"loco-backend/internal/service"
	"loco-backend/internal/storage"
)

// RoomHandler 방 핸들러
type RoomHandler struct {
	svc *service.RoomService
	s3  *storage.S3Service
}

// NewRoomHandler RoomHandler 생성
func NewRoomHandler(svc *service.RoomService, s3 *storage.S3Service) *RoomHandler {
	return &RoomHandler{svc: svc, s3: s3}
}

// CreateRoom 방 생성
func (h *RoomHandler) CreateRoom(c *fiber.Ctx) error {
	claims, err := auth.GetClaimsFromContext(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "unauthorized",
		})
	}

	var req service.RoomCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	// 이름 검증
	req.Name = sanitizeString(req.Name)
	if req.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "room name is required",
		})
	}
	if len(req.Name) > 100 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "room name must be at most 100 characters",
		})
	}

	resp, err := h.svc.Create(c.Context(), req, claims.UserID)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// GetPublicRoom 공개방 상세 조회
func (h *RoomHandler) GetPublicRoom(c *fiber.Ctx) error {
	roomID, err := c.ParamsInt("roomId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid room id",
		})
	}

	resp, err := h.svc.GetPublicDetail(c.Context(), int64(roomID))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(resp)
}

// GetPrivateRoom 비공개방 상세 조회
func (h *RoomHandler) GetPrivateRoom(c *fiber.Ctx) error {
	roomID, err := c.ParamsInt("roomId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid room id",
		})
	}

	resp, err := h.svc.GetPrivateDetail(c.Context(), int64(roomID))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(resp)
}

// ListPublicRooms 공개방 목록 (최신순)
func (h *RoomHandler) ListPublicRooms(c *fiber.Ctx) error {
	rooms, err := h.svc.ListPublic(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{
		"rooms": rooms,
		"total": len(rooms),
	})
}

// ListPrivateRooms 비공개방 목록 (최신순)
func (h *RoomHandler) ListPrivateRooms(c *fiber.Ctx) error {
	rooms, err := h.svc.ListPrivate(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{
		"rooms": rooms,
		"total": len(rooms),
	})
}

// ListHostedRooms 내가 호스트인 방 목록
func (h *RoomHandler) ListHostedRooms(c *fiber.Ctx) error {
	claims, err := auth.GetClaimsFromContext(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "unauthorized",
		})
	}

	rooms, err := h.svc.ListHosted(c.Context(), claims.UserID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{
		"rooms": rooms,
		"total": len(rooms),
	})
}

// ListJoinedRooms 내가 참가자인 방 목록
func (h *RoomHandler) ListJoinedRooms(c *fiber.Ctx) error {
	claims, err := auth.GetClaimsFromContext(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "unauthorized",
		})
	}

	rooms, err := h.svc.ListJoined(c.Context(), claims.UserID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{
		"rooms": rooms,
		"total": len(rooms),
	})
}

// UpdateRoom 방 정보 부분 수정 (호스트 전용)
func (h *RoomHandler) UpdateRoom(c *fiber.Ctx) error {
	claims, err := auth.GetClaimsFromContext(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "unauthorized",
		})
	}
	roomID, err := c.ParamsInt("roomId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid room id",
		})
	}

	var req service.RoomUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	resp, err := h.svc.Update(c.Context(), int64(roomID), claims.UserID, req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(resp)
}

// DeleteRoom 방 삭제 (호스트 전용)
func (h *RoomHandler) DeleteRoom(c *fiber.Ctx) error {
	claims, err := auth.GetClaimsFromContext(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "unauthorized",
		})
	}
	roomID, err := c.ParamsInt("roomId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid room id",
		})
	}

	deletedID, err := h.svc.Delete(c.Context(), int64(roomID), claims.UserID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{
		"deleted_room_id": deletedID,
	})
}

// JoinRoomRequest 방 참가 요청
type JoinRoomRequest struct {
	InviteCode *string `json:"invite_code,omitempty"`
}

// JoinRoom 방 참가
func (h *RoomHandler) JoinRoom(c *fiber.Ctx) error {
	claims, err := auth.GetClaimsFromContext(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "unauthorized",
		})
	}
	roomID, err := c.ParamsInt("roomId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid room id",
		})
	}

	// body 없는 참가 요청 허용 (공개방)
	var req JoinRoomRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid request body",
			})
		}
	}

	resp, err := h.svc.Join(c.Context(), int64(roomID), claims.UserID, req.InviteCode)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(resp)
}

// LeaveRoom 방 나가기
func (h *RoomHandler) LeaveRoom(c *fiber.Ctx) error {
	claims, err := auth.GetClaimsFromContext(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "unauthorized",
		})
	}
	roomID, err := c.ParamsInt("roomId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid room id",
		})
	}

	resp, err := h.svc.Leave(c.Context(), int64(roomID), claims.UserID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(resp)
}

// PresignThumbnailRequest 썸네일 업로드 URL 요청
type PresignThumbnailRequest struct {
	FileName    string `json:"file_name"`
	ContentType string `json:"content_type"`
}

// PresignThumbnail 방 썸네일 업로드용 presigned URL 생성
func (h *RoomHandler) PresignThumbnail(c *fiber.Ctx) error {
	if h.s3 == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": "S3 service is not configured",
		})
	}

	claims, err := auth.GetClaimsFromContext(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "unauthorized",
		})
	}

	var req PresignThumbnailRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}
	if req.FileName == "" || req.ContentType == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "file_name and content_type are required",
		})
	}

	presigned, err := h.s3.GenerateThumbnailUploadURL(claims.UserID, req.FileName, req.ContentType)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to generate presigned URL",
		})
	}

	return c.JSON(presigned)
}
