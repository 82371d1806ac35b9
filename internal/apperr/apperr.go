package apperr

import "net/http"

// AppError 클라이언트에게 그대로 노출되는 예상된 비즈니스 에러
//
// 핸들러 레이어가 Status/Code를 HTTP 응답으로 변환한다. 여기에 없는 에러는
// 전부 내부 오류(500)로 취급한다.
type AppError struct {
	Status  int    // HTTP 상태 코드
	Code    string // 프론트 분기처리용 안정된 코드
	Message string
}

func (e *AppError) Error() string {
	return e.Message
}

// 사용자
var (
	ErrUserNotFound = &AppError{Status: http.StatusNotFound, Code: "USER_NOT_FOUND", Message: "user not found"}
)

// 방
var (
	ErrRoomNotFound        = &AppError{Status: http.StatusNotFound, Code: "ROOM_NOT_FOUND", Message: "room not found"}
	ErrRoomNotHost         = &AppError{Status: http.StatusForbidden, Code: "ROOM_NOT_HOST", Message: "only the host can perform this action"}
	ErrAlreadyJoined       = &AppError{Status: http.StatusForbidden, Code: "ROOM_ALREADY_JOINED", Message: "already joined this room"}
	ErrInvalidInviteCode   = &AppError{Status: http.StatusBadRequest, Code: "ROOM_INVALID_INVITE_CODE", Message: "invalid invite code"}
	ErrParticipantNotFound = &AppError{Status: http.StatusNotFound, Code: "ROOM_PARTICIPANT_NOT_FOUND", Message: "not a participant of this room"}
	ErrHostCannotLeave     = &AppError{Status: http.StatusForbidden, Code: "ROOM_HOST_CANNOT_LEAVE", Message: "host cannot leave the room"}
)

// 공지사항
var (
	ErrNoticeNotFound = &AppError{Status: http.StatusNotFound, Code: "NOTICE_NOT_FOUND", Message: "notice not found"}
)

// 유효성
var (
	ErrInvalidInput = &AppError{Status: http.StatusBadRequest, Code: "INVALID_INPUT_VALUE", Message: "invalid input value"}
)
