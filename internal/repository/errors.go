package repository

import "errors"

// 저장소 공통 에러. 서비스 레이어가 비즈니스 에러로 변환한다.
var (
	// ErrNotFound 요청한 레코드 없음 (소프트 삭제 포함)
	ErrNotFound = errors.New("repository: record not found")
	// ErrDuplicateEntry unique 제약 위반
	ErrDuplicateEntry = errors.New("repository: duplicate entry")
)
