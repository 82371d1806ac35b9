package service

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"loco-backend/internal/invite"
	"loco-backend/internal/model"
	"loco-backend/internal/repository"
)

// openTestDB 테스트용 in-memory SQLite 연결
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Room{},
		&model.RoomParticipant{},
		&model.Notice{},
	))
	return db
}

// newTestRoomService 실제 저장소 위에서 동작하는 RoomService
//
// 초대코드 생성기는 시드 고정, 캐시는 nil(비활성)로 둔다.
func newTestRoomService(t *testing.T) (*RoomService, *gorm.DB) {
	t.Helper()

	db := openTestDB(t)
	svc := NewRoomService(
		repository.NewRoomStore(db),
		repository.NewUserStore(db),
		repository.NewParticipantStore(db),
		invite.NewGeneratorWithSource(rand.NewSource(7)),
		nil,
	)
	return svc, db
}

func createTestUser(t *testing.T, db *gorm.DB, nickname string) *model.User {
	t.Helper()

	user := &model.User{
		OauthID:  "oauth-" + nickname,
		Provider: model.ProviderGoogle.String(),
		Nickname: nickname,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }
