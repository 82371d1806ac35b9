package repository

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"loco-backend/internal/model"
)

// openTestDB 테스트용 in-memory SQLite 연결
//
// cache=shared 대신 커넥션을 1개로 고정해 고루틴 간 같은 DB를 보게 한다.
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

func createTestRoom(t *testing.T, db *gorm.DB, name string, hostID int64, isPrivate bool, inviteCode string) *model.Room {
	t.Helper()

	room := &model.Room{
		Name:       name,
		IsPrivate:  isPrivate,
		InviteCode: &inviteCode,
		HostID:     hostID,
	}
	require.NoError(t, db.Create(room).Error)
	return room
}
