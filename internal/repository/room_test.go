package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loco-backend/internal/model"
)

func TestRoomStoreFindActiveByID(t *testing.T) {
	db := openTestDB(t)
	store := NewRoomStore(db)
	ctx := context.Background()

	host := createTestUser(t, db, "host")
	room := createTestRoom(t, db, "study", host.ID, false, "AAAA2222")

	found, err := store.FindActiveByID(ctx, room.ID)
	require.NoError(t, err)
	assert.Equal(t, "study", found.Name)
	assert.Equal(t, "host", found.Host.Nickname, "host should be preloaded")

	_, err = store.FindActiveByID(ctx, 99999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRoomStoreFindActiveByIDExcludesDeleted(t *testing.T) {
	db := openTestDB(t)
	store := NewRoomStore(db)
	ctx := context.Background()

	host := createTestUser(t, db, "host")
	room := createTestRoom(t, db, "gone", host.ID, false, "BBBB2222")

	require.NoError(t, store.SoftDelete(ctx, room))

	_, err := store.FindActiveByID(ctx, room.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRoomStoreExistsByInviteCode(t *testing.T) {
	db := openTestDB(t)
	store := NewRoomStore(db)
	ctx := context.Background()

	host := createTestUser(t, db, "host")
	createTestRoom(t, db, "room", host.ID, true, "CODE2345")

	exists, err := store.ExistsByInviteCode(ctx, "CODE2345")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = store.ExistsByInviteCode(ctx, "FREE2345")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestRoomStoreSoftDeleteReleasesInviteCode(t *testing.T) {
	db := openTestDB(t)
	store := NewRoomStore(db)
	ctx := context.Background()

	host := createTestUser(t, db, "host")
	room := createTestRoom(t, db, "room", host.ID, true, "RELEASE2")

	require.NoError(t, store.SoftDelete(ctx, room))

	// 코드가 NULL로 풀려서 새 방이 같은 코드를 받을 수 있다
	exists, err := store.ExistsByInviteCode(ctx, "RELEASE2")
	require.NoError(t, err)
	assert.False(t, exists)

	reuse := createTestRoom(t, db, "reuse", host.ID, true, "RELEASE2")
	assert.NotZero(t, reuse.ID)
}

func TestRoomStoreSoftDeleteCascadesParticipants(t *testing.T) {
	db := openTestDB(t)
	rooms := NewRoomStore(db)
	participants := NewParticipantStore(db)
	ctx := context.Background()

	host := createTestUser(t, db, "host")
	member := createTestUser(t, db, "member")
	room := createTestRoom(t, db, "room", host.ID, false, "CASCADE2")

	require.NoError(t, participants.Save(ctx, &model.RoomParticipant{
		RoomID: room.ID,
		UserID: member.ID,
	}))

	require.NoError(t, rooms.SoftDelete(ctx, room))

	exists, err := participants.ExistsActive(ctx, room.ID, member.ID)
	require.NoError(t, err)
	assert.False(t, exists, "participants should be soft deleted with the room")
}

func TestRoomStoreDuplicateInviteCode(t *testing.T) {
	db := openTestDB(t)
	store := NewRoomStore(db)
	ctx := context.Background()

	host := createTestUser(t, db, "host")
	createTestRoom(t, db, "first", host.ID, true, "SAME2345")

	code := "SAME2345"
	err := store.Save(ctx, &model.Room{
		Name:       "second",
		InviteCode: &code,
		HostID:     host.ID,
	})
	assert.ErrorIs(t, err, ErrDuplicateEntry)
}

func TestRoomStoreListByVisibility(t *testing.T) {
	db := openTestDB(t)
	store := NewRoomStore(db)
	ctx := context.Background()

	host := createTestUser(t, db, "host")
	createTestRoom(t, db, "pub1", host.ID, false, "PUB12345")
	createTestRoom(t, db, "pub2", host.ID, false, "PUB22345")
	createTestRoom(t, db, "priv1", host.ID, true, "PRV12345")

	public, err := store.ListPublic(ctx)
	require.NoError(t, err)
	require.Len(t, public, 2)
	// 최신순 (동일 시각은 id 내림차순)
	assert.Equal(t, "pub2", public[0].Name)
	assert.Equal(t, "pub1", public[1].Name)

	private, err := store.ListPrivate(ctx)
	require.NoError(t, err)
	require.Len(t, private, 1)
	assert.Equal(t, "priv1", private[0].Name)
}

func TestRoomStoreListByHost(t *testing.T) {
	db := openTestDB(t)
	store := NewRoomStore(db)
	ctx := context.Background()

	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	createTestRoom(t, db, "r1", alice.ID, false, "HOST1234")
	createTestRoom(t, db, "r2", alice.ID, true, "HOST2234")
	createTestRoom(t, db, "r3", bob.ID, false, "HOST3234")

	rooms, err := store.ListByHost(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, rooms, 2)
	assert.Equal(t, "r2", rooms[0].Name)
	assert.Equal(t, "r1", rooms[1].Name)
}

func TestRoomStoreListExcludesDeleted(t *testing.T) {
	db := openTestDB(t)
	store := NewRoomStore(db)
	ctx := context.Background()

	host := createTestUser(t, db, "host")
	keep := createTestRoom(t, db, "keep", host.ID, false, "KEEP2345")
	drop := createTestRoom(t, db, "drop", host.ID, false, "DROP2345")

	require.NoError(t, store.SoftDelete(ctx, drop))

	rooms, err := store.ListPublic(ctx)
	require.NoError(t, err)
	require.Len(t, rooms, 1)
	assert.Equal(t, keep.ID, rooms[0].ID)
}
