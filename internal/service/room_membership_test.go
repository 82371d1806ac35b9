package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loco-backend/internal/apperr"
)

func TestJoinPublicRoom(t *testing.T) {
	svc, db := newTestRoomService(t)
	ctx := context.Background()
	host := createTestUser(t, db, "host")
	member := createTestUser(t, db, "member")

	room, err := svc.Create(ctx, RoomCreateRequest{Name: "open"}, host.ID)
	require.NoError(t, err)

	resp, err := svc.Join(ctx, room.ID, member.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(2), resp.MemberCount)
}

func TestJoinPublicRoomIgnoresInviteCode(t *testing.T) {
	svc, db := newTestRoomService(t)
	ctx := context.Background()
	host := createTestUser(t, db, "host")
	member := createTestUser(t, db, "member")

	room, err := svc.Create(ctx, RoomCreateRequest{Name: "open"}, host.ID)
	require.NoError(t, err)

	// 공개방은 틀린 코드가 와도 무시하고 참가시킨다
	resp, err := svc.Join(ctx, room.ID, member.ID, strPtr("WRONG123"))
	require.NoError(t, err)
	assert.Equal(t, int64(2), resp.MemberCount)
}

func TestJoinPrivateRoomRequiresExactCode(t *testing.T) {
	svc, db := newTestRoomService(t)
	ctx := context.Background()
	host := createTestUser(t, db, "host")
	member := createTestUser(t, db, "member")

	room, err := svc.Create(ctx, RoomCreateRequest{
		Name:      "secret",
		IsPrivate: boolPtr(true),
	}, host.ID)
	require.NoError(t, err)
	require.NotNil(t, room.InviteCode)

	// 코드 없음
	_, err = svc.Join(ctx, room.ID, member.ID, nil)
	assert.ErrorIs(t, err, apperr.ErrInvalidInviteCode)

	// 틀린 코드
	_, err = svc.Join(ctx, room.ID, member.ID, strPtr("WRONG123"))
	assert.ErrorIs(t, err, apperr.ErrInvalidInviteCode)

	// 맞는 코드
	resp, err := svc.Join(ctx, room.ID, member.ID, room.InviteCode)
	require.NoError(t, err)
	assert.Equal(t, int64(2), resp.MemberCount)
}

func TestJoinTwiceRejected(t *testing.T) {
	svc, db := newTestRoomService(t)
	ctx := context.Background()
	host := createTestUser(t, db, "host")
	member := createTestUser(t, db, "member")

	room, err := svc.Create(ctx, RoomCreateRequest{Name: "room"}, host.ID)
	require.NoError(t, err)

	_, err = svc.Join(ctx, room.ID, member.ID, nil)
	require.NoError(t, err)

	_, err = svc.Join(ctx, room.ID, member.ID, nil)
	assert.ErrorIs(t, err, apperr.ErrAlreadyJoined)
}

func TestHostJoinIsIdempotentNoOp(t *testing.T) {
	svc, db := newTestRoomService(t)
	ctx := context.Background()
	host := createTestUser(t, db, "host")

	room, err := svc.Create(ctx, RoomCreateRequest{Name: "mine"}, host.ID)
	require.NoError(t, err)

	// 호스트는 참가자 행 없이 암묵 멤버이므로 join은 몇 번을 불러도 성공
	for i := 0; i < 3; i++ {
		resp, err := svc.Join(ctx, room.ID, host.ID, nil)
		require.NoError(t, err)
		assert.Equal(t, int64(1), resp.MemberCount)
	}
}

func TestLeaveRoom(t *testing.T) {
	svc, db := newTestRoomService(t)
	ctx := context.Background()
	host := createTestUser(t, db, "host")
	member := createTestUser(t, db, "member")

	room, err := svc.Create(ctx, RoomCreateRequest{Name: "room"}, host.ID)
	require.NoError(t, err)

	_, err = svc.Join(ctx, room.ID, member.ID, nil)
	require.NoError(t, err)

	resp, err := svc.Leave(ctx, room.ID, member.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.MemberCount)
}

func TestHostCannotLeave(t *testing.T) {
	svc, db := newTestRoomService(t)
	ctx := context.Background()
	host := createTestUser(t, db, "host")

	room, err := svc.Create(ctx, RoomCreateRequest{Name: "mine"}, host.ID)
	require.NoError(t, err)

	_, err = svc.Leave(ctx, room.ID, host.ID)
	assert.ErrorIs(t, err, apperr.ErrHostCannotLeave)
}

func TestLeaveWithoutMembership(t *testing.T) {
	svc, db := newTestRoomService(t)
	ctx := context.Background()
	host := createTestUser(t, db, "host")
	stranger := createTestUser(t, db, "stranger")

	room, err := svc.Create(ctx, RoomCreateRequest{Name: "room"}, host.ID)
	require.NoError(t, err)

	_, err = svc.Leave(ctx, room.ID, stranger.ID)
	assert.ErrorIs(t, err, apperr.ErrParticipantNotFound)
}

func TestLeaveThenRejoin(t *testing.T) {
	svc, db := newTestRoomService(t)
	ctx := context.Background()
	host := createTestUser(t, db, "host")
	member := createTestUser(t, db, "member")

	room, err := svc.Create(ctx, RoomCreateRequest{Name: "room"}, host.ID)
	require.NoError(t, err)

	_, err = svc.Join(ctx, room.ID, member.ID, nil)
	require.NoError(t, err)
	_, err = svc.Leave(ctx, room.ID, member.ID)
	require.NoError(t, err)

	// 탈퇴 후 재참가 가능
	resp, err := svc.Join(ctx, room.ID, member.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(2), resp.MemberCount)

	// 두 번째 leave는 이미 나간 상태
	_, err = svc.Leave(ctx, room.ID, member.ID)
	require.NoError(t, err)
	_, err = svc.Leave(ctx, room.ID, member.ID)
	assert.ErrorIs(t, err, apperr.ErrParticipantNotFound)
}

func TestListJoinedExcludesHosted(t *testing.T) {
	svc, db := newTestRoomService(t)
	ctx := context.Background()
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")

	hosted, err := svc.Create(ctx, RoomCreateRequest{Name: "alice's"}, alice.ID)
	require.NoError(t, err)
	joined, err := svc.Create(ctx, RoomCreateRequest{Name: "bob's"}, bob.ID)
	require.NoError(t, err)

	_, err = svc.Join(ctx, joined.ID, alice.ID, nil)
	require.NoError(t, err)

	rooms, err := svc.ListJoined(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, rooms, 1)
	assert.Equal(t, joined.ID, rooms[0].ID)

	hostedRooms, err := svc.ListHosted(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, hostedRooms, 1)
	assert.Equal(t, hosted.ID, hostedRooms[0].ID)
}

func TestJoinDeletedRoom(t *testing.T) {
	svc, db := newTestRoomService(t)
	ctx := context.Background()
	host := createTestUser(t, db, "host")
	member := createTestUser(t, db, "member")

	room, err := svc.Create(ctx, RoomCreateRequest{Name: "gone"}, host.ID)
	require.NoError(t, err)

	_, err = svc.Delete(ctx, room.ID, host.ID)
	require.NoError(t, err)

	_, err = svc.Join(ctx, room.ID, member.ID, nil)
	assert.ErrorIs(t, err, apperr.ErrRoomNotFound)
}

func TestDeleteRoomRemovesParticipants(t *testing.T) {
	svc, db := newTestRoomService(t)
	ctx := context.Background()
	host := createTestUser(t, db, "host")
	member := createTestUser(t, db, "member")

	room, err := svc.Create(ctx, RoomCreateRequest{Name: "room"}, host.ID)
	require.NoError(t, err)
	_, err = svc.Join(ctx, room.ID, member.ID, nil)
	require.NoError(t, err)

	_, err = svc.Delete(ctx, room.ID, host.ID)
	require.NoError(t, err)

	// 참가자 행도 같이 정리되어 joined 목록에서 사라진다
	rooms, err := svc.ListJoined(ctx, member.ID)
	require.NoError(t, err)
	assert.Empty(t, rooms)
}

func TestJoinUnknownUser(t *testing.T) {
	svc, db := newTestRoomService(t)
	ctx := context.Background()
	host := createTestUser(t, db, "host")

	room, err := svc.Create(ctx, RoomCreateRequest{Name: "room"}, host.ID)
	require.NoError(t, err)

	_, err = svc.Join(ctx, room.ID, 99999, nil)
	assert.ErrorIs(t, err, apperr.ErrUserNotFound)
}
