package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loco-backend/internal/apperr"
	"loco-backend/internal/repository"
)

func newTestNoticeService(t *testing.T) *NoticeService {
	t.Helper()
	return NewNoticeService(repository.NewNoticeStore(openTestDB(t)))
}

func TestNoticeCreateAndGet(t *testing.T) {
	svc := newTestNoticeService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, NoticeRequest{
		Title:   strPtr("점검 안내"),
		Content: strPtr("내일 새벽 2시부터 점검합니다"),
	})
	require.NoError(t, err)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "점검 안내", got.Title)
}

func TestNoticeCreateRequiresBothFields(t *testing.T) {
	svc := newTestNoticeService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, NoticeRequest{Title: strPtr("only title")})
	assert.ErrorIs(t, err, apperr.ErrInvalidInput)

	_, err = svc.Create(ctx, NoticeRequest{Content: strPtr("only content")})
	assert.ErrorIs(t, err, apperr.ErrInvalidInput)

	_, err = svc.Create(ctx, NoticeRequest{Title: strPtr("  "), Content: strPtr("body")})
	assert.ErrorIs(t, err, apperr.ErrInvalidInput)
}

func TestNoticeUpdatePartial(t *testing.T) {
	svc := newTestNoticeService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, NoticeRequest{
		Title:   strPtr("old title"),
		Content: strPtr("old content"),
	})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.ID, NoticeRequest{Title: strPtr("new title")})
	require.NoError(t, err)
	assert.Equal(t, "new title", updated.Title)
	assert.Equal(t, "old content", updated.Content, "omitted field keeps its value")
}

func TestNoticeDelete(t *testing.T) {
	svc := newTestNoticeService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, NoticeRequest{
		Title:   strPtr("bye"),
		Content: strPtr("soon gone"),
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))

	_, err = svc.Get(ctx, created.ID)
	assert.ErrorIs(t, err, apperr.ErrNoticeNotFound)
}

func TestNoticeGetUnknown(t *testing.T) {
	svc := newTestNoticeService(t)

	_, err := svc.Get(context.Background(), 99999)
	assert.ErrorIs(t, err, apperr.ErrNoticeNotFound)
}

func TestNoticeListPagination(t *testing.T) {
	svc := newTestNoticeService(t)
	ctx := context.Background()

	for i := 0; i < 25; i++ {
		_, err := svc.Create(ctx, NoticeRequest{
			Title:   strPtr(fmt.Sprintf("notice %d", i)),
			Content: strPtr("body"),
		})
		require.NoError(t, err)
	}

	page, err := svc.List(ctx, 0, 10)
	require.NoError(t, err)
	assert.Len(t, page.Content, 10)
	assert.Equal(t, int64(25), page.TotalCount)
	assert.Equal(t, 3, page.TotalPages)
	assert.True(t, page.HasNext)
	assert.False(t, page.HasPrevious)

	last, err := svc.List(ctx, 2, 10)
	require.NoError(t, err)
	assert.Len(t, last.Content, 5)
	assert.False(t, last.HasNext)
	assert.True(t, last.HasPrevious)
}

func TestNoticeListClampsBadInput(t *testing.T) {
	svc := newTestNoticeService(t)
	ctx := context.Background()

	page, err := svc.List(ctx, -5, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, page.Page)
	assert.Equal(t, 10, page.Size)
}
