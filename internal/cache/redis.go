package cache

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// MemberCountCache 방별 멤버 수 캐시
//
// 목록 응답마다 도는 집계 쿼리를 짧은 TTL로 흡수한다. join/leave/삭제 시
// 키를 무효화하므로 TTL은 순전히 안전망이다. nil 수신자도 동작한다
// (Redis 미구성 환경, 테스트).
type MemberCountCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewMemberCountCache Redis 연결 후 캐시 생성
func NewMemberCountCache(addr, password string, db int, ttl time.Duration) (*MemberCountCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           db,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	log.Printf("[Redis] Connected to %s", addr)
	return &MemberCountCache{client: client, ttl: ttl}, nil
}

func memberCountKey(roomID int64) string {
	return fmt.Sprintf("room:%d:member_count", roomID)
}

// Get 캐시된 참가자 수 조회
func (c *MemberCountCache) Get(ctx context.Context, roomID int64) (int64, bool) {
	if c == nil {
		return 0, false
	}
	val, err := c.client.Get(ctx, memberCountKey(roomID)).Result()
	if err != nil {
		return 0, false
	}
	count, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, false
	}
	return count, true
}

// Set 참가자 수 캐싱
func (c *MemberCountCache) Set(ctx context.Context, roomID, count int64) {
	if c == nil {
		return
	}
	if err := c.client.Set(ctx, memberCountKey(roomID), count, c.ttl).Err(); err != nil {
		log.Printf("[Redis] Failed to cache member count for room %d: %v", roomID, err)
	}
}

// Invalidate 참가자 수 캐시 무효화 (join/leave/방 삭제 시)
func (c *MemberCountCache) Invalidate(ctx context.Context, roomID int64) {
	if c == nil {
		return
	}
	c.client.Del(ctx, memberCountKey(roomID))
}

// Health Redis 연결 상태 확인
func (c *MemberCountCache) Health(ctx context.Context) error {
	if c == nil {
		return nil
	}
	return c.client.Ping(ctx).Err()
}

// Close Redis 연결 종료
func (c *MemberCountCache) Close() error {
	if c == nil {
		return nil
	}
	return c.client.Close()
}
