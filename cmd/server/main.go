package main

import (
	"log"

	"loco-backend/internal/cache"
	"loco-backend/internal/config"
	"loco-backend/internal/database"
	"loco-backend/internal/server"
)

func main() {
	// 설정 로드
	cfg := config.Load()

	// 데이터베이스 연결
	db, err := database.ConnectDB()
	if err != nil {
		log.Fatalf("❌ Database connection failed: %v", err)
	}
	defer database.Close(db)

	// Ping 테스트
	if err := database.Ping(db); err != nil {
		log.Fatalf("❌ Database ping failed: %v", err)
	}
	log.Printf("✅ Database connected successfully")

	// Redis 멤버수 캐시 (선택적)
	var counts *cache.MemberCountCache
	if cfg.Redis.Addr != "" {
		counts, err = cache.NewMemberCountCache(
			cfg.Redis.Addr,
			cfg.Redis.Password,
			cfg.Redis.DB,
			cfg.Redis.MemberCountTTL,
		)
		if err != nil {
			log.Printf("⚠️ Redis connection failed: %v (member count cache disabled)", err)
			counts = nil
		} else {
			log.Printf("✅ Redis connected (member count cache enabled, TTL %s)", cfg.Redis.MemberCountTTL)
			defer counts.Close()
		}
	} else {
		log.Println("ℹ️ Redis not configured (member count cache disabled)")
	}

	// 서버 생성 및 설정
	srv := server.New(cfg, db, counts)
	srv.SetupMiddleware()
	srv.SetupRoutes()

	// 서버 시작
	if err := srv.Start(); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
