package server

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"gorm.io/gorm"

	"loco-backend/internal/auth"
	"loco-backend/internal/cache"
	"loco-backend/internal/config"
	"loco-backend/internal/database"
	"loco-backend/internal/handler"
	"loco-backend/internal/invite"
	"loco-backend/internal/repository"
	"loco-backend/internal/service"
	"loco-backend/internal/storage"
)

// Server Fiber 서버 래퍼
type Server struct {
	app           *fiber.App
	cfg           *config.Config
	db            *gorm.DB
	counts        *cache.MemberCountCache
	roomHandler   *handler.RoomHandler
	noticeHandler *handler.NoticeHandler
	userHandler   *handler.UserHandler
	jwtManager    *auth.JWTManager
}

// New 새 서버 인스턴스 생성
func New(cfg *config.Config, db *gorm.DB, counts *cache.MemberCountCache) *Server {
	app := fiber.New(fiber.Config{
		AppName:               "Loco Room Service",
		ServerHeader:          "Fiber",
		StrictRouting:         true,
		CaseSensitive:         true,
		ReadTimeout:           cfg.Server.ReadTimeout,
		WriteTimeout:          cfg.Server.WriteTimeout,
		IdleTimeout:           cfg.Server.IdleTimeout,
		BodyLimit:             1 * 1024 * 1024, // 1MB - JSON API만 받는다
		DisableStartupMessage: false,
	})

	// Auth 초기화
	jwtManager := auth.NewJWTManager(
		cfg.Auth.JWTSecret,
		cfg.Auth.AccessTokenExpiry,
		cfg.Auth.RefreshTokenExpiry,
	)

	// 저장소 및 서비스 초기화
	roomStore := repository.NewRoomStore(db)
	userStore := repository.NewUserStore(db)
	participantStore := repository.NewParticipantStore(db)
	noticeStore := repository.NewNoticeStore(db)

	roomService := service.NewRoomService(
		roomStore,
		userStore,
		participantStore,
		invite.NewGenerator(),
		counts,
	)
	noticeService := service.NewNoticeService(noticeStore)
	userService := service.NewUserService(userStore)

	// S3 서비스 초기화 (선택적)
	var s3Service *storage.S3Service
	if cfg.S3.BucketName != "" && cfg.S3.AccessKeyID != "" {
		var err error
		s3Service, err = storage.NewS3Service(&cfg.S3)
		if err != nil {
			log.Printf("⚠️ S3 service initialization failed: %v (thumbnail upload will be disabled)", err)
		} else {
			log.Printf("✅ S3 service initialized (bucket: %s)", cfg.S3.BucketName)
		}
	} else {
		log.Println("ℹ️ S3 service not configured (thumbnail upload will be disabled)")
	}

	return &Server{
		app:           app,
		cfg:           cfg,
		db:            db,
		counts:        counts,
		roomHandler:   handler.NewRoomHandler(roomService, s3Service),
		noticeHandler: handler.NewNoticeHandler(noticeService),
		userHandler:   handler.NewUserHandler(userService),
		jwtManager:    jwtManager,
	}
}

// SetupMiddleware 미들웨어 설정
func (s *Server) SetupMiddleware() {
	// 패닉 복구
	s.app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
	}))

	// 로깅
	s.app.Use(logger.New(logger.Config{
		Format:     "${time} | ${status} | ${latency} | ${ip} | ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Asia/Seoul",
	}))

	// CORS
	s.app.Use(cors.New(cors.Config{
		AllowOrigins:     s.cfg.CORS.AllowOrigins,
		AllowHeaders:     s.cfg.CORS.AllowHeaders,
		AllowMethods:     "GET, POST, PATCH, DELETE, OPTIONS",
		AllowCredentials: true,
	}))
}

// SetupRoutes 라우트 설정
func (s *Server) SetupRoutes() {
	// 헬스체크 엔드포인트
	s.app.Get("/health", func(c *fiber.Ctx) error {
		if err := database.Ping(s.db); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"status": "unhealthy",
				"db":     err.Error(),
			})
		}
		status := fiber.Map{"status": "ok"}
		if err := s.counts.Health(c.Context()); err != nil {
			// 캐시는 선택 사항이므로 전체 상태를 깎지 않는다
			status["cache"] = "unavailable"
		}
		return c.JSON(status)
	})

	// Rate Limiter 설정 (방 생성/참가 남용 방지)
	writeLimiter := limiter.New(limiter.Config{
		Max:        30,              // 최대 30회
		Expiration: 1 * time.Minute, // 1분당
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP() // IP 기반 제한
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "too many requests, please try again later",
			})
		},
	})

	authRequired := auth.AuthMiddleware(s.jwtManager)

	// Room 라우트 그룹 (인증 필요)
	roomGroup := s.app.Group("/api/v1/rooms", authRequired)
	roomGroup.Post("", writeLimiter, s.roomHandler.CreateRoom)
	roomGroup.Get("/public", s.roomHandler.ListPublicRooms)
	roomGroup.Get("/private", s.roomHandler.ListPrivateRooms)
	roomGroup.Get("/public/:roomId", s.roomHandler.GetPublicRoom)
	roomGroup.Get("/private/:roomId", s.roomHandler.GetPrivateRoom)
	roomGroup.Get("/hosted", s.roomHandler.ListHostedRooms)
	roomGroup.Get("/joined", s.roomHandler.ListJoinedRooms)
	roomGroup.Patch("/:roomId", s.roomHandler.UpdateRoom)
	roomGroup.Delete("/:roomId", s.roomHandler.DeleteRoom)
	roomGroup.Post("/:roomId/join", writeLimiter, s.roomHandler.JoinRoom)
	roomGroup.Post("/:roomId/leave", s.roomHandler.LeaveRoom)
	roomGroup.Post("/thumbnail/presign", s.roomHandler.PresignThumbnail)

	// Notice 라우트 그룹
	noticeGroup := s.app.Group("/api/v1/notices")
	noticeGroup.Get("", s.noticeHandler.ListNotices)
	noticeGroup.Get("/:noticeId", s.noticeHandler.GetNotice)
	noticeGroup.Post("", authRequired, s.noticeHandler.CreateNotice)
	noticeGroup.Patch("/:noticeId", authRequired, s.noticeHandler.UpdateNotice)
	noticeGroup.Delete("/:noticeId", authRequired, s.noticeHandler.DeleteNotice)

	// User 라우트 그룹 (인증 필요)
	userGroup := s.app.Group("/api/v1/users", authRequired)
	userGroup.Get("/me", s.userHandler.GetMe)
	userGroup.Patch("/me", s.userHandler.UpdateMe)
	userGroup.Delete("/me", s.userHandler.DeleteMe)
}

// Start 서버 시작 (Graceful Shutdown 지원)
func (s *Server) Start() error {
	// Graceful Shutdown 설정
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("🛑 Shutting down server...")
		if err := s.app.ShutdownWithTimeout(30 * time.Second); err != nil {
			log.Fatalf("Server shutdown error: %v", err)
		}
	}()

	log.Printf("🚀 Loco Room Service starting on %s", s.cfg.Server.Port)

	return s.app.Listen(s.cfg.Server.Port)
}

// Shutdown 서버 종료
func (s *Server) Shutdown() error {
	return s.app.ShutdownWithTimeout(30 * time.Second)
}
