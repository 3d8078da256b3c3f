package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/hagwonlab/academy-api/internal/aigen"
	"github.com/hagwonlab/academy-api/internal/api"
	"github.com/hagwonlab/academy-api/internal/config"
	"github.com/hagwonlab/academy-api/internal/database"
	"github.com/hagwonlab/academy-api/internal/kakao"
	"github.com/hagwonlab/academy-api/internal/repository"
	"github.com/hagwonlab/academy-api/internal/service"
	"github.com/hagwonlab/academy-api/internal/storage"
	"github.com/hagwonlab/academy-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logLevel := slog.LevelInfo
	if cfg.IsDevelopment() {
		logLevel = slog.LevelDebug
	}
	logr := logger.New(logLevel)

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("database connect: %v", err)
	}
	defer db.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := database.Migrate(ctx, db); err != nil {
		log.Fatalf("database migrate: %v", err)
	}

	aigenClient := aigen.NewClient(cfg, logr)
	kakaoClient := kakao.NewClient(cfg, logr)

	uploader, err := storage.NewUploader(storage.Config{
		Endpoint:      cfg.S3Endpoint,
		Region:        cfg.S3Region,
		AccessKey:     cfg.S3AccessKey,
		SecretKey:     cfg.S3SecretKey,
		Bucket:        cfg.S3Bucket,
		PublicBaseURL: cfg.S3PublicBaseURL,
		UsePathStyle:  cfg.S3UsePathStyle,
		Prefix:        cfg.S3Prefix,
	})
	if err != nil {
		log.Fatalf("storage uploader: %v", err)
	}

	userRepo := repository.NewUserRepository(db)
	studentRepo := repository.NewStudentRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	academyRepo := repository.NewAcademyRepository(db)
	assignmentRepo := repository.NewAssignmentRepository(db)
	inquiryRepo := repository.NewInquiryRepository(db)
	pointRepo := repository.NewPointRepository(db, userRepo)
	productRepo := repository.NewProductRepository(db)
	planRepo := repository.NewPlanRepository(db)
	kakaoRepo := repository.NewKakaoRepository(db)
	homeworkRepo := repository.NewHomeworkRepository(db)
	landingRepo := repository.NewLandingRepository(db)

	userService := service.NewUserService(userRepo, studentRepo)
	authService := service.NewAuthService(userRepo, sessionRepo, cfg.SessionTTL)
	academyService := service.NewAcademyService(academyRepo)
	assignmentService := service.NewAssignmentService(assignmentRepo, userRepo)
	inquiryService := service.NewInquiryService(inquiryRepo)
	pointService := service.NewPointService(pointRepo)
	catalogService := service.NewCatalogService(productRepo, planRepo)
	homeworkService := service.NewHomeworkService(homeworkRepo, uploader, aigenClient, logr)
	messagingService := service.NewMessagingService(kakaoRepo, kakaoClient)
	contentService := service.NewContentService(aigenClient)
	landingService := service.NewLandingService(landingRepo)

	if err := userService.EnsureSuperAdmin(ctx, cfg.BootstrapAdminEmail, cfg.BootstrapAdminPass); err != nil {
		log.Fatalf("ensure super admin: %v", err)
	}

	server := api.NewServer(cfg, logr, api.Services{
		Auth:        authService,
		Users:       userService,
		Academies:   academyService,
		Assignments: assignmentService,
		Inquiries:   inquiryService,
		Points:      pointService,
		Catalog:     catalogService,
		Homework:    homeworkService,
		Messaging:   messagingService,
		Content:     contentService,
		Landing:     landingService,
	})

	if err := server.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logr.Error("server stopped", "err", err)
	}
}
