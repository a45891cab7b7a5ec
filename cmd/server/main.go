package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"mintfire.backend/internal/config"
	"mintfire.backend/internal/infrastructure/ai"
	"mintfire.backend/internal/infrastructure/repositories"
	"mintfire.backend/internal/infrastructure/revalidate"
	"mintfire.backend/internal/interfaces/http/handlers"
	"mintfire.backend/internal/interfaces/http/middleware"
	"mintfire.backend/internal/usecases"
	"mintfire.backend/pkg/jwt"
	"mintfire.backend/pkg/logger"
	"mintfire.backend/pkg/redis"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	initRedis  = redis.Init
	openDB     = func(dsn string) (*gorm.DB, error) {
		return gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			PrepareStmt: false,
		})
	}
	newSessionStore = redis.NewSessionStore
	newChatService  = func(ctx context.Context, cfg config.GeminiConfig) (ai.Asker, error) {
		return ai.NewChatService(ctx, cfg.APIKey, cfg.Model, cfg.Timeout)
	}
	runServer = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
	getStdDB  = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := loadCfg()

	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	if err := initRedis(cfg.Redis.URL, cfg.Redis.Password); err != nil {
		logger.Error(context.Background(), "Failed to initialize Redis", zap.Error(err))
		return fmt.Errorf("failed to initialize redis: %w", err)
	}
	logger.Info(context.Background(), "Redis initialized")

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := openDB(cfg.Database.URL())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := getStdDB(db)
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		log.Printf("Database not available: %v (endpoints will return errors)", err)
	} else {
		log.Println("Connected to PostgreSQL via GORM")
	}

	jwtService := jwt.NewService(cfg.JWT.Secret, cfg.JWT.SessionExpiry)

	sessionStore, err := newSessionStore(cfg.Security.SessionEncryptionKey)
	if err != nil {
		return fmt.Errorf("failed to initialize session store: %w", err)
	}

	// Repositories
	teamRepo := repositories.NewTeamMemberRepository(db)
	founderRepo := repositories.NewFounderRepository(db)
	blogRepo := repositories.NewBlogRepository(db)
	bugReportRepo := repositories.NewBugReportRepository(db)
	applicantRepo := repositories.NewApplicantRepository(db)
	feedbackRepo := repositories.NewFeedbackRepository(db)
	siteContentRepo := repositories.NewSiteContentRepository(db)
	hallOfFameRepo := repositories.NewHallOfFameRepository(db)
	waitlistRepo := repositories.NewWaitlistRepository(db)
	adminRepo := repositories.NewAdminRepository(db)
	superActionRepo := repositories.NewSuperActionRepository(db)
	auditRepo := repositories.NewAuditRepository(db)

	authUsecase := usecases.NewAuthUsecase(
		adminRepo,
		superActionRepo,
		auditRepo,
		jwtService,
		sessionStore,
		cfg.Security.MaxLoginFailures,
		cfg.Security.LockoutTTL,
	)

	// Chat assistant; runs in fallback-only mode without an API key
	var asker ai.Asker
	if cfg.Gemini.APIKey == "" {
		logger.Warn(context.Background(), "GEMINI_API_KEY not set, chat runs in fallback mode")
		asker = ai.Disabled()
	} else {
		asker, err = newChatService(context.Background(), cfg.Gemini)
		if err != nil {
			logger.Error(context.Background(), "Failed to initialize chat service, falling back", zap.Error(err))
			asker = ai.Disabled()
		}
	}

	notifier := revalidate.NewNotifier(cfg.Revalidate.WebhookURL)

	cookieSecure := cfg.Server.Env == "production"

	// Handlers
	authHandler := handlers.NewAuthHandler(authUsecase, adminRepo, auditRepo, cookieSecure)
	teamHandler := handlers.NewTeamMemberHandler(teamRepo, notifier)
	founderHandler := handlers.NewFounderHandler(founderRepo, notifier)
	blogHandler := handlers.NewBlogHandler(blogRepo, notifier)
	bugReportHandler := handlers.NewBugReportHandler(bugReportRepo)
	applicantHandler := handlers.NewApplicantHandler(applicantRepo)
	feedbackHandler := handlers.NewFeedbackHandler(feedbackRepo)
	siteContentHandler := handlers.NewSiteContentHandler(siteContentRepo, notifier)
	hallOfFameHandler := handlers.NewHallOfFameHandler(hallOfFameRepo, notifier)
	waitlistHandler := handlers.NewWaitlistHandler(waitlistRepo)
	chatHandler := handlers.NewChatHandler(asker)
	dashboardHandler := handlers.NewDashboardHandler(bugReportRepo, applicantRepo)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.MetricsMiddleware())

	applyCORSMiddleware(r)
	registerHealthRoute(r)
	registerMetricsRoute(r)

	deps := routeDeps{
		authHandler:        authHandler,
		teamHandler:        teamHandler,
		founderHandler:     founderHandler,
		blogHandler:        blogHandler,
		bugReportHandler:   bugReportHandler,
		applicantHandler:   applicantHandler,
		feedbackHandler:    feedbackHandler,
		siteContentHandler: siteContentHandler,
		hallOfFameHandler:  hallOfFameHandler,
		waitlistHandler:    waitlistHandler,
		chatHandler:        chatHandler,
		dashboardHandler:   dashboardHandler,
		adminAuth:          middleware.AdminAuthMiddleware(authUsecase),
		requireSessionPage: middleware.RequireSessionPage(authUsecase, "/admin/login"),
		redirectIfAuthed:   middleware.RedirectIfAuthenticated(authUsecase, "/admin/dashboard"),
	}
	registerAPIV1Routes(r, deps)
	registerAdminPages(r, deps)

	log.Printf("MintFire backend starting on port %s", cfg.Server.Port)
	log.Printf("API: http://localhost:%s/api/v1", cfg.Server.Port)
	log.Printf("Health: http://localhost:%s/health", cfg.Server.Port)

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
