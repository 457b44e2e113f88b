package main

import (
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"zonosign/internal/config"
	"zonosign/internal/database"
	"zonosign/internal/handlers"
	"zonosign/internal/repository"
	"zonosign/internal/security"
	"zonosign/internal/service"
	"zonosign/internal/syncstore"
)

func main() {
	// Load .env if present; real env vars take precedence
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	db, err := database.Initialize(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	log.Printf("Database connection established (type: %s)", cfg.DatabaseType)

	if err := db.RunMigrations(cfg.MigrationsPath); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	log.Println("Migrations completed successfully")

	if err := db.SeedSignCatalog(); err != nil {
		log.Fatalf("Failed to seed sign catalog: %v", err)
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	signRepo := repository.NewSignRepository(db)
	snapshotRepo := repository.NewSnapshotRepository(db)

	// Snapshot store backend
	var store syncstore.Store
	switch cfg.SyncBackend {
	case "redis":
		redisStore, err := syncstore.NewRedisStore(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			log.Fatalf("Failed to connect to redis: %v", err)
		}
		defer redisStore.Close()
		store = redisStore
		log.Printf("Snapshot store: redis (%s)", cfg.RedisAddr)
	default:
		store = syncstore.NewSQLStore(snapshotRepo)
		log.Println("Snapshot store: sql")
	}

	cache, err := syncstore.NewFileCache(cfg.CacheDir)
	if err != nil {
		log.Fatalf("Failed to create snapshot cache: %v", err)
	}

	pusher := syncstore.NewPusher(store, cache, cfg.SyncPushDelay)

	// Services
	authService := service.NewAuthService(userRepo, cfg.SessionDuration)
	emailService, err := service.NewEmailService(cfg.AWSRegion, cfg.SESFromEmail, cfg.SESFromName, cfg.AppBaseURL, cfg.Debug)
	if err != nil {
		log.Fatalf("Failed to initialize email service: %v", err)
	}

	xpService := service.NewXPService()
	progressService := service.NewProgressService()
	achievementService := service.NewAchievementService(service.DefaultAchievements(), xpService)
	navService := service.NewNavigationService()
	quizService := service.NewQuizService(signRepo, nil)

	totalLessons, err := signRepo.CountCategories()
	if err != nil {
		log.Fatalf("Failed to count lesson categories: %v", err)
	}

	lessonService := service.NewLessonService(
		quizService,
		progressService,
		achievementService,
		xpService,
		navService,
		pusher,
		totalLessons,
	)

	// Handlers
	rateLimiter := security.NewRateLimiter(10, time.Minute)
	middleware := handlers.NewMiddleware(authService, lessonService, rateLimiter)
	authHandler := handlers.NewAuthHandler(authService, lessonService, emailService)
	oauthHandler := handlers.NewOAuthHandler(authService, lessonService, cfg.GoogleClientID, cfg.GoogleClientSecret, cfg.AppBaseURL)
	onboardingHandler := handlers.NewOnboardingHandler(authService, lessonService)
	lessonHandler := handlers.NewLessonHandler(lessonService)
	dictionaryHandler := handlers.NewDictionaryHandler(signRepo)
	progressHandler := handlers.NewProgressHandler(progressService, xpService)
	achievementHandler := handlers.NewAchievementHandler(achievementService)
	navigationHandler := handlers.NewNavigationHandler(lessonService, navService)

	// Routes
	mux := http.NewServeMux()

	// Public
	mux.HandleFunc("POST /api/auth/register", middleware.RateLimit(authHandler.Register))
	mux.HandleFunc("POST /api/auth/login", middleware.RateLimit(authHandler.Login))
	mux.HandleFunc("GET /auth/google/start", oauthHandler.Start)
	mux.HandleFunc("GET /auth/google/callback", oauthHandler.Callback)

	// Authenticated
	mux.HandleFunc("GET /api/auth/me", middleware.RequireAuth(authHandler.Me))
	mux.HandleFunc("POST /api/auth/signout", middleware.RequireAuth(authHandler.SignOut))
	mux.HandleFunc("POST /api/onboarding", middleware.RequireAuth(onboardingHandler.Complete))

	mux.HandleFunc("POST /api/lessons/{lessonID}/start", middleware.RequireAuth(lessonHandler.Start))
	mux.HandleFunc("GET /api/lessons/session", middleware.RequireAuth(lessonHandler.Current))
	mux.HandleFunc("POST /api/lessons/session/answer", middleware.RequireAuth(lessonHandler.Answer))
	mux.HandleFunc("POST /api/lessons/session/advance", middleware.RequireAuth(lessonHandler.Advance))
	mux.HandleFunc("POST /api/lessons/session/abandon", middleware.RequireAuth(lessonHandler.Abandon))

	mux.HandleFunc("GET /api/dictionary/categories", middleware.RequireAuth(dictionaryHandler.Categories))
	mux.HandleFunc("GET /api/dictionary/categories/{categoryID}/signs", middleware.RequireAuth(dictionaryHandler.Signs))
	mux.HandleFunc("GET /api/dictionary/search", middleware.RequireAuth(dictionaryHandler.Search))

	mux.HandleFunc("GET /api/progress", middleware.RequireAuth(progressHandler.Get))
	mux.HandleFunc("GET /api/achievements", middleware.RequireAuth(achievementHandler.List))
	mux.HandleFunc("POST /api/achievements/notifications", middleware.RequireAuth(achievementHandler.Notifications))

	mux.HandleFunc("GET /api/navigation", middleware.RequireAuth(navigationHandler.Get))
	mux.HandleFunc("PUT /api/navigation/tab", middleware.RequireAuth(navigationHandler.SetTab))

	handler := handlers.Logging(mux)

	addr := ":" + cfg.ServerPort
	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go cleanupExpiredSessions(authService)

	go func() {
		log.Printf("Server starting on http://localhost%s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Server shutting down...")
}

func cleanupExpiredSessions(authService *service.AuthService) {
	ticker := time.NewTicker(1 * time.Hour)
	defer ticker.Stop()

	for range ticker.C {
		if err := authService.CleanupExpiredSessions(); err != nil {
			log.Printf("Session cleanup failed: %v", err)
		}
	}
}
