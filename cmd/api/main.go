package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/yourusername/assessment-api/internal/config"
	"github.com/yourusername/assessment-api/internal/handler"
	"github.com/yourusername/assessment-api/internal/inference"
	"github.com/yourusername/assessment-api/internal/middleware"
	pgRepo "github.com/yourusername/assessment-api/internal/repository/postgres"
	redisRepo "github.com/yourusername/assessment-api/internal/repository/redis"
	"github.com/yourusername/assessment-api/internal/service"
	"github.com/yourusername/assessment-api/internal/service/assessment"
	"github.com/yourusername/assessment-api/pkg/auth"
	"github.com/yourusername/assessment-api/pkg/database"
	"github.com/yourusername/assessment-api/pkg/logger"
	"github.com/yourusername/assessment-api/pkg/monitoring"
	"github.com/yourusername/assessment-api/pkg/tracing"
)

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		// logger is not configured yet
		zap.NewExample().Fatal("failed to load config", zap.String("path", configPath), zap.Error(err))
	}

	log := logger.New(cfg.Logging, cfg.Server.Mode)
	defer func() { _ = log.Sync() }()
	gin.SetMode(cfg.Server.Mode)

	appCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.Metrics.Enabled {
		monitoring.Init()
	}

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer(cfg.Tracing)
		if err != nil {
			log.Fatal("failed to init tracer", zap.Error(err))
		}
		defer func() {
			ctx, c := context.WithTimeout(context.Background(), 5*time.Second)
			defer c()
			if err := tp.Shutdown(ctx); err != nil {
				log.Warn("tracer shutdown failed", zap.Error(err))
			}
		}()
	}

	// Models are loaded before touching the database: a bad artifact must stop startup
	models, err := inference.LoadModels(cfg.Models)
	if err != nil {
		log.Fatal("failed to load models", zap.String("dir", cfg.Models.Dir), zap.Error(err))
	}
	log.Info("models loaded",
		zap.Strings("interest_outputs", models.Interest.ScoreKeys()),
		zap.Strings("personality_outputs", models.Personality.DimensionKeys()),
		zap.Strings("value_outputs", models.Value.FeatureKeys()))

	db, err := database.NewPostgresDB(cfg.Database.PostgresConnectionString(), database.DefaultPoolConfig(), cfg.Server.Mode == gin.DebugMode)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	if err := database.MigrateDB(db, cfg.Database.MigrationsPath, log); err != nil {
		log.Fatal("failed to migrate database", zap.Error(err))
	}

	redisClient, err := database.NewUniversalRedisClient(appCtx, cfg.Redis)
	if err != nil {
		log.Fatal("failed to connect to redis", zap.Error(err))
	}
	defer redisClient.Close()
	log.Info("connected to redis", zap.String("mode", cfg.Redis.Mode))

	// Repositories
	userRepo := pgRepo.NewUserRepo(db)
	roleRepo := pgRepo.NewRoleRepo(db)
	referenceRepo := pgRepo.NewReferenceRepo(db)
	userTestRepo := pgRepo.NewUserTestRepo(db)
	assessmentRepo := pgRepo.NewAssessmentRepo(db)
	feedbackRepo := pgRepo.NewFeedbackRepo(db)
	unitOfWork := pgRepo.NewUnitOfWork(db, log)

	cacheRepo, err := redisRepo.NewCacheRepo(redisClient, "assessment-api")
	if err != nil {
		log.Fatal("failed to init cache", zap.Error(err))
	}

	// Services
	assessmentService := assessment.NewService(
		unitOfWork,
		models.Interest,
		models.Personality,
		models.Value,
		assessment.DefaultMappings(),
		assessment.ConfigFrom(cfg.Scoring),
		log,
	)
	if err := assessmentService.ValidateReferenceData(appCtx); err != nil {
		log.Fatal("reference data does not match model outputs", zap.Error(err))
	}

	if err := service.NewBootstrapService(userRepo, roleRepo, log).Run(appCtx, cfg.Bootstrap); err != nil {
		log.Fatal("bootstrap failed", zap.Error(err))
	}

	userService := service.NewUserService(userRepo)
	resultService := service.NewResultService(userTestRepo, assessmentRepo, userRepo, cacheRepo, cfg.Cache.ResultTTL, log)
	feedbackService := service.NewFeedbackService(feedbackRepo, referenceRepo, cacheRepo, cfg.Cache.FeedbackTTL, log)

	jwtService, err := auth.NewJWTService(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.ExpirationHrs)
	if err != nil {
		log.Fatal("failed to init jwt service", zap.Error(err))
	}

	// Handlers and middleware
	assessmentHandler := handler.NewAssessmentHandler(assessmentService, resultService, log)
	feedbackHandler := handler.NewFeedbackHandler(feedbackService, log)
	authMiddleware := middleware.NewAuthMiddleware(jwtService, userService, log)
	rateLimiter := middleware.NewRateLimiter(redisClient, log)

	router := gin.New()
	router.Use(gin.Recovery())
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}
	if cfg.Metrics.Enabled {
		router.Use(monitoring.MetricsMiddleware())
		router.GET("/metrics", monitoring.PrometheusHandler())
	}

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.CORS.AllowedOrigins
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	corsConfig.ExposeHeaders = []string{"Content-Disposition", "X-RateLimit-Limit", "X-RateLimit-Remaining", "Retry-After"}
	if len(corsConfig.AllowOrigins) == 0 {
		corsConfig.AllowAllOrigins = true
	}
	router.Use(cors.New(corsConfig))

	router.GET("/health", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		status := gin.H{"status": "ok", "database": "ok", "redis": "ok"}
		code := http.StatusOK
		if sqlDB, err := db.DB(); err != nil || sqlDB.PingContext(ctx) != nil {
			status["database"], status["status"], code = "unavailable", "degraded", http.StatusServiceUnavailable
		}
		if err := redisClient.Ping(ctx).Err(); err != nil {
			status["redis"], status["status"] = "unavailable", "degraded"
		}
		c.JSON(code, status)
	})

	submitLimit := rateLimiter.Limit(middleware.SubmissionRateLimitConfig(cfg.RateLimit.MaxRequests, cfg.RateLimit.Window))

	api := router.Group("/api/v1")
	{
		assessments := api.Group("/assessments")
		assessments.Use(authMiddleware.RequireAuth())
		{
			assessments.POST("/interest", submitLimit, assessmentHandler.SubmitInterest)
			assessments.POST("/personality", submitLimit, assessmentHandler.SubmitPersonality)
			assessments.POST("/value", submitLimit, assessmentHandler.SubmitValue)

			assessments.GET("/tests", assessmentHandler.ListTests)
			withTest := assessments.Group("/tests/:uuid")
			withTest.Use(middleware.ExtractUUIDParam("uuid", "test_uuid"))
			{
				withTest.GET("/result", assessmentHandler.GetResult)
				withTest.DELETE("", assessmentHandler.DeleteTest)
			}
		}

		api.GET("/feedbacks/promoted", feedbackHandler.ListPromoted)
		api.POST("/feedbacks", authMiddleware.RequireAuth(), feedbackHandler.Create)

		admin := api.Group("/admin")
		admin.Use(authMiddleware.RequireAuth(), authMiddleware.AdminOnly())
		{
			admin.GET("/users/:uuid/assessments/export",
				middleware.ExtractUUIDParam("uuid", "user_uuid"), assessmentHandler.ExportUserScores)
			admin.GET("/feedbacks", feedbackHandler.ListAll)
			admin.POST("/feedbacks/:uuid/promote",
				middleware.ExtractUUIDParam("uuid", "feedback_uuid"), feedbackHandler.Promote)
		}
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	go func() {
		log.Info("starting server", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server forced to shutdown", zap.Error(err))
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	log.Info("server exited")
}
