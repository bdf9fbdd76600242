package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"buyer-quiz/internal/config"
	"buyer-quiz/internal/db"
	"buyer-quiz/internal/email"
	apihttp "buyer-quiz/internal/http"
	"buyer-quiz/internal/llm"
	"buyer-quiz/internal/repository"
	"buyer-quiz/internal/scoring"
	"buyer-quiz/internal/service"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		logger.Fatal("db connect", zap.Error(err))
	}
	defer pool.Close()

	leadRepo := repository.NewPgLeadRepository(pool)
	resultRepo := repository.NewPgResultRepository(pool)
	chatRepo := repository.NewPgChatRepository(pool)

	engine, err := scoring.NewEngine(scoring.DefaultCatalog())
	if err != nil {
		logger.Fatal("scoring engine", zap.Error(err))
	}

	llmClient := llm.NewHTTPClient(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMModel, logger)
	reportSvc := service.NewReportService(llmClient, logger)

	emailSender := email.NewDisabledSender("email sender not configured")
	if cfg.SMTPHost != "" {
		sender, err := email.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPFrom, cfg.SMTPFromName, cfg.SMTPUseTLS)
		if err != nil {
			logger.Warn("smtp sender init failed", zap.Error(err))
		} else {
			emailSender = sender
		}
	}

	var submitLimiter service.SubmitRateLimiter
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := redisClient.Ping(ctxPing).Err(); err != nil {
			logger.Warn("redis ping failed", zap.Error(err))
		} else {
			submitLimiter = service.NewRedisSubmitRateLimiter(
				redisClient,
				time.Duration(cfg.SubmitWindowMinutes)*time.Minute,
				cfg.SubmitMaxPerWindow,
			)
		}
		cancel()
	}

	adminAuth := service.NewAdminAuthService(
		cfg.JWTSecret,
		cfg.AdminPasswordHash,
		time.Duration(cfg.JWTAccessTTLMinutes)*time.Minute,
	)
	if cfg.JWTSecret == "" || cfg.AdminPasswordHash == "" {
		logger.Warn("admin auth not configured")
	}

	quizSvc := service.NewQuizService(logger, engine, leadRepo, resultRepo, reportSvc, emailSender, submitLimiter)
	chatSvc := service.NewChatService(logger, chatRepo)

	quizHandler := apihttp.NewQuizHandler(logger, scoring.DefaultCatalog(), quizSvc)
	chatHandler := apihttp.NewChatHandler(logger, chatSvc)
	calcHandler := apihttp.NewCalculatorHandler(logger, service.CalculatorService{})
	adminHandler := apihttp.NewAdminHandler(logger, adminAuth, leadRepo, resultRepo)
	router := apihttp.NewRouter(logger, cfg.AllowedOrigins, quizHandler, chatHandler, calcHandler, adminHandler, adminAuth)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("starting server", zap.String("port", cfg.HTTPPort))

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}
