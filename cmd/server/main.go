package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tenthin/youtube-analyzer/internal/config"
	"github.com/tenthin/youtube-analyzer/internal/db"
	"github.com/tenthin/youtube-analyzer/internal/handler"
	"github.com/tenthin/youtube-analyzer/internal/llm"
	"github.com/tenthin/youtube-analyzer/internal/middleware"
	"github.com/tenthin/youtube-analyzer/internal/repository"
	"github.com/tenthin/youtube-analyzer/internal/router"
	"github.com/tenthin/youtube-analyzer/internal/service"
	"github.com/tenthin/youtube-analyzer/internal/store"
	"github.com/tenthin/youtube-analyzer/internal/youtube"
)

func main() {
	cfg := config.Load()
	middleware.InitLogger(cfg.LogLevel, "youtube-analyzer")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// The database backs only the stats archive; the analyzer runs
	// without it.
	var pool *pgxpool.Pool
	var archive *repository.AnalysisRepo
	if cfg.DatabaseURL != "" {
		p, err := db.NewPool(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Printf("database unavailable, stats disabled: %v", err)
		} else {
			pool = p
			archive = repository.NewAnalysisRepo(pool)
			defer pool.Close()
		}
	} else {
		log.Println("no DATABASE_URL configured, stats disabled")
	}

	kv := store.NewRedisStore(cfg.RedisURL)

	ytClient := youtube.NewClient(cfg.YouTubeAPIKey, "")
	llmClient := llm.NewClient(cfg.OpenAIAPIKey, "", 60*time.Second)

	gather := service.NewGatherService(ytClient)
	judge := service.NewJudgeService(llmClient, cfg.OpenAIModel)
	history := service.NewHistoryService(kv)
	analyze := service.NewAnalyzeService(gather, judge, history, archive)

	handler.InitMetrics(pool)

	app := fiber.New(fiber.Config{
		AppName:      "YouTube Analyzer API",
		ServerHeader: "YouTubeAnalyzer",
	})

	router.Setup(app, &router.Handlers{
		Analyze: handler.NewAnalyzeHandler(analyze),
		History: handler.NewHistoryHandler(analyze),
		Stats:   handler.NewStatsHandler(archive),
		Health:  handler.NewHealthHandler(pool, kv.Client()),
	}, cfg.CORSOrigins)

	go func() {
		log.Printf("youtube-analyzer starting on :%s (env=%s)", cfg.Port, cfg.Environment)
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Fatalf("server error: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}
