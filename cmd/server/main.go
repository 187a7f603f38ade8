package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"company_analyzer/internal/app/di"
	"company_analyzer/internal/app/router"
	"company_analyzer/internal/config"
)

func main() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	// .envを読み込む
	config.LoadDotEnv()

	// 設定は起動時に一度だけ読み込む
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Handler
	analysisH, err := di.NewAnalysisHandler(context.Background(), cfg)
	if err != nil {
		log.Fatalf("failed to initialize analysis handler: %v", err)
	}

	// ルータ生成
	r := router.NewRouter(analysisH, router.Options{CORSEnabled: cfg.CORSEnabled})

	slog.Info("starting server", "port", cfg.Port, "model", cfg.GeminiModel)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
