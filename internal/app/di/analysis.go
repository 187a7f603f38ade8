// Package di provides dependency injection factories for creating application components.
package di

import (
	"context"

	"company_analyzer/internal/config"
	"company_analyzer/internal/feature/analysis/adapters/gemini"
	"company_analyzer/internal/feature/analysis/transport/handler"
	"company_analyzer/internal/feature/analysis/usecase"
	"company_analyzer/internal/platform/externalapi/wikipedia"
	infrahttp "company_analyzer/internal/platform/http"
)

// NewEncyclopediaClient creates a Wikipedia summary client with its own HTTP client.
func NewEncyclopediaClient(cfg config.Config) *wikipedia.SummaryClient {
	wcfg := wikipedia.Config{
		BaseURL:   cfg.WikipediaBaseURL,
		UserAgent: cfg.WikipediaUserAgent,
		Timeout:   cfg.HTTPTimeout,
	}
	return wikipedia.NewSummaryClient(wcfg, infrahttp.NewHTTPClient(wcfg.Timeout))
}

// NewTextGenerator creates a Gemini-backed text generator using the configured API key.
func NewTextGenerator(ctx context.Context, cfg config.Config) (*gemini.GeminiGenerator, error) {
	return gemini.NewGeminiGenerator(ctx, gemini.Config{
		APIKey:  cfg.GeminiAPIKey,
		Model:   cfg.GeminiModel,
		BaseURL: cfg.GeminiBaseURL,
	})
}

// NewAnalysisUsecase wires the reference client and the generator into the analysis pipeline.
func NewAnalysisUsecase(ctx context.Context, cfg config.Config) (*usecase.AnalysisUsecase, error) {
	generator, err := NewTextGenerator(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return usecase.NewAnalysisUsecase(NewEncyclopediaClient(cfg), generator), nil
}

// NewAnalysisHandler creates the HTTP handler for the analysis feature.
func NewAnalysisHandler(ctx context.Context, cfg config.Config) (*handler.AnalysisHandler, error) {
	uc, err := NewAnalysisUsecase(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return handler.NewAnalysisHandler(uc), nil
}
