// Package config は環境変数（および .env）からアプリケーション設定を読み込みます。
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// 既定値
const (
	DefaultGeminiModel      = "gemini-1.5-pro"
	DefaultWikipediaBaseURL = "https://en.wikipedia.org/api/rest_v1"
	DefaultWikipediaAgent   = "company-analyzer/1.0"
	DefaultHTTPTimeout      = time.Duration(0) // 0はタイムアウトなし
	DefaultPort             = "8080"
)

// ErrMissingAPIKey はGEMINI_API_KEYが設定されていない場合に返されます。
var ErrMissingAPIKey = errors.New("GEMINI_API_KEY is not set")

// Config は起動時に一度だけ読み込まれる設定値です。
// 各コンポーネントのコンストラクタに明示的に渡します。
type Config struct {
	GeminiAPIKey       string
	GeminiModel        string
	GeminiBaseURL      string
	WikipediaBaseURL   string
	WikipediaUserAgent string
	HTTPTimeout        time.Duration
	Port               string
	CORSEnabled        bool
}

// LoadDotEnv は .env が存在すれば読み込みます。存在しない場合は環境変数のみを使います。
func LoadDotEnv(files ...string) {
	if err := godotenv.Load(files...); err != nil {
		slog.Info(".env not found; using system environment variables")
	}
}

// Load は環境変数から設定を読み込みます。
func Load() (Config, error) {
	return FromLookup(os.LookupEnv)
}

// FromLookup は指定された検索関数から設定を組み立てます。
func FromLookup(lookup func(string) (string, bool)) (Config, error) {
	get := func(key, def string) string {
		if v, ok := lookup(key); ok && v != "" {
			return v
		}
		return def
	}

	cfg := Config{
		GeminiAPIKey:       get("GEMINI_API_KEY", ""),
		GeminiModel:        get("GEMINI_MODEL", DefaultGeminiModel),
		GeminiBaseURL:      get("GEMINI_BASE_URL", ""),
		WikipediaBaseURL:   get("WIKIPEDIA_BASE_URL", DefaultWikipediaBaseURL),
		WikipediaUserAgent: get("WIKIPEDIA_USER_AGENT", DefaultWikipediaAgent),
		HTTPTimeout:        DefaultHTTPTimeout,
		Port:               get("PORT", DefaultPort),
	}

	if v := get("HTTP_TIMEOUT", ""); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("parse HTTP_TIMEOUT %q: %w", v, err)
		}
		cfg.HTTPTimeout = d
	}
	if v := get("CORS_ENABLED", ""); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("parse CORS_ENABLED %q: %w", v, err)
		}
		cfg.CORSEnabled = b
	}

	if cfg.GeminiAPIKey == "" {
		return cfg, ErrMissingAPIKey
	}
	return cfg, nil
}
