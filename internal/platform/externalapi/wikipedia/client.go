package wikipedia

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"company_analyzer/internal/feature/analysis/domain"
	"company_analyzer/internal/feature/analysis/usecase"
	"company_analyzer/internal/platform/externalapi/wikipedia/dto"
)

// SummaryClient はWikipediaのページ要約APIから企業概要を取得するEncyclopediaClient実装です。
type SummaryClient struct {
	cfg    Config
	client *http.Client
}

// SummaryClientがEncyclopediaClientを実装していることをコンパイル時に検証します。
var _ usecase.EncyclopediaClient = (*SummaryClient)(nil)

// NewSummaryClient は指定された設定とHTTPクライアントでSummaryClientの新しいインスタンスを生成します。
func NewSummaryClient(cfg Config, client *http.Client) *SummaryClient {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	return &SummaryClient{cfg: cfg, client: client}
}

// PageTitle は企業名をページタイトルに変換します（空白はアンダースコアに置換）。
func PageTitle(companyName string) string {
	return strings.ReplaceAll(companyName, " ", "_")
}

// Summary は企業名に対応するページの要約文（extract）を返します。
// 非2xxステータスや通信エラーは domain.ErrLookupFailed でラップして返します。
func (s *SummaryClient) Summary(ctx context.Context, companyName string) (string, error) {
	// URLを生成
	u := fmt.Sprintf("%s/page/summary/%s", strings.TrimRight(s.cfg.BaseURL, "/"), url.PathEscape(PageTitle(companyName)))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return "", fmt.Errorf("%w: build request: %w", domain.ErrLookupFailed, err)
	}
	req.Header.Set("Accept", "application/json")
	if s.cfg.UserAgent != "" {
		req.Header.Set("User-Agent", s.cfg.UserAgent)
	}

	// リクエストを実行
	res, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrLookupFailed, err)
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return "", fmt.Errorf("%w: wikipedia http %d", domain.ErrLookupFailed, res.StatusCode)
	}

	// JSONレスポンスをDTOにデコード
	var body dto.SummaryResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("%w: decode summary: %w", domain.ErrLookupFailed, err)
	}
	return body.Extract, nil
}
