// Package handler はanalysisフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"mime"
	"net/http"

	"github.com/gin-gonic/gin"

	"company_analyzer/internal/api"
	"company_analyzer/internal/feature/analysis/domain"
	"company_analyzer/internal/feature/analysis/domain/entity"
)

// EmptyCompanyNameWarning は企業名が未入力の場合に返す警告メッセージです。
const EmptyCompanyNameWarning = "Please enter a company name!"

// AnalysisUsecase は企業分析のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type AnalysisUsecase interface {
	Analyze(ctx context.Context, companyName string) (*entity.AnalysisResult, error)
}

// AnalysisHandler は企業分析のHTTPリクエストを処理します。
type AnalysisHandler struct {
	uc AnalysisUsecase
}

// NewAnalysisHandler はAnalysisHandlerの新しいインスタンスを生成します。
func NewAnalysisHandler(uc AnalysisUsecase) *AnalysisHandler {
	return &AnalysisHandler{uc: uc}
}

// Analyze は企業名を受け取り、分析結果をJSONで返します。
//
// エンドポイント: POST /v1/analysis
// Content-Type: application/json
func (h *AnalysisHandler) Analyze(c *gin.Context) {
	result, ok := h.run(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, result)
}

// Download は分析結果を「<企業名>.json」という添付ファイルとして返します。
//
// エンドポイント: POST /v1/analysis/download
// Content-Type: application/json
func (h *AnalysisHandler) Download(c *gin.Context) {
	result, ok := h.run(c)
	if !ok {
		return
	}
	disposition := mime.FormatMediaType("attachment", map[string]string{
		"filename": result.CompanyInfo.Company + ".json",
	})
	if disposition == "" {
		disposition = `attachment; filename="analysis.json"`
	}
	c.Header("Content-Disposition", disposition)
	c.IndentedJSON(http.StatusOK, result)
}

// run はリクエストをバインドして分析を実行します。失敗時はレスポンスを書き込み、falseを返します。
func (h *AnalysisHandler) run(c *gin.Context) (*entity.AnalysisResult, bool) {
	var req api.AnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("analysis request validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return nil, false
	}

	result, err := h.uc.Analyze(c.Request.Context(), req.CompanyName)
	if errors.Is(err, domain.ErrCompanyNameRequired) {
		c.JSON(http.StatusBadRequest, api.WarningResponse{Warning: EmptyCompanyNameWarning})
		return nil, false
	}
	if err != nil {
		slog.Error("company analysis failed", "error", err, "company", req.CompanyName)
		c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: "company analysis failed"})
		return nil, false
	}
	return result, true
}
