package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	analysishandler "company_analyzer/internal/feature/analysis/transport/handler"
	platformhandler "company_analyzer/internal/platform/http/handler"
)

// Options はルーター生成時のオプションです。
type Options struct {
	CORSEnabled bool // ブラウザ画面を別オリジンから配信する場合に有効化
}

// NewRouter はanalysisフィーチャーのルートを登録したgin.Engineを返します。
func NewRouter(analysis *analysishandler.AnalysisHandler, opts Options) *gin.Engine {
	r := gin.Default()
	if opts.CORSEnabled {
		r.Use(cors.Default())
	}

	// 導通確認用
	r.GET("/healthz", platformhandler.Health)
	r.HEAD("/healthz", platformhandler.Health)
	r.OPTIONS("/healthz", platformhandler.Health)

	// 入力フォームと結果表示
	r.GET("/", analysishandler.Page)

	v1 := r.Group("/v1")
	{
		v1.POST("/analysis", analysis.Analyze)
		v1.POST("/analysis/download", analysis.Download)
	}

	return r
}
