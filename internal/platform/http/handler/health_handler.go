// Package handler はプラットフォームレベルのエンドポイント用HTTPハンドラーを提供します。
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ServiceName はヘルスチェックのレスポンスに含めるサービス名です。
const ServiceName = "company-analyzer"

// Health はサービスヘルスチェック用の /healthz エンドポイントを処理します。
// HEADはボディなし、OPTIONSは204、それ以外はステータスをJSONで返します。
func Health(c *gin.Context) {
	c.Header("Cache-Control", "no-store")

	switch c.Request.Method {
	case http.MethodHead:
		c.Status(http.StatusOK)
	case http.MethodOptions:
		c.Status(http.StatusNoContent)
	default:
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": ServiceName})
	}
}
