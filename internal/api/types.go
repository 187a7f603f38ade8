// Package api はHTTPハンドラーが共有するリクエスト・レスポンスの型を定義します。
package api

// ErrorResponse はエラー時のレスポンスボディです。
type ErrorResponse struct {
	Error string `json:"error"`
}

// WarningResponse は入力に問題がある場合のレスポンスボディです。
type WarningResponse struct {
	Warning string `json:"warning"`
}

// AnalysisRequest は /v1/analysis のリクエストボディです。
type AnalysisRequest struct {
	CompanyName string `json:"company_name" form:"company_name"`
}
