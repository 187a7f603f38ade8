// Package entity はanalysisフィーチャーのドメインモデルを定義します。
package entity

// 業界ラベル。Classifyが返す値はこの7つのいずれかです。
const (
	IndustryAutomotive    = "Automotive"
	IndustryFinance       = "Finance"
	IndustryRetail        = "E-commerce/Retail"
	IndustryTechnology    = "Technology"
	IndustryEntertainment = "Entertainment/Media"
	IndustryHealthcare    = "Healthcare"
	IndustryGeneral       = "General Industry"
)

// CompanyInfo は1回の分析で調査された企業情報を表します。
// 生成後は変更しません。
type CompanyInfo struct {
	Company        string   `json:"company"`         // 入力された企業名
	Industry       string   `json:"industry"`        // 業界ラベル
	Offerings      []string `json:"offerings"`       // 製品・サービス
	StrategicFocus []string `json:"strategic_focus"` // 戦略的重点領域
	Description    string   `json:"description"`     // 企業概要
}
