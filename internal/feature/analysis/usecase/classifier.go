package usecase

import (
	"strings"

	"company_analyzer/internal/feature/analysis/domain/entity"
)

// industryRule はキーワードの組と、いずれかが含まれる場合に返す業界ラベルです。
type industryRule struct {
	keywords []string
	label    string
}

// industryRules は評価順に並んだ分類ルールです。最初に一致したものが採用されます。
var industryRules = []industryRule{
	{keywords: []string{"automotive", "vehicle"}, label: entity.IndustryAutomotive},
	{keywords: []string{"finance", "bank"}, label: entity.IndustryFinance},
	{keywords: []string{"e-commerce", "retail"}, label: entity.IndustryRetail},
	{keywords: []string{"technology", "software"}, label: entity.IndustryTechnology},
	{keywords: []string{"entertainment", "media"}, label: entity.IndustryEntertainment},
	{keywords: []string{"healthcare", "medical"}, label: entity.IndustryHealthcare},
}

// ClassifyIndustry は企業概要を小文字化し、キーワードの部分一致で業界ラベルを返します。
// どのルールにも一致しない場合は entity.IndustryGeneral を返します。
func ClassifyIndustry(description string) string {
	text := strings.ToLower(description)
	for _, r := range industryRules {
		for _, kw := range r.keywords {
			if strings.Contains(text, kw) {
				return r.label
			}
		}
	}
	return entity.IndustryGeneral
}
