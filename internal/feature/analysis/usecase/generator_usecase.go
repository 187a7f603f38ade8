package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"company_analyzer/internal/feature/analysis/domain/entity"
)

// UseCasePromptTemplate はユースケース生成のプロンプトテンプレートです。
// 業界・概要・製品・戦略的重点の順に埋め込みます。
const UseCasePromptTemplate = `You are an AI consultant. Given the following company details:
Industry: %s
Description: %s
Offerings: %s
Strategic Focus: %s

Suggest practical AI/ML and GenAI solutions that this company could adopt.
Cover improvements to customer experience, operations and supply chain.
Also cover internal GenAI tooling such as document search, automated reporting and AI-powered chat assistants for employees.
Respond only with a JSON array where each element has exactly the fields "use_case", "description" and "feasibility".
`

// GeneratorUsecase は生成モデルを使ってAI/MLユースケースを提案します。
type GeneratorUsecase struct {
	generator TextGenerator
}

// NewGeneratorUsecase はGeneratorUsecaseの新しいインスタンスを生成します。
func NewGeneratorUsecase(generator TextGenerator) *GeneratorUsecase {
	return &GeneratorUsecase{generator: generator}
}

// BuildUseCasePrompt は企業情報からユースケース生成用のプロンプトを組み立てます。
func BuildUseCasePrompt(info entity.CompanyInfo) string {
	return fmt.Sprintf(UseCasePromptTemplate,
		info.Industry,
		info.Description,
		strings.Join(info.Offerings, ", "),
		strings.Join(info.StrategicFocus, ", "),
	)
}

// GenerateUseCases はプロンプトを送信し、応答をユースケースの列に変換します。
// 生成モデルの呼び出しに失敗した場合はエラーを返します。
func (u *GeneratorUsecase) GenerateUseCases(ctx context.Context, info entity.CompanyInfo) (entity.UseCaseList, error) {
	logAction(ctx, agentMarket, "Generating AI/ML/GenAI use cases", "industry", info.Industry)

	text, err := u.generator.Generate(ctx, BuildUseCasePrompt(info))
	if err != nil {
		return nil, fmt.Errorf("generate use cases for %q: %w", info.Company, wrapGeneration(err))
	}

	useCases, err := parseUseCases(text)
	if err != nil {
		slog.WarnContext(ctx, "model output was not a JSON array, keeping it as a summary",
			"run_id", RunID(ctx), "company", info.Company, "error", err)
	}
	return useCases, nil
}

// ParseUseCases は応答テキスト全体をJSON配列としてデコードします。
// デコードできない場合は生テキストを持つ RawSummary 1件に縮退します。
func ParseUseCases(text string) entity.UseCaseList {
	useCases, _ := parseUseCases(text)
	return useCases
}

// parseUseCases は縮退した場合でも結果を返し、その理由をエラーとして添える。
func parseUseCases(text string) (entity.UseCaseList, error) {
	useCases, err := entity.DecodeUseCases([]byte(text))
	if err != nil {
		return entity.UseCaseList{entity.RawSummary{Text: text}}, err
	}
	return useCases, nil
}
