package usecase

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"company_analyzer/internal/feature/analysis/domain"
	"company_analyzer/internal/feature/analysis/domain/entity"
)

// AnalysisUsecase は調査・ユースケース生成・リソース収集を順番に実行します。
// 各ステップは前のステップが完了してから開始します。
type AnalysisUsecase struct {
	research  *ResearchUsecase
	generator *GeneratorUsecase
	resources *ResourceUsecase
}

// NewAnalysisUsecase は参照APIクライアントと生成モデルからAnalysisUsecaseを組み立てます。
func NewAnalysisUsecase(lookup EncyclopediaClient, generator TextGenerator) *AnalysisUsecase {
	return &AnalysisUsecase{
		research:  NewResearchUsecase(lookup, generator),
		generator: NewGeneratorUsecase(generator),
		resources: NewResourceUsecase(),
	}
}

// Analyze は企業名を受け取り、分析結果を返します。
// 企業名が空の場合は外部APIを呼び出さずに domain.ErrCompanyNameRequired を返します。
// 生成モデルの失敗は回復せず、途中結果も返しません。
func (u *AnalysisUsecase) Analyze(ctx context.Context, companyName string) (*entity.AnalysisResult, error) {
	if strings.TrimSpace(companyName) == "" {
		return nil, domain.ErrCompanyNameRequired
	}
	if RunID(ctx) == "" {
		ctx = WithRunID(ctx, uuid.NewString())
	}

	info, err := u.research.Research(ctx, companyName)
	if err != nil {
		return nil, err
	}

	useCases, err := u.generator.GenerateUseCases(ctx, info)
	if err != nil {
		return nil, err
	}

	assets := u.resources.FindResources(ctx, useCases)

	slog.InfoContext(ctx, "analysis completed",
		"run_id", RunID(ctx), "company", companyName, "industry", info.Industry, "use_cases", len(useCases))

	return &entity.AnalysisResult{
		CompanyInfo:    info,
		AIUseCases:     useCases,
		ResourceAssets: assets,
	}, nil
}
