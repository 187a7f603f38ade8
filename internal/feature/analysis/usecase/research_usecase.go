// Package usecase はanalysisフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"company_analyzer/internal/feature/analysis/domain"
	"company_analyzer/internal/feature/analysis/domain/entity"
)

const (
	// DisambiguationMarker は曖昧さ回避ページの要約に含まれる文言です。
	DisambiguationMarker = "may refer to:"
	// DescriptionPromptTemplate は参照APIが使えない場合に企業概要を生成させるプロンプトです。
	DescriptionPromptTemplate = "Write a short professional description of the company %q in 2-3 lines. " +
		"Mention what the company does, its main products or services and the industry it operates in. " +
		"Respond with the description only."
)

// 参照APIからは取得しないため、常に同じ値を返す。
var (
	placeholderOfferings      = []string{"Product A", "Product B"}
	placeholderStrategicFocus = []string{"Focus Area 1", "Focus Area 2"}
)

// EncyclopediaClient は企業名から百科事典の要約文を取得するインターフェースです。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type EncyclopediaClient interface {
	// Summary は企業名に対応するページの要約文を返します。
	Summary(ctx context.Context, companyName string) (string, error)
}

// TextGenerator はプロンプトからテキストを生成するインターフェースです。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type TextGenerator interface {
	// Generate はプロンプトに対するモデルの応答テキストを返します。
	Generate(ctx context.Context, prompt string) (string, error)
}

// ResearchUsecase は企業情報の調査を行います。
type ResearchUsecase struct {
	lookup    EncyclopediaClient
	generator TextGenerator
}

// NewResearchUsecase はResearchUsecaseの新しいインスタンスを生成します。
func NewResearchUsecase(lookup EncyclopediaClient, generator TextGenerator) *ResearchUsecase {
	return &ResearchUsecase{lookup: lookup, generator: generator}
}

// Research は企業概要を取得して業界を分類し、CompanyInfoを組み立てます。
func (u *ResearchUsecase) Research(ctx context.Context, companyName string) (entity.CompanyInfo, error) {
	logAction(ctx, agentResearch, "Researching "+companyName)

	description, err := u.describe(ctx, companyName)
	if err != nil {
		return entity.CompanyInfo{}, err
	}

	return entity.CompanyInfo{
		Company:        companyName,
		Industry:       ClassifyIndustry(description),
		Offerings:      append([]string(nil), placeholderOfferings...),
		StrategicFocus: append([]string(nil), placeholderStrategicFocus...),
		Description:    description,
	}, nil
}

// describe は参照APIの要約を優先し、使えない場合は生成モデルで概要を作成します。
// 参照APIの失敗は吸収しますが、生成モデルの失敗はそのまま返します。
func (u *ResearchUsecase) describe(ctx context.Context, companyName string) (string, error) {
	extract, err := u.lookupExtract(ctx, companyName)
	if err == nil {
		return extract, nil
	}
	slog.WarnContext(ctx, "reference lookup unavailable, falling back to generated description",
		"run_id", RunID(ctx), "company", companyName, "error", err)

	description, err := u.generator.Generate(ctx, fmt.Sprintf(DescriptionPromptTemplate, companyName))
	if err != nil {
		return "", fmt.Errorf("generate description for %q: %w", companyName, wrapGeneration(err))
	}
	return strings.TrimSpace(description), nil
}

// lookupExtract は参照APIの要約を取得し、空や曖昧さ回避ページであればエラーを返します。
func (u *ResearchUsecase) lookupExtract(ctx context.Context, companyName string) (string, error) {
	extract, err := u.lookup.Summary(ctx, companyName)
	if err != nil {
		return "", err
	}
	if extract == "" {
		return "", domain.ErrEmptyExtract
	}
	if strings.Contains(extract, DisambiguationMarker) {
		return "", domain.ErrDisambiguation
	}
	return extract, nil
}

// wrapGeneration は生成モデルのエラーを domain.ErrGenerationFailed として扱えるようにします。
func wrapGeneration(err error) error {
	if errors.Is(err, domain.ErrGenerationFailed) {
		return err
	}
	return fmt.Errorf("%w: %w", domain.ErrGenerationFailed, err)
}
