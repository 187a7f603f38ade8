package usecase

import (
	"context"
	"fmt"
	"strings"

	"company_analyzer/internal/feature/analysis/domain/entity"
)

// 検索エンドポイントのテンプレート。タイトルは空白を + に置換したうえで埋め込み、それ以外のエスケープはしない。
const (
	DatasetSearchURLTemplate = "https://kaggle.com/search?q=%s"
	ModelSearchURLTemplate   = "https://huggingface.co/models?search=%s"
	GithubSearchURLTemplate  = "https://github.com/search?q=%s"
)

// ResourceUsecase はユースケースごとの外部リソースリンクを組み立てます。
// ネットワークアクセスは行いません。
type ResourceUsecase struct{}

// NewResourceUsecase はResourceUsecaseの新しいインスタンスを生成します。
func NewResourceUsecase() *ResourceUsecase {
	return &ResourceUsecase{}
}

// FindResources はユースケースのタイトルごとにデータセット・モデル・GitHubの検索URLを返します。
// 同じタイトルが複数ある場合は後のものが残ります。
func (u *ResourceUsecase) FindResources(ctx context.Context, useCases entity.UseCaseList) entity.ResourceBundle {
	logAction(ctx, agentResource, "Finding resources", "use_cases", len(useCases))

	bundle := make(entity.ResourceBundle, len(useCases))
	for _, uc := range useCases {
		title := titleOf(uc)
		bundle[title] = LinkResources(title)
	}
	return bundle
}

// LinkResources はタイトルから3種類の検索URLを生成します。
func LinkResources(title string) entity.Resources {
	q := strings.ReplaceAll(title, " ", "+")
	return entity.Resources{
		Datasets:       []string{fmt.Sprintf(DatasetSearchURLTemplate, q)},
		Models:         []string{fmt.Sprintf(ModelSearchURLTemplate, q)},
		GithubProjects: []string{fmt.Sprintf(GithubSearchURLTemplate, q)},
	}
}

// nil要素はタイトルを持たないものとして扱う。
func titleOf(uc entity.UseCase) string {
	if uc == nil {
		return entity.DefaultUseCaseTitle
	}
	return uc.Title()
}
