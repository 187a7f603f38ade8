package usecase_test

import (
	"context"
	"errors"
)

// ErrAPI はモックと期待値の間で共有されるセンチネルエラーです。
var ErrAPI = errors.New("api error")

// mockEncyclopediaClient はEncyclopediaClientインターフェースのモック実装です。
type mockEncyclopediaClient struct {
	SummaryFunc  func(ctx context.Context, companyName string) (string, error)
	SummaryCalls int
}

func (m *mockEncyclopediaClient) Summary(ctx context.Context, companyName string) (string, error) {
	m.SummaryCalls++
	if m.SummaryFunc != nil {
		return m.SummaryFunc(ctx, companyName)
	}
	return "", errors.New("SummaryFunc is not implemented")
}

// mockTextGenerator はTextGeneratorインターフェースのモック実装です。
// 呼び出されたプロンプトを順に記録します。
type mockTextGenerator struct {
	GenerateFunc func(ctx context.Context, prompt string) (string, error)
	Prompts      []string
}

func (m *mockTextGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	m.Prompts = append(m.Prompts, prompt)
	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx, prompt)
	}
	return "", errors.New("GenerateFunc is not implemented")
}
