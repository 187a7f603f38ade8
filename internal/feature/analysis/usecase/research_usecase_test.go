package usecase_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"company_analyzer/internal/feature/analysis/domain"
	"company_analyzer/internal/feature/analysis/domain/entity"
	"company_analyzer/internal/feature/analysis/usecase"
)

func TestResearchUsecase_Research(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name                string
		summaryFunc         func(ctx context.Context, companyName string) (string, error)
		generateFunc        func(ctx context.Context, prompt string) (string, error)
		expectedDescription string
		expectedIndustry    string
		expectedPrompts     int
		expectedErr         error
	}{
		{
			name: "success: reference extract used without fallback",
			summaryFunc: func(ctx context.Context, companyName string) (string, error) {
				return "Acme makes widgets.", nil
			},
			expectedDescription: "Acme makes widgets.",
			expectedIndustry:    entity.IndustryGeneral,
			expectedPrompts:     0,
		},
		{
			name: "fallback: disambiguation page",
			summaryFunc: func(ctx context.Context, companyName string) (string, error) {
				return "Acme may refer to:", nil
			},
			generateFunc: func(ctx context.Context, prompt string) (string, error) {
				return "Acme is a software company.\n", nil
			},
			expectedDescription: "Acme is a software company.",
			expectedIndustry:    entity.IndustryTechnology,
			expectedPrompts:     1,
		},
		{
			name: "fallback: empty extract",
			summaryFunc: func(ctx context.Context, companyName string) (string, error) {
				return "", nil
			},
			generateFunc: func(ctx context.Context, prompt string) (string, error) {
				return "Acme is a retail chain.", nil
			},
			expectedDescription: "Acme is a retail chain.",
			expectedIndustry:    entity.IndustryRetail,
			expectedPrompts:     1,
		},
		{
			name: "fallback: lookup failed",
			summaryFunc: func(ctx context.Context, companyName string) (string, error) {
				return "", fmt.Errorf("%w: wikipedia http 404", domain.ErrLookupFailed)
			},
			generateFunc: func(ctx context.Context, prompt string) (string, error) {
				return "Acme is a bank.", nil
			},
			expectedDescription: "Acme is a bank.",
			expectedIndustry:    entity.IndustryFinance,
			expectedPrompts:     1,
		},
		{
			name: "error: fallback generation fails",
			summaryFunc: func(ctx context.Context, companyName string) (string, error) {
				return "", ErrAPI
			},
			generateFunc: func(ctx context.Context, prompt string) (string, error) {
				return "", ErrAPI
			},
			expectedPrompts: 1,
			expectedErr:     domain.ErrGenerationFailed,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			lookup := &mockEncyclopediaClient{SummaryFunc: tc.summaryFunc}
			gen := &mockTextGenerator{GenerateFunc: tc.generateFunc}
			uc := usecase.NewResearchUsecase(lookup, gen)

			info, err := uc.Research(ctx, "Acme")

			assert.Equal(t, 1, lookup.SummaryCalls)
			assert.Len(t, gen.Prompts, tc.expectedPrompts)
			if tc.expectedErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tc.expectedErr)
				assert.ErrorIs(t, err, ErrAPI)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, entity.CompanyInfo{
				Company:        "Acme",
				Industry:       tc.expectedIndustry,
				Offerings:      []string{"Product A", "Product B"},
				StrategicFocus: []string{"Focus Area 1", "Focus Area 2"},
				Description:    tc.expectedDescription,
			}, info)
		})
	}
}

func TestResearchUsecase_FallbackPromptEmbedsCompanyName(t *testing.T) {
	lookup := &mockEncyclopediaClient{
		SummaryFunc: func(ctx context.Context, companyName string) (string, error) {
			return "", domain.ErrLookupFailed
		},
	}
	gen := &mockTextGenerator{
		GenerateFunc: func(ctx context.Context, prompt string) (string, error) {
			return "Globex is a company.", nil
		},
	}
	uc := usecase.NewResearchUsecase(lookup, gen)

	_, err := uc.Research(context.Background(), "Globex Corp")
	require.NoError(t, err)

	require.Len(t, gen.Prompts, 1)
	assert.Equal(t, fmt.Sprintf(usecase.DescriptionPromptTemplate, "Globex Corp"), gen.Prompts[0])
	assert.Contains(t, gen.Prompts[0], `"Globex Corp"`)
}

// TestResearchUsecase_PlaceholdersNotShared は返却された一覧を書き換えても次回の結果に影響しないことを検証します。
func TestResearchUsecase_PlaceholdersNotShared(t *testing.T) {
	lookup := &mockEncyclopediaClient{
		SummaryFunc: func(ctx context.Context, companyName string) (string, error) {
			return "Acme makes widgets.", nil
		},
	}
	uc := usecase.NewResearchUsecase(lookup, &mockTextGenerator{})

	first, err := uc.Research(context.Background(), "Acme")
	require.NoError(t, err)
	first.Offerings[0] = "changed"

	second, err := uc.Research(context.Background(), "Acme")
	require.NoError(t, err)
	assert.Equal(t, "Product A", second.Offerings[0])
}
