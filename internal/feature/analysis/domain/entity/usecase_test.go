package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUseCase_Title(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		element  string
		expected string
		variant  UseCase
	}{
		{"use_case field", `{"use_case":"A","use_case_summary":"B"}`, "A", StructuredUseCase{}},
		{"empty use_case still wins", `{"use_case":"","use_case_summary":"B"}`, "", StructuredUseCase{}},
		{"summary with other fields", `{"use_case_summary":"B","feasibility":"Low"}`, "B", StructuredUseCase{}},
		{"summary only", `{"use_case_summary":"B"}`, "B", RawSummary{}},
		{"non-string use_case falls through", `{"use_case":7,"use_case_summary":"B"}`, "B", StructuredUseCase{}},
		{"no title fields", `{"description":"x"}`, DefaultUseCaseTitle, StructuredUseCase{}},
		{"empty object", `{}`, DefaultUseCaseTitle, StructuredUseCase{}},
		{"string element", `"text"`, DefaultUseCaseTitle, OpaqueUseCase{}},
		{"array element", `[1,2]`, DefaultUseCaseTitle, OpaqueUseCase{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			list, err := DecodeUseCases([]byte("[" + tt.element + "]"))
			require.NoError(t, err)
			require.Len(t, list, 1)

			assert.IsType(t, tt.variant, list[0])
			assert.Equal(t, tt.expected, list[0].Title())
		})
	}
}

func TestDecodeUseCases_NotAnArray(t *testing.T) {
	t.Parallel()

	for _, in := range []string{`{"use_case":"A"}`, `"text"`, `null`, ` null `, `not json`, ``} {
		_, err := DecodeUseCases([]byte(in))
		assert.Error(t, err, "input %q", in)
	}
}

func TestDecodeUseCases_EmptyArray(t *testing.T) {
	t.Parallel()

	got, err := DecodeUseCases([]byte(`[]`))
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestStructuredUseCase_MarshalJSON(t *testing.T) {
	t.Parallel()

	b, err := json.Marshal(NewStructuredUseCase("Demand Forecasting", "x", "High"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"use_case":"Demand Forecasting","description":"x","feasibility":"High"}`, string(b))
	assert.Equal(t, "Demand Forecasting", NewStructuredUseCase("Demand Forecasting", "x", "High").Title())
}

func TestUseCaseList_RoundTrip(t *testing.T) {
	t.Parallel()

	in := `[{"use_case":"A","description":"d","feasibility":"High","score":0.5},{"use_case_summary":"raw"},42,null]`

	var list UseCaseList
	require.NoError(t, json.Unmarshal([]byte(in), &list))
	require.Len(t, list, 4)

	structured, ok := list[0].(StructuredUseCase)
	require.True(t, ok)
	assert.Equal(t, "A", structured.UseCase)
	assert.Equal(t, "d", structured.Description)
	assert.Equal(t, "High", structured.Feasibility)
	assert.Equal(t, RawSummary{Text: "raw"}, list[1])

	out, err := json.Marshal(list)
	require.NoError(t, err)
	assert.JSONEq(t, in, string(out))
}

func TestUseCaseList_UnmarshalNull(t *testing.T) {
	t.Parallel()

	var result AnalysisResult
	require.NoError(t, json.Unmarshal([]byte(`{"ai_use_cases":null}`), &result))
	assert.Nil(t, result.AIUseCases)
}
