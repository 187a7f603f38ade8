package entity

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// DefaultUseCaseTitle は要素からタイトルを取り出せない場合に使うタイトルです。
const DefaultUseCaseTitle = "general"

// UseCase はAI/MLユースケースの提案1件を表す直和型です。
// 実装は StructuredUseCase, RawSummary, OpaqueUseCase の3つに限られます。
type UseCase interface {
	json.Marshaler
	// Title はリソースリンクの生成に使うタイトルを返します。
	Title() string
	isUseCase()
}

// StructuredUseCase はモデル出力のJSON配列の中のオブジェクト要素です。
// スキーマ検証は行わないため、フィールドの欠落や余分なフィールドがあり得ます。
type StructuredUseCase struct {
	UseCase     string
	Description string
	Feasibility string

	// デコード元のオブジェクト。nilでなければそのまま出力する。
	raw   json.RawMessage
	title string
}

// NewStructuredUseCase はフィールドを指定してStructuredUseCaseを生成します。
func NewStructuredUseCase(useCase, description, feasibility string) StructuredUseCase {
	return StructuredUseCase{UseCase: useCase, Description: description, Feasibility: feasibility}
}

// Title は use_case → use_case_summary → "general" の順にタイトルを決定します。
func (s StructuredUseCase) Title() string {
	if s.raw == nil {
		return s.UseCase
	}
	return s.title
}

// MarshalJSON はデコード元のオブジェクトを変更せずに出力します。
func (s StructuredUseCase) MarshalJSON() ([]byte, error) {
	if s.raw != nil {
		return s.raw, nil
	}
	return json.Marshal(struct {
		UseCase     string `json:"use_case"`
		Description string `json:"description"`
		Feasibility string `json:"feasibility"`
	}{s.UseCase, s.Description, s.Feasibility})
}

func (StructuredUseCase) isUseCase() {}

// RawSummary はモデル出力をJSONとして解釈できなかった場合の縮退レコードです。
type RawSummary struct {
	Text string
}

// Title はモデルの生出力をそのままタイトルとして返します。
func (r RawSummary) Title() string { return r.Text }

// MarshalJSON は {"use_case_summary": ...} の形で出力します。
func (r RawSummary) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]string{"use_case_summary": r.Text})
}

func (RawSummary) isUseCase() {}

// OpaqueUseCase は配列中のオブジェクト以外の要素（文字列・数値など）です。
type OpaqueUseCase struct {
	Raw json.RawMessage
}

// Title は常に DefaultUseCaseTitle を返します。
func (OpaqueUseCase) Title() string { return DefaultUseCaseTitle }

// MarshalJSON は元の要素をそのまま出力します。
func (o OpaqueUseCase) MarshalJSON() ([]byte, error) {
	if len(o.Raw) == 0 {
		return []byte("null"), nil
	}
	return o.Raw, nil
}

func (OpaqueUseCase) isUseCase() {}

// UseCaseList はユースケースの列です。JSON配列との相互変換ができます。
type UseCaseList []UseCase

// UnmarshalJSON はJSON配列を要素ごとにUseCaseへデコードします。
func (l *UseCaseList) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*l = nil
		return nil
	}
	out, err := DecodeUseCases(data)
	if err != nil {
		return err
	}
	*l = out
	return nil
}

// DecodeUseCases はJSON配列をUseCaseListにデコードします。
// 配列以外のJSON（null を含む）や不正なJSONはエラーになります。
func DecodeUseCases(data []byte) (UseCaseList, error) {
	var elems []json.RawMessage
	if err := json.Unmarshal(data, &elems); err != nil {
		return nil, fmt.Errorf("decode use cases: %w", err)
	}
	// null は Unmarshal が成功して nil スライスになる。空配列は非nilの空スライス。
	if elems == nil {
		return nil, fmt.Errorf("decode use cases: got %s, want a JSON array", bytes.TrimSpace(data))
	}
	out := make(UseCaseList, 0, len(elems))
	for _, e := range elems {
		out = append(out, decodeUseCase(e))
	}
	return out, nil
}

func decodeUseCase(elem json.RawMessage) UseCase {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(elem, &fields); err != nil || fields == nil {
		return OpaqueUseCase{Raw: elem}
	}

	summary, hasSummary := stringField(fields, "use_case_summary")
	if hasSummary && len(fields) == 1 {
		return RawSummary{Text: summary}
	}

	s := StructuredUseCase{raw: elem, title: DefaultUseCaseTitle}
	s.UseCase, _ = stringField(fields, "use_case")
	s.Description, _ = stringField(fields, "description")
	s.Feasibility, _ = stringField(fields, "feasibility")
	if v, ok := stringField(fields, "use_case"); ok {
		s.title = v
	} else if hasSummary {
		s.title = summary
	}
	return s
}

// stringField はフィールドが存在し、かつ文字列である場合にその値を返します。
func stringField(fields map[string]json.RawMessage, key string) (string, bool) {
	raw, ok := fields[key]
	if !ok {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}
