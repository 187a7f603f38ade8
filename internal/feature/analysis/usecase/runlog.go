package usecase

import (
	"context"
	"log/slog"
)

// エージェント名。ログの agent 属性に使います。
const (
	agentResearch = "Research Agent"
	agentMarket   = "Market Analysis Agent"
	agentResource = "Resource Collector Agent"
)

type runIDKey struct{}

// WithRunID は分析1回分の実行IDをコンテキストに設定します。
func WithRunID(ctx context.Context, runID string) context.Context {
	return context.WithValue(ctx, runIDKey{}, runID)
}

// RunID はコンテキストに設定された実行IDを返します。未設定の場合は空文字列です。
func RunID(ctx context.Context) string {
	id, _ := ctx.Value(runIDKey{}).(string)
	return id
}

// logAction はエージェントの行動を実行ID付きで記録します。
func logAction(ctx context.Context, agent, action string, args ...any) {
	attrs := append([]any{"run_id", RunID(ctx), "agent", agent, "action", action}, args...)
	slog.InfoContext(ctx, agent+": "+action, attrs...)
}
