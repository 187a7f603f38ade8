// Command analyze は企業名を1件分析し、結果をJSONファイルに書き出します。
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"company_analyzer/internal/app/di"
	"company_analyzer/internal/config"
)

var (
	outFile  string
	toStdout bool
)

var rootCmd = &cobra.Command{
	Use:   "analyze <company name>",
	Short: "Research a company and suggest AI/ML use cases",
	Long: `analyze looks up a company on Wikipedia (falling back to Gemini), asks Gemini for
AI/ML and GenAI use cases, and collects dataset, model and GitHub search links for each
use case. The result is written to "<company>.json" unless --out or --stdout is given.`,
	Args:          cobra.MinimumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		company := strings.Join(args, " ")

		config.LoadDotEnv()
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		uc, err := di.NewAnalysisUsecase(cmd.Context(), cfg)
		if err != nil {
			return err
		}

		result, err := uc.Analyze(cmd.Context(), company)
		if err != nil {
			return err
		}

		b, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("encode result: %w", err)
		}
		if toStdout {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), string(b))
			return err
		}

		path := outFile
		if path == "" {
			path = defaultOutputPath(company)
		}
		if err := os.WriteFile(path, append(b, '\n'), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s\n", path)
		return nil
	},
}

// 企業名に含まれるパス区切りは _ に置き換え、カレントディレクトリ直下に書き出す。
var pathSeparatorReplacer = strings.NewReplacer("/", "_", `\`, "_")

func defaultOutputPath(company string) string {
	return pathSeparatorReplacer.Replace(company) + ".json"
}

func init() {
	rootCmd.Flags().StringVarP(&outFile, "out", "o", "", "output file (default: <company>.json)")
	rootCmd.Flags().BoolVar(&toStdout, "stdout", false, "print the result to stdout instead of a file")
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
