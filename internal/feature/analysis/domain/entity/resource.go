package entity

// Resources はユースケース1件に紐づく外部検索リンクです。
type Resources struct {
	Datasets       []string `json:"datasets"`
	Models         []string `json:"models"`
	GithubProjects []string `json:"github_projects"`
}

// ResourceBundle はユースケースのタイトルをキーとしたリソース集です。
// タイトルは一意とは限らず、後から追加された同名のエントリが先のものを上書きします。
type ResourceBundle map[string]Resources

// AnalysisResult は1回の分析の最終出力です。JSONとしてそのまま返却されます。
type AnalysisResult struct {
	CompanyInfo    CompanyInfo    `json:"company_info"`
	AIUseCases     UseCaseList    `json:"ai_use_cases"`
	ResourceAssets ResourceBundle `json:"resource_assets"`
}
