package output

// AnalysisSummary holds aggregate counts for one analysis run.
type AnalysisSummary struct {
	FilesAnalyzed int `json:"files_analyzed"`
	FilesSkipped  int `json:"files_skipped,omitempty"`
	TotalIssues   int `json:"total_issues"`
	Errors        int `json:"errors"`
	Warnings      int `json:"warnings"`
	Info          int `json:"info"`
	Hints         int `json:"hints"`
}

// AnalysisFinding is the machine-readable form of one finding.
type AnalysisFinding struct {
	RuleID     string `json:"rule_id"`
	Severity   string `json:"severity"`
	Message    string `json:"message"`
	Line       int    `json:"line"`
	Column     int    `json:"column"`
	Suggestion string `json:"suggestion,omitempty"`
	DocsURL    string `json:"docs_url,omitempty"`
}

// AnalysisFileResult groups findings per file.
type AnalysisFileResult struct {
	Path        string            `json:"path"`
	ParseFailed bool              `json:"parse_failed,omitempty"`
	Findings    []AnalysisFinding `json:"findings"`
}

// AnalysisOutput is the JSON document for the analyze command.
type AnalysisOutput struct {
	RunID   string               `json:"run_id"`
	Summary AnalysisSummary      `json:"summary"`
	Files   []AnalysisFileResult `json:"files"`
	Skipped []string             `json:"skipped,omitempty"`
}
