package service

import (
	"html/template"
	"io"

	"github.com/jimbeezz/pygrade/domain"
)

// htmlFileSection is one file's rendered section in the HTML report
type htmlFileSection struct {
	Metrics         *domain.FileMetrics
	ScoreClass      string
	Recommendations []string
}

// htmlReportData is the data passed to the HTML template
type htmlReportData struct {
	GeneratedAt   string
	Version       string
	FilesAnalyzed int
	AverageScore  float64
	Files         []htmlFileSection
}

// writeHTML renders the analysis response as a standalone HTML page
func (f *OutputFormatterImpl) writeHTML(response *domain.AnalyzeResponse, writer io.Writer) error {
	data := htmlReportData{
		GeneratedAt:   response.GeneratedAt,
		Version:       response.Version,
		FilesAnalyzed: len(response.Results),
		AverageScore:  response.Summary.AverageScore,
	}

	for i := range response.Results {
		r := &response.Results[i]
		data.Files = append(data.Files, htmlFileSection{
			Metrics:         r,
			ScoreClass:      scoreClass(r.OverallScore),
			Recommendations: GenerateRecommendations(r),
		})
	}

	funcMap := template.FuncMap{
		"firstViolations": firstViolations,
	}

	tmpl := template.Must(template.New("report").Funcs(funcMap).Parse(htmlReportTemplate))
	return tmpl.Execute(writer, data)
}

// scoreClass maps an overall score to a CSS class for coloring
func scoreClass(score float64) string {
	switch {
	case score >= domain.ScoreThresholdGood:
		return "score-good"
	case score >= domain.ScoreThresholdFair:
		return "score-fair"
	default:
		return "score-poor"
	}
}

const htmlReportTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>Code Quality Report</title>
<style>
    body { font-family: Arial, sans-serif; margin: 20px; background: #f5f5f5; }
    .container { max-width: 1200px; margin: 0 auto; background: white; padding: 20px; border-radius: 8px; }
    h1 { color: #333; }
    h2 { color: #555; border-bottom: 2px solid #ddd; padding-bottom: 10px; }
    .file-section { margin: 20px 0; padding: 15px; background: #f9f9f9; border-radius: 5px; }
    .score { font-size: 24px; font-weight: bold; }
    .score-good { color: #28a745; }
    .score-fair { color: #ffc107; }
    .score-poor { color: #dc3545; }
    .error { color: #dc3545; }
    .metric { margin: 10px 0; }
    table { width: 100%; border-collapse: collapse; margin: 10px 0; }
    th, td { padding: 8px; text-align: left; border-bottom: 1px solid #ddd; }
    th { background-color: #4CAF50; color: white; }
</style>
</head>
<body>
<div class="container">
<h1>Code Quality Report</h1>
<p><strong>Generated:</strong> {{.GeneratedAt}}</p>
<p><strong>Version:</strong> {{.Version}}</p>
<p><strong>Files analyzed:</strong> {{.FilesAnalyzed}}</p>
<p><strong>Average overall score:</strong> {{printf "%.2f" .AverageScore}}/100</p>
{{range .Files}}
{{if .Metrics.IsError}}
<div class="file-section">
<h3>{{.Metrics.FilePath}}</h3>
<p class="error">ERROR: {{.Metrics.Error}}</p>
</div>
{{else}}
<div class="file-section">
<h2>{{.Metrics.FilePath}}</h2>
<div class="score {{.ScoreClass}}">Overall Score: {{printf "%.2f" .Metrics.OverallScore}}/100</div>

<div class="metric">
<h3>PEP 8 Compliance: {{printf "%.2f" .Metrics.Style.Score}}/100</h3>
<p>Violations: {{.Metrics.Style.ViolationsCount}}</p>
{{if .Metrics.Style.Violations}}
<table><tr><th>Line</th><th>Issue</th></tr>
{{range firstViolations .Metrics.Style.Violations 10}}<tr><td>{{.Line}}</td><td>{{.Message}}</td></tr>
{{end}}</table>
{{end}}
</div>

<div class="metric">
<h3>Cyclomatic Complexity</h3>
<p>Average: {{printf "%.2f" .Metrics.Complexity.Average}}</p>
<p>Maximum: {{.Metrics.Complexity.Max}}</p>
{{if .Metrics.Complexity.Functions}}
<table><tr><th>Function</th><th>Line</th><th>Complexity</th></tr>
{{range .Metrics.Complexity.Functions}}<tr><td>{{.Name}}</td><td>{{.Line}}</td><td>{{.Complexity}}</td></tr>
{{end}}</table>
{{end}}
</div>

<div class="metric">
<h3>Docstring Coverage: {{printf "%.2f" .Metrics.Docstrings.OverallCoverage}}%</h3>
<p>Functions: {{.Metrics.Docstrings.FunctionsWithDoc}}/{{.Metrics.Docstrings.FunctionsTotal}}</p>
<p>Classes: {{.Metrics.Docstrings.ClassesWithDoc}}/{{.Metrics.Docstrings.ClassesTotal}}</p>
</div>

<div class="metric">
<h3>Code Duplication: {{printf "%.2f" .Metrics.Duplication.DuplicationPercentage}}%</h3>
<p>Duplicate blocks: {{.Metrics.Duplication.DuplicateBlocks}}</p>
</div>

<div class="metric">
<h3>Naming Quality: {{printf "%.2f" .Metrics.Naming.Score}}/100</h3>
<p>Functions checked: {{.Metrics.Naming.FunctionsChecked}}</p>
<p>Classes checked: {{.Metrics.Naming.ClassesChecked}}</p>
{{if .Metrics.Naming.IssuesCount}}<p>Naming issues: {{.Metrics.Naming.IssuesCount}}</p>{{end}}
</div>

{{if .Recommendations}}
<div class="metric">
<h3>Recommendations</h3>
<ul>
{{range .Recommendations}}<li>{{.}}</li>
{{end}}</ul>
</div>
{{end}}
</div>
{{end}}
{{end}}
</div>
</body>
</html>
`
