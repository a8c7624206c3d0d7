package service

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jimbeezz/pygrade/domain"
	"github.com/jimbeezz/pygrade/internal/analyzer"
	"github.com/jimbeezz/pygrade/internal/config"
	"github.com/jimbeezz/pygrade/internal/parser"
	"github.com/jimbeezz/pygrade/internal/version"
)

// AnalyzeServiceImpl implements the AnalyzeService interface
type AnalyzeServiceImpl struct {
	config   *config.Config
	progress domain.ProgressManager
}

// NewAnalyzeService creates a new analyze service implementation
func NewAnalyzeService(cfg *config.Config) *AnalyzeServiceImpl {
	return &AnalyzeServiceImpl{
		config: cfg,
	}
}

// NewAnalyzeServiceWithProgress creates a new analyze service with progress reporting
func NewAnalyzeServiceWithProgress(cfg *config.Config, pm domain.ProgressManager) *AnalyzeServiceImpl {
	return &AnalyzeServiceImpl{
		config:   cfg,
		progress: pm,
	}
}

// Analyze runs the full metric suite over every file in the request.
// Results keep the request's file order; read and parse failures become
// error-shaped records inline and never abort the batch.
func (s *AnalyzeServiceImpl) Analyze(ctx context.Context, req domain.AnalyzeRequest) (*domain.AnalyzeResponse, error) {
	if len(req.Paths) == 0 {
		return nil, domain.NewInvalidInputError("no files to analyze", nil)
	}

	var task domain.TaskProgress = &NoOpTaskProgress{}
	if s.progress != nil {
		task = s.progress.StartTask("Analyzing files", len(req.Paths))
	}
	defer task.Complete()

	executor := NewParallelExecutorFromConfig(&s.config.Performance)
	results, err := executor.AnalyzeFiles(ctx, req.Paths, s.AnalyzeSingleFile, task)
	if err != nil {
		return nil, domain.NewAnalysisError("batch analysis failed", err)
	}

	return &domain.AnalyzeResponse{
		Results:     results,
		Summary:     buildSummary(results),
		GeneratedAt: time.Now().Format(time.RFC3339),
		Version:     version.Version,
	}, nil
}

// AnalyzeFile analyzes a single Python file
func (s *AnalyzeServiceImpl) AnalyzeFile(ctx context.Context, filePath string, req domain.AnalyzeRequest) (*domain.AnalyzeResponse, error) {
	singleFileReq := req
	singleFileReq.Paths = []string{filePath}

	return s.Analyze(ctx, singleFileReq)
}

// AnalyzeSingleFile produces the complete metrics record for one file.
// The computation is pure apart from the read: identical input yields an
// identical record, and no state survives between calls.
func (s *AnalyzeServiceImpl) AnalyzeSingleFile(filePath string) domain.FileMetrics {
	content, err := os.ReadFile(filePath)
	if err != nil {
		return domain.FileMetrics{
			FilePath: filePath,
			Error:    fmt.Sprintf("failed to read file: %v", err),
		}
	}

	tree, err := parser.ParseSource(filePath, content)
	if err != nil {
		return domain.FileMetrics{
			FilePath: filePath,
			Error:    "failed to parse file (syntax error)",
		}
	}

	return s.computeMetrics(filePath, string(content), tree)
}

// computeMetrics runs the five independent checkers and assembles the
// record. None of them can fail on a valid tree; degenerate inputs yield
// well-formed zero-valued results.
func (s *AnalyzeServiceImpl) computeMetrics(filePath, source string, tree *parser.Node) domain.FileMetrics {
	styleChecker := analyzer.NewStyleCheckerWithLimits(s.config.Style.MaxLineLength, s.config.Style.IndentMultiple)
	dupDetector := analyzer.NewDuplicationDetectorWithBlockSize(s.config.Duplication.MinBlockSize)

	style := styleChecker.Check(source)
	complexity := analyzer.MeasureComplexity(tree)
	docs := analyzer.AnalyzeDocstrings(tree)
	duplication := dupDetector.Detect(source)
	naming := analyzer.CheckNaming(tree)

	functionsCount, classesCount := analyzer.CountDefinitions(tree)

	return domain.FileMetrics{
		FilePath:        filePath,
		Style:           toStyleMetrics(style),
		Complexity:      toComplexityMetrics(complexity),
		Docstrings:      toDocstringMetrics(docs),
		Duplication:     toDuplicationMetrics(duplication),
		Naming:          toNamingMetrics(naming),
		FunctionsCount:  functionsCount,
		ClassesCount:    classesCount,
		LinesOfCode:     analyzer.LinesOfCode(source),
		EmptyLinesRatio: analyzer.EmptyLinesRatio(source),
		OverallScore:    analyzer.OverallScore(style, complexity, docs, duplication),
	}
}

// buildSummary aggregates batch statistics over files with a valid score
func buildSummary(results []domain.FileMetrics) domain.AnalyzeSummary {
	summary := domain.AnalyzeSummary{}

	total := 0.0
	scored := 0
	best := -1.0
	worst := 101.0

	for i := range results {
		r := &results[i]
		if r.IsError() {
			summary.FilesFailed++
			continue
		}
		summary.FilesAnalyzed++
		scored++
		total += r.OverallScore
		if r.OverallScore > best {
			best = r.OverallScore
			summary.BestFile = r.FilePath
		}
		if r.OverallScore < worst {
			worst = r.OverallScore
			summary.WorstFile = r.FilePath
		}
	}

	if scored > 0 {
		summary.AverageScore = roundScore(total / float64(scored))
	}

	return summary
}

// Domain conversions. The analyzer package carries its own result structs
// so the core stays free of transport concerns.

func toStyleMetrics(r *analyzer.StyleResult) *domain.StyleMetrics {
	violations := make([]domain.StyleViolation, 0, len(r.Violations))
	for _, v := range r.Violations {
		violations = append(violations, domain.StyleViolation{
			Line:    v.Line,
			Kind:    domain.ViolationKind(v.Kind),
			Message: v.Message,
		})
	}
	return &domain.StyleMetrics{
		Score:           r.Score,
		Violations:      violations,
		ViolationsCount: r.ViolationsCount,
	}
}

func toComplexityMetrics(r *analyzer.ComplexityResult) *domain.ComplexityMetrics {
	functions := make([]domain.FunctionComplexity, 0, len(r.Functions))
	for _, fc := range r.Functions {
		functions = append(functions, domain.FunctionComplexity{
			Name:       fc.Name,
			Complexity: fc.Complexity,
			Line:       fc.Line,
		})
	}
	return &domain.ComplexityMetrics{
		Average:   r.Average,
		Max:       r.Max,
		Functions: functions,
	}
}

func toDocstringMetrics(r *analyzer.DocstringResult) *domain.DocstringMetrics {
	return &domain.DocstringMetrics{
		FunctionsCoverage: r.FunctionsCoverage,
		ClassesCoverage:   r.ClassesCoverage,
		OverallCoverage:   r.OverallCoverage,
		FunctionsWithDoc:  r.FunctionsWithDoc,
		FunctionsTotal:    r.FunctionsTotal,
		ClassesWithDoc:    r.ClassesWithDoc,
		ClassesTotal:      r.ClassesTotal,
	}
}

func toDuplicationMetrics(r *analyzer.DuplicationResult) *domain.DuplicationMetrics {
	duplicates := make([]domain.DuplicateBlock, 0, len(r.Duplicates))
	for _, d := range r.Duplicates {
		duplicates = append(duplicates, domain.DuplicateBlock{
			Sequence:         d.Sequence,
			Length:           d.Length,
			FirstOccurrence:  d.FirstOccurrence,
			SecondOccurrence: d.SecondOccurrence,
		})
	}
	return &domain.DuplicationMetrics{
		DuplicateBlocks:       r.DuplicateBlocks,
		DuplicationPercentage: r.DuplicationPercentage,
		Duplicates:            duplicates,
	}
}

func toNamingMetrics(r *analyzer.NamingResult) *domain.NamingMetrics {
	issues := make([]domain.NamingIssue, 0, len(r.Issues))
	for _, issue := range r.Issues {
		issues = append(issues, domain.NamingIssue{
			Kind:    domain.NamingIssueKind(issue.Kind),
			Name:    issue.Name,
			Line:    issue.Line,
			Message: issue.Message,
		})
	}
	return &domain.NamingMetrics{
		Score:            r.Score,
		IssuesCount:      r.IssuesCount,
		Issues:           issues,
		FunctionsChecked: r.FunctionsChecked,
		ClassesChecked:   r.ClassesChecked,
	}
}
