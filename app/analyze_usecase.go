package app

import (
	"context"
	"fmt"
	"os"

	"github.com/jimbeezz/pygrade/domain"
)

// AnalyzeUseCase orchestrates the quality analysis workflow
type AnalyzeUseCase struct {
	service      domain.AnalyzeService
	formatter    domain.OutputFormatter
	configLoader domain.ConfigurationLoader
	fileHelper   *FileHelper
}

// NewAnalyzeUseCase creates a new analyze use case
func NewAnalyzeUseCase(
	service domain.AnalyzeService,
	formatter domain.OutputFormatter,
	configLoader domain.ConfigurationLoader,
	fileHelper *FileHelper,
) *AnalyzeUseCase {
	if fileHelper == nil {
		fileHelper = NewFileHelper()
	}
	return &AnalyzeUseCase{
		service:      service,
		formatter:    formatter,
		configLoader: configLoader,
		fileHelper:   fileHelper,
	}
}

// Execute performs the complete analysis workflow: collect files, analyze
// them, and write the formatted report
func (uc *AnalyzeUseCase) Execute(ctx context.Context, req domain.AnalyzeRequest) (*domain.AnalyzeResponse, error) {
	if err := uc.validateRequest(req); err != nil {
		return nil, domain.NewInvalidInputError("invalid request", err)
	}

	files, err := ResolveFilePaths(
		uc.fileHelper,
		req.Paths,
		req.Recursive,
		req.IncludePatterns,
		req.ExcludePatterns,
	)
	if err != nil {
		return nil, domain.NewFileNotFoundError("failed to collect files", err)
	}

	if len(files) == 0 {
		return nil, domain.NewInvalidInputError("no Python files found in the specified paths", nil)
	}

	req.Paths = files

	response, err := uc.service.Analyze(ctx, req)
	if err != nil {
		return nil, domain.NewAnalysisError("analysis failed", err)
	}

	if err := uc.writeOutput(response, req); err != nil {
		return nil, err
	}

	return response, nil
}

// AnalyzeFile analyzes a single file
func (uc *AnalyzeUseCase) AnalyzeFile(ctx context.Context, filePath string, req domain.AnalyzeRequest) (*domain.AnalyzeResponse, error) {
	if !uc.fileHelper.IsValidPythonFile(filePath) {
		return nil, domain.NewInvalidInputError(fmt.Sprintf("not a valid Python file: %s", filePath), nil)
	}

	exists, err := uc.fileHelper.FileExists(filePath)
	if err != nil {
		return nil, domain.NewFileNotFoundError(filePath, err)
	}
	if !exists {
		return nil, domain.NewFileNotFoundError(filePath, fmt.Errorf("file does not exist"))
	}

	req.Paths = []string{filePath}

	return uc.Execute(ctx, req)
}

// writeOutput writes the formatted response to the configured destination.
// An output path takes precedence over the writer.
func (uc *AnalyzeUseCase) writeOutput(response *domain.AnalyzeResponse, req domain.AnalyzeRequest) error {
	if req.OutputPath != "" {
		file, err := os.Create(req.OutputPath)
		if err != nil {
			return domain.NewAnalysisError("failed to create output file", err)
		}
		defer file.Close()

		if err := uc.formatter.Write(response, req.OutputFormat, file); err != nil {
			return domain.NewAnalysisError("failed to write output file", err)
		}
		return nil
	}

	if req.OutputWriter == nil {
		return nil
	}

	if err := uc.formatter.Write(response, req.OutputFormat, req.OutputWriter); err != nil {
		return domain.NewAnalysisError("failed to format output", err)
	}
	return nil
}

// validateRequest validates the analyze request
func (uc *AnalyzeUseCase) validateRequest(req domain.AnalyzeRequest) error {
	if len(req.Paths) == 0 {
		return fmt.Errorf("no input paths specified")
	}

	switch req.OutputFormat {
	case domain.OutputFormatText, domain.OutputFormatJSON, domain.OutputFormatYAML, domain.OutputFormatHTML:
	case "":
		return fmt.Errorf("output format not specified")
	default:
		return fmt.Errorf("unsupported output format: %s", req.OutputFormat)
	}

	return nil
}

// AnalyzeUseCaseBuilder provides a builder pattern for creating AnalyzeUseCase
type AnalyzeUseCaseBuilder struct {
	service      domain.AnalyzeService
	formatter    domain.OutputFormatter
	configLoader domain.ConfigurationLoader
	fileHelper   *FileHelper
}

// NewAnalyzeUseCaseBuilder creates a new builder
func NewAnalyzeUseCaseBuilder() *AnalyzeUseCaseBuilder {
	return &AnalyzeUseCaseBuilder{}
}

// WithService sets the analyze service
func (b *AnalyzeUseCaseBuilder) WithService(service domain.AnalyzeService) *AnalyzeUseCaseBuilder {
	b.service = service
	return b
}

// WithFormatter sets the output formatter
func (b *AnalyzeUseCaseBuilder) WithFormatter(formatter domain.OutputFormatter) *AnalyzeUseCaseBuilder {
	b.formatter = formatter
	return b
}

// WithConfigLoader sets the configuration loader
func (b *AnalyzeUseCaseBuilder) WithConfigLoader(loader domain.ConfigurationLoader) *AnalyzeUseCaseBuilder {
	b.configLoader = loader
	return b
}

// WithFileHelper sets the file helper
func (b *AnalyzeUseCaseBuilder) WithFileHelper(fileHelper *FileHelper) *AnalyzeUseCaseBuilder {
	b.fileHelper = fileHelper
	return b
}

// Build creates the AnalyzeUseCase with the configured dependencies
func (b *AnalyzeUseCaseBuilder) Build() (*AnalyzeUseCase, error) {
	if b.service == nil {
		return nil, fmt.Errorf("analyze service is required")
	}
	if b.formatter == nil {
		return nil, fmt.Errorf("output formatter is required")
	}

	uc := &AnalyzeUseCase{
		service:      b.service,
		formatter:    b.formatter,
		configLoader: b.configLoader,
		fileHelper:   b.fileHelper,
	}

	if uc.fileHelper == nil {
		uc.fileHelper = NewFileHelper()
	}

	return uc, nil
}
