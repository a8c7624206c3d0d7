package app

import (
	"os"
	"path/filepath"
	"strings"

	ignore "github.com/sabhiram/go-gitignore"
)

// FileHelper provides file operation utilities
type FileHelper struct {
	respectGitignore bool
}

// NewFileHelper creates a new FileHelper
func NewFileHelper() *FileHelper {
	return &FileHelper{}
}

// NewFileHelperWithGitignore creates a FileHelper that honors .gitignore
// rules when collecting files from directories
func NewFileHelperWithGitignore(respectGitignore bool) *FileHelper {
	return &FileHelper{respectGitignore: respectGitignore}
}

// CollectPythonFiles collects Python files from paths. Files inside a
// directory are collected in lexical walk order, so repeated runs over the
// same tree yield the same sequence.
func (h *FileHelper) CollectPythonFiles(paths []string, recursive bool, includePatterns, excludePatterns []string) ([]string, error) {
	var files []string

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, err
		}

		if !info.IsDir() {
			if h.isPythonFile(path) && !h.isExcluded(path, excludePatterns) {
				files = append(files, path)
			}
			continue
		}

		matcher := h.gitignoreMatcher(path)

		if recursive {
			err = filepath.Walk(path, func(filePath string, info os.FileInfo, err error) error {
				if err != nil {
					return err
				}

				// Skip excluded directories early
				if info.IsDir() {
					dirName := filepath.Base(filePath)
					for _, pattern := range excludePatterns {
						if pattern == dirName {
							return filepath.SkipDir
						}
						if matched, _ := filepath.Match(pattern, dirName); matched {
							return filepath.SkipDir
						}
					}
					return nil
				}

				if matcher != nil {
					if rel, relErr := filepath.Rel(path, filePath); relErr == nil && matcher.MatchesPath(rel) {
						return nil
					}
				}

				if h.isPythonFile(filePath) && h.matchesInclude(filePath, includePatterns) && !h.isExcluded(filePath, excludePatterns) {
					files = append(files, filePath)
				}

				return nil
			})
		} else {
			entries, readErr := os.ReadDir(path)
			if readErr != nil {
				return nil, readErr
			}

			for _, entry := range entries {
				if entry.IsDir() {
					continue
				}
				filePath := filepath.Join(path, entry.Name())
				if matcher != nil && matcher.MatchesPath(entry.Name()) {
					continue
				}
				if h.isPythonFile(filePath) && h.matchesInclude(filePath, includePatterns) && !h.isExcluded(filePath, excludePatterns) {
					files = append(files, filePath)
				}
			}
		}

		if err != nil {
			return nil, err
		}
	}

	return files, nil
}

// IsValidPythonFile checks if a file is a valid Python file
func (h *FileHelper) IsValidPythonFile(path string) bool {
	return h.isPythonFile(path)
}

// FileExists checks if a file exists
func (h *FileHelper) FileExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return !info.IsDir(), nil
}

// ReadFile reads file content
func (h *FileHelper) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// gitignoreMatcher compiles the .gitignore at the collection root, if
// enabled and present
func (h *FileHelper) gitignoreMatcher(root string) *ignore.GitIgnore {
	if !h.respectGitignore {
		return nil
	}
	matcher, err := ignore.CompileIgnoreFile(filepath.Join(root, ".gitignore"))
	if err != nil {
		return nil
	}
	return matcher
}

// isPythonFile checks if a file is Python source based on extension
func (h *FileHelper) isPythonFile(path string) bool {
	return strings.ToLower(filepath.Ext(path)) == ".py"
}

// matchesInclude checks if a path matches any include pattern. An empty
// pattern list includes everything.
func (h *FileHelper) matchesInclude(path string, includePatterns []string) bool {
	if len(includePatterns) == 0 {
		return true
	}
	base := filepath.Base(path)
	for _, pattern := range includePatterns {
		pattern = strings.TrimPrefix(pattern, "**/")
		if matched, _ := filepath.Match(pattern, base); matched {
			return true
		}
	}
	return false
}

// isExcluded checks if a path matches any exclude pattern
func (h *FileHelper) isExcluded(path string, excludePatterns []string) bool {
	for _, pattern := range excludePatterns {
		if matched, _ := filepath.Match(pattern, filepath.Base(path)); matched {
			return true
		}
		// Also check full path matching
		if strings.Contains(path, pattern) {
			return true
		}
	}
	return false
}

// ResolveFilePaths resolves file paths, returning existing files directly
// or collecting files from directories
func ResolveFilePaths(
	fileHelper *FileHelper,
	paths []string,
	recursive bool,
	includePatterns []string,
	excludePatterns []string,
) ([]string, error) {
	// Check if all paths are already files
	allFiles := true
	for _, path := range paths {
		exists, err := fileHelper.FileExists(path)
		if err != nil || !exists {
			allFiles = false
			break
		}
	}

	// If all paths are already files, no need to collect again
	if allFiles {
		return paths, nil
	}

	// Collect files from directories
	return fileHelper.CollectPythonFiles(paths, recursive, includePatterns, excludePatterns)
}
