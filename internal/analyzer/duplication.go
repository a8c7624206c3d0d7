package analyzer

import "strings"

// Duplication detection constants
const (
	// DefaultMinBlockSize is the fixed window size in meaningful lines
	DefaultMinBlockSize = 3

	// MaxReportedDuplicates caps the block list carried in the record
	MaxReportedDuplicates = 10
)

// DuplicateBlock is one pair of matching windows. Occurrences are 1-indexed
// positions into the meaningful-line sequence.
type DuplicateBlock struct {
	Sequence         string
	Length           int
	FirstOccurrence  int
	SecondOccurrence int
}

// DuplicationResult holds the duplication metrics for one file
type DuplicationResult struct {
	DuplicateBlocks       int
	DuplicationPercentage float64
	Duplicates            []DuplicateBlock
}

// DuplicationDetector scans the comment-free line sequence for repeated
// fixed-size windows
type DuplicationDetector struct {
	minBlockSize int
}

// NewDuplicationDetector creates a detector with the default window size
func NewDuplicationDetector() *DuplicationDetector {
	return &DuplicationDetector{minBlockSize: DefaultMinBlockSize}
}

// NewDuplicationDetectorWithBlockSize creates a detector with an explicit
// window size
func NewDuplicationDetectorWithBlockSize(minBlockSize int) *DuplicationDetector {
	if minBlockSize <= 0 {
		minBlockSize = DefaultMinBlockSize
	}
	return &DuplicationDetector{minBlockSize: minBlockSize}
}

// Detect finds repeated windows in the source. For each start index only
// the first later match is recorded. The start range stops one window short
// of the end while the search range includes the final window.
//
// The scan is quadratic in the meaningful-line count, which is fine at
// student-submission sizes.
func (d *DuplicationDetector) Detect(source string) *DuplicationResult {
	lines := MeaningfulLines(source)
	var blocks []DuplicateBlock

	for start := 0; start < len(lines)-d.minBlockSize; start++ {
		blockText := strings.Join(lines[start:start+d.minBlockSize], "\n")

		for search := start + d.minBlockSize; search < len(lines)-d.minBlockSize+1; search++ {
			searchText := strings.Join(lines[search:search+d.minBlockSize], "\n")

			if blockText == searchText {
				blocks = append(blocks, DuplicateBlock{
					Sequence:         blockText,
					Length:           d.minBlockSize,
					FirstOccurrence:  start + 1,
					SecondOccurrence: search + 1,
				})
				break
			}
		}
	}

	percentage := 0.0
	if len(lines) > 0 {
		// Overlapping windows double-count and identical content is
		// not deduped.
		duplicatedLines := len(blocks) * d.minBlockSize
		percentage = round2(float64(duplicatedLines) / float64(len(lines)) * 100)
	}

	reported := blocks
	if len(reported) > MaxReportedDuplicates {
		reported = reported[:MaxReportedDuplicates]
	}

	return &DuplicationResult{
		DuplicateBlocks:       len(blocks),
		DuplicationPercentage: percentage,
		Duplicates:            reported,
	}
}
