package analyzer

import (
	"strings"
	"testing"
)

func TestStyleCheckerLineTooLong(t *testing.T) {
	checker := NewStyleChecker()

	// 80 characters is a violation, 79 is not
	long := strings.Repeat("x", 76) + " = 1" // 80 chars
	ok := strings.Repeat("x", 75) + " = 1"   // 79 chars

	result := checker.Check(long + "\n")
	if result.ViolationsCount != 1 {
		t.Fatalf("Expected 1 violation for an 80-char line, got %d", result.ViolationsCount)
	}
	if result.Violations[0].Kind != ViolationLineTooLong {
		t.Errorf("Expected line_too_long, got %s", result.Violations[0].Kind)
	}
	if result.Violations[0].Line != 1 {
		t.Errorf("Expected violation on line 1, got %d", result.Violations[0].Line)
	}

	result = checker.Check(ok + "\n")
	if result.ViolationsCount != 0 {
		t.Errorf("Expected no violations for a 79-char line, got %d", result.ViolationsCount)
	}
}

func TestStyleCheckerCommentLinesExemptFromLength(t *testing.T) {
	checker := NewStyleChecker()

	comment := "# " + strings.Repeat("x", 100)
	result := checker.Check(comment + "\n")
	if result.ViolationsCount != 0 {
		t.Errorf("Comment lines are exempt from the length check, got %d violations", result.ViolationsCount)
	}

	// An indented comment is still a comment for the length check
	indented := "    # " + strings.Repeat("x", 100)
	result = checker.Check(indented + "\n")
	for _, v := range result.Violations {
		if v.Kind == ViolationLineTooLong {
			t.Errorf("Indented comment should be exempt from length check: %+v", v)
		}
	}
}

func TestStyleCheckerLineLengthCountsCharacters(t *testing.T) {
	checker := NewStyleChecker()

	// 45 characters of Cyrillic is 90 bytes in UTF-8 but well under the
	// limit.
	short := `s = "` + strings.Repeat("ф", 39) + `"`
	result := checker.Check(short + "\n")
	if result.ViolationsCount != 0 {
		t.Errorf("Expected no violations for a 45-character line, got %d: %+v",
			result.ViolationsCount, result.Violations)
	}

	// 84 Cyrillic characters is over the limit, and the reported length
	// is in characters too.
	long := `s = "` + strings.Repeat("ф", 78) + `"`
	result = checker.Check(long + "\n")
	if result.ViolationsCount != 1 {
		t.Fatalf("Expected 1 violation for an 84-character line, got %d", result.ViolationsCount)
	}
	if !strings.Contains(result.Violations[0].Message, "currently 84") {
		t.Errorf("Expected reported length 84, got %q", result.Violations[0].Message)
	}
}

func TestStyleCheckerTrailingWhitespace(t *testing.T) {
	checker := NewStyleChecker()

	result := checker.Check("x = 1  \ny = 2\n")
	if result.ViolationsCount != 1 {
		t.Fatalf("Expected 1 violation, got %d", result.ViolationsCount)
	}
	if result.Violations[0].Kind != ViolationTrailingWhitespace {
		t.Errorf("Expected trailing_whitespace, got %s", result.Violations[0].Kind)
	}

	// Whitespace-only lines are not flagged
	result = checker.Check("x = 1\n   \ny = 2\n")
	if result.ViolationsCount != 0 {
		t.Errorf("Blank lines must not be flagged for trailing whitespace, got %d", result.ViolationsCount)
	}

	// Unicode whitespace counts as trailing whitespace
	result = checker.Check("x = 1\u00a0\n")
	if result.ViolationsCount != 1 || result.Violations[0].Kind != ViolationTrailingWhitespace {
		t.Errorf("Expected a no-break space to be flagged, got %+v", result.Violations)
	}
}

func TestStyleCheckerIndentation(t *testing.T) {
	checker := NewStyleChecker()

	// 3 spaces is not a multiple of 4
	result := checker.Check("def f():\n   return 1\n")
	if result.ViolationsCount != 1 {
		t.Fatalf("Expected 1 indentation violation, got %d", result.ViolationsCount)
	}
	if result.Violations[0].Kind != ViolationIndentation {
		t.Errorf("Expected indentation, got %s", result.Violations[0].Kind)
	}

	// 4 and 8 spaces pass
	result = checker.Check("def f():\n    if True:\n        return 1\n")
	if result.ViolationsCount != 0 {
		t.Errorf("Expected no violations for 4-space indentation, got %d", result.ViolationsCount)
	}

	// Unindented comment lines are skipped entirely
	result = checker.Check("# comment\nx = 1\n")
	if result.ViolationsCount != 0 {
		t.Errorf("Comment lines are exempt from indentation check, got %d", result.ViolationsCount)
	}
}

func TestStyleCheckerPassOrdering(t *testing.T) {
	checker := NewStyleChecker()

	// One line triggering length and trailing whitespace, another triggering
	// indentation. Violations are grouped by pass, not by line.
	src := strings.Repeat("y", 85) + "  \n" + "   x = 1\n"
	result := checker.Check(src)

	if result.ViolationsCount != 3 {
		t.Fatalf("Expected 3 violations, got %d", result.ViolationsCount)
	}
	kinds := []string{
		result.Violations[0].Kind,
		result.Violations[1].Kind,
		result.Violations[2].Kind,
	}
	expected := []string{ViolationLineTooLong, ViolationTrailingWhitespace, ViolationIndentation}
	for i := range expected {
		if kinds[i] != expected[i] {
			t.Errorf("Violation %d: expected %s, got %s", i, expected[i], kinds[i])
		}
	}
}

func TestStyleScoreEmptyFile(t *testing.T) {
	checker := NewStyleChecker()

	result := checker.Check("")
	if result.Score != 100 {
		t.Errorf("Empty file scores 100, got %.2f", result.Score)
	}
	if result.ViolationsCount != 0 {
		t.Errorf("Empty file has no violations, got %d", result.ViolationsCount)
	}
}

func TestStyleScoreProportional(t *testing.T) {
	checker := NewStyleChecker()

	// 1 violation over 4 lines: 100 - 1/4*100 = 75
	src := "x = 1\ny = 2  \nz = 3\nw = 4\n"
	result := checker.Check(src)
	if result.Score != 75 {
		t.Errorf("Expected score 75, got %.2f", result.Score)
	}
}

func TestStyleCheckerCustomLimits(t *testing.T) {
	checker := NewStyleCheckerWithLimits(10, 2)

	result := checker.Check("x = 1 + 2 + 3\n  y = 2\n")
	var kinds []string
	for _, v := range result.Violations {
		kinds = append(kinds, v.Kind)
	}
	if len(kinds) != 1 || kinds[0] != ViolationLineTooLong {
		t.Errorf("Expected one line_too_long under the custom limit, got %v", kinds)
	}
}
