package analyzer

import "testing"

func TestComplexityScore(t *testing.T) {
	tests := []struct {
		average  float64
		expected float64
	}{
		{1.0, 100},
		{2.0, 90},
		{5.5, 55},
		{11.0, 0},
		{25.0, 0},
		{0.0, 110}, // below 1 is never produced but the formula is monotone
	}

	for _, tt := range tests {
		if got := ComplexityScore(tt.average); got != tt.expected {
			t.Errorf("ComplexityScore(%.1f) = %.2f, expected %.2f", tt.average, got, tt.expected)
		}
	}
}

func TestDuplicationScore(t *testing.T) {
	tests := []struct {
		percentage float64
		expected   float64
	}{
		{0, 100},
		{10, 80},
		{25, 50},
		{50, 0},
		{80, 0},
	}

	for _, tt := range tests {
		if got := DuplicationScore(tt.percentage); got != tt.expected {
			t.Errorf("DuplicationScore(%.1f) = %.2f, expected %.2f", tt.percentage, got, tt.expected)
		}
	}
}

func TestOverallScorePerfect(t *testing.T) {
	score := OverallScore(
		&StyleResult{Score: 100},
		&ComplexityResult{Average: 1.0},
		&DocstringResult{OverallCoverage: 100},
		&DuplicationResult{DuplicationPercentage: 0},
	)

	if score != 100 {
		t.Errorf("Expected 100, got %.2f", score)
	}
}

func TestOverallScoreWeighted(t *testing.T) {
	// 80*0.30 + ComplexityScore(3)*0.25 + 50*0.25 + DuplicationScore(10)*0.20
	// = 24 + 20 + 12.5 + 16 = 72.5
	score := OverallScore(
		&StyleResult{Score: 80},
		&ComplexityResult{Average: 3.0},
		&DocstringResult{OverallCoverage: 50},
		&DuplicationResult{DuplicationPercentage: 10},
	)

	if score != 72.5 {
		t.Errorf("Expected 72.5, got %.2f", score)
	}
}

func TestOverallScoreRounded(t *testing.T) {
	// 85.33*0.30 + 90*0.25 + 66.67*0.25 + 95*0.20 = 83.7665 -> 83.77
	score := OverallScore(
		&StyleResult{Score: 85.33},
		&ComplexityResult{Average: 2.0},
		&DocstringResult{OverallCoverage: 66.67},
		&DuplicationResult{DuplicationPercentage: 2.5},
	)

	if score != 83.77 {
		t.Errorf("Expected 83.77, got %.2f", score)
	}
}

func TestOverallScoreFloor(t *testing.T) {
	score := OverallScore(
		&StyleResult{Score: 0},
		&ComplexityResult{Average: 20.0},
		&DocstringResult{OverallCoverage: 0},
		&DuplicationResult{DuplicationPercentage: 90},
	)

	if score != 0 {
		t.Errorf("Expected 0, got %.2f", score)
	}
}

func TestCountDefinitions(t *testing.T) {
	tree := mustParse(t, `class A:
    def method(self):
        pass

def top():
    pass

async def skipped():
    pass
`)

	functions, classes := CountDefinitions(tree)

	if functions != 2 {
		t.Errorf("Expected 2 functions, got %d", functions)
	}
	if classes != 1 {
		t.Errorf("Expected 1 class, got %d", classes)
	}
}
