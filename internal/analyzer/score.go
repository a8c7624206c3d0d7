package analyzer

// Weights for the overall score. They sum to 1.0; naming quality and the
// empty-line ratio are reported but deliberately excluded from the sum.
const (
	WeightStyle       = 0.30
	WeightComplexity  = 0.25
	WeightDocstrings  = 0.25
	WeightDuplication = 0.20
)

// ComplexityScore inverts average complexity into a 0-100 score: an average
// of 1 is a perfect 100, each unit above costs 10 points.
func ComplexityScore(averageComplexity float64) float64 {
	score := 100 - (averageComplexity-1)*10
	if score < 0 {
		score = 0
	}
	return score
}

// DuplicationScore inverts the duplication percentage into a 0-100 score:
// each duplicated percent costs 2 points.
func DuplicationScore(duplicationPercentage float64) float64 {
	score := 100 - duplicationPercentage*2
	if score < 0 {
		score = 0
	}
	return score
}

// OverallScore combines the component metrics into the final 0-100 grade
func OverallScore(style *StyleResult, complexity *ComplexityResult, docs *DocstringResult, duplication *DuplicationResult) float64 {
	final := style.Score*WeightStyle +
		ComplexityScore(complexity.Average)*WeightComplexity +
		docs.OverallCoverage*WeightDocstrings +
		DuplicationScore(duplication.DuplicationPercentage)*WeightDuplication

	return round2(final)
}
