package constants

// ConfigFileName is the default config file name
const ConfigFileName = ".pygrade.yaml"

// Recommendation threshold constants
const (
	StyleRecommendationScore     = 80
	AvgComplexityRecommendation  = 5
	MaxComplexityRecommendation  = 10
	CoverageRecommendationPct    = 80
	DuplicationRecommendationPct = 10
	NamingRecommendationScore    = 90
	EmptyLinesHighPct            = 20
	EmptyLinesLowPct             = 5
	EmptyLinesMinFileSize        = 50
)
