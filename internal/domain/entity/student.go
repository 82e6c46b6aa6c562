package entity

// StudentRecord represents one row of the student dataset.
// Records are immutable once loaded; every derived view works on copies.
type StudentRecord struct {
	Name       string  `json:"name"`
	Course     string  `json:"course"`
	City       string  `json:"city"`
	Gender     string  `json:"gender"`
	Marks      float64 `json:"marks"`
	Attendance float64 `json:"attendance_pct"`
}

// Metrics holds the summary values computed over a filtered subset.
// AvgMarks and AvgAttendance are rounded to 2 decimal places (half to even).
type Metrics struct {
	Count         int     `json:"count"`
	AvgMarks      float64 `json:"avg_marks"`
	AvgAttendance float64 `json:"avg_attendance"`
	Tier          string  `json:"tier"`
}

// Performance tiers derived from average marks.
const (
	TierExcellent        = "excellent"         // avg_marks > 85
	TierGood             = "good"              // 70 <= avg_marks <= 85
	TierNeedsImprovement = "needs_improvement" // avg_marks < 70
)

// TierForAverageMarks maps an average marks value to a performance tier.
// The 70 boundary is closed, the 85 boundary is open above.
func TierForAverageMarks(avgMarks float64) string {
	switch {
	case avgMarks > 85:
		return TierExcellent
	case avgMarks >= 70:
		return TierGood
	default:
		return TierNeedsImprovement
	}
}

// HistogramBin is one equal-width bucket of a marks distribution.
// High is exclusive except for the last bin, which includes the maximum.
type HistogramBin struct {
	Low   float64 `json:"low"`
	High  float64 `json:"high"`
	Count int     `json:"count"`
}
