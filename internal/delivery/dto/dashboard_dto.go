package dto

// Request DTOs

type FilterRequest struct {
	Course   string   `json:"course" validate:"omitempty"`
	Cities   []string `json:"cities"`
	MinMarks float64  `json:"min_marks" validate:"gte=0,lte=100"`
	Gender   string   `json:"gender" validate:"omitempty,oneof=All Male Female"`
}

// Response DTOs

type MetricsResponse struct {
	TotalStudents     int     `json:"total_students"`
	AverageMarks      float64 `json:"average_marks"`
	AverageAttendance float64 `json:"average_attendance"`
	PerformanceTier   string  `json:"performance_tier"`
}

// ChartPointResponse is one bar of a ranked chart series.
type ChartPointResponse struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

type HistogramBinResponse struct {
	Low   float64 `json:"low"`
	High  float64 `json:"high"`
	Count int     `json:"count"`
}

type DashboardResponse struct {
	Metrics             MetricsResponse        `json:"metrics"`
	MarksByStudent      []ChartPointResponse   `json:"marks_by_student"`
	AttendanceByStudent []ChartPointResponse   `json:"attendance_by_student"`
	MarksHistogram      []HistogramBinResponse `json:"marks_histogram"`
	Students            []StudentResponse      `json:"students"`
	Total               int                    `json:"total"`
}
