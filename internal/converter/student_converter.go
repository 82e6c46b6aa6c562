package converter

import (
	"student-performance-dashboard/internal/delivery/dto"
	"student-performance-dashboard/internal/domain/entity"
)

// StudentToResponse converts a StudentRecord entity to a StudentResponse DTO
func StudentToResponse(record entity.StudentRecord) dto.StudentResponse {
	return dto.StudentResponse{
		Name:       record.Name,
		Course:     record.Course,
		City:       record.City,
		Gender:     record.Gender,
		Marks:      record.Marks,
		Attendance: record.Attendance,
	}
}

// StudentsToListResponse converts a record slice to a StudentListResponse DTO
func StudentsToListResponse(records []entity.StudentRecord) *dto.StudentListResponse {
	students := make([]dto.StudentResponse, len(records))
	for i, record := range records {
		students[i] = StudentToResponse(record)
	}
	return &dto.StudentListResponse{
		Students: students,
		Total:    len(students),
	}
}

// MetricsToResponse converts computed Metrics to a MetricsResponse DTO
func MetricsToResponse(metrics entity.Metrics) dto.MetricsResponse {
	return dto.MetricsResponse{
		TotalStudents:     metrics.Count,
		AverageMarks:      metrics.AvgMarks,
		AverageAttendance: metrics.AvgAttendance,
		PerformanceTier:   metrics.Tier,
	}
}

// MarksToChartPoints builds a ranked chart series keyed on marks
func MarksToChartPoints(ranked []entity.StudentRecord) []dto.ChartPointResponse {
	points := make([]dto.ChartPointResponse, len(ranked))
	for i, record := range ranked {
		points[i] = dto.ChartPointResponse{Name: record.Name, Value: record.Marks}
	}
	return points
}

// AttendanceToChartPoints builds a ranked chart series keyed on attendance
func AttendanceToChartPoints(ranked []entity.StudentRecord) []dto.ChartPointResponse {
	points := make([]dto.ChartPointResponse, len(ranked))
	for i, record := range ranked {
		points[i] = dto.ChartPointResponse{Name: record.Name, Value: record.Attendance}
	}
	return points
}

// HistogramToResponse converts histogram bins to their DTO form
func HistogramToResponse(bins []entity.HistogramBin) []dto.HistogramBinResponse {
	out := make([]dto.HistogramBinResponse, len(bins))
	for i, bin := range bins {
		out[i] = dto.HistogramBinResponse{Low: bin.Low, High: bin.High, Count: bin.Count}
	}
	return out
}

// FilterRequestToCriteria maps a delivery-layer filter request onto domain
// criteria. Blank course/gender mean "match all", mirroring the default
// selection of the dashboard controls. An absent city selection stays empty
// and therefore matches nothing.
func FilterRequestToCriteria(req *dto.FilterRequest) entity.FilterCriteria {
	course := req.Course
	if course == "" {
		course = entity.MatchAll
	}
	gender := req.Gender
	if gender == "" {
		gender = entity.MatchAll
	}
	return entity.FilterCriteria{
		Course:   course,
		Cities:   req.Cities,
		MinMarks: req.MinMarks,
		Gender:   gender,
	}
}
