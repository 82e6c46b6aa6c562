package usecase

import (
	"context"

	"student-performance-dashboard/internal/converter"
	"student-performance-dashboard/internal/delivery/dto"
	"student-performance-dashboard/internal/domain/entity"
	"student-performance-dashboard/internal/service"

	"github.com/sirupsen/logrus"
)

// histogramBins matches the distribution chart of the dashboard.
const histogramBins = 10

type DashboardUsecase interface {
	GetDashboard(ctx context.Context, req *dto.FilterRequest) (*dto.DashboardResponse, error)
	SearchStudents(ctx context.Context, name string) (*dto.StudentListResponse, error)
	GetView(ctx context.Context, view entity.View) (*dto.StudentListResponse, error)
	RenderMarksChart(ctx context.Context, req *dto.FilterRequest) ([]byte, error)
	RenderHistogramChart(ctx context.Context, req *dto.FilterRequest) ([]byte, error)
}

type dashboardUsecase struct {
	log          *logrus.Logger
	chartService service.ChartService

	// records is the dataset loaded once at startup. It is treated as
	// read-only; every derived view works on copies.
	records []entity.StudentRecord
}

func NewDashboardUsecase(log *logrus.Logger, chartService service.ChartService, records []entity.StudentRecord) DashboardUsecase {
	return &dashboardUsecase{
		log:          log,
		chartService: chartService,
		records:      records,
	}
}

// GetDashboard runs one full recomputation pass: filter, metrics, ranked
// series, histogram, and the filtered table.
func (u *dashboardUsecase) GetDashboard(ctx context.Context, req *dto.FilterRequest) (*dto.DashboardResponse, error) {
	criteria := converter.FilterRequestToCriteria(req)

	subset := ApplyFilters(u.records, criteria)
	metrics, err := ComputeMetrics(subset)
	if err != nil {
		u.log.WithFields(logrus.Fields{
			"course":    criteria.Course,
			"cities":    criteria.Cities,
			"min_marks": criteria.MinMarks,
			"gender":    criteria.Gender,
		}).Info("Filters matched no records")
		return nil, err
	}

	list := converter.StudentsToListResponse(subset)

	return &dto.DashboardResponse{
		Metrics:             converter.MetricsToResponse(metrics),
		MarksByStudent:      converter.MarksToChartPoints(RankByMarks(subset)),
		AttendanceByStudent: converter.AttendanceToChartPoints(RankByAttendance(subset)),
		MarksHistogram:      converter.HistogramToResponse(MarksHistogram(subset, histogramBins)),
		Students:            list.Students,
		Total:               list.Total,
	}, nil
}

// SearchStudents matches names against the full dataset, regardless of any
// active filters. An empty name yields an empty list, not an error.
func (u *dashboardUsecase) SearchStudents(ctx context.Context, name string) (*dto.StudentListResponse, error) {
	matches, err := SearchByName(u.records, name)
	if err != nil {
		u.log.Infof("Search for %q matched no students", name)
		return nil, err
	}
	return converter.StudentsToListResponse(matches), nil
}

func (u *dashboardUsecase) GetView(ctx context.Context, view entity.View) (*dto.StudentListResponse, error) {
	switch view {
	case entity.ViewTopPerformers:
		return converter.StudentsToListResponse(TopPerformers(u.records)), nil
	case entity.ViewFullData:
		return converter.StudentsToListResponse(u.records), nil
	default:
		return nil, ErrUnknownView
	}
}

func (u *dashboardUsecase) RenderMarksChart(ctx context.Context, req *dto.FilterRequest) ([]byte, error) {
	subset := ApplyFilters(u.records, converter.FilterRequestToCriteria(req))
	if len(subset) == 0 {
		return nil, ErrEmptyFilterResult
	}
	return u.chartService.RenderMarksChart(RankByMarks(subset))
}

func (u *dashboardUsecase) RenderHistogramChart(ctx context.Context, req *dto.FilterRequest) ([]byte, error) {
	subset := ApplyFilters(u.records, converter.FilterRequestToCriteria(req))
	if len(subset) == 0 {
		return nil, ErrEmptyFilterResult
	}
	return u.chartService.RenderMarksHistogram(MarksHistogram(subset, histogramBins))
}
