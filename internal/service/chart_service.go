package service

import (
	"bytes"
	"errors"
	"fmt"

	"student-performance-dashboard/internal/domain/entity"

	chart "github.com/wcharczuk/go-chart/v2"
)

var ErrNoChartData = errors.New("no data to chart")

// ChartService renders dashboard chart series as PNG images.
type ChartService interface {
	RenderMarksChart(ranked []entity.StudentRecord) ([]byte, error)
	RenderAttendanceChart(ranked []entity.StudentRecord) ([]byte, error)
	RenderMarksHistogram(bins []entity.HistogramBin) ([]byte, error)
}

type chartService struct{}

func NewChartService() ChartService {
	return &chartService{}
}

func (s *chartService) RenderMarksChart(ranked []entity.StudentRecord) ([]byte, error) {
	if len(ranked) == 0 {
		return nil, ErrNoChartData
	}

	bars := make([]chart.Value, len(ranked))
	for i, record := range ranked {
		bars[i] = chart.Value{Label: record.Name, Value: record.Marks}
	}

	return renderBarChart("Marks by Student", bars)
}

func (s *chartService) RenderAttendanceChart(ranked []entity.StudentRecord) ([]byte, error) {
	if len(ranked) == 0 {
		return nil, ErrNoChartData
	}

	bars := make([]chart.Value, len(ranked))
	for i, record := range ranked {
		bars[i] = chart.Value{Label: record.Name, Value: record.Attendance}
	}

	return renderBarChart("Attendance (%) by Student", bars)
}

func (s *chartService) RenderMarksHistogram(bins []entity.HistogramBin) ([]byte, error) {
	if len(bins) == 0 {
		return nil, ErrNoChartData
	}

	bars := make([]chart.Value, len(bins))
	for i, bin := range bins {
		bars[i] = chart.Value{
			Label: fmt.Sprintf("%.0f-%.0f", bin.Low, bin.High),
			Value: float64(bin.Count),
		}
	}

	return renderBarChart("Distribution of Student Marks", bars)
}

func renderBarChart(title string, bars []chart.Value) ([]byte, error) {
	graph := chart.BarChart{
		Title:    title,
		Height:   400,
		BarWidth: 40,
		Background: chart.Style{
			Padding: chart.Box{Top: 40},
		},
		Bars: bars,
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("failed to render chart: %w", err)
	}
	return buf.Bytes(), nil
}
