package service

import (
	"testing"

	"student-performance-dashboard/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngSignature = []byte{0x89, 'P', 'N', 'G'}

func TestRenderMarksChart(t *testing.T) {
	png, err := NewChartService().RenderMarksChart([]entity.StudentRecord{
		{Name: "Alice", Marks: 95},
		{Name: "Bob", Marks: 82},
	})
	require.NoError(t, err)

	require.Greater(t, len(png), 8)
	assert.Equal(t, pngSignature, png[:4])
}

func TestRenderAttendanceChart(t *testing.T) {
	png, err := NewChartService().RenderAttendanceChart([]entity.StudentRecord{
		{Name: "Alice", Attendance: 98},
	})
	require.NoError(t, err)
	assert.Equal(t, pngSignature, png[:4])
}

func TestRenderMarksHistogram(t *testing.T) {
	png, err := NewChartService().RenderMarksHistogram([]entity.HistogramBin{
		{Low: 50, High: 75, Count: 3},
		{Low: 75, High: 100, Count: 7},
	})
	require.NoError(t, err)
	assert.Equal(t, pngSignature, png[:4])
}

func TestRender_NoData(t *testing.T) {
	s := NewChartService()

	_, err := s.RenderMarksChart(nil)
	assert.ErrorIs(t, err, ErrNoChartData)

	_, err = s.RenderMarksHistogram(nil)
	assert.ErrorIs(t, err, ErrNoChartData)
}
