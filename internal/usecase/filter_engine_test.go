package usecase

import (
	"testing"

	"student-performance-dashboard/internal/domain/entity"
	"student-performance-dashboard/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func demoRecords() []entity.StudentRecord {
	return repository.FallbackDataset()
}

func names(records []entity.StudentRecord) []string {
	out := make([]string, len(records))
	for i, record := range records {
		out[i] = record.Name
	}
	return out
}

func allCities() []string {
	return []string{"New York", "Los Angeles", "Chicago"}
}

func TestApplyFilters_CourseAndCity(t *testing.T) {
	subset := ApplyFilters(demoRecords(), entity.FilterCriteria{
		Course:   "Math",
		Cities:   []string{"New York"},
		MinMarks: 0,
		Gender:   entity.MatchAll,
	})

	// Stable filter: relative order of the source is preserved.
	assert.Equal(t, []string{"Alice", "Charlie", "Fiona", "Ian"}, names(subset))
}

func TestApplyFilters_MinMarksInclusive(t *testing.T) {
	subset := ApplyFilters(demoRecords(), entity.FilterCriteria{
		Course:   entity.MatchAll,
		Cities:   allCities(),
		MinMarks: 90,
		Gender:   entity.MatchAll,
	})

	assert.Equal(t, []string{"Alice", "David", "Hannah"}, names(subset))

	// The bound is inclusive: a record at exactly min_marks passes.
	subset = ApplyFilters(demoRecords(), entity.FilterCriteria{
		Course:   entity.MatchAll,
		Cities:   allCities(),
		MinMarks: 91,
		Gender:   entity.MatchAll,
	})
	assert.Equal(t, []string{"Alice", "David", "Hannah"}, names(subset))
}

func TestApplyFilters_EmptyCitySelectionMatchesNothing(t *testing.T) {
	subset := ApplyFilters(demoRecords(), entity.FilterCriteria{
		Course:   entity.MatchAll,
		Cities:   nil,
		MinMarks: 0,
		Gender:   entity.MatchAll,
	})

	assert.Empty(t, subset)
}

func TestApplyFilters_Gender(t *testing.T) {
	subset := ApplyFilters(demoRecords(), entity.FilterCriteria{
		Course:   "Science",
		Cities:   allCities(),
		MinMarks: 0,
		Gender:   "Female",
	})

	assert.Equal(t, []string{"Eve", "Hannah"}, names(subset))
}

func TestApplyFilters_Idempotent(t *testing.T) {
	records := demoRecords()
	criteria := entity.FilterCriteria{
		Course:   "English",
		Cities:   allCities(),
		MinMarks: 70,
		Gender:   entity.MatchAll,
	}

	first := ApplyFilters(records, criteria)
	second := ApplyFilters(records, criteria)

	assert.Equal(t, first, second)
	// The source record set is never mutated.
	assert.Equal(t, demoRecords(), records)
}

func TestApplyFilters_ReturnsSubsetOfInput(t *testing.T) {
	records := demoRecords()
	subset := ApplyFilters(records, entity.FilterCriteria{
		Course:   entity.MatchAll,
		Cities:   allCities(),
		MinMarks: 60,
		Gender:   entity.MatchAll,
	})

	require.LessOrEqual(t, len(subset), len(records))
	for _, record := range subset {
		assert.Contains(t, records, record)
	}
}

func TestComputeMetrics_MathNewYork(t *testing.T) {
	subset := ApplyFilters(demoRecords(), entity.FilterCriteria{
		Course:   "Math",
		Cities:   []string{"New York"},
		MinMarks: 0,
		Gender:   entity.MatchAll,
	})

	metrics, err := ComputeMetrics(subset)
	require.NoError(t, err)

	assert.Equal(t, 4, metrics.Count)
	assert.Equal(t, 79.0, metrics.AvgMarks)      // (95+78+88+55)/4
	assert.Equal(t, 78.5, metrics.AvgAttendance) // (98+76+90+50)/4
	assert.Equal(t, entity.TierGood, metrics.Tier)
}

func TestComputeMetrics_HighAchievers(t *testing.T) {
	subset := ApplyFilters(demoRecords(), entity.FilterCriteria{
		Course:   entity.MatchAll,
		Cities:   allCities(),
		MinMarks: 90,
		Gender:   entity.MatchAll,
	})

	metrics, err := ComputeMetrics(subset)
	require.NoError(t, err)

	assert.Equal(t, 3, metrics.Count)
	assert.Equal(t, 94.67, metrics.AvgMarks) // (95+91+98)/3 = 94.666...
	assert.Equal(t, 96.33, metrics.AvgAttendance)
	assert.Equal(t, entity.TierExcellent, metrics.Tier)
}

func TestComputeMetrics_EmptySubset(t *testing.T) {
	_, err := ComputeMetrics(nil)
	assert.ErrorIs(t, err, ErrEmptyFilterResult)
}

func TestComputeMetrics_RoundsHalfToEven(t *testing.T) {
	// avg = 76.125, the 5 rounds to the even neighbor: 76.12
	down := []entity.StudentRecord{
		{Name: "A", Marks: 76.25, Attendance: 76.25},
		{Name: "B", Marks: 76.0, Attendance: 76.0},
	}
	metrics, err := ComputeMetrics(down)
	require.NoError(t, err)
	assert.Equal(t, 76.12, metrics.AvgMarks)

	// avg = 76.375, the 5 rounds up to the even neighbor: 76.38
	up := []entity.StudentRecord{
		{Name: "A", Marks: 76.25, Attendance: 76.25},
		{Name: "B", Marks: 76.5, Attendance: 76.5},
	}
	metrics, err = ComputeMetrics(up)
	require.NoError(t, err)
	assert.Equal(t, 76.38, metrics.AvgMarks)
}

func TestComputeMetrics_AveragesStayInRange(t *testing.T) {
	metrics, err := ComputeMetrics(demoRecords())
	require.NoError(t, err)

	assert.GreaterOrEqual(t, metrics.AvgMarks, 0.0)
	assert.LessOrEqual(t, metrics.AvgMarks, 100.0)
	assert.GreaterOrEqual(t, metrics.AvgAttendance, 0.0)
	assert.LessOrEqual(t, metrics.AvgAttendance, 100.0)
}

func TestRankByMarks(t *testing.T) {
	records := demoRecords()
	ranked := RankByMarks(records)

	assert.Equal(t,
		[]string{"Hannah", "Alice", "David", "Fiona", "Jasmine", "Bob", "Charlie", "George", "Eve", "Ian"},
		names(ranked))
	// Input left untouched.
	assert.Equal(t, demoRecords(), records)
}

func TestRankByAttendance(t *testing.T) {
	ranked := RankByAttendance(demoRecords())

	assert.Equal(t,
		[]string{"Hannah", "Alice", "David", "Fiona", "Jasmine", "Bob", "Charlie", "George", "Eve", "Ian"},
		names(ranked))
}

func TestRankByMarks_StableOnTies(t *testing.T) {
	records := []entity.StudentRecord{
		{Name: "First", Marks: 80},
		{Name: "Higher", Marks: 90},
		{Name: "Second", Marks: 80},
		{Name: "Third", Marks: 80},
	}

	ranked := RankByMarks(records)

	// Ties keep their original input order.
	assert.Equal(t, []string{"Higher", "First", "Second", "Third"}, names(ranked))
}

func TestSearchByName_CaseInsensitiveSubstring(t *testing.T) {
	matches, err := SearchByName(demoRecords(), "an")
	require.NoError(t, err)
	assert.Equal(t, []string{"Hannah", "Ian"}, names(matches))

	matches, err = SearchByName(demoRecords(), "AN")
	require.NoError(t, err)
	assert.Equal(t, []string{"Hannah", "Ian"}, names(matches))
}

func TestSearchByName_EmptyQuery(t *testing.T) {
	matches, err := SearchByName(demoRecords(), "")

	// Empty query is an empty result, not an error and not the full set.
	assert.NoError(t, err)
	assert.Empty(t, matches)
}

func TestSearchByName_NoMatch(t *testing.T) {
	_, err := SearchByName(demoRecords(), "Zorro")
	assert.ErrorIs(t, err, ErrNameNotFound)
}

func TestTopPerformers(t *testing.T) {
	top := TopPerformers(demoRecords())
	assert.Equal(t, []string{"Hannah", "Alice", "David"}, names(top))
}

func TestTopPerformers_StrictBoundary(t *testing.T) {
	records := []entity.StudentRecord{
		{Name: "AtNinety", Marks: 90},
		{Name: "JustAbove", Marks: 90.5},
	}

	top := TopPerformers(records)

	// marks == 90 is never a top performer.
	assert.Equal(t, []string{"JustAbove"}, names(top))
}

func TestMarksHistogram(t *testing.T) {
	bins := MarksHistogram(demoRecords(), 10)
	require.Len(t, bins, 10)

	assert.Equal(t, 55.0, bins[0].Low)
	assert.Equal(t, 98.0, bins[9].High)

	total := 0
	for _, bin := range bins {
		total += bin.Count
	}
	assert.Equal(t, 10, total)

	// 55 falls in the first bin, 95 and 98 in the last.
	assert.Equal(t, 1, bins[0].Count)
	assert.Equal(t, 2, bins[9].Count)
}

func TestMarksHistogram_DegenerateRange(t *testing.T) {
	records := []entity.StudentRecord{
		{Name: "A", Marks: 80},
		{Name: "B", Marks: 80},
	}

	bins := MarksHistogram(records, 10)

	require.Len(t, bins, 1)
	assert.Equal(t, entity.HistogramBin{Low: 80, High: 80, Count: 2}, bins[0])
}

func TestMarksHistogram_EmptySubset(t *testing.T) {
	assert.Nil(t, MarksHistogram(nil, 10))
}
