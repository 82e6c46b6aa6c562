package usecase

import (
	"errors"
	"math"
	"sort"
	"strings"

	"student-performance-dashboard/internal/domain/entity"
)

var (
	// ErrEmptyFilterResult signals that the active filters match zero records.
	// Metric computation is skipped and the caller surfaces a "no data
	// matches" state instead of KPIs and charts.
	ErrEmptyFilterResult = errors.New("no records match the active filters")

	// ErrNameNotFound signals a non-empty search query that matched nothing.
	// Distinct from an empty query, which simply yields an empty result.
	ErrNameNotFound = errors.New("no student found with this name")

	// ErrUnknownView signals a view request the engine does not know.
	ErrUnknownView = errors.New("unknown view request")
)

// The functions below form the filter and aggregate engine. They are pure:
// no hidden state, deterministic, and they never mutate their inputs.

// ApplyFilters returns every record satisfying all active criteria,
// preserving the relative order of the input. A stable filter, not a sort.
func ApplyFilters(records []entity.StudentRecord, criteria entity.FilterCriteria) []entity.StudentRecord {
	subset := make([]entity.StudentRecord, 0, len(records))
	for _, record := range records {
		if criteria.Matches(record) {
			subset = append(subset, record)
		}
	}
	return subset
}

// ComputeMetrics calculates count and averages over a non-empty subset.
// Averages are rounded to 2 decimal places using round half to even.
// Returns ErrEmptyFilterResult on an empty subset so division by zero is
// never attempted.
func ComputeMetrics(subset []entity.StudentRecord) (entity.Metrics, error) {
	if len(subset) == 0 {
		return entity.Metrics{}, ErrEmptyFilterResult
	}

	var totalMarks, totalAttendance float64
	for _, record := range subset {
		totalMarks += record.Marks
		totalAttendance += record.Attendance
	}

	avgMarks := round2(totalMarks / float64(len(subset)))
	avgAttendance := round2(totalAttendance / float64(len(subset)))

	return entity.Metrics{
		Count:         len(subset),
		AvgMarks:      avgMarks,
		AvgAttendance: avgAttendance,
		Tier:          entity.TierForAverageMarks(avgMarks),
	}, nil
}

// RankByMarks returns the subset sorted by marks descending. The sort is
// stable: ties keep their original input order. The input is left untouched.
func RankByMarks(subset []entity.StudentRecord) []entity.StudentRecord {
	ranked := copyRecords(subset)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Marks > ranked[j].Marks
	})
	return ranked
}

// RankByAttendance returns the subset sorted by attendance descending,
// stable, input untouched.
func RankByAttendance(subset []entity.StudentRecord) []entity.StudentRecord {
	ranked := copyRecords(subset)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Attendance > ranked[j].Attendance
	})
	return ranked
}

// SearchByName performs a case-insensitive substring match on student names
// over the full record set, independent of any active filters. An empty
// query yields an empty result with no error; a non-empty query with no
// match returns ErrNameNotFound.
func SearchByName(records []entity.StudentRecord, query string) ([]entity.StudentRecord, error) {
	if query == "" {
		return nil, nil
	}

	needle := strings.ToLower(query)
	var matches []entity.StudentRecord
	for _, record := range records {
		if strings.Contains(strings.ToLower(record.Name), needle) {
			matches = append(matches, record)
		}
	}

	if len(matches) == 0 {
		return nil, ErrNameNotFound
	}
	return matches, nil
}

// TopPerformers returns the records with marks strictly above 90 from the
// full record set, sorted by marks descending, stable.
func TopPerformers(records []entity.StudentRecord) []entity.StudentRecord {
	var top []entity.StudentRecord
	for _, record := range records {
		if record.Marks > 90 {
			top = append(top, record)
		}
	}
	return RankByMarks(top)
}

// MarksHistogram buckets the subset's marks into the given number of
// equal-width bins over the observed [min, max] range. When every mark is
// identical the whole subset lands in a single bin. The last bin includes
// the maximum.
func MarksHistogram(subset []entity.StudentRecord, bins int) []entity.HistogramBin {
	if len(subset) == 0 || bins <= 0 {
		return nil
	}

	low, high := subset[0].Marks, subset[0].Marks
	for _, record := range subset[1:] {
		if record.Marks < low {
			low = record.Marks
		}
		if record.Marks > high {
			high = record.Marks
		}
	}

	if low == high {
		return []entity.HistogramBin{{Low: low, High: high, Count: len(subset)}}
	}

	width := (high - low) / float64(bins)
	result := make([]entity.HistogramBin, bins)
	for i := range result {
		result[i] = entity.HistogramBin{
			Low:  low + float64(i)*width,
			High: low + float64(i+1)*width,
		}
	}
	// Pin the upper edge to avoid float drift.
	result[bins-1].High = high

	for _, record := range subset {
		idx := int((record.Marks - low) / width)
		if idx >= bins {
			idx = bins - 1
		}
		result[idx].Count++
	}

	return result
}

func copyRecords(records []entity.StudentRecord) []entity.StudentRecord {
	out := make([]entity.StudentRecord, len(records))
	copy(out, records)
	return out
}

func round2(v float64) float64 {
	return math.RoundToEven(v*100) / 100
}
