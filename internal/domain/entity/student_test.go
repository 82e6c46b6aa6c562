package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTierForAverageMarks_Boundaries(t *testing.T) {
	// 70 is closed: exactly 70 is already "good".
	assert.Equal(t, TierNeedsImprovement, TierForAverageMarks(69.99))
	assert.Equal(t, TierGood, TierForAverageMarks(70))
	// 85 is open above: exactly 85 is still "good".
	assert.Equal(t, TierGood, TierForAverageMarks(85))
	assert.Equal(t, TierExcellent, TierForAverageMarks(85.01))
}

func TestFilterCriteria_Matches(t *testing.T) {
	record := StudentRecord{Name: "Alice", Course: "Math", City: "New York", Gender: "Female", Marks: 95, Attendance: 98}

	tests := []struct {
		name     string
		criteria FilterCriteria
		want     bool
	}{
		{
			name:     "all dimensions open",
			criteria: FilterCriteria{Course: MatchAll, Cities: []string{"New York"}, Gender: MatchAll},
			want:     true,
		},
		{
			name:     "course mismatch",
			criteria: FilterCriteria{Course: "Science", Cities: []string{"New York"}, Gender: MatchAll},
			want:     false,
		},
		{
			name:     "empty city set matches nothing",
			criteria: FilterCriteria{Course: MatchAll, Cities: nil, Gender: MatchAll},
			want:     false,
		},
		{
			name:     "marks below minimum",
			criteria: FilterCriteria{Course: MatchAll, Cities: []string{"New York"}, MinMarks: 96, Gender: MatchAll},
			want:     false,
		},
		{
			name:     "marks at minimum pass",
			criteria: FilterCriteria{Course: MatchAll, Cities: []string{"New York"}, MinMarks: 95, Gender: MatchAll},
			want:     true,
		},
		{
			name:     "gender mismatch",
			criteria: FilterCriteria{Course: MatchAll, Cities: []string{"New York"}, Gender: "Male"},
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.criteria.Matches(record))
		})
	}
}

func TestView_IsValid(t *testing.T) {
	assert.True(t, ViewTopPerformers.IsValid())
	assert.True(t, ViewFullData.IsValid())
	assert.False(t, View("leaderboard").IsValid())
}
