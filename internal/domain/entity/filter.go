package entity

// MatchAll is the sentinel value meaning a dimension is not constrained.
const MatchAll = "All"

// FilterCriteria is a domain-level filter for querying student records.
// Used by the filter engine to avoid coupling with delivery DTOs.
// All active dimensions are combined with AND.
type FilterCriteria struct {
	Course   string   // exact match, or MatchAll
	Cities   []string // exact-match set; an EMPTY set matches nothing
	MinMarks float64  // inclusive lower bound, expected [0,100]
	Gender   string   // exact match, or MatchAll
}

// Matches reports whether a record satisfies every active criterion.
func (c FilterCriteria) Matches(r StudentRecord) bool {
	if c.Course != MatchAll && r.Course != c.Course {
		return false
	}
	if !c.hasCity(r.City) {
		return false
	}
	if r.Marks < c.MinMarks {
		return false
	}
	if c.Gender != MatchAll && r.Gender != c.Gender {
		return false
	}
	return true
}

func (c FilterCriteria) hasCity(city string) bool {
	for _, candidate := range c.Cities {
		if candidate == city {
			return true
		}
	}
	return false
}
