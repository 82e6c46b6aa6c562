package entity

// View identifies a named dataset view requested by the user.
// Views always operate on the full record set, independent of active filters.
type View string

const (
	// ViewTopPerformers lists students with marks strictly above 90,
	// sorted by marks descending.
	ViewTopPerformers View = "top_performers"
	// ViewFullData lists the entire dataset in load order.
	ViewFullData View = "full_data"
)

// IsValid reports whether the view is a known one.
func (v View) IsValid() bool {
	switch v {
	case ViewTopPerformers, ViewFullData:
		return true
	default:
		return false
	}
}
