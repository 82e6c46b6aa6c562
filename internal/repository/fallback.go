package repository

import (
	"student-performance-dashboard/internal/domain/entity"
)

// FallbackDataset returns the fixed demo dataset substituted when the real
// source is unavailable. The content must stay byte-identical to the
// reference data so derived metrics remain deterministic.
func FallbackDataset() []entity.StudentRecord {
	return []entity.StudentRecord{
		{Name: "Alice", Course: "Math", City: "New York", Gender: "Female", Marks: 95, Attendance: 98},
		{Name: "Bob", Course: "Science", City: "Los Angeles", Gender: "Male", Marks: 82, Attendance: 85},
		{Name: "Charlie", Course: "Math", City: "New York", Gender: "Male", Marks: 78, Attendance: 76},
		{Name: "David", Course: "English", City: "Chicago", Gender: "Male", Marks: 91, Attendance: 92},
		{Name: "Eve", Course: "Science", City: "Los Angeles", Gender: "Female", Marks: 65, Attendance: 60},
		{Name: "Fiona", Course: "Math", City: "New York", Gender: "Female", Marks: 88, Attendance: 90},
		{Name: "George", Course: "English", City: "Chicago", Gender: "Male", Marks: 72, Attendance: 75},
		{Name: "Hannah", Course: "Science", City: "Los Angeles", Gender: "Female", Marks: 98, Attendance: 99},
		{Name: "Ian", Course: "Math", City: "New York", Gender: "Male", Marks: 55, Attendance: 50},
		{Name: "Jasmine", Course: "English", City: "Chicago", Gender: "Female", Marks: 85, Attendance: 88},
	}
}
