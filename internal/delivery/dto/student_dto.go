package dto

// Request DTOs

type SearchRequest struct {
	Name string `json:"name" validate:"omitempty,max=100"`
}

// Response DTOs

type StudentResponse struct {
	Name       string  `json:"name"`
	Course     string  `json:"course"`
	City       string  `json:"city"`
	Gender     string  `json:"gender"`
	Marks      float64 `json:"marks"`
	Attendance float64 `json:"attendance_pct"`
}

type StudentListResponse struct {
	Students []StudentResponse `json:"students"`
	Total    int               `json:"total"`
}
