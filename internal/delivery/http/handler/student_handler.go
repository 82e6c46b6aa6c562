package handler

import (
	"net/http"

	"student-performance-dashboard/internal/delivery/dto"
	"student-performance-dashboard/internal/domain/entity"
	"student-performance-dashboard/internal/usecase"
	"student-performance-dashboard/pkg/response"
	"student-performance-dashboard/pkg/validator"
)

type StudentHandler struct {
	dashboardUsecase usecase.DashboardUsecase
	validator        *validator.CustomValidator
}

func NewStudentHandler(dashboardUsecase usecase.DashboardUsecase, validator *validator.CustomValidator) *StudentHandler {
	return &StudentHandler{
		dashboardUsecase: dashboardUsecase,
		validator:        validator,
	}
}

func (h *StudentHandler) GetAllStudents(w http.ResponseWriter, r *http.Request) {
	students, err := h.dashboardUsecase.GetView(r.Context(), entity.ViewFullData)
	if err != nil {
		response.InternalServerError(w, "Failed to get students")
		return
	}

	response.Success(w, http.StatusOK, "Students retrieved successfully", students)
}

func (h *StudentHandler) GetTopPerformers(w http.ResponseWriter, r *http.Request) {
	students, err := h.dashboardUsecase.GetView(r.Context(), entity.ViewTopPerformers)
	if err != nil {
		response.InternalServerError(w, "Failed to get top performers")
		return
	}

	response.Success(w, http.StatusOK, "Showing all students with marks above 90", students)
}

func (h *StudentHandler) SearchStudents(w http.ResponseWriter, r *http.Request) {
	req := dto.SearchRequest{Name: r.URL.Query().Get("name")}
	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	students, err := h.dashboardUsecase.SearchStudents(r.Context(), req.Name)
	if err != nil {
		if err == usecase.ErrNameNotFound {
			response.NotFound(w, "No student found with this name")
			return
		}
		response.InternalServerError(w, "Failed to search students")
		return
	}

	response.Success(w, http.StatusOK, "Search completed successfully", students)
}
