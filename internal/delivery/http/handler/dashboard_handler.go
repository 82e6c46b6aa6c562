package handler

import (
	"net/http"
	"strconv"

	"student-performance-dashboard/internal/delivery/dto"
	"student-performance-dashboard/internal/usecase"
	"student-performance-dashboard/pkg/response"
	"student-performance-dashboard/pkg/validator"
)

type DashboardHandler struct {
	dashboardUsecase usecase.DashboardUsecase
	validator        *validator.CustomValidator
}

func NewDashboardHandler(dashboardUsecase usecase.DashboardUsecase, validator *validator.CustomValidator) *DashboardHandler {
	return &DashboardHandler{
		dashboardUsecase: dashboardUsecase,
		validator:        validator,
	}
}

func (h *DashboardHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	req, ok := h.parseFilterRequest(w, r)
	if !ok {
		return
	}

	dashboard, err := h.dashboardUsecase.GetDashboard(r.Context(), req)
	if err != nil {
		if err == usecase.ErrEmptyFilterResult {
			response.Success(w, http.StatusOK, "No data matches the selected filters", nil)
			return
		}
		response.InternalServerError(w, "Failed to build dashboard")
		return
	}

	response.Success(w, http.StatusOK, "Dashboard computed successfully", dashboard)
}

func (h *DashboardHandler) GetMarksChart(w http.ResponseWriter, r *http.Request) {
	req, ok := h.parseFilterRequest(w, r)
	if !ok {
		return
	}

	png, err := h.dashboardUsecase.RenderMarksChart(r.Context(), req)
	if err != nil {
		if err == usecase.ErrEmptyFilterResult {
			response.Success(w, http.StatusOK, "No data matches the selected filters", nil)
			return
		}
		response.InternalServerError(w, "Failed to render chart")
		return
	}

	writePNG(w, png)
}

func (h *DashboardHandler) GetHistogramChart(w http.ResponseWriter, r *http.Request) {
	req, ok := h.parseFilterRequest(w, r)
	if !ok {
		return
	}

	png, err := h.dashboardUsecase.RenderHistogramChart(r.Context(), req)
	if err != nil {
		if err == usecase.ErrEmptyFilterResult {
			response.Success(w, http.StatusOK, "No data matches the selected filters", nil)
			return
		}
		response.InternalServerError(w, "Failed to render chart")
		return
	}

	writePNG(w, png)
}

// parseFilterRequest builds a FilterRequest from query parameters:
// course, cities (repeated), min_marks, gender. Writes the error response
// itself and returns ok=false when the input is invalid.
func (h *DashboardHandler) parseFilterRequest(w http.ResponseWriter, r *http.Request) (*dto.FilterRequest, bool) {
	query := r.URL.Query()

	req := &dto.FilterRequest{
		Course: query.Get("course"),
		Cities: query["cities"],
		Gender: query.Get("gender"),
	}

	if raw := query.Get("min_marks"); raw != "" {
		minMarks, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			response.Error(w, http.StatusBadRequest, "Invalid min_marks value", nil)
			return nil, false
		}
		req.MinMarks = minMarks
	}

	if err := h.validator.Validate(req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return nil, false
	}

	return req, true
}

func writePNG(w http.ResponseWriter, png []byte) {
	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}
