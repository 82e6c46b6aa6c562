package http

import (
	"net/http"

	"student-performance-dashboard/internal/delivery/http/handler"
	"student-performance-dashboard/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router           *mux.Router
	dashboardHandler *handler.DashboardHandler
	studentHandler   *handler.StudentHandler
	loggerMiddleware *middleware.RequestLoggerMiddleware
	corsMiddleware   *middleware.CORSMiddleware
}

func NewRouter(
	dashboardHandler *handler.DashboardHandler,
	studentHandler *handler.StudentHandler,
	loggerMiddleware *middleware.RequestLoggerMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:           mux.NewRouter(),
		dashboardHandler: dashboardHandler,
		studentHandler:   studentHandler,
		loggerMiddleware: loggerMiddleware,
		corsMiddleware:   corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Dashboard (filterable KPIs, chart series, histogram, table)
	dashboard := api.PathPrefix("/dashboard").Subrouter()
	dashboard.HandleFunc("", r.dashboardHandler.GetDashboard).Methods(http.MethodGet)
	dashboard.HandleFunc("/charts/marks.png", r.dashboardHandler.GetMarksChart).Methods(http.MethodGet)
	dashboard.HandleFunc("/charts/histogram.png", r.dashboardHandler.GetHistogramChart).Methods(http.MethodGet)

	// Student views (always over the full dataset)
	api.HandleFunc("/students", r.studentHandler.GetAllStudents).Methods(http.MethodGet)
	api.HandleFunc("/students/top", r.studentHandler.GetTopPerformers).Methods(http.MethodGet)
	api.HandleFunc("/students/search", r.studentHandler.SearchStudents).Methods(http.MethodGet)

	// Add middleware
	r.router.Use(r.corsMiddleware.Handle)
	r.router.Use(r.loggerMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
