package http

import (
	"net/http"

	"go-counseling-care/internal/delivery/http/handler"
	"go-counseling-care/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router           *mux.Router
	authHandler      *handler.AuthHandler
	patientHandler   *handler.PatientHandler
	counselorHandler *handler.CounselorHandler
	adminHandler     *handler.AdminHandler
	profileHandler   *handler.ProfileHandler
	authMiddleware   *middleware.AuthMiddleware
	corsMiddleware   *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	patientHandler *handler.PatientHandler,
	counselorHandler *handler.CounselorHandler,
	adminHandler *handler.AdminHandler,
	profileHandler *handler.ProfileHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:           mux.NewRouter(),
		authHandler:      authHandler,
		patientHandler:   patientHandler,
		counselorHandler: counselorHandler,
		adminHandler:     adminHandler,
		profileHandler:   profileHandler,
		authMiddleware:   authMiddleware,
		corsMiddleware:   corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register", r.authHandler.Register).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// Profile routes (any authenticated user)
	user := api.PathPrefix("/user").Subrouter()
	user.Use(r.authMiddleware.Authenticate)
	user.HandleFunc("/profile", r.profileHandler.GetProfile).Methods(http.MethodGet)
	user.HandleFunc("/profile", r.profileHandler.UpdateProfile).Methods(http.MethodPut)

	// Patient routes (protected - patient only)
	patient := api.PathPrefix("/patient").Subrouter()
	patient.Use(r.authMiddleware.Authenticate)
	patient.Use(middleware.RequirePatient)
	patient.HandleFunc("/counselors", r.patientHandler.ListCounselors).Methods(http.MethodGet)
	patient.HandleFunc("/counselors/{id}/availability", r.patientHandler.CounselorAvailability).Methods(http.MethodGet)
	patient.HandleFunc("/appointments", r.patientHandler.BookAppointment).Methods(http.MethodPost)
	patient.HandleFunc("/appointments", r.patientHandler.MyAppointments).Methods(http.MethodGet)
	patient.HandleFunc("/appointments/{id}/cancel", r.patientHandler.CancelAppointment).Methods(http.MethodPost)
	patient.HandleFunc("/mood", r.patientHandler.UpsertMood).Methods(http.MethodPost)
	patient.HandleFunc("/mood", r.patientHandler.MoodHistory).Methods(http.MethodGet)

	// Counselor routes (protected - counselor only)
	counselor := api.PathPrefix("/counselor").Subrouter()
	counselor.Use(r.authMiddleware.Authenticate)
	counselor.Use(middleware.RequireCounselor)
	counselor.HandleFunc("/patients", r.counselorHandler.MyPatients).Methods(http.MethodGet)
	counselor.HandleFunc("/patients/{id}/mood", r.counselorHandler.PatientMood).Methods(http.MethodGet)
	counselor.HandleFunc("/appointments", r.counselorHandler.MyAppointments).Methods(http.MethodGet)
	counselor.HandleFunc("/appointments/{id}/status", r.counselorHandler.UpdateAppointmentStatus).Methods(http.MethodPost)
	counselor.HandleFunc("/availability", r.counselorHandler.MyAvailability).Methods(http.MethodGet)
	counselor.HandleFunc("/availability", r.counselorHandler.ReplaceAvailability).Methods(http.MethodPut)

	// Admin routes (protected - admin only)
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireAdmin)
	admin.HandleFunc("/users", r.adminHandler.ListUsers).Methods(http.MethodGet)
	admin.HandleFunc("/users/{id}/role", r.adminHandler.ChangeRole).Methods(http.MethodPost)
	admin.HandleFunc("/users/{id}/active", r.adminHandler.SetActive).Methods(http.MethodPost)
	admin.HandleFunc("/users/{id}", r.adminHandler.DeleteUser).Methods(http.MethodDelete)
	admin.HandleFunc("/counselors", r.adminHandler.CreateCounselor).Methods(http.MethodPost)
	admin.HandleFunc("/profile-changes", r.adminHandler.ProfileChanges).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
