package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"go-counseling-care/internal/delivery/dto"
	"go-counseling-care/internal/delivery/http/middleware"
	"go-counseling-care/internal/usecase"
	"go-counseling-care/pkg/response"
	"go-counseling-care/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type PatientHandler struct {
	patientUsecase usecase.PatientUsecase
	validator      *validator.CustomValidator
}

func NewPatientHandler(patientUsecase usecase.PatientUsecase, validator *validator.CustomValidator) *PatientHandler {
	return &PatientHandler{
		patientUsecase: patientUsecase,
		validator:      validator,
	}
}

// ListCounselors returns all active counselors
// @Summary List counselors
// @Tags Patient
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /patient/counselors [get]
func (h *PatientHandler) ListCounselors(w http.ResponseWriter, r *http.Request) {
	counselors, err := h.patientUsecase.ListCounselors(r.Context())
	if err != nil {
		response.AppError(w, err, "Failed to list counselors")
		return
	}

	response.Success(w, http.StatusOK, "Counselors retrieved successfully", counselors)
}

// CounselorAvailability returns a counselor's weekly availability windows
// @Summary Get counselor availability
// @Tags Patient
// @Security BearerAuth
// @Produce json
// @Param id path string true "Counselor ID"
// @Param day_of_week query int false "Day of week (0=Sunday..6=Saturday)"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /patient/counselors/{id}/availability [get]
func (h *PatientHandler) CounselorAvailability(w http.ResponseWriter, r *http.Request) {
	counselorID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid counselor ID", nil)
		return
	}

	var dayOfWeek *int
	if raw := r.URL.Query().Get("day_of_week"); raw != "" {
		day, err := strconv.Atoi(raw)
		if err != nil {
			response.Error(w, http.StatusBadRequest, "Invalid day parameter", nil)
			return
		}
		dayOfWeek = &day
	}

	slots, err := h.patientUsecase.CounselorAvailability(r.Context(), counselorID, dayOfWeek)
	if err != nil {
		response.AppError(w, err, "Failed to get availability")
		return
	}

	response.Success(w, http.StatusOK, "Availability retrieved successfully", slots)
}

// BookAppointment books a slot with a counselor
// @Summary Book an appointment
// @Tags Patient
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.BookAppointmentRequest true "Book Appointment Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /patient/appointments [post]
func (h *PatientHandler) BookAppointment(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.BookAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.patientUsecase.BookAppointment(r.Context(), userID, &req)
	if err != nil {
		response.AppError(w, err, "Failed to book appointment")
		return
	}

	response.Success(w, http.StatusCreated, "Appointment booked successfully", appointment)
}

// MyAppointments lists the patient's appointments
// @Summary List my appointments
// @Tags Patient
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /patient/appointments [get]
func (h *PatientHandler) MyAppointments(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	appointments, err := h.patientUsecase.MyAppointments(r.Context(), userID)
	if err != nil {
		response.AppError(w, err, "Failed to list appointments")
		return
	}

	response.Success(w, http.StatusOK, "Appointments retrieved successfully", appointments)
}

// CancelAppointment cancels one of the patient's own appointments
// @Summary Cancel an appointment
// @Tags Patient
// @Security BearerAuth
// @Produce json
// @Param id path string true "Appointment ID"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /patient/appointments/{id}/cancel [post]
func (h *PatientHandler) CancelAppointment(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	appointmentID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID", nil)
		return
	}

	appointment, err := h.patientUsecase.CancelAppointment(r.Context(), userID, appointmentID)
	if err != nil {
		response.AppError(w, err, "Failed to cancel appointment")
		return
	}

	response.Success(w, http.StatusOK, "Appointment canceled successfully", appointment)
}

// UpsertMood records or updates today's mood entry
// @Summary Record mood
// @Tags Patient
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.MoodRequest true "Mood Request"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /patient/mood [post]
func (h *PatientHandler) UpsertMood(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.MoodRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	entry, err := h.patientUsecase.UpsertMood(r.Context(), userID, &req)
	if err != nil {
		response.AppError(w, err, "Failed to record mood")
		return
	}

	response.Success(w, http.StatusOK, "Mood recorded successfully", entry)
}

// MoodHistory lists the patient's mood entries
// @Summary Get mood history
// @Tags Patient
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /patient/mood [get]
func (h *PatientHandler) MoodHistory(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	entries, err := h.patientUsecase.MoodHistory(r.Context(), userID)
	if err != nil {
		response.AppError(w, err, "Failed to get mood history")
		return
	}

	response.Success(w, http.StatusOK, "Mood history retrieved successfully", entries)
}
