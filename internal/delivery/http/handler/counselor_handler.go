package handler

import (
	"encoding/json"
	"net/http"

	"go-counseling-care/internal/delivery/dto"
	"go-counseling-care/internal/delivery/http/middleware"
	"go-counseling-care/internal/usecase"
	"go-counseling-care/pkg/response"
	"go-counseling-care/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type CounselorHandler struct {
	counselorUsecase usecase.CounselorUsecase
	validator        *validator.CustomValidator
}

func NewCounselorHandler(counselorUsecase usecase.CounselorUsecase, validator *validator.CustomValidator) *CounselorHandler {
	return &CounselorHandler{
		counselorUsecase: counselorUsecase,
		validator:        validator,
	}
}

// MyPatients lists patients assigned to or booked with the counselor
// @Summary List my patients
// @Tags Counselor
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /counselor/patients [get]
func (h *CounselorHandler) MyPatients(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	patients, err := h.counselorUsecase.MyPatients(r.Context(), userID)
	if err != nil {
		response.AppError(w, err, "Failed to list patients")
		return
	}

	response.Success(w, http.StatusOK, "Patients retrieved successfully", patients)
}

// PatientMood returns a patient's mood history, if the counselor may see it
// @Summary Get patient mood history
// @Tags Counselor
// @Security BearerAuth
// @Produce json
// @Param id path string true "Patient user ID"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /counselor/patients/{id}/mood [get]
func (h *CounselorHandler) PatientMood(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	patientID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid patient ID", nil)
		return
	}

	entries, err := h.counselorUsecase.PatientMood(r.Context(), userID, patientID)
	if err != nil {
		response.AppError(w, err, "Failed to get mood history")
		return
	}

	response.Success(w, http.StatusOK, "Mood history retrieved successfully", entries)
}

// MyAppointments lists the counselor's appointments
// @Summary List my appointments
// @Tags Counselor
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /counselor/appointments [get]
func (h *CounselorHandler) MyAppointments(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	appointments, err := h.counselorUsecase.MyAppointments(r.Context(), userID)
	if err != nil {
		response.AppError(w, err, "Failed to list appointments")
		return
	}

	response.Success(w, http.StatusOK, "Appointments retrieved successfully", appointments)
}

// UpdateAppointmentStatus changes the status of one of the counselor's appointments
// @Summary Update appointment status
// @Tags Counselor
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Appointment ID"
// @Param request body dto.UpdateAppointmentStatusRequest true "Status Request"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /counselor/appointments/{id}/status [post]
func (h *CounselorHandler) UpdateAppointmentStatus(w http.ResponseWriter, r *http.Request) {
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

	var req dto.UpdateAppointmentStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.counselorUsecase.UpdateAppointmentStatus(r.Context(), userID, appointmentID, req.Status)
	if err != nil {
		response.AppError(w, err, "Failed to update appointment status")
		return
	}

	response.Success(w, http.StatusOK, "Appointment status updated successfully", appointment)
}

// MyAvailability returns the counselor's weekly availability
// @Summary Get my availability
// @Tags Counselor
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /counselor/availability [get]
func (h *CounselorHandler) MyAvailability(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	slots, err := h.counselorUsecase.MyAvailability(r.Context(), userID)
	if err != nil {
		response.AppError(w, err, "Failed to get availability")
		return
	}

	response.Success(w, http.StatusOK, "Availability retrieved successfully", slots)
}

// ReplaceAvailability replaces the counselor's entire weekly schedule
// @Summary Replace my availability
// @Tags Counselor
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.ReplaceAvailabilityRequest true "Availability Request"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /counselor/availability [put]
func (h *CounselorHandler) ReplaceAvailability(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.ReplaceAvailabilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	slots, err := h.counselorUsecase.ReplaceAvailability(r.Context(), userID, &req)
	if err != nil {
		response.AppError(w, err, "Failed to replace availability")
		return
	}

	response.Success(w, http.StatusOK, "Availability replaced successfully", slots)
}
