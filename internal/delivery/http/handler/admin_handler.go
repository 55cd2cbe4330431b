package handler

import (
	"encoding/json"
	"net/http"

	"go-counseling-care/internal/delivery/dto"
	"go-counseling-care/internal/usecase"
	"go-counseling-care/pkg/response"
	"go-counseling-care/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type AdminHandler struct {
	adminUsecase usecase.AdminUserUsecase
	validator    *validator.CustomValidator
}

func NewAdminHandler(adminUsecase usecase.AdminUserUsecase, validator *validator.CustomValidator) *AdminHandler {
	return &AdminHandler{
		adminUsecase: adminUsecase,
		validator:    validator,
	}
}

// ListUsers returns every account in the system
// @Summary List users
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /admin/users [get]
func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.adminUsecase.ListUsers(r.Context())
	if err != nil {
		response.AppError(w, err, "Failed to list users")
		return
	}

	response.Success(w, http.StatusOK, "Users retrieved successfully", users)
}

// CreateCounselor creates a counselor account
// @Summary Create counselor
// @Tags Admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateCounselorRequest true "Create Counselor Request"
// @Success 201 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /admin/counselors [post]
func (h *AdminHandler) CreateCounselor(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateCounselorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	counselor, err := h.adminUsecase.CreateCounselor(r.Context(), &req)
	if err != nil {
		response.AppError(w, err, "Failed to create counselor")
		return
	}

	response.Success(w, http.StatusCreated, "Counselor created successfully", counselor)
}

// ChangeRole changes a user's role
// @Summary Change user role
// @Tags Admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param request body dto.ChangeRoleRequest true "Change Role Request"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/users/{id}/role [post]
func (h *AdminHandler) ChangeRole(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid user ID", nil)
		return
	}

	var req dto.ChangeRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	user, err := h.adminUsecase.ChangeRole(r.Context(), userID, req.Role)
	if err != nil {
		response.AppError(w, err, "Failed to change role")
		return
	}

	response.Success(w, http.StatusOK, "Role changed successfully", user)
}

// SetActive activates or deactivates an account
// @Summary Set user active state
// @Tags Admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param request body dto.SetActiveRequest true "Set Active Request"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/users/{id}/active [post]
func (h *AdminHandler) SetActive(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid user ID", nil)
		return
	}

	var req dto.SetActiveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	user, err := h.adminUsecase.SetActive(r.Context(), userID, *req.Active)
	if err != nil {
		response.AppError(w, err, "Failed to update user")
		return
	}

	response.Success(w, http.StatusOK, "User updated successfully", user)
}

// DeleteUser removes a user and all dependent records
// @Summary Delete user
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/users/{id} [delete]
func (h *AdminHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid user ID", nil)
		return
	}

	if err := h.adminUsecase.DeleteUser(r.Context(), userID); err != nil {
		response.AppError(w, err, "Failed to delete user")
		return
	}

	response.Success(w, http.StatusOK, "User deleted successfully", nil)
}

// ProfileChanges returns the most recent profile edits
// @Summary List latest profile changes
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /admin/profile-changes [get]
func (h *AdminHandler) ProfileChanges(w http.ResponseWriter, r *http.Request) {
	changes, err := h.adminUsecase.LatestProfileChanges(r.Context())
	if err != nil {
		response.AppError(w, err, "Failed to list profile changes")
		return
	}

	response.Success(w, http.StatusOK, "Profile changes retrieved successfully", changes)
}
