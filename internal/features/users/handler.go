package users

import (
	"github.com/gin-gonic/gin"

	"github.com/xyz-asif/studycoach/internal/features/modules"
	"github.com/xyz-asif/studycoach/internal/middleware"
	"github.com/xyz-asif/studycoach/internal/pkg/response"
	"github.com/xyz-asif/studycoach/internal/pkg/validator"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func moduleParam(c *gin.Context) (int, bool) {
	id, err := modules.ParseModuleID(c.Param("module_id"))
	if err != nil {
		response.BadRequest(c, err.Error(), "INVALID_MODULE_ID")
		return 0, false
	}
	return id, true
}

// GetProfile godoc
// @Summary Get the caller's profile with favorite and chosen module ids
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.APIResponse{data=Profile}
// @Failure 404 {object} response.APIResponse
// @Router /users/me [get]
func (h *Handler) GetProfile(c *gin.Context) {
	profile, err := h.service.GetProfile(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, profile, "ok")
}

// GetAccount godoc
// @Summary Get the account summary with chosen modules
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.APIResponse{data=Account}
// @Router /users/me/account [get]
func (h *Handler) GetAccount(c *gin.Context) {
	account, err := h.service.GetAccount(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, account, "ok")
}

// UpdateProfile godoc
// @Summary Replace the free-text student profile
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body UpdateProfileRequest true "Profile text"
// @Success 200 {object} response.APIResponse
// @Router /users/me/profile [patch]
func (h *Handler) UpdateProfile(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationFailed(c, validator.Message(err))
		return
	}
	if req.StudentProfile == nil {
		response.ValidationFailed(c, "studentProfile is required")
		return
	}

	if err := h.service.UpdateStudentProfile(c.Request.Context(), middleware.UserID(c), *req.StudentProfile); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, gin.H{"studentProfile": *req.StudentProfile}, "Profile updated successfully")
}

// ListFavorites godoc
// @Summary List the caller's favorite modules
// @Tags favorites
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.APIResponse{data=[]modules.Module}
// @Router /users/me/favorites [get]
func (h *Handler) ListFavorites(c *gin.Context) {
	favorites, err := h.service.ListFavorites(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, favorites, "ok")
}

// FavoriteStatus godoc
// @Summary Whether the module is a favorite; false for anonymous callers
// @Tags favorites
// @Produce json
// @Param module_id path int true "Module id"
// @Success 200 {object} response.APIResponse{data=FavoriteStatus}
// @Router /users/me/favorites/{module_id} [get]
func (h *Handler) FavoriteStatus(c *gin.Context) {
	moduleID, ok := moduleParam(c)
	if !ok {
		return
	}

	status := FavoriteStatus{ModuleID: moduleID}
	if userID := middleware.UserID(c); userID != "" {
		favorite, err := h.service.HasFavorite(c.Request.Context(), userID, moduleID)
		if err != nil {
			response.FromError(c, err)
			return
		}
		status.Favorite = favorite
	}
	response.Success(c, status, "ok")
}

// AddFavorite godoc
// @Summary Mark a module as favorite
// @Tags favorites
// @Produce json
// @Security BearerAuth
// @Param module_id path int true "Module id"
// @Success 200 {object} response.APIResponse{data=FavoriteStatus}
// @Failure 404 {object} response.APIResponse
// @Router /users/me/favorites/{module_id} [put]
func (h *Handler) AddFavorite(c *gin.Context) {
	moduleID, ok := moduleParam(c)
	if !ok {
		return
	}

	if err := h.service.AddFavorite(c.Request.Context(), middleware.UserID(c), moduleID); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, FavoriteStatus{ModuleID: moduleID, Favorite: true}, "Module added to favorites")
}

// RemoveFavorite godoc
// @Summary Remove a module from favorites
// @Tags favorites
// @Produce json
// @Security BearerAuth
// @Param module_id path int true "Module id"
// @Success 200 {object} response.APIResponse{data=FavoriteStatus}
// @Router /users/me/favorites/{module_id} [delete]
func (h *Handler) RemoveFavorite(c *gin.Context) {
	moduleID, ok := moduleParam(c)
	if !ok {
		return
	}

	if err := h.service.RemoveFavorite(c.Request.Context(), middleware.UserID(c), moduleID); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, FavoriteStatus{ModuleID: moduleID, Favorite: false}, "Module removed from favorites")
}

// ListEnrollments godoc
// @Summary List modules the caller is enrolled in
// @Tags enrollments
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.APIResponse{data=[]modules.Module}
// @Router /users/me/enrollments [get]
func (h *Handler) ListEnrollments(c *gin.Context) {
	enrolled, err := h.service.ListEnrollments(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, enrolled, "ok")
}

// Enroll godoc
// @Summary Enroll in a module
// @Tags enrollments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body EnrollRequest true "Module to enroll in"
// @Success 200 {object} response.APIResponse{data=EnrollmentStatus}
// @Failure 404 {object} response.APIResponse
// @Router /users/me/enrollments [post]
func (h *Handler) Enroll(c *gin.Context) {
	var req EnrollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationFailed(c, validator.Message(err))
		return
	}

	if err := h.service.Enroll(c.Request.Context(), middleware.UserID(c), req.ModuleID); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, EnrollmentStatus{ModuleID: req.ModuleID, Enrolled: true}, "Enrolled successfully")
}

// Unenroll godoc
// @Summary Leave a module
// @Tags enrollments
// @Produce json
// @Security BearerAuth
// @Param module_id path int true "Module id"
// @Success 200 {object} response.APIResponse{data=EnrollmentStatus}
// @Router /users/me/enrollments/{module_id} [delete]
func (h *Handler) Unenroll(c *gin.Context) {
	moduleID, ok := moduleParam(c)
	if !ok {
		return
	}

	if err := h.service.Unenroll(c.Request.Context(), middleware.UserID(c), moduleID); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, EnrollmentStatus{ModuleID: moduleID, Enrolled: false}, "Unenrolled successfully")
}
