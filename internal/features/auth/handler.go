// ================== internal/features/auth/handler.go ==================
package auth

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/xyz-asif/studycoach/internal/middleware"
	"github.com/xyz-asif/studycoach/internal/pkg/response"
	"github.com/xyz-asif/studycoach/internal/pkg/validator"
)

type Handler struct {
	service      *Service
	cookieTTL    time.Duration
	cookieSecure bool
}

func NewHandler(service *Service, cookieTTL time.Duration, cookieSecure bool) *Handler {
	return &Handler{
		service:      service,
		cookieTTL:    cookieTTL,
		cookieSecure: cookieSecure,
	}
}

// Register godoc
// @Summary Register a new user
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "User registration data"
// @Success 201 {object} response.APIResponse{data=AuthResponse}
// @Failure 400 {object} response.APIResponse
// @Failure 409 {object} response.APIResponse
// @Router /auth/register [post]
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationFailed(c, validator.Message(err))
		return
	}

	result, err := h.service.Register(c.Request.Context(), RegisterCommand{
		Email:          req.Email,
		Password:       req.Password,
		Name:           req.Name,
		StudentProfile: req.StudentProfile,
	})
	if err != nil {
		response.FromError(c, err)
		return
	}

	h.setSessionCookie(c, result.Token)
	response.Created(c, result, "User registered successfully")
}

// Login godoc
// @Summary Login user
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "User login credentials"
// @Success 200 {object} response.APIResponse{data=AuthResponse}
// @Failure 400 {object} response.APIResponse
// @Failure 401 {object} response.APIResponse
// @Router /auth/login [post]
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationFailed(c, validator.Message(err))
		return
	}

	result, err := h.service.Login(c.Request.Context(), LoginCommand{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		response.FromError(c, err)
		return
	}

	h.setSessionCookie(c, result.Token)
	response.Success(c, result, "Login successful")
}

// Logout godoc
// @Summary Clear the session cookie
// @Tags auth
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /auth/logout [post]
func (h *Handler) Logout(c *gin.Context) {
	h.clearSessionCookie(c)
	response.Success(c, nil, "Logged out successfully")
}

// Me godoc
// @Summary Get the current user
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.APIResponse{data=User}
// @Failure 401 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Router /auth [get]
func (h *Handler) Me(c *gin.Context) {
	user, err := h.service.GetCurrentUser(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		response.FromError(c, err)
		return
	}
	if user == nil {
		response.NotFound(c, "User not found", "USER_NOT_FOUND")
		return
	}

	response.Success(c, user, "ok")
}

// Update godoc
// @Summary Update name or email
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body UpdateUserRequest true "Fields to change"
// @Success 200 {object} response.APIResponse{data=User}
// @Failure 404 {object} response.APIResponse
// @Failure 409 {object} response.APIResponse
// @Router /auth [patch]
func (h *Handler) Update(c *gin.Context) {
	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationFailed(c, validator.Message(err))
		return
	}
	if err := ValidateUpdate(&req); err != nil {
		response.ValidationFailed(c, err.Error())
		return
	}

	user, err := h.service.UpdateUser(c.Request.Context(), middleware.UserID(c), UpdateUserCommand{
		Name:  req.Name,
		Email: req.Email,
	})
	if err != nil {
		response.FromError(c, err)
		return
	}
	if user == nil {
		response.NotFound(c, "User not found", "USER_NOT_FOUND")
		return
	}

	response.Success(c, user, "User updated successfully")
}

// UpdatePassword godoc
// @Summary Change password
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body UpdatePasswordRequest true "Current and new password"
// @Success 200 {object} response.APIResponse
// @Failure 400 {object} response.APIResponse
// @Failure 401 {object} response.APIResponse
// @Router /auth/password [patch]
func (h *Handler) UpdatePassword(c *gin.Context) {
	var req UpdatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationFailed(c, validator.Message(err))
		return
	}

	if err := h.service.UpdatePassword(c.Request.Context(), middleware.UserID(c), req.OldPassword, req.NewPassword); err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, nil, "Password updated successfully")
}

// Delete godoc
// @Summary Delete the current account
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Router /auth [delete]
func (h *Handler) Delete(c *gin.Context) {
	deleted, err := h.service.DeleteUser(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		response.FromError(c, err)
		return
	}
	if !deleted {
		response.NotFound(c, "User not found", "USER_NOT_FOUND")
		return
	}

	h.clearSessionCookie(c)
	response.Success(c, nil, "User deleted successfully")
}

func (h *Handler) setSessionCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.TokenCookie, token, int(h.cookieTTL.Seconds()), "/", "", h.cookieSecure, true)
}

func (h *Handler) clearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.TokenCookie, "", -1, "/", "", h.cookieSecure, true)
}
