package recommendations

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/gin-gonic/gin"

	"github.com/xyz-asif/studycoach/internal/pkg/response"
	"github.com/xyz-asif/studycoach/internal/pkg/validator"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Recommend godoc
// @Summary Recommend modules for the given interests
// @Tags recommendations
// @Accept json
// @Produce json
// @Param request body RecommendRequest true "Interests and preferences"
// @Success 200 {object} response.APIResponse{data=[]RecommendationDTO}
// @Failure 400 {object} response.APIResponse
// @Failure 502 {object} response.APIResponse
// @Failure 503 {object} response.APIResponse
// @Router /recommend [post]
func (h *Handler) Recommend(c *gin.Context) {
	var req RecommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationFailed(c, validator.Message(err))
		return
	}

	interests := strings.TrimSpace(req.InterestsText)
	if utf8.RuneCountInString(interests) < MinInterestsLength {
		response.ValidationFailed(c, fmt.Sprintf("Interests must contain at least %d characters", MinInterestsLength))
		return
	}

	recs, err := h.service.Recommend(c.Request.Context(), RecommendCommand{
		InterestsText:     interests,
		PreferredLevel:    strings.TrimSpace(req.PreferredLevel),
		PreferredLocation: strings.TrimSpace(req.PreferredLocation),
		K:                 req.K,
	})
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, recs, "ok")
}
