package modules

import (
	"context"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/xyz-asif/studycoach/internal/middleware"
	"github.com/xyz-asif/studycoach/internal/pkg/pagination"
	"github.com/xyz-asif/studycoach/internal/pkg/response"
	"github.com/xyz-asif/studycoach/internal/pkg/validator"
)

// Membership answers per-user questions about a module
type Membership interface {
	HasFavorite(ctx context.Context, userID string, moduleID int) (bool, error)
	IsEnrolled(ctx context.Context, userID string, moduleID int) (bool, error)
}

type Handler struct {
	service    *Service
	membership Membership
}

func NewHandler(service *Service, membership Membership) *Handler {
	return &Handler{service: service, membership: membership}
}

// List godoc
// @Summary List catalog modules
// @Tags modules
// @Produce json
// @Param name query string false "Case-insensitive name substring"
// @Param level query string false "Exact level"
// @Param studyCredit query int false "Exact study credit"
// @Param location query string false "Location the module is taught at"
// @Param difficulty query int false "Exact estimated difficulty"
// @Param ids query string false "Comma-separated module ids"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Success 200 {object} response.APIResponse{data=response.PageData}
// @Failure 400 {object} response.APIResponse
// @Router /modules [get]
func (h *Handler) List(c *gin.Context) {
	var query ListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.ValidationFailed(c, validator.Message(err))
		return
	}

	filters, err := query.ToFilters()
	if err != nil {
		response.ValidationFailed(c, err.Error())
		return
	}

	all, err := h.service.List(c.Request.Context(), filters)
	if err != nil {
		response.FromError(c, err)
		return
	}

	req := pagination.FromRequest(query.Page, query.Limit)
	items, page := pagination.Slice(all, req.Page, req.Limit)
	response.Paginated(c, items, page.Total, page.Limit, page.Page)
}

// Get godoc
// @Summary Get a module with the caller's favorite and enrollment flags
// @Tags modules
// @Produce json
// @Param id path int true "Module id"
// @Success 200 {object} response.APIResponse{data=DetailResponse}
// @Failure 400 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Router /modules/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	moduleID, err := ParseModuleID(c.Param("id"))
	if err != nil {
		response.BadRequest(c, err.Error(), "INVALID_MODULE_ID")
		return
	}

	ctx := c.Request.Context()
	module, err := h.service.Get(ctx, moduleID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	if module == nil {
		response.NotFound(c, "Module not found", "MODULE_NOT_FOUND")
		return
	}

	detail := DetailResponse{Module: module}
	if userID := middleware.UserID(c); userID != "" && h.membership != nil {
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			var err error
			detail.IsFavorited, err = h.membership.HasFavorite(gctx, userID, moduleID)
			return err
		})
		g.Go(func() error {
			var err error
			detail.IsEnrolled, err = h.membership.IsEnrolled(gctx, userID, moduleID)
			return err
		})
		if err := g.Wait(); err != nil {
			response.FromError(c, err)
			return
		}
	}

	response.Success(c, detail, "ok")
}
