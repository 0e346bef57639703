package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/xyz-asif/studycoach/internal/pkg/logger"
	apperrors "github.com/xyz-asif/studycoach/pkg/errors"
)

// APIResponse is the envelope every endpoint returns
type APIResponse struct {
	Success    bool        `json:"success" example:"true"`
	StatusCode int         `json:"statusCode" example:"200"`
	Message    string      `json:"message" example:"ok"`
	Data       interface{} `json:"data"`
	Code       string      `json:"code,omitempty" example:"AUTH_INVALID_TOKEN"`
}

// PageData is the data payload of a paginated response
type PageData struct {
	Items interface{} `json:"items"`
	Total int64       `json:"total" example:"25"`
	Limit int         `json:"limit" example:"20"`
	Page  int         `json:"page" example:"1"`
	Pages int         `json:"pages" example:"2"`
}

// Success sends a 200 OK response with data
func Success(c *gin.Context, data interface{}, message string) {
	JSON(c, http.StatusOK, data, message)
}

// Created sends a 201 Created response
func Created(c *gin.Context, data interface{}, message string) {
	JSON(c, http.StatusCreated, data, message)
}

// JSON sends a success envelope with an explicit status
func JSON(c *gin.Context, statusCode int, data interface{}, message string) {
	c.JSON(statusCode, APIResponse{
		Success:    true,
		StatusCode: statusCode,
		Message:    message,
		Data:       data,
	})
}

// Paginated sends a paginated response
func Paginated(c *gin.Context, items interface{}, total int64, limit int, page ...int) {
	pageNum := 1
	if len(page) > 0 {
		pageNum = page[0]
	}

	pages := 1
	if limit > 0 && total > 0 {
		pages = int((total + int64(limit) - 1) / int64(limit))
	}

	Success(c, PageData{
		Items: items,
		Total: total,
		Limit: limit,
		Page:  pageNum,
		Pages: pages,
	}, "ok")
}

// Error sends an error response with custom status code and message
func Error(c *gin.Context, statusCode int, message string, errorCode ...string) {
	ErrorWithData(c, statusCode, message, nil, errorCode...)
}

// ErrorWithData sends an error envelope carrying diagnostic data
func ErrorWithData(c *gin.Context, statusCode int, message string, data interface{}, errorCode ...string) {
	code := ""
	if len(errorCode) > 0 {
		code = errorCode[0]
	}

	c.JSON(statusCode, APIResponse{
		Success:    false,
		StatusCode: statusCode,
		Message:    message,
		Data:       data,
		Code:       code,
	})
}

// BadRequest sends a 400 Bad Request error
func BadRequest(c *gin.Context, message string, errorCode ...string) {
	Error(c, http.StatusBadRequest, message, errorCode...)
}

// Unauthorized sends a 401 Unauthorized error
func Unauthorized(c *gin.Context, message string, errorCode ...string) {
	Error(c, http.StatusUnauthorized, message, errorCode...)
}

// NotFound sends a 404 Not Found error
func NotFound(c *gin.Context, message string, errorCode ...string) {
	Error(c, http.StatusNotFound, message, errorCode...)
}

// Conflict sends a 409 Conflict error
func Conflict(c *gin.Context, message string, errorCode ...string) {
	Error(c, http.StatusConflict, message, errorCode...)
}

// InternalServerError sends a 500 Internal Server Error
func InternalServerError(c *gin.Context, message string, errorCode ...string) {
	Error(c, http.StatusInternalServerError, message, errorCode...)
}

// ServiceUnavailable sends a 503 Service Unavailable error
func ServiceUnavailable(c *gin.Context, message string, errorCode ...string) {
	Error(c, http.StatusServiceUnavailable, message, errorCode...)
}

// ValidationFailed handles validation errors
func ValidationFailed(c *gin.Context, message string) {
	BadRequest(c, message, "VALIDATION_FAILED")
}

// Detailer is implemented by errors that carry diagnostic fields for the client
type Detailer interface {
	Details() map[string]interface{}
}

// StatusFor maps an error kind to its HTTP status
func StatusFor(kind apperrors.Kind) int {
	switch kind {
	case apperrors.KindValidation:
		return http.StatusBadRequest
	case apperrors.KindUnauthorized:
		return http.StatusUnauthorized
	case apperrors.KindNotFound:
		return http.StatusNotFound
	case apperrors.KindConflict:
		return http.StatusConflict
	case apperrors.KindServiceUnavailable:
		return http.StatusServiceUnavailable
	case apperrors.KindBadGateway:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// FromError writes the envelope for a service error.
// Unclassified errors are logged and hidden behind a generic 500.
func FromError(c *gin.Context, err error) {
	var data interface{}
	var d Detailer
	if apperrors.As(err, &d) {
		data = d.Details()
	}

	var appErr *apperrors.Error
	if !apperrors.As(err, &appErr) {
		logger.Ctx(c.Request.Context()).Error().Err(err).
			Str("path", c.FullPath()).
			Msg("Unhandled error")
		InternalServerError(c, apperrors.ErrInternal.Message, apperrors.ErrInternal.Code)
		return
	}

	status := StatusFor(appErr.Kind)
	if status >= http.StatusInternalServerError {
		logger.Ctx(c.Request.Context()).Error().Err(err).
			Str("path", c.FullPath()).
			Str("kind", appErr.Kind.String()).
			Msg("Request failed")
	}

	ErrorWithData(c, status, appErr.Message, data, appErr.Code)
}
