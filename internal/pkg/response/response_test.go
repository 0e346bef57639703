package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	apperrors "github.com/xyz-asif/studycoach/pkg/errors"
)

func TestSuccessAndErrorResponses(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	// Test Success
	Success(c, map[string]string{"foo": "bar"}, "ok")
	require.Equal(t, 200, w.Code)
	var body map[string]any
	err := json.Unmarshal(w.Body.Bytes(), &body)
	require.NoError(t, err)
	require.Equal(t, true, body["success"])
	require.Equal(t, float64(200), body["statusCode"]) // json numbers decode to float64
	require.Equal(t, "ok", body["message"])
	require.Contains(t, body, "data")

	// Test Error
	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	Error(c, 400, "bad request", "BAD_REQ")
	require.Equal(t, 400, w.Code)
	var bodyErr map[string]any
	err = json.Unmarshal(w.Body.Bytes(), &bodyErr)
	require.NoError(t, err)
	require.Equal(t, false, bodyErr["success"])
	require.Equal(t, float64(400), bodyErr["statusCode"])
	require.Equal(t, "bad request", bodyErr["message"])
	require.Equal(t, "BAD_REQ", bodyErr["code"])
}

func TestPaginatedResponse(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	items := []map[string]any{{"id": 1}, {"id": 2}}
	Paginated(c, items, 2, 10, 1)

	require.Equal(t, 200, w.Code)
	var body map[string]any
	err := json.Unmarshal(w.Body.Bytes(), &body)
	require.NoError(t, err)
	require.Equal(t, true, body["success"])
	require.Equal(t, float64(200), body["statusCode"])
	data := body["data"].(map[string]any)
	require.Contains(t, data, "items")
	require.Equal(t, float64(2), data["total"].(float64))
	require.Equal(t, float64(10), data["limit"].(float64))
	require.Equal(t, float64(1), data["page"].(float64))
	require.Equal(t, float64(1), data["pages"].(float64))
}

type upstreamErr struct{ status int }

func (e *upstreamErr) Error() string { return "upstream failed" }
func (e *upstreamErr) Unwrap() error { return apperrors.ErrRecommenderFailed }
func (e *upstreamErr) Details() map[string]interface{} {
	return map[string]interface{}{"statusCode": e.status}
}

func TestFromError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name    string
		err     error
		status  int
		message string
		code    string
	}{
		{"conflict", apperrors.ErrEmailTaken, 409, "User with this email already exists", "EMAIL_TAKEN"},
		{"wrapped unauthorized", fmt.Errorf("login: %w", apperrors.ErrInvalidCredentials), 401, "Invalid email or password", "INVALID_CREDENTIALS"},
		{"not found", apperrors.ErrUserNotFound, 404, "User not found", "USER_NOT_FOUND"},
		{"validation", apperrors.ErrInvalidScore, 400, "Score must be between 0 and 1", "INVALID_SCORE"},
		{"unavailable", apperrors.ErrRecommenderDown, 503, "Recommendation service is unavailable", "RECOMMENDER_UNAVAILABLE"},
		{"unknown", errors.New("boom"), 500, "internal server error", "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest("GET", "/", nil)

			FromError(c, tt.err)

			require.Equal(t, tt.status, w.Code)
			var body map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			require.Equal(t, false, body["success"])
			require.Equal(t, tt.message, body["message"])
			require.Equal(t, tt.code, body["code"])
		})
	}
}

func TestFromError_IncludesDetails(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("POST", "/recommend", nil)

	FromError(c, &upstreamErr{status: 500})

	require.Equal(t, 502, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	data := body["data"].(map[string]any)
	require.Equal(t, float64(500), data["statusCode"])
}
