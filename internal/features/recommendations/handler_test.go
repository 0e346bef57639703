package recommendations

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	apperrors "github.com/xyz-asif/studycoach/pkg/errors"
)

func post(t *testing.T, stub *stubRecommender, body string) (int, map[string]any) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r.Group("/api/v1"), NewHandler(NewService(stub)), func(c *gin.Context) { c.Next() })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/recommend", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return w.Code, out
}

func TestHandler_ShortInterests(t *testing.T) {
	code, body := post(t, &stubRecommender{}, `{"interests_text": "   data    "}`)
	require.Equal(t, http.StatusBadRequest, code)
	require.Equal(t, "Interests must contain at least 10 characters", body["message"])
}

func TestHandler_Success(t *testing.T) {
	stub := &stubRecommender{recs: []Recommendation{{ModuleID: 101, ModuleName: "Data", Score: 0.8}}}

	code, body := post(t, stub, `{"interests_text": "machine learning", "preferred_level": "NLQF5", "k": 5}`)
	require.Equal(t, http.StatusOK, code)
	items := body["data"].([]any)
	require.Len(t, items, 1)
	require.Equal(t, float64(101), items[0].(map[string]any)["module_id"])
	require.Equal(t, 5, stub.got.K)
	require.Equal(t, "NLQF5", stub.got.PreferredLevel)
}

func TestHandler_UpstreamErrorDetails(t *testing.T) {
	stub := &stubRecommender{err: &ServiceError{
		StatusCode: 500,
		URL:        "http://recommender/recommend",
		Body:       "boom",
		Kind:       apperrors.KindBadGateway,
	}}

	code, body := post(t, stub, `{"interests_text": "machine learning"}`)
	require.Equal(t, http.StatusBadGateway, code)
	require.Equal(t, "RECOMMENDER_FAILED", body["code"])
	data := body["data"].(map[string]any)
	require.Equal(t, float64(500), data["status"])
	require.Equal(t, "boom", data["body"])
}

func TestHandler_Unavailable(t *testing.T) {
	stub := &stubRecommender{err: &ServiceError{URL: "http://recommender/health", Kind: apperrors.KindServiceUnavailable}}

	code, body := post(t, stub, `{"interests_text": "machine learning"}`)
	require.Equal(t, http.StatusServiceUnavailable, code)
	require.Equal(t, "RECOMMENDER_UNAVAILABLE", body["code"])
}
