package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httptransport "yatra/internal/http"
	"yatra/internal/http/middleware"
	"yatra/internal/modules/itinerary"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := logrus.New()
	log.SetOutput(io.Discard)

	// Nil provider and cache: every generate request is served by the
	// fallback generator.
	svc := itinerary.NewService(nil, nil, log)
	limiter := middleware.NewRateLimiter(600, 100)
	return httptransport.NewRouter(svc, log, limiter, []string{"*"})
}

func doJSON(t *testing.T, router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

const generateBody = `{
	"destination": ["Jaipur"],
	"startDate": "2030-01-10",
	"endDate": "2030-01-12",
	"budget": 10000,
	"currency": "INR",
	"travelStyle": "Relaxed",
	"interests": ["Temples"],
	"modeOfTravel": "Train"
}`

func TestGenerateEndpoint_FallbackItinerary(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/itinerary", generateBody)
	require.Equal(t, http.StatusOK, rec.Code)

	var res itinerary.PlanResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, itinerary.SourceFallback, res.Source)
	assert.Contains(t, res.Itinerary, "🇮🇳 Your Relaxed Indian Adventure to Jaipur")
	assert.Contains(t, res.Itinerary, "📅 Day 1")
}

func TestGenerateEndpoint_InvalidJSON(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/itinerary", `{"destination": [`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid json")
}

func TestGenerateEndpoint_ValidationError(t *testing.T) {
	router := newTestRouter(t)

	body := `{
		"destination": [],
		"startDate": "2030-01-10",
		"endDate": "2030-01-12",
		"budget": 10000,
		"currency": "INR",
		"travelStyle": "Relaxed",
		"interests": ["Temples"],
		"modeOfTravel": "Train"
	}`
	rec := doJSON(t, router, http.MethodPost, "/api/itinerary", body)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "destination")
}

func TestGenerateEndpoint_PastStartDate(t *testing.T) {
	router := newTestRouter(t)

	body := `{
		"destination": ["Jaipur"],
		"startDate": "2020-01-10",
		"endDate": "2020-01-12",
		"budget": 10000,
		"currency": "INR",
		"travelStyle": "Relaxed",
		"interests": ["Temples"],
		"modeOfTravel": "Train"
	}`
	rec := doJSON(t, router, http.MethodPost, "/api/itinerary", body)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "must not be in the past")
}

func TestParseEndpoint_StructuredText(t *testing.T) {
	router := newTestRouter(t)

	text := "📅 Day 1: Arrival\n🌅 Morning: check in\n🚗 Transport: metro"
	body, err := json.Marshal(map[string]string{"itinerary": text})
	require.NoError(t, err)

	rec := doJSON(t, router, http.MethodPost, "/api/itinerary/parse", string(body))
	require.Equal(t, http.StatusOK, rec.Code)

	var res struct {
		Days []itinerary.Day `json:"days"`
		Raw  string          `json:"raw"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	require.Len(t, res.Days, 1)
	assert.Equal(t, "Arrival", res.Days[0].Title)
	assert.Equal(t, "check in", res.Days[0].Morning)
	assert.Equal(t, text, res.Raw)
}

func TestParseEndpoint_UnstructuredTextDegradesToRaw(t *testing.T) {
	router := newTestRouter(t)

	body, err := json.Marshal(map[string]string{"itinerary": "just prose, no markers"})
	require.NoError(t, err)

	rec := doJSON(t, router, http.MethodPost, "/api/itinerary/parse", string(body))
	require.Equal(t, http.StatusOK, rec.Code)

	var res struct {
		Days []itinerary.Day `json:"days"`
		Raw  string          `json:"raw"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Empty(t, res.Days)
	assert.Equal(t, "just prose, no markers", res.Raw)
}

func TestParseEndpoint_MissingText(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/itinerary/parse", `{}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "missing itinerary text")
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}

func TestGenerateEndpoint_RateLimited(t *testing.T) {
	gin.SetMode(gin.TestMode)

	log := logrus.New()
	log.SetOutput(io.Discard)
	svc := itinerary.NewService(nil, nil, log)
	limiter := middleware.NewRateLimiter(1, 1)
	router := httptransport.NewRouter(svc, log, limiter, []string{"*"})

	first := doJSON(t, router, http.MethodPost, "/api/itinerary", generateBody)
	require.Equal(t, http.StatusOK, first.Code)

	second := doJSON(t, router, http.MethodPost, "/api/itinerary", generateBody)
	require.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.Contains(t, second.Body.String(), "rate limit exceeded")
}
