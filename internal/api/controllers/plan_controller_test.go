package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripmap/internal/models/request_models"
	"tripmap/internal/models/response_models"
	"tripmap/internal/services"
	"tripmap/pkg/utils"
)

type stubPlanService struct {
	probeOK bool
}

func (s *stubPlanService) GeneratePlan(ctx context.Context, req request_models.TravelRequest) *response_models.TravelPlan {
	return services.FallbackPlan(req)
}

func (s *stubPlanService) Probe(ctx context.Context) bool {
	return s.probeOK
}

func newPlanRouter(svc services.PlanServiceInterface) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	controller := NewPlanController(svc)
	r.POST("/api/plans/generate", controller.GeneratePlanHandler)
	r.GET("/api/health", controller.HealthHandler)
	return r
}

func TestGeneratePlanHandler_Success(t *testing.T) {
	r := newPlanRouter(&stubPlanService{})

	body := `{"days": 2, "start_location": "Paris", "end_location": "Rome", "interests": ["food"]}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/plans/generate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp utils.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp.Status)

	planJSON, err := json.Marshal(resp.Data)
	require.NoError(t, err)
	var plan response_models.TravelPlan
	require.NoError(t, json.Unmarshal(planJSON, &plan))
	assert.Equal(t, "2-Day Journey: Paris to Rome", plan.Title)
	assert.Len(t, plan.Days, 2)
}

func TestGeneratePlanHandler_BindingFailures(t *testing.T) {
	cases := map[string]string{
		"days missing":    `{"start_location": "Paris"}`,
		"days zero":       `{"days": 0, "start_location": "Paris"}`,
		"days over limit": `{"days": 31, "start_location": "Paris"}`,
		"start missing":   `{"days": 3}`,
		"not json":        `days=3`,
	}

	r := newPlanRouter(&stubPlanService{})

	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/plans/generate", strings.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)

			var resp utils.APIResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, "error", resp.Status)
		})
	}
}

func TestHealthHandler_ReportsProbeOutcome(t *testing.T) {
	cases := []struct {
		probeOK  bool
		expected string
	}{
		{probeOK: true, expected: "ok"},
		{probeOK: false, expected: "unreachable"},
	}

	for _, tc := range cases {
		r := newPlanRouter(&stubPlanService{probeOK: tc.probeOK})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var body map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "ok", body["status"])
		assert.Equal(t, tc.expected, body["llm"])
	}
}
