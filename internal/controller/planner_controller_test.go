package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"study_planner_backend/internal/model"
	"study_planner_backend/internal/repository"
	"study_planner_backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testControllerCatalog = `subjects:
  Math:
    general:
      - kind: document
        title: "Algebra Fundamentals"
        url: https://example.com/algebra
    weaknesses:
      Calculus:
        - kind: video
          title: "Understanding Derivatives"
          url: https://example.com/derivatives
`

func setupPlannerRouter(t *testing.T) (*gin.Engine, *repository.PerformanceStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store, err := repository.NewPerformanceStore(model.StudentProfile{
		Name: "John Doe",
		Subjects: []model.SubjectRecord{
			{Name: "Math", AverageScore: 74, Strengths: []string{"Geometry"}, Weaknesses: []string{"Calculus"}, RecommendedHours: 2.5, Progress: 60},
			{Name: "Science", AverageScore: 83, Strengths: []string{"Biology"}, Weaknesses: []string{"Chemical Equations"}, RecommendedHours: 1.5, Progress: 85},
		},
	})
	require.NoError(t, err)

	catalogPath := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(catalogPath, []byte(testControllerCatalog), 0644))
	catalog, err := repository.LoadRecommendationCatalog(catalogPath)
	require.NoError(t, err)

	c := NewPlannerController(
		service.NewScheduleService(),
		service.NewReminderService(),
		service.NewRecommendationService(catalog),
		service.NewProgressService(),
	)

	router := gin.New()
	router.Use(func(ctx *gin.Context) {
		ctx.Set("store", store)
	})
	router.GET("/api/schedule/daily", c.GetDailySchedule)
	router.GET("/api/schedule/weekly", c.GetWeeklySchedule)
	router.GET("/api/reminders", c.GetReminders)
	router.GET("/api/recommendations/:subject", c.GetRecommendations)
	router.GET("/api/profile", c.GetProfile)
	router.GET("/api/progress", c.GetSubjectProgress)
	router.PUT("/api/subjects/:subject/progress", c.UpdateProgress)
	router.POST("/api/subjects/:subject/complete", c.CompleteSession)

	return router, store
}

func doRequest(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func TestGetDailyScheduleEndpoint(t *testing.T) {
	router, _ := setupPlannerRouter(t)

	w := doRequest(router, http.MethodGet, "/api/schedule/daily", "")
	require.Equal(t, http.StatusOK, w.Code)

	var entries []model.ScheduleEntry
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Data, &entries))
	require.Len(t, entries, 2)
	assert.Equal(t, "09:00", entries[0].StartTime)
	assert.Equal(t, "11:00", entries[1].StartTime)
}

func TestGetWeeklyScheduleEndpoint(t *testing.T) {
	router, _ := setupPlannerRouter(t)

	w := doRequest(router, http.MethodGet, "/api/schedule/weekly", "")
	require.Equal(t, http.StatusOK, w.Code)

	var days []model.ScheduleDay
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Data, &days))
	assert.Len(t, days, 7)
}

func TestGetRecommendationsEndpoint(t *testing.T) {
	router, _ := setupPlannerRouter(t)

	w := doRequest(router, http.MethodGet, "/api/recommendations/Math", "")
	require.Equal(t, http.StatusOK, w.Code)

	var items []model.RecommendationItem
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Data, &items))
	require.Len(t, items, 2)
	assert.Equal(t, "Algebra Fundamentals", items[0].Title)

	// unknown subject is still a 200 with an empty list
	w = doRequest(router, http.MethodGet, "/api/recommendations/History", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Data, &items))
	assert.Empty(t, items)
}

func TestUpdateProgressEndpoint(t *testing.T) {
	router, store := setupPlannerRouter(t)

	w := doRequest(router, http.MethodPut, "/api/subjects/Math/progress", `{"progress": 90}`)
	require.Equal(t, http.StatusOK, w.Code)

	var profile model.StudentProfile
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Data, &profile))
	assert.Equal(t, 90, profile.Subjects[0].Progress)
	// (90 + 85) / 2 = 87.5 -> 88
	assert.Equal(t, 88, profile.OverallProgress)
	assert.Equal(t, 88, store.Profile().OverallProgress)
}

func TestUpdateProgressEndpointErrors(t *testing.T) {
	router, store := setupPlannerRouter(t)
	before := store.Profile()

	w := doRequest(router, http.MethodPut, "/api/subjects/Math/progress", `{"progress": 150}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(router, http.MethodPut, "/api/subjects/History/progress", `{"progress": 50}`)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doRequest(router, http.MethodPut, "/api/subjects/Math/progress", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	assert.Equal(t, before, store.Profile())
}

func TestCompleteSessionEndpoint(t *testing.T) {
	router, store := setupPlannerRouter(t)

	w := doRequest(router, http.MethodPost, "/api/subjects/Science/complete", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 100, store.Profile().Subjects[1].Progress)

	w = doRequest(router, http.MethodPost, "/api/subjects/History/complete", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetProfileAndProgressEndpoints(t *testing.T) {
	router, _ := setupPlannerRouter(t)

	w := doRequest(router, http.MethodGet, "/api/profile", "")
	require.Equal(t, http.StatusOK, w.Code)

	var profile model.StudentProfile
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Data, &profile))
	assert.Equal(t, "John Doe", profile.Name)

	w = doRequest(router, http.MethodGet, "/api/progress", "")
	require.Equal(t, http.StatusOK, w.Code)

	var views []model.SubjectProgress
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Data, &views))
	require.Len(t, views, 2)
	assert.Equal(t, 150, views[0].TotalMinutes)
}
