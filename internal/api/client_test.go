package api

import (
	"bytes"
	"context"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/alexanderramin/skillpath/internal/config"
	"github.com/alexanderramin/skillpath/internal/domain"
	"github.com/alexanderramin/skillpath/internal/testutil"
	"github.com/alexanderramin/skillpath/internal/validate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(endpoint string) config.Config {
	cfg := config.DefaultConfig()
	cfg.APIURL = endpoint
	return cfg
}

type recordingObserver struct {
	mu     sync.Mutex
	events []CallEvent
}

func (o *recordingObserver) OnCallComplete(e CallEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, e)
}

func newTestClient(t *testing.T) (*Client, *testutil.FakeAPI, *testutil.MemTokenSource) {
	t.Helper()
	fake := testutil.NewFakeAPI(t)
	tokens := testutil.NewMemTokenSource(testutil.ValidToken(t))
	return NewClient(testConfig(fake.URL()), tokens, NoopObserver{}), fake, tokens
}

func TestClient_SendsBearerTokenAndRequestID(t *testing.T) {
	client, fake, tokens := newTestClient(t)
	fake.JSON(http.MethodGet, "/api/goals/today", http.StatusOK, []domain.Goal{{ID: 1, Title: "Read"}})

	goals, err := client.TodayGoals(context.Background())
	require.NoError(t, err)
	require.Len(t, goals, 1)
	assert.Equal(t, "Read", goals[0].Title)

	req, ok := fake.Last(http.MethodGet, "/api/goals/today")
	require.True(t, ok)
	token, _ := tokens.Token(context.Background())
	assert.Equal(t, "Bearer "+token, req.Header.Get("Authorization"))
	assert.Len(t, req.Header.Get("X-Request-ID"), 36)
}

func TestClient_NoTokenShortCircuits(t *testing.T) {
	fake := testutil.NewFakeAPI(t)
	client := NewClient(testConfig(fake.URL()), testutil.NewMemTokenSource(""), NoopObserver{})

	_, err := client.ActiveTodayGoals(context.Background())
	assert.ErrorIs(t, err, ErrNoToken)
	assert.Empty(t, fake.Requests(), "no request may be issued without a token")
}

func TestClient_NilTokenSourceShortCircuits(t *testing.T) {
	fake := testutil.NewFakeAPI(t)
	client := NewClient(testConfig(fake.URL()), nil, NoopObserver{})

	_, err := client.CourseStats(context.Background())
	assert.ErrorIs(t, err, ErrNoToken)
	assert.Empty(t, fake.Requests())
}

func TestClient_ExpiredTokenShortCircuits(t *testing.T) {
	fake := testutil.NewFakeAPI(t)
	expired := testutil.NewTestToken(t, time.Now().Add(-time.Minute))
	client := NewClient(testConfig(fake.URL()), testutil.NewMemTokenSource(expired), NoopObserver{})

	_, err := client.Badges(context.Background())
	assert.ErrorIs(t, err, ErrNoToken)
	assert.ErrorContains(t, err, "session expired")
	assert.Empty(t, fake.Requests())
}

func TestClient_MalformedTokenShortCircuits(t *testing.T) {
	fake := testutil.NewFakeAPI(t)
	client := NewClient(testConfig(fake.URL()), testutil.NewMemTokenSource("not-a-jwt"), NoopObserver{})

	_, err := client.EnrolledCourses(context.Background())
	assert.ErrorIs(t, err, ErrNoToken)
	assert.Empty(t, fake.Requests())
}

func TestClient_UnauthorizedClearsToken(t *testing.T) {
	for _, status := range []int{http.StatusUnauthorized, http.StatusForbidden} {
		t.Run(http.StatusText(status), func(t *testing.T) {
			client, fake, tokens := newTestClient(t)
			fake.JSON(http.MethodGet, "/api/achievements/profile", status, map[string]string{"message": "token revoked"})

			_, err := client.AchievementProfile(context.Background())
			assert.ErrorIs(t, err, ErrUnauthorized)
			assert.True(t, IsAuthError(err))
			assert.Equal(t, 1, tokens.Cleared())

			var httpErr *HTTPError
			require.ErrorAs(t, err, &httpErr)
			assert.Equal(t, status, httpErr.StatusCode)
			assert.Equal(t, "token revoked", httpErr.Message)
		})
	}
}

func TestClient_NotFound(t *testing.T) {
	client, _, tokens := newTestClient(t)

	_, err := client.CourseStats(context.Background())
	assert.ErrorIs(t, err, ErrNotFound)
	assert.False(t, IsAuthError(err))
	assert.Zero(t, tokens.Cleared())
}

func TestClient_ServerErrorSurfacesStatus(t *testing.T) {
	client, fake, _ := newTestClient(t)
	fake.Handle(http.MethodGet, "/api/enrolled-courses/stats", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream down"))
	})

	_, err := client.CourseStats(context.Background())
	var httpErr *HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadGateway, httpErr.StatusCode)
	assert.Equal(t, "upstream down", httpErr.Message)
	assert.Contains(t, err.Error(), "server returned status 502")
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestClient_Unavailable(t *testing.T) {
	client := NewClient(testConfig("http://127.0.0.1:1"), testutil.NewMemTokenSource(testutil.ValidToken(t)), NoopObserver{})

	_, err := client.TodayGoals(context.Background())
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestClient_InvalidResponseBody(t *testing.T) {
	client, fake, _ := newTestClient(t)
	fake.Handle(http.MethodGet, "/api/goals/today", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("{not json"))
	})

	_, err := client.TodayGoals(context.Background())
	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestClient_ObserverReceivesEvents(t *testing.T) {
	fake := testutil.NewFakeAPI(t)
	obs := &recordingObserver{}
	client := NewClient(testConfig(fake.URL()), testutil.NewMemTokenSource(testutil.ValidToken(t)), obs)
	fake.JSON(http.MethodGet, "/api/goals/today", http.StatusOK, []domain.Goal{})

	_, err := client.TodayGoals(context.Background())
	require.NoError(t, err)
	_, err = client.CourseStats(context.Background())
	require.Error(t, err)

	require.Len(t, obs.events, 2)
	assert.True(t, obs.events[0].Success)
	assert.Equal(t, http.StatusOK, obs.events[0].StatusCode)
	assert.Equal(t, "/api/goals/today", obs.events[0].Path)
	assert.False(t, obs.events[1].Success)
	assert.Equal(t, "NOT_FOUND", obs.events[1].ErrorCode)
}

func TestLogObserver_Format(t *testing.T) {
	var buf bytes.Buffer
	obs := NewLogObserver(&buf)
	obs.OnCallComplete(CallEvent{Method: "GET", Path: "/api/goals/today", StatusCode: 500, LatencyMs: 12, RequestID: "abc", ErrorCode: "HTTP_500"})

	line := buf.String()
	assert.Contains(t, line, "api_call method=GET path=/api/goals/today http_status=500")
	assert.Contains(t, line, "request_id=abc status=err:HTTP_500")
	assert.True(t, strings.HasSuffix(line, "\n"))
}

func TestClient_CompleteGoalsBody(t *testing.T) {
	client, fake, _ := newTestClient(t)
	fake.JSON(http.MethodPost, "/api/goals/complete", http.StatusOK, nil)

	require.NoError(t, client.CompleteGoals(context.Background(), []int64{5, 9}))

	req, ok := fake.Last(http.MethodPost, "/api/goals/complete")
	require.True(t, ok)
	assert.JSONEq(t, `{"completedGoalIds":[5,9]}`, string(req.Body))
	assert.Equal(t, "application/json", req.Header.Get("Content-Type"))
}

func TestClient_CompleteGoalsRejectsEmptyBatch(t *testing.T) {
	client, fake, _ := newTestClient(t)

	err := client.CompleteGoals(context.Background(), nil)
	assert.ErrorIs(t, err, validate.ErrInvalidInput)
	assert.Empty(t, fake.Requests())
}

func TestClient_UpdateProgressBody(t *testing.T) {
	client, fake, _ := newTestClient(t)
	fake.JSON(http.MethodPut, "/api/enrolled-courses/progress", http.StatusOK, testutil.NewTestCourse(3, "Go"))

	course, err := client.UpdateProgress(context.Background(), domain.ProgressUpdate{
		EnrolledCourseID: 3, ProgressPercentage: 40, AdditionalHoursSpent: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), course.ID)

	req, _ := fake.Last(http.MethodPut, "/api/enrolled-courses/progress")
	assert.JSONEq(t, `{"enrolledCourseId":3,"progressPercentage":40,"additionalHoursSpent":2}`, string(req.Body))
}

func TestClient_CreateGoalValidatesBeforeSending(t *testing.T) {
	client, fake, _ := newTestClient(t)

	_, err := client.CreateGoal(context.Background(), domain.NewGoal{Title: "", AllocatedHours: 1, ResourceType: domain.ResourceVideo})
	assert.ErrorIs(t, err, validate.ErrInvalidInput)
	assert.Empty(t, fake.Requests())
}

func TestClient_CreateGoal(t *testing.T) {
	client, fake, _ := newTestClient(t)
	fake.Handle(http.MethodPost, "/api/goals", func(w http.ResponseWriter, r *http.Request) {
		testutil.WriteJSON(w, http.StatusCreated, domain.Goal{ID: 77, Title: "Watch lecture", AllocatedHours: 1.5, ResourceType: domain.ResourceVideo})
	})

	g, err := client.CreateGoal(context.Background(), domain.NewGoal{
		Title: "Watch lecture", AllocatedHours: 1.5, ResourceType: domain.ResourceVideo,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(77), g.ID)
}

func TestClient_CalendarMonthQuery(t *testing.T) {
	client, fake, _ := newTestClient(t)
	fake.JSON(http.MethodGet, "/api/calendar/month", http.StatusOK, map[string]any{
		"events": map[string]any{
			"2024-03-05": []map[string]any{{"eventDate": "2024-03-05", "title": "Start", "enrolledCourseId": 3}},
		},
	})

	md, err := client.CalendarMonth(context.Background(), 2024, 3)
	require.NoError(t, err)
	assert.Equal(t, 2024, md.Year)
	assert.Equal(t, 3, md.Month)
	require.Len(t, md.Events["2024-03-05"], 1)

	req, _ := fake.Last(http.MethodGet, "/api/calendar/month")
	assert.Equal(t, "month=3&year=2024", req.Query)
}

func TestClient_LeaderboardQueryAndValidation(t *testing.T) {
	client, fake, _ := newTestClient(t)
	fake.JSON(http.MethodGet, "/api/achievements/leaderboard", http.StatusOK, []domain.LeaderboardEntry{{Rank: 1, Username: "ada"}})

	entries, err := client.Leaderboard(context.Background(), domain.PeriodWeekly, 5)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	req, _ := fake.Last(http.MethodGet, "/api/achievements/leaderboard")
	assert.Equal(t, "limit=5&period=WEEKLY", req.Query)

	_, err = client.Leaderboard(context.Background(), "DAILY", 5)
	assert.ErrorIs(t, err, validate.ErrInvalidInput)
	_, err = client.Leaderboard(context.Background(), domain.PeriodMonthly, 0)
	assert.ErrorIs(t, err, validate.ErrInvalidInput)
}

func TestClient_LoginSendsNoToken(t *testing.T) {
	client, fake, tokens := newTestClient(t)
	fake.JSON(http.MethodPost, "/api/auth/login", http.StatusOK, domain.AuthResponse{Token: "jwt", UserID: 1, Username: "ada"})

	resp, err := client.Login(context.Background(), domain.Credentials{Email: "ada@example.com", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, "jwt", resp.Token)

	req, _ := fake.Last(http.MethodPost, "/api/auth/login")
	assert.Empty(t, req.Header.Get("Authorization"))
	assert.Zero(t, tokens.Cleared())
}

func TestClient_LoginRejectedKeepsStoredToken(t *testing.T) {
	client, fake, tokens := newTestClient(t)
	fake.JSON(http.MethodPost, "/api/auth/login", http.StatusUnauthorized, map[string]string{"message": "Bad credentials"})

	_, err := client.Login(context.Background(), domain.Credentials{Email: "ada@example.com", Password: "wrong"})
	assert.ErrorContains(t, err, "Bad credentials")
	assert.Zero(t, tokens.Cleared())
}

func TestClient_LoginWithoutTokenInResponse(t *testing.T) {
	client, fake, _ := newTestClient(t)
	fake.JSON(http.MethodPost, "/api/auth/register", http.StatusOK, map[string]any{"userId": 3})

	_, err := client.Register(context.Background(), domain.Registration{Username: "ada", Email: "ada@example.com", Password: "longenough"})
	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestClient_ReportsAndAchievementEndpoints(t *testing.T) {
	client, fake, _ := newTestClient(t)
	fake.JSON(http.MethodGet, "/api/reports/quick-insights", http.StatusOK, domain.QuickInsights{HoursThisWeek: 6.5})
	fake.JSON(http.MethodGet, "/api/reports/competitive", http.StatusOK, domain.CompetitiveReport{Rank: 4, TotalUsers: 50})
	fake.JSON(http.MethodPost, "/api/achievements/calculate-points", http.StatusOK, domain.PointsResult{PointsAwarded: 20, TotalPoints: 320})
	fake.JSON(http.MethodGet, "/api/course-scores/user-scores", http.StatusOK, []domain.CourseScore{{ID: 1, Score: 8, MaxScore: 10}})

	ctx := context.Background()
	qi, err := client.QuickInsights(ctx)
	require.NoError(t, err)
	assert.Equal(t, 6.5, qi.HoursThisWeek)

	comp, err := client.CompetitiveReport(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, comp.Rank)

	pts, err := client.CalculatePoints(ctx)
	require.NoError(t, err)
	assert.Equal(t, 320, pts.TotalPoints)

	scores, err := client.UserScores(ctx)
	require.NoError(t, err)
	assert.InDelta(t, 80.0, scores[0].Percentage(), 0.001)
}

func TestClient_CancelledContext(t *testing.T) {
	client, fake, _ := newTestClient(t)
	fake.Handle(http.MethodGet, "/api/goals/today", func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err := client.TodayGoals(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
