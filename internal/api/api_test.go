package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"github.com/asaskevich/EventBus"
	"github.com/gin-gonic/gin"
	"github.com/maxaizer/careerboost/internal/auth"
	"github.com/maxaizer/careerboost/internal/config"
	"github.com/maxaizer/careerboost/internal/matching"
	"github.com/maxaizer/careerboost/internal/repositories"
	"github.com/maxaizer/careerboost/internal/services"
	"github.com/maxaizer/careerboost/internal/skills"
	"github.com/spf13/cast"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
	Message string          `json:"message"`
}

type testServer struct {
	t      *testing.T
	router *gin.Engine
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dbCtx, err := repositories.NewDbContext(config.DBConfig{
		Driver:           config.DriverSQLite,
		ConnectionString: filepath.Join(t.TempDir(), "api.db"),
	})
	require.NoError(t, err)
	require.NoError(t, dbCtx.Migrate())
	t.Cleanup(func() { _ = dbCtx.Close() })

	bus := EventBus.New()
	jobRepo := repositories.NewJobsRepository(dbCtx.DB)
	notifications := services.NewNotifications(repositories.NewNotificationsRepository(dbCtx.DB), bus, 50)

	router := NewRouter(config.HTTPConfig{AllowedOrigins: []string{"http://localhost:5173"}, MaxBodyBytes: 1 << 20},
		Services{
			Accounts: services.NewAccounts(repositories.NewUsersRepository(dbCtx.DB),
				auth.NewGuard("a-secret-of-sufficient-length", time.Hour)),
			Applications: services.NewApplications(jobRepo, repositories.NewApplicationsRepository(dbCtx.DB),
				notifications, bus),
			Notifications:   notifications,
			Jobs:            services.NewJobs(jobRepo, skills.NewNormalizer(0)),
			Profiles:        services.NewProfiles(repositories.NewProfilesRepository(dbCtx.DB), skills.NewNormalizer(30)),
			CompanyProfiles: services.NewCompanyProfiles(repositories.NewCompanyProfilesRepository(dbCtx.DB)),
			Skills:          services.NewSkillCatalog(repositories.NewSkillsRepository(dbCtx.DB)),
			Bio:             services.NewBioService(nil, nil, time.Minute),
			Matching:        matching.NewEngine(5),
		})

	return &testServer{t: t, router: router}
}

func (s *testServer) do(method, path, token string, body any) (int, envelope) {
	s.t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(s.t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	var env envelope
	_ = json.Unmarshal(rec.Body.Bytes(), &env)
	return rec.Code, env
}

func (s *testServer) register(email, role string) string {
	s.t.Helper()

	code, env := s.do(http.MethodPost, "/api/auth/register", "", gin.H{
		"username": email, "email": email, "password": "secret1", "role": role,
	})
	require.Equal(s.t, http.StatusCreated, code, env.Message)

	var result struct {
		Token string `json:"token"`
	}
	require.NoError(s.t, json.Unmarshal(env.Data, &result))
	return result.Token
}

func dataID(t *testing.T, env envelope) uint {
	t.Helper()

	var data map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &data))
	return cast.ToUint(data["id"])
}

func Test_Health(t *testing.T) {
	code, _ := newTestServer(t).do(http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, code)
}

func Test_ProtectedRoute_WithoutToken_ShouldReturnUnauthorized(t *testing.T) {
	s := newTestServer(t)

	code, env := s.do(http.MethodGet, "/api/notifications", "", nil)
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "Unauthorized", env.Error)

	code, _ = s.do(http.MethodGet, "/api/notifications", "bogus", nil)
	assert.Equal(t, http.StatusUnauthorized, code)
}

func Test_ApplicationFlow(t *testing.T) {
	s := newTestServer(t)
	recruiter := s.register("recruiter@test.io", "recruiter")
	candidate := s.register("candidate@test.io", "candidate")

	code, env := s.do(http.MethodPost, "/api/jobs", recruiter, gin.H{
		"title": "Go developer", "company": "Acme", "description": "Build APIs",
		"requiredSkills": []string{"Go", "SQL"},
	})
	require.Equal(t, http.StatusCreated, code, env.Message)
	jobID := dataID(t, env)

	code, env = s.do(http.MethodPost, "/api/applications", candidate, gin.H{"jobId": jobID})
	require.Equal(t, http.StatusCreated, code, env.Message)
	applicationID := dataID(t, env)

	code, env = s.do(http.MethodPost, "/api/applications", candidate, gin.H{"jobId": jobID})
	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, "Conflict", env.Error)

	code, env = s.do(http.MethodGet, "/api/notifications/unread-count", recruiter, nil)
	require.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `{"count":1}`, string(env.Data))

	other := s.register("other@test.io", "recruiter")
	code, _ = s.do(http.MethodGet, fmt.Sprintf("/api/applications/job/%d", jobID), other, nil)
	assert.Equal(t, http.StatusForbidden, code)

	code, env = s.do(http.MethodPatch, fmt.Sprintf("/api/applications/%d/status", applicationID), recruiter,
		gin.H{"status": "hired"})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "InvalidInput", env.Error)

	code, env = s.do(http.MethodPatch, fmt.Sprintf("/api/applications/%d/status", applicationID), recruiter,
		gin.H{"status": "accepted"})
	require.Equal(t, http.StatusOK, code, env.Message)

	code, env = s.do(http.MethodGet, "/api/notifications?limit=10", candidate, nil)
	require.Equal(t, http.StatusOK, code)
	var feed []map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &feed))
	require.Len(t, feed, 1)
	assert.Equal(t, "APPLICATION_STATUS", feed[0]["type"])
	assert.Equal(t, `Your application for "Go developer" is now "accepted"`, feed[0]["message"])

	code, env = s.do(http.MethodGet, "/api/notifications/unread-count", recruiter, nil)
	require.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `{"count":0}`, string(env.Data))

	code, _ = s.do(http.MethodPatch, "/api/notifications/read-all", recruiter, nil)
	assert.Equal(t, http.StatusOK, code)

	code, _ = s.do(http.MethodDelete, fmt.Sprintf("/api/applications/%d", applicationID), candidate, nil)
	assert.Equal(t, http.StatusOK, code)
}

func Test_Match(t *testing.T) {
	s := newTestServer(t)
	token := s.register("candidate@test.io", "")

	code, env := s.do(http.MethodPost, "/api/ai/match", token, gin.H{
		"profileSkills": []string{"react", "Node"},
		"jobSkills":     []string{"React", "node", "Docker"},
	})
	require.Equal(t, http.StatusOK, code)
	var result matching.Result
	require.NoError(t, json.Unmarshal(env.Data, &result))
	assert.Equal(t, 67, result.MatchPercent)
	assert.Equal(t, []string{"docker"}, result.MissingSkills)

	code, env = s.do(http.MethodPost, "/api/ai/match", token, `{"profileSkills":"go","jobSkills":[]}`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "InvalidInput", env.Error)

	code, _ = s.do(http.MethodPost, "/api/ai/match", token, gin.H{"jobSkills": []string{"go"}})
	assert.Equal(t, http.StatusBadRequest, code)

	code, env = s.do(http.MethodPost, "/api/ai/match", token, `{"profileSkills":[],"jobSkills":[]}`)
	require.Equal(t, http.StatusOK, code)
	require.NoError(t, json.Unmarshal(env.Data, &result))
	assert.Equal(t, 0, result.MatchPercent)
}

func Test_GenerateBio_WithoutProvider_ShouldUseFallback(t *testing.T) {
	s := newTestServer(t)
	token := s.register("candidate@test.io", "")

	code, env := s.do(http.MethodPost, "/api/ai/generate-bio", token, gin.H{
		"fullName": "Ann", "title": "Dev", "skills": []string{"Go"},
	})
	require.Equal(t, http.StatusOK, code, env.Message)
	var bio services.Bio
	require.NoError(t, json.Unmarshal(env.Data, &bio))
	assert.Equal(t, services.BioSourceFallback, bio.Source)

	code, _ = s.do(http.MethodPost, "/api/ai/generate-bio", token, gin.H{"fullName": "Ann"})
	assert.Equal(t, http.StatusBadRequest, code)
}

func Test_PathID_WhenInvalid_ShouldReturnBadRequest(t *testing.T) {
	code, env := newTestServer(t).do(http.MethodGet, "/api/jobs/abc", "", nil)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "InvalidInput", env.Error)
}

func Test_UnknownRoute_ShouldReturnNotFound(t *testing.T) {
	code, env := newTestServer(t).do(http.MethodGet, "/api/nothing", "", nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "NotFound", env.Error)
}

func Test_SaveProfileAndJob_ShouldCoerceLooseSkillElements(t *testing.T) {
	s := newTestServer(t)
	candidate := s.register("candidate@test.io", "candidate")
	recruiter := s.register("recruiter@test.io", "recruiter")

	code, env := s.do(http.MethodPost, "/api/profiles", candidate,
		`{"fullName":"Ann","skills":["Go",5,null," go "]}`)
	require.Equal(t, http.StatusCreated, code, env.Message)

	var profile struct {
		Skills []string `json:"skills"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &profile))
	assert.Equal(t, []string{"Go", "5"}, profile.Skills)

	code, env = s.do(http.MethodPut, "/api/profiles/me", candidate, `{"skills":[true,"Rust",1.5]}`)
	require.Equal(t, http.StatusOK, code, env.Message)
	require.NoError(t, json.Unmarshal(env.Data, &profile))
	assert.Equal(t, []string{"true", "Rust", "1.5"}, profile.Skills)

	code, env = s.do(http.MethodPost, "/api/jobs", recruiter,
		`{"title":"Dev","company":"Acme","description":"Build","requiredSkills":["Go",3]}`)
	require.Equal(t, http.StatusCreated, code, env.Message)

	var job struct {
		RequiredSkills []string `json:"requiredSkills"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &job))
	assert.Equal(t, []string{"Go", "3"}, job.RequiredSkills)
}

func Test_ListNotifications_ShouldParseLimitAsDecimal(t *testing.T) {
	s := newTestServer(t)
	recruiter := s.register("recruiter@test.io", "recruiter")
	candidate := s.register("candidate@test.io", "candidate")

	for i := 0; i < 10; i++ {
		code, env := s.do(http.MethodPost, "/api/jobs", recruiter, gin.H{
			"title": fmt.Sprintf("Job %d", i), "company": "Acme", "description": "Build",
		})
		require.Equal(t, http.StatusCreated, code, env.Message)

		code, env = s.do(http.MethodPost, "/api/applications", candidate, gin.H{"jobId": dataID(t, env)})
		require.Equal(t, http.StatusCreated, code, env.Message)
	}

	count := func(query string) int {
		code, env := s.do(http.MethodGet, "/api/notifications"+query, recruiter, nil)
		require.Equal(t, http.StatusOK, code, env.Message)
		var feed []map[string]any
		require.NoError(t, json.Unmarshal(env.Data, &feed))
		return len(feed)
	}

	assert.Equal(t, 10, count("?limit=010"))
	assert.Equal(t, 10, count("?limit=0x3"))
	assert.Equal(t, 4, count("?limit=4"))
	assert.Equal(t, 10, count("?limit=abc"))
}
