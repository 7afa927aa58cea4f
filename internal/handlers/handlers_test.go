package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/lumenlearn/challenge-api/internal/datastore"
	"github.com/lumenlearn/challenge-api/internal/dto"
	"github.com/lumenlearn/challenge-api/internal/filemanager"
	"github.com/lumenlearn/challenge-api/internal/middleware"
	"github.com/lumenlearn/challenge-api/internal/repository"
)

const testAdminKey = "admin-test-key"

type handlerTestEnv struct {
	router *gin.Engine
	store  *datastore.DataStore
	files  *filemanager.FileManager
}

// setupHandlerTestEnv wires the full router the way cmd/server does, backed by
// the in-memory repositories and a temp media root.
func setupHandlerTestEnv(t *testing.T) handlerTestEnv {
	t.Helper()

	gin.SetMode(gin.TestMode)

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	store := datastore.New(
		repository.NewMemoryUserRepository(),
		repository.NewMemoryChallengeRepository(),
		repository.NewMemoryStepRepository(),
		logger,
	)

	files, err := filemanager.New(t.TempDir(), logger)
	require.NoError(t, err)

	userHandler := NewUserHandler(store, logger)
	miscHandler := NewMiscHandler(store, logger)
	challengeHandler := NewChallengeHandler(store)
	stepHandler := NewStepHandler(store)
	adminHandler := NewAdminHandler(store, files, logger)

	r := gin.New()
	r.Use(middleware.Recovery(logger))

	r.GET("/", miscHandler.Home)
	r.POST("/benchmark", miscHandler.Benchmark)
	r.POST("/recursiveBenchmark", miscHandler.RecursiveBenchmark)
	r.GET("/checkAuth", miscHandler.CheckAuth)
	r.POST("/user/login", userHandler.Login)
	r.POST("/user/signup", userHandler.Signup)
	r.POST("/util/checkSyntax", miscHandler.CheckSyntax)

	auth := r.Group("/", middleware.RequireLogin(store))
	{
		auth.GET("/util/whoami", miscHandler.Whoami)
		auth.POST("/challenge", challengeHandler.Get)
		auth.POST("/challenge/add", challengeHandler.Add)
		auth.GET("/challenge/list", challengeHandler.List)
		auth.POST("/challenge/progress", challengeHandler.Progress)
		auth.POST("/step/list", stepHandler.List)
		auth.POST("/step/resource/list", stepHandler.ResourceList)
		auth.POST("/step/resource", stepHandler.ResourceGet)
	}

	admin := r.Group("/", middleware.RequireAdmin([]string{testAdminKey}))
	{
		admin.POST("/user/getApiKey", userHandler.GetAPIKey)
		admin.POST("/admin/challenge", adminHandler.ChallengeGet)
		admin.GET("/admin/challenge/list", adminHandler.ChallengeList)
		admin.POST("/admin/challenge/create", adminHandler.ChallengeCreate)
		admin.POST("/admin/challenge/rename", adminHandler.ChallengeRename)
		admin.POST("/admin/challenge/delete", adminHandler.ChallengeDelete)
		admin.POST("/admin/step", adminHandler.StepGet)
		admin.POST("/admin/step/list", adminHandler.StepList)
		admin.POST("/admin/step/create", adminHandler.StepCreate)
		admin.POST("/admin/step/delete", adminHandler.StepDelete)
		admin.POST("/admin/step/reorder", adminHandler.StepReorder)
		admin.POST("/admin/step/resource/add", adminHandler.ResourceAdd)
		admin.POST("/admin/step/resource/delete", adminHandler.ResourceDelete)
	}

	return handlerTestEnv{router: r, store: store, files: files}
}

func (env handlerTestEnv) do(t *testing.T, method, path, apiKey string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var body *bytes.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	} else {
		body = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if apiKey != "" {
		req.Header.Set("Authorization", apiKey)
	}

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

// signup creates an account and returns its DTO (including the api key).
func (env handlerTestEnv) signup(t *testing.T, name, email, password string) dto.UserDTO {
	t.Helper()

	w := env.do(t, http.MethodPost, "/user/signup", "", map[string]string{
		"name":     name,
		"email":    email,
		"password": password,
		"birthday": "1990-04-12",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.SignupResponse
	decode(t, w, &resp)
	require.True(t, resp.Success, "signup failed: %s", resp.Message)
	require.NotNil(t, resp.User)
	return *resp.User
}

// createChallenge creates a challenge through the admin endpoint.
func (env handlerTestEnv) createChallenge(t *testing.T, title string) dto.ChallengeDTO {
	t.Helper()

	w := env.do(t, http.MethodPost, "/admin/challenge/create", testAdminKey, map[string]string{
		"title":       title,
		"description": "A test challenge",
		"coverImage":  "https://cdn.example.com/cover.png",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.ChallengeDTO
	decode(t, w, &resp)
	require.NotEmpty(t, resp.ID)
	return resp
}

// createStep creates a step through the admin endpoint.
func (env handlerTestEnv) createStep(t *testing.T, challengeID, name string) dto.StepDTO {
	t.Helper()

	w := env.do(t, http.MethodPost, "/admin/step/create", testAdminKey, map[string]string{
		"challengeId": challengeID,
		"stepName":    name,
		"videoPath":   "/videos/" + name + ".mp4",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.StepDTO
	decode(t, w, &resp)
	require.NotEmpty(t, resp.ID)
	return resp
}

func TestSignup(t *testing.T) {
	env := setupHandlerTestEnv(t)

	user := env.signup(t, "Ada Lovelace", "ada@example.com", "Password123")
	require.Equal(t, "Ada Lovelace", user.Name)
	require.NotEmpty(t, user.APIKey)
	require.Empty(t, user.Challenges)

	t.Run("duplicate email", func(t *testing.T) {
		w := env.do(t, http.MethodPost, "/user/signup", "", map[string]string{
			"name":     "Ada Again",
			"email":    "ada@example.com",
			"password": "Password456",
			"birthday": "1990-04-12",
		})
		require.Equal(t, http.StatusOK, w.Code)

		var resp dto.SignupResponse
		decode(t, w, &resp)
		require.False(t, resp.Success)
		require.Equal(t, "Email already attached to an account", resp.Message)
		require.Nil(t, resp.User)
	})

	t.Run("bad email syntax", func(t *testing.T) {
		w := env.do(t, http.MethodPost, "/user/signup", "", map[string]string{
			"name":     "No Email",
			"email":    "not-an-email",
			"password": "Password123",
			"birthday": "1990-04-12",
		})
		require.Equal(t, http.StatusOK, w.Code)

		var resp dto.SignupResponse
		decode(t, w, &resp)
		require.False(t, resp.Success)
		require.Equal(t, "Bad email syntax", resp.Message)
	})

	t.Run("bad birthday syntax", func(t *testing.T) {
		w := env.do(t, http.MethodPost, "/user/signup", "", map[string]string{
			"name":     "No Birthday",
			"email":    "nobday@example.com",
			"password": "Password123",
			"birthday": "not a date",
		})
		require.Equal(t, http.StatusOK, w.Code)

		var resp dto.SignupResponse
		decode(t, w, &resp)
		require.False(t, resp.Success)
		require.Equal(t, "Bad birthday syntax", resp.Message)
	})

	t.Run("missing field", func(t *testing.T) {
		w := env.do(t, http.MethodPost, "/user/signup", "", map[string]string{
			"name": "Just A Name",
		})
		require.Equal(t, http.StatusBadRequest, w.Code)

		var resp map[string]interface{}
		decode(t, w, &resp)
		require.Equal(t, "Bad request format for SignupRequest", resp["message"])
		require.Equal(t, "Request Error", resp["error_type"])
	})
}

func TestLogin(t *testing.T) {
	env := setupHandlerTestEnv(t)
	env.signup(t, "Ada Lovelace", "ada@example.com", "Password123")

	t.Run("success", func(t *testing.T) {
		w := env.do(t, http.MethodPost, "/user/login", "", map[string]string{
			"email":    "ada@example.com",
			"password": "Password123",
		})
		require.Equal(t, http.StatusOK, w.Code)

		var resp dto.LoginResponse
		decode(t, w, &resp)
		require.True(t, resp.Success)
		require.NotNil(t, resp.User)
		require.Equal(t, "ada@example.com", resp.User.Email)
	})

	t.Run("unknown email", func(t *testing.T) {
		w := env.do(t, http.MethodPost, "/user/login", "", map[string]string{
			"email":    "nobody@example.com",
			"password": "Password123",
		})
		require.Equal(t, http.StatusBadRequest, w.Code)

		var resp map[string]interface{}
		decode(t, w, &resp)
		require.Equal(t, "No account registered with this email", resp["message"])
	})

	t.Run("wrong password", func(t *testing.T) {
		w := env.do(t, http.MethodPost, "/user/login", "", map[string]string{
			"email":    "ada@example.com",
			"password": "WrongPassword",
		})
		require.Equal(t, http.StatusForbidden, w.Code)

		var resp map[string]interface{}
		decode(t, w, &resp)
		require.Equal(t, "Authentication Error", resp["error_type"])
	})
}

func TestCheckAuth(t *testing.T) {
	env := setupHandlerTestEnv(t)
	user := env.signup(t, "Ada Lovelace", "ada@example.com", "Password123")

	w := env.do(t, http.MethodGet, "/checkAuth", "", nil)
	require.Equal(t, http.StatusForbidden, w.Code)

	w = env.do(t, http.MethodGet, "/checkAuth", "bogus-key", nil)
	require.Equal(t, http.StatusForbidden, w.Code)

	w = env.do(t, http.MethodGet, "/checkAuth", user.APIKey, nil)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestWhoami(t *testing.T) {
	env := setupHandlerTestEnv(t)
	user := env.signup(t, "Ada Lovelace", "ada@example.com", "Password123")

	w := env.do(t, http.MethodGet, "/util/whoami", user.APIKey, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.WhoamiResponse
	decode(t, w, &resp)
	require.NotNil(t, resp.User)
	require.Equal(t, user.ID, resp.User.ID)

	w = env.do(t, http.MethodGet, "/util/whoami", "", nil)
	require.Equal(t, http.StatusForbidden, w.Code)

	var errResp map[string]interface{}
	decode(t, w, &errResp)
	require.Equal(t, "This endpoint requires an api key", errResp["message"])
}

func TestCheckSyntax(t *testing.T) {
	env := setupHandlerTestEnv(t)

	cases := []struct {
		structure string
		content   string
		valid     bool
	}{
		{"email", "ada@example.com", true},
		{"email", "not-an-email", false},
		{"date", "1990-04-12", true},
		{"date", "02-01-2005", true},
		{"date", "not a date", false},
		{"date", "1234-01-01", false},
	}
	for _, tc := range cases {
		w := env.do(t, http.MethodPost, "/util/checkSyntax", "", map[string]string{
			"structure": tc.structure,
			"content":   tc.content,
		})
		require.Equal(t, http.StatusOK, w.Code)

		var resp dto.CheckSyntaxResponse
		decode(t, w, &resp)
		require.Equal(t, tc.valid, resp.ValidSyntax, "%s %q", tc.structure, tc.content)
	}

	w := env.do(t, http.MethodPost, "/util/checkSyntax", "", map[string]string{
		"structure": "phone",
		"content":   "555-0100",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]interface{}
	decode(t, w, &resp)
	require.Equal(t, "No structure phone exists.", resp["message"])
}

func TestBenchmark(t *testing.T) {
	env := setupHandlerTestEnv(t)

	w := env.do(t, http.MethodPost, "/benchmark", "", map[string]string{"anAttribute": "123"})
	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.BenchmarkResponse
	decode(t, w, &resp)
	require.Equal(t, "Success", resp.AnotherAttribute)

	w = env.do(t, http.MethodPost, "/recursiveBenchmark", "", map[string]string{"anAttribute": "123"})
	require.Equal(t, http.StatusOK, w.Code)

	var recursive dto.RecursiveBenchmarkResponse
	decode(t, w, &recursive)
	require.Equal(t, "Success!", recursive.AnotherAttribute)
	require.NotNil(t, recursive.Child)
}

func TestAdminGate(t *testing.T) {
	env := setupHandlerTestEnv(t)
	user := env.signup(t, "Ada Lovelace", "ada@example.com", "Password123")

	w := env.do(t, http.MethodGet, "/admin/challenge/list", user.APIKey, nil)
	require.Equal(t, http.StatusForbidden, w.Code)

	var resp map[string]interface{}
	decode(t, w, &resp)
	require.Equal(t, "User is not an admin", resp["message"])

	w = env.do(t, http.MethodGet, "/admin/challenge/list", testAdminKey, nil)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestGetAPIKey(t *testing.T) {
	env := setupHandlerTestEnv(t)
	user := env.signup(t, "Ada Lovelace", "ada@example.com", "Password123")

	w := env.do(t, http.MethodPost, "/user/getApiKey", testAdminKey, map[string]string{"userId": user.ID})
	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.GetAPIKeyResponse
	decode(t, w, &resp)
	require.Equal(t, user.APIKey, resp.APIKey)

	w = env.do(t, http.MethodPost, "/user/getApiKey", testAdminKey, map[string]string{"userId": "missing"})
	require.Equal(t, http.StatusBadGateway, w.Code)
}

func TestChallengeAccess(t *testing.T) {
	env := setupHandlerTestEnv(t)
	user := env.signup(t, "Ada Lovelace", "ada@example.com", "Password123")
	challenge := env.createChallenge(t, "Robotics")

	// Fetching before attaching is an access failure, not a lookup failure.
	w := env.do(t, http.MethodPost, "/challenge", user.APIKey, map[string]string{"challengeId": challenge.ID})
	require.Equal(t, http.StatusForbidden, w.Code)

	w = env.do(t, http.MethodPost, "/challenge/add", user.APIKey, map[string]string{"challengeId": challenge.ID})
	require.Equal(t, http.StatusOK, w.Code)

	var added dto.ChallengeDTO
	decode(t, w, &added)
	require.Equal(t, challenge.ID, added.ID)

	w = env.do(t, http.MethodPost, "/challenge/add", user.APIKey, map[string]string{"challengeId": challenge.ID})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]interface{}
	decode(t, w, &resp)
	require.Equal(t, "Challenge already added", resp["message"])

	w = env.do(t, http.MethodPost, "/challenge", user.APIKey, map[string]string{"challengeId": challenge.ID})
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodGet, "/challenge/list", user.APIKey, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var list dto.ChallengeListResponse
	decode(t, w, &list)
	require.Len(t, list.Challenges, 1)
	require.Equal(t, challenge.ID, list.Challenges[0].ID)
}

func TestChallengeProgress(t *testing.T) {
	env := setupHandlerTestEnv(t)
	user := env.signup(t, "Ada Lovelace", "ada@example.com", "Password123")
	challenge := env.createChallenge(t, "Robotics")
	step := env.createStep(t, challenge.ID, "wiring")

	w := env.do(t, http.MethodPost, "/challenge/add", user.APIKey, map[string]string{"challengeId": challenge.ID})
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodPost, "/challenge/progress", user.APIKey, map[string]string{
		"challengeId": challenge.ID,
		"currentStep": step.ID,
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodGet, "/util/whoami", user.APIKey, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var who dto.WhoamiResponse
	decode(t, w, &who)
	require.Len(t, who.User.Challenges, 1)
	require.Equal(t, step.ID, who.User.Challenges[0].Progress.CurrentStep)
}

func TestStepEndpoints(t *testing.T) {
	env := setupHandlerTestEnv(t)
	user := env.signup(t, "Ada Lovelace", "ada@example.com", "Password123")
	challenge := env.createChallenge(t, "Robotics")
	step := env.createStep(t, challenge.ID, "wiring")

	w := env.do(t, http.MethodPost, "/admin/step/resource/add", testAdminKey, map[string]string{
		"stepId":       step.ID,
		"prompt":       "Need help?",
		"resourceType": "VIDEO",
		"resourcePath": "/resources/help.mp4",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resource dto.StepResourceDTO
	decode(t, w, &resource)
	require.NotEmpty(t, resource.ResourceID)

	// Step reads require the challenge to be attached to the caller.
	w = env.do(t, http.MethodPost, "/step/list", user.APIKey, map[string]string{"challengeId": challenge.ID})
	require.Equal(t, http.StatusForbidden, w.Code)

	w = env.do(t, http.MethodPost, "/challenge/add", user.APIKey, map[string]string{"challengeId": challenge.ID})
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodPost, "/step/list", user.APIKey, map[string]string{"challengeId": challenge.ID})
	require.Equal(t, http.StatusOK, w.Code)

	var steps dto.StepListResponse
	decode(t, w, &steps)
	require.Len(t, steps.Steps, 1)
	require.Equal(t, step.ID, steps.Steps[0].ID)

	w = env.do(t, http.MethodPost, "/step/resource/list", user.APIKey, map[string]string{"stepId": step.ID})
	require.Equal(t, http.StatusOK, w.Code)

	var resources dto.StepResourceListResponse
	decode(t, w, &resources)
	require.Len(t, resources.Resources, 1)

	w = env.do(t, http.MethodPost, "/step/resource", user.APIKey, map[string]string{
		"stepId":     step.ID,
		"resourceId": resource.ResourceID,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var got dto.StepResourceDTO
	decode(t, w, &got)
	require.Equal(t, "Need help?", got.Prompt)

	w = env.do(t, http.MethodPost, "/step/resource", user.APIKey, map[string]string{
		"stepId":     step.ID,
		"resourceId": "bogus",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var errResp map[string]interface{}
	decode(t, w, &errResp)
	require.Equal(t, "Resource bogus does not belong to step "+step.ID, errResp["message"])
}

func TestAdminStepLifecycle(t *testing.T) {
	env := setupHandlerTestEnv(t)
	challenge := env.createChallenge(t, "Robotics")

	first := env.createStep(t, challenge.ID, "one")
	second := env.createStep(t, challenge.ID, "two")
	third := env.createStep(t, challenge.ID, "three")

	w := env.do(t, http.MethodPost, "/admin/step/reorder", testAdminKey, map[string]interface{}{
		"challengeId": challenge.ID,
		"steps":       []string{third.ID, first.ID, second.ID},
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodPost, "/admin/challenge", testAdminKey, map[string]string{"challengeId": challenge.ID})
	require.Equal(t, http.StatusOK, w.Code)

	var got dto.ChallengeDTO
	decode(t, w, &got)
	require.Equal(t, []string{third.ID, first.ID, second.ID}, got.Steps)

	// Reordering through a sequence that drops a step is rejected.
	w = env.do(t, http.MethodPost, "/admin/step/reorder", testAdminKey, map[string]interface{}{
		"challengeId": challenge.ID,
		"steps":       []string{third.ID, first.ID},
	})
	require.Equal(t, http.StatusBadGateway, w.Code)

	w = env.do(t, http.MethodPost, "/admin/step/delete", testAdminKey, map[string]string{"stepId": first.ID})
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodPost, "/admin/step", testAdminKey, map[string]string{"stepId": first.ID})
	require.Equal(t, http.StatusBadGateway, w.Code)

	w = env.do(t, http.MethodPost, "/admin/challenge", testAdminKey, map[string]string{"challengeId": challenge.ID})
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &got)
	require.Equal(t, []string{third.ID, second.ID}, got.Steps)
}

func TestAdminStepCreateUpload(t *testing.T) {
	env := setupHandlerTestEnv(t)
	challenge := env.createChallenge(t, "Robotics")

	upload := func(t *testing.T, filename string) *httptest.ResponseRecorder {
		t.Helper()

		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		require.NoError(t, mw.WriteField("challengeId", challenge.ID))
		require.NoError(t, mw.WriteField("stepName", "wiring"))
		part, err := mw.CreateFormFile("video", filename)
		require.NoError(t, err)
		_, err = part.Write([]byte("video-bytes"))
		require.NoError(t, err)
		require.NoError(t, mw.Close())

		req := httptest.NewRequest(http.MethodPost, "/admin/step/create", &buf)
		req.Header.Set("Content-Type", mw.FormDataContentType())
		req.Header.Set("Authorization", testAdminKey)

		w := httptest.NewRecorder()
		env.router.ServeHTTP(w, req)
		return w
	}

	w := upload(t, "clip.mp4")
	require.Equal(t, http.StatusOK, w.Code)

	var step dto.StepDTO
	decode(t, w, &step)
	require.NotEmpty(t, step.ID)

	dest := filepath.Join(env.files.BaseDir(), "challenges", challenge.ID, step.ID, "main.mp4")
	require.Equal(t, dest, step.VideoPath)
	_, err := os.Stat(dest)
	require.NoError(t, err)

	// The step landed in the challenge's sequence like any JSON-created one.
	w = env.do(t, http.MethodPost, "/admin/challenge", testAdminKey, map[string]string{"challengeId": challenge.ID})
	require.Equal(t, http.StatusOK, w.Code)

	var got dto.ChallengeDTO
	decode(t, w, &got)
	require.Contains(t, got.Steps, step.ID)

	w = upload(t, "clip.avi")
	require.Equal(t, http.StatusInternalServerError, w.Code)

	var resp map[string]interface{}
	decode(t, w, &resp)
	require.Equal(t, "File Manager Error", resp["error_type"])
}

func TestAdminChallengeLifecycle(t *testing.T) {
	env := setupHandlerTestEnv(t)
	challenge := env.createChallenge(t, "Robotics")
	env.createStep(t, challenge.ID, "one")

	w := env.do(t, http.MethodPost, "/admin/challenge/rename", testAdminKey, map[string]string{
		"challengeId": challenge.ID,
		"title":       "Advanced Robotics",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var renamed dto.ChallengeDTO
	decode(t, w, &renamed)
	require.Equal(t, "Advanced Robotics", renamed.Title)

	w = env.do(t, http.MethodPost, "/admin/challenge/delete", testAdminKey, map[string]string{"challengeId": challenge.ID})
	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.MessageResponse
	decode(t, w, &resp)
	require.Equal(t, "Successfully deleted challenge "+challenge.ID, resp.Message)

	w = env.do(t, http.MethodPost, "/admin/challenge", testAdminKey, map[string]string{"challengeId": challenge.ID})
	require.Equal(t, http.StatusBadGateway, w.Code)
}

func TestBindFailureEnvelope(t *testing.T) {
	env := setupHandlerTestEnv(t)
	user := env.signup(t, "Ada Lovelace", "ada@example.com", "Password123")

	w := env.do(t, http.MethodPost, "/challenge", user.APIKey, map[string]string{})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]interface{}
	decode(t, w, &resp)
	require.Equal(t, "Bad request format for ChallengeRequest", resp["message"])
	require.Equal(t, "Request Error", resp["error_type"])
}
