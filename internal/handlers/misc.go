package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/lumenlearn/challenge-api/internal/apierrors"
	"github.com/lumenlearn/challenge-api/internal/datastore"
	"github.com/lumenlearn/challenge-api/internal/dto"
	"github.com/lumenlearn/challenge-api/internal/middleware"
	"github.com/lumenlearn/challenge-api/internal/utils"
)

// MiscHandler holds the landing page, benchmark, and utility endpoints.
type MiscHandler struct {
	store *datastore.DataStore
	log   *logrus.Logger
}

// NewMiscHandler creates a new MiscHandler.
func NewMiscHandler(store *datastore.DataStore, log *logrus.Logger) *MiscHandler {
	return &MiscHandler{store: store, log: log}
}

// Home is the page shown to anyone who navigates to the api host directly.
func (h *MiscHandler) Home(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8",
		[]byte(`<h1>LumenLearn API</h1><a href="https://lumenlearn.io/">If you're lost, click here</a>`))
}

// Benchmark echoes a canned response; used for wire-format testing.
func (h *MiscHandler) Benchmark(c *gin.Context) {
	var req dto.BenchmarkRequest
	if !bindJSON(c, &req, "BenchmarkRequest") {
		return
	}

	h.log.WithField("an_attribute", req.AnAttribute).Debug("got benchmark request")
	c.JSON(http.StatusOK, dto.BenchmarkResponse{AnotherAttribute: "Success"})
}

// RecursiveBenchmark exercises nested record serialization.
func (h *MiscHandler) RecursiveBenchmark(c *gin.Context) {
	var req dto.BenchmarkRequest
	if !bindJSON(c, &req, "BenchmarkRequest") {
		return
	}

	c.JSON(http.StatusOK, dto.RecursiveBenchmarkResponse{
		AnotherAttribute: "Success!",
		Child:            &dto.BenchmarkRequest{},
	})
}

// CheckSyntax reports whether content matches a named structure.
func (h *MiscHandler) CheckSyntax(c *gin.Context) {
	var req dto.CheckSyntaxRequest
	if !bindJSON(c, &req, "CheckSyntaxRequest") {
		return
	}

	var valid bool
	switch req.Structure {
	case "date":
		valid = utils.DateSyntax(req.Content)
	case "email":
		valid = utils.EmailSyntax(req.Content)
	default:
		apierrors.Respond(c, apierrors.NewRequest("No structure "+req.Structure+" exists."))
		return
	}

	c.JSON(http.StatusOK, dto.CheckSyntaxResponse{ValidSyntax: valid})
}

// CheckAuth is the nginx auth_request endpoint: bare 200 when the api key
// resolves to a user, bare 403 otherwise.
func (h *MiscHandler) CheckAuth(c *gin.Context) {
	apiKey := middleware.APIKey(c)
	if apiKey == "" {
		h.log.Debug("checkAuth with no api key; rejecting")
		c.Status(http.StatusForbidden)
		return
	}

	user, err := h.store.UserByKey(c.Request.Context(), apiKey)
	if err != nil {
		h.log.Warn("checkAuth api key not attached to any user")
		c.Status(http.StatusForbidden)
		return
	}

	h.log.WithField("user_id", user.ID).Debug("authenticated private request")
	c.Status(http.StatusOK)
}

// Whoami identifies the caller from their api key.
func (h *MiscHandler) Whoami(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		apierrors.Respond(c, apierrors.NewAuthentication("This endpoint requires login"))
		return
	}

	userDTO := dto.ToUserDTO(*user)
	c.JSON(http.StatusOK, dto.WhoamiResponse{
		User:    &userDTO,
		Message: "Successfully identified user",
	})
}
