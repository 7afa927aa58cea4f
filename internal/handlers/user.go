package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/lumenlearn/challenge-api/internal/apierrors"
	"github.com/lumenlearn/challenge-api/internal/datastore"
	"github.com/lumenlearn/challenge-api/internal/dto"
	"github.com/lumenlearn/challenge-api/internal/utils"
)

// UserHandler coordinates account-related HTTP handlers.
type UserHandler struct {
	store *datastore.DataStore
	log   *logrus.Logger
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(store *datastore.DataStore, log *logrus.Logger) *UserHandler {
	return &UserHandler{store: store, log: log}
}

// Login verifies credentials and returns the account record. Unknown emails
// are a request error, a wrong password an authentication error.
func (h *UserHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindJSON(c, &req, "LoginRequest") {
		return
	}

	h.log.WithField("email", req.Email).Info("got login request")

	if !utils.EmailSyntax(req.Email) {
		apierrors.Respond(c, apierrors.NewRequest("Invalid email"))
		return
	}

	user, err := h.store.UserByEmail(c.Request.Context(), req.Email)
	if errors.Is(err, datastore.ErrNotFound) {
		apierrors.Respond(c, apierrors.NewRequest("No account registered with this email"))
		return
	}
	if err != nil {
		apierrors.Respond(c, apierrors.NewDatabase("Failed to look up account", "login", err))
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		apierrors.Respond(c, apierrors.NewAuthentication("Invalid password for "+user.ID))
		return
	}

	userDTO := dto.ToUserDTO(*user)
	c.JSON(http.StatusOK, dto.LoginResponse{
		Success: true,
		Message: "",
		User:    &userDTO,
	})
}

// Signup creates a new account. Syntax problems and duplicate emails come back
// as business failures with Success=false, not as taxonomy errors.
func (h *UserHandler) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if !bindJSON(c, &req, "SignupRequest") {
		return
	}

	if !utils.DateSyntax(req.Birthday) {
		c.JSON(http.StatusOK, dto.SignupResponse{Message: "Bad birthday syntax"})
		return
	}
	birthday, err := utils.NormalizeDate(req.Birthday)
	if err != nil {
		c.JSON(http.StatusOK, dto.SignupResponse{Message: "Bad birthday syntax"})
		return
	}

	if !utils.EmailSyntax(req.Email) {
		c.JSON(http.StatusOK, dto.SignupResponse{Message: "Bad email syntax"})
		return
	}

	h.log.WithFields(logrus.Fields{
		"name":  req.Name,
		"email": req.Email,
	}).Info("got signup request")

	_, err = h.store.UserByEmail(c.Request.Context(), req.Email)
	if err == nil {
		c.JSON(http.StatusOK, dto.SignupResponse{Message: "Email already attached to an account"})
		return
	}
	if !errors.Is(err, datastore.ErrNotFound) {
		apierrors.Respond(c, apierrors.NewDatabase("Failed to check for existing account", "signup", err))
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		apierrors.Respond(c, apierrors.NewInternal("Failed to hash password", "signup", err))
		return
	}

	user, err := h.store.CreateUser(c.Request.Context(), req.Name, req.Email, birthday, string(hash), utils.NewAPIKey())
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	userDTO := dto.ToUserDTO(*user)
	c.JSON(http.StatusOK, dto.SignupResponse{
		Success: true,
		Message: "Successfully created new user",
		User:    &userDTO,
	})
}

// GetAPIKey returns a user's api key by user id. Admin only.
func (h *UserHandler) GetAPIKey(c *gin.Context) {
	var req dto.UserRequest
	if !bindJSON(c, &req, "UserRequest") {
		return
	}

	user, err := h.store.UserStrict(c.Request.Context(), req.UserID)
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.GetAPIKeyResponse{
		APIKey:  user.APIKey,
		Message: "Successfully found api key",
	})
}
