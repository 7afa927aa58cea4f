package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lumenlearn/challenge-api/internal/apierrors"
	"github.com/lumenlearn/challenge-api/internal/datastore"
	"github.com/lumenlearn/challenge-api/internal/dto"
	"github.com/lumenlearn/challenge-api/internal/middleware"
)

// ChallengeHandler serves the user-facing challenge endpoints. Every read is
// gated on the challenge being attached to the caller's account.
type ChallengeHandler struct {
	store *datastore.DataStore
}

// NewChallengeHandler creates a new ChallengeHandler.
func NewChallengeHandler(store *datastore.DataStore) *ChallengeHandler {
	return &ChallengeHandler{store: store}
}

// Get fetches one of the caller's attached challenges.
func (h *ChallengeHandler) Get(c *gin.Context) {
	var req dto.ChallengeRequest
	if !bindJSON(c, &req, "ChallengeRequest") {
		return
	}

	user, _ := middleware.CurrentUser(c)
	if !user.HasChallenge(req.ChallengeID) {
		apierrors.Respond(c, apierrors.NewAuthentication("User does not have access to challenge"))
		return
	}

	challenge, err := h.store.ChallengeStrict(c.Request.Context(), req.ChallengeID)
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToChallengeDTO(*challenge))
}

// Add attaches a challenge to the caller's account and returns it.
func (h *ChallengeHandler) Add(c *gin.Context) {
	var req dto.ChallengeRequest
	if !bindJSON(c, &req, "ChallengeRequest") {
		return
	}

	user, _ := middleware.CurrentUser(c)
	if user.HasChallenge(req.ChallengeID) {
		apierrors.Respond(c, apierrors.NewRequest("Challenge already added"))
		return
	}

	challenge, err := h.store.ChallengeStrict(c.Request.Context(), req.ChallengeID)
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	if err := h.store.AttachChallenge(c.Request.Context(), user.ID, challenge.ID); err != nil {
		if errors.Is(err, datastore.ErrChallengeAttached) {
			apierrors.Respond(c, apierrors.NewRequest("Challenge already added"))
			return
		}
		apierrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToChallengeDTO(*challenge))
}

// List returns the challenges attached to the caller's account.
func (h *ChallengeHandler) List(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	challenges := make([]dto.ChallengeDTO, 0, len(user.Challenges))
	for _, ac := range user.Challenges {
		challenge, err := h.store.ChallengeStrict(c.Request.Context(), ac.ChallengeID)
		if err != nil {
			apierrors.Respond(c, err)
			return
		}
		challenges = append(challenges, dto.ToChallengeDTO(*challenge))
	}

	c.JSON(http.StatusOK, dto.ChallengeListResponse{Challenges: challenges})
}

// Progress moves the caller's current-step pointer on an attached challenge.
func (h *ChallengeHandler) Progress(c *gin.Context) {
	var req dto.ProgressUpdateRequest
	if !bindJSON(c, &req, "ProgressUpdateRequest") {
		return
	}

	user, _ := middleware.CurrentUser(c)
	if !user.HasChallenge(req.ChallengeID) {
		apierrors.Respond(c, apierrors.NewAuthentication("User does not have access to challenge"))
		return
	}

	if err := h.store.UpdateProgress(c.Request.Context(), user.ID, req.ChallengeID, req.CurrentStep); err != nil {
		apierrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Successfully updated progress"})
}
