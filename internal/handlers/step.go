package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lumenlearn/challenge-api/internal/apierrors"
	"github.com/lumenlearn/challenge-api/internal/datastore"
	"github.com/lumenlearn/challenge-api/internal/dto"
	"github.com/lumenlearn/challenge-api/internal/middleware"
)

// StepHandler serves the user-facing step endpoints.
type StepHandler struct {
	store *datastore.DataStore
}

// NewStepHandler creates a new StepHandler.
func NewStepHandler(store *datastore.DataStore) *StepHandler {
	return &StepHandler{store: store}
}

// List returns the steps of an attached challenge in sequence order.
func (h *StepHandler) List(c *gin.Context) {
	var req dto.ChallengeRequest
	if !bindJSON(c, &req, "ChallengeRequest") {
		return
	}

	user, _ := middleware.CurrentUser(c)
	if !user.HasChallenge(req.ChallengeID) {
		apierrors.Respond(c, apierrors.NewAuthentication("User does not have access to challenge"))
		return
	}

	steps, err := h.store.ListSteps(c.Request.Context(), req.ChallengeID)
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToStepListResponse(steps))
}

// ResourceList returns the help resources embedded in a step.
func (h *StepHandler) ResourceList(c *gin.Context) {
	var req dto.StepRequest
	if !bindJSON(c, &req, "StepRequest") {
		return
	}

	step, err := h.store.StepStrict(c.Request.Context(), req.StepID)
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	user, _ := middleware.CurrentUser(c)
	if !user.HasChallenge(step.ChallengeID) {
		apierrors.Respond(c, apierrors.NewAuthentication("User does not have access to step "+step.ID))
		return
	}

	c.JSON(http.StatusOK, dto.ToStepResourceListResponse(step.HelpResources))
}

// ResourceGet returns a single embedded resource.
func (h *StepHandler) ResourceGet(c *gin.Context) {
	var req dto.StepResourceRequest
	if !bindJSON(c, &req, "StepResourceRequest") {
		return
	}

	step, err := h.store.StepStrict(c.Request.Context(), req.StepID)
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	resource := step.Resource(req.ResourceID)
	if resource == nil {
		apierrors.Respond(c, apierrors.NewRequest(
			"Resource "+req.ResourceID+" does not belong to step "+req.StepID))
		return
	}

	user, _ := middleware.CurrentUser(c)
	if !user.HasChallenge(step.ChallengeID) {
		apierrors.Respond(c, apierrors.NewAuthentication("User does not have access to step "+req.StepID))
		return
	}

	c.JSON(http.StatusOK, dto.ToStepResourceDTO(*resource))
}
