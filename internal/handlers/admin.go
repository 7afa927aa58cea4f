package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/lumenlearn/challenge-api/internal/apierrors"
	"github.com/lumenlearn/challenge-api/internal/datastore"
	"github.com/lumenlearn/challenge-api/internal/dto"
	"github.com/lumenlearn/challenge-api/internal/filemanager"
	"github.com/lumenlearn/challenge-api/internal/models"
	"github.com/lumenlearn/challenge-api/internal/utils"
)

// AdminHandler serves the content-management endpoints. Callers are already
// past the admin gate; the handlers here may touch any record.
type AdminHandler struct {
	store *datastore.DataStore
	files *filemanager.FileManager
	log   *logrus.Logger
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(store *datastore.DataStore, files *filemanager.FileManager, log *logrus.Logger) *AdminHandler {
	return &AdminHandler{store: store, files: files, log: log}
}

// ChallengeGet fetches any challenge by id.
func (h *AdminHandler) ChallengeGet(c *gin.Context) {
	var req dto.ChallengeRequest
	if !bindJSON(c, &req, "ChallengeRequest") {
		return
	}

	challenge, err := h.store.ChallengeStrict(c.Request.Context(), req.ChallengeID)
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToChallengeDTO(*challenge))
}

// ChallengeList lists every challenge in catalog order.
func (h *AdminHandler) ChallengeList(c *gin.Context) {
	challenges, err := h.store.ListChallenges(c.Request.Context())
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToChallengeListResponse(challenges))
}

// ChallengeCreate creates a challenge and its media directory.
func (h *AdminHandler) ChallengeCreate(c *gin.Context) {
	var req dto.ChallengeCreateRequest
	if !bindJSON(c, &req, "ChallengeCreateRequest") {
		return
	}

	h.log.WithField("title", req.Title).Info("creating new challenge")

	challenge, err := h.store.CreateChallenge(c.Request.Context(), req.Title, req.Description, req.CoverImage)
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	if err := h.files.CreateChallengeDir(challenge.ID); err != nil {
		apierrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToChallengeDTO(*challenge))
}

// ChallengeRename retitles an existing challenge.
func (h *AdminHandler) ChallengeRename(c *gin.Context) {
	var req dto.ChallengeRenameRequest
	if !bindJSON(c, &req, "ChallengeRenameRequest") {
		return
	}

	challenge, err := h.store.RenameChallenge(c.Request.Context(), req.ChallengeID, req.Title)
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToChallengeDTO(*challenge))
}

// ChallengeDelete removes a challenge, its steps, and its media directory.
// The directory goes first; a filesystem failure leaves the records intact.
func (h *AdminHandler) ChallengeDelete(c *gin.Context) {
	var req dto.ChallengeRequest
	if !bindJSON(c, &req, "ChallengeRequest") {
		return
	}

	if err := h.files.RemoveChallengeDir(req.ChallengeID); err != nil {
		apierrors.Respond(c, err)
		return
	}

	if err := h.store.DeleteChallenge(c.Request.Context(), req.ChallengeID); err != nil {
		apierrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{
		Message: "Successfully deleted challenge " + req.ChallengeID,
	})
}

// StepGet fetches any step by id.
func (h *AdminHandler) StepGet(c *gin.Context) {
	var req dto.StepRequest
	if !bindJSON(c, &req, "StepRequest") {
		return
	}

	step, err := h.store.StepStrict(c.Request.Context(), req.StepID)
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToStepDTO(*step))
}

// StepList lists a challenge's steps in sequence order.
func (h *AdminHandler) StepList(c *gin.Context) {
	var req dto.ChallengeRequest
	if !bindJSON(c, &req, "ChallengeRequest") {
		return
	}

	steps, err := h.store.ListSteps(c.Request.Context(), req.ChallengeID)
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToStepListResponse(steps))
}

// StepCreate appends a new step to a challenge's sequence. A JSON body names
// an already-hosted video path; a multipart body carries the video itself,
// which is moved into the step's media directory.
func (h *AdminHandler) StepCreate(c *gin.Context) {
	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		h.stepCreateUpload(c)
		return
	}

	var req dto.StepCreateRequest
	if !bindJSON(c, &req, "StepCreateRequest") {
		return
	}

	step, err := h.store.CreateStep(c.Request.Context(), req.ChallengeID, req.StepName, req.VideoPath)
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToStepDTO(*step))
}

func (h *AdminHandler) stepCreateUpload(c *gin.Context) {
	challengeID := c.PostForm("challengeId")
	stepName := c.PostForm("stepName")
	upload, err := c.FormFile("video")
	if challengeID == "" || stepName == "" || err != nil {
		apierrors.Respond(c, apierrors.NewRequest("Bad request format for StepCreateRequest"))
		return
	}

	tempPath := filepath.Join(os.TempDir(), utils.NewResourceID()+filepath.Ext(upload.Filename))
	if err := c.SaveUploadedFile(upload, tempPath); err != nil {
		apierrors.Respond(c, apierrors.NewFileManager("Failed to stage uploaded video"))
		return
	}

	step, err := h.store.CreateStep(c.Request.Context(), challengeID, stepName, "PLACEHOLDER")
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	dest, err := h.files.PlaceStepVideo(challengeID, step.ID, tempPath)
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	file := h.files.RegisterFile(dest, models.FileVideoMP4)
	h.log.WithFields(logrus.Fields{
		"step_id": step.ID,
		"file_id": file.FileID,
	}).Info("registered step video")

	step, err = h.store.ModifyStepPath(c.Request.Context(), step.ID, dest)
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToStepDTO(*step))
}

// StepDelete removes a step from its challenge and deletes it, along with its
// media directory.
func (h *AdminHandler) StepDelete(c *gin.Context) {
	var req dto.StepRequest
	if !bindJSON(c, &req, "StepRequest") {
		return
	}

	step, err := h.store.StepStrict(c.Request.Context(), req.StepID)
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	if err := h.store.DeleteStep(c.Request.Context(), req.StepID); err != nil {
		apierrors.Respond(c, err)
		return
	}

	if err := h.files.RemoveStepDir(step.ChallengeID, step.ID); err != nil {
		h.log.WithField("step_id", step.ID).Warn("failed to remove step media directory")
	}

	c.JSON(http.StatusOK, dto.MessageResponse{
		Message: "Successfully deleted step " + req.StepID,
	})
}

// StepReorder replaces a challenge's step sequence with a permutation of the
// current one.
func (h *AdminHandler) StepReorder(c *gin.Context) {
	var req dto.StepReorderRequest
	if !bindJSON(c, &req, "StepReorderRequest") {
		return
	}

	if err := h.store.ReorderChallengeSteps(c.Request.Context(), req.ChallengeID, req.Steps); err != nil {
		apierrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{
		Message: "Successfully reordered challenge " + req.ChallengeID,
	})
}

// ResourceAdd embeds a new help resource in a step.
func (h *AdminHandler) ResourceAdd(c *gin.Context) {
	var req dto.StepResourceAddRequest
	if !bindJSON(c, &req, "StepResourceAddRequest") {
		return
	}

	resource, err := h.store.AddStepResource(c.Request.Context(),
		req.StepID, req.Prompt, req.ResourceType, req.ResourcePath, utils.NewResourceID())
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToStepResourceDTO(*resource))
}

// ResourceDelete removes an embedded resource from a step.
func (h *AdminHandler) ResourceDelete(c *gin.Context) {
	var req dto.StepResourceRequest
	if !bindJSON(c, &req, "StepResourceRequest") {
		return
	}

	if err := h.store.DeleteStepResource(c.Request.Context(), req.StepID, req.ResourceID); err != nil {
		apierrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{
		Message: "Successfully deleted resource " + req.ResourceID,
	})
}
