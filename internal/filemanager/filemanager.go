// Package filemanager is the filesystem collaborator for uploaded media. It
// keeps the on-disk layout (challenges/<challenge>/<step>/...) in step with
// the datastore but owns no consistency rules of its own.
package filemanager

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/lumenlearn/challenge-api/internal/apierrors"
	"github.com/lumenlearn/challenge-api/internal/models"
)

// FileManager manages media directories under a single base directory.
type FileManager struct {
	baseDir string
	log     *logrus.Logger
}

// New creates a FileManager rooted at baseDir, which must exist.
func New(baseDir string, log *logrus.Logger) (*FileManager, error) {
	abs, err := filepath.Abs(baseDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve data root: %w", err)
	}
	if _, err := os.Stat(abs); err != nil {
		return nil, fmt.Errorf("data root %s is not accessible: %w", abs, err)
	}
	return &FileManager{baseDir: abs, log: log}, nil
}

// BaseDir returns the absolute media root.
func (fm *FileManager) BaseDir() string {
	return fm.baseDir
}

func (fm *FileManager) challengeDir(challengeID string) string {
	return filepath.Join(fm.baseDir, "challenges", challengeID)
}

func (fm *FileManager) stepDir(challengeID, stepID string) string {
	return filepath.Join(fm.challengeDir(challengeID), stepID)
}

// CreateChallengeDir creates the media directory for a new challenge.
func (fm *FileManager) CreateChallengeDir(challengeID string) error {
	dir := fm.challengeDir(challengeID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return apierrors.NewFileManager("Failed to create challenge " + challengeID + " directory")
	}
	fm.log.WithField("dir", dir).Debug("created challenge directory")
	return nil
}

// RemoveChallengeDir deletes a challenge's media directory and everything
// under it.
func (fm *FileManager) RemoveChallengeDir(challengeID string) error {
	dir := fm.challengeDir(challengeID)
	if err := os.RemoveAll(dir); err != nil {
		return apierrors.NewFileManager("Failed to delete challenge " + challengeID + " directory")
	}
	fm.log.WithField("dir", dir).Debug("removed challenge directory")
	return nil
}

// RemoveStepDir deletes one step's media directory.
func (fm *FileManager) RemoveStepDir(challengeID, stepID string) error {
	dir := fm.stepDir(challengeID, stepID)
	if err := os.RemoveAll(dir); err != nil {
		return apierrors.NewFileManager("Failed to delete step " + stepID + " directory")
	}
	return nil
}

// PlaceStepVideo moves an uploaded temp file into place as the step's primary
// video and returns the destination path.
func (fm *FileManager) PlaceStepVideo(challengeID, stepID, tempPath string) (string, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(tempPath), "."))
	if ext != "mp4" {
		return "", apierrors.NewFileManager("Unsupported video type '" + ext + "'")
	}

	dest := filepath.Join(fm.stepDir(challengeID, stepID), "main."+ext)
	if err := fm.moveFile(tempPath, dest); err != nil {
		return "", apierrors.NewFileManager("Failed to move video into new step")
	}
	return dest, nil
}

// PlaceStepResource moves an uploaded temp file into a step's directory under
// the resource id and returns the destination path.
func (fm *FileManager) PlaceStepResource(challengeID, stepID, resourceID, tempPath string) (string, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(tempPath), "."))
	if _, ok := ResourceTypeForExtension(ext); !ok {
		return "", apierrors.NewFileManager("Could not convert " + ext + " into resource type")
	}

	dest := filepath.Join(fm.stepDir(challengeID, stepID), resourceID+"."+ext)
	if err := fm.moveFile(tempPath, dest); err != nil {
		return "", apierrors.NewFileManager("Failed to move resource into step")
	}
	return dest, nil
}

func (fm *FileManager) moveFile(src, dest string) error {
	if _, err := os.Stat(src); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return err
	}
	return os.Rename(src, dest)
}

// RegisterFile builds the handoff record for a media file destined for the
// content-delivery side.
func (fm *FileManager) RegisterFile(path string, fileType models.FileType) models.File {
	return models.File{
		FileID:   uuid.NewString(),
		Path:     path,
		FileType: fileType,
	}
}

// ResourceTypeForExtension maps a file extension to its resource type.
func ResourceTypeForExtension(ext string) (models.ResourceType, bool) {
	switch strings.ToLower(ext) {
	case "mp4", "mov":
		return models.ResourceVideo, true
	case "md":
		return models.ResourceMarkdown, true
	default:
		return "", false
	}
}
