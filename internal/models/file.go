package models

// FileType declares the content kind of an uploaded file.
type FileType string

const (
	FileVideoMP4 FileType = "VideoMP4"
)

// File is an ephemeral handoff record mapping a generated id to a filesystem
// path for the content-delivery side. It is not owned by the datastore's
// consistency rules.
type File struct {
	FileID   string   `json:"fileId"`
	Path     string   `json:"filepath"`
	FileType FileType `json:"filetype"`
}
