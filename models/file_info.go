package models

import "time"

// FileInfo describes one file found under a case directory.
type FileInfo struct {
	Name     string    `json:"name"`
	Path     string    `json:"path"` // relative to the case directory
	FullPath string    `json:"full_path"`
	Size     int64     `json:"size"`
	Modified time.Time `json:"modified"`
}
