// Package storage defines the content-root file-system abstraction.
package storage

import "time"

// DocInfo is a lightweight representation returned by list operations.
type DocInfo struct {
	Path      string    `json:"path"`
	Checksum  string    `json:"checksum"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Provider is the interface for content file operations.
type Provider interface {
	// List returns metadata for every .md file under dir (relative to the content root).
	List(dir string) ([]DocInfo, error)
	// Read returns the raw bytes of the file at path (relative to the content root).
	Read(path string) ([]byte, error)
	// Write atomically writes content to path (relative to the content root).
	Write(path string, content []byte) error
	// Delete removes the file at path (relative to the content root).
	Delete(path string) error
	// Move renames oldPath to newPath (both relative to the content root).
	Move(oldPath, newPath string) error
}
