// Package storage defines the page directory abstraction.
package storage

import "time"

// FileMeta describes one page file.
type FileMeta struct {
	Path      string    `json:"path"`
	Checksum  string    `json:"checksum"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Provider is the interface for page directory operations.
type Provider interface {
	// List returns metadata for every page file under dir (relative to root).
	List(dir string) ([]FileMeta, error)
	// Read returns the raw bytes of the file at path (relative to root).
	Read(path string) ([]byte, error)
	// Write atomically writes content to path (relative to root).
	Write(path string, content []byte) error
}

// IsPageFile reports whether name carries a page file extension.
func IsPageFile(name string) bool {
	return hasSuffixFold(name, ".yaml") || hasSuffixFold(name, ".yml")
}
