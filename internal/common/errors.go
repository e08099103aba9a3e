package common

import (
	"errors"
	"fmt"
	"strings"
)

// Business logic errors
var (
	// Validation errors
	ErrInvalidInput = errors.New("invalid input")

	// Lookup errors
	ErrUserNotFound     = errors.New("user not found")
	ErrPhotoNotFound    = errors.New("photo not found")
	ErrInterestNotFound = errors.New("interest not found")

	// Conflict errors
	ErrInterestExists = errors.New("interest already exists")

	// I/O errors
	ErrFileSave = errors.New("failed to save file")
)

// PartialUploadError is returned by batch photo uploads when some files were
// saved and some failed. The saved records are committed; callers decide how
// to treat the partial result.
type PartialUploadError struct {
	FailedFiles []string
	SavedCount  int
}

func (e *PartialUploadError) Error() string {
	return fmt.Sprintf("saved %d photos, failed to save: %s",
		e.SavedCount, strings.Join(e.FailedFiles, ", "))
}
