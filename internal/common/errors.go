package common

import "errors"

// Artifact errors abort the run before any page work happens.
var (
	ErrUnsupportedFormat = errors.New("unsupported artifact format")
	ErrCorruptArtifact   = errors.New("corrupt artifact")
	ErrArtifactTooLarge  = errors.New("artifact too large")
)

// Engine errors are page-scoped; a failing page never aborts its siblings.
// Unavailable and timeout are retryable, a rejection is not.
var (
	ErrEngineUnavailable = errors.New("ocr engine unavailable")
	ErrEngineTimeout     = errors.New("ocr engine timeout")
	ErrEngineRejected    = errors.New("ocr engine rejected page")
)

// Extraction and storage errors.
var (
	ErrExtractionFailed   = errors.New("field extraction failed")
	ErrStorageUnavailable = errors.New("result storage unavailable")
)

// ErrUnauthorized is returned when a pipeline is invoked without a resolved
// AuthContext. Credential validation itself is the caller's job.
var ErrUnauthorized = errors.New("unauthorized")

// IsArtifactError reports whether err is a fatal artifact-level error.
func IsArtifactError(err error) bool {
	return errors.Is(err, ErrUnsupportedFormat) ||
		errors.Is(err, ErrCorruptArtifact) ||
		errors.Is(err, ErrArtifactTooLarge)
}

// IsRetryableEngineError reports whether a page OCR failure is worth retrying.
func IsRetryableEngineError(err error) bool {
	return errors.Is(err, ErrEngineUnavailable) || errors.Is(err, ErrEngineTimeout)
}
