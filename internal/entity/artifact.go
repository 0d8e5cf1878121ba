package entity

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/google/uuid"

	"github.com/riks17/Document-OCR/constants"
)

// UploadedArtifact is one uploaded file as handed to the pipeline.
// It exists only for the duration of a single run and is never persisted.
type UploadedArtifact struct {
	Bytes        []byte
	MIMEType     string
	DocumentType constants.DocumentType
	OwnerID      uuid.UUID
}

// ContentHashHex returns the SHA-256 of the artifact bytes as lowercase hex.
// The hash is recorded on the persisted result so callers can correlate
// uploads without us keeping the bytes around.
func (a UploadedArtifact) ContentHashHex() string {
	sum := sha256.Sum256(a.Bytes)
	return hex.EncodeToString(sum[:])
}
