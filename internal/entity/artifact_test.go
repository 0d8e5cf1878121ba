package entity

import "testing"

func TestContentHashHex(t *testing.T) {
	a := UploadedArtifact{Bytes: []byte("hello")}
	b := UploadedArtifact{Bytes: []byte("hello")}
	c := UploadedArtifact{Bytes: []byte("hello!")}

	if a.ContentHashHex() != b.ContentHashHex() {
		t.Error("same bytes produced different hashes")
	}
	if a.ContentHashHex() == c.ContentHashHex() {
		t.Error("different bytes produced the same hash")
	}
	if len(a.ContentHashHex()) != 64 {
		t.Errorf("hash length = %d, want 64 hex chars", len(a.ContentHashHex()))
	}
}
