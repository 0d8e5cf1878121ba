package constants

// DocumentType is the caller-declared type of an uploaded document.
type DocumentType string

const (
	NationalID DocumentType = "NATIONAL_ID"
	Passport   DocumentType = "PASSPORT"
	VoterID    DocumentType = "VOTER_ID"
	Generic    DocumentType = "GENERIC"
)

var allDocumentTypes = []DocumentType{
	NationalID,
	Passport,
	VoterID,
	Generic,
}

// DocumentTypeStrings returns the declared types as strings, for schema
// validators and enum checks.
func DocumentTypeStrings() []string {
	result := make([]string, len(allDocumentTypes))
	for i, dt := range allDocumentTypes {
		result[i] = string(dt)
	}
	return result
}

// IsValidDocumentType reports whether s names a known document type.
func IsValidDocumentType(s string) bool {
	for _, dt := range allDocumentTypes {
		if string(dt) == s {
			return true
		}
	}
	return false
}
