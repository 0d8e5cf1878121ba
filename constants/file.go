package constants

import "strings"

// Format is the coarse artifact format derived from the declared MIME type.
type Format string

const (
	PDF   Format = "PDF"
	IMAGE Format = "IMAGE"
)

// FileTypes holds the allowed format values stored on processing_result rows.
var FileTypes = []string{string(PDF), string(IMAGE)}

// AllowedMIMETypes maps the declared MIME types we accept to their format.
var AllowedMIMETypes = map[string]Format{
	"application/pdf": PDF,
	"image/png":       IMAGE,
	"image/jpeg":      IMAGE,
}

// NormalizeMIME lowercases a MIME type and strips any parameters
// ("image/png; charset=binary" -> "image/png").
func NormalizeMIME(mime string) string {
	if i := strings.IndexByte(mime, ';'); i >= 0 {
		mime = mime[:i]
	}
	return strings.ToLower(strings.TrimSpace(mime))
}

// MapMIMEToFormat returns the format for a declared MIME type,
// or "" when the type is not supported.
func MapMIMEToFormat(mime string) Format {
	return AllowedMIMETypes[NormalizeMIME(mime)]
}
