package extract

import (
	"regexp"
	"strings"
)

// Character confusion maps for OCR output. numericCorrections repairs a
// character that should have been a digit; alphaCorrections the reverse.
var numericCorrections = map[byte]byte{
	'O': '0', 'I': '1', 'Z': '2', 'A': '4', 'S': '5', 'B': '8', 'G': '6',
}

var alphaCorrections = func() map[byte]byte {
	m := make(map[byte]byte, len(numericCorrections))
	for a, n := range numericCorrections {
		if a == 'I' {
			continue // '1' -> 'I' causes more harm than good
		}
		m[n] = a
	}
	return m
}()

var (
	reNonID      = regexp.MustCompile(`[^A-Z0-9$/]`)
	reNonName    = regexp.MustCompile(`[^a-zA-Z\s]`)
	reSpaces     = regexp.MustCompile(`\s+`)
	reDateFormat = regexp.MustCompile(`^\d{2}/\d{2}/\d{4}$`)
)

// CleanIDText uppercases and strips everything but letters, digits, '$' and '/'.
func CleanIDText(s string) string {
	return reNonID.ReplaceAllString(strings.ToUpper(s), "")
}

// CleanNameField keeps letters and single spaces only.
func CleanNameField(s string) string {
	s = reNonName.ReplaceAllString(s, "")
	return strings.TrimSpace(reSpaces.ReplaceAllString(s, " "))
}

// IsValidDateFormat reports whether s strictly matches DD/MM/YYYY.
func IsValidDateFormat(s string) bool {
	return reDateFormat.MatchString(strings.TrimSpace(s))
}

// CorrectDateString repairs specific, common OCR digit errors in a
// DD/MM/YYYY date string: a leading 4/9/6 in the day slot reads as 1/2/0,
// a leading 4 in the month slot as 1, and a leading 4/7/9 in the year as 1/1/2.
func CorrectDateString(s string) string {
	if strings.Count(s, "/") != 2 {
		return s
	}
	parts := strings.Split(strings.TrimSpace(s), "/")
	if len(parts) != 3 {
		return s
	}
	day, month, year := parts[0], parts[1], parts[2]
	if len(day) == 2 {
		switch day[0] {
		case '4':
			day = "1" + day[1:]
		case '9':
			day = "2" + day[1:]
		case '6':
			day = "0" + day[1:]
		}
	}
	if len(month) == 2 && month[0] == '4' && strings.ContainsRune("012", rune(month[1])) {
		month = "1" + month[1:]
	}
	if len(year) == 4 {
		switch year[0] {
		case '4', '7':
			year = "1" + year[1:]
		case '9':
			year = "2" + year[1:]
		}
	}
	return day + "/" + month + "/" + year
}

// CorrectToLayout repairs confusable characters position by position.
// The layout string uses 'A' where the format expects a letter and 'N'
// where it expects a digit; s must already be cleaned and the same length.
func CorrectToLayout(s, layout string) string {
	if len(s) != len(layout) {
		return s
	}
	out := []byte(s)
	for i := range out {
		switch layout[i] {
		case 'A':
			if out[i] == '$' {
				out[i] = 'S'
			} else if isDigit(out[i]) {
				if a, ok := alphaCorrections[out[i]]; ok {
					out[i] = a
				}
			}
		case 'N':
			if isUpper(out[i]) {
				if n, ok := numericCorrections[out[i]]; ok {
					out[i] = n
				}
			}
		}
	}
	return string(out)
}

// CorrectPassportNumber cleans a raw passport-number candidate, repairs the
// '$'-for-'S' misread, and fixes confusables against the 1-letter 7-digit
// layout.
func CorrectPassportNumber(s string) string {
	cleaned := CleanIDText(strings.TrimSpace(s))
	if strings.HasPrefix(cleaned, "$") {
		cleaned = "S" + cleaned[1:]
	}
	if len(cleaned) == 8 {
		return CorrectToLayout(cleaned, "ANNNNNNN")
	}
	return cleaned
}

// CorrectVoterID repairs confusables in a voter-ID number against its two
// known shapes: the old 3-letter 7-digit card and the new 13-character card
// written AA/NN/NNN/NNNNNN. Separators are stripped for the repair and put
// back only when the raw candidate carried them.
func CorrectVoterID(s string) string {
	temp := strings.ReplaceAll(s, "/", "")
	var corrected string
	switch len(temp) {
	case 10:
		corrected = CorrectToLayout(temp, "AAANNNNNNN")
	case 13:
		corrected = CorrectToLayout(temp, "AANNNNNNNNNNN")
	default:
		return s
	}
	if strings.Contains(s, "/") {
		if len(corrected) == 13 {
			return corrected[:2] + "/" + corrected[2:4] + "/" + corrected[4:7] + "/" + corrected[7:]
		}
		return corrected[:3] + "/" + corrected[3:]
	}
	return corrected
}

// NormalizeGender collapses engine output to Male/Female the way the scanner
// labels read; anything containing an F is Female.
func NormalizeGender(s string) string {
	if strings.Contains(strings.ToUpper(s), "F") {
		return "Female"
	}
	return "Male"
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
func isUpper(b byte) bool { return b >= 'A' && b <= 'Z' }
