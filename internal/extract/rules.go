package extract

import (
	"regexp"

	"github.com/riks17/Document-OCR/constants"
)

// FieldRule locates one declared field in recognized page text.
// A rule may match by label (a capture after "Name:" etc), by format
// (a bare pattern anywhere in the text), or both. Candidates that only
// validate after confusable-character correction are kept with reduced
// rule strength; a field is never guessed.
type FieldRule struct {
	Name     string
	Required bool

	// Label captures the value following a field label, per line.
	Label *regexp.Regexp
	// Format matches a value by shape anywhere in the text.
	Format *regexp.Regexp
	// Validate is the final format gate applied to a cleaned candidate.
	Validate *regexp.Regexp
	// Layout drives positional confusable correction ("A"=letter, "N"=digit).
	Layout string

	// Clean normalizes a raw candidate before validation.
	Clean func(string) string
	// Repair attempts a field-specific correction when validation fails;
	// it takes precedence over Layout.
	Repair func(string) string
	// IsDate applies date-digit repair before validation.
	IsDate bool
}

// RuleSet is the full declared field set for one document type.
// The field set is determined solely by the document type.
type RuleSet struct {
	Type   constants.DocumentType
	Fields []FieldRule
	// Derived names fields computed from other fields rather than located
	// in the text (e.g. the merged passport name).
	Derived []string
}

var (
	reNationalID  = regexp.MustCompile(`^[A-Z]{5}[0-9]{4}[A-Z]$`)
	rePassportNum = regexp.MustCompile(`^[A-Z][0-9]{7}$`)
	// Voter IDs come in an old 3-letter 7-digit shape (with or without a
	// separator) and a new 13-character AA/NN/NNN/NNNNNN shape.
	reVoterID = regexp.MustCompile(`^(?:[A-Z]{3}[0-9]{7}|[A-Z]{3}/[0-9]{7}|[A-Z]{2}/[0-9]{2}/[0-9]{3}/[0-9]{6})$`)
	reDateValue   = regexp.MustCompile(`^\d{2}/\d{2}/\d{4}$`)
	reGenderValue = regexp.MustCompile(`^(Male|Female)$`)
	reNameValue   = regexp.MustCompile(`^[A-Za-z][A-Za-z ]{1,79}$`)
)

var ruleSets = map[constants.DocumentType]RuleSet{
	constants.NationalID: {
		Type: constants.NationalID,
		Fields: []FieldRule{
			{
				Name:     "id_number",
				Required: true,
				Format:   regexp.MustCompile(`\b[A-Z0-9]{10}\b`),
				Validate: reNationalID,
				Layout:   "AAAAANNNNA",
				Clean:    CleanIDText,
			},
			{
				Name:     "name",
				Required: true,
				Label:    regexp.MustCompile(`(?im)^\s*name\s*[:\-]?\s*([A-Za-z][A-Za-z .]+)$`),
				Validate: reNameValue,
				Clean:    CleanNameField,
			},
			{
				Name:  "father_name",
				Label: regexp.MustCompile(`(?im)^\s*father(?:'s)?\s*name\s*[:\-]?\s*([A-Za-z][A-Za-z .]+)$`),
				Clean: CleanNameField,
			},
			{
				Name:     "date_of_birth",
				Required: true,
				Label:    regexp.MustCompile(`(?im)(?:date\s+of\s+birth|dob)\s*[:\-]?\s*([0-9/]{8,10})`),
				Format:   regexp.MustCompile(`\b\d{2}/\d{2}/\d{4}\b`),
				Validate: reDateValue,
				IsDate:   true,
			},
		},
	},
	constants.Passport: {
		Type:    constants.Passport,
		Derived: []string{"name"},
		Fields: []FieldRule{
			{
				Name:     "passport_number",
				Required: true,
				// no leading \b: it would never fire before a '$' misread
				Format:   regexp.MustCompile(`[A-Z$][A-Z0-9]{7}\b`),
				Validate: rePassportNum,
				Clean:    CleanIDText,
				Repair:   CorrectPassportNumber,
			},
			{
				Name:     "surname",
				Required: true,
				Label:    regexp.MustCompile(`(?im)^\s*surname\s*[:\-]?\s*([A-Za-z][A-Za-z .]+)$`),
				Validate: reNameValue,
				Clean:    CleanNameField,
			},
			{
				Name:     "given_names",
				Required: true,
				Label:    regexp.MustCompile(`(?im)^\s*given\s+names?\s*[:\-]?\s*([A-Za-z][A-Za-z .]+)$`),
				Validate: reNameValue,
				Clean:    CleanNameField,
			},
			{
				Name:     "date_of_birth",
				Required: true,
				Label:    regexp.MustCompile(`(?im)(?:date\s+of\s+birth|dob)\s*[:\-]?\s*([0-9/]{8,10})`),
				Validate: reDateValue,
				IsDate:   true,
			},
			{
				Name:     "expiry_date",
				Required: true,
				Label:    regexp.MustCompile(`(?im)(?:date\s+of\s+expiry|expiry)\s*[:\-]?\s*([0-9/]{8,10})`),
				Validate: reDateValue,
				IsDate:   true,
			},
			{
				Name:     "gender",
				Label:    regexp.MustCompile(`(?im)^\s*(?:sex|gender)\s*[:\-]?\s*([A-Za-z/]+)$`),
				Validate: reGenderValue,
				Clean:    NormalizeGender,
			},
		},
	},
	constants.VoterID: {
		Type: constants.VoterID,
		Fields: []FieldRule{
			{
				Name:     "voter_id",
				Required: true,
				Format:   regexp.MustCompile(`\b[A-Z0-9]{2,3}(?:/[A-Z0-9]{2,7}){1,3}\b|\b[A-Z0-9]{10}\b|\b[A-Z0-9]{13}\b`),
				Validate: reVoterID,
				Clean:    CleanIDText,
				Repair:   CorrectVoterID,
			},
			{
				Name:     "name",
				Label:    regexp.MustCompile(`(?im)^\s*(?:elector(?:'s)?\s+)?name\s*[:\-]?\s*([A-Za-z][A-Za-z .]+)$`),
				Validate: reNameValue,
				Clean:    CleanNameField,
			},
			{
				Name:     "gender",
				Label:    regexp.MustCompile(`(?im)^\s*(?:sex|gender)\s*[:\-]?\s*([A-Za-z/]+)$`),
				Validate: reGenderValue,
				Clean:    NormalizeGender,
			},
			{
				Name:     "date_of_birth",
				Label:    regexp.MustCompile(`(?im)(?:date\s+of\s+birth|dob)\s*[:\-]?\s*([0-9/]{8,10})`),
				Format:   regexp.MustCompile(`\b\d{2}/\d{2}/\d{4}\b`),
				Validate: reDateValue,
				IsDate:   true,
			},
		},
	},
	// GENERIC declares no fields; the raw text is the product.
	constants.Generic: {
		Type:   constants.Generic,
		Fields: nil,
	},
}

// RulesFor returns the rule set for a document type.
func RulesFor(dt constants.DocumentType) (RuleSet, bool) {
	rs, ok := ruleSets[dt]
	return rs, ok
}
