package extract

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/riks17/Document-OCR/constants"
	"github.com/riks17/Document-OCR/internal/common"
	"github.com/riks17/Document-OCR/internal/entity"
)

// Extractor is the interface the pipeline depends on.
type Extractor interface {
	Extract(docType constants.DocumentType, pages []entity.OcrPageResult) (entity.ExtractedDocument, error)
}

// Rule strengths for the confidence formula. A field confidence is
// ruleStrength * pageConfidence, so it stays monotonic in OCR confidence.
const (
	strengthValidated = 1.0
	strengthRepaired  = 0.75
	strengthLoose     = 0.5
)

// RuleExtractor applies the per-document-type rule tables to recognized text.
type RuleExtractor struct {
	logger *slog.Logger
}

func NewRuleExtractor(logger *slog.Logger) *RuleExtractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &RuleExtractor{logger: logger}
}

// Extract locates every declared field for the document type in the ordered
// page results. Fields that match nothing are MISSING, fields with
// conflicting candidates are AMBIGUOUS; nothing is ever guessed.
func (e *RuleExtractor) Extract(docType constants.DocumentType, pages []entity.OcrPageResult) (entity.ExtractedDocument, error) {
	rs, ok := RulesFor(docType)
	if !ok {
		return entity.ExtractedDocument{}, fmt.Errorf("document type %q: %w", docType, common.ErrExtractionFailed)
	}

	var b strings.Builder
	for _, p := range pages {
		if b.Len() > 0 {
			b.WriteString("\n\f\n") // keep a clear page break marker
		}
		b.WriteString(p.Text)
	}

	fields := make(map[string]entity.FieldValue, len(rs.Fields))
	for _, rule := range rs.Fields {
		fv := e.extractField(rule, pages)
		fields[rule.Name] = fv
		if fv.Status != entity.FieldOK {
			e.logger.Debug("field not extracted",
				"document_type", docType, "field", rule.Name, "status", fv.Status)
		}
	}
	deriveFields(rs, fields)

	doc := entity.ExtractedDocument{
		DocumentType:      docType,
		Fields:            fields,
		OverallConfidence: overallConfidence(rs, fields, pages),
		RawText:           b.String(),
	}

	// Final gate: the assembled field map must match the declared schema.
	payload, err := json.Marshal(doc.Fields)
	if err != nil {
		return entity.ExtractedDocument{}, fmt.Errorf("marshal fields: %w", err)
	}
	if err := ValidateJSONAgainstSchema(BuildDocumentJSONSchema(rs), payload); err != nil {
		return entity.ExtractedDocument{}, fmt.Errorf("%v: %w", err, common.ErrExtractionFailed)
	}
	return doc, nil
}

type candidate struct {
	value    string
	page     int
	strength float32
}

// extractField gathers candidates for one rule across all pages and reduces
// them to a single FieldValue.
func (e *RuleExtractor) extractField(rule FieldRule, pages []entity.OcrPageResult) entity.FieldValue {
	var valid []candidate
	sawInvalid := false

	consider := func(raw string, pageIdx int) {
		val := strings.TrimSpace(raw)
		if rule.Clean != nil {
			val = rule.Clean(val)
		}
		if val == "" {
			return
		}
		strength := float32(strengthLoose)
		switch {
		case rule.Validate == nil:
			strength = strengthValidated
		case rule.Validate.MatchString(val):
			strength = strengthValidated
		default:
			repaired := val
			switch {
			case rule.IsDate:
				repaired = CorrectDateString(val)
			case rule.Repair != nil:
				repaired = rule.Repair(val)
			case rule.Layout != "":
				repaired = CorrectToLayout(val, rule.Layout)
			}
			if repaired != val && rule.Validate.MatchString(repaired) {
				val = repaired
				strength = strengthRepaired
			} else {
				sawInvalid = true
				return
			}
		}
		for i, c := range valid {
			if c.value == val {
				if strength > c.strength {
					valid[i].strength = strength
				}
				return // same value seen again is a confirmation, not a conflict
			}
		}
		valid = append(valid, candidate{value: val, page: pageIdx, strength: strength})
	}

	for _, p := range pages {
		if rule.Label != nil {
			for _, m := range rule.Label.FindAllStringSubmatch(p.Text, -1) {
				consider(m[1], p.Index)
			}
		}
		if rule.Format != nil {
			for _, m := range rule.Format.FindAllString(p.Text, -1) {
				consider(m, p.Index)
			}
		}
	}

	switch len(valid) {
	case 0:
		status := entity.FieldMissing
		if sawInvalid {
			status = entity.FieldInvalid
		}
		return entity.FieldValue{Status: status}
	case 1:
		c := valid[0]
		return entity.FieldValue{
			Value:      c.value,
			Confidence: c.strength * pageConfidence(pages, c.page),
			SourcePage: c.page,
			Status:     entity.FieldOK,
		}
	default:
		return entity.FieldValue{Status: entity.FieldAmbiguous}
	}
}

// deriveFields computes fields that are assembled from others. For passports
// the given names and surname merge into a single name.
func deriveFields(rs RuleSet, fields map[string]entity.FieldValue) {
	for _, name := range rs.Derived {
		if name != "name" {
			continue
		}
		given, surname := fields["given_names"], fields["surname"]
		if given.Status != entity.FieldOK && surname.Status != entity.FieldOK {
			fields[name] = entity.FieldValue{Status: entity.FieldMissing}
			continue
		}
		parts := make([]string, 0, 2)
		conf := float32(1.0)
		page := 0
		for _, fv := range []entity.FieldValue{given, surname} {
			if fv.Status == entity.FieldOK {
				parts = append(parts, fv.Value)
				if fv.Confidence < conf {
					conf = fv.Confidence
					page = fv.SourcePage
				}
			}
		}
		fields[name] = entity.FieldValue{
			Value:      strings.Join(parts, " "),
			Confidence: conf,
			SourcePage: page,
			Status:     entity.FieldOK,
		}
	}
}

// overallConfidence is the minimum over required-field confidences: one weak
// required field caps the whole result. Types without required fields (and
// documents where no required field extracted) fall back to the mean page
// confidence.
func overallConfidence(rs RuleSet, fields map[string]entity.FieldValue, pages []entity.OcrPageResult) float32 {
	overall := float32(1.0)
	haveRequired := false
	for _, rule := range rs.Fields {
		if !rule.Required {
			continue
		}
		fv := fields[rule.Name]
		if fv.Status != entity.FieldOK {
			continue
		}
		haveRequired = true
		if fv.Confidence < overall {
			overall = fv.Confidence
		}
	}
	if haveRequired {
		return overall
	}
	if len(pages) == 0 {
		return 0
	}
	var sum float32
	for _, p := range pages {
		sum += pageConfidence(pages, p.Index)
	}
	return sum / float32(len(pages))
}

// pageConfidence prefers the engine-reported confidence, falling back to a
// text heuristic when the engine reports none.
func pageConfidence(pages []entity.OcrPageResult, idx int) float32 {
	for _, p := range pages {
		if p.Index == idx {
			if p.Confidence > 0 {
				return p.Confidence
			}
			return heuristicConfidence(p.Text)
		}
	}
	return 0
}
