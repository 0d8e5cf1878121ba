package extract

import (
	"testing"

	"github.com/riks17/Document-OCR/constants"
)

func TestSchemaRejectsUnknownFields(t *testing.T) {
	rs, _ := RulesFor(constants.NationalID)
	schema := BuildDocumentJSONSchema(rs)

	good := []byte(`{"id_number":{"value":"ABCDE1234F","confidence":0.9,"source_page":0,"status":"OK"}}`)
	if err := ValidateJSONAgainstSchema(schema, good); err != nil {
		t.Errorf("valid payload rejected: %v", err)
	}

	unknown := []byte(`{"salary":{"value":"100","confidence":0.9,"source_page":0,"status":"OK"}}`)
	if err := ValidateJSONAgainstSchema(schema, unknown); err == nil {
		t.Error("payload with undeclared field accepted")
	}

	badConf := []byte(`{"id_number":{"value":"x","confidence":1.5,"source_page":0,"status":"OK"}}`)
	if err := ValidateJSONAgainstSchema(schema, badConf); err == nil {
		t.Error("confidence above 1 accepted")
	}

	badStatus := []byte(`{"id_number":{"confidence":0.5,"source_page":0,"status":"MAYBE"}}`)
	if err := ValidateJSONAgainstSchema(schema, badStatus); err == nil {
		t.Error("unknown status accepted")
	}
}
