package extract

import (
	"testing"

	"github.com/riks17/Document-OCR/constants"
	"github.com/riks17/Document-OCR/internal/entity"
)

func onePage(text string, conf float32) []entity.OcrPageResult {
	return []entity.OcrPageResult{{Index: 0, Text: text, Confidence: conf, Language: "eng"}}
}

func TestExtract_NationalID(t *testing.T) {
	e := NewRuleExtractor(nil)
	pages := onePage(
		"GOVERNMENT OF EXAMPLE\n"+
			"Name: John Doe\n"+
			"Father's Name: Robert Doe\n"+
			"DOB: 12/05/1990\n"+
			"ABCDE1234F\n", 0.9)

	doc, err := e.Extract(constants.NationalID, pages)
	if err != nil {
		t.Fatalf("Extract returned error: %v", err)
	}

	id := doc.Fields["id_number"]
	if id.Status != entity.FieldOK || id.Value != "ABCDE1234F" {
		t.Errorf("id_number = %+v, want OK ABCDE1234F", id)
	}
	if got, want := id.Confidence, float32(0.9); got != want {
		t.Errorf("id_number confidence = %v, want %v (validated at page confidence)", got, want)
	}

	name := doc.Fields["name"]
	if name.Status != entity.FieldOK || name.Value != "John Doe" {
		t.Errorf("name = %+v, want OK John Doe", name)
	}
	father := doc.Fields["father_name"]
	if father.Status != entity.FieldOK || father.Value != "Robert Doe" {
		t.Errorf("father_name = %+v, want OK Robert Doe", father)
	}
	dob := doc.Fields["date_of_birth"]
	if dob.Status != entity.FieldOK || dob.Value != "12/05/1990" {
		t.Errorf("date_of_birth = %+v, want OK 12/05/1990", dob)
	}

	if doc.OverallConfidence <= 0 || doc.OverallConfidence > 0.9 {
		t.Errorf("overall confidence = %v, want in (0, 0.9]", doc.OverallConfidence)
	}
}

func TestExtract_RepairedFieldScoresBelowValidated(t *testing.T) {
	e := NewRuleExtractor(nil)

	clean, err := e.Extract(constants.NationalID, onePage("ABCDE1234F\n", 0.8))
	if err != nil {
		t.Fatalf("Extract (clean) returned error: %v", err)
	}
	// 8 misread for B in a letter slot: repairable against the ID layout
	repaired, err := e.Extract(constants.NationalID, onePage("A8CDE1234F\n", 0.8))
	if err != nil {
		t.Fatalf("Extract (repaired) returned error: %v", err)
	}

	cf := clean.Fields["id_number"]
	rf := repaired.Fields["id_number"]
	if cf.Status != entity.FieldOK || rf.Status != entity.FieldOK {
		t.Fatalf("id_number statuses = %v / %v, want OK / OK", cf.Status, rf.Status)
	}
	if rf.Value != "ABCDE1234F" {
		t.Errorf("repaired value = %q, want ABCDE1234F", rf.Value)
	}
	if rf.Confidence >= cf.Confidence {
		t.Errorf("repaired confidence %v not below validated %v", rf.Confidence, cf.Confidence)
	}
}

func TestExtract_MissingAndAmbiguous(t *testing.T) {
	e := NewRuleExtractor(nil)

	t.Run("missing", func(t *testing.T) {
		doc, err := e.Extract(constants.NationalID, onePage("no useful content here\n", 0.5))
		if err != nil {
			t.Fatalf("Extract returned error: %v", err)
		}
		if got := doc.Fields["id_number"].Status; got != entity.FieldMissing {
			t.Errorf("id_number status = %v, want MISSING", got)
		}
		if doc.Fields["id_number"].Value != "" {
			t.Error("missing field must not carry a value")
		}
	})

	t.Run("ambiguous", func(t *testing.T) {
		doc, err := e.Extract(constants.NationalID, onePage("ABCDE1234F and also XYZAB5678C\n", 0.5))
		if err != nil {
			t.Fatalf("Extract returned error: %v", err)
		}
		if got := doc.Fields["id_number"].Status; got != entity.FieldAmbiguous {
			t.Errorf("id_number status = %v, want AMBIGUOUS", got)
		}
	})

	t.Run("repeated value is confirmation", func(t *testing.T) {
		doc, err := e.Extract(constants.NationalID, onePage("ABCDE1234F ... ABCDE1234F\n", 0.5))
		if err != nil {
			t.Fatalf("Extract returned error: %v", err)
		}
		if got := doc.Fields["id_number"].Status; got != entity.FieldOK {
			t.Errorf("id_number status = %v, want OK", got)
		}
	})
}

func TestExtract_Passport(t *testing.T) {
	e := NewRuleExtractor(nil)
	pages := onePage(
		"PASSPORT\n"+
			"Surname: Doe\n"+
			"Given Names: John Paul\n"+
			"DOB: 12/05/1990\n"+
			"Date of Expiry: 01/01/2030\n"+
			"Sex: F\n"+
			"$1234567\n", 0.85)

	doc, err := e.Extract(constants.Passport, pages)
	if err != nil {
		t.Fatalf("Extract returned error: %v", err)
	}

	num := doc.Fields["passport_number"]
	if num.Status != entity.FieldOK || num.Value != "S1234567" {
		t.Errorf("passport_number = %+v, want OK S1234567 ($ repaired)", num)
	}
	if num.Confidence >= 0.85 {
		t.Errorf("repaired passport_number confidence = %v, want below page confidence", num.Confidence)
	}

	name := doc.Fields["name"]
	if name.Status != entity.FieldOK || name.Value != "John Paul Doe" {
		t.Errorf("derived name = %+v, want OK \"John Paul Doe\"", name)
	}
	if got := doc.Fields["gender"]; got.Status != entity.FieldOK || got.Value != "Female" {
		t.Errorf("gender = %+v, want OK Female", got)
	}
	if got := doc.Fields["expiry_date"]; got.Status != entity.FieldOK || got.Value != "01/01/2030" {
		t.Errorf("expiry_date = %+v, want OK 01/01/2030", got)
	}
}

func TestExtract_VoterID(t *testing.T) {
	e := NewRuleExtractor(nil)

	t.Run("old layout", func(t *testing.T) {
		doc, err := e.Extract(constants.VoterID, onePage(
			"ELECTION COMMISSION OF EXAMPLE\n"+
				"Name: John Doe\n"+
				"Sex: M\n"+
				"DOB: 12/05/1990\n"+
				"ABC/1234567\n", 0.9))
		if err != nil {
			t.Fatalf("Extract returned error: %v", err)
		}
		id := doc.Fields["voter_id"]
		if id.Status != entity.FieldOK || id.Value != "ABC/1234567" {
			t.Errorf("voter_id = %+v, want OK ABC/1234567", id)
		}
		if got, want := id.Confidence, float32(0.9); got != want {
			t.Errorf("voter_id confidence = %v, want %v (validated at page confidence)", got, want)
		}
		if got := doc.Fields["name"]; got.Status != entity.FieldOK || got.Value != "John Doe" {
			t.Errorf("name = %+v, want OK John Doe", got)
		}
		if got := doc.Fields["gender"]; got.Status != entity.FieldOK || got.Value != "Male" {
			t.Errorf("gender = %+v, want OK Male", got)
		}
		if got := doc.Fields["date_of_birth"]; got.Status != entity.FieldOK || got.Value != "12/05/1990" {
			t.Errorf("date_of_birth = %+v, want OK 12/05/1990", got)
		}
	})

	t.Run("new layout", func(t *testing.T) {
		doc, err := e.Extract(constants.VoterID, onePage("AB/12/345/678901\n", 0.8))
		if err != nil {
			t.Fatalf("Extract returned error: %v", err)
		}
		id := doc.Fields["voter_id"]
		if id.Status != entity.FieldOK || id.Value != "AB/12/345/678901" {
			t.Errorf("voter_id = %+v, want OK AB/12/345/678901", id)
		}
	})

	t.Run("repaired scores below validated", func(t *testing.T) {
		doc, err := e.Extract(constants.VoterID, onePage("A8C/IZ34567\n", 0.8))
		if err != nil {
			t.Fatalf("Extract returned error: %v", err)
		}
		id := doc.Fields["voter_id"]
		if id.Status != entity.FieldOK || id.Value != "ABC/1234567" {
			t.Errorf("voter_id = %+v, want OK ABC/1234567 (confusables repaired)", id)
		}
		if id.Confidence >= 0.8 {
			t.Errorf("repaired voter_id confidence = %v, want below page confidence", id.Confidence)
		}
	})

	t.Run("bare number without separator", func(t *testing.T) {
		doc, err := e.Extract(constants.VoterID, onePage("ABC1234567\n", 0.8))
		if err != nil {
			t.Fatalf("Extract returned error: %v", err)
		}
		if got := doc.Fields["voter_id"]; got.Status != entity.FieldOK || got.Value != "ABC1234567" {
			t.Errorf("voter_id = %+v, want OK ABC1234567", got)
		}
	})
}

func TestExtract_Generic(t *testing.T) {
	e := NewRuleExtractor(nil)
	doc, err := e.Extract(constants.Generic, []entity.OcrPageResult{
		{Index: 0, Text: "first page", Confidence: 0.7},
		{Index: 1, Text: "second page", Confidence: 0.9},
	})
	if err != nil {
		t.Fatalf("Extract returned error: %v", err)
	}
	if len(doc.Fields) != 0 {
		t.Errorf("generic fields = %v, want none", doc.Fields)
	}
	if doc.RawText == "" {
		t.Error("generic raw text is empty")
	}
	// mean of the page confidences
	if doc.OverallConfidence < 0.79 || doc.OverallConfidence > 0.81 {
		t.Errorf("overall confidence = %v, want ~0.8", doc.OverallConfidence)
	}
}

func TestExtract_UnknownTypeFails(t *testing.T) {
	e := NewRuleExtractor(nil)
	if _, err := e.Extract(constants.DocumentType("DRIVING_LICENSE"), onePage("x", 0.5)); err == nil {
		t.Fatal("Extract with unknown document type succeeded, want error")
	}
}

func TestExtract_ConfidenceMonotonicInPageConfidence(t *testing.T) {
	e := NewRuleExtractor(nil)
	lo, err := e.Extract(constants.NationalID, onePage("ABCDE1234F\n", 0.4))
	if err != nil {
		t.Fatal(err)
	}
	hi, err := e.Extract(constants.NationalID, onePage("ABCDE1234F\n", 0.9))
	if err != nil {
		t.Fatal(err)
	}
	if lo.Fields["id_number"].Confidence >= hi.Fields["id_number"].Confidence {
		t.Errorf("confidence not monotonic: %v (page 0.4) >= %v (page 0.9)",
			lo.Fields["id_number"].Confidence, hi.Fields["id_number"].Confidence)
	}
}
