package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"

	"github.com/riks17/Document-OCR/constants"
	"github.com/riks17/Document-OCR/db/ent/schema/utils"
)

// ProcessingResult rows are create-once: every field is immutable and
// corrections are expressed as new rows.
type ProcessingResult struct{ ent.Schema }

func (ProcessingResult) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "processing_result"},
	}
}

func (ProcessingResult) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("owner_id", uuid.UUID{}).Immutable(),
		field.String("status").NotEmpty().Immutable().
			Validate(utils.EnumValidator(
				string(constants.StatusSucceeded),
				string(constants.StatusPartial),
				string(constants.StatusFailed),
			)),
		field.String("format").NotEmpty().Immutable().
			Validate(utils.EnumValidator(constants.FileTypes...)),
		field.String("document_type").NotEmpty().Immutable().
			Validate(utils.EnumValidator(constants.DocumentTypeStrings()...)),
		field.JSON("extracted_fields", json.RawMessage{}).Optional().Immutable(),
		field.String("raw_text").Optional().Immutable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Float32("overall_confidence").Optional().Nillable().Immutable(),
		field.JSON("page_errors", json.RawMessage{}).Optional().Immutable(),
		field.Int("page_count").NonNegative().Immutable(),
		field.Int("pages_succeeded").NonNegative().Immutable(),
		field.String("content_hash_hex").NotEmpty().Immutable(),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

func (ProcessingResult) Indexes() []ent.Index {
	return []ent.Index{
		// same artifact may legitimately be submitted twice, so not unique
		index.Fields("owner_id", "content_hash_hex"),
		index.Fields("owner_id", "created_at"),
	}
}
