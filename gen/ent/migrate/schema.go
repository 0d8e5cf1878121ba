// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ProcessingResultColumns holds the columns for the "processing_result" table.
	ProcessingResultColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "owner_id", Type: field.TypeUUID},
		{Name: "status", Type: field.TypeString},
		{Name: "format", Type: field.TypeString},
		{Name: "document_type", Type: field.TypeString},
		{Name: "extracted_fields", Type: field.TypeJSON, Nullable: true},
		{Name: "raw_text", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "overall_confidence", Type: field.TypeFloat32, Nullable: true},
		{Name: "page_errors", Type: field.TypeJSON, Nullable: true},
		{Name: "page_count", Type: field.TypeInt},
		{Name: "pages_succeeded", Type: field.TypeInt},
		{Name: "content_hash_hex", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ProcessingResultTable holds the schema information for the "processing_result" table.
	ProcessingResultTable = &schema.Table{
		Name:       "processing_result",
		Columns:    ProcessingResultColumns,
		PrimaryKey: []*schema.Column{ProcessingResultColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "processingresult_owner_id_content_hash_hex",
				Unique:  false,
				Columns: []*schema.Column{ProcessingResultColumns[1], ProcessingResultColumns[11]},
			},
			{
				Name:    "processingresult_owner_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ProcessingResultColumns[1], ProcessingResultColumns[12]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ProcessingResultTable,
	}
)

func init() {
	ProcessingResultTable.Annotation = &entsql.Annotation{
		Table: "processing_result",
	}
}
