// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/riks17/Document-OCR/db/ent/schema"
	"github.com/riks17/Document-OCR/gen/ent/processingresult"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	processingresultFields := schema.ProcessingResult{}.Fields()
	_ = processingresultFields
	// processingresultDescStatus is the schema descriptor for status field.
	processingresultDescStatus := processingresultFields[2].Descriptor()
	// processingresult.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	processingresult.StatusValidator = func() func(string) error {
		validators := processingresultDescStatus.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(status string) error {
			for _, fn := range fns {
				if err := fn(status); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// processingresultDescFormat is the schema descriptor for format field.
	processingresultDescFormat := processingresultFields[3].Descriptor()
	// processingresult.FormatValidator is a validator for the "format" field. It is called by the builders before save.
	processingresult.FormatValidator = func() func(string) error {
		validators := processingresultDescFormat.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(format string) error {
			for _, fn := range fns {
				if err := fn(format); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// processingresultDescDocumentType is the schema descriptor for document_type field.
	processingresultDescDocumentType := processingresultFields[4].Descriptor()
	// processingresult.DocumentTypeValidator is a validator for the "document_type" field. It is called by the builders before save.
	processingresult.DocumentTypeValidator = func() func(string) error {
		validators := processingresultDescDocumentType.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(document_type string) error {
			for _, fn := range fns {
				if err := fn(document_type); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// processingresultDescPageCount is the schema descriptor for page_count field.
	processingresultDescPageCount := processingresultFields[9].Descriptor()
	// processingresult.PageCountValidator is a validator for the "page_count" field. It is called by the builders before save.
	processingresult.PageCountValidator = processingresultDescPageCount.Validators[0].(func(int) error)
	// processingresultDescPagesSucceeded is the schema descriptor for pages_succeeded field.
	processingresultDescPagesSucceeded := processingresultFields[10].Descriptor()
	// processingresult.PagesSucceededValidator is a validator for the "pages_succeeded" field. It is called by the builders before save.
	processingresult.PagesSucceededValidator = processingresultDescPagesSucceeded.Validators[0].(func(int) error)
	// processingresultDescContentHashHex is the schema descriptor for content_hash_hex field.
	processingresultDescContentHashHex := processingresultFields[11].Descriptor()
	// processingresult.ContentHashHexValidator is a validator for the "content_hash_hex" field. It is called by the builders before save.
	processingresult.ContentHashHexValidator = processingresultDescContentHashHex.Validators[0].(func(string) error)
	// processingresultDescCreatedAt is the schema descriptor for created_at field.
	processingresultDescCreatedAt := processingresultFields[12].Descriptor()
	// processingresult.DefaultCreatedAt holds the default value on creation for the created_at field.
	processingresult.DefaultCreatedAt = processingresultDescCreatedAt.Default.(func() time.Time)
	// processingresultDescID is the schema descriptor for id field.
	processingresultDescID := processingresultFields[0].Descriptor()
	// processingresult.DefaultID holds the default value on creation for the id field.
	processingresult.DefaultID = processingresultDescID.Default.(func() uuid.UUID)
}
