// Package ocr adapts external OCR engines behind a single page-level client
// interface. Adapters are stateless per call, so pages can be dispatched
// concurrently, and every call is bounded by a timeout.
package ocr

import (
	"context"

	"github.com/riks17/Document-OCR/internal/entity"
)

// Client recognizes the text on one page image.
//
// Failures map onto the engine error taxonomy: common.ErrEngineUnavailable
// and common.ErrEngineTimeout are transient, common.ErrEngineRejected means
// the engine refused the page and retrying is pointless.
type Client interface {
	Recognize(ctx context.Context, page entity.PageImage) (entity.OcrPageResult, error)
}
