package entity

// PageImage is a single rasterized page ready for OCR. Pages are owned
// exclusively by the run that produced them and are discarded after OCR
// dispatch.
type PageImage struct {
	Index      int // 0-based position in the rasterized sequence
	SourcePage int // 1-based page number in the source document
	Width      int
	Height     int
	PNG        []byte
}

// OcrPageResult is the engine output for one page image.
type OcrPageResult struct {
	Index      int
	Text       string
	Confidence float32 // 0..1, 0 when the engine reports none
	Language   string
}
