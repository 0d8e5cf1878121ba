package constants

// ResultStatus is the canonical terminal status for rows in processing_result.
type ResultStatus string

// Stable values (store these exact strings in DB).
const (
	StatusSucceeded ResultStatus = "SUCCEEDED" // all pages recognized, all required fields present
	StatusPartial   ResultStatus = "PARTIAL"   // usable document, but page or field issues occurred
	StatusFailed    ResultStatus = "FAILED"    // terminal failure
)

// PipelineState tracks a run through the ingestion state machine.
// Only terminal states are ever persisted; the rest exist for logging.
type PipelineState string

const (
	StateReceived    PipelineState = "RECEIVED"
	StateRasterizing PipelineState = "RASTERIZING"
	StateRecognizing PipelineState = "RECOGNIZING"
	StateExtracting  PipelineState = "EXTRACTING"
	StatePersisting  PipelineState = "PERSISTING"
)
