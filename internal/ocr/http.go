package ocr

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/riks17/Document-OCR/internal/common"
	"github.com/riks17/Document-OCR/internal/entity"
)

// HTTPConfig configures the remote engine adapter.
type HTTPConfig struct {
	BaseURL     string // e.g. http://ocr-engine:9090
	Language    string
	CallTimeout time.Duration // default 30s
}

// recognizeRequest is the engine wire format: one page image in.
type recognizeRequest struct {
	Image    string `json:"image"` // base64 PNG
	Language string `json:"language,omitempty"`
}

// recognizeResponse is the engine wire format: text plus optional metadata out.
type recognizeResponse struct {
	Text       string  `json:"text"`
	Confidence float32 `json:"confidence,omitempty"` // 0..1
	Language   string  `json:"language,omitempty"`
}

// HTTPClient talks to a remote OCR engine over JSON/HTTP.
type HTTPClient struct {
	cfg  HTTPConfig
	http *http.Client
}

func NewHTTPClient(cfg HTTPConfig) *HTTPClient {
	if cfg.CallTimeout <= 0 {
		cfg.CallTimeout = 30 * time.Second
	}
	return &HTTPClient{
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.CallTimeout},
	}
}

// Recognize posts one page image to the engine. 5xx responses and transport
// failures are transient; 4xx means the engine rejected the page.
func (c *HTTPClient) Recognize(ctx context.Context, page entity.PageImage) (entity.OcrPageResult, error) {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.CallTimeout)
	defer cancel()

	body, err := json.Marshal(recognizeRequest{
		Image:    base64.StdEncoding.EncodeToString(page.PNG),
		Language: c.cfg.Language,
	})
	if err != nil {
		return entity.OcrPageResult{}, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+"/v1/recognize", bytes.NewReader(body))
	if err != nil {
		return entity.OcrPageResult{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || ctx.Err() == context.DeadlineExceeded {
			return entity.OcrPageResult{}, fmt.Errorf("engine call: %w", common.ErrEngineTimeout)
		}
		return entity.OcrPageResult{}, fmt.Errorf("engine call: %v: %w", err, common.ErrEngineUnavailable)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 500:
		return entity.OcrPageResult{}, fmt.Errorf("engine status %d: %w", resp.StatusCode, common.ErrEngineUnavailable)
	case resp.StatusCode >= 400:
		return entity.OcrPageResult{}, fmt.Errorf("engine status %d: %w", resp.StatusCode, common.ErrEngineRejected)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, 16<<20))
	if err != nil {
		return entity.OcrPageResult{}, fmt.Errorf("read engine response: %v: %w", err, common.ErrEngineUnavailable)
	}
	var out recognizeResponse
	if err := json.Unmarshal(data, &out); err != nil {
		return entity.OcrPageResult{}, fmt.Errorf("decode engine response: %v: %w", err, common.ErrEngineRejected)
	}

	lang := out.Language
	if lang == "" {
		lang = c.cfg.Language
	}
	return entity.OcrPageResult{
		Index:      page.Index,
		Text:       Normalize(out.Text),
		Confidence: out.Confidence,
		Language:   lang,
	}, nil
}
