package ocr

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/riks17/Document-OCR/internal/common"
	"github.com/riks17/Document-OCR/internal/entity"
	"github.com/riks17/Document-OCR/internal/execx"
)

// TesseractConfig configures the local tesseract adapter.
type TesseractConfig struct {
	Binary      string // binary name or absolute path; if empty -> "tesseract"
	Language    string // default "eng"
	TessdataDir string
	CallTimeout time.Duration // default 30s
	PSM         int           // e.g., 6 is good for uniform block of text
	OEM         int           // 1 = LSTM; leave 0 to use default
}

// TesseractClient shells out to the tesseract binary for each page.
type TesseractClient struct {
	cfg    TesseractConfig
	runner execx.Runner
}

func NewTesseractClient(cfg TesseractConfig) *TesseractClient {
	if cfg.Binary == "" {
		cfg.Binary = "tesseract"
	}
	if cfg.Language == "" {
		cfg.Language = "eng"
	}
	if cfg.CallTimeout <= 0 {
		cfg.CallTimeout = 30 * time.Second
	}
	return &TesseractClient{cfg: cfg, runner: execx.ExecRunner{}}
}

// NewTesseractClientWithRunner swaps the exec runner; tests use it to stub
// the binary.
func NewTesseractClientWithRunner(cfg TesseractConfig, runner execx.Runner) *TesseractClient {
	c := NewTesseractClient(cfg)
	c.runner = runner
	return c
}

// Recognize writes the page to a temp file and runs tesseract over it.
// The mean word confidence comes from a second TSV pass.
func (c *TesseractClient) Recognize(ctx context.Context, page entity.PageImage) (entity.OcrPageResult, error) {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.CallTimeout)
	defer cancel()

	tmpDir, err := os.MkdirTemp("", "docr-ocr-*")
	if err != nil {
		return entity.OcrPageResult{}, fmt.Errorf("tempdir: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	path := filepath.Join(tmpDir, "page.png")
	if err := os.WriteFile(path, page.PNG, 0o600); err != nil {
		return entity.OcrPageResult{}, fmt.Errorf("write page: %w", err)
	}

	args := c.baseArgs(path)
	out, errb, err := c.runner.Run(ctx, c.cfg.Binary, args...)
	if err != nil {
		// the runner reports "signal: killed" once the deadline fires, so
		// consult the context before classifying
		if ctx.Err() != nil {
			err = ctx.Err()
		}
		return entity.OcrPageResult{}, classifyExecError(err, string(errb))
	}

	text := Normalize(string(out))
	conf, _ := c.tsvConfidence(ctx, path)

	return entity.OcrPageResult{
		Index:      page.Index,
		Text:       text,
		Confidence: conf,
		Language:   c.cfg.Language,
	}, nil
}

func (c *TesseractClient) baseArgs(path string) []string {
	// tesseract <file> stdout -l <lang>
	args := []string{path, "stdout", "-l", c.cfg.Language}
	if c.cfg.PSM > 0 {
		args = append(args, "--psm", strconv.Itoa(c.cfg.PSM))
	}
	if c.cfg.OEM > 0 {
		args = append(args, "--oem", strconv.Itoa(c.cfg.OEM))
	}
	if c.cfg.TessdataDir != "" {
		args = append(args, "--tessdata-dir", c.cfg.TessdataDir)
	}
	return args
}

// tsvConfidence runs tesseract in TSV mode and returns mean word conf in 0..1.
func (c *TesseractClient) tsvConfidence(ctx context.Context, path string) (float32, error) {
	args := append(c.baseArgs(path), "tsv")
	out, _, err := c.runner.Run(ctx, c.cfg.Binary, args...)
	if err != nil {
		return 0, err
	}
	lines := strings.Split(string(out), "\n")
	// columns: level..height, conf, text; conf is second to last
	var sum, n float64
	for i, ln := range lines {
		if i == 0 || len(ln) == 0 {
			continue // skip header
		}
		cols := strings.Split(ln, "\t")
		if len(cols) < 12 {
			continue
		}
		confStr := cols[10]
		if confStr == "" || confStr == "-1" {
			continue
		}
		if v, err := strconv.ParseFloat(confStr, 64); err == nil {
			sum += v
			n++
		}
	}
	if n == 0 {
		return 0, nil
	}
	mean := sum / n // 0..100
	return float32(mean / 100.0), nil
}

// classifyExecError maps a tesseract invocation failure onto the engine
// error taxonomy.
func classifyExecError(err error, stderr string) error {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("tesseract: %w", common.ErrEngineTimeout)
	case errors.Is(err, exec.ErrNotFound):
		return fmt.Errorf("tesseract: %v: %w", err, common.ErrEngineUnavailable)
	default:
		return fmt.Errorf("tesseract: %s: %w", execx.Truncate(stderr, 512), common.ErrEngineRejected)
	}
}
