package raster

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	xdraw "golang.org/x/image/draw"

	"github.com/riks17/Document-OCR/constants"
	"github.com/riks17/Document-OCR/internal/common"
	"github.com/riks17/Document-OCR/internal/entity"
	"github.com/riks17/Document-OCR/internal/execx"
)

// Rasterizer turns an uploaded artifact into an ordered sequence of
// OCR-ready page images. Raster images pass through (downscaled to the
// configured bound); PDFs are rendered one PNG per page at the target DPI.
type Rasterizer struct {
	cfg       common.RasterConfig
	runner    execx.Runner
	pageCount func(rs io.ReadSeeker) (int, error)
	logger    *slog.Logger
}

func NewRasterizer(cfg common.RasterConfig, logger *slog.Logger) *Rasterizer {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.TargetDPI <= 0 {
		cfg.TargetDPI = 300
	}
	if cfg.MaxImageDim <= 0 {
		cfg.MaxImageDim = 2200
	}
	if cfg.Pdftoppm == "" {
		cfg.Pdftoppm = "pdftoppm"
	}
	return &Rasterizer{
		cfg:    cfg,
		runner: execx.ExecRunner{},
		pageCount: func(rs io.ReadSeeker) (int, error) {
			return api.PageCount(rs, nil)
		},
		logger: logger,
	}
}

var pdfMagic = []byte("%PDF-")

var imageMagics = map[string][]byte{
	"image/png":  {0x89, 'P', 'N', 'G'},
	"image/jpeg": {0xFF, 0xD8},
}

// Rasterize validates the artifact and produces its page images in source
// order. It fails before decoding anything when the artifact is empty,
// oversized, or its header does not match the declared MIME type.
func (r *Rasterizer) Rasterize(ctx context.Context, artifact entity.UploadedArtifact) ([]entity.PageImage, error) {
	format := constants.MapMIMEToFormat(artifact.MIMEType)
	if format == "" {
		return nil, fmt.Errorf("mime type %q: %w", artifact.MIMEType, common.ErrUnsupportedFormat)
	}
	if len(artifact.Bytes) == 0 {
		return nil, fmt.Errorf("empty artifact: %w", common.ErrCorruptArtifact)
	}
	if r.cfg.MaxBytes > 0 && int64(len(artifact.Bytes)) > r.cfg.MaxBytes {
		return nil, fmt.Errorf("artifact is %d bytes, limit %d: %w",
			len(artifact.Bytes), r.cfg.MaxBytes, common.ErrArtifactTooLarge)
	}
	if err := checkHeader(format, constants.NormalizeMIME(artifact.MIMEType), artifact.Bytes); err != nil {
		return nil, err
	}

	switch format {
	case constants.IMAGE:
		page, err := r.rasterizeImage(artifact)
		if err != nil {
			return nil, err
		}
		return []entity.PageImage{page}, nil
	case constants.PDF:
		return r.rasterizePDF(ctx, artifact)
	default:
		return nil, fmt.Errorf("format %q: %w", format, common.ErrUnsupportedFormat)
	}
}

func checkHeader(format constants.Format, mime string, data []byte) error {
	var magic []byte
	if format == constants.PDF {
		magic = pdfMagic
	} else {
		magic = imageMagics[mime]
	}
	if len(magic) == 0 || len(data) < len(magic) || !bytes.Equal(data[:len(magic)], magic) {
		return fmt.Errorf("header does not match declared type %q: %w", mime, common.ErrCorruptArtifact)
	}
	return nil
}

// rasterizeImage decodes a single raster image and downscales it when its
// longest side exceeds the configured bound.
func (r *Rasterizer) rasterizeImage(artifact entity.UploadedArtifact) (entity.PageImage, error) {
	mime := constants.NormalizeMIME(artifact.MIMEType)

	var img image.Image
	var err error
	switch mime {
	case "image/png":
		img, err = png.Decode(bytes.NewReader(artifact.Bytes))
	case "image/jpeg":
		img, err = jpeg.Decode(bytes.NewReader(artifact.Bytes))
	default:
		return entity.PageImage{}, fmt.Errorf("mime type %q: %w", mime, common.ErrUnsupportedFormat)
	}
	if err != nil {
		return entity.PageImage{}, fmt.Errorf("decode %s: %v: %w", mime, err, common.ErrCorruptArtifact)
	}

	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if max(w, h) > r.cfg.MaxImageDim {
		img = downscale(img, r.cfg.MaxImageDim)
		b = img.Bounds()
		r.logger.Debug("image downscaled", "from_w", w, "from_h", h, "to_w", b.Dx(), "to_h", b.Dy())
		w, h = b.Dx(), b.Dy()
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return entity.PageImage{}, fmt.Errorf("re-encode page: %w", err)
	}
	return entity.PageImage{
		Index:      0,
		SourcePage: 1,
		Width:      w,
		Height:     h,
		PNG:        buf.Bytes(),
	}, nil
}

// downscale shrinks img so its longest side equals maxDim, preserving aspect.
func downscale(img image.Image, maxDim int) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	var nw, nh int
	if w >= h {
		nw = maxDim
		nh = h * maxDim / w
	} else {
		nh = maxDim
		nw = w * maxDim / h
	}
	if nw < 1 {
		nw = 1
	}
	if nh < 1 {
		nh = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)
	return dst
}

// rasterizePDF renders every page of a PDF at the target DPI.
// Page order equals document order and the rendered count must match the
// source page count exactly.
func (r *Rasterizer) rasterizePDF(ctx context.Context, artifact entity.UploadedArtifact) ([]entity.PageImage, error) {
	count, err := r.pageCount(bytes.NewReader(artifact.Bytes))
	if err != nil {
		return nil, fmt.Errorf("pdf page count: %v: %w", err, common.ErrCorruptArtifact)
	}
	if count == 0 {
		return nil, fmt.Errorf("pdf has no pages: %w", common.ErrCorruptArtifact)
	}
	if r.cfg.MaxPages > 0 && count > r.cfg.MaxPages {
		return nil, fmt.Errorf("pdf has %d pages, limit %d: %w",
			count, r.cfg.MaxPages, common.ErrArtifactTooLarge)
	}

	tmpDir, err := os.MkdirTemp("", "docr-pp-*")
	if err != nil {
		return nil, fmt.Errorf("tempdir: %w", err)
	}
	defer func() {
		if rmErr := os.RemoveAll(tmpDir); rmErr != nil {
			r.logger.Warn("failed to remove temp dir", "path", tmpDir, "error", rmErr)
		}
	}()

	src := filepath.Join(tmpDir, "artifact.pdf")
	if err := os.WriteFile(src, artifact.Bytes, 0o600); err != nil {
		return nil, fmt.Errorf("write temp pdf: %w", err)
	}

	prefix := filepath.Join(tmpDir, "page")
	// pdftoppm -r <dpi> -png <in.pdf> <tmp/page>
	_, errb, err := r.runner.Run(ctx, r.cfg.Pdftoppm, "-r", strconv.Itoa(r.cfg.TargetDPI), "-png", src, prefix)
	if err != nil {
		return nil, fmt.Errorf("pdftoppm: %s: %v: %w", execx.Truncate(string(errb), 512), err, common.ErrCorruptArtifact)
	}

	matches, _ := filepath.Glob(prefix + "-*.png")
	sortByPageNumber(matches)
	if len(matches) != count {
		return nil, fmt.Errorf("rendered %d pages, source has %d: %w",
			len(matches), count, common.ErrCorruptArtifact)
	}

	pages := make([]entity.PageImage, 0, count)
	for i, path := range matches {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read rendered page %d: %w", i+1, err)
		}
		cfg, err := png.DecodeConfig(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("decode rendered page %d: %v: %w", i+1, err, common.ErrCorruptArtifact)
		}
		pages = append(pages, entity.PageImage{
			Index:      i,
			SourcePage: i + 1,
			Width:      cfg.Width,
			Height:     cfg.Height,
			PNG:        data,
		})
	}
	r.logger.Debug("pdf rasterized", "pages", count, "dpi", r.cfg.TargetDPI)
	return pages, nil
}

var pageNumRe = regexp.MustCompile(`-(\d+)\.png$`)

// sortByPageNumber orders rendered page files by their numeric suffix so
// page-10 sorts after page-9.
func sortByPageNumber(paths []string) {
	sort.Slice(paths, func(i, j int) bool {
		mi := pageNumRe.FindStringSubmatch(paths[i])
		mj := pageNumRe.FindStringSubmatch(paths[j])
		if len(mi) > 1 && len(mj) > 1 {
			ni, _ := strconv.Atoi(mi[1])
			nj, _ := strconv.Atoi(mj[1])
			return ni < nj
		}
		return paths[i] < paths[j]
	})
}
