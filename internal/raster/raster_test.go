package raster

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"testing"

	"github.com/google/uuid"

	"github.com/riks17/Document-OCR/internal/common"
	"github.com/riks17/Document-OCR/internal/entity"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h))); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func jpegBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h)), nil); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func artifact(mime string, data []byte) entity.UploadedArtifact {
	return entity.UploadedArtifact{
		Bytes:    data,
		MIMEType: mime,
		OwnerID:  uuid.New(),
	}
}

func TestRasterizeImage(t *testing.T) {
	r := NewRasterizer(common.RasterConfig{MaxBytes: 1 << 20, MaxImageDim: 100}, nil)

	pages, err := r.Rasterize(context.Background(), artifact("image/png", pngBytes(t, 10, 8)))
	if err != nil {
		t.Fatalf("Rasterize returned error: %v", err)
	}
	if len(pages) != 1 {
		t.Fatalf("pages = %d, want 1", len(pages))
	}
	p := pages[0]
	if p.Index != 0 || p.SourcePage != 1 {
		t.Errorf("page indices = (%d, %d), want (0, 1)", p.Index, p.SourcePage)
	}
	if p.Width != 10 || p.Height != 8 {
		t.Errorf("page dims = %dx%d, want 10x8", p.Width, p.Height)
	}
	if _, err := png.DecodeConfig(bytes.NewReader(p.PNG)); err != nil {
		t.Errorf("page PNG does not decode: %v", err)
	}
}

func TestRasterizeImageDownscales(t *testing.T) {
	r := NewRasterizer(common.RasterConfig{MaxBytes: 1 << 20, MaxImageDim: 4}, nil)

	pages, err := r.Rasterize(context.Background(), artifact("image/jpeg", jpegBytes(t, 10, 8)))
	if err != nil {
		t.Fatalf("Rasterize returned error: %v", err)
	}
	if got := pages[0]; got.Width != 4 || got.Height != 3 {
		t.Errorf("downscaled dims = %dx%d, want 4x3", got.Width, got.Height)
	}
}

func TestRasterizeRejectsBadArtifacts(t *testing.T) {
	cases := []struct {
		name     string
		maxBytes int64
		artifact entity.UploadedArtifact
		want     error
	}{
		{"unsupported mime", 1 << 20, artifact("image/tiff", pngBytes(t, 2, 2)), common.ErrUnsupportedFormat},
		{"empty", 1 << 20, artifact("image/png", nil), common.ErrCorruptArtifact},
		{"oversized", 16, artifact("image/png", pngBytes(t, 64, 64)), common.ErrArtifactTooLarge},
		{"header mismatch", 1 << 20, artifact("image/png", jpegBytes(t, 2, 2)), common.ErrCorruptArtifact},
		{"truncated png", 1 << 20, artifact("image/png", pngBytes(t, 8, 8)[:12]), common.ErrCorruptArtifact},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r := NewRasterizer(common.RasterConfig{MaxBytes: c.maxBytes}, nil)
			_, err := r.Rasterize(context.Background(), c.artifact)
			if !errors.Is(err, c.want) {
				t.Errorf("err = %v, want %v", err, c.want)
			}
		})
	}
}

// pdfRunner fakes pdftoppm by writing one PNG per page under the prefix
// passed as its final argument.
type pdfRunner struct {
	t     *testing.T
	pages int
}

func (p pdfRunner) Run(_ context.Context, name string, args ...string) ([]byte, []byte, error) {
	p.t.Helper()
	prefix := args[len(args)-1]
	for i := 1; i <= p.pages; i++ {
		// width encodes the page number so ordering is observable
		var buf bytes.Buffer
		if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 100+i, 10))); err != nil {
			p.t.Fatal(err)
		}
		if err := os.WriteFile(prefix+"-"+itoa(i)+".png", buf.Bytes(), 0o600); err != nil {
			p.t.Fatal(err)
		}
	}
	return nil, nil, nil
}

func itoa(i int) string {
	if i >= 10 {
		return string(rune('0'+i/10)) + string(rune('0'+i%10))
	}
	return string(rune('0' + i))
}

func fakePDF() []byte {
	return []byte("%PDF-1.4 not really a pdf")
}

func TestRasterizePDF(t *testing.T) {
	const n = 12
	r := NewRasterizer(common.RasterConfig{MaxBytes: 1 << 20, MaxPages: 50}, nil)
	r.runner = pdfRunner{t: t, pages: n}
	r.pageCount = func(io.ReadSeeker) (int, error) { return n, nil }

	pages, err := r.Rasterize(context.Background(), artifact("application/pdf", fakePDF()))
	if err != nil {
		t.Fatalf("Rasterize returned error: %v", err)
	}
	if len(pages) != n {
		t.Fatalf("pages = %d, want %d", len(pages), n)
	}
	for i, p := range pages {
		if p.Index != i || p.SourcePage != i+1 {
			t.Errorf("page %d indices = (%d, %d), want (%d, %d)", i, p.Index, p.SourcePage, i, i+1)
		}
		// page N was rendered 100+N wide; numeric sort must beat lexical
		if p.Width != 100+i+1 {
			t.Errorf("page %d width = %d, want %d (out of order)", i, p.Width, 100+i+1)
		}
	}
}

func TestRasterizePDFLimits(t *testing.T) {
	t.Run("too many pages", func(t *testing.T) {
		r := NewRasterizer(common.RasterConfig{MaxBytes: 1 << 20, MaxPages: 2}, nil)
		r.pageCount = func(io.ReadSeeker) (int, error) { return 3, nil }
		_, err := r.Rasterize(context.Background(), artifact("application/pdf", fakePDF()))
		if !errors.Is(err, common.ErrArtifactTooLarge) {
			t.Errorf("err = %v, want ErrArtifactTooLarge", err)
		}
	})

	t.Run("unreadable pdf", func(t *testing.T) {
		r := NewRasterizer(common.RasterConfig{MaxBytes: 1 << 20, MaxPages: 50}, nil)
		r.pageCount = func(io.ReadSeeker) (int, error) { return 0, errors.New("xref table corrupt") }
		_, err := r.Rasterize(context.Background(), artifact("application/pdf", fakePDF()))
		if !errors.Is(err, common.ErrCorruptArtifact) {
			t.Errorf("err = %v, want ErrCorruptArtifact", err)
		}
	})

	t.Run("rendered count mismatch", func(t *testing.T) {
		r := NewRasterizer(common.RasterConfig{MaxBytes: 1 << 20, MaxPages: 50}, nil)
		r.runner = pdfRunner{t: t, pages: 1}
		r.pageCount = func(io.ReadSeeker) (int, error) { return 2, nil }
		_, err := r.Rasterize(context.Background(), artifact("application/pdf", fakePDF()))
		if !errors.Is(err, common.ErrCorruptArtifact) {
			t.Errorf("err = %v, want ErrCorruptArtifact", err)
		}
	})
}
