package ocr

import (
	"context"
	"errors"
	"os/exec"
	"strings"
	"testing"
	"time"

	"github.com/riks17/Document-OCR/internal/common"
	"github.com/riks17/Document-OCR/internal/entity"
)

// stubRunner serves canned output and distinguishes the TSV pass by its
// trailing "tsv" argument.
type stubRunner struct {
	stdout    string
	tsvStdout string
	stderr    string
	err       error
	calls     [][]string
}

func (s *stubRunner) Run(_ context.Context, name string, args ...string) ([]byte, []byte, error) {
	s.calls = append(s.calls, append([]string{name}, args...))
	if s.err != nil {
		return nil, []byte(s.stderr), s.err
	}
	if len(args) > 0 && args[len(args)-1] == "tsv" {
		return []byte(s.tsvStdout), nil, nil
	}
	return []byte(s.stdout), nil, nil
}

const tsvHeader = "level\tpage_num\tblock_num\tpar_num\tline_num\tword_num\tleft\ttop\twidth\theight\tconf\ttext\n"

func tsvWord(conf, word string) string {
	return "5\t1\t1\t1\t1\t1\t0\t0\t10\t10\t" + conf + "\t" + word + "\n"
}

func testPage() entity.PageImage {
	return entity.PageImage{Index: 0, SourcePage: 1, Width: 10, Height: 10, PNG: []byte("not-a-real-png")}
}

func TestTesseractRecognize(t *testing.T) {
	runner := &stubRunner{
		stdout:    "Name:  John   Doe\r\n\r\n\r\nABCDE1234F\n",
		tsvStdout: tsvHeader + tsvWord("80", "Name:") + tsvWord("90", "John") + tsvWord("-1", ""),
	}
	c := NewTesseractClientWithRunner(TesseractConfig{Language: "eng"}, runner)

	res, err := c.Recognize(context.Background(), testPage())
	if err != nil {
		t.Fatalf("Recognize returned error: %v", err)
	}
	if res.Index != 0 {
		t.Errorf("Index = %d, want 0", res.Index)
	}
	if !strings.Contains(res.Text, "Name: John Doe") {
		t.Errorf("text not normalized: %q", res.Text)
	}
	// mean of 80 and 90, the -1 sentinel skipped
	if res.Confidence < 0.84 || res.Confidence > 0.86 {
		t.Errorf("confidence = %v, want ~0.85", res.Confidence)
	}
	if res.Language != "eng" {
		t.Errorf("language = %q, want eng", res.Language)
	}
	if len(runner.calls) != 2 {
		t.Fatalf("runner calls = %d, want 2 (text + tsv)", len(runner.calls))
	}
}

func TestTesseractErrorClassification(t *testing.T) {
	t.Run("binary missing is unavailable", func(t *testing.T) {
		runner := &stubRunner{err: exec.ErrNotFound}
		c := NewTesseractClientWithRunner(TesseractConfig{}, runner)
		_, err := c.Recognize(context.Background(), testPage())
		if !errors.Is(err, common.ErrEngineUnavailable) {
			t.Errorf("err = %v, want ErrEngineUnavailable", err)
		}
	})

	t.Run("deadline is timeout", func(t *testing.T) {
		runner := &stubRunner{err: errors.New("signal: killed")}
		c := NewTesseractClientWithRunner(TesseractConfig{CallTimeout: time.Nanosecond}, runner)
		_, err := c.Recognize(context.Background(), testPage())
		if !errors.Is(err, common.ErrEngineTimeout) {
			t.Errorf("err = %v, want ErrEngineTimeout", err)
		}
	})

	t.Run("other failures are rejections", func(t *testing.T) {
		runner := &stubRunner{err: errors.New("exit status 1"), stderr: "Error in pixReadStream"}
		c := NewTesseractClientWithRunner(TesseractConfig{}, runner)
		_, err := c.Recognize(context.Background(), testPage())
		if !errors.Is(err, common.ErrEngineRejected) {
			t.Errorf("err = %v, want ErrEngineRejected", err)
		}
		if !strings.Contains(err.Error(), "pixReadStream") {
			t.Errorf("err %v does not carry stderr detail", err)
		}
	})
}

func TestNormalize(t *testing.T) {
	in := "____\r\nName:\tJohn\r\n\n\n\nlast   line  \n----\n"
	got := Normalize(in)
	if strings.Contains(got, "\r") {
		t.Error("CRLF not normalized")
	}
	if strings.Contains(got, "____") || strings.Contains(got, "----") {
		t.Errorf("box noise survived: %q", got)
	}
	if strings.Contains(got, "\n\n\n") {
		t.Errorf("blank runs not collapsed: %q", got)
	}
	if !strings.Contains(got, "Name: John") {
		t.Errorf("tabs/spaces not collapsed: %q", got)
	}
}
