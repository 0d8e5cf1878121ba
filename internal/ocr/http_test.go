package ocr

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/riks17/Document-OCR/internal/common"
)

func TestHTTPClientRecognize(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/recognize" {
			t.Errorf("path = %q, want /v1/recognize", r.URL.Path)
		}
		var req recognizeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if req.Image == "" {
			t.Error("request image is empty")
		}
		_ = json.NewEncoder(w).Encode(recognizeResponse{
			Text:       "Name:  John\n",
			Confidence: 0.92,
			Language:   "eng",
		})
	}))
	defer srv.Close()

	c := NewHTTPClient(HTTPConfig{BaseURL: srv.URL, Language: "eng"})
	res, err := c.Recognize(context.Background(), testPage())
	if err != nil {
		t.Fatalf("Recognize returned error: %v", err)
	}
	if res.Text != "Name: John" {
		t.Errorf("text = %q, want normalized \"Name: John\"", res.Text)
	}
	if res.Confidence != 0.92 {
		t.Errorf("confidence = %v, want 0.92", res.Confidence)
	}
}

func TestHTTPClientStatusClassification(t *testing.T) {
	t.Run("5xx is unavailable", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()
		c := NewHTTPClient(HTTPConfig{BaseURL: srv.URL})
		_, err := c.Recognize(context.Background(), testPage())
		if !errors.Is(err, common.ErrEngineUnavailable) {
			t.Errorf("err = %v, want ErrEngineUnavailable", err)
		}
	})

	t.Run("4xx is rejected", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnprocessableEntity)
		}))
		defer srv.Close()
		c := NewHTTPClient(HTTPConfig{BaseURL: srv.URL})
		_, err := c.Recognize(context.Background(), testPage())
		if !errors.Is(err, common.ErrEngineRejected) {
			t.Errorf("err = %v, want ErrEngineRejected", err)
		}
	})

	t.Run("connection refused is unavailable", func(t *testing.T) {
		c := NewHTTPClient(HTTPConfig{BaseURL: "http://127.0.0.1:1"})
		_, err := c.Recognize(context.Background(), testPage())
		if !errors.Is(err, common.ErrEngineUnavailable) {
			t.Errorf("err = %v, want ErrEngineUnavailable", err)
		}
	})
}
