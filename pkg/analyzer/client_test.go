package analyzer

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func newTestClient(handler http.HandlerFunc) (*Client, *httptest.Server) {
	server := httptest.NewServer(handler)
	return NewClient(server.URL, 5*time.Second), server
}

func TestAnalyzeSuccess(t *testing.T) {
	var gotPath, gotFilename, gotBody string

	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path

		file, header, err := r.FormFile("file")
		if err != nil {
			t.Fatalf("FormFile error = %v", err)
		}
		defer file.Close()
		gotFilename = header.Filename
		body, _ := io.ReadAll(file)
		gotBody = string(body)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"summary": "a summary",
			"short_notes": "some notes",
			"flashcards": [{"front": "f", "back": "b"}],
			"mcqs": [{"question": "q", "options": ["x", "y"], "answer": "x"}]
		}`))
	})
	defer server.Close()

	raw, err := client.Analyze(context.Background(), "lecture.pdf", strings.NewReader("pdf bytes"))
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}

	if gotPath != "/upload" {
		t.Errorf("path = %q, want /upload", gotPath)
	}
	if gotFilename != "lecture.pdf" {
		t.Errorf("filename = %q", gotFilename)
	}
	if gotBody != "pdf bytes" {
		t.Errorf("body = %q", gotBody)
	}

	if raw.Summary == nil || *raw.Summary != "a summary" {
		t.Errorf("Summary = %v", raw.Summary)
	}
	if raw.ShortNotes == nil || *raw.ShortNotes != "some notes" {
		t.Errorf("ShortNotes = %v", raw.ShortNotes)
	}
	if len(raw.Flashcards) != 1 || raw.Flashcards[0].Front != "f" {
		t.Errorf("Flashcards = %v", raw.Flashcards)
	}
	if len(raw.MCQs) != 1 || raw.MCQs[0].Answer != "x" {
		t.Errorf("MCQs = %v", raw.MCQs)
	}
}

func TestAnalyzeNonSuccessStatus(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})
	defer server.Close()

	_, err := client.Analyze(context.Background(), "a.pdf", strings.NewReader("x"))

	var uploadErr *UploadError
	if !errors.As(err, &uploadErr) {
		t.Fatalf("error = %v, want *UploadError", err)
	}
	if !strings.Contains(uploadErr.Reason, "500") {
		t.Errorf("Reason = %q, want status in reason", uploadErr.Reason)
	}
}

func TestAnalyzeMalformedBody(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	})
	defer server.Close()

	_, err := client.Analyze(context.Background(), "a.pdf", strings.NewReader("x"))

	var uploadErr *UploadError
	if !errors.As(err, &uploadErr) {
		t.Fatalf("error = %v, want *UploadError", err)
	}
	if uploadErr.Reason != "malformed response body" {
		t.Errorf("Reason = %q", uploadErr.Reason)
	}
}

func TestAnalyzeConnectionRefused(t *testing.T) {
	client := NewClient("http://127.0.0.1:1", 500*time.Millisecond)

	_, err := client.Analyze(context.Background(), "a.pdf", strings.NewReader("x"))

	var uploadErr *UploadError
	if !errors.As(err, &uploadErr) {
		t.Fatalf("error = %v, want *UploadError", err)
	}
}
