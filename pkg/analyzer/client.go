package analyzer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"
)

type RawFlashcard struct {
	Front string `json:"front"`
	Back  string `json:"back"`
}

type RawMCQ struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Answer   string   `json:"answer"`
}

// RawContent mirrors the analysis service response body. Summary and
// ShortNotes are pointers so a missing field is distinguishable from an
// empty one.
type RawContent struct {
	Summary    *string        `json:"summary"`
	ShortNotes *string        `json:"short_notes"`
	Flashcards []RawFlashcard `json:"flashcards"`
	MCQs       []RawMCQ       `json:"mcqs"`
}

// UploadError wraps any failure of the analysis call: network error,
// non-success status, or an undecodable body.
type UploadError struct {
	Reason string
	Err    error
}

func (e *UploadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("upload failed: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("upload failed: %s", e.Reason)
}

func (e *UploadError) Unwrap() error { return e.Err }

// Client calls the external content-generation service.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Analyze sends the file as a single multipart field named "file" and decodes
// the generated study content. Single attempt, no retry.
func (c *Client) Analyze(ctx context.Context, filename string, file io.Reader) (*RawContent, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return nil, &UploadError{Reason: "encode request", Err: err}
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, &UploadError{Reason: "read file", Err: err}
	}
	if err := writer.Close(); err != nil {
		return nil, &UploadError{Reason: "encode request", Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/upload", &body)
	if err != nil {
		return nil, &UploadError{Reason: "build request", Err: err}
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &UploadError{Reason: "call analysis service", Err: err}
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, &UploadError{Reason: "read response", Err: err}
	}
	if res.StatusCode != http.StatusOK {
		return nil, &UploadError{Reason: fmt.Sprintf("analysis service returned status %d", res.StatusCode)}
	}

	var raw RawContent
	if err := json.Unmarshal(resBody, &raw); err != nil {
		return nil, &UploadError{Reason: "malformed response body", Err: err}
	}
	return &raw, nil
}
