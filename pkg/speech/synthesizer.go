package speech

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Synthesizer consumes plain text; no structured response comes back.
type Synthesizer interface {
	Speak(ctx context.Context, text string) error
}

type speakPayload struct {
	Text string `json:"text"`
}

// HTTPSynthesizer forwards text to an external synthesis endpoint.
type HTTPSynthesizer struct {
	baseURL    string
	httpClient *http.Client
}

func NewHTTPSynthesizer(baseURL string) *HTTPSynthesizer {
	return &HTTPSynthesizer{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (s *HTTPSynthesizer) Speak(ctx context.Context, text string) error {
	payload, err := json.Marshal(speakPayload{Text: text})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL, bytes.NewBuffer(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := s.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()
	io.Copy(io.Discard, res.Body)

	if res.StatusCode >= 300 {
		return fmt.Errorf("speech service returned status %d", res.StatusCode)
	}
	return nil
}

// NoopSynthesizer drops the text. Used when no speech endpoint is configured.
type NoopSynthesizer struct{}

func NewNoopSynthesizer() *NoopSynthesizer { return &NoopSynthesizer{} }

func (s *NoopSynthesizer) Speak(ctx context.Context, text string) error { return nil }
