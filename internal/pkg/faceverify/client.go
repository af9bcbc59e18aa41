package faceverify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Result is the outcome of a 1:1 verification against the student's
// registered descriptors.
type Result struct {
	Verified      bool
	Confidence    float64
	SpoofDetected bool
}

// Verifier verifies a submitted face image against a student's
// registered face data.
type Verifier interface {
	Verify(ctx context.Context, studentID string, image string) (*Result, error)
}

// Client calls the face recognition microservice.
type Client struct {
	BaseURL string
	HTTP    *http.Client
	Skip    bool
}

// New creates a client. With skip set, every call succeeds with a high
// confidence so the rest of the pipeline can run without the service.
func New(baseURL string, timeout time.Duration, skip bool) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		BaseURL: baseURL,
		Skip:    skip,
		HTTP: &http.Client{
			Timeout: timeout,
		},
	}
}

// Verify performs 1:1 verification. Network and server failures are
// returned as errors; a clean "no match" is not an error.
func (c *Client) Verify(ctx context.Context, studentID string, image string) (*Result, error) {
	if c.Skip {
		return &Result{
			Verified:   true,
			Confidence: 0.95,
		}, nil
	}
	if image == "" {
		return nil, fmt.Errorf("face image required")
	}

	body, _ := json.Marshal(map[string]string{
		"student_id": studentID,
		"image":      image,
	})
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/verify", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("face service request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("face service error %s: %s", resp.Status, string(bodyBytes))
	}

	var out struct {
		Verified      bool    `json:"verified"`
		Confidence    float64 `json:"confidence"`
		SpoofDetected bool    `json:"spoof_detected"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &Result{
		Verified:      out.Verified,
		Confidence:    out.Confidence,
		SpoofDetected: out.SpoofDetected,
	}, nil
}

// Health checks if the face service is available.
func (c *Client) Health(ctx context.Context) error {
	if c.Skip {
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/health", nil)
	if err != nil {
		return err
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("face service unavailable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("face service unhealthy: %s", resp.Status)
	}

	return nil
}
