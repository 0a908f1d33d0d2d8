package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"osg-reconciler/internal/domain"
)

// HTTPError is a non-200 answer from the tracking endpoint.
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	msg := strings.TrimSpace(e.Body)
	if msg == "" {
		msg = "<empty body>"
	}
	if len(msg) > 512 {
		msg = msg[:512] + "..."
	}
	return fmt.Sprintf("tracking http %d: %s", e.StatusCode, msg)
}

// TrackingClient posts claims to the sheet-backed web app and reads them back.
type TrackingClient struct {
	url        string
	httpClient *http.Client
}

func NewTrackingClient(url string, timeout time.Duration) *TrackingClient {
	if timeout <= 0 {
		timeout = 8 * time.Second
	}
	return &TrackingClient{
		url:        strings.TrimSpace(url),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Submit posts one record. Only a 200 response counts as accepted.
func (c *TrackingClient) Submit(ctx context.Context, record domain.TrackingRecord) error {
	if c.url == "" {
		return errors.New("tracking url is not configured")
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(record); err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	_, err = c.do(req)
	return err
}

// List fetches every tracked claim. The endpoint may answer with a bare array
// or with the array under "data".
func (c *TrackingClient) List(ctx context.Context) ([]domain.TrackingRecord, error) {
	if c.url == "" {
		return nil, errors.New("tracking url is not configured")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	raw, err := c.do(req)
	if err != nil {
		return nil, err
	}

	var records []domain.TrackingRecord
	if err := json.Unmarshal(raw, &records); err == nil {
		return records, nil
	}
	var wrapped struct {
		Data []domain.TrackingRecord `json:"data"`
	}
	if err := json.Unmarshal(raw, &wrapped); err != nil {
		return nil, fmt.Errorf("failed to decode tracking records: %w", err)
	}
	return wrapped.Data, nil
}

func (c *TrackingClient) do(req *http.Request) ([]byte, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &HTTPError{StatusCode: resp.StatusCode, Body: string(raw)}
	}
	return raw, nil
}
