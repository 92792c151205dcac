// Package extraction forwards free text and/or an image to a generative
// model endpoint and maps the response into a fixed-shape listing draft.
package extraction

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

	"github.com/tidwall/gjson"
	"go.uber.org/zap"

	"github.com/spec-kit/sublease-service/internal/config"
)

// ErrNotConfigured signals a missing extraction endpoint.
var ErrNotConfigured = errors.New("extraction endpoint not configured")

// ListingDraft is the fixed output shape of the extraction call.
type ListingDraft struct {
	Title       string   `json:"title"`
	Address     string   `json:"address"`
	Rent        int      `json:"rent"`
	Bedrooms    int      `json:"bedrooms"`
	Bathrooms   float64  `json:"bathrooms"`
	StartDate   string   `json:"start_date"`
	EndDate     string   `json:"end_date"`
	Amenities   []string `json:"amenities"`
	Description string   `json:"description"`
}

// Client calls the generative extraction endpoint. Stateless; one request
// per call, no retries.
type Client struct {
	endpoint string
	apiKey   string
	client   *http.Client
	logger   *zap.Logger
}

// NewClient constructs the extraction client.
func NewClient(cfg config.ExtractionConfig, logger *zap.Logger) *Client {
	timeout := time.Duration(cfg.TimeoutSec) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		endpoint: strings.TrimRight(cfg.EndpointURL, "/"),
		apiKey:   cfg.APIKey,
		client:   &http.Client{Timeout: timeout},
		logger:   logger,
	}
}

type extractRequest struct {
	Text     string `json:"text,omitempty"`
	ImageURL string `json:"image_url,omitempty"`
}

// Extract sends the text/image to the model and shapes the result.
func (c *Client) Extract(ctx context.Context, text, imageURL string) (*ListingDraft, error) {
	if c.endpoint == "" {
		return nil, ErrNotConfigured
	}

	payload, err := json.Marshal(extractRequest{Text: text, ImageURL: imageURL})
	if err != nil {
		return nil, fmt.Errorf("marshal extract request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create extract request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call extraction endpoint: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read extraction response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("extraction endpoint failed",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", truncate(body, 500)))
		return nil, fmt.Errorf("extraction endpoint returned %d", resp.StatusCode)
	}

	return shapeDraft(body), nil
}

// shapeDraft tolerates loosely structured model output: fields are pulled
// individually so one malformed value does not sink the whole draft.
func shapeDraft(body []byte) *ListingDraft {
	root := gjson.ParseBytes(body)

	draft := &ListingDraft{
		Title:       root.Get("title").String(),
		Address:     root.Get("address").String(),
		Rent:        int(root.Get("rent").Int()),
		Bedrooms:    int(root.Get("bedrooms").Int()),
		Bathrooms:   root.Get("bathrooms").Float(),
		StartDate:   root.Get("start_date").String(),
		EndDate:     root.Get("end_date").String(),
		Description: root.Get("description").String(),
	}
	for _, item := range root.Get("amenities").Array() {
		if s := item.String(); s != "" {
			draft.Amenities = append(draft.Amenities, s)
		}
	}
	return draft
}

func truncate(b []byte, n int) []byte {
	if len(b) <= n {
		return b
	}
	return b[:n]
}
