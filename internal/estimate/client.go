// ABOUTME: AI nutrient estimation client for food descriptions and photos.
// ABOUTME: Talks to an OpenAI-compatible chat completions endpoint.
package estimate

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/harperreed/nosh/internal/models"
)

const (
	DefaultBaseURL = "https://api.openai.com/v1"
	DefaultModel   = "gpt-4o-mini"
)

const systemPrompt = `You are a nutrition estimator. Given a food description or photo,
respond with a single JSON object and nothing else:
{"name": "<short food name>", "nutrients": {"calories": 0, "protein": 0, "fiber": 0, "carbs": 0, "fat": 0, "sugar": 0}}
Calories in kcal, everything else in grams. Estimate for the whole described portion.`

// Estimate is a proposed food entry: a name plus a nutrient estimate.
// Nutrient fields the upstream omits stay at zero.
type Estimate struct {
	Name      string                 `json:"name"`
	Nutrients models.NutrientProfile `json:"nutrients"`
}

// EstimationError wraps any upstream failure: unreachable service, missing
// credential, or a response that does not parse into the expected shape.
type EstimationError struct {
	Op  string
	Err error
}

func (e *EstimationError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("estimation failed: %s", e.Op)
	}
	return fmt.Sprintf("estimation failed: %s: %v", e.Op, e.Err)
}

func (e *EstimationError) Unwrap() error { return e.Err }

// Client calls an OpenAI-compatible chat completions API.
type Client struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
}

// NewClient creates a client; empty baseURL or model fall back to defaults.
func NewClient(baseURL, apiKey, model string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if model == "" {
		model = DefaultModel
	}
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		apiKey:     apiKey,
		model:      model,
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}
}

// EstimateText proposes a name and nutrient profile for a food description.
func (c *Client) EstimateText(ctx context.Context, description string) (*Estimate, error) {
	if strings.TrimSpace(description) == "" {
		return nil, fmt.Errorf("description must not be empty")
	}
	return c.complete(ctx, []chatMessage{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: description},
	})
}

// EstimateImage proposes a name and nutrient profile for a food photo.
func (c *Client) EstimateImage(ctx context.Context, image []byte, mimeType string) (*Estimate, error) {
	if len(image) == 0 {
		return nil, fmt.Errorf("image must not be empty")
	}
	dataURL := fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(image))
	return c.complete(ctx, []chatMessage{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: []contentPart{
			{Type: "text", Text: "Estimate the nutrition of the food in this photo."},
			{Type: "image_url", ImageURL: &imageURL{URL: dataURL}},
		}},
	})
}

// Wire types for the chat completions API.

type chatMessage struct {
	Role    string `json:"role"`
	Content any    `json:"content"`
}

type contentPart struct {
	Type     string    `json:"type"`
	Text     string    `json:"text,omitempty"`
	ImageURL *imageURL `json:"image_url,omitempty"`
}

type imageURL struct {
	URL string `json:"url"`
}

type chatRequest struct {
	Model          string          `json:"model"`
	Messages       []chatMessage   `json:"messages"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

func (c *Client) complete(ctx context.Context, messages []chatMessage) (*Estimate, error) {
	if c.apiKey == "" {
		return nil, &EstimationError{Op: "missing API key (set NOSH_AI_API_KEY)"}
	}

	body, err := json.Marshal(chatRequest{
		Model:          c.model,
		Messages:       messages,
		ResponseFormat: &responseFormat{Type: "json_object"},
	})
	if err != nil {
		return nil, &EstimationError{Op: "encode request", Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, &EstimationError{Op: "build request", Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &EstimationError{Op: "call API", Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &EstimationError{Op: "read response", Err: err}
	}

	var parsed chatResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return nil, &EstimationError{Op: "parse response", Err: err}
	}
	if resp.StatusCode != http.StatusOK {
		if parsed.Error != nil && parsed.Error.Message != "" {
			return nil, &EstimationError{Op: fmt.Sprintf("API status %d", resp.StatusCode), Err: fmt.Errorf("%s", parsed.Error.Message)}
		}
		return nil, &EstimationError{Op: fmt.Sprintf("API status %d", resp.StatusCode)}
	}
	if len(parsed.Choices) == 0 {
		return nil, &EstimationError{Op: "response has no choices"}
	}

	return parseEstimate(parsed.Choices[0].Message.Content)
}

// parseEstimate decodes the model's JSON answer, tolerating a fenced code
// block around it.
func parseEstimate(content string) (*Estimate, error) {
	content = strings.TrimSpace(content)
	if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```json")
		content = strings.TrimPrefix(content, "```")
		content = strings.TrimSuffix(strings.TrimSpace(content), "```")
		content = strings.TrimSpace(content)
	}

	var est Estimate
	if err := json.Unmarshal([]byte(content), &est); err != nil {
		return nil, &EstimationError{Op: "parse estimate", Err: err}
	}
	if est.Name == "" {
		return nil, &EstimationError{Op: "estimate has no name"}
	}
	return &est, nil
}
