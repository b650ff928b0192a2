// Package ai wraps the hosted chat-completions API behind two calls, one to
// classify an email and one to extract order fields from it. Both degrade to
// a negative or failed result on any transport or parse error so a broken
// model backend can never write garbage into the order table.
package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const (
	defaultEndpoint = "https://models.github.ai/inference"
	defaultModel    = "openai/gpt-5"

	// Low temperature keeps the structured output stable between calls.
	temperature = 0.1

	requestTimeout = 30 * time.Second
)

type Config struct {
	Token    string
	Endpoint string
	Model    string
}

type Classification struct {
	IsOrderEmail bool     `json:"isOrderEmail"`
	Confidence   string   `json:"confidence"`
	Indicators   []string `json:"indicators,omitempty"`
	Reason       string   `json:"reason,omitempty"`
	Error        string   `json:"error,omitempty"`
}

type DeliveryInfo struct {
	Location          string `json:"location"`
	ExpectedDate      string `json:"expected_date"`
	StatusDescription string `json:"status_description"`
}

type ExtractedItem struct {
	ItemName string `json:"item_name"`
	Quantity int    `json:"quantity"`
	Price    string `json:"price"`
	Currency string `json:"currency"`
}

type OrderTotal struct {
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
}

// Extraction mirrors the JSON contract the extraction prompt demands from the
// model. Callers must branch on ExtractionSuccess before trusting any field.
type Extraction struct {
	ExtractionSuccess bool            `json:"extraction_success"`
	Vendor            string          `json:"vendor,omitempty"`
	CustomerName      string          `json:"customer_name,omitempty"`
	OrderNumber       string          `json:"order_number,omitempty"`
	OrderStatus       string          `json:"order_status,omitempty"`
	DeliveryInfo      *DeliveryInfo   `json:"delivery_info,omitempty"`
	Items             []ExtractedItem `json:"items,omitempty"`
	OrderTotal        *OrderTotal     `json:"order_total,omitempty"`
	Confidence        string          `json:"confidence,omitempty"`
	Notes             string          `json:"notes,omitempty"`
	Error             string          `json:"error,omitempty"`
}

type Client struct {
	http  *resty.Client
	model string
}

// NewClient fails fast when the bearer token is missing: a webhook deployment
// without credentials is a configuration error, not something to discover on
// the first email.
func NewClient(cfg Config) (*Client, error) {
	if cfg.Token == "" {
		return nil, errors.New("GITHUB_TOKEN environment variable is not set")
	}
	if cfg.Endpoint == "" {
		cfg.Endpoint = defaultEndpoint
	}
	if cfg.Model == "" {
		cfg.Model = defaultModel
	}

	httpClient := resty.New().
		SetBaseURL(strings.TrimRight(cfg.Endpoint, "/")).
		SetTimeout(requestTimeout).
		SetAuthToken(cfg.Token).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &Client{http: httpClient, model: cfg.Model}, nil
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Messages    []chatMessage `json:"messages"`
	Model       string        `json:"model"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func (c *Client) complete(ctx context.Context, systemPrompt, userContent string) (string, error) {
	req := chatRequest{
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userContent},
		},
		Model:       c.model,
		Temperature: temperature,
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(req).
		Post("/chat/completions")
	if err != nil {
		return "", err
	}
	if resp.StatusCode() != 200 {
		return "", errors.Errorf("chat completion failed with status %d: %s",
			resp.StatusCode(), string(resp.Body()))
	}

	var out chatResponse
	if err := json.Unmarshal(resp.Body(), &out); err != nil {
		return "", errors.Wrap(err, "parse completion response")
	}
	if len(out.Choices) == 0 {
		return "", errors.New("completion response has no choices")
	}
	return out.Choices[0].Message.Content, nil
}

// ClassifyEmail never returns an error: any failure is reported as "not an
// order email, low confidence" so the webhook skips rather than crashes.
func (c *Client) ClassifyEmail(ctx context.Context, subject, body string) Classification {
	content := fmt.Sprintf("Subject: %s\n\n%s", subject, body)

	raw, err := c.complete(ctx, classificationSystemPrompt, content)
	if err != nil {
		logrus.WithError(err).Error("email classification failed")
		return Classification{IsOrderEmail: false, Confidence: "Low", Error: err.Error()}
	}

	var cls Classification
	if err := json.Unmarshal([]byte(raw), &cls); err != nil {
		logrus.WithError(err).Error("classification output is not valid JSON")
		return Classification{IsOrderEmail: false, Confidence: "Low", Error: err.Error()}
	}
	return cls
}

// ExtractOrderData reports failure through the ExtractionSuccess flag, never
// through an error. The current time is injected into the prompt so the model
// can resolve relative dates like "arriving Wednesday".
func (c *Client) ExtractOrderData(ctx context.Context, subject, body string) Extraction {
	content := fmt.Sprintf("Subject: %s\n\n%s", subject, body)
	prompt := strings.Replace(extractionSystemPrompt, "{{NOW}}",
		time.Now().UTC().Format(time.RFC3339), 1)

	raw, err := c.complete(ctx, prompt, content)
	if err != nil {
		logrus.WithError(err).Error("order extraction failed")
		return Extraction{ExtractionSuccess: false, Error: err.Error(), Confidence: "Low"}
	}

	var ext Extraction
	if err := json.Unmarshal([]byte(raw), &ext); err != nil {
		logrus.WithError(err).Error("extraction output is not valid JSON")
		return Extraction{ExtractionSuccess: false, Error: err.Error(), Confidence: "Low"}
	}
	return ext
}
