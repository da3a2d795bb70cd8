package ai

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

	"pcstore-be/internal/logger"
	"pcstore-be/internal/utils"

	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

var (
	ErrNotConfigured = errors.New("AI service not configured")
	ErrInvalidInput  = errors.New("invalid description request")
	ErrEmptyResponse = errors.New("AI service returned no description")
)

const systemPrompt = "You help customers of a computer repair shop describe their device problem. " +
	"Write a short, clear repair request description (2-4 sentences) in plain text."

// Describer turns a device type and issue into a repair description.
type Describer interface {
	GenerateDescription(ctx context.Context, deviceType, issue string) (string, error)
}

type DescriptionRequest struct {
	DeviceType string `json:"deviceType"`
	Issue      string `json:"issue"`
}

type client struct {
	apiURL     string
	apiKey     string
	model      string
	httpClient *http.Client
}

// NewClient talks to an OpenAI-compatible chat completion endpoint.
func NewClient(apiURL, apiKey, model string) Describer {
	if apiKey == "" {
		logger.L().Warn("AI API key is empty, description generation disabled")
	}

	return &client{
		apiURL: apiURL,
		apiKey: apiKey,
		model:  model,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

func (c *client) GenerateDescription(ctx context.Context, deviceType, issue string) (string, error) {
	if c.apiKey == "" {
		return "", ErrNotConfigured
	}

	missing := utils.MissingFields([][2]string{{"deviceType", deviceType}, {"issue", issue}})
	if len(missing) > 0 {
		return "", fmt.Errorf("%w: missing %s", ErrInvalidInput, strings.Join(missing, ", "))
	}

	log := logger.FromCtx(ctx).With(
		zap.String("device_type", deviceType),
		zap.String("model", c.model),
	)

	body := map[string]interface{}{
		"model": c.model,
		"messages": []map[string]string{
			{"role": "system", "content": systemPrompt},
			{"role": "user", "content": fmt.Sprintf("Device: %s\nIssue: %s", deviceType, issue)},
		},
		"max_tokens":  200,
		"temperature": 0.7,
	}
	jsonBody, err := json.Marshal(body)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewBuffer(jsonBody))
	if err != nil {
		log.Error("Failed creating request", zap.Error(err))
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Error("AI request failed", zap.Error(err))
		return "", err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read ai response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		msg := gjson.GetBytes(bodyBytes, "error.message").String()
		if msg == "" {
			msg = string(bodyBytes)
		}
		log.Error("AI service returned non-success status",
			zap.Int("status", resp.StatusCode),
			zap.String("response", msg),
		)
		return "", fmt.Errorf("ai error (%d): %s", resp.StatusCode, msg)
	}

	text := strings.TrimSpace(gjson.GetBytes(bodyBytes, "choices.0.message.content").String())
	if text == "" {
		return "", ErrEmptyResponse
	}

	log.Info("AI description generated", zap.Int("length", len(text)))
	return text, nil
}
