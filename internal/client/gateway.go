package client

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"gemino/internal/models"
)

// GatewayError is a non-2xx answer from the gateway. Message is the server's error text
// when it sent one.
type GatewayError struct {
	StatusCode int
	Message    string
}

func (e *GatewayError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("Request failed with status code %d", e.StatusCode)
}

// GatewayClient calls the completion gateway over HTTP.
type GatewayClient struct {
	resty  *resty.Client
	logger *zap.Logger
}

func NewGatewayClient(baseURL string, timeout time.Duration, logger *zap.Logger) *GatewayClient {
	if logger == nil {
		logger = zap.NewNop()
	}
	restyClient := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", "Gemino-Chat/1.0")

	return &GatewayClient{resty: restyClient, logger: logger}
}

// Generate posts prompt to /generate and returns the reply. A 2xx body without a reply
// yields an empty string and no error.
func (c *GatewayClient) Generate(ctx context.Context, prompt string) (string, error) {
	var ok models.GenerateResponse
	var fail models.ErrorResponse

	resp, err := c.resty.R().
		SetContext(ctx).
		SetBody(models.GenerateRequest{Prompt: models.Prompt(prompt)}).
		SetResult(&ok).
		SetError(&fail).
		Post("/generate")
	if err != nil {
		c.logger.Warn("gateway unreachable", zap.Error(err))
		return "", fmt.Errorf("gateway request failed: %w", err)
	}

	if resp.IsError() || resp.StatusCode() < http.StatusOK || resp.StatusCode() >= http.StatusMultipleChoices {
		gwErr := &GatewayError{StatusCode: resp.StatusCode(), Message: fail.Error}
		c.logger.Warn("gateway returned error",
			zap.Int("status", resp.StatusCode()),
			zap.String("error", gwErr.Error()),
			zap.String("request_id", resp.Header().Get("X-Request-ID")),
		)
		return "", gwErr
	}

	c.logger.Debug("gateway replied",
		zap.Int("status", resp.StatusCode()),
		zap.Duration("elapsed", resp.Time()),
	)
	return ok.Reply, nil
}
