package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"
	"google.golang.org/api/option"

	"gemino/internal/config"
	"gemino/internal/middleware"
	"gemino/internal/monitoring"
)

// GeminiModel is the model every prompt is sent to.
const GeminiModel = "gemini-2.5-flash"

// FallbackReply is returned when the provider answers without any text.
const FallbackReply = "No reply from Gemini API"

// TextGenerator is a single-shot text completion against one provider SDK.
type TextGenerator interface {
	GenerateText(ctx context.Context, model, prompt string) (string, error)
	Close() error
}

// NewTextGenerator builds the generator for the configured SDK.
func NewTextGenerator(ctx context.Context, sdk, apiKey string) (TextGenerator, error) {
	switch sdk {
	case config.SDKGenAI:
		return NewGenAIClient(ctx, apiKey)
	case config.SDKGenerativeAI, "":
		return NewGenerativeAIClient(ctx, apiKey)
	default:
		return nil, fmt.Errorf("unsupported Gemini SDK %q", sdk)
	}
}

type GeminiService struct {
	gen     TextGenerator
	model   string
	logger  *zap.Logger
	metrics *monitoring.Metrics
}

func NewGeminiService(gen TextGenerator, logger *zap.Logger, metrics *monitoring.Metrics) *GeminiService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if metrics == nil {
		metrics = monitoring.NewMetrics()
	}
	return &GeminiService{
		gen:     gen,
		model:   GeminiModel,
		logger:  logger,
		metrics: metrics,
	}
}

func (s *GeminiService) Close() error {
	return s.gen.Close()
}

// Generate sends prompt to Gemini and returns its reply. A reply without text is not an
// error; it is replaced by FallbackReply.
func (s *GeminiService) Generate(ctx context.Context, prompt string) (string, error) {
	if prompt == "" {
		s.metrics.ObserveGenerate(monitoring.OutcomeInvalid)
		return "", &InvalidRequestError{Message: msgPromptRequired}
	}

	start := time.Now()
	text, err := s.gen.GenerateText(ctx, s.model, prompt)
	s.metrics.ObserveUpstream(time.Since(start))
	if err != nil {
		s.metrics.ObserveGenerate(monitoring.OutcomeUpstreamError)
		s.logger.Error("Gemini API error",
			zap.String("request_id", middleware.GetRequestID(ctx)),
			zap.String("model", s.model),
			zap.Error(err),
		)
		return "", &UpstreamError{Message: msgUpstreamFailed, Err: err}
	}

	if text == "" {
		s.metrics.ObserveGenerate(monitoring.OutcomeFallback)
		s.logger.Warn("Gemini returned empty text, using fallback",
			zap.String("request_id", middleware.GetRequestID(ctx)),
		)
		return FallbackReply, nil
	}

	s.metrics.ObserveGenerate(monitoring.OutcomeReply)
	return text, nil
}

// GenerativeAIClient talks to Gemini through github.com/google/generative-ai-go.
type GenerativeAIClient struct {
	client *genai.Client
}

func NewGenerativeAIClient(ctx context.Context, apiKey string) (*GenerativeAIClient, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GenerativeAIClient{client: client}, nil
}

func (c *GenerativeAIClient) GenerateText(ctx context.Context, model, prompt string) (string, error) {
	resp, err := c.client.GenerativeModel(model).GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("Gemini API error: %w", err)
	}
	return extractText(resp), nil
}

func (c *GenerativeAIClient) Close() error {
	return c.client.Close()
}

func extractText(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}
	var text strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content != nil {
			for _, part := range cand.Content.Parts {
				if t, ok := part.(genai.Text); ok {
					text.WriteString(string(t))
				}
			}
		}
	}
	return text.String()
}
