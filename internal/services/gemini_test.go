package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	genaisdk "google.golang.org/genai"

	"gemino/internal/config"
	"gemino/internal/monitoring"
)

type MockTextGenerator struct {
	mock.Mock
}

func (m *MockTextGenerator) GenerateText(ctx context.Context, model, prompt string) (string, error) {
	args := m.Called(ctx, model, prompt)
	return args.String(0), args.Error(1)
}

func (m *MockTextGenerator) Close() error {
	return m.Called().Error(0)
}

func TestGeminiService_Generate_Reply(t *testing.T) {
	gen := new(MockTextGenerator)
	metrics := monitoring.NewMetrics()
	svc := NewGeminiService(gen, nil, metrics)

	gen.On("GenerateText", mock.Anything, GeminiModel, "hello").Return("hi there", nil)

	reply, err := svc.Generate(context.Background(), "hello")
	require.NoError(t, err)
	assert.Equal(t, "hi there", reply)
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.GenerateTotal.WithLabelValues(monitoring.OutcomeReply)))
	gen.AssertExpectations(t)
}

func TestGeminiService_Generate_EmptyTextFallsBack(t *testing.T) {
	gen := new(MockTextGenerator)
	metrics := monitoring.NewMetrics()
	svc := NewGeminiService(gen, nil, metrics)

	gen.On("GenerateText", mock.Anything, GeminiModel, "hello").Return("", nil)

	reply, err := svc.Generate(context.Background(), "hello")
	require.NoError(t, err)
	assert.Equal(t, "No reply from Gemini API", reply)
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.GenerateTotal.WithLabelValues(monitoring.OutcomeFallback)))
}

func TestGeminiService_Generate_MissingPrompt(t *testing.T) {
	gen := new(MockTextGenerator)
	svc := NewGeminiService(gen, nil, nil)

	_, err := svc.Generate(context.Background(), "")

	var invalid *InvalidRequestError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "Prompt is required", invalid.Message)
	gen.AssertNotCalled(t, "GenerateText", mock.Anything, mock.Anything, mock.Anything)
}

func TestGeminiService_Generate_WhitespacePromptIsForwarded(t *testing.T) {
	gen := new(MockTextGenerator)
	svc := NewGeminiService(gen, nil, nil)

	gen.On("GenerateText", mock.Anything, GeminiModel, "   ").Return("ok", nil)

	reply, err := svc.Generate(context.Background(), "   ")
	require.NoError(t, err)
	assert.Equal(t, "ok", reply)
}

func TestGeminiService_Generate_UpstreamFailure(t *testing.T) {
	gen := new(MockTextGenerator)
	svc := NewGeminiService(gen, nil, nil)

	cause := errors.New("quota exceeded")
	gen.On("GenerateText", mock.Anything, GeminiModel, "hello").Return("", cause)

	_, err := svc.Generate(context.Background(), "hello")

	var upstream *UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Equal(t, "Gemini API failed to return a response", upstream.Message)
	assert.ErrorIs(t, err, cause)
}

func TestGeminiService_Close(t *testing.T) {
	gen := new(MockTextGenerator)
	gen.On("Close").Return(nil)

	svc := NewGeminiService(gen, nil, nil)
	assert.NoError(t, svc.Close())
	gen.AssertCalled(t, "Close")
}

func TestNewTextGenerator_UnknownSDK(t *testing.T) {
	_, err := NewTextGenerator(context.Background(), "palm", "key")
	assert.Error(t, err)
}

func TestNewTextGenerator_GenAI(t *testing.T) {
	gen, err := NewTextGenerator(context.Background(), config.SDKGenAI, "key")
	require.NoError(t, err)
	assert.IsType(t, &GenAIClient{}, gen)
	assert.NoError(t, gen.Close())
}

func TestExtractText(t *testing.T) {
	tests := []struct {
		name string
		resp *genai.GenerateContentResponse
		want string
	}{
		{"nil response", nil, ""},
		{"no candidates", &genai.GenerateContentResponse{}, ""},
		{"nil content", &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{}}}, ""},
		{
			"joins text parts",
			&genai.GenerateContentResponse{Candidates: []*genai.Candidate{{
				Content: &genai.Content{Parts: []genai.Part{genai.Text("hi "), genai.Text("there")}},
			}}},
			"hi there",
		},
		{
			"skips non-text parts",
			&genai.GenerateContentResponse{Candidates: []*genai.Candidate{{
				Content: &genai.Content{Parts: []genai.Part{genai.Blob{MIMEType: "image/png"}, genai.Text("caption")}},
			}}},
			"caption",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, extractText(tc.resp))
		})
	}
}

func TestResponseText(t *testing.T) {
	resp := &genaisdk.GenerateContentResponse{Candidates: []*genaisdk.Candidate{{
		Content: &genaisdk.Content{Parts: []*genaisdk.Part{
			{Text: "thinking...", Thought: true},
			{Text: "hi "},
			nil,
			{Text: "there"},
		}},
	}}}

	assert.Equal(t, "hi there", responseText(resp))
	assert.Equal(t, "", responseText(nil))
	assert.Equal(t, "", responseText(&genaisdk.GenerateContentResponse{Candidates: []*genaisdk.Candidate{nil}}))
}
