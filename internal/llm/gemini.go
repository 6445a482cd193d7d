package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"
)

// geminiClient implements Generator against the Gemini REST API.
type geminiClient struct {
	cfg      Config
	http     *http.Client
	observer Observer

	// maxRetries is the number of extra attempts after the first failure.
	// The primary provider is retried at most once per turn.
	maxRetries int
}

// NewGeminiClient creates the primary Generator talking to the Gemini API.
func NewGeminiClient(cfg Config, observer Observer) Generator {
	if observer == nil {
		observer = NoopObserver{}
	}
	return &geminiClient{
		cfg: cfg,
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
		},
		observer:   observer,
		maxRetries: 1,
	}
}

func (c *geminiClient) Name() string { return "gemini" }

// Request/response bodies for POST /v1beta/models/{model}:generateContent.
type geminiRequest struct {
	SystemInstruction *geminiContent         `json:"system_instruction,omitempty"`
	Contents          []geminiContent        `json:"contents"`
	GenerationConfig  geminiGenerationConfig `json:"generationConfig"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiGenerationConfig struct {
	Temperature     float64 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
	ModelVersion string `json:"modelVersion"`
}

func (c *geminiClient) Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	start := time.Now()

	temp := c.cfg.Temperature
	if req.Temperature != nil {
		temp = *req.Temperature
	}
	maxTok := c.cfg.MaxTokens
	if req.MaxTokens != nil {
		maxTok = *req.MaxTokens
	}

	ctx, cancel := context.WithTimeout(ctx, time.Duration(c.cfg.TimeoutMs)*time.Millisecond)
	defer cancel()

	body := geminiRequest{
		Contents: []geminiContent{
			{Role: "user", Parts: []geminiPart{{Text: req.UserPrompt}}},
		},
		GenerationConfig: geminiGenerationConfig{
			Temperature:     temp,
			MaxOutputTokens: maxTok,
		},
	}
	if req.SystemPrompt != "" {
		body.SystemInstruction = &geminiContent{Parts: []geminiPart{{Text: req.SystemPrompt}}}
	}

	var lastErr error
	attempts := 1 + c.maxRetries

	for i := 0; i < attempts; i++ {
		text, model, err := c.doRequest(ctx, body)
		if err == nil {
			latency := time.Since(start).Milliseconds()
			c.observer.OnCallComplete(CallEvent{
				Provider:  c.Name(),
				Model:     model,
				LatencyMs: latency,
				Success:   true,
			})
			return &GenerateResponse{
				Text:      text,
				Model:     model,
				Provider:  c.Name(),
				LatencyMs: latency,
			}, nil
		}
		lastErr = err

		if ctx.Err() != nil {
			break
		}
	}

	latency := time.Since(start).Milliseconds()
	err := classify(ctx, lastErr)
	c.observer.OnCallComplete(CallEvent{
		Provider:  c.Name(),
		Model:     c.cfg.GeminiModel,
		LatencyMs: latency,
		Success:   false,
		ErrorCode: errorCode(err),
	})
	return nil, err
}

func (c *geminiClient) doRequest(ctx context.Context, body geminiRequest) (text, model string, err error) {
	data, err := json.Marshal(body)
	if err != nil {
		return "", "", fmt.Errorf("marshaling request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent",
		strings.TrimRight(c.cfg.GeminiEndpoint, "/"), c.cfg.GeminiModel)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return "", "", fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-goog-api-key", c.cfg.GeminiAPIKey)

	httpResp, err := c.http.Do(httpReq)
	if err != nil {
		return "", "", err
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return "", "", fmt.Errorf("reading response: %w", err)
	}
	if httpResp.StatusCode != http.StatusOK {
		return "", "", fmt.Errorf("gemini returned status %d: %s", httpResp.StatusCode, string(respBody))
	}

	var resp geminiResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return "", "", fmt.Errorf("decoding response: %w", err)
	}

	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", "", ErrEmptyResponse
	}
	model = resp.ModelVersion
	if model == "" {
		model = c.cfg.GeminiModel
	}
	return resp.Candidates[0].Content.Parts[0].Text, model, nil
}

// classify maps a transport failure to one of the package sentinel errors.
func classify(ctx context.Context, err error) error {
	if ctx.Err() != nil {
		return ErrTimeout
	}
	var netErr *net.OpError
	if errors.As(err, &netErr) {
		return ErrUnavailable
	}
	if errors.Is(err, ErrEmptyResponse) {
		return ErrEmptyResponse
	}
	return fmt.Errorf("%w: %v", ErrRetryExhausted, err)
}
