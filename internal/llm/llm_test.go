package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func geminiTestConfig(endpoint string) Config {
	cfg := DefaultConfig()
	cfg.GeminiAPIKey = "test-key"
	cfg.GeminiEndpoint = endpoint
	cfg.TimeoutMs = 2000
	return cfg
}

func geminiOK(text string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := map[string]any{
			"modelVersion": "gemini-pro-001",
			"candidates": []map[string]any{
				{"content": map[string]any{
					"role":  "model",
					"parts": []map[string]string{{"text": text}},
				}},
			},
		}
		json.NewEncoder(w).Encode(resp)
	}
}

func TestGeminiGenerate(t *testing.T) {
	var gotPath, gotKey string
	var gotBody geminiRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("x-goog-api-key")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		geminiOK("A bright future awaits.")(w, r)
	}))
	defer srv.Close()

	client := NewGeminiClient(geminiTestConfig(srv.URL), nil)
	resp, err := client.Generate(context.Background(), GenerateRequest{
		SystemPrompt: "Respond in one sentence.",
		UserPrompt:   "Frame these recommendations.",
	})
	require.NoError(t, err)

	assert.Equal(t, "A bright future awaits.", resp.Text)
	assert.Equal(t, "gemini", resp.Provider)
	assert.Equal(t, "gemini-pro-001", resp.Model)

	assert.Equal(t, "/v1beta/models/gemini-pro:generateContent", gotPath)
	assert.Equal(t, "test-key", gotKey)
	require.NotNil(t, gotBody.SystemInstruction)
	assert.Equal(t, "Respond in one sentence.", gotBody.SystemInstruction.Parts[0].Text)
	require.Len(t, gotBody.Contents, 1)
	assert.Equal(t, "Frame these recommendations.", gotBody.Contents[0].Parts[0].Text)
}

func TestGeminiRetriesOnceThenFails(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, "overloaded", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client := NewGeminiClient(geminiTestConfig(srv.URL), nil)
	_, err := client.Generate(context.Background(), GenerateRequest{UserPrompt: "hi"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRetryExhausted)
	assert.Equal(t, int32(2), calls.Load(), "one attempt plus one retry")
}

func TestGeminiRecoversOnRetry(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			http.Error(w, "transient", http.StatusInternalServerError)
			return
		}
		geminiOK("second try")(w, r)
	}))
	defer srv.Close()

	client := NewGeminiClient(geminiTestConfig(srv.URL), nil)
	resp, err := client.Generate(context.Background(), GenerateRequest{UserPrompt: "hi"})

	require.NoError(t, err)
	assert.Equal(t, "second try", resp.Text)
}

func TestGeminiEmptyCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"candidates": []any{}})
	}))
	defer srv.Close()

	client := NewGeminiClient(geminiTestConfig(srv.URL), nil)
	_, err := client.Generate(context.Background(), GenerateRequest{UserPrompt: "hi"})

	assert.ErrorIs(t, err, ErrEmptyResponse)
}

func TestGeminiObserverRecordsCalls(t *testing.T) {
	srv := httptest.NewServer(geminiOK("ok"))
	defer srv.Close()

	var events []CallEvent
	observer := observerFunc(func(e CallEvent) { events = append(events, e) })

	client := NewGeminiClient(geminiTestConfig(srv.URL), observer)
	_, err := client.Generate(context.Background(), GenerateRequest{UserPrompt: "hi"})
	require.NoError(t, err)

	require.Len(t, events, 1)
	assert.Equal(t, "gemini", events[0].Provider)
	assert.True(t, events[0].Success)
}

// observerFunc adapts a function to the Observer interface.
type observerFunc func(CallEvent)

func (f observerFunc) OnCallComplete(e CallEvent) { f(e) }

func ollamaTestConfig(endpoint string) Config {
	cfg := DefaultConfig()
	cfg.OllamaEndpoint = endpoint
	cfg.TimeoutMs = 2000
	return cfg
}

func TestOllamaGenerate(t *testing.T) {
	var gotBody ollamaRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/generate", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		json.NewEncoder(w).Encode(ollamaResponse{Model: "llama3.2", Response: "local reply"})
	}))
	defer srv.Close()

	client := NewOllamaClient(ollamaTestConfig(srv.URL), nil)
	resp, err := client.Generate(context.Background(), GenerateRequest{
		SystemPrompt: "sys",
		UserPrompt:   "hello",
	})
	require.NoError(t, err)

	assert.Equal(t, "local reply", resp.Text)
	assert.Equal(t, "ollama", resp.Provider)
	assert.False(t, gotBody.Stream, "streaming must be off")
	assert.Equal(t, "sys", gotBody.System)
	assert.Equal(t, "hello", gotBody.Prompt)
}

func TestOllamaBlankResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(ollamaResponse{Model: "llama3.2", Response: "   "})
	}))
	defer srv.Close()

	client := NewOllamaClient(ollamaTestConfig(srv.URL), nil)
	_, err := client.Generate(context.Background(), GenerateRequest{UserPrompt: "hi"})

	assert.ErrorIs(t, err, ErrEmptyResponse)
}

// fakeGenerator is a scriptable Generator for fallback tests.
type fakeGenerator struct {
	name  string
	text  string
	err   error
	calls int
}

func (f *fakeGenerator) Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return &GenerateResponse{Text: f.text, Provider: f.name}, nil
}

func (f *fakeGenerator) Name() string { return f.name }

func TestFallbackUsesPrimaryFirst(t *testing.T) {
	primary := &fakeGenerator{name: "primary", text: "from primary"}
	secondary := &fakeGenerator{name: "secondary", text: "from secondary"}

	g := NewFallbackGenerator(primary, secondary)
	resp, err := g.Generate(context.Background(), GenerateRequest{UserPrompt: "hi"})

	require.NoError(t, err)
	assert.Equal(t, "from primary", resp.Text)
	assert.Zero(t, secondary.calls, "secondary untouched when primary succeeds")
}

func TestFallbackSwitchesOnPrimaryFailure(t *testing.T) {
	primary := &fakeGenerator{name: "primary", err: ErrUnavailable}
	secondary := &fakeGenerator{name: "secondary", text: "from secondary"}

	g := NewFallbackGenerator(primary, secondary)
	resp, err := g.Generate(context.Background(), GenerateRequest{UserPrompt: "hi"})

	require.NoError(t, err)
	assert.Equal(t, "from secondary", resp.Text)
	assert.Equal(t, 1, secondary.calls, "secondary is tried exactly once")
}

func TestFallbackBothFail(t *testing.T) {
	primary := &fakeGenerator{name: "primary", err: ErrTimeout}
	secondary := &fakeGenerator{name: "secondary", err: errors.New("connection refused")}

	g := NewFallbackGenerator(primary, secondary)
	_, err := g.Generate(context.Background(), GenerateRequest{UserPrompt: "hi"})

	assert.ErrorIs(t, err, ErrAllProvidersFailed)
}

func TestFallbackWithoutSecondary(t *testing.T) {
	primary := &fakeGenerator{name: "primary", err: ErrUnavailable}

	g := NewFallbackGenerator(primary, nil)
	_, err := g.Generate(context.Background(), GenerateRequest{UserPrompt: "hi"})

	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "k123")
	t.Setenv("DISHA_LLM_TIMEOUT_MS", "1500")
	t.Setenv("OLLAMA_MODEL", "mistral")

	cfg := LoadConfig()
	assert.True(t, cfg.Enabled, "an API key enables generation")
	assert.Equal(t, "k123", cfg.GeminiAPIKey)
	assert.Equal(t, 1500, cfg.TimeoutMs)
	assert.Equal(t, "mistral", cfg.OllamaModel)
}

func TestLoadConfigDisabledByDefault(t *testing.T) {
	cfg := DefaultConfig()
	assert.False(t, cfg.Enabled)
	assert.Equal(t, "gemini-pro", cfg.GeminiModel)
}
