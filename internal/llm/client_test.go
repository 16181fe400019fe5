package llm_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hal9000y/gmail-voice/internal/llm"
)

func TestComplete(t *testing.T) {
	var captured map[string]any
	var capturedAuth string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		capturedAuth = r.Header.Get("Authorization")
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &captured))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices": [{"message": {"role": "assistant", "content": "gmail_summarize"}}]}`))
	}))
	defer srv.Close()

	client := llm.New(srv.URL, "secret-key")

	out, err := client.Complete(context.Background(), llm.Request{
		Model: "test-model",
		Messages: []llm.Message{
			{Role: "system", Content: "classify"},
			{Role: "user", Content: "summarize my mail"},
		},
		Temperature: 0,
		JSONOnly:    false,
	})
	require.NoError(t, err)
	assert.Equal(t, "gmail_summarize", out)

	assert.Equal(t, "Bearer secret-key", capturedAuth)
	assert.Equal(t, "test-model", captured["model"])
	// Zero must be sent explicitly: deterministic stages depend on it.
	temp, ok := captured["temperature"]
	require.True(t, ok, "temperature must always be serialized")
	assert.Equal(t, float64(0), temp)
	_, hasFormat := captured["response_format"]
	assert.False(t, hasFormat)
	_, hasMaxTokens := captured["max_tokens"]
	assert.False(t, hasMaxTokens)
}

func TestCompleteJSONMode(t *testing.T) {
	var captured map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &captured))
		w.Write([]byte(`{"choices": [{"message": {"content": "{}"}}]}`))
	}))
	defer srv.Close()

	_, err := llm.New(srv.URL, "k").Complete(context.Background(), llm.Request{
		Model:     "test-model",
		Messages:  []llm.Message{{Role: "user", Content: "extract"}},
		JSONOnly:  true,
		MaxTokens: 500,
	})
	require.NoError(t, err)

	format, ok := captured["response_format"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "json_object", format["type"])
	assert.Equal(t, float64(500), captured["max_tokens"])
}

func TestCompleteNon200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error": {"message": "rate limited"}}`))
	}))
	defer srv.Close()

	_, err := llm.New(srv.URL, "k").Complete(context.Background(), llm.Request{
		Model:    "test-model",
		Messages: []llm.Message{{Role: "user", Content: "hi"}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestCompleteNoChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"choices": []}`))
	}))
	defer srv.Close()

	_, err := llm.New(srv.URL, "k").Complete(context.Background(), llm.Request{
		Model:    "test-model",
		Messages: []llm.Message{{Role: "user", Content: "hi"}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no choices")
}
