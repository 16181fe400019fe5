package assistant_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hal9000y/gmail-voice/internal/assistant"
	"github.com/hal9000y/gmail-voice/internal/intent"
	"github.com/hal9000y/gmail-voice/internal/llm"
)

func TestExtract(t *testing.T) {
	cases := []struct {
		name         string
		intent       intent.Intent
		oracleOutput string
		expected     map[string]string
	}{
		{
			name:         "reply arguments",
			intent:       intent.Reply,
			oracleOutput: `{"reply_recipient_name": "Mike", "email_description": "sounds like a plan"}`,
			expected: map[string]string{
				intent.SlotReplyTo:     "Mike",
				intent.SlotDescription: "sounds like a plan",
			},
		},
		{
			name:         "numeric lookback value",
			intent:       intent.Summarize,
			oracleOutput: `{"lookback_period_value": 2, "lookback_period_units": "hours"}`,
			expected: map[string]string{
				intent.SlotLookbackValue: "2",
				intent.SlotLookbackUnits: "hours",
			},
		},
		{
			name:         "empty string slots",
			intent:       intent.Draft,
			oracleOutput: `{"recipient_name": "", "email_description": "asking about my grade"}`,
			expected: map[string]string{
				intent.SlotRecipient:   "",
				intent.SlotDescription: "asking about my grade",
			},
		},
		{
			name:         "extra keys tolerated",
			intent:       intent.Draft,
			oracleOutput: `{"recipient_name": "Mom", "email_description": "I'll be home", "confidence": 0.9}`,
			expected: map[string]string{
				intent.SlotRecipient:   "Mom",
				intent.SlotDescription: "I'll be home",
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			oracle := &oracleMock{
				CompleteFunc: func(_ context.Context, _ llm.Request) (string, error) {
					return tc.oracleOutput, nil
				},
			}

			got, err := newAssistant(oracle, nil).Extract(context.Background(), "some command", tc.intent)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestExtractHardErrors(t *testing.T) {
	cases := []struct {
		name         string
		oracleOutput string
	}{
		{name: "malformed output", oracleOutput: "Sure! Here are the arguments you need."},
		{name: "missing required key", oracleOutput: `{"email_description": "the project update"}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			oracle := &oracleMock{
				CompleteFunc: func(_ context.Context, _ llm.Request) (string, error) {
					return tc.oracleOutput, nil
				},
			}

			_, err := newAssistant(oracle, nil).Extract(context.Background(), "reply to Mike", intent.Reply)
			require.Error(t, err)
			assert.ErrorIs(t, err, assistant.ErrExtraction)
		})
	}
}

func TestExtractRequestShape(t *testing.T) {
	oracle := &oracleMock{
		CompleteFunc: func(_ context.Context, _ llm.Request) (string, error) {
			return `{"recipient_name": "Mom", "email_description": "the weekend"}`, nil
		},
	}

	_, err := newAssistant(oracle, nil).Extract(context.Background(), "email Mom about the weekend", intent.Draft)
	require.NoError(t, err)

	require.Len(t, oracle.Requests, 1)
	req := oracle.Requests[0]
	assert.Equal(t, "reasoning-model", req.Model)
	assert.True(t, req.JSONOnly)
	assert.Zero(t, req.Temperature)
	assert.Contains(t, req.Messages[1].Content, intent.SlotRecipient)
	assert.Contains(t, req.Messages[1].Content, intent.SlotDescription)
}
