package assistant

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"github.com/hal9000y/gmail-voice/internal/intent"
	"github.com/hal9000y/gmail-voice/internal/llm"
)

// Extract asks the oracle for a JSON object constrained to the intent's
// schema and returns one value per slot. Malformed output or a missing slot
// is a hard extraction failure, never a silent default.
func (a *Assistant) Extract(ctx context.Context, command string, in intent.Intent) (map[string]string, error) {
	out, err := a.oracle.Complete(ctx, llm.Request{
		Model: a.reasoningModel,
		Messages: []llm.Message{
			{Role: "system", Content: extractSystem},
			{Role: "user", Content: extractPrompt(command, in)},
		},
		Temperature: 0,
		JSONOnly:    true,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExtraction, err)
	}

	var parsed map[string]any
	if err := json.Unmarshal([]byte(out), &parsed); err != nil {
		return nil, fmt.Errorf("%w: malformed JSON %q: %w", ErrExtraction, out, err)
	}

	args := make(map[string]string, len(intent.Schema(in)))
	for _, slot := range intent.Schema(in) {
		raw, ok := parsed[slot]
		if !ok {
			return nil, fmt.Errorf("%w: missing key %q in %q", ErrExtraction, slot, out)
		}
		args[slot] = stringValue(raw)
	}

	return args, nil
}

// stringValue coerces a decoded JSON value to a string slot. The extraction
// prompt allows numeric lookback values to come back as JSON numbers.
func stringValue(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case float64:
		if val == math.Trunc(val) {
			return strconv.FormatInt(int64(val), 10)
		}
		return strconv.FormatFloat(val, 'f', -1, 64)
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", val)
	}
}
