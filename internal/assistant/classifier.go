package assistant

import (
	"context"
	"fmt"
	"strings"

	"github.com/hal9000y/gmail-voice/internal/intent"
	"github.com/hal9000y/gmail-voice/internal/llm"
)

// Classification is the tagged outcome of classifying a command: either a
// catalog intent was matched, or the oracle produced something else and Raw
// carries its sanitized output.
type Classification struct {
	Matched bool
	Intent  intent.Intent
	Raw     string
}

var outputSanitizer = strings.NewReplacer("'", "", `"`, "", ".", "")

// Classify maps the raw command to one catalog key. Temperature is pinned at
// zero so the same command always yields the same label.
func (a *Assistant) Classify(ctx context.Context, command string) (Classification, error) {
	out, err := a.oracle.Complete(ctx, llm.Request{
		Model: a.reasoningModel,
		Messages: []llm.Message{
			{Role: "system", Content: classifySystem},
			{Role: "user", Content: classifyPrompt(command)},
		},
		Temperature: 0,
	})
	if err != nil {
		return Classification{}, fmt.Errorf("%w: %w", ErrClassification, err)
	}

	// The oracle occasionally wraps the key in conversational text. Strip
	// quotes, periods and whitespace, then scan for a catalog key inside
	// whatever remains.
	clean := outputSanitizer.Replace(strings.TrimSpace(out))

	for _, key := range intent.Keys {
		if strings.Contains(clean, string(key)) {
			return Classification{Matched: true, Intent: key}, nil
		}
	}

	return Classification{Raw: clean}, nil
}
