package assistant

import (
	"context"
	"fmt"
	"strings"

	"github.com/hal9000y/gmail-voice/internal/gservice"
	"github.com/hal9000y/gmail-voice/internal/llm"
)

// ResolveTarget picks the one candidate the user wants to reply to, matching
// on sender or body relevance. The oracle must answer with a raw id or the
// sentinel "none"; anything outside the candidate set is an unresolved
// target, never an arbitrary pick.
func (a *Assistant) ResolveTarget(ctx context.Context, candidates []gservice.Message, recipient, description string) (gservice.Message, error) {
	if len(candidates) == 0 {
		return gservice.Message{}, fmt.Errorf("%w: no candidate messages", ErrUnresolvedTarget)
	}

	out, err := a.oracle.Complete(ctx, llm.Request{
		Model: a.reasoningModel,
		Messages: []llm.Message{
			{Role: "system", Content: resolveSystem},
			{Role: "user", Content: resolvePrompt(candidates, recipient, description)},
		},
		Temperature: 0,
	})
	if err != nil {
		return gservice.Message{}, fmt.Errorf("resolve oracle call failed: %w", err)
	}

	id := strings.Trim(strings.TrimSpace(out), `'"`)
	if id == "" || strings.EqualFold(id, "none") {
		return gservice.Message{}, fmt.Errorf("%w: oracle answered %q", ErrUnresolvedTarget, id)
	}

	for _, c := range candidates {
		if c.ID == id {
			return c, nil
		}
	}

	return gservice.Message{}, fmt.Errorf("%w: id %q not in candidate set", ErrUnresolvedTarget, id)
}
