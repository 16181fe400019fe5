// Package assistant turns a free-form spoken command into an email action. It
// sequences classification, argument extraction, reply-target resolution,
// text generation and persistence, and owns the failure policy at each stage.
package assistant

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/hal9000y/gmail-voice/internal/format"
	"github.com/hal9000y/gmail-voice/internal/gservice"
	"github.com/hal9000y/gmail-voice/internal/intent"
	"github.com/hal9000y/gmail-voice/internal/llm"
)

// Dispatch limits. Summarize reads only the freshest unread mail; reply
// scans a wider, longer window because the target may not be the most recent
// message.
const (
	summarizeMaxResults = 3
	replyMaxResults     = 10
	replyLookback       = 72 * time.Hour
)

// Oracle is the text-generation collaborator.
type Oracle interface {
	Complete(ctx context.Context, req llm.Request) (string, error)
}

// Store is the email-store collaborator.
type Store interface {
	ListUnread(ctx context.Context, accessToken string, window time.Duration, maxResults int64) ([]gservice.Message, error)
	ListRecent(ctx context.Context, accessToken string, window time.Duration, maxResults int64) ([]gservice.Message, error)
	CreateDraft(ctx context.Context, accessToken, body string) (string, error)
	CreateReplyDraft(ctx context.Context, accessToken string, d gservice.ReplyDraft) (string, error)
}

// Result is the terminal outcome of one command: success with a confirmation
// or digest, or failure with a non-technical message. Raw provider or oracle
// error text never appears here.
type Result struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
}

func succeeded(message string) Result { return Result{OK: true, Message: message} }
func failed(message string) Result    { return Result{OK: false, Message: message} }

// Assistant orchestrates one command per call. It holds no per-request
// state; the credential travels with each invocation.
type Assistant struct {
	oracle          Oracle
	store           Store
	reasoningModel  string
	generationModel string
}

// New creates an Assistant using the given collaborators and model
// identifiers. The reasoning model serves classification, extraction and
// resolution; the generation model writes digests, drafts and replies.
func New(oracle Oracle, store Store, reasoningModel, generationModel string) *Assistant {
	return &Assistant{
		oracle:          oracle,
		store:           store,
		reasoningModel:  reasoningModel,
		generationModel: generationModel,
	}
}

// Handle runs the full pipeline for one command and always reaches a
// terminal Result. Errors are logged with their cause and mapped to user
// messages at this boundary only.
func (a *Assistant) Handle(ctx context.Context, command, accessToken string) Result {
	cls, err := a.Classify(ctx, command)
	if err != nil {
		log.Error().Err(err).Msg("classification failed")
		return failed(userMessage(err))
	}

	if !cls.Matched || cls.Intent == intent.None {
		log.Info().Str("raw", cls.Raw).Msg("command not understood")
		return failed(msgNotUnderstood)
	}

	args := map[string]string{}
	if len(intent.Schema(cls.Intent)) > 0 {
		args, err = a.Extract(ctx, command, cls.Intent)
		if err != nil {
			log.Error().Err(err).Str("intent", string(cls.Intent)).Msg("extraction failed")
			return failed(userMessage(err))
		}
	}

	log.Info().Str("intent", string(cls.Intent)).Msg("command dispatched")

	var result Result
	switch cls.Intent {
	case intent.Summarize:
		result, err = a.summarize(ctx, accessToken, args)
	case intent.Draft:
		result, err = a.draft(ctx, accessToken, args)
	case intent.Reply:
		result, err = a.reply(ctx, accessToken, args)
	default:
		return failed(msgNotUnderstood)
	}

	if err != nil {
		log.Error().Err(err).Str("intent", string(cls.Intent)).Msg("dispatch failed")
		return failed(userMessage(err))
	}

	return result
}

func (a *Assistant) summarize(ctx context.Context, accessToken string, args map[string]string) (Result, error) {
	window := intent.LookbackWindow(args[intent.SlotLookbackValue], args[intent.SlotLookbackUnits])

	messages, err := a.store.ListUnread(ctx, accessToken, window, summarizeMaxResults)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrProvider, err)
	}

	if len(messages) == 0 {
		return succeeded(msgNoNewMail), nil
	}

	var blocks strings.Builder
	for _, msg := range messages {
		fmt.Fprintf(&blocks, "%s: %s\n---\n", sender(msg), format.Clean(msg.Body))
	}

	digest, err := a.oracle.Complete(ctx, llm.Request{
		Model: a.generationModel,
		Messages: []llm.Message{
			{Role: "system", Content: digestSystem},
			{Role: "user", Content: digestPrompt(blocks.String())},
		},
		// A touch above zero helps the model find better flow words.
		Temperature: 0.3,
	})
	if err != nil {
		return Result{}, fmt.Errorf("digest generation failed: %w", err)
	}

	return succeeded(strings.TrimSpace(digest)), nil
}

func (a *Assistant) draft(ctx context.Context, accessToken string, args map[string]string) (Result, error) {
	body, err := a.oracle.Complete(ctx, llm.Request{
		Model: a.generationModel,
		Messages: []llm.Message{
			{Role: "system", Content: draftSystem},
			{Role: "user", Content: draftPrompt(args[intent.SlotRecipient], args[intent.SlotDescription])},
		},
		Temperature: 0.7,
		MaxTokens:   500,
	})
	if err != nil {
		return Result{}, fmt.Errorf("draft generation failed: %w", err)
	}

	if _, err := a.store.CreateDraft(ctx, accessToken, strings.TrimSpace(body)); err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrProvider, err)
	}

	return succeeded(msgDraftCreated), nil
}

func (a *Assistant) reply(ctx context.Context, accessToken string, args map[string]string) (Result, error) {
	candidates, err := a.store.ListRecent(ctx, accessToken, replyLookback, replyMaxResults)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrProvider, err)
	}

	for i := range candidates {
		candidates[i].Body = format.Clean(candidates[i].Body)
	}

	recipient := args[intent.SlotReplyTo]
	description := args[intent.SlotDescription]

	target, err := a.ResolveTarget(ctx, candidates, recipient, description)
	if err != nil {
		return Result{}, err
	}

	body, err := a.oracle.Complete(ctx, llm.Request{
		Model: a.generationModel,
		Messages: []llm.Message{
			{Role: "system", Content: replySystem},
			{Role: "user", Content: replyPrompt(target.Body, recipient, description)},
		},
		Temperature: 0.7,
		MaxTokens:   600,
	})
	if err != nil {
		return Result{}, fmt.Errorf("reply generation failed: %w", err)
	}

	draft := gservice.ReplyDraft{
		To:        target.FromAddress,
		Subject:   replySubject(target.Subject),
		Body:      strings.TrimSpace(body),
		ThreadID:  target.ThreadID,
		InReplyTo: target.RFCMessageID,
	}

	if _, err := a.store.CreateReplyDraft(ctx, accessToken, draft); err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrProvider, err)
	}

	return succeeded(msgReplyCreated), nil
}

// replySubject forces the reply marker onto the subject unless one is
// already there.
func replySubject(subject string) string {
	if strings.HasPrefix(strings.ToLower(strings.TrimSpace(subject)), "re:") {
		return strings.TrimSpace(subject)
	}
	return "Re: " + strings.TrimSpace(subject)
}

func sender(msg gservice.Message) string {
	if msg.FromName != "" {
		return msg.FromName
	}
	return msg.FromAddress
}
