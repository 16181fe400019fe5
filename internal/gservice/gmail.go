// Package gservice wraps the Gmail API for the assistant: listing recent
// messages and persisting drafts. Every call carries the caller's bearer
// credential; nothing is cached across requests.
package gservice

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/oauth2"
	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"
)

const gmailUserID = "me"

// NewGmail creates a Gmail store provider.
func NewGmail() *GMail {
	return &GMail{}
}

// GMail is a stateless Gmail client. Per-request credentials are turned into
// a token source on each call.
type GMail struct{}

// ListUnread returns unread primary-inbox messages received inside the
// window, capped at maxResults.
func (m *GMail) ListUnread(ctx context.Context, accessToken string, window time.Duration, maxResults int64) ([]Message, error) {
	q := fmt.Sprintf("label:INBOX category:primary is:unread after:%d", time.Now().Add(-window).Unix())
	return m.list(ctx, accessToken, q, maxResults)
}

// ListRecent returns primary-inbox messages received inside the window, read
// or not. The reply flow uses it because the target may already be read.
func (m *GMail) ListRecent(ctx context.Context, accessToken string, window time.Duration, maxResults int64) ([]Message, error) {
	q := fmt.Sprintf("label:INBOX category:primary after:%d", time.Now().Add(-window).Unix())
	return m.list(ctx, accessToken, q, maxResults)
}

func (m *GMail) list(ctx context.Context, accessToken, q string, maxResults int64) ([]Message, error) {
	svc, err := m.newSvc(ctx, accessToken)
	if err != nil {
		return nil, fmt.Errorf("newSvc failed: %w", err)
	}

	result, err := svc.Users.Messages.List(gmailUserID).
		Q(q).
		MaxResults(maxResults).
		Do()
	if err != nil {
		return nil, fmt.Errorf("messages.List failed: %w", err)
	}

	messages := make([]Message, 0, len(result.Messages))

	for _, ref := range result.Messages {
		msg, err := svc.Users.Messages.Get(gmailUserID, ref.Id).Format("FULL").Do()
		if err != nil {
			return nil, fmt.Errorf("messages.Get %s failed: %w", ref.Id, err)
		}

		messages = append(messages, newMessage(msg))
	}

	return messages, nil
}

// CreateDraft persists a body-only draft in a fresh thread and returns the
// draft id.
func (m *GMail) CreateDraft(ctx context.Context, accessToken, body string) (string, error) {
	svc, err := m.newSvc(ctx, accessToken)
	if err != nil {
		return "", fmt.Errorf("newSvc failed: %w", err)
	}

	draft, err := svc.Users.Drafts.Create(gmailUserID, &gmail.Draft{
		Message: &gmail.Message{Raw: RawDraft(body)},
	}).Do()
	if err != nil {
		return "", fmt.Errorf("drafts.Create failed: %w", err)
	}

	return draft.Id, nil
}

// ReplyDraft describes a threaded draft. InReplyTo is the RFC Message-ID of
// the message being answered; it is copied into both the In-Reply-To and
// References headers so mail clients keep the reply in the thread.
type ReplyDraft struct {
	To        string
	Subject   string
	Body      string
	ThreadID  string
	InReplyTo string
}

// CreateReplyDraft persists a draft attached to an existing conversation and
// returns the draft id.
func (m *GMail) CreateReplyDraft(ctx context.Context, accessToken string, d ReplyDraft) (string, error) {
	svc, err := m.newSvc(ctx, accessToken)
	if err != nil {
		return "", fmt.Errorf("newSvc failed: %w", err)
	}

	draft, err := svc.Users.Drafts.Create(gmailUserID, &gmail.Draft{
		Message: &gmail.Message{
			Raw:      RawReply(d),
			ThreadId: d.ThreadID,
		},
	}).Do()
	if err != nil {
		return "", fmt.Errorf("drafts.Create failed: %w", err)
	}

	return draft.Id, nil
}

func (m *GMail) newSvc(ctx context.Context, accessToken string) (*gmail.Service, error) {
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken})

	svc, err := gmail.NewService(ctx, option.WithTokenSource(ts))
	if err != nil {
		return nil, fmt.Errorf("gmail.NewService failed: %w", err)
	}

	return svc, nil
}
