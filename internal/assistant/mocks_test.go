package assistant_test

import (
	"context"
	"time"

	"github.com/hal9000y/gmail-voice/internal/gservice"
	"github.com/hal9000y/gmail-voice/internal/llm"
)

type oracleMock struct {
	CompleteFunc func(ctx context.Context, req llm.Request) (string, error)
	Requests     []llm.Request
}

func (m *oracleMock) Complete(ctx context.Context, req llm.Request) (string, error) {
	m.Requests = append(m.Requests, req)
	return m.CompleteFunc(ctx, req)
}

type listCall struct {
	AccessToken string
	Window      time.Duration
	MaxResults  int64
}

type storeMock struct {
	ListUnreadFunc       func(ctx context.Context, accessToken string, window time.Duration, maxResults int64) ([]gservice.Message, error)
	ListRecentFunc       func(ctx context.Context, accessToken string, window time.Duration, maxResults int64) ([]gservice.Message, error)
	CreateDraftFunc      func(ctx context.Context, accessToken, body string) (string, error)
	CreateReplyDraftFunc func(ctx context.Context, accessToken string, d gservice.ReplyDraft) (string, error)

	ListUnreadCalls []listCall
	ListRecentCalls []listCall
	DraftBodies     []string
	ReplyDrafts     []gservice.ReplyDraft
}

func (m *storeMock) ListUnread(ctx context.Context, accessToken string, window time.Duration, maxResults int64) ([]gservice.Message, error) {
	m.ListUnreadCalls = append(m.ListUnreadCalls, listCall{accessToken, window, maxResults})
	return m.ListUnreadFunc(ctx, accessToken, window, maxResults)
}

func (m *storeMock) ListRecent(ctx context.Context, accessToken string, window time.Duration, maxResults int64) ([]gservice.Message, error) {
	m.ListRecentCalls = append(m.ListRecentCalls, listCall{accessToken, window, maxResults})
	return m.ListRecentFunc(ctx, accessToken, window, maxResults)
}

func (m *storeMock) CreateDraft(ctx context.Context, accessToken, body string) (string, error) {
	m.DraftBodies = append(m.DraftBodies, body)
	return m.CreateDraftFunc(ctx, accessToken, body)
}

func (m *storeMock) CreateReplyDraft(ctx context.Context, accessToken string, d gservice.ReplyDraft) (string, error) {
	m.ReplyDrafts = append(m.ReplyDrafts, d)
	return m.CreateReplyDraftFunc(ctx, accessToken, d)
}
