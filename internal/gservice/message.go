package gservice

import (
	"encoding/base64"
	"fmt"
	"strings"

	"google.golang.org/api/gmail/v1"
)

// Message is the store-provider view of one email: identity, sender, subject,
// the first text/plain body and the identifiers needed to thread a reply.
// Records are built fresh per request and never cached.
type Message struct {
	ID          string
	ThreadID    string
	FromName    string
	FromAddress string
	Subject     string
	Body        string
	// RFCMessageID is the Message-ID header, empty when the sender did not
	// set one.
	RFCMessageID string
}

func newMessage(msg *gmail.Message) Message {
	m := Message{
		ID:       msg.Id,
		ThreadID: msg.ThreadId,
	}

	if msg.Payload == nil {
		return m
	}

	for _, header := range msg.Payload.Headers {
		switch header.Name {
		case "From":
			m.FromName, m.FromAddress = parseAddress(header.Value)
		case "Subject":
			m.Subject = header.Value
		case "Message-ID", "Message-Id":
			m.RFCMessageID = strings.TrimSpace(header.Value)
		}
	}

	m.Body = extractPlainText(msg.Payload)

	return m
}

// extractPlainText recursively finds the first text/plain part, ignoring
// HTML alternatives and attachments.
func extractPlainText(payload *gmail.MessagePart) string {
	if len(payload.Parts) == 0 {
		if payload.MimeType == "text/plain" || payload.MimeType == "" {
			if payload.Body != nil && payload.Body.Data != "" {
				return decodeBase64URL(payload.Body.Data)
			}
		}
		return ""
	}

	for _, part := range payload.Parts {
		if part.MimeType == "text/plain" {
			if part.Body != nil && part.Body.Data != "" {
				return decodeBase64URL(part.Body.Data)
			}
			continue
		}
		if len(part.Parts) > 0 {
			if body := extractPlainText(part); body != "" {
				return body
			}
		}
	}

	return ""
}

func decodeBase64URL(data string) string {
	decoded, err := base64.URLEncoding.DecodeString(data)
	if err != nil {
		decoded, err = base64.RawURLEncoding.DecodeString(data)
		if err != nil {
			return data
		}
	}
	return string(decoded)
}

func parseAddress(from string) (name, address string) {
	if idx := strings.Index(from, "<"); idx != -1 {
		name = strings.TrimSpace(from[:idx])
		rest := from[idx+1:]
		// An unterminated angle form still carries the address after '<'.
		if endIdx := strings.Index(rest, ">"); endIdx != -1 {
			rest = rest[:endIdx]
		}
		address = strings.TrimSpace(rest)
	} else {
		address = strings.TrimSpace(from)
	}

	name = strings.Trim(name, "\"")

	return name, address
}

// RawDraft builds the base64url RFC-822 payload for a body-only draft.
func RawDraft(body string) string {
	var b strings.Builder
	b.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("\r\n")
	b.WriteString(body)

	return base64.URLEncoding.EncodeToString([]byte(b.String()))
}

// RawReply builds the base64url RFC-822 payload for a threaded reply draft.
func RawReply(d ReplyDraft) string {
	var b strings.Builder
	fmt.Fprintf(&b, "To: %s\r\n", d.To)
	fmt.Fprintf(&b, "Subject: %s\r\n", d.Subject)
	if d.InReplyTo != "" {
		fmt.Fprintf(&b, "In-Reply-To: %s\r\n", d.InReplyTo)
		fmt.Fprintf(&b, "References: %s\r\n", d.InReplyTo)
	}
	b.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("\r\n")
	b.WriteString(d.Body)

	return base64.URLEncoding.EncodeToString([]byte(b.String()))
}
