// Package format normalizes raw email bodies into clean plain text suitable
// for prompting a voice assistant.
package format

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// MaxBodyLength caps a cleaned body. Longer bodies are hard-truncated and
// marked.
const MaxBodyLength = 2000

// TruncationMarker is appended when a body exceeds MaxBodyLength.
const TruncationMarker = " ... [truncated]"

// Quote-start markers in the dialects we have observed. Everything from the
// earliest match onward is quoted history and gets discarded.
var quoteMarkers = []*regexp.Regexp{
	regexp.MustCompile(`(?im)(^|\n)On\s+.*\s+wrote:`),
	regexp.MustCompile(`(?im)(^|\n)El\s+.*\s+escribió:`),
	regexp.MustCompile(`(?im)(^|\n)-{2,}\s*Original Message\s*-{2,}`),
	regexp.MustCompile(`(?m)(^|\n)_{10,}`),
	regexp.MustCompile(`(?im)(^|\n)From:\s*.*\nSent:`),
}

var (
	urlPattern     = regexp.MustCompile(`https?://\S+`)
	bareURLPattern = regexp.MustCompile(`www\.\S+`)
	addressPattern = regexp.MustCompile(`\S+@\S+`)
	spacePattern   = regexp.MustCompile(`\s+`)
)

// Clean strips quoted history, links, addresses and excess whitespace from a
// raw email body, then enforces MaxBodyLength. It is a pure function and
// idempotent: cleaning an already-clean body changes nothing.
func Clean(rawBody string) string {
	body := stripQuotedHistory(rawBody)

	body = urlPattern.ReplaceAllString(body, "")
	body = bareURLPattern.ReplaceAllString(body, "")
	body = addressPattern.ReplaceAllString(body, "")

	body = strings.TrimSpace(spacePattern.ReplaceAllString(body, " "))

	// Stripping links and whitespace can shift a quote marker to the start
	// of the text where the first pass could not see it.
	body = strings.TrimSpace(stripQuotedHistory(body))

	// A body already ending in the marker was capped on a previous pass and
	// is left alone.
	if len(body) > MaxBodyLength && !strings.HasSuffix(body, TruncationMarker) {
		// Back the cut off to a rune boundary so a multi-byte character
		// straddling the limit is dropped whole, never split.
		cut := MaxBodyLength
		for cut > 0 && !utf8.RuneStart(body[cut]) {
			cut--
		}
		// Trim a trailing space at the cut so the marker never creates a
		// fresh whitespace run.
		body = strings.TrimRight(body[:cut], " ") + TruncationMarker
	}

	return body
}

// stripQuotedHistory truncates the body at the earliest quote marker. When
// several markers match, whichever occurs first in the text wins, regardless
// of marker order.
func stripQuotedHistory(body string) string {
	cut := -1
	for _, marker := range quoteMarkers {
		loc := marker.FindStringIndex(body)
		if loc == nil {
			continue
		}
		if cut == -1 || loc[0] < cut {
			cut = loc[0]
		}
	}
	if cut >= 0 {
		return body[:cut]
	}
	return body
}
