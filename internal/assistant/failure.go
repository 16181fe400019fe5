package assistant

import "errors"

// Failure kinds. Pipeline stages wrap one of these into the errors they
// return; userMessage is the single place they become speech.
var (
	// ErrClassification covers an unreachable oracle or malformed output
	// during classification.
	ErrClassification = errors.New("classification failed")
	// ErrExtraction covers an unreachable oracle, malformed JSON or a
	// missing required key during argument extraction.
	ErrExtraction = errors.New("argument extraction failed")
	// ErrUnresolvedTarget means the reply resolver returned "none" or an id
	// outside the candidate set.
	ErrUnresolvedTarget = errors.New("no matching reply target")
	// ErrProvider covers any rejected store-provider operation.
	ErrProvider = errors.New("mail provider request failed")
)

// User-facing messages. Raw provider or oracle error text never reaches the
// caller; these are the only failure strings the assistant speaks.
const (
	msgServerProblem   = "Sorry, there was a problem with the server. Please try again."
	msgProviderProblem = "Sorry, there was a problem with your mail provider. Please try again."
	msgNoMatch         = "Sorry, I could not find a matching email to reply to."
	msgNotUnderstood   = "Sorry, I didn't understand that command."
	msgNoNewMail       = "You have no new emails. Enjoy your day!"
	msgDraftCreated    = "Your draft has been created."
	msgReplyCreated    = "Your reply draft has been created."
)

// userMessage maps a pipeline error to the one message the caller hears.
func userMessage(err error) string {
	switch {
	case errors.Is(err, ErrUnresolvedTarget):
		return msgNoMatch
	case errors.Is(err, ErrProvider):
		return msgProviderProblem
	default:
		return msgServerProblem
	}
}
