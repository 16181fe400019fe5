// Package intent defines the closed set of actions the assistant understands
// and the argument schema each one requires.
package intent

// Intent identifies one of the supported email actions. The string values are
// the catalog keys sent to the oracle during classification.
type Intent string

const (
	// Summarize produces a spoken digest of unread mail.
	Summarize Intent = "gmail_summarize"
	// Draft composes a new email in a fresh thread.
	Draft Intent = "gmail_draft"
	// Reply composes a threaded reply to an existing message.
	Reply Intent = "gmail_reply"
	// None is returned when no other action applies.
	None Intent = "none"
)

// Argument slot names shared by the extractor and the orchestrator.
const (
	SlotLookbackValue = "lookback_period_value"
	SlotLookbackUnits = "lookback_period_units"
	SlotRecipient     = "recipient_name"
	SlotReplyTo       = "reply_recipient_name"
	SlotDescription   = "email_description"
)

// Catalog maps each intent to the human description shown to the oracle
// during classification. The set is fixed; it never changes at runtime.
var Catalog = map[Intent]string{
	Summarize: "Summarize unread Emails",
	Draft:     "Draft an Email in a completely new email chain",
	Reply:     "Reply to Email in a current email chain",
	None:      "Select this if none of the other actions are applicable",
}

// Keys lists the catalog intents in a stable order for prompt construction.
var Keys = []Intent{Summarize, Draft, Reply, None}

// schemas holds the ordered argument slots per intent. An intent absent from
// the map takes no arguments.
var schemas = map[Intent][]string{
	Summarize: {SlotLookbackValue, SlotLookbackUnits},
	Draft:     {SlotRecipient, SlotDescription},
	Reply:     {SlotReplyTo, SlotDescription},
}

// Schema returns the ordered argument slots for the intent, or nil when the
// intent takes no arguments.
func Schema(in Intent) []string {
	return schemas[in]
}
