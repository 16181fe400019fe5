package assistant

import (
	"fmt"
	"strings"

	"github.com/hal9000y/gmail-voice/internal/gservice"
	"github.com/hal9000y/gmail-voice/internal/intent"
)

const classifySystem = "You are a command classifier for a voice assistant. " +
	"Your task is to output EXACTLY one of the provided action keys and NOTHING else. " +
	"Do not include conversational text, do not include quotes, and do not explain your reasoning. " +
	"Watch out for phonetic transcription errors like 'summer eyes' which actually means 'summarize', " +
	"or 'read play' which actually means 'reply'."

func classifyPrompt(command string) string {
	keys := make([]string, 0, len(intent.Keys))
	var descriptions strings.Builder
	for _, key := range intent.Keys {
		keys = append(keys, string(key))
		fmt.Fprintf(&descriptions, "%s: %s\n", key, intent.Catalog[key])
	}

	return fmt.Sprintf(
		"Valid Action Keys: [%s]\nAction Descriptions:\n%sCommand: '%s'\nClassification:",
		strings.Join(keys, ", "), descriptions.String(), command,
	)
}

const extractSystem = "You are a strict semantic parser. You MUST output a JSON object using the exact keys provided by the user.\n\n" +
	"RULES:\n" +
	"1. KEY CASING: Use only the exact casing provided in the 'Required JSON Keys'.\n" +
	"2. LOOKBACK_PERIOD_VALUE: Extract only the digit/number (e.g., '22' or '5').\n" +
	"   - If no number is mentioned but a unit is (e.g., 'the last hour'), use '1'.\n" +
	"   - Return as an INTEGER or a numeric string.\n" +
	"3. LOOKBACK_PERIOD_UNITS: Extract the time unit (e.g., 'minutes', 'hours', 'days').\n" +
	"   - Always use the plural form: 'minutes', 'hours', or 'days'.\n" +
	"4. RECIPIENT_NAME: Extract the person or entity. Strip lead-in words like 'to' or 'send to'.\n" +
	"5. EMAIL_DESCRIPTION: Keep exact phrasing of the message. Do not summarize or change perspective.\n" +
	"6. EMPTY VALUES: Use '' for missing text. IMPORTANT: Default lookback_period_value to 24 and units to 'hours' if unspecified.\n" +
	"7. OUTPUT: Return ONLY valid JSON. No preamble, no markdown."

func extractPrompt(command string, in intent.Intent) string {
	return fmt.Sprintf(
		"User Command: '%s'\nIntent: '%s'\nRequired JSON Keys: [%s]\nTarget JSON Schema: Return an object with these exact keys.",
		command, in, strings.Join(intent.Schema(in), ", "),
	)
}

const resolveSystem = "Task: Map user intent to the correct Email ID for a reply.\n" +
	"Constraints:\n" +
	"1. Match based on Recipient Name/Email or Email Content description.\n" +
	"2. If multiple emails exist from the same sender, pick the most relevant to the Description.\n" +
	"3. If no clear match exists, you MUST output 'none'.\n" +
	"4. Output ONLY the raw ID string or 'none'. No preamble, no quotes, no explanation."

func resolvePrompt(candidates []gservice.Message, recipient, description string) string {
	var b strings.Builder
	for _, c := range candidates {
		fmt.Fprintf(&b, "ID: %s\nFrom: %s <%s>\nSubject: %s\nBody: %s\n---\n",
			c.ID, c.FromName, c.FromAddress, c.Subject, c.Body)
	}

	return fmt.Sprintf(
		"--- RECENT EMAILS ---\n%s\n--- USER INTENT ---\nRecipient: %s\nDescription: %s\n\nMatch ID:",
		b.String(), recipient, description,
	)
}

const digestSystem = "You are a minimalist voice assistant briefing the listener. " +
	"Provide a single, fluid paragraph containing all updates (Less than 100 words). " +
	"CRITICAL: Use conjunctions like 'while', 'and', or 'also' to link different emails into a natural spoken flow. " +
	"Avoid choppy, short sentences. Get straight to the news without a preamble. " +
	"STRICT RULES: No lists, no special characters, no transaction IDs, no links, and NO announcement of the summary. " +
	"Use only words meant to be spoken aloud. Avoid run-on sentences. " +
	"Example: 'The Dean invited you to a social this Friday, and your Amazon package has arrived.'"

func digestPrompt(emailContent string) string {
	return fmt.Sprintf("Summarize these emails into one smooth spoken update:\n\n%s", emailContent)
}

const draftSystem = "You are a professional writing assistant. " +
	"Do not include any preamble announcing the draft at all. Start the response with a greeting or the body text directly. " +
	"Your task is to write a clear, polite, and concise email body. " +
	"STRICT RULES: Do not include a subject line. Do not include a preamble like 'Certainly!' or 'Here is your draft'. " +
	"DO NOT use placeholders like '[Your Name]'. Use a natural, friendly tone. " +
	"Do not sign the email with a name."

func draftPrompt(recipient, description string) string {
	return fmt.Sprintf("Write an email to %s. The core message is: %s.", recipient, description)
}

const replySystem = "You are a professional writing assistant. " +
	"Your task is to write a polite and concise email reply based on a provided thread. " +
	"STRICT RULES:\n" +
	"1. No preamble (e.g., 'Here is your reply'). Start with the greeting.\n" +
	"2. Do not include a subject line.\n" +
	"3. DO NOT use placeholders like '[Your Name]'.\n" +
	"4. Do not sign the email with a name.\n" +
	"5. Ensure the tone matches the previous thread but prioritize the user's specific reply instructions."

func replyPrompt(threadBody, recipient, description string) string {
	return fmt.Sprintf(
		"--- PREVIOUS THREAD CONTEXT ---\n%s\n\n--- REPLY INSTRUCTIONS ---\nRecipient: %s\nMy Intent: %s\n\nWrite the reply now:",
		threadBody, recipient, description,
	)
}
