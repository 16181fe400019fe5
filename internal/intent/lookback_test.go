package intent_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/hal9000y/gmail-voice/internal/intent"
)

func TestLookbackSeconds(t *testing.T) {
	cases := []struct {
		name     string
		value    string
		unit     string
		expected int64
	}{
		{name: "two hours", value: "2", unit: "hours", expected: 7200},
		{name: "one minute", value: "1", unit: "minutes", expected: 60},
		{name: "seven days", value: "7", unit: "days", expected: 604800},
		{name: "mixed case unit", value: "3", unit: "Hours", expected: 10800},
		{name: "padded input", value: " 12 ", unit: " hours ", expected: 43200},
		{name: "missing value", value: "", unit: "hours", expected: 86400},
		{name: "non-numeric value", value: "a couple", unit: "days", expected: 86400},
		{name: "negative value", value: "-5", unit: "hours", expected: 86400},
		{name: "unknown unit", value: "5", unit: "fortnights", expected: 86400},
		{name: "everything missing", value: "", unit: "", expected: 86400},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, intent.LookbackSeconds(tc.value, tc.unit))
		})
	}
}

func TestLookbackWindow(t *testing.T) {
	assert.Equal(t, 2*time.Hour, intent.LookbackWindow("2", "hours"))
	assert.Equal(t, 24*time.Hour, intent.LookbackWindow("", ""))
}

func TestSchema(t *testing.T) {
	assert.Equal(t, []string{intent.SlotLookbackValue, intent.SlotLookbackUnits}, intent.Schema(intent.Summarize))
	assert.Equal(t, []string{intent.SlotRecipient, intent.SlotDescription}, intent.Schema(intent.Draft))
	assert.Equal(t, []string{intent.SlotReplyTo, intent.SlotDescription}, intent.Schema(intent.Reply))
	assert.Nil(t, intent.Schema(intent.None))
}
