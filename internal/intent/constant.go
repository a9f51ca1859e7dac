package intent

import "time"

// Log prefixes
const (
	LogPrefixExtract = "internal.intent.Extract"
)

// DefaultTimeout bounds a single extraction call.
const DefaultTimeout = 15 * time.Second

// Outcome kinds
const (
	OutcomeOK            Outcome = "ok"
	OutcomeDisabled      Outcome = "disabled"
	OutcomeTimeout       Outcome = "timeout"
	OutcomeRequestFailed Outcome = "request_failed"
	OutcomeMalformed     Outcome = "malformed"
)

// Reference time layouts used inside prompts
const (
	promptTimeLayout = "2006-01-02 15:04:05"
	promptDateLayout = "2006-01-02"
)

// PromptSystem holds the fixed parsing rules. The dynamic calendar block is appended by buildSystemPrompt.
const PromptSystem = `You are a to-do parsing assistant. Turn the user's natural-language input into one JSON object.
Possible actions: "add" adds a to-do; "delete" removes to-dos (deletion is only allowed by time range).
When action="add", return the fields: title (required), description (optional), due_date (the parsed date-time, ISO 8601. Rules: 1. prefer an explicit clock time such as 19:00; 2. if only a vague part of day is given, use 12:00 for morning, 18:00 for afternoon and 22:00 for evening; 3. if there is a date but no time, use 23:59:59), tags (array, empty when there are none), priority (integer from 1 to 10, larger is more urgent).
When action="delete", return the fields: action="delete", start (ISO 8601 or YYYY-MM-DD, required), end (ISO 8601 or YYYY-MM-DD, required), keywords (optional, informational).
General rules: always give a concrete time range for deletion. If the input mixes adding and deleting, follow the user's overall intent. Output bare JSON only, with no explanation.
Pay attention: 1. a week starts on Monday and ends on Sunday. 2. "next week" is the calendar week after the one containing the current date. For example, if today is Saturday, "next Friday" is the Friday of the following calendar week (the Friday after next Monday).`

// PromptCalendar is formatted with the reference time, its weekday and the this/next week bounds.
const PromptCalendar = `
Current time: %s (%s).
Calendar:
- This week: %s to %s
- Next week: %s to %s
Resolve strictly against the ranges above. For example, "next Friday" must be the Friday inside "Next week".`

// PromptReferenceClause is appended to the user text when the caller supplies its own current time.
const PromptReferenceClause = "\nCurrent time (ISO): %s\nNote: if the user uses relative time expressions (today, tomorrow, the day after tomorrow, next week), resolve them against the current time above and put concrete values in the due_date/start/end fields of the returned JSON."

// Error messages
const (
	ErrMsgDisabled     = "extraction disabled, no API key configured"
	ErrMsgTimeout      = "extraction call timed out"
	ErrMsgCallFailed   = "extraction call failed"
	ErrMsgEmptyContent = "empty completion content"
	ErrMsgNotObject    = "completion is not a JSON object"
)
