package intent

import (
	"fmt"
	"time"

	"nl-todo/pkg/datemath"
)

// buildSystemPrompt appends the calendar block for ref to the fixed rules.
func buildSystemPrompt(ref time.Time) string {
	thisMonday, thisSunday := datemath.Week(ref)
	nextMonday, nextSunday := datemath.NextWeek(ref)

	return PromptSystem + fmt.Sprintf(PromptCalendar,
		ref.Format(promptTimeLayout), ref.Weekday(),
		thisMonday.Format(promptDateLayout), thisSunday.Format(promptDateLayout),
		nextMonday.Format(promptDateLayout), nextSunday.Format(promptDateLayout),
	)
}

// AugmentText appends the caller's current time, as sent, and asks the model
// to resolve relative expressions against it.
func AugmentText(text, now string) string {
	return text + fmt.Sprintf(PromptReferenceClause, now)
}
