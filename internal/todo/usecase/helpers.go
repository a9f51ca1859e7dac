package usecase

import (
	"strings"

	"nl-todo/internal/intent"
	"nl-todo/pkg/datemath"
)

func priorityOrDefault(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}

// resolveDeleteRange reads start/end from the intent. When neither is given a
// single date field is used: a YYYY-MM-DD value covers that whole day, any
// other value is used as both bounds. Both bounds are normalized, and a
// date-only end is widened to the last second of its day.
func resolveDeleteRange(it intent.Intent) (start, end string, ok bool) {
	if it.Start.Present() {
		start = it.Start.Value
	}
	if it.End.Present() {
		end = it.End.Value
	}

	if start == "" && end == "" {
		if single, found := it.SingleDate(); found {
			single = strings.TrimSpace(single)
			if datemath.IsDateOnly(single) {
				start, end = datemath.DayRange(single)
			} else {
				start, end = single, single
			}
		}
	}
	if start == "" || end == "" {
		return "", "", false
	}

	start, end = normalizeBound(start), normalizeBound(end)
	if datemath.IsDateOnly(end) {
		_, end = datemath.DayRange(end)
	}
	return start, end, true
}

// normalizeBound falls back to the raw value when normalization declines.
func normalizeBound(s string) string {
	if out, _ := datemath.Normalize(s); out != "" {
		return out
	}
	return s
}
