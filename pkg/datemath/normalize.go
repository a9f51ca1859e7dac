package datemath

import (
	"strings"
	"time"
)

// Normalize converts s into one of the two canonical forms.
//
// The second return value reports whether a known pattern matched. When it is
// false the returned string is the trimmed input, or "" for blank input.
// Timezone offsets are dropped and the wall clock is kept.
func Normalize(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}

	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(LayoutDateTime), true
		}
	}

	if t, err := time.Parse(plainDateLayout, s); err == nil {
		return t.Format(LayoutDate), true
	}

	for _, f := range fallbackLayouts {
		t, err := time.Parse(f.layout, s)
		if err != nil {
			continue
		}
		if f.hasTime {
			return t.Format(LayoutDateTime), true
		}
		return t.Format(LayoutDate), true
	}

	return s, false
}

// NormalizePtr is Normalize for optional values. nil and blank input give nil.
func NormalizePtr(s *string) *string {
	if s == nil {
		return nil
	}
	out, _ := Normalize(*s)
	if out == "" {
		return nil
	}
	return &out
}

// IsDateOnly reports whether s has exactly the YYYY-MM-DD shape.
func IsDateOnly(s string) bool {
	if len(s) != len(LayoutDate) || strings.Count(s, "-") != 2 {
		return false
	}
	_, err := time.Parse(LayoutDate, s)
	return err == nil
}

// ParseReference reads a caller-supplied reference timestamp. A trailing Z is
// dropped so the value is read as wall clock. Date-only input maps to midnight.
func ParseReference(s string) (time.Time, bool) {
	s = strings.TrimSuffix(strings.TrimSpace(s), "Z")
	if s == "" {
		return time.Time{}, false
	}

	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	if t, err := time.Parse(plainDateLayout, s); err == nil {
		return t, true
	}
	return time.Time{}, false
}
