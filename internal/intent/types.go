package intent

import (
	"encoding/json"
	"strings"
	"time"

	"nl-todo/internal/model"
	"nl-todo/internal/todo"
)

// Config holds extraction settings. Zero values fall back to defaults.
type Config struct {
	Timeout     time.Duration
	Temperature float64
}

// Outcome classifies how an extraction call ended.
type Outcome string

// Result is the typed outcome of one extraction call.
// Intent is set only when Outcome is OutcomeOK.
type Result struct {
	Outcome Outcome
	Intent  *Intent
	Err     error
}

// OK reports whether the result carries a usable intent.
// Every other outcome is treated the same way by callers.
func (r Result) OK() bool {
	return r.Outcome == OutcomeOK && r.Intent != nil
}

// Intent is the JSON object returned by the model. Every field is optional.
type Intent struct {
	Action      OptString `json:"action"`
	Title       OptString `json:"title"`
	Description OptString `json:"description"`
	DueDate     OptString `json:"due_date"`
	Start       OptString `json:"start"`
	End         OptString `json:"end"`
	Date        OptString `json:"date"`
	Day         OptString `json:"day"`

	// Shape varies between replies; read through the coercion methods.
	Tags     json.RawMessage `json:"tags"`
	Priority json.RawMessage `json:"priority"`
	Keywords json.RawMessage `json:"keywords"`
}

// ActionOrDefault returns ActionDelete only for an explicit "delete"; anything else is an add.
func (i Intent) ActionOrDefault() model.Action {
	if strings.EqualFold(strings.TrimSpace(i.Action.Value), string(model.ActionDelete)) {
		return model.ActionDelete
	}
	return model.ActionAdd
}

// SingleDate returns the first non-empty of due_date, date and day.
func (i Intent) SingleDate() (string, bool) {
	for _, s := range []OptString{i.DueDate, i.Date, i.Day} {
		if s.Present() {
			return s.Value, true
		}
	}
	return "", false
}

// TagList accepts a comma separated string or an array of strings.
// Any other shape gives an empty list. Never returns nil.
func (i Intent) TagList() []string {
	tags := []string{}
	if len(i.Tags) == 0 {
		return tags
	}

	var csv string
	if err := json.Unmarshal(i.Tags, &csv); err == nil {
		for _, t := range strings.Split(csv, ",") {
			if t = strings.TrimSpace(t); t != "" {
				tags = append(tags, t)
			}
		}
		return tags
	}

	var list []any
	if err := json.Unmarshal(i.Tags, &list); err != nil {
		return tags
	}
	for _, v := range list {
		s, ok := v.(string)
		if !ok {
			continue
		}
		if s = strings.TrimSpace(s); s != "" {
			tags = append(tags, s)
		}
	}
	return tags
}

// PriorityValue coerces priority to an integer with todo.ParsePriority.
// Anything it rejects gives 0.
func (i Intent) PriorityValue() int {
	p, ok := todo.ParsePriority(i.Priority)
	if !ok {
		return 0
	}
	return p
}

// OptString is a JSON string field that reads any non-string value as absent.
type OptString struct {
	Value string
	Set   bool
}

func (s *OptString) UnmarshalJSON(b []byte) error {
	*s = OptString{}
	var v string
	if string(b) == "null" || json.Unmarshal(b, &v) != nil {
		return nil
	}
	*s = OptString{Value: v, Set: true}
	return nil
}

// Present reports whether the field holds a non-blank string.
func (s OptString) Present() bool {
	return s.Set && strings.TrimSpace(s.Value) != ""
}

// Ptr returns nil unless the field is present.
func (s OptString) Ptr() *string {
	if !s.Present() {
		return nil
	}
	v := s.Value
	return &v
}
