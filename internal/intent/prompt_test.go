package intent

import (
	"strings"
	"testing"
	"time"
)

func TestBuildSystemPrompt(t *testing.T) {
	tests := []struct {
		name string
		ref  time.Time
		want []string
	}{
		{
			name: "Saturday",
			ref:  time.Date(2024, 3, 9, 21, 30, 0, 0, time.UTC),
			want: []string{
				"Current time: 2024-03-09 21:30:00 (Saturday).",
				"- This week: 2024-03-04 to 2024-03-10",
				"- Next week: 2024-03-11 to 2024-03-17",
			},
		},
		{
			name: "Sunday belongs to the week that started on Monday",
			ref:  time.Date(2024, 3, 10, 8, 0, 0, 0, time.UTC),
			want: []string{
				"(Sunday)",
				"- This week: 2024-03-04 to 2024-03-10",
				"- Next week: 2024-03-11 to 2024-03-17",
			},
		},
		{
			name: "Monday across a month boundary",
			ref:  time.Date(2024, 4, 29, 0, 0, 0, 0, time.UTC),
			want: []string{
				"- This week: 2024-04-29 to 2024-05-05",
				"- Next week: 2024-05-06 to 2024-05-12",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := buildSystemPrompt(tt.ref)
			if !strings.HasPrefix(got, PromptSystem) {
				t.Error("prompt does not start with the fixed rules")
			}
			for _, w := range tt.want {
				if !strings.Contains(got, w) {
					t.Errorf("prompt missing %q\n%s", w, got)
				}
			}
		})
	}
}

func TestAugmentText(t *testing.T) {
	got := AugmentText("call mom tomorrow", "2024-03-09T08:00:00Z")
	if !strings.HasPrefix(got, "call mom tomorrow\nCurrent time (ISO): 2024-03-09T08:00:00Z\n") {
		t.Errorf("AugmentText() = %q", got)
	}
}
