package intent

import (
	"encoding/json"
	"reflect"
	"testing"

	"nl-todo/internal/model"
)

func mustIntent(t *testing.T, s string) Intent {
	t.Helper()
	var it Intent
	if err := json.Unmarshal([]byte(s), &it); err != nil {
		t.Fatalf("unmarshal %s: %v", s, err)
	}
	return it
}

func TestIntent_ActionOrDefault(t *testing.T) {
	tests := []struct {
		body string
		want model.Action
	}{
		{body: `{}`, want: model.ActionAdd},
		{body: `{"action":"delete"}`, want: model.ActionDelete},
		{body: `{"action":"DELETE"}`, want: model.ActionDelete},
		{body: `{"action":"add"}`, want: model.ActionAdd},
		{body: `{"action":"archive"}`, want: model.ActionAdd},
		{body: `{"action":3}`, want: model.ActionAdd},
		{body: `{"action":null}`, want: model.ActionAdd},
	}
	for _, tt := range tests {
		if got := mustIntent(t, tt.body).ActionOrDefault(); got != tt.want {
			t.Errorf("%s: ActionOrDefault() = %s, want %s", tt.body, got, tt.want)
		}
	}
}

func TestIntent_TagList(t *testing.T) {
	tests := []struct {
		body string
		want []string
	}{
		{body: `{}`, want: []string{}},
		{body: `{"tags":null}`, want: []string{}},
		{body: `{"tags":"work, home ,,urgent"}`, want: []string{"work", "home", "urgent"}},
		{body: `{"tags":[" work ","", "home"]}`, want: []string{"work", "home"}},
		{body: `{"tags":["work", 5, true]}`, want: []string{"work"}},
		{body: `{"tags":{"a":"b"}}`, want: []string{}},
		{body: `{"tags":12}`, want: []string{}},
	}
	for _, tt := range tests {
		if got := mustIntent(t, tt.body).TagList(); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("%s: TagList() = %#v, want %#v", tt.body, got, tt.want)
		}
	}
}

func TestIntent_PriorityValue(t *testing.T) {
	tests := []struct {
		body string
		want int
	}{
		{body: `{}`, want: 0},
		{body: `{"priority":null}`, want: 0},
		{body: `{"priority":7}`, want: 7},
		{body: `{"priority":7.9}`, want: 7},
		{body: `{"priority":"8"}`, want: 8},
		{body: `{"priority":" 3 "}`, want: 3},
		{body: `{"priority":"high"}`, want: 0},
		{body: `{"priority":"8.5"}`, want: 0},
		{body: `{"priority":true}`, want: 1},
		{body: `{"priority":[1]}`, want: 0},
		{body: `{"priority":1e300}`, want: 0},
	}
	for _, tt := range tests {
		if got := mustIntent(t, tt.body).PriorityValue(); got != tt.want {
			t.Errorf("%s: PriorityValue() = %d, want %d", tt.body, got, tt.want)
		}
	}
}

func TestIntent_SingleDate(t *testing.T) {
	tests := []struct {
		body string
		want string
		ok   bool
	}{
		{body: `{}`, ok: false},
		{body: `{"due_date":"2024-03-01"}`, want: "2024-03-01", ok: true},
		{body: `{"date":"2024-03-02","day":"2024-03-03"}`, want: "2024-03-02", ok: true},
		{body: `{"due_date":"","day":"2024-03-03"}`, want: "2024-03-03", ok: true},
		{body: `{"due_date":20240301}`, ok: false},
	}
	for _, tt := range tests {
		got, ok := mustIntent(t, tt.body).SingleDate()
		if got != tt.want || ok != tt.ok {
			t.Errorf("%s: SingleDate() = (%q, %v), want (%q, %v)", tt.body, got, ok, tt.want, tt.ok)
		}
	}
}

func TestOptString(t *testing.T) {
	it := mustIntent(t, `{"title":"  ","description":{"x":1},"due_date":"2024-03-01"}`)

	if it.Title.Present() || it.Title.Ptr() != nil {
		t.Error("blank title should be absent")
	}
	if it.Description.Set {
		t.Error("object description should be absent")
	}
	if p := it.DueDate.Ptr(); p == nil || *p != "2024-03-01" {
		t.Errorf("DueDate.Ptr() = %v", p)
	}
}
