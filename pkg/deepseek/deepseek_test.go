package deepseek_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"nl-todo/pkg/deepseek"
)

func TestNew(t *testing.T) {
	if _, err := deepseek.New(deepseek.Config{}); err == nil {
		t.Fatal("expected error for missing API key")
	}

	c, err := deepseek.New(deepseek.Config{APIKey: "k"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Model() != deepseek.DefaultModel {
		t.Errorf("Model() = %q, want %q", c.Model(), deepseek.DefaultModel)
	}
}

func TestGenerateContent(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("unexpected auth header %q", got)
		}

		var req deepseek.Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
			return
		}
		if req.Model != "my-model" || req.Stream {
			t.Errorf("unexpected request %+v", req)
		}
		if len(req.Messages) != 2 || req.Messages[0].Role != deepseek.RoleSystem {
			t.Errorf("unexpected messages %+v", req.Messages)
		}

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"id":"x","choices":[{"index":0,"message":{"role":"assistant","content":"{\"title\":\"a\"}"}}]}`))
	}))
	defer ts.Close()

	c, _ := deepseek.New(deepseek.Config{APIKey: "test-key", BaseURL: ts.URL + "/", Model: "my-model"})
	resp, err := c.GenerateContent(context.Background(), &deepseek.Request{
		Messages: []deepseek.Message{
			{Role: deepseek.RoleSystem, Content: "sys"},
			{Role: deepseek.RoleUser, Content: "hi"},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := resp.FirstContent(); got != `{"title":"a"}` {
		t.Errorf("FirstContent() = %q", got)
	}
}

func TestGenerateContent_APIError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":{"message":"invalid key","type":"auth"}}`))
	}))
	defer ts.Close()

	c, _ := deepseek.New(deepseek.Config{APIKey: "bad", BaseURL: ts.URL})
	_, err := c.GenerateContent(context.Background(), &deepseek.Request{})

	var apiErr *deepseek.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.StatusCode != http.StatusUnauthorized || apiErr.Message != "invalid key" {
		t.Errorf("unexpected APIError %+v", apiErr)
	}
}

func TestFirstContent_Empty(t *testing.T) {
	var r *deepseek.Response
	if r.FirstContent() != "" {
		t.Error("nil response should have empty content")
	}
	if (&deepseek.Response{}).FirstContent() != "" {
		t.Error("response without choices should have empty content")
	}
}
