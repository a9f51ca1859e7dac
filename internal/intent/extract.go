package intent

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"regexp"
	"strings"
	"time"

	"nl-todo/pkg/deepseek"
)

var codeFencePattern = regexp.MustCompile("(?s)^```(?i:json)?\\s*(.*?)\\s*(?:```)?$")

// Extract sends one completion request. It never returns an error to the
// caller: failures are reported through Result.Outcome.
func (e *DeepSeekExtractor) Extract(ctx context.Context, text string, ref *time.Time) Result {
	if e.llm == nil {
		e.l.Debugf(ctx, "%s: %s", LogPrefixExtract, ErrMsgDisabled)
		return Result{Outcome: OutcomeDisabled}
	}

	now := e.now()
	if ref != nil {
		now = *ref
	}

	callCtx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	resp, err := e.llm.GenerateContent(callCtx, &deepseek.Request{
		Model: e.llm.Model(),
		Messages: []deepseek.Message{
			{Role: deepseek.RoleSystem, Content: buildSystemPrompt(now)},
			{Role: deepseek.RoleUser, Content: text},
		},
		Stream:      false,
		Temperature: e.temperature,
	})
	if err != nil {
		if isTimeout(callCtx, err) {
			e.l.Warnf(ctx, "%s: %s: %v", LogPrefixExtract, ErrMsgTimeout, err)
			return Result{Outcome: OutcomeTimeout, Err: err}
		}
		e.l.Warnf(ctx, "%s: %s: %v", LogPrefixExtract, ErrMsgCallFailed, err)
		return Result{Outcome: OutcomeRequestFailed, Err: err}
	}

	content := stripCodeFence(resp.FirstContent())
	if content == "" {
		e.l.Warnf(ctx, "%s: %s", LogPrefixExtract, ErrMsgEmptyContent)
		return Result{Outcome: OutcomeMalformed, Err: errors.New(ErrMsgEmptyContent)}
	}

	it, err := parseIntent(content)
	if err != nil {
		e.l.Warnf(ctx, "%s: %v. Content=%q", LogPrefixExtract, err, content)
		return Result{Outcome: OutcomeMalformed, Err: err}
	}

	e.l.Infof(ctx, "%s: extracted action=%s", LogPrefixExtract, it.ActionOrDefault())
	return Result{Outcome: OutcomeOK, Intent: &it}
}

// stripCodeFence removes a Markdown code fence, with or without a json tag,
// around the payload. An unterminated fence is tolerated.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	if m := codeFencePattern.FindStringSubmatch(s); len(m) > 1 {
		return strings.TrimSpace(m[1])
	}
	return strings.TrimSpace(strings.Trim(s, "`"))
}

// parseIntent accepts only a JSON object.
func parseIntent(content string) (Intent, error) {
	if !strings.HasPrefix(content, "{") {
		return Intent{}, errors.New(ErrMsgNotObject)
	}
	var it Intent
	if err := json.Unmarshal([]byte(content), &it); err != nil {
		return Intent{}, err
	}
	return it, nil
}

func isTimeout(ctx context.Context, err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
