package usecase

import (
	"context"
	"strings"
	"time"

	"nl-todo/internal/intent"
	"nl-todo/internal/model"
	"nl-todo/internal/todo"
	repo "nl-todo/internal/todo/repository"
	"nl-todo/pkg/datemath"
)

// ProcessNL extracts an intent from free text and either creates a todo or
// deletes every todo due inside the extracted range. When extraction yields
// nothing usable a todo titled with the raw text is created instead.
func (uc *implUseCase) ProcessNL(ctx context.Context, input todo.NLInput) (todo.NLOutput, error) {
	if strings.TrimSpace(input.Text) == "" {
		return todo.NLOutput{}, todo.ErrEmptyText
	}

	text := input.Text
	var ref *time.Time
	if now := strings.TrimSpace(input.Now); now != "" {
		if t, ok := datemath.ParseReference(now); ok {
			ref = &t
		} else {
			uc.l.Warnf(ctx, "uc.ProcessNL: ignoring unparseable reference time %q", now)
		}
		text = intent.AugmentText(input.Text, now)
	}

	res := uc.extract(ctx, text, ref)
	if !res.OK() {
		uc.l.Infof(ctx, "uc.ProcessNL: extraction outcome=%s, creating todo from raw text", res.Outcome)
		return uc.createFromText(ctx, input.Text)
	}

	switch res.Intent.ActionOrDefault() {
	case model.ActionDelete:
		return uc.deleteInRange(ctx, *res.Intent)
	default:
		return uc.createFromIntent(ctx, input.Text, *res.Intent)
	}
}

func (uc *implUseCase) extract(ctx context.Context, text string, ref *time.Time) intent.Result {
	if uc.extractor == nil {
		return intent.Result{Outcome: intent.OutcomeDisabled}
	}
	return uc.extractor.Extract(ctx, text, ref)
}

func (uc *implUseCase) createFromText(ctx context.Context, text string) (todo.NLOutput, error) {
	t, err := uc.repo.CreateTodo(ctx, repo.CreateTodoOptions{Title: text})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ProcessNL CreateTodo fallback: %v", err)
		return todo.NLOutput{}, err
	}
	return todo.NLOutput{Created: &t}, nil
}

func (uc *implUseCase) createFromIntent(ctx context.Context, text string, it intent.Intent) (todo.NLOutput, error) {
	title := text
	if it.Title.Present() {
		title = it.Title.Value
	}

	t, err := uc.repo.CreateTodo(ctx, repo.CreateTodoOptions{
		Title:       title,
		Description: it.Description.Ptr(),
		DueDate:     datemath.NormalizePtr(it.DueDate.Ptr()),
		Tags:        it.TagList(),
		Priority:    it.PriorityValue(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ProcessNL CreateTodo: %v", err)
		return todo.NLOutput{}, err
	}
	return todo.NLOutput{Created: &t}, nil
}

func (uc *implUseCase) deleteInRange(ctx context.Context, it intent.Intent) (todo.NLOutput, error) {
	start, end, ok := resolveDeleteRange(it)
	if !ok {
		uc.l.Warnf(ctx, "uc.ProcessNL: %v", todo.ErrInvalidDeleteRange)
		return todo.NLOutput{}, todo.ErrInvalidDeleteRange
	}
	if len(it.Keywords) > 0 {
		uc.l.Debugf(ctx, "uc.ProcessNL: delete keywords %s", it.Keywords)
	}

	deleted, err := uc.repo.DeleteTodosInRange(ctx, repo.DeleteRangeOptions{Start: start, End: end})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ProcessNL DeleteTodosInRange: %v", err)
		return todo.NLOutput{}, err
	}

	uc.l.Infof(ctx, "uc.ProcessNL: deleted %d todos in [%s, %s]", len(deleted), start, end)
	return todo.NLOutput{Removed: &todo.DeleteRangeOutput{Deleted: deleted, Count: len(deleted)}}, nil
}
