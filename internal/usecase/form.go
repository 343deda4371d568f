package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"icpc-contest/internal/apperrors"
	"icpc-contest/internal/domain/model"
	"icpc-contest/internal/domain/ports"
)

// form is the shared collect/confirm plumbing of every workflow.
type form struct {
	prompter ports.Prompter
	notifier ports.Notifier
}

func (f form) ask(ctx context.Context, question string) (string, error) {
	answer, err := f.prompter.Ask(ctx, question)
	if err != nil {
		return "", fmt.Errorf("ask %q: %w", strings.TrimSpace(question), err)
	}
	return answer, nil
}

// askCount reads a whole number. Anything else is reported to the user and
// returned as apperrors.ErrInvalidInput.
func (f form) askCount(ctx context.Context, question string) (int, error) {
	answer, err := f.ask(ctx, question)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(strings.TrimSpace(answer))
	if err != nil {
		if sendErr := f.say(ctx, fmt.Sprintf("Error: %q is not a whole number.", answer)); sendErr != nil {
			return 0, sendErr
		}
		return 0, fmt.Errorf("%w: %q is not a whole number", apperrors.ErrInvalidInput, answer)
	}
	return n, nil
}

// confirm is the yes/no gate. Only "yes" in any letter case commits.
func (f form) confirm(ctx context.Context, question string) (bool, error) {
	answer, err := f.ask(ctx, question)
	if err != nil {
		return false, err
	}
	return strings.EqualFold(answer, "yes"), nil
}

func (f form) say(ctx context.Context, text string) error {
	return f.send(ctx, model.Message(text))
}

func (f form) send(ctx context.Context, notification model.Notification) error {
	if err := f.notifier.Send(ctx, notification); err != nil {
		return fmt.Errorf("notify: %w", err)
	}
	return nil
}
