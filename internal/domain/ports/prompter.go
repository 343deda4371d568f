package ports

import "context"

// Prompter asks one question and returns the answer line without its line
// terminator. It returns apperrors.ErrInputClosed once no answers remain.
type Prompter interface {
	Ask(ctx context.Context, question string) (string, error)
}
