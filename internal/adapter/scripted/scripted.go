// Package scripted drives workflows from a fixed list of answers, so the
// workflow logic can run without a terminal.
package scripted

import (
	"context"
	"sync"

	"icpc-contest/internal/apperrors"
	"icpc-contest/internal/domain/model"
	"icpc-contest/internal/domain/ports"
)

// Prompter answers questions from a list, in order.
type Prompter struct {
	mu        sync.Mutex
	answers   []string
	questions []string
}

var _ ports.Prompter = (*Prompter)(nil)

// NewPrompter returns a Prompter that will give the answers in order.
func NewPrompter(answers ...string) *Prompter {
	return &Prompter{answers: answers}
}

// Ask returns the next answer, or apperrors.ErrInputClosed when none remain.
func (p *Prompter) Ask(ctx context.Context, question string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	p.questions = append(p.questions, question)
	if len(p.answers) == 0 {
		return "", apperrors.ErrInputClosed
	}
	answer := p.answers[0]
	p.answers = p.answers[1:]
	return answer, nil
}

// Questions returns every question asked so far.
func (p *Prompter) Questions() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.questions...)
}

// Remaining returns the number of unused answers.
func (p *Prompter) Remaining() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.answers)
}

// Recorder is a Notifier that keeps every notification it receives.
type Recorder struct {
	mu   sync.Mutex
	sent []model.Notification
}

var _ ports.Notifier = (*Recorder)(nil)

// Send records the notification.
func (r *Recorder) Send(_ context.Context, notification model.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, notification)
	return nil
}

// Titles returns the titles of the recorded notifications.
func (r *Recorder) Titles() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	titles := make([]string, 0, len(r.sent))
	for _, n := range r.sent {
		titles = append(titles, n.Title)
	}
	return titles
}

// Sent returns the recorded notifications.
func (r *Recorder) Sent() []model.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]model.Notification(nil), r.sent...)
}
