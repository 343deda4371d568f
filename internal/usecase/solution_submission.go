package usecase

import (
	"context"
	"fmt"

	"icpc-contest/internal/apperrors"
	"icpc-contest/internal/domain/model"
	"icpc-contest/internal/domain/ports"
)

// SolutionSubmission collects a team member's solution. Solutions are neither
// judged nor recorded; the problem reference is free text.
type SolutionSubmission struct {
	form
	logger ports.Logger
}

// NewSolutionSubmission constructs a SolutionSubmission use case.
func NewSolutionSubmission(prompter ports.Prompter, notifier ports.Notifier, logger ports.Logger) *SolutionSubmission {
	return &SolutionSubmission{
		form:   form{prompter: prompter, notifier: notifier},
		logger: logger,
	}
}

// Run executes the solution submission workflow.
func (s *SolutionSubmission) Run(ctx context.Context, member model.Actor) (model.Solution, error) {
	const op = "usecase.SolutionSubmission.Run"

	if err := s.say(ctx, "Solution Submission Form"); err != nil {
		return model.Solution{}, fmt.Errorf("%s: %w", op, err)
	}

	solution := model.Solution{Author: member.Username}
	fields := []struct {
		question string
		target   *string
	}{
		{"Select the problem for submission: ", &solution.Problem},
		{"Upload the solution code: ", &solution.Code},
		{"Provide additional comments or explanations: ", &solution.Comments},
	}
	for _, field := range fields {
		answer, err := s.ask(ctx, field.question)
		if err != nil {
			return model.Solution{}, fmt.Errorf("%s: %w", op, err)
		}
		*field.target = answer
	}

	ok, err := s.confirm(ctx, "Do you want to submit the solution? (yes/no): ")
	if err != nil {
		return model.Solution{}, fmt.Errorf("%s: %w", op, err)
	}
	if !ok {
		s.logger.Info(ctx, "solution submission cancelled", "op", op, "member", member.Username)
		if err := s.say(ctx, "Solution submission canceled."); err != nil {
			return model.Solution{}, fmt.Errorf("%s: %w", op, err)
		}
		return model.Solution{}, fmt.Errorf("%s: %w", op, apperrors.ErrUserCancelled)
	}

	s.logger.Info(ctx, "solution submitted", "op", op, "member", member.Username, "problem", solution.Problem)
	if err := s.say(ctx, "Solution successfully submitted."); err != nil {
		return solution, fmt.Errorf("%s: %w", op, err)
	}
	return solution, nil
}
