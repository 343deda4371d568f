package usecase

import (
	"context"
	"errors"
	"fmt"

	"icpc-contest/internal/apperrors"
	"icpc-contest/internal/domain/model"
	"icpc-contest/internal/domain/ports"
)

const (
	msgProblemExists    = "Error: The problem already exists. Please review and update if needed."
	msgProblemAdded     = "New problem successfully added to the repository."
	msgProblemCancelled = "Problem submission canceled."
	msgCatalogFull      = "Error: The problem repository is full. The problem was not added."
)

// ProblemSubmission collects a new problem from a problem setter and adds it
// to the catalog once confirmed.
type ProblemSubmission struct {
	form
	catalog       ports.ProblemCatalog
	logger        ports.Logger
	previewLength int
}

// ProblemSubmissionConfig controls optional behaviours for problem submission.
type ProblemSubmissionConfig struct {
	PreviewLength int
}

// NewProblemSubmission constructs a ProblemSubmission use case.
func NewProblemSubmission(
	prompter ports.Prompter,
	notifier ports.Notifier,
	catalog ports.ProblemCatalog,
	logger ports.Logger,
	cfg ProblemSubmissionConfig,
) *ProblemSubmission {
	previewLength := cfg.PreviewLength
	if previewLength <= 0 {
		previewLength = defaultPreviewLength
	}
	return &ProblemSubmission{
		form:          form{prompter: prompter, notifier: notifier},
		catalog:       catalog,
		logger:        logger,
		previewLength: previewLength,
	}
}

// Run executes the problem submission workflow. A statement already in the
// catalog ends the workflow before any other field is asked for.
func (s *ProblemSubmission) Run(ctx context.Context, setter model.Actor) (model.Problem, error) {
	const op = "usecase.ProblemSubmission.Run"

	if err := s.say(ctx, "Problem Submission Form"); err != nil {
		return model.Problem{}, fmt.Errorf("%s: %w", op, err)
	}

	statement, err := s.ask(ctx, "Enter problem statement: ")
	if err != nil {
		return model.Problem{}, fmt.Errorf("%s: %w", op, err)
	}

	if s.catalog.Exists(statement) {
		return model.Problem{}, s.rejectDuplicate(ctx, op, setter)
	}

	problem, err := s.collectDetails(ctx, statement)
	if err != nil {
		return model.Problem{}, fmt.Errorf("%s: %w", op, err)
	}
	problem.Author = setter.Username

	if err := s.send(ctx, formatProblemReview(problem, s.previewLength)); err != nil {
		return model.Problem{}, fmt.Errorf("%s: %w", op, err)
	}

	ok, err := s.confirm(ctx, "Do you want to submit the new problem? (yes/no): ")
	if err != nil {
		return model.Problem{}, fmt.Errorf("%s: %w", op, err)
	}
	if !ok {
		s.logger.Info(ctx, "problem submission cancelled", "op", op, "setter", setter.Username)
		if err := s.say(ctx, msgProblemCancelled); err != nil {
			return model.Problem{}, fmt.Errorf("%s: %w", op, err)
		}
		return model.Problem{}, fmt.Errorf("%s: %w", op, apperrors.ErrUserCancelled)
	}

	added, err := s.catalog.AddIfAbsent(problem)
	switch {
	case errors.Is(err, apperrors.ErrDuplicateProblem):
		return model.Problem{}, s.rejectDuplicate(ctx, op, setter)
	case errors.Is(err, apperrors.ErrCapacityExceeded):
		s.logger.Error(ctx, "problem catalog is full",
			"op", op,
			"setter", setter.Username,
			"capacity", s.catalog.Capacity(),
			"error", err)
		if sendErr := s.say(ctx, msgCatalogFull); sendErr != nil {
			return model.Problem{}, fmt.Errorf("%s: %w", op, sendErr)
		}
		return model.Problem{}, fmt.Errorf("%s: %w", op, err)
	case err != nil:
		return model.Problem{}, fmt.Errorf("%s: %w", op, err)
	}

	s.logger.Info(ctx, "problem added",
		"op", op,
		"setter", setter.Username,
		"problem_id", added.ID,
		"catalog_size", s.catalog.Len())

	if err := s.say(ctx, msgProblemAdded); err != nil {
		return added, fmt.Errorf("%s: %w", op, err)
	}
	return added, nil
}

func (s *ProblemSubmission) collectDetails(ctx context.Context, statement string) (model.Problem, error) {
	problem := model.Problem{Statement: statement}

	fields := []struct {
		question string
		target   *string
	}{
		{"Enter test cases: ", &problem.TestCases},
		{"Enter sample solutions: ", &problem.SampleSolutions},
		{"Enter problem difficulty level: ", &problem.Difficulty},
	}
	for _, field := range fields {
		answer, err := s.ask(ctx, field.question)
		if err != nil {
			return model.Problem{}, err
		}
		*field.target = answer
	}

	tags, err := s.ask(ctx, "Enter tags (comma-separated): ")
	if err != nil {
		return model.Problem{}, err
	}
	problem.Tags = model.ParseTags(tags)

	problem.Hints, err = s.ask(ctx, "Provide hints or explanations for the problem: ")
	if err != nil {
		return model.Problem{}, err
	}

	return problem, nil
}

func (s *ProblemSubmission) rejectDuplicate(ctx context.Context, op string, setter model.Actor) error {
	s.logger.Info(ctx, "duplicate problem rejected", "op", op, "setter", setter.Username)
	if err := s.say(ctx, msgProblemExists); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return fmt.Errorf("%s: %w", op, apperrors.ErrDuplicateProblem)
}
