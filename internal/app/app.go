package app

import (
	"context"
	"errors"
	"fmt"

	"icpc-contest/internal/apperrors"
	"icpc-contest/internal/domain/model"
	"icpc-contest/internal/domain/ports"
	"icpc-contest/internal/usecase"
)

// Report holds what a run produced. A nil entry means that workflow did not
// commit.
type Report struct {
	Team     *model.Team
	Problem  *model.Problem
	Solution *model.Solution
	Policy   *model.AccessPolicy
}

// App runs the four contest workflows once, in a fixed order.
type App struct {
	prompter  ports.Prompter
	catalog   ports.ProblemCatalog
	logger    ports.Logger
	teams     *usecase.TeamRegistration
	problems  *usecase.ProblemSubmission
	solutions *usecase.SolutionSubmission
	access    *usecase.AccessControl
}

// New constructs an App instance.
func New(
	prompter ports.Prompter,
	catalog ports.ProblemCatalog,
	logger ports.Logger,
	teams *usecase.TeamRegistration,
	problems *usecase.ProblemSubmission,
	solutions *usecase.SolutionSubmission,
	access *usecase.AccessControl,
) *App {
	return &App{
		prompter:  prompter,
		catalog:   catalog,
		logger:    logger,
		teams:     teams,
		problems:  problems,
		solutions: solutions,
		access:    access,
	}
}

type step struct {
	name     string
	role     model.Role
	question string
	run      func(ctx context.Context, actor model.Actor) error
}

// Run executes team registration, problem submission, solution submission
// and access control. A workflow that ends in an error the user was told about
// does not stop the run; running out of input does.
func (a *App) Run(ctx context.Context) (*Report, error) {
	report := &Report{}

	steps := []step{
		{"team registration", model.RoleTeamCaptain, "Enter Team Captain's username: ",
			func(ctx context.Context, actor model.Actor) error {
				team, err := a.teams.Run(ctx, actor)
				if err == nil {
					report.Team = &team
				}
				return err
			}},
		{"problem submission", model.RoleProblemSetter, "Enter Problem Setter's username: ",
			func(ctx context.Context, actor model.Actor) error {
				problem, err := a.problems.Run(ctx, actor)
				if err == nil {
					report.Problem = &problem
				}
				return err
			}},
		{"solution submission", model.RoleTeamMember, "Enter Team Member's name: ",
			func(ctx context.Context, actor model.Actor) error {
				solution, err := a.solutions.Run(ctx, actor)
				if err == nil {
					report.Solution = &solution
				}
				return err
			}},
		{"access control", model.RoleSystemAdministrator, "Enter System Administrator's username: ",
			func(ctx context.Context, actor model.Actor) error {
				policy, err := a.access.Run(ctx, actor)
				if err == nil {
					report.Policy = &policy
				}
				return err
			}},
	}

	for _, s := range steps {
		stop, err := a.runStep(ctx, s)
		if err != nil {
			return report, err
		}
		if stop {
			break
		}
	}

	a.logger.Info(ctx, "run finished", "catalog_size", a.catalog.Len(), "catalog_capacity", a.catalog.Capacity())
	return report, nil
}

func (a *App) runStep(ctx context.Context, s step) (bool, error) {
	username, err := a.prompter.Ask(ctx, s.question)
	if err == nil {
		actor := model.NewActor(s.role, username)
		a.logger.Debug(ctx, "workflow started", "workflow", s.name, "actor", actor.String())
		err = s.run(ctx, actor)
	}

	switch {
	case err == nil:
		return false, nil
	case errors.Is(err, apperrors.ErrInputClosed), errors.Is(err, context.Canceled):
		a.logger.Info(ctx, "stopping run", "workflow", s.name, "reason", err)
		return true, nil
	case errors.Is(err, apperrors.ErrUserCancelled),
		errors.Is(err, apperrors.ErrDuplicateProblem),
		errors.Is(err, apperrors.ErrCapacityExceeded),
		errors.Is(err, apperrors.ErrInvalidInput):
		a.logger.Info(ctx, "workflow ended without commit", "workflow", s.name, "reason", err)
		return false, nil
	default:
		a.logger.Error(ctx, "workflow failed", "workflow", s.name, "error", err)
		return true, fmt.Errorf("%s: %w", s.name, err)
	}
}
