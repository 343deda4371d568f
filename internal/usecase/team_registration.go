package usecase

import (
	"context"
	"fmt"

	"icpc-contest/internal/apperrors"
	"icpc-contest/internal/domain/model"
	"icpc-contest/internal/domain/ports"
)

// TeamRegistration builds a Team from a captain's answers. The team is
// returned to the caller and not stored anywhere.
type TeamRegistration struct {
	form
	logger ports.Logger
}

// NewTeamRegistration constructs a TeamRegistration use case.
func NewTeamRegistration(prompter ports.Prompter, notifier ports.Notifier, logger ports.Logger) *TeamRegistration {
	return &TeamRegistration{
		form:   form{prompter: prompter, notifier: notifier},
		logger: logger,
	}
}

// Run executes the team registration workflow. A non-positive member count
// yields a team without members.
func (r *TeamRegistration) Run(ctx context.Context, captain model.Actor) (model.Team, error) {
	const op = "usecase.TeamRegistration.Run"

	if err := r.say(ctx, "Team Registration Form"); err != nil {
		return model.Team{}, fmt.Errorf("%s: %w", op, err)
	}

	name, err := r.ask(ctx, "Enter team name: ")
	if err != nil {
		return model.Team{}, fmt.Errorf("%s: %w", op, err)
	}
	university, err := r.ask(ctx, "Enter university: ")
	if err != nil {
		return model.Team{}, fmt.Errorf("%s: %w", op, err)
	}

	team := model.Team{Name: name, University: university, Captain: captain.Username}

	count, err := r.askCount(ctx, "Enter the number of team members: ")
	if err != nil {
		r.logger.Info(ctx, "team registration aborted", "op", op, "captain", captain.Username, "error", err)
		return model.Team{}, fmt.Errorf("%s: %w", op, err)
	}

	for i := 0; i < count; i++ {
		member, err := r.ask(ctx, "Enter team member name: ")
		if err != nil {
			return model.Team{}, fmt.Errorf("%s: %w", op, err)
		}
		team.AddMember(member)
	}

	if err := r.send(ctx, formatTeamSummary(team)); err != nil {
		return model.Team{}, fmt.Errorf("%s: %w", op, err)
	}

	ok, err := r.confirm(ctx, "Do you want to register the team? (yes/no): ")
	if err != nil {
		return model.Team{}, fmt.Errorf("%s: %w", op, err)
	}
	if !ok {
		r.logger.Info(ctx, "team registration cancelled", "op", op, "captain", captain.Username)
		if err := r.say(ctx, "Team registration canceled."); err != nil {
			return model.Team{}, fmt.Errorf("%s: %w", op, err)
		}
		return model.Team{}, fmt.Errorf("%s: %w", op, apperrors.ErrUserCancelled)
	}

	r.logger.Info(ctx, "team registered",
		"op", op,
		"captain", captain.Username,
		"team", team.Name,
		"member_count", len(team.Members))

	if err := r.say(ctx, "Team successfully registered."); err != nil {
		return team, fmt.Errorf("%s: %w", op, err)
	}
	return team, nil
}
