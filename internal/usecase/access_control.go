package usecase

import (
	"context"
	"fmt"

	"icpc-contest/internal/apperrors"
	"icpc-contest/internal/domain/model"
	"icpc-contest/internal/domain/ports"
)

// AccessControl records how many roles an administrator wants to define.
// No roles or permissions are created.
type AccessControl struct {
	form
	logger ports.Logger
}

// NewAccessControl constructs an AccessControl use case.
func NewAccessControl(prompter ports.Prompter, notifier ports.Notifier, logger ports.Logger) *AccessControl {
	return &AccessControl{
		form:   form{prompter: prompter, notifier: notifier},
		logger: logger,
	}
}

// Run executes the access control workflow.
func (a *AccessControl) Run(ctx context.Context, admin model.Actor) (model.AccessPolicy, error) {
	const op = "usecase.AccessControl.Run"

	if err := a.say(ctx, "Access Control Configuration"); err != nil {
		return model.AccessPolicy{}, fmt.Errorf("%s: %w", op, err)
	}

	roles, err := a.askCount(ctx, "Enter the number of user roles to define: ")
	if err != nil {
		return model.AccessPolicy{}, fmt.Errorf("%s: %w", op, err)
	}

	ok, err := a.confirm(ctx, "Do you want to save the changes? (yes/no): ")
	if err != nil {
		return model.AccessPolicy{}, fmt.Errorf("%s: %w", op, err)
	}
	if !ok {
		a.logger.Info(ctx, "access control cancelled", "op", op, "admin", admin.Username)
		if err := a.say(ctx, "Access control configuration canceled."); err != nil {
			return model.AccessPolicy{}, fmt.Errorf("%s: %w", op, err)
		}
		return model.AccessPolicy{}, fmt.Errorf("%s: %w", op, apperrors.ErrUserCancelled)
	}

	policy := model.AccessPolicy{RoleCount: roles, Administrator: admin.Username}
	a.logger.Info(ctx, "access control saved", "op", op, "admin", admin.Username, "roles", roles)
	if err := a.say(ctx, "Access control configuration saved."); err != nil {
		return policy, fmt.Errorf("%s: %w", op, err)
	}
	return policy, nil
}
