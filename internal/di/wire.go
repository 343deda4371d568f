//go:build wireinject

package di

import (
	"io"

	"github.com/google/wire"

	"icpc-contest/internal/adapter/console"
	"icpc-contest/internal/adapter/logging"
	"icpc-contest/internal/app"
	"icpc-contest/internal/config"
	"icpc-contest/internal/domain/ports"
	"icpc-contest/internal/usecase"
)

// InitializeApp wires the application components together over the given
// input and output streams.
func InitializeApp(in io.Reader, out io.Writer) (*app.App, error) {
	wire.Build(
		config.Load,
		provideSlogLogger,
		logging.New,
		wire.Bind(new(ports.Logger), new(*logging.SLogger)),
		console.New,
		wire.Bind(new(ports.Prompter), new(*console.Console)),
		wire.Bind(new(ports.Notifier), new(*console.Console)),
		provideCatalog,
		provideSubmissionConfig,
		usecase.NewTeamRegistration,
		usecase.NewProblemSubmission,
		usecase.NewSolutionSubmission,
		usecase.NewAccessControl,
		app.New,
	)
	return nil, nil
}
