//go:build integration || unit || test

// Package commanddoubles provides test doubles for the command interfaces.
package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/chartops/chartsync/internal/domain/commands"
	"github.com/chartops/chartsync/internal/domain/entities"
)

// StubGenerateCommand implements commands.Generate with canned results.
type StubGenerateCommand struct {
	Uploads []entities.ChartUpload
	Err     error

	// OnExecute, when set, runs at the start of every Execute call.
	OnExecute func()

	// spy: call count and last options received
	Calls    int
	LastOpts commands.Options
}

func (s *StubGenerateCommand) Execute(
	_ context.Context,
	_ *entities.Settings,
	opts commands.Options,
) ([]entities.ChartUpload, error) {
	if s.OnExecute != nil {
		s.OnExecute()
	}
	s.Calls++
	s.LastOpts = opts
	return s.Uploads, s.Err
}

// StubRunCommand implements commands.Run with canned results.
type StubRunCommand struct {
	Err error

	// spy: call count and last options received
	Calls    int
	LastOpts commands.Options
}

func (s *StubRunCommand) Execute(
	_ context.Context,
	_ *entities.Settings,
	opts commands.Options,
) error {
	s.Calls++
	s.LastOpts = opts
	return s.Err
}

// StubPublishCommand implements commands.Publish with canned results.
type StubPublishCommand struct {
	Committed bool
	Err       error

	// OnExecute, when set, runs at the start of every Execute call.
	OnExecute func()

	// spy: call count and last options received
	Calls    int
	LastOpts commands.Options
}

func (s *StubPublishCommand) Execute(
	_ context.Context,
	_ *entities.Settings,
	opts commands.Options,
) (bool, error) {
	if s.OnExecute != nil {
		s.OnExecute()
	}
	s.Calls++
	s.LastOpts = opts
	return s.Committed, s.Err
}
