//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chartops/chartsync/internal/domain/commands"
	"github.com/chartops/chartsync/internal/domain/entities"
	"github.com/chartops/chartsync/test/domain/commanddoubles"
	"github.com/chartops/chartsync/test/domain/entitybuilders"
)

func TestRunCommandExecute(t *testing.T) {
	t.Parallel()

	t.Run("should run generation before publication", func(t *testing.T) {
		t.Parallel()

		// given
		var order []string
		generate := &commanddoubles.StubGenerateCommand{
			Uploads:   []entities.ChartUpload{{Symbol: "ETH", URL: "https://i.example.com/eth.png"}},
			OnExecute: func() { order = append(order, "generate") },
		}
		publish := &commanddoubles.StubPublishCommand{
			Committed: true,
			OnExecute: func() { order = append(order, "publish") },
		}
		cmd := commands.NewRunCommand(generate, publish)
		settings := entitybuilders.NewSettingsBuilder().Build()

		// when
		err := cmd.Execute(context.Background(), settings, commands.Options{})

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{"generate", "publish"}, order)
	})

	t.Run("should abort publication when generation fails", func(t *testing.T) {
		t.Parallel()

		// given
		generate := &commanddoubles.StubGenerateCommand{Err: errors.New("api down")}
		publish := &commanddoubles.StubPublishCommand{}
		cmd := commands.NewRunCommand(generate, publish)
		settings := entitybuilders.NewSettingsBuilder().Build()

		// when
		err := cmd.Execute(context.Background(), settings, commands.Options{})

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "generation stage failed")
		assert.Zero(t, publish.Calls)
	})

	t.Run("should surface a publication failure", func(t *testing.T) {
		t.Parallel()

		// given
		generate := &commanddoubles.StubGenerateCommand{}
		publish := &commanddoubles.StubPublishCommand{Err: errors.New("push rejected")}
		cmd := commands.NewRunCommand(generate, publish)
		settings := entitybuilders.NewSettingsBuilder().Build()

		// when
		err := cmd.Execute(context.Background(), settings, commands.Options{})

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "publication stage failed")
	})

	t.Run("should forward the same options to both stages", func(t *testing.T) {
		t.Parallel()

		// given
		generate := &commanddoubles.StubGenerateCommand{}
		publish := &commanddoubles.StubPublishCommand{}
		cmd := commands.NewRunCommand(generate, publish)
		settings := entitybuilders.NewSettingsBuilder().Build()
		opts := commands.Options{DryRun: true}

		// when
		err := cmd.Execute(context.Background(), settings, opts)

		// then
		require.NoError(t, err)
		assert.Equal(t, opts, generate.LastOpts)
		assert.Equal(t, opts, publish.LastOpts)
	})
}
