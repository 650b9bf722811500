package repositories

import (
	"go.uber.org/dig"

	domainRepos "github.com/chartops/chartsync/internal/domain/repositories"
	"github.com/chartops/chartsync/internal/infrastructure/repositories/coingecko"
	"github.com/chartops/chartsync/internal/infrastructure/repositories/gitrelay"
	"github.com/chartops/chartsync/internal/infrastructure/repositories/imgur"
	"github.com/chartops/chartsync/internal/infrastructure/repositories/plotting"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	if err := container.Provide(coingecko.NewMarketRepository); err != nil {
		return err
	}
	if err := container.Provide(plotting.NewRendererRepository); err != nil {
		return err
	}
	if err := container.Provide(gitrelay.NewPublisherRepository); err != nil {
		return err
	}

	// The image host needs a credential only known once settings are loaded,
	// so it is registered as a factory.
	if err := container.Provide(func() domainRepos.ImageHostFactory {
		return imgur.NewImageHostRepository
	}); err != nil {
		return err
	}

	return nil
}
