package repositories

import (
	"context"

	"github.com/chartops/chartsync/internal/domain/entities"
)

// PublisherRepository stores the relay file in the publish repository.
type PublisherRepository interface {
	// Publish clones the repository, writes the relay file, and pushes a
	// commit when the content differs from what is already committed.
	// It returns true when a new commit was created; an unchanged file is
	// not an error.
	Publish(ctx context.Context, cfg entities.PublishConfig, content []byte) (bool, error)
}
