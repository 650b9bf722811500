package repositories

import "context"

// ImageHostRepository uploads chart images to a public image host.
type ImageHostRepository interface {
	// Upload sends the image at the given path and returns its public URL.
	Upload(ctx context.Context, imagePath string) (string, error)
}

// ImageHostFactory builds an ImageHostRepository for a given credential.
// The credential comes from the settings file, which is only loaded at
// controller time, so construction is deferred behind a factory.
type ImageHostFactory func(clientID string) ImageHostRepository
