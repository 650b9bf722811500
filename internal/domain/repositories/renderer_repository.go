package repositories

import "github.com/chartops/chartsync/internal/domain/entities"

// RendererRepository renders chart images.
type RendererRepository interface {
	// Render writes the chart as a PNG image at the given path.
	Render(chart entities.Chart, outputPath string) error
}
