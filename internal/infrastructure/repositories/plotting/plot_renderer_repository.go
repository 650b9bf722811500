package plotting

import (
	"errors"
	"fmt"
	"image/color"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/chartops/chartsync/internal/domain/entities"
	"github.com/chartops/chartsync/internal/domain/repositories"
)

// emaPalette colors the EMA lines per span index. The first two match the
// historical blue/red chart style.
var emaPalette = []color.Color{
	color.RGBA{B: 0xff, A: 0xff},
	color.RGBA{R: 0xff, A: 0xff},
	color.RGBA{G: 0xa0, A: 0xff},
	color.RGBA{R: 0xff, G: 0xa5, A: 0xff},
}

var errEmptySeries = errors.New("cannot render a chart without price data")

// defaultDPI is used when the chart carries no resolution of its own.
const defaultDPI = 300

// PlotRendererRepository implements repositories.RendererRepository using
// gonum/plot: a time-axis line chart with one line per EMA span, a legend,
// and a background grid.
type PlotRendererRepository struct{}

// NewRendererRepository creates a gonum/plot chart renderer.
func NewRendererRepository() repositories.RendererRepository {
	return &PlotRendererRepository{}
}

// Render writes the chart as a PNG image at the given path.
func (r *PlotRendererRepository) Render(chart entities.Chart, outputPath string) error {
	if len(chart.Series) == 0 {
		return errEmptySeries
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s EMA", chart.Symbol)
	p.X.Label.Text = "Date"
	p.Y.Label.Text = "Price (USD)"
	p.X.Tick.Marker = plot.TimeTicks{Format: "2006-01-02"}
	p.Add(plotter.NewGrid())

	for i, span := range chart.EMASpans {
		ema := chart.Series.EMA(span)

		points := make(plotter.XYs, len(ema))
		for j, value := range ema {
			points[j] = plotter.XY{
				X: float64(chart.Series[j].Time.Unix()),
				Y: value,
			}
		}

		line, err := plotter.NewLine(points)
		if err != nil {
			return fmt.Errorf("failed to build EMA %d line: %w", span, err)
		}
		line.Color = emaPalette[i%len(emaPalette)]

		p.Add(line)
		p.Legend.Add(fmt.Sprintf("%s EMA %d", chart.Symbol, span), line)
	}

	width := vg.Length(chart.WidthInches) * vg.Inch
	height := vg.Length(chart.HeightInches) * vg.Inch
	dpi := chart.DPI
	if dpi <= 0 {
		dpi = defaultDPI
	}

	canvas := vgimg.NewWith(vgimg.UseWH(width, height), vgimg.UseDPI(dpi))
	p.Draw(draw.New(canvas))

	file, createErr := os.Create(outputPath)
	if createErr != nil {
		return fmt.Errorf("failed to create chart file %q: %w", outputPath, createErr)
	}
	defer func() { _ = file.Close() }()

	if _, writeErr := (vgimg.PngCanvas{Canvas: canvas}).WriteTo(file); writeErr != nil {
		return fmt.Errorf("failed to save chart to %q: %w", outputPath, writeErr)
	}
	return nil
}
