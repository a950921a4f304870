package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"strconv"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"golang.org/x/image/font"

	"github.com/n1tr0xs/fire-danger-map/domain/danger"
	"github.com/n1tr0xs/fire-danger-map/domain/registry"
)

var (
	// ErrMissingCoordinate means a registry region has no entry in the coordinate table.
	ErrMissingCoordinate = errors.New("region has no coordinate")
	// ErrOutOfBounds means a region coordinate lies outside the template raster.
	ErrOutOfBounds = errors.New("region coordinate outside map")
	// ErrNoTemplate means the renderer was built without a base raster.
	ErrNoTemplate = errors.New("no template image")
)

const labelLineSpacing = 1.0

// Frame is a progress snapshot taken right after one region was painted.
// Image is a private copy; receivers may keep it.
type Frame struct {
	Seq     int // 1-based index of the painted region
	Total   int
	Station string
	Region  string
	Value   int
	Class   danger.Class
	Image   *image.NRGBA
}

// Label returns the three label lines drawn for the frame's region.
func (f Frame) Label() string { return Label(f.Region, f.Value, f.Class) }

// Label formats the region annotation: name, raw value and class, one per line.
func Label(region string, value int, class danger.Class) string {
	return strings.Join([]string{region, strconv.Itoa(value), class.String()}, "\n")
}

// Options configures a Renderer.
type Options struct {
	Registry    *registry.Registry
	Coordinates registry.Coordinates
	Template    image.Image
	Face        font.Face   // nil uses gg's built-in face
	TextColor   color.Color // nil means black
	Logger      *slog.Logger
}

// Renderer paints the fire danger map. It holds only immutable inputs, so a
// single Renderer can serve consecutive runs.
type Renderer struct {
	reg       *registry.Registry
	coords    registry.Coordinates
	template  image.Image
	face      font.Face
	textColor color.Color
	logger    *slog.Logger
}

// New constructs a Renderer from opts.
func New(opts Options) *Renderer {
	tc := opts.TextColor
	if tc == nil {
		tc = color.Black
	}
	reg := opts.Registry
	if reg == nil {
		reg = registry.Empty()
	}
	return &Renderer{
		reg:       reg,
		coords:    opts.Coordinates,
		template:  opts.Template,
		face:      opts.Face,
		textColor: tc,
		logger:    opts.Logger,
	}
}

// Render paints every (station, region) pair in registry order using the
// station's value (missing stations count as 0) and calls emit after each
// region. It returns the finished raster.
func (r *Renderer) Render(values map[string]int, emit func(Frame)) (*image.RGBA, error) {
	if r.template == nil {
		return nil, ErrNoTemplate
	}
	dc := gg.NewContextForImage(r.template)
	canvas, ok := dc.Image().(*image.RGBA)
	if !ok {
		return nil, fmt.Errorf("render: unexpected canvas type %T", dc.Image())
	}
	if r.face != nil {
		dc.SetFontFace(r.face)
	}
	dc.SetColor(r.textColor)

	pairs := r.reg.Pairs()
	for i, p := range pairs {
		pt, ok := r.coords.Lookup(p.Region)
		if !ok {
			return nil, fmt.Errorf("station %q region %q: %w", p.Station, p.Region, ErrMissingCoordinate)
		}
		if !pt.In(canvas.Bounds()) {
			return nil, fmt.Errorf("region %q at %v: %w", p.Region, pt, ErrOutOfBounds)
		}
		value := values[p.Station]
		fill, class := danger.Classify(value)
		n := FloodFill(canvas, pt, fill)
		text := Label(p.Region, value, class)
		drawLabel(dc, text, float64(pt.X), float64(pt.Y))
		if r.logger != nil {
			r.logger.Debug("region painted", "station", p.Station, "region", p.Region, "value", value, "class", class.String(), "pixels", n)
		}
		if emit != nil {
			emit(Frame{
				Seq:     i + 1,
				Total:   len(pairs),
				Station: p.Station,
				Region:  p.Region,
				Value:   value,
				Class:   class,
				Image:   imaging.Clone(canvas),
			})
		}
	}
	return canvas, nil
}

// drawLabel centers a multi-line block on (x, y) with each line centered.
func drawLabel(dc *gg.Context, text string, x, y float64) {
	w, _ := dc.MeasureMultilineString(text, labelLineSpacing)
	dc.DrawStringWrapped(text, x, y, 0.5, 0.5, w+1, labelLineSpacing, gg.AlignCenter)
}
