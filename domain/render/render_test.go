package render

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/draw"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/n1tr0xs/fire-danger-map/domain/danger"
	"github.com/n1tr0xs/fire-danger-map/domain/registry"
)

var (
	white = color.RGBA{255, 255, 255, 255}
	black = color.RGBA{0, 0, 0, 255}
)

// boxedTemplate returns a white w x h raster with one black-bordered box per rect.
func boxedTemplate(w, h int, boxes ...image.Rectangle) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: white}, image.Point{}, draw.Src)
	for _, r := range boxes {
		for x := r.Min.X; x < r.Max.X; x++ {
			img.SetRGBA(x, r.Min.Y, black)
			img.SetRGBA(x, r.Max.Y-1, black)
		}
		for y := r.Min.Y; y < r.Max.Y; y++ {
			img.SetRGBA(r.Min.X, y, black)
			img.SetRGBA(r.Max.X-1, y, black)
		}
	}
	return img
}

func TestFloodFill_StopsAtBorder(t *testing.T) {
	img := boxedTemplate(40, 40, image.Rect(10, 10, 30, 30))
	fill := color.RGBA{1, 2, 3, 255}
	n := FloodFill(img, image.Pt(20, 20), fill)
	assert.Equal(t, 18*18, n)
	assert.Equal(t, fill, img.RGBAAt(11, 11))
	assert.Equal(t, fill, img.RGBAAt(28, 28))
	assert.Equal(t, black, img.RGBAAt(10, 10))
	assert.Equal(t, white, img.RGBAAt(5, 5))
	assert.Equal(t, white, img.RGBAAt(35, 35))
}

func TestFloodFill_NoopCases(t *testing.T) {
	img := boxedTemplate(10, 10)
	assert.Equal(t, 0, FloodFill(img, image.Pt(-1, 0), black))
	assert.Equal(t, 0, FloodFill(img, image.Pt(3, 3), white))
	assert.Equal(t, 0, FloodFill(nil, image.Pt(0, 0), black))
}

func TestFloodFill_ConcaveArea(t *testing.T) {
	// U shape: the fill has to flow down one arm and up the other.
	img := boxedTemplate(30, 30, image.Rect(0, 0, 30, 30))
	for y := 0; y < 20; y++ {
		img.SetRGBA(15, y, black)
	}
	fill := color.RGBA{9, 9, 9, 255}
	FloodFill(img, image.Pt(5, 5), fill)
	assert.Equal(t, fill, img.RGBAAt(25, 5))
	assert.Equal(t, fill, img.RGBAAt(15, 25))
}

func newTestRenderer(reg *registry.Registry, coords map[string]image.Point, tmpl image.Image) *Renderer {
	return New(Options{
		Registry:    reg,
		Coordinates: registry.NewCoordinates(coords),
		Template:    tmpl,
	})
}

func TestRender_SingleRegionScenario(t *testing.T) {
	tmpl := boxedTemplate(100, 100, image.Rect(10, 10, 90, 90))
	reg := registry.New([]registry.Station{{Name: "StationA", Regions: []string{"Region1"}}})
	r := newTestRenderer(reg, map[string]image.Point{"Region1": image.Pt(50, 50)}, tmpl)

	var frames []Frame
	out, err := r.Render(map[string]int{"StationA": 500}, func(f Frame) { frames = append(frames, f) })
	require.NoError(t, err)
	require.Len(t, frames, 1)

	f := frames[0]
	assert.Equal(t, "Region1", f.Region)
	assert.Equal(t, 500, f.Value)
	assert.Equal(t, danger.ClassII, f.Class)
	assert.Equal(t, "Region1\n500\nII", f.Label())
	assert.Equal(t, 1, f.Seq)
	assert.Equal(t, 1, f.Total)

	blue := color.RGBA{0, 112, 192, 255}
	assert.Equal(t, blue, out.RGBAAt(12, 12))
	assert.Equal(t, blue, out.RGBAAt(87, 87))
	assert.Equal(t, white, out.RGBAAt(5, 5))
	// Template must stay untouched.
	assert.Equal(t, white, tmpl.RGBAAt(12, 12))

	// Label pixels: something near the center is no longer the fill color.
	dark := false
	for y := 35; y < 65 && !dark; y++ {
		for x := 30; x < 70; x++ {
			c := out.RGBAAt(x, y)
			if c.R < 60 && c.G < 60 && c.B < 60 {
				dark = true
				break
			}
		}
	}
	assert.True(t, dark, "expected label text near the seed")
}

func TestRender_Deterministic(t *testing.T) {
	tmpl := boxedTemplate(120, 60, image.Rect(0, 0, 60, 60), image.Rect(59, 0, 120, 60))
	reg := registry.New([]registry.Station{
		{Name: "S1", Regions: []string{"Left"}},
		{Name: "S2", Regions: []string{"Right"}},
	})
	coords := map[string]image.Point{"Left": image.Pt(30, 30), "Right": image.Pt(90, 30)}
	values := map[string]int{"S1": 12000, "S2": 42}

	a, err := newTestRenderer(reg, coords, tmpl).Render(values, nil)
	require.NoError(t, err)
	b, err := newTestRenderer(reg, coords, tmpl).Render(values, nil)
	require.NoError(t, err)
	assert.True(t, bytes.Equal(a.Pix, b.Pix))
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, a.RGBAAt(3, 3))
	assert.Equal(t, color.RGBA{146, 208, 80, 255}, a.RGBAAt(117, 3))
}

func TestRender_ProgressOrderFollowsRegistry(t *testing.T) {
	tmpl := boxedTemplate(200, 50)
	reg := registry.New([]registry.Station{
		{Name: "B", Regions: []string{"b1", "b2"}},
		{Name: "A", Regions: []string{"a1"}},
		{Name: "C", Regions: []string{"c1", "c2"}},
	})
	coords := map[string]image.Point{}
	for i, p := range reg.Pairs() {
		coords[p.Region] = image.Pt(10+i*40, 25)
	}
	var got []registry.Pair
	var seqs []int
	_, err := newTestRenderer(reg, coords, tmpl).Render(nil, func(f Frame) {
		got = append(got, registry.Pair{Station: f.Station, Region: f.Region})
		seqs = append(seqs, f.Seq)
		assert.Equal(t, 5, f.Total)
	})
	require.NoError(t, err)
	assert.Equal(t, reg.Pairs(), got)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, seqs)
}

func TestRender_FramesAreSnapshots(t *testing.T) {
	tmpl := boxedTemplate(100, 50, image.Rect(0, 0, 50, 50), image.Rect(49, 0, 100, 50))
	reg := registry.New([]registry.Station{{Name: "S", Regions: []string{"L", "R"}}})
	coords := map[string]image.Point{"L": image.Pt(25, 25), "R": image.Pt(75, 25)}
	var frames []Frame
	_, err := newTestRenderer(reg, coords, tmpl).Render(map[string]int{"S": 5000}, func(f Frame) { frames = append(frames, f) })
	require.NoError(t, err)
	require.Len(t, frames, 2)
	// First snapshot still shows the right box unpainted.
	assert.Equal(t, color.NRGBA{255, 255, 255, 255}, frames[0].Image.NRGBAAt(97, 3))
	assert.Equal(t, color.NRGBA{192, 0, 0, 255}, frames[1].Image.NRGBAAt(97, 3))
}

func TestRender_MissingCoordinate(t *testing.T) {
	reg := registry.New([]registry.Station{{Name: "S", Regions: []string{"ok", "lost"}}})
	r := newTestRenderer(reg, map[string]image.Point{"ok": image.Pt(1, 1)}, boxedTemplate(10, 10))
	emitted := 0
	_, err := r.Render(nil, func(Frame) { emitted++ })
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingCoordinate))
	assert.Contains(t, err.Error(), "lost")
	assert.Equal(t, 1, emitted)
}

func TestRender_OutOfBounds(t *testing.T) {
	reg := registry.New([]registry.Station{{Name: "S", Regions: []string{"far"}}})
	r := newTestRenderer(reg, map[string]image.Point{"far": image.Pt(500, 1)}, boxedTemplate(10, 10))
	_, err := r.Render(nil, nil)
	assert.True(t, errors.Is(err, ErrOutOfBounds))
}

func TestRender_NoTemplate(t *testing.T) {
	_, err := New(Options{}).Render(nil, nil)
	assert.True(t, errors.Is(err, ErrNoTemplate))
}

func TestRender_EmptyRegistryReturnsTemplateCopy(t *testing.T) {
	tmpl := boxedTemplate(8, 8)
	out, err := New(Options{Template: tmpl}).Render(nil, nil)
	require.NoError(t, err)
	assert.True(t, bytes.Equal(tmpl.Pix, out.Pix))
}
