package view

import (
	"image"

	"github.com/n1tr0xs/fire-danger-map/ui/images"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// MapPreview shows the map being painted, scaled to a fixed height with the
// aspect ratio preserved.
type MapPreview interface {
	Update(img image.Image)
	Reset()
}

type mapPreview struct {
	label     *LabelWidget
	height    int
	blank     image.Image // scaled base map shown before the first run
	prevPhoto *Img        // disposed before each replacement
}

// NewMapPreview grids the preview at (row, col) spanning rowspan rows and
// shows the base map blank until the first frame arrives.
func NewMapPreview(row, col, rowspan, height int, blank image.Image) MapPreview {
	if height < 1 {
		height = 1
	}
	v := &mapPreview{height: height}
	if blank != nil {
		v.blank = images.ScaleToHeight(blank, height)
	} else {
		v.blank = image.NewRGBA(image.Rect(0, 0, height, height))
	}
	v.prevPhoto = NewPhoto(Data(images.EncodePNG(v.blank)))
	v.label = Label(Image(v.prevPhoto), Borderwidth(1), Relief("sunken"))
	Grid(v.label, Row(row), Column(col), Rowspan(rowspan), Sticky("n"), Padx("0.4m"), Pady("0.4m"))
	return v
}

func (v *mapPreview) Update(img image.Image) {
	if v.label == nil || img == nil {
		return
	}
	v.show(images.ScaleToHeight(img, v.height))
}

// Reset puts the base map back.
func (v *mapPreview) Reset() {
	if v.label == nil {
		return
	}
	v.show(v.blank)
}

func (v *mapPreview) show(img image.Image) {
	pngBytes := images.EncodePNG(img)
	if v.prevPhoto != nil {
		v.prevPhoto.Delete()
	}
	v.prevPhoto = NewPhoto(Data(pngBytes))
	v.label.Configure(Image(v.prevPhoto))
}
