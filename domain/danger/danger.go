package danger

import "image/color"

// Class is the ordinal fire danger class derived from a station's index.
type Class int

const (
	ClassI Class = iota + 1
	ClassII
	ClassIII
	ClassIV
	ClassV
)

func (c Class) String() string {
	switch c {
	case ClassI:
		return "I"
	case ClassII:
		return "II"
	case ClassIII:
		return "III"
	case ClassIV:
		return "IV"
	case ClassV:
		return "V"
	default:
		return "unknown"
	}
}

// Severity returns 1 for ClassI up to 5 for ClassV.
func (c Class) Severity() int { return int(c) }

// Level is one row of the threshold table. Values strictly above Above
// (and not claimed by a higher level) fall into this level.
type Level struct {
	Above int
	Class Class
	Color color.RGBA
}

// levels is ordered from most to least severe. The last entry catches
// everything at or below 300.
var levels = []Level{
	{Above: 10000, Class: ClassV, Color: color.RGBA{255, 0, 0, 255}},
	{Above: 4000, Class: ClassIV, Color: color.RGBA{192, 0, 0, 255}},
	{Above: 1000, Class: ClassIII, Color: color.RGBA{255, 255, 0, 255}},
	{Above: 300, Class: ClassII, Color: color.RGBA{0, 112, 192, 255}},
	{Above: -1 << 62, Class: ClassI, Color: color.RGBA{146, 208, 80, 255}},
}

// Classify maps a danger value to its fill color and class.
func Classify(value int) (color.RGBA, Class) {
	for _, l := range levels {
		if value > l.Above {
			return l.Color, l.Class
		}
	}
	last := levels[len(levels)-1]
	return last.Color, last.Class
}

// Levels returns a copy of the threshold table, most severe first.
func Levels() []Level {
	out := make([]Level, len(levels))
	copy(out, levels)
	return out
}

// Range renders the inclusive value range of a level for legends, e.g. "301-1000".
func (l Level) Range() string {
	switch l.Class {
	case ClassV:
		return ">10000"
	case ClassIV:
		return "4001-10000"
	case ClassIII:
		return "1001-4000"
	case ClassII:
		return "301-1000"
	default:
		return "0-300"
	}
}
