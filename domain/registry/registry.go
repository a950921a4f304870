package registry

import (
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"io"
	"math"
	"os"
)

// ErrNotFound is returned (wrapped) when a lookup table file does not exist.
var ErrNotFound = errors.New("lookup table not found")

// Station is a monitoring point and the regions it covers, in declared order.
type Station struct {
	Name    string
	Regions []string
}

// Pair is one (station, region) entry of the flattened registry.
type Pair struct {
	Station string
	Region  string
}

// Registry maps stations to regions. It keeps the declaration order of the
// source file and is read-only after construction.
type Registry struct {
	stations []Station
	index    map[string]int
}

// New builds a registry from stations. Later duplicates replace the regions
// of the first occurrence without moving it.
func New(stations []Station) *Registry {
	r := &Registry{index: make(map[string]int, len(stations))}
	for _, s := range stations {
		regions := append([]string(nil), s.Regions...)
		if i, ok := r.index[s.Name]; ok {
			r.stations[i].Regions = regions
			continue
		}
		r.index[s.Name] = len(r.stations)
		r.stations = append(r.stations, Station{Name: s.Name, Regions: regions})
	}
	return r
}

// Empty returns a registry with no stations.
func Empty() *Registry { return New(nil) }

// Len reports the number of stations.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.stations)
}

// Stations returns a copy of the stations in declared order.
func (r *Registry) Stations() []Station {
	if r == nil {
		return nil
	}
	out := make([]Station, len(r.stations))
	for i, s := range r.stations {
		out[i] = Station{Name: s.Name, Regions: append([]string(nil), s.Regions...)}
	}
	return out
}

// Names returns station names in declared order.
func (r *Registry) Names() []string {
	if r == nil {
		return nil
	}
	out := make([]string, len(r.stations))
	for i, s := range r.stations {
		out[i] = s.Name
	}
	return out
}

// Regions returns the regions of station.
func (r *Registry) Regions(station string) ([]string, bool) {
	if r == nil {
		return nil, false
	}
	i, ok := r.index[station]
	if !ok {
		return nil, false
	}
	return append([]string(nil), r.stations[i].Regions...), true
}

// Pairs flattens the registry into (station, region) pairs in paint order.
func (r *Registry) Pairs() []Pair {
	if r == nil {
		return nil
	}
	var out []Pair
	for _, s := range r.stations {
		for _, region := range s.Regions {
			out = append(out, Pair{Station: s.Name, Region: region})
		}
	}
	return out
}

// Parse decodes a JSON object of station name to list of region names.
// encoding/json maps lose key order, so the object is walked token by token.
func Parse(rd io.Reader) (*Registry, error) {
	dec := json.NewDecoder(rd)
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("station regions: %w", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("station regions: expected object, got %v", tok)
	}
	var stations []Station
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("station regions: %w", err)
		}
		name, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("station regions: unexpected key %v", keyTok)
		}
		var regions []string
		if err := dec.Decode(&regions); err != nil {
			return nil, fmt.Errorf("station regions: station %q: %w", name, err)
		}
		stations = append(stations, Station{Name: name, Regions: regions})
	}
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("station regions: %w", err)
	}
	return New(stations), nil
}

// Load reads the registry from path. It always returns a usable registry;
// on error the registry is empty and err describes why.
func Load(path string) (*Registry, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Empty(), fmt.Errorf("%s: %w", path, ErrNotFound)
		}
		return Empty(), err
	}
	defer f.Close()
	r, err := Parse(f)
	if err != nil {
		return Empty(), err
	}
	return r, nil
}

// Coordinates maps region names to a representative interior pixel.
type Coordinates struct {
	points map[string]image.Point
}

// NewCoordinates copies points into an immutable table.
func NewCoordinates(points map[string]image.Point) Coordinates {
	m := make(map[string]image.Point, len(points))
	for k, v := range points {
		m[k] = v
	}
	return Coordinates{points: m}
}

// Lookup returns the coordinate of region.
func (c Coordinates) Lookup(region string) (image.Point, bool) {
	p, ok := c.points[region]
	return p, ok
}

// Len reports the number of regions with a coordinate.
func (c Coordinates) Len() int { return len(c.points) }

// ParseCoordinates decodes a JSON object of region name to [x, y]. Numbers
// with a fractional part are rounded to the nearest pixel. Entries that are
// not a pair of numbers are skipped; the rest of the table is still returned
// together with an error naming every skipped region.
func ParseCoordinates(rd io.Reader) (Coordinates, error) {
	var raw map[string]json.RawMessage
	if err := json.NewDecoder(rd).Decode(&raw); err != nil {
		return NewCoordinates(nil), fmt.Errorf("region coords: %w", err)
	}
	points := make(map[string]image.Point, len(raw))
	var errs []error
	for name, msg := range raw {
		var xy []float64
		if err := json.Unmarshal(msg, &xy); err != nil || len(xy) != 2 {
			if err == nil {
				err = fmt.Errorf("want 2 numbers, got %d", len(xy))
			}
			errs = append(errs, fmt.Errorf("region %q: %w", name, err))
			continue
		}
		points[name] = image.Pt(int(math.Round(xy[0])), int(math.Round(xy[1])))
	}
	c := Coordinates{points: points}
	if len(errs) > 0 {
		return c, fmt.Errorf("region coords: %w", errors.Join(errs...))
	}
	return c, nil
}

// LoadCoordinates reads the coordinate table from path. Like Load it always
// returns a usable table: empty when the file is missing or malformed, partial
// when only some entries are bad.
func LoadCoordinates(path string) (Coordinates, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return NewCoordinates(nil), fmt.Errorf("%s: %w", path, ErrNotFound)
		}
		return NewCoordinates(nil), err
	}
	defer f.Close()
	return ParseCoordinates(f)
}
