package geojson

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/ioutil"

	orbjson "github.com/paulmach/orb/geojson"

	"github.com/bitmark-inc/autonomy-areas/schema"
)

var null = []byte("null")

// ReadError - the source file could not be read
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("read geojson file %s: %s", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// ParseError - the source file is not valid JSON
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse geojson file %s: %s", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

type Feature struct {
	Type       string                 `json:"type"`
	Properties map[string]interface{} `json:"properties"`
	Geometry   json.RawMessage        `json:"geometry"`
}

type FeatureCollection struct {
	Type     string    `json:"type"`
	Name     string    `json:"name"`
	Features []Feature `json:"features"`
}

// Load - read a whole file and parse it as a feature collection
func Load(path string) (*FeatureCollection, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}

	var fc FeatureCollection
	if err := json.Unmarshal(data, &fc); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	return &fc, nil
}

// Name - string value of the given property
func (f Feature) Name(property string) (string, error) {
	name, ok := f.Properties[property].(string)
	if !ok {
		return "", fmt.Errorf("invalid %s value, %+v", property, f.Properties[property])
	}
	return name, nil
}

// Shape - the geometry in its stored form, coordinates kept as parsed,
// nil for a feature without geometry
func (f Feature) Shape() (*schema.Geometry, error) {
	if f.hasNoGeometry() {
		return nil, nil
	}

	var g schema.Geometry
	if err := json.Unmarshal(f.Geometry, &g); err != nil {
		return nil, err
	}
	return &g, nil
}

// Bound - bounding box of the geometry as [minLon, minLat, maxLon, maxLat],
// nil for a feature without geometry
func (f Feature) Bound() ([]float64, error) {
	if f.hasNoGeometry() {
		return nil, nil
	}

	g, err := orbjson.UnmarshalGeometry(f.Geometry)
	if err != nil {
		return nil, err
	}

	b := g.Geometry().Bound()
	return []float64{b.Min.Lon(), b.Min.Lat(), b.Max.Lon(), b.Max.Lat()}, nil
}

func (f Feature) hasNoGeometry() bool {
	return len(f.Geometry) == 0 || bytes.Equal(bytes.TrimSpace(f.Geometry), null)
}
