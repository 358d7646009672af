package schema

const (
	AreaCollection = "area"
)

// Geometry - GeoJSON geometry as stored in mongo. Collections keep their
// members under Geometries and have no Coordinates.
type Geometry struct {
	Type        string      `json:"type" bson:"type"`
	Coordinates interface{} `json:"coordinates,omitempty" bson:"coordinates,omitempty"`
	Geometries  []Geometry  `json:"geometries,omitempty" bson:"geometries,omitempty"`
}

// Area - one administrative boundary of a dataset revision
type Area struct {
	Name      string    `bson:"name"`
	Geometry  *Geometry `bson:"geometry,omitempty"`
	BBox      []float64 `bson:"bbox,omitempty"`
	DatasetID string    `bson:"datasetId"`
	Priority  float64   `bson:"priority,omitempty"`
	Version   string    `bson:"version"`
	Type      string    `bson:"type"`
}
