package domain_models

// Coordinate is a latitude/longitude pair in decimal degrees.
type Coordinate struct {
	Latitude  float64
	Longitude float64
}

// CityLocation is a geocoded city center.
type CityLocation struct {
	Coordinate
	DisplayName string
}

// Place is a point of interest produced by the POI source and treated as
// immutable input by the planner. Optional fields are nil when the source
// did not report them; a nil Rating is "unrated", not zero stars.
type Place struct {
	Name          string
	Category      string
	Latitude      float64
	Longitude     float64
	EstimatedCost float64
	Hours         *string
	Description   *string
	Rating        *float64
	TimeNeeded    int
	Address       *string
}

func (p Place) Coordinates() Coordinate {
	return Coordinate{Latitude: p.Latitude, Longitude: p.Longitude}
}
