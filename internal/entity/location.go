package entity

// Location is stored as a GeoJSON Point so the 2dsphere index on
// lastSeenLocation can serve $nearSphere queries. Coordinates are
// [longitude, latitude]; everything outside this package speaks named
// latitude/longitude scalars.
type Location struct {
	Type        string    `bson:"type"`
	Coordinates []float64 `bson:"coordinates"`
	Address     string    `bson:"address,omitempty"`
	City        string    `bson:"city,omitempty"`
	State       string    `bson:"state,omitempty"`
	Country     string    `bson:"country,omitempty"`
	PostalCode  string    `bson:"postalCode,omitempty"`
}

func NewLocation(latitude, longitude float64) Location {
	return Location{
		Type:        "Point",
		Coordinates: []float64{longitude, latitude},
	}
}

func (l Location) Latitude() float64 {
	if len(l.Coordinates) != 2 {
		return 0
	}
	return l.Coordinates[1]
}

func (l Location) Longitude() float64 {
	if len(l.Coordinates) != 2 {
		return 0
	}
	return l.Coordinates[0]
}
