package schema

// GeoPoint is a latitude/longitude pair in degrees.
type GeoPoint struct {
	Lat float64 `json:"lat" validate:"latitude"`
	Lon float64 `json:"lon" validate:"longitude"`
}

// Person is a typed, optionally located individual.
// Typology names the assigned typology and Types[Typology] holds the assigned type.
type Person struct {
	ID            string                  `json:"id"`
	Name          string                  `json:"name"`
	Typology      TypologyName            `json:"typology"`
	Types         map[TypologyName]string `json:"types"`
	Location      *GeoPoint               `json:"location,omitempty" validate:"omitempty"`
	MaxDistanceKm float64                 `json:"max_distance_km" validate:"gte=0"`
}

// AssignedType returns the type of the person under the given typology.
func (p Person) AssignedType(typology TypologyName) string {
	if p.Types == nil {
		return ""
	}
	return p.Types[typology]
}
