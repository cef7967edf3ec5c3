package core

import (
	"fmt"
	"math"

	"github.com/huangsam/typomatch/internal/validation"
	"github.com/huangsam/typomatch/schema"
)

// Haversine returns the great-circle distance between two points in kilometers.
func Haversine(a, b schema.GeoPoint) float64 {
	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLon := (b.Lon - a.Lon) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	h = math.Min(h, 1)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	return schema.EarthRadiusKm * c
}

// DistanceIfCompatible returns the distance between two people when their assigned
// types under person a's typology score above the comfort threshold and they live
// within a's maximum distance. Checks run in this order: assigned types, comfort
// score, coordinates, distance.
func (e *Engine) DistanceIfCompatible(a, b schema.Person) (float64, error) {
	name := a.Typology
	typeA, typeB := a.AssignedType(name), b.AssignedType(name)
	if name == "" || typeA == "" || typeB == "" {
		return 0, fmt.Errorf("both people need a %q type: %w", name, schema.ErrMissingType)
	}

	rel, err := e.Calculate(typeA, typeB, name)
	if err != nil {
		return 0, err
	}
	if rel.Score <= e.threshold {
		return 0, fmt.Errorf("comfort score %d does not exceed %d: %w", rel.Score, e.threshold, schema.ErrIncompatibleScore)
	}

	if a.Location == nil || b.Location == nil {
		return 0, fmt.Errorf("both people need coordinates: %w", schema.ErrMissingCoordinates)
	}
	for _, p := range []schema.Person{a, b} {
		if err := validation.ValidateStruct(p); err != nil {
			return 0, err
		}
	}

	maxKm := e.MaxDistanceFor(a)
	distance := Haversine(*a.Location, *b.Location)
	if distance > maxKm {
		return 0, fmt.Errorf("distance %.2f km exceeds maximum %.2f km: %w", distance, maxKm, schema.ErrTooFar)
	}

	e.logger.Debug().
		Str("person_a", a.ID).
		Str("person_b", b.ID).
		Float64("distance_km", distance).
		Msg("compatible pair within range")
	return distance, nil
}

// MaxDistanceFor returns the person's own maximum distance, or the engine default.
func (e *Engine) MaxDistanceFor(p schema.Person) float64 {
	if p.MaxDistanceKm > 0 {
		return p.MaxDistanceKm
	}
	return e.maxDistanceKm
}
