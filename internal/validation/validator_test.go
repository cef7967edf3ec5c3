package validation

import (
	"errors"
	"testing"

	"github.com/huangsam/typomatch/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestValidatePerson covers coordinates and distance rules.
func TestValidatePerson(t *testing.T) {
	tests := []struct {
		name    string
		person  schema.Person
		wantErr string
	}{
		{
			name:   "no location",
			person: schema.Person{Typology: schema.Temporistics},
		},
		{
			name:   "valid location",
			person: schema.Person{Location: &schema.GeoPoint{Lat: 52.52, Lon: 13.40}, MaxDistanceKm: 10},
		},
		{
			name:    "latitude out of range",
			person:  schema.Person{Location: &schema.GeoPoint{Lat: 91, Lon: 0}},
			wantErr: "Person.Location.Lat must be a valid latitude (-90 to 90)",
		},
		{
			name:    "longitude out of range",
			person:  schema.Person{Location: &schema.GeoPoint{Lat: 0, Lon: -181}},
			wantErr: "Person.Location.Lon must be a valid longitude (-180 to 180)",
		},
		{
			name:    "negative distance",
			person:  schema.Person{MaxDistanceKm: -1},
			wantErr: "Person.MaxDistanceKm must be greater than or equal to 0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(tt.person)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, schema.ErrInvalidInput))
			assert.Equal(t, tt.wantErr, err.Error())
		})
	}
}

// TestCustomTags checks the backend and outputmode validators.
func TestCustomTags(t *testing.T) {
	type settings struct {
		Backend string `validate:"backend"`
		Output  string `validate:"outputmode"`
	}

	assert.NoError(t, ValidateStruct(settings{Backend: "sqlite", Output: "json"}))

	err := ValidateStruct(settings{Backend: "redis", Output: "xml"})
	var verr *Error
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr.Fields, 2)
	assert.Equal(t, "backend", verr.Fields[0].Tag)
	assert.Equal(t, "outputmode", verr.Fields[1].Tag)
}

// TestGetValidatorSingleton returns the same instance.
func TestGetValidatorSingleton(t *testing.T) {
	assert.Same(t, GetValidator(), GetValidator())
}
