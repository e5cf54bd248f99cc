package domain

import (
	"errors"
	"testing"
)

func TestParseCoordinates(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Coordinates
		wantErr bool
	}{
		{name: "lat lon with space", input: "-2.916000, -79.037895", want: Coordinates{Lat: -2.916, Lon: -79.037895}},
		{name: "no spaces", input: "-2.9,-79", want: Coordinates{Lat: -2.9, Lon: -79}},
		{name: "padded", input: "  10.5 ,  20.25  ", want: Coordinates{Lat: 10.5, Lon: 20.25}},
		{name: "out of range is accepted", input: "123, 456", want: Coordinates{Lat: 123, Lon: 456}},
		{name: "letters", input: "abc, def", wantErr: true},
		{name: "single value", input: "-2.9", wantErr: true},
		{name: "three values", input: "1, 2, 3", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "missing longitude", input: "1,", wantErr: true},
		{name: "nan", input: "NaN, 1", wantErr: true},
		{name: "inf", input: "1, Inf", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCoordinates(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseCoordinates(%q) = %v, want error", tt.input, got)
				}
				if !errors.Is(err, ErrInvalidCoordinates) {
					t.Fatalf("error %v is not ErrInvalidCoordinates", err)
				}
				if !IsFormatError(err) {
					t.Fatalf("error %v should be a format error", err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("ParseCoordinates(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestCoordinatesOrder(t *testing.T) {
	c := Coordinates{Lat: -2.9, Lon: -79}

	if got := c.CoordsToList(); got[0] != -79 || got[1] != -2.9 {
		t.Errorf("CoordsToList = %v, want [lon lat]", got)
	}
	if got := c.LatLon(); got != [2]float64{-2.9, -79} {
		t.Errorf("LatLon = %v, want [lat lon]", got)
	}
}
