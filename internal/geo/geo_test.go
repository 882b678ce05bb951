package geo

import (
	"math"
	"testing"

	"evacroute/internal/models"
)

var (
	raleigh   = models.Coordinate{Lat: 35.7796, Lon: -78.6382}
	charlotte = models.Coordinate{Lat: 35.2271, Lon: -80.8431}
)

func TestHaversineZero(t *testing.T) {
	if d := Haversine(raleigh, raleigh); d != 0 {
		t.Errorf("distance to self = %v, want 0", d)
	}
}

func TestHaversineSymmetry(t *testing.T) {
	ab := Haversine(raleigh, charlotte)
	ba := Haversine(charlotte, raleigh)
	if math.Abs(ab-ba) > 1e-9 {
		t.Errorf("asymmetric: %v vs %v", ab, ba)
	}
}

func TestHaversineKnownDistance(t *testing.T) {
	// Raleigh to Charlotte is roughly 130 road-free miles.
	d := Haversine(raleigh, charlotte)
	if d < 125 || d > 135 {
		t.Errorf("Raleigh-Charlotte = %v mi, want ~130", d)
	}
}

func TestBearingRange(t *testing.T) {
	pts := []models.Coordinate{
		{Lat: 0, Lon: 0}, {Lat: 10, Lon: 10}, {Lat: -10, Lon: 10},
		{Lat: 10, Lon: -10}, {Lat: -10, Lon: -10},
	}
	for _, a := range pts {
		for _, b := range pts {
			if a == b {
				continue
			}
			br := Bearing(a, b)
			if br < 0 || br >= 360 {
				t.Errorf("Bearing(%v,%v) = %v out of range", a, b, br)
			}
		}
	}
}

func TestBearingDueNorth(t *testing.T) {
	br := Bearing(models.Coordinate{Lat: 0, Lon: 0}, models.Coordinate{Lat: 1, Lon: 0})
	if math.Abs(br) > 1e-9 {
		t.Errorf("due north = %v, want 0", br)
	}
}

func TestCardinal(t *testing.T) {
	cases := []struct {
		deg  float64
		want string
	}{
		{0, "N"}, {22.4, "N"}, {22.5, "NE"}, {45, "NE"},
		{90, "E"}, {135, "SE"}, {180, "S"}, {225, "SW"},
		{270, "W"}, {315, "NW"}, {337.5, "N"}, {359.9, "N"},
	}
	for _, tc := range cases {
		if got := Cardinal(tc.deg); got != tc.want {
			t.Errorf("Cardinal(%v) = %q, want %q", tc.deg, got, tc.want)
		}
	}
}

func TestLerpEndpoints(t *testing.T) {
	if got := Lerp(raleigh, charlotte, 0); got != raleigh {
		t.Errorf("t=0 = %v, want origin", got)
	}
	if got := Lerp(raleigh, charlotte, 1); got != charlotte {
		t.Errorf("t=1 = %v, want destination", got)
	}
	mid := Lerp(raleigh, charlotte, 0.5)
	if mid.Lat >= raleigh.Lat || mid.Lat <= charlotte.Lat {
		t.Errorf("midpoint latitude %v not between endpoints", mid.Lat)
	}
}

func TestBBoxContains(t *testing.T) {
	bb := NewBBox(raleigh, charlotte, 0.25)
	for _, c := range []models.Coordinate{raleigh, charlotte, Lerp(raleigh, charlotte, 0.5)} {
		if !bb.Contains(c) {
			t.Errorf("box should contain %v", c)
		}
	}
	if bb.Contains(models.Coordinate{Lat: 40.7, Lon: -74.0}) {
		t.Error("box should not contain New York")
	}
	// Edges are inclusive.
	if !bb.Contains(models.Coordinate{Lat: bb.South, Lon: bb.West}) {
		t.Error("south-west corner should be inside")
	}
}
