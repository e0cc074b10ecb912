package geo

import (
	"math"
	"testing"
)

const (
	sfLat = 37.7749
	sfLon = -122.4194
)

func TestHaversineMilesKnownPairs(t *testing.T) {
	tests := []struct {
		name      string
		lat, lon  float64
		want      float64
		tolerance float64
	}{
		{"SF to Oakland", 37.8044, -122.2712, 10.4, 0.2},
		{"SF to Berkeley", 37.8715, -122.2730, 12.1, 0.2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HaversineMiles(sfLat, sfLon, tt.lat, tt.lon)
			if math.Abs(got-tt.want) > tt.tolerance {
				t.Errorf("HaversineMiles() = %.2f, want %.2f ±%.1f", got, tt.want, tt.tolerance)
			}
		})
	}
}

func TestHaversineMilesSamePoint(t *testing.T) {
	if d := HaversineMiles(sfLat, sfLon, sfLat, sfLon); d != 0 {
		t.Errorf("distance to self = %f, want 0", d)
	}
}

func TestHaversineMilesSymmetric(t *testing.T) {
	ab := HaversineMiles(sfLat, sfLon, 37.8044, -122.2712)
	ba := HaversineMiles(37.8044, -122.2712, sfLat, sfLon)
	if math.Abs(ab-ba) > 1e-9 {
		t.Errorf("asymmetric distance: %f vs %f", ab, ba)
	}
}

func TestValidateCoordinates(t *testing.T) {
	valid := [][2]float64{
		{0, 0},
		{90, 180},
		{-90, -180},
		{sfLat, sfLon},
	}
	for _, c := range valid {
		if err := ValidateCoordinates(c[0], c[1]); err != nil {
			t.Errorf("ValidateCoordinates(%v, %v) = %v, want nil", c[0], c[1], err)
		}
	}

	invalid := [][2]float64{
		{91, 0},
		{-91, 0},
		{0, 181},
		{0, -181},
		{math.NaN(), 0},
		{0, math.Inf(1)},
	}
	for _, c := range invalid {
		if err := ValidateCoordinates(c[0], c[1]); err == nil {
			t.Errorf("ValidateCoordinates(%v, %v) = nil, want error", c[0], c[1])
		}
	}
}

func TestBoundingBoxContainsRadius(t *testing.T) {
	box := BoundingBoxFor(sfLat, sfLon, 25)

	// Oakland is well inside 25 miles and must fall inside the box.
	if 37.8044 < box.MinLat || 37.8044 > box.MaxLat {
		t.Errorf("Oakland latitude outside box %+v", box)
	}
	if -122.2712 < box.MinLon || -122.2712 > box.MaxLon {
		t.Errorf("Oakland longitude outside box %+v", box)
	}

	// The western box edge sits roughly the radius away from the center.
	edge := HaversineMiles(sfLat, box.MinLon, sfLat, sfLon)
	if math.Abs(edge-25) > 0.1 {
		t.Errorf("box edge %.2f miles from center, want ~25", edge)
	}
}

func TestBoundingBoxClampedAtPoles(t *testing.T) {
	box := BoundingBoxFor(89.9, 0, 100)
	if box.MaxLat > 90 {
		t.Errorf("MaxLat %f exceeds 90", box.MaxLat)
	}
	if box.MinLon != -180 || box.MaxLon != 180 {
		t.Errorf("expected full longitude range near pole, got %+v", box)
	}
}
