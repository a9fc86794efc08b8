package osm2lanes

import (
	"testing"

	"github.com/paulmach/orb"
)

func TestRoadGeoJSONRejectsShortCenterline(t *testing.T) {
	tags := NewTags(map[string]string{"highway": "residential", "lanes": "2"})
	road, _, err := TagsToLanes(tags, rightLocale(), NewConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := RoadGeoJSON(road, orb.LineString{{0, 0}}, rightLocale()); err == nil {
		t.Errorf("expected an error for a centerline with fewer than two points")
	}
}

func TestRoadGeoJSONEmitsOneFeaturePerNonSeparatorLane(t *testing.T) {
	tags := NewTags(map[string]string{"highway": "residential", "lanes": "2", "sidewalk": "both"})
	road, _, err := TagsToLanes(tags, rightLocale(), NewConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	centerline := orb.LineString{{-122.42, 37.77}, {-122.41, 37.78}}
	fc, geoErr := RoadGeoJSON(road, centerline, rightLocale())
	if geoErr != nil {
		t.Fatalf("unexpected error: %v", geoErr)
	}
	want := len(stripSeparators(road.Lanes))
	if len(fc.Features) != want {
		t.Errorf("expected %d features (one per non-separator lane), got %d", want, len(fc.Features))
	}
	for _, f := range fc.Features {
		if _, ok := f.Properties["type"]; !ok {
			t.Errorf("expected every feature to carry a type property, got %+v", f.Properties)
		}
		line, ok := f.Geometry.LineString, f.Geometry.IsLineString()
		if !ok || len(line) != len(centerline) {
			t.Errorf("expected each feature's LineString to match the centerline's point count, got %v", line)
		}
	}
}

func TestCumulativeOffsetsAreSymmetricAroundCentre(t *testing.T) {
	lanes := []Lane{
		Travel(DirectionBackward, DesignatedMotorVehicle),
		Travel(DirectionForward, DesignatedMotorVehicle),
	}
	offsets := cumulativeOffsets(lanes, rightLocale(), HighwayResidential)
	if len(offsets) != 2 {
		t.Fatalf("expected 2 offsets, got %d", len(offsets))
	}
	if offsets[0] != -offsets[1] {
		t.Errorf("expected two equal-width lanes to straddle centre symmetrically, got %v", offsets)
	}
}

func TestPerpendicularUnitIsOrthogonalToCenterline(t *testing.T) {
	line := orb.LineString{{0, 0}, {1, 0}}
	euclidean := lineToEuclidean(line)
	nx, ny := perpendicularUnit(euclidean)
	dx := euclidean[1].X() - euclidean[0].X()
	dy := euclidean[1].Y() - euclidean[0].Y()
	dot := nx*dx + ny*dy
	if dot > 1e-6 || dot < -1e-6 {
		t.Errorf("expected the perpendicular unit vector to be orthogonal to the line, dot=%v", dot)
	}
}
