package osm2lanes

import (
	"fmt"
	"math"

	geojson "github.com/paulmach/go.geojson"
	"github.com/paulmach/orb"
)

// This file adapts the teacher repo's Web Mercator projection helpers
// (geo.go's epsg4326To3857/epsg3857To4326) and its GeoJSON marshaling
// helpers (converter_geojson.go) to a different job: rendering a Road's
// cross-section as real geometry once an OsmFetcher has supplied the way's
// centerline, for debugging and for any caller that wants to draw the
// lanes it got back rather than just list them.

const earthRadiusMetres = 20037508.34

func epsg4326To3857(lon, lat float64) (float64, float64) {
	x := lon * earthRadiusMetres / 180
	y := math.Log(math.Tan((90+lat)*math.Pi/360)) / (math.Pi / 180)
	y = y * earthRadiusMetres / 180
	return x, y
}

func epsg3857To4326(x, y float64) (float64, float64) {
	lon := x * 180 / earthRadiusMetres
	lat := math.Atan(math.Exp(y*math.Pi/earthRadiusMetres))*360/math.Pi - 90
	return lon, lat
}

func lineToEuclidean(line orb.LineString) orb.LineString {
	out := make(orb.LineString, len(line))
	for i, pt := range line {
		x, y := epsg4326To3857(pt.Lon(), pt.Lat())
		out[i] = orb.Point{x, y}
	}
	return out
}

func lineToGeographic(line orb.LineString) orb.LineString {
	out := make(orb.LineString, len(line))
	for i, pt := range line {
		lon, lat := epsg3857To4326(pt.X(), pt.Y())
		out[i] = orb.Point{lon, lat}
	}
	return out
}

// RoadGeoJSON renders a Road's non-separator lanes as parallel offset
// LineStrings either side of centerline, one GeoJSON Feature per lane,
// tagged with its Kind/Direction/Designated as Properties. centerline must
// carry at least two points and is assumed to run in the way's own
// start-to-end (Forward) direction, matching Lane.Direction's convention.
func RoadGeoJSON(road Road, centerline orb.LineString, locale Locale) (*geojson.FeatureCollection, error) {
	if len(centerline) < 2 {
		return nil, fmt.Errorf("osm2lanes: centerline needs at least two points, got %d", len(centerline))
	}
	euclidean := lineToEuclidean(centerline)
	nx, ny := perpendicularUnit(euclidean)

	lanes := stripSeparators(road.Lanes)
	offsets := cumulativeOffsets(lanes, locale, road.HighwayClass)

	fc := geojson.NewFeatureCollection()
	for i, lane := range lanes {
		offsetLine := translate(euclidean, nx*offsets[i], ny*offsets[i])
		geoLine := lineToGeographic(offsetLine)
		coords := make([][]float64, len(geoLine))
		for j, pt := range geoLine {
			coords[j] = []float64{pt.Lon(), pt.Lat()}
		}
		feature := geojson.NewLineStringFeature(coords)
		feature.Properties["type"] = lane.Kind.String()
		if lane.IsTravelOrParking() {
			feature.Properties["direction"] = lane.Direction.String()
			feature.Properties["designated"] = lane.Designated.String()
		}
		fc.AddFeature(feature)
	}
	return fc, nil
}

// cumulativeOffsets lays lanes out left to right around centerline: the
// leftmost lane's centre sits at -sum(widths)/2-ish and each subsequent
// lane's centre is the previous one's centre plus half its width plus half
// the next lane's width, so adjacent lanes sit flush against each other.
func cumulativeOffsets(lanes []Lane, locale Locale, highway HighwayClass) []float64 {
	offsets := make([]float64, len(lanes))
	if len(lanes) == 0 {
		return offsets
	}
	widths := make([]float64, len(lanes))
	total := 0.0
	for i, l := range lanes {
		widths[i] = l.effectiveWidth(locale, highway)
		total += widths[i]
	}
	running := -total / 2
	for i := range lanes {
		offsets[i] = running + widths[i]/2
		running += widths[i]
	}
	return offsets
}

// perpendicularUnit returns the unit vector perpendicular to the line's
// overall direction (first point to last point), rotated so positive
// offsets land on the Direction-Forward side of the way per spec.md §3
// invariant 4 (left of centre is Backward, in a right-driving locale).
func perpendicularUnit(line orb.LineString) (float64, float64) {
	dx := line[len(line)-1].X() - line[0].X()
	dy := line[len(line)-1].Y() - line[0].Y()
	length := math.Hypot(dx, dy)
	if length == 0 {
		return 0, 0
	}
	return dy / length, -dx / length
}

func translate(line orb.LineString, dx, dy float64) orb.LineString {
	out := make(orb.LineString, len(line))
	for i, pt := range line {
		out[i] = orb.Point{pt.X() + dx, pt.Y() + dy}
	}
	return out
}
