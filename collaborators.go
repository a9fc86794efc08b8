package osm2lanes

import (
	"context"

	"github.com/paulmach/orb"
	"github.com/paulmach/osm"
)

// Geocoder resolves a coordinate to a Locale, so that a caller can pick the
// right driving side and country defaults before invoking TagsToLanes.
// Per spec.md §6, the core only states this interface; no implementation
// (a country-polygon lookup service) lives in this module.
type Geocoder interface {
	Locate(ctx context.Context, coord orb.Point) (Locale, error)
}

// OsmFetcher retrieves a way's tags, representative coordinate and
// geometry from whatever network source backs it (e.g. Overpass). Per
// spec.md §6, the core only states this interface; the result is opaque to
// the core beyond its Tags, which is handed straight to TagsToLanes.
type OsmFetcher interface {
	Fetch(ctx context.Context, wayID osm.WayID) (Tags, orb.Point, orb.LineString, error)
}
