// Package kmlout renders routes and their coverage boxes as KML so the
// output can be eyeballed in Google Earth or quickmap-style viewers.
package kmlout

import (
	"fmt"
	"io"

	"github.com/twpayne/go-kml/v2"

	"github.com/dpup/routeboxer/geo"
)

// Route pairs a route with its coverage boxes for rendering.
type Route struct {
	Name  string
	Path  []geo.Point
	Boxes []geo.Bounds
}

// Render writes a KML document with one folder per route, containing
// the route as a LineString and each coverage box as a Polygon.
func Render(w io.Writer, routes ...Route) error {
	folders := make([]kml.Element, len(routes))
	for i, r := range routes {
		folders[i] = folder(r)
	}
	return kml.KML(kml.Document(folders...)).WriteIndent(w, "", "  ")
}

func folder(r Route) kml.Element {
	path := make([]kml.Coordinate, len(r.Path))
	for i, p := range r.Path {
		path[i] = kml.Coordinate{Lon: p.Longitude, Lat: p.Latitude}
	}

	children := []kml.Element{
		kml.Name(r.Name),
		kml.Placemark(
			kml.Name("route"),
			kml.LineString(kml.Coordinates(path...), kml.Tessellate(true)),
		),
	}
	for i, b := range r.Boxes {
		children = append(children, kml.Placemark(
			kml.Name(fmt.Sprintf("box %d", i)),
			kml.Polygon(kml.OuterBoundaryIs(kml.LinearRing(kml.Coordinates(ring(b)...)))),
		))
	}

	return kml.Folder(children...)
}

// ring returns the closed corner ring of a box, counterclockwise from
// the southwest corner.
func ring(b geo.Bounds) []kml.Coordinate {
	sw, ne := b.SouthWest, b.NorthEast
	return []kml.Coordinate{
		{Lon: sw.Longitude, Lat: sw.Latitude},
		{Lon: ne.Longitude, Lat: sw.Latitude},
		{Lon: ne.Longitude, Lat: ne.Latitude},
		{Lon: sw.Longitude, Lat: ne.Latitude},
		{Lon: sw.Longitude, Lat: sw.Latitude},
	}
}
