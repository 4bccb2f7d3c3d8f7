// Command routeboxer reads Google encoded polylines from stdin, one per
// line, and writes the coverage boxes for each route to stdout as JSON
// or KML. Routes are boxed concurrently; the library is safe for that
// because every call owns its own grid state.
package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/dpup/routeboxer"
	"github.com/dpup/routeboxer/geo"
	"github.com/dpup/routeboxer/internal/kmlout"
)

type Configuration struct {
	BufferMeters float64 `envconfig:"BUFFER_METERS" default:"20"`
	Format       string  `envconfig:"OUTPUT_FORMAT" default:"json"`
}

type result struct {
	Route []geo.Point  `json:"route"`
	Boxes []geo.Bounds `json:"boxes"`
}

func init() {
	log.SetFormatter(&log.TextFormatter{ForceColors: true})
}

func main() {
	var c Configuration
	if err := envconfig.Process("", &c); err != nil {
		log.Fatal(err.Error())
	}
	if c.Format != "json" && c.Format != "kml" {
		log.Fatalf("unknown output format %q, expected json or kml", c.Format)
	}

	lines, err := readLines(os.Stdin)
	if err != nil {
		log.Fatalf("error reading input: %v", err)
	}
	if len(lines) == 0 {
		log.Fatal("no routes on stdin: expected one encoded polyline per line")
	}

	log.Infof("boxing %d routes with a %.0fm buffer", len(lines), c.BufferMeters)

	results := make([]result, len(lines))
	var g errgroup.Group
	for i, line := range lines {
		i, line := i, line
		g.Go(func() error {
			route, err := geo.DecodePolyline(line)
			if err != nil {
				return fmt.Errorf("route %d: %w", i+1, err)
			}
			results[i] = result{
				Route: route,
				Boxes: routeboxer.Box(route, c.BufferMeters),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatal(err)
	}

	if err := write(os.Stdout, c.Format, results); err != nil {
		log.Fatalf("error writing output: %v", err)
	}
}

func readLines(f *os.File) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if line := scanner.Text(); line != "" {
			lines = append(lines, line)
		}
	}
	return lines, scanner.Err()
}

func write(f *os.File, format string, results []result) error {
	if format == "kml" {
		routes := make([]kmlout.Route, len(results))
		for i, r := range results {
			routes[i] = kmlout.Route{
				Name:  fmt.Sprintf("route %d", i+1),
				Path:  r.Route,
				Boxes: r.Boxes,
			}
		}
		return kmlout.Render(f, routes...)
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(results)
}
