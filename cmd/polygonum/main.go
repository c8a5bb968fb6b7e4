// Command polygonum is a thin CLI wrapper around the polygonum library:
// it reads a GeoJSON FeatureCollection of LineString segments and prints
// the reconstructed polygons (spec.md §1's "CLI entry wrapper",
// implemented here as an ambient collaborator, not core).
package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/wireviz/polygonum"
	"github.com/wireviz/polygonum/ingest/geojson"
	"github.com/wireviz/polygonum/point"
)

var (
	flagParallel bool
	flagMinArea  float64
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		slog.Error("polygonum: command failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "polygonum",
		Short: "Reconstruct planar polygons from a wireframe of 3D segments",
	}
	root.AddCommand(newPolygonizeCmd())
	return root
}

func newPolygonizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "polygonize [file]",
		Short: "Read a GeoJSON LineString collection and print its reconstructed polygons",
		Args:  cobra.ExactArgs(1),
		RunE:  runPolygonize,
	}
	cmd.Flags().BoolVar(&flagParallel, "parallel", false, "partition the graph into connected components and process them concurrently")
	cmd.Flags().Float64Var(&flagMinArea, "min-area", 0, "minimum projected (xy) area a face must have to be kept")
	return cmd
}

func runPolygonize(cmd *cobra.Command, args []string) error {
	path := args[0]
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("polygonize: open %s: %w", path, err)
	}
	defer f.Close()

	segments, err := geojson.ReadSegments(f)
	if err != nil {
		return fmt.Errorf("polygonize: read segments: %w", err)
	}

	slog.Info("polygonize: read segments", slog.String("file", path), slog.Int("count", len(segments)))

	polys := polygonum.Polygonalize(segments, flagParallel, flagMinArea)

	slog.Info("polygonize: reconstructed polygons", slog.Int("count", len(polys)))

	out := make([]polygonOutput, len(polys))
	for i, p := range polys {
		out[i] = polygonOutput{Vertices: toCoords(p.Sequence())}
	}
	return json.NewEncoder(cmd.OutOrStdout()).Encode(out)
}

type polygonOutput struct {
	Vertices [][3]float64 `json:"vertices"`
}

func toCoords(seq []point.Point) [][3]float64 {
	out := make([][3]float64, len(seq))
	for i, p := range seq {
		out[i] = [3]float64{p.X, p.Y, p.Z}
	}
	return out
}
