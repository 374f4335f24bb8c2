// Command rangeplanner starts the WebSocket façade that serves the
// energy-bounded aerial path planner. Ported from
// original_source/main.rs's role (a thin call into
// server::serve_ui_forever), without its many commented-out experimental
// bodies.
package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/katalvlaran/rangeplanner/wsserver"
)

func main() {
	addr := flag.String("addr", wsserver.DefaultAddr, "bind address for the websocket facade")
	obstaclesPath := flag.String("obstacles-db", "data/obstacles.gpkg", "GeoPackage path for obstacle polygons")
	obstaclesTable := flag.String("obstacles-table", "obstacles", "GeoPackage table name for obstacle polygons")
	watersPath := flag.String("waters-db", "data/waters.gpkg", "GeoPackage path for recharge-water polygons")
	watersTable := flag.String("waters-table", "waters", "GeoPackage table name for recharge-water polygons")
	airspacePath := flag.String("airspace-db", "data/restricted-airspace.gpkg", "GeoPackage path for restricted airspace polygons")
	airspaceTable := flag.String("airspace-table", "restricted-airspace", "GeoPackage table name for restricted airspace polygons")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	dataset := wsserver.Dataset{
		ObstaclesPath:            *obstaclesPath,
		ObstaclesTable:           *obstaclesTable,
		WatersPath:               *watersPath,
		WatersTable:              *watersTable,
		RestrictedAirspacePath:   *airspacePath,
		RestrictedAirspaceTable:  *airspaceTable,
	}

	if err := wsserver.ListenAndServe(
		wsserver.WithAddr(*addr),
		wsserver.WithLogger(logger),
		wsserver.WithDataset(dataset),
	); err != nil {
		logger.Error("server exited", "error", err)
		os.Exit(1)
	}
}
