// Command inspect generates rooms from the command line for debugging world
// layouts without running the server. It prints the full generated room,
// including fields the API view hides.
package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	_ "github.com/mattn/go-sqlite3"

	"github.com/Verdant-Codeworks/Verdantia-sub001/internal/catalog"
	"github.com/Verdant-Codeworks/Verdantia-sub001/internal/coord"
	"github.com/Verdant-Codeworks/Verdantia-sub001/internal/room"
	"github.com/Verdant-Codeworks/Verdantia-sub001/internal/store"
	"github.com/Verdant-Codeworks/Verdantia-sub001/internal/worldgen"
)

func main() {
	var (
		x        = flag.Int("x", 0, "X coordinate")
		y        = flag.Int("y", 0, "Y coordinate")
		z        = flag.Int("z", 0, "Z coordinate")
		radius   = flag.Int("radius", 0, "Also generate rooms within this Manhattan radius")
		seed     = flag.Int64("seed", 1889, "World seed")
		dbPath   = flag.String("db", "", "Optional sqlite database to read and write rooms")
		logLevel = flag.String("log", "warn", "Log level (debug, info, warn, error)")
		asView   = flag.Bool("view", false, "Print the client API view instead of the raw room")
	)
	flag.Parse()

	switch *logLevel {
	case "debug":
		log.SetLevel(log.DebugLevel)
	case "info":
		log.SetLevel(log.InfoLevel)
	case "warn":
		log.SetLevel(log.WarnLevel)
	case "error":
		log.SetLevel(log.ErrorLevel)
	default:
		log.SetLevel(log.WarnLevel)
	}
	log.SetPrefix("[verdantia] ")

	var roomStore room.Store = room.NullStore{}
	var overrides catalog.OverrideStore
	if *dbPath != "" {
		db, err := sql.Open("sqlite3", *dbPath)
		if err != nil {
			log.Fatal("Failed to open database", "error", err, "path", *dbPath)
		}
		defer db.Close()

		if err := store.RunMigrations(db); err != nil {
			log.Fatal("Failed to run migrations", "error", err)
		}
		roomStore = store.NewRoomStore(db)
		overrides = store.NewDefinitionStore(db)
	}

	cat := catalog.New(overrides)
	classifier := worldgen.NewClassifier(*seed, 3.0, 20)
	svc := room.NewService(room.NewCache(), roomStore, cat, classifier)

	ctx := context.Background()

	var output any
	if *radius > 0 {
		rooms, err := svc.GetRoomsInRadius(ctx, coord.Coordinate{X: *x, Y: *y, Z: *z}, *radius)
		if err != nil {
			log.Fatal("Failed to generate area", "error", err)
		}
		if *asView {
			views := make([]room.RoomView, 0, len(rooms))
			for _, r := range rooms {
				views = append(views, room.NewView(r))
			}
			output = views
		} else {
			output = rooms
		}
	} else {
		r, err := svc.GetOrGenerateRoom(ctx, *x, *y, *z)
		if err != nil {
			log.Fatal("Failed to generate room", "error", err)
		}
		if *asView {
			output = room.NewView(r)
		} else {
			output = r
		}
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(output); err != nil {
		fmt.Fprintln(os.Stderr, "encode:", err)
		os.Exit(1)
	}
}
