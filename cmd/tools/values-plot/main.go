// values-plot loads a values snapshot from a sqlite database and renders
// it to an image, optionally re-expressed under a world base frame.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/banshee-data/slamkit/geom"
	"github.com/banshee-data/slamkit/values"
	"github.com/banshee-data/slamkit/valuesdb"
	"github.com/banshee-data/slamkit/visualiser"
)

func main() {
	dbPath := flag.String("db", "values.db", "path to snapshot sqlite DB file")
	snapshot := flag.String("snapshot", "", "snapshot uuid; empty selects the newest")
	out := flag.String("out", "values.png", "output image path")
	base := flag.String("base", "", "optional world base pose as x,y,theta; re-expresses planar entries")
	list := flag.Bool("list", false, "list snapshots and exit")
	flag.Parse()

	if _, err := os.Stat(*dbPath); err != nil {
		log.Fatalf("DB path %s not accessible: %v", *dbPath, err)
	}

	db, err := valuesdb.Open(*dbPath)
	if err != nil {
		log.Fatalf("failed to open snapshot DB: %v", err)
	}
	defer db.Close()

	if *list {
		infos, err := db.ListSnapshots()
		if err != nil {
			log.Fatalf("failed to list snapshots: %v", err)
		}
		for _, info := range infos {
			fmt.Printf("%s  %-20s  %s  (%d values)\n", info.UUID, info.Label, info.CreatedAt, info.Count)
		}
		return
	}

	id := *snapshot
	if id == "" {
		infos, err := db.ListSnapshots()
		if err != nil {
			log.Fatalf("failed to list snapshots: %v", err)
		}
		if len(infos) == 0 {
			log.Fatalf("no snapshots in %s", *dbPath)
		}
		id = infos[0].UUID
	}

	v, err := db.LoadSnapshot(id)
	if err != nil {
		log.Fatalf("failed to load snapshot %s: %v", id, err)
	}

	if *base != "" {
		pose, err := parseBase(*base)
		if err != nil {
			log.Fatalf("bad -base value: %v", err)
		}
		v = values.LocalToWorld(v, pose)
	}

	if err := visualiser.PlotValues(v, "snapshot "+id, *out); err != nil {
		log.Fatalf("failed to render plot: %v", err)
	}
	log.Printf("done: snapshot=%s values=%d out=%s", id, v.Len(), *out)
}

func parseBase(s string) (geom.Pose2, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return geom.Pose2{}, fmt.Errorf("want x,y,theta, got %q", s)
	}
	var x, y, theta float64
	if _, err := fmt.Sscanf(s, "%f,%f,%f", &x, &y, &theta); err != nil {
		return geom.Pose2{}, err
	}
	return geom.NewPose2(x, y, theta), nil
}
