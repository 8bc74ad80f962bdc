package main

import (
	"fmt"
	"os"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/groundwork/item"
	"github.com/oomph-ac/groundwork/player"
	"github.com/oomph-ac/groundwork/save"
	"github.com/oomph-ac/groundwork/settings"
	"github.com/oomph-ac/groundwork/simulation"
	"github.com/oomph-ac/groundwork/world"
	"github.com/sirupsen/logrus"
)

// The following program runs the default arena headlessly. A scripted player walks to every item, picks it
// up and uses it, while a tiny kinematic host stands in for the physics engine. A snapshot path, if passed,
// is restored from when the file exists and written to once the run ends.
func main() {
	if len(os.Args) > 3 {
		fmt.Println("Usage: ./sandbox [settings.toml] [snapshot.json.zst]")
		return
	}

	log := logrus.New()
	log.Formatter = &logrus.TextFormatter{ForceColors: true}
	log.Level = logrus.DebugLevel

	s := settings.DefaultSettings()
	if len(os.Args) > 1 {
		path := os.Args[1]
		if err := settings.SaveDefault(path); err == nil {
			log.Infof("created default settings at %s", path)
		}
		loaded, err := settings.Load(path)
		if err != nil {
			log.Fatalf("unable to load settings: %v", err)
		}
		s = loaded
	}

	if dsn := os.Getenv("SENTRY_DSN"); dsn != "" {
		if err := sentry.Init(sentry.ClientOptions{Dsn: dsn}); err != nil {
			log.Errorf("sentry init failed: %v", err)
		}
		defer sentry.Flush(5 * time.Second)
	}

	if os.Getenv("PPROF_ENABLED") != "" {
		// set configurations before calling `statsview.New()` method
		viewer.SetConfiguration(viewer.WithTheme(viewer.ThemeWesteros), viewer.WithAddr("localhost:8080"))

		mgr := statsview.New()
		go mgr.Start()
		defer mgr.Stop()
	}

	catalog := item.DefaultCatalog()
	if path := os.Getenv("CATALOG"); path != "" {
		c, err := item.LoadCatalog(path)
		if err != nil {
			log.Fatalf("unable to load item catalog: %v", err)
		}
		catalog = c
	}

	attrs := world.DefaultAttributes()
	attrs.Items = append(attrs.Items,
		world.Placement{Name: "Healing Herb", Position: mgl32.Vec3{-5, 0, 20}},
		world.Placement{Name: "Stone", Position: mgl32.Vec3{5, 0, 5}},
		world.Placement{Name: "Wooden Sword", Position: mgl32.Vec3{-10, 0, -10}},
	)
	// The ground collider's top face sits at y=2, so items are lifted to where the player can reach them.
	for i := range attrs.Items {
		attrs.Items[i].Position[1] = attrs.GroundHalfHeight + 0.75
	}
	w, err := world.DefaultLayout(attrs, catalog)
	if err != nil {
		log.Fatalf("unable to build world: %v", err)
	}

	sim := simulation.New(log, s, w)
	p := sim.NewPlayer("sandbox")
	if len(os.Args) > 2 {
		if _, err := os.Stat(os.Args[2]); err == nil {
			snap, err := save.Read(os.Args[2])
			if err != nil {
				log.Fatalf("unable to read snapshot: %v", err)
			}
			if err := snap.Restore(p); err != nil {
				log.Fatalf("unable to restore snapshot: %v", err)
			}
			log.Infof("restored %d item(s) from %s", len(snap.Slots), os.Args[2])
		}
	}
	h := newHost(sim, p, player.Pose{Position: mgl32.Vec3{0, 5, 0}, HalfExtents: player.DefaultHalfExtents})

	dt := s.TickDuration()
	for tick := 0; tick < 40*s.Simulation.TickRate && !h.done(); tick++ {
		h.step(dt)
	}

	res := sim.Tick(dt, nil)
	stats := p.StatsSnapshot()
	log.WithFields(logrus.Fields{
		"time":   res.Now,
		"health": stats.Health,
		"speed":  stats.Speed,
		"items":  len(p.View().Items()),
	}).Info("sandbox finished")

	if len(os.Args) > 2 {
		snap := save.Capture(p)
		if err := save.Write(os.Args[2], snap); err != nil {
			log.Fatalf("unable to save snapshot: %v", err)
		}
		log.Infof("saved snapshot to %s", os.Args[2])
	}
}
