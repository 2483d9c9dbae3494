package main

import (
	"embed"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/getsentry/sentry-go"
	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/platsim/area"
	"github.com/oomph-ac/platsim/entity"
	"github.com/oomph-ac/platsim/event"
	"github.com/oomph-ac/platsim/level"
	"github.com/oomph-ac/platsim/settings"
	"github.com/oomph-ac/platsim/world"
	"github.com/sirupsen/logrus"
)

//go:embed levels
var builtinLevels embed.FS

const (
	heroGUID  = 100
	leverGUID = 101
	guardGUID = 102
)

var (
	settingsPath string
	recordPath   string
	ticks        int
	delta        float64
	debug        bool
)

// The following program runs a headless simulation: a hero walks right through the
// levels passed (or the built-in hall and cellar), jumping whenever it is stopped.
func main() {
	flag.StringVar(&settingsPath, "settings", "settings.toml", "path of the settings file, created with defaults if missing")
	flag.StringVar(&recordPath, "record", "", "path of a zstd compressed event recording to write")
	flag.IntVar(&ticks, "ticks", 600, "number of updates to run")
	flag.Float64Var(&delta, "dt", 16, "milliseconds per update")
	flag.BoolVar(&debug, "debug", false, "enable debug logging")
	flag.Parse()

	log := logrus.New()
	log.Formatter = &logrus.TextFormatter{ForceColors: true}
	log.Level = logrus.InfoLevel
	if debug {
		log.Level = logrus.DebugLevel
	}

	if err := run(log, flag.Args()); err != nil {
		log.Fatal(err)
	}
}

// run builds the world from the levels passed and drives it for the configured
// number of ticks.
func run(log *logrus.Logger, paths []string) error {
	defer sentry.Recover()

	if os.Getenv("PPROF_ENABLED") != "" {
		// set configurations before calling `statsview.New()` method
		viewer.SetConfiguration(viewer.WithTheme(viewer.ThemeWesteros), viewer.WithAddr("localhost:8080"))

		mgr := statsview.New()
		go mgr.Start()
		defer mgr.Stop()
	}

	s, err := loadSettings(settingsPath)
	if err != nil {
		return fmt.Errorf("unable to load settings: %w", err)
	}
	levels, err := loadLevels(paths)
	if err != nil {
		return fmt.Errorf("unable to load levels: %w", err)
	}

	w := world.New(log, s.AreaConfig())
	hero := entity.Config{Name: "hero", Size: mgl32.Vec3{4, 8, 16}}.New(heroGUID)
	lever := entity.Config{
		Name:  "lever",
		Size:  mgl32.Vec3{4, 4, 8},
		Fixed: true,
		Use: func(t *entity.Thing, ctx *area.Context, user area.Entity) {
			ctx.Area.EmitText(ctx, fmt.Sprintf("%s pulled the %s", nameOf(user), t.Name()))
		},
	}.New(leverGUID)
	guard := entity.Config{
		Name:      "guard",
		Size:      mgl32.Vec3{4, 8, 16},
		Behaviour: entity.Patrol(64, 1),
	}.New(guardGUID)
	for _, e := range []area.Entity{hero, lever, guard} {
		if err := w.AddEntity(e); err != nil {
			return fmt.Errorf("unable to register entity: %w", err)
		}
	}
	for _, lvl := range levels {
		if _, err := w.BuildArea(lvl); err != nil {
			return fmt.Errorf("unable to build level %q: %w", lvl.Name, err)
		}
	}

	start, ok := w.Locate(hero)
	if !ok {
		return fmt.Errorf("no level places the hero (entity %d)", heroGUID)
	}

	recording := &event.Log{}
	if recordPath != "" {
		w.Subscribe(area.Recorder{Log: recording})
	}

	ctx := &area.Context{Area: start, Hero: hero, Camera: &camera{log: log}}
	start.UseNear(ctx, hero)
	start.SetForce(hero, mgl32.Vec3{0, 3, 0})
	for i := 0; i < ticks; i++ {
		steer(ctx, hero)
		w.Update(ctx, float32(delta))
		if ctx.Tick%60 == 0 {
			log.Infof("tick %d: area %q digest %016x", ctx.Tick, ctx.Area.Name(), ctx.Area.Digest())
		}
	}
	for _, msg := range ctx.Area.Messages() {
		log.Infof("message: %s", msg)
	}
	for _, a := range w.Areas() {
		log.Infof("area %q: %d bodies, digest %016x", a.Name(), a.Len(), a.Digest())
	}

	if recordPath != "" {
		if err := writeRecording(recordPath, recording); err != nil {
			return fmt.Errorf("unable to write recording: %w", err)
		}
		log.Infof("recorded %d events to %s", recording.Len(), recordPath)
	}
	return nil
}

// steer keeps the hero walking right and makes it jump when it is stopped on the
// ground.
func steer(ctx *area.Context, hero *entity.Thing) {
	b, ok := ctx.Area.Body(hero)
	if !ok {
		return
	}
	if !ctx.Area.Grounded(b) || b.BBox().Y() != b.PrevBBox().Y() {
		return
	}
	ctx.Area.SetForce(hero, mgl32.Vec3{0, 3, -12})
}

func nameOf(e area.Entity) string {
	if t, ok := e.(*entity.Thing); ok {
		return t.Name()
	}
	return fmt.Sprintf("entity %d", e.GUID())
}

func loadSettings(path string) (settings.Settings, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := settings.SaveDefault(path); err != nil {
			return settings.Settings{}, err
		}
	}
	return settings.Load(path)
}

func loadLevels(paths []string) ([]*level.Level, error) {
	if len(paths) > 0 {
		return level.LoadAll(paths...)
	}
	entries, err := fs.ReadDir(builtinLevels, "levels")
	if err != nil {
		return nil, err
	}
	levels := make([]*level.Level, 0, len(entries))
	for _, entry := range entries {
		data, err := fs.ReadFile(builtinLevels, "levels/"+entry.Name())
		if err != nil {
			return nil, err
		}
		lvl, err := level.Parse(data, filepath.Ext(entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", entry.Name(), err)
		}
		levels = append(levels, lvl)
	}
	return levels, nil
}

func writeRecording(path string, l *event.Log) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := l.WriteTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

type camera struct {
	log *logrus.Logger
	pos mgl32.Vec3
}

func (c *camera) Center(pos mgl32.Vec3) {
	if pos != c.pos {
		c.log.Debugf("camera: %v", pos)
	}
	c.pos = pos
}
