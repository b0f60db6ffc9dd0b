package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/df-mc/dragonfly/server/block"
	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/getsentry/sentry-go"
	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/oomph-ac/entsim/entity"
	"github.com/oomph-ac/entsim/event"
	"github.com/oomph-ac/entsim/game"
	"github.com/oomph-ac/entsim/settings"
	"github.com/oomph-ac/entsim/simulation"
	"github.com/oomph-ac/entsim/world"
	_ "go.uber.org/automaxprocs"
)

// The following program runs an arena with a stone floor and a wall, and keeps throwing arrows, ender
// pearls and items into it until interrupted.
func main() {
	conf, err := settings.Load("config.toml")
	if err != nil {
		panic(err)
	}
	log := newLogger(conf)

	if conf.Debug.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{Dsn: conf.Debug.SentryDSN}); err != nil {
			log.Error("unable to initialize sentry", "err", err)
		}
		defer sentry.Flush(2 * time.Second)
	}
	if conf.Debug.StatsView {
		// set configurations before calling `statsview.New()` method
		viewer.SetConfiguration(viewer.WithTheme(viewer.ThemeWesteros), viewer.WithAddr(conf.Debug.StatsViewAddr))
		mgr := statsview.New()
		go mgr.Start()
		defer mgr.Stop()
	}

	w := world.New(log)
	w.Fill(cube.Pos{-32, 63, -32}, cube.Pos{32, 63, 32}, block.Stone{})
	w.Fill(cube.Pos{24, 64, -32}, cube.Pos{24, 70, 32}, block.Stone{})
	w.Fill(cube.Pos{-8, 64, 8}, cube.Pos{8, 64, 8}, block.Cobblestone{})

	space := simulation.Config{
		Workers: conf.Simulation.Workers,
		Logger:  log,
		Journal: event.NewJournal(conf.Simulation.JournalSize, nil),
	}.New()
	defer space.Close()
	space.Handle(&logHandler{log: log, space: space})

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	ticker := time.NewTicker(conf.TickDuration())
	defer ticker.Stop()

	log.Info("arena started", "tickRate", conf.Simulation.TickRate, "workers", conf.Simulation.Workers)
	for {
		select {
		case <-ctx.Done():
			mean, stdDev := space.TickTimings()
			log.Info("arena stopped", "ticks", space.CurrentTick(), "digest", space.Journal().Digest(), "meanMs", mean, "stdDevMs", stdDev)
			return
		case <-ticker.C:
			if space.CurrentTick()%10 == 0 {
				throw(space, space.CurrentTick())
			}
			if err := space.Tick(conf.TickDuration(), w); err != nil {
				log.Error("tick failed", "err", err)
			}
			if tick := space.CurrentTick(); tick%100 == 0 {
				mean, stdDev := space.TickTimings()
				log.Info("tick timings", "tick", tick, "bodies", space.Len(), "meanMs", mean, "stdDevMs", stdDev)
			}
		}
	}
}

// throw spawns a new arrow aimed at the wall, an ender pearl and an item, spread according to the tick
// passed.
func throw(space *simulation.Space, tick int64) {
	origin := mgl64.Vec3{0.5, 66, 0.5}

	target := mgl32.Vec3{24, 67, float32(tick%64)/2 - 16}
	yaw, pitch := game.RotationToPoint(game.Vec64To32(origin), target)
	space.Spawn(entity.ArrowConfig(origin, game.DirectionVector(yaw, pitch).Mul(30)))

	spread := float32(tick % 360)
	space.Spawn(entity.EnderPearlConfig(origin, game.DirectionVector(spread, -20).Mul(18)))

	item := entity.ItemConfig(origin, entity.ItemDropVelocity(spread+90, 0))
	item.Collidable = true
	space.Spawn(item)
}

// newLogger creates the logger described by the logging settings passed.
func newLogger(conf settings.Settings) *slog.Logger {
	opts := &slog.HandlerOptions{Level: conf.LogLevel()}
	if conf.Logging.Format == "json" {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}

// logHandler logs the events of the arena and removes bodies once they stopped moving.
type logHandler struct {
	event.NopHandler

	log   *slog.Logger
	space *simulation.Space
}

func (h *logHandler) HandleBlockCollision(ev event.BlockCollisionEvent) {
	h.log.Debug("block collision", "tick", ev.Tick(), "entity", ev.Entity, "block", ev.Block, "face", ev.Face)
}

func (h *logHandler) HandleEntityCollision(ev event.EntityCollisionEvent) {
	h.log.Debug("entity collision", "tick", ev.Tick(), "entity", ev.Entity, "other", ev.Other)
}

func (h *logHandler) HandlePhysicsStopped(ev event.PhysicsStoppedEvent) {
	h.log.Debug("physics stopped", "tick", ev.Tick(), "entity", ev.Entity, "reason", ev.Reason)
	h.space.Remove(ev.Entity)
}

func (h *logHandler) HandleTick(ev event.TickEvent) {
	h.log.Debug("tick", "tick", ev.Tick(), "bodies", ev.Bodies, "active", ev.Active)
}
