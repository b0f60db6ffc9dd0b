package simulation

import (
	"log/slog"
	"time"

	"github.com/elliotchance/orderedmap/v2"
	"github.com/oomph-ac/entsim/assert"
	"github.com/oomph-ac/entsim/entity"
	"github.com/oomph-ac/entsim/event"
	"github.com/oomph-ac/entsim/game"
	"github.com/oomph-ac/entsim/utils/collisions"
	"github.com/oomph-ac/entsim/worker"
	"github.com/sasha-s/go-deadlock"
	"go.uber.org/atomic"
)

// Config holds the settings of a Space.
type Config struct {
	// Workers is the amount of goroutines bodies are simulated on. If zero, one is used per CPU.
	Workers int
	// Logger is used for warnings produced during ticks. If nil, slog.Default() is used.
	Logger *slog.Logger
	// Journal records the events of every tick. If nil, a journal keeping the last 256 events is used.
	Journal *event.Journal
	// TimingWindow is the amount of ticks tick durations are kept for. If zero, 100 is used.
	TimingWindow int
}

// Space holds a set of bodies and simulates them together, tick by tick. Bodies are simulated in parallel;
// everything a body does to the rest of the space is applied once all bodies finished, in the order the
// bodies were spawned in, so the outcome of a tick never depends on scheduling.
type Space struct {
	// tickMu is held for a whole tick, including the dispatching of events.
	tickMu deadlock.Mutex
	// mu protects bodies and handlers.
	mu deadlock.RWMutex

	bodies     *orderedmap.OrderedMap[uint64, *entity.Body]
	nextHandle atomic.Uint64
	handlers   []event.Handler

	tick    atomic.Int64
	pool    *worker.Pool
	journal *event.Journal
	timings *game.Window
	log     *slog.Logger
}

// New creates an empty space.
func (conf Config) New() *Space {
	if conf.Logger == nil {
		conf.Logger = slog.Default()
	}
	if conf.Journal == nil {
		conf.Journal = event.NewJournal(256, nil)
	}
	if conf.TimingWindow <= 0 {
		conf.TimingWindow = 100
	}
	return &Space{
		bodies:  orderedmap.NewOrderedMap[uint64, *entity.Body](),
		pool:    worker.NewPool(conf.Workers),
		journal: conf.Journal,
		timings: game.NewWindow(conf.TimingWindow),
		log:     conf.Logger,
	}
}

// Spawn creates a body from the config passed and adds it to the space.
func (s *Space) Spawn(conf entity.Config) *entity.Body {
	b := conf.New(s.nextHandle.Inc())

	s.mu.Lock()
	defer s.mu.Unlock()
	s.bodies.Set(b.Handle(), b)
	return b
}

// Remove removes the body with the handle passed. It returns false if there was no such body.
func (s *Space) Remove(handle uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bodies.Delete(handle)
}

// Body returns the body with the handle passed.
func (s *Space) Body(handle uint64) (*entity.Body, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.bodies.Get(handle)
}

// MustBody returns the body with the handle passed, and panics if there is no such body.
func (s *Space) MustBody(handle uint64) *entity.Body {
	b, ok := s.Body(handle)
	assert.IsTrue(ok, "no body with handle %d", handle)
	return b
}

// Len returns the amount of bodies in the space.
func (s *Space) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.bodies.Len()
}

// Handle adds a handler that is called with the events of every tick. Handlers are called after the
// simulation of a tick finished and may spawn and remove bodies, but must not call Tick.
func (s *Space) Handle(h event.Handler) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.handlers = append(s.handlers, h)
}

// CurrentTick returns the number of the last tick run.
func (s *Space) CurrentTick() int64 {
	return s.tick.Load()
}

// Journal returns the journal events of the space are recorded in.
func (s *Space) Journal() *event.Journal {
	return s.journal
}

// TickTimings returns the mean and standard deviation of the duration of recent ticks, in milliseconds.
func (s *Space) TickTimings() (mean, stdDev float64) {
	s.tickMu.Lock()
	defer s.tickMu.Unlock()

	samples := s.timings.Samples()
	return game.Mean(samples), game.StandardDeviation(samples)
}

// Tick advances every active body in the space by dt. Blocks are looked up in p, which may be nil for a
// space without blocks. extra holds collidables that are not bodies of the space, such as players, which
// bodies with an entity collider may hit. Their handles are reported as is in entity collisions, so
// handlers that need to tell them apart from bodies should give them handles bodies never get. All events
// of the tick are recorded and dispatched to the handlers before Tick returns. The error returned is
// non-nil if the simulation of a body panicked.
func (s *Space) Tick(dt time.Duration, p collisions.Provider, extra ...Collidable) error {
	assert.IsTrue(dt > 0, "tick duration must be positive (dt=%v)", dt)

	s.tickMu.Lock()
	defer s.tickMu.Unlock()

	start := time.Now()
	tick := s.tick.Inc()

	s.mu.RLock()
	var (
		active []*entity.Body
		others []Collidable
	)
	for el := s.bodies.Front(); el != nil; el = el.Next() {
		b := el.Value
		if b.Collidable() {
			others = append(others, Collidable{Handle: b.Handle(), Box: b.Hitbox(), Body: b})
		}
		if b.Active() {
			active = append(active, b)
		}
	}
	total := s.bodies.Len()
	handlers := append([]event.Handler(nil), s.handlers...)
	s.mu.RUnlock()
	others = append(others, extra...)

	effects := make([]Effects, len(active))
	err := s.pool.Run(len(active), func(i int) {
		effects[i] = Step(active[i], dt, p, others)
	})
	if err != nil {
		s.log.Error("body simulation panicked", "tick", tick, "err", err)
	}

	events := s.flush(tick, active, effects)
	tickEv := event.TickEvent{Bodies: int32(total), Active: int32(len(active))}
	tickEv.Stamp(tick)
	events = append(events, tickEv)
	for _, b := range active {
		b.Record(tick)
	}
	for _, ev := range events {
		if err := s.journal.Append(ev); err != nil {
			s.log.Error("unable to record event", "tick", tick, "err", err)
		}
		for _, h := range handlers {
			event.Dispatch(h, ev)
		}
	}

	s.timings.Push(float64(time.Since(start).Microseconds()) / 1000)
	return err
}

// flush applies the effects of every body in the order the bodies were passed, and returns the events
// the tick produced. A pair of bodies produces at most one entity collision per tick: the first one
// reported.
func (s *Space) flush(tick int64, bodies []*entity.Body, effects []Effects) []event.Event {
	var (
		events []event.Event
		pairs  = make(map[[2]uint64]struct{})
	)
	for i, fx := range effects {
		b := bodies[i]
		if fx.ScanErr != nil {
			s.log.Warn("broad phase scan over budget", "tick", tick, "entity", b.Handle(), "err", fx.ScanErr)
		}
		for _, ev := range fx.BlockCollisions {
			ev.Stamp(tick)
			events = append(events, ev)
		}
		for _, ev := range fx.EntityCollisions {
			pair := ev.Pair()
			if _, ok := pairs[pair]; ok {
				continue
			}
			pairs[pair] = struct{}{}
			ev.Stamp(tick)
			events = append(events, ev)
		}
		if fx.Stopped != 0 {
			b.SetActive(false)
			ev := event.PhysicsStoppedEvent{Entity: b.Handle(), Reason: fx.Stopped}
			ev.Stamp(tick)
			events = append(events, ev)
		}
	}
	return events
}

// Close stops the workers of the space.
func (s *Space) Close() {
	s.pool.Close()
}
