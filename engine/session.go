package engine

import (
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/survival-arena/collision"
	"github.com/lixenwraith/survival-arena/config"
	"github.com/lixenwraith/survival-arena/constants"
	"github.com/lixenwraith/survival-arena/core"
	"github.com/lixenwraith/survival-arena/input"
	"github.com/lixenwraith/survival-arena/physics"
	"github.com/lixenwraith/survival-arena/render"
	"github.com/lixenwraith/survival-arena/status"
)

// Demo is one game variant plugged into a Session
// Setup builds static geometry once; Spawn turns a pointer press into entities; Update runs before every step
type Demo interface {
	input.Hooks

	Name() string
	Title() string
	Help() string
	Gravity() physics.Vec2
	Bounds() physics.Bounds
	Policy() collision.Policy

	Setup(s *Session) error
	Spawn(s *Session, req input.SpawnRequest) error
	Update(s *Session)
}

// Cues receives fire-and-forget removal notifications; *audio.Player implements it
type Cues interface {
	Removed(size int)
	Toggle()
}

type nopCues struct{}

func (nopCues) Removed(int) {}
func (nopCues) Toggle()     {}

// Options are the session dependencies; zero Clock and Cues select real time and silence
type Options struct {
	Physics config.PhysicsConfig
	Canvas  render.Canvas
	Clock   Clock
	Cues    Cues
}

// Session owns the world, the entity lifecycle and the frame loop of one demo
type Session struct {
	demo   Demo
	policy collision.Policy

	world    *physics.World
	entities *Lifecycle

	camera     *input.Camera
	router     *input.Router
	translator input.Translator

	orchestrator *render.RenderOrchestrator
	palette      *render.Palette
	overlay      *render.OverlayLayer

	clock Clock
	pacer *Pacer
	cues  Cues

	dt               float64
	velIter, posIter int

	stats    *status.Registry
	frames   *status.Counter
	spawned  *status.Counter
	removed  *status.Counter
	contacts *status.Counter
	rejected *status.Counter
	fps      *status.Gauge
	sleepMs  *status.Gauge
	adjustMs *status.Gauge
	workMs   *status.Gauge

	frame      uint64
	quit       bool
	tearDown   bool
	lastStatus time.Time
}

// NewSession wires a demo to a fresh world and runs its Setup
func NewSession(demo Demo, opts Options) (*Session, error) {
	if opts.Canvas == nil {
		return nil, fmt.Errorf("session %s: nil canvas", demo.Name())
	}
	if opts.Clock == nil {
		opts.Clock = NewTimeProvider()
	}
	if opts.Cues == nil {
		opts.Cues = nopCues{}
	}

	world := physics.NewWorld(demo.Gravity())
	cols, rows := opts.Canvas.Size()
	camera := input.NewCamera(cols, rows)
	stats := status.NewRegistry()

	s := &Session{
		demo:         demo,
		policy:       demo.Policy(),
		world:        world,
		entities:     NewLifecycle(world, demo.Bounds()),
		camera:       camera,
		router:       input.NewRouter(camera),
		orchestrator: render.NewRenderOrchestrator(opts.Canvas),
		palette:      render.NewPalette(constants.MaxSize),
		overlay:      render.NewOverlayLayer(),
		clock:        opts.Clock,
		pacer:        NewPacer(time.Second / time.Duration(opts.Physics.FrameRate)),
		cues:         opts.Cues,
		dt:           opts.Physics.TimeStep(),
		velIter:      opts.Physics.VelocityIterations,
		posIter:      opts.Physics.PositionIterations,

		stats:    stats,
		frames:   stats.Counter(status.Frames),
		spawned:  stats.Counter(status.Spawned),
		removed:  stats.Counter(status.Removed),
		contacts: stats.Counter(status.Contacts),
		rejected: stats.Counter(status.Rejected),
		fps:      stats.Gauge(status.FPS),
		sleepMs:  stats.Gauge(status.SleepMs),
		adjustMs: stats.Gauge(status.AdjustMs),
		workMs:   stats.Gauge(status.WorkMs),
	}

	s.orchestrator.Register(render.NewWorldLayer(), render.PriorityWorld)
	s.orchestrator.Register(s.overlay, render.PriorityOverlay)

	world.SetContactListener(s.onContact)
	s.entities.SetRemoveHook(s.onRemove)

	if err := demo.Setup(s); err != nil {
		return nil, fmt.Errorf("session %s setup: %w", demo.Name(), err)
	}
	log.Printf("[session] %s started, policy=%s timing=%s", demo.Name(), s.policy.Name(), s.policy.Timing())
	return s, nil
}

// onContact runs inside Step; policies only mark
func (s *Session) onContact(c physics.Contact) {
	if c.Phase == physics.ContactBegin {
		s.contacts.Inc()
	}
	s.policy.Resolve(c, s.entities)
}

func (s *Session) onRemove(e core.Entity, c Character) {
	s.removed.Inc()
	if !s.tearDown && c.Kind == physics.BodyDynamic {
		s.cues.Removed(c.Size)
	}
}

// World returns the physics world
func (s *Session) World() *physics.World {
	return s.world
}

// Entities returns the lifecycle manager
func (s *Session) Entities() *Lifecycle {
	return s.entities
}

// Camera returns the screen/world projection
func (s *Session) Camera() *input.Camera {
	return s.camera
}

// Stats returns the metrics registry
func (s *Session) Stats() *status.Registry {
	return s.stats
}

// Pacer returns the frame pacer
func (s *Session) Pacer() *Pacer {
	return s.pacer
}

// FrameNumber returns the number of completed frames
func (s *Session) FrameNumber() uint64 {
	return s.frame
}

// RequestQuit ends Run after the current frame
func (s *Session) RequestQuit() {
	s.quit = true
}

// Quitting reports whether a quit was requested
func (s *Session) Quitting() bool {
	return s.quit
}

// Spawn creates an entity and counts the outcome
func (s *Session) Spawn(p SpawnParams) (core.Entity, error) {
	e, err := s.entities.Spawn(p)
	if err != nil {
		s.rejected.Inc()
		return core.NoEntity, err
	}
	s.spawned.Inc()
	return e, nil
}

// Clear marks every dynamic entity; they are swept under the demo's timing
func (s *Session) Clear() int {
	n := 0
	s.entities.Each(func(e core.Entity, c Character) {
		if c.Kind == physics.BodyDynamic && !c.Marked {
			s.entities.Mark(e)
			n++
		}
	})
	log.Printf("[session] cleared %d entities", n)
	return n
}

// HandleEvent applies one translated input event
func (s *Session) HandleEvent(ev input.Event) {
	switch ev.Type {
	case input.EventPointerDown:
		req := s.router.OnPointerDown(ev.Col, ev.Row)
		if err := s.demo.Spawn(s, req); err != nil {
			log.Printf("[session] spawn at cell (%d,%d) rejected: %v", ev.Col, ev.Row, err)
		}

	case input.EventPointerMove:
		s.demo.OnPointerMove(s.router.PointerWorld(ev.Col, ev.Row))

	case input.EventKey:
		switch ev.Key.Intent {
		case input.IntentQuit:
			s.quit = true
		case input.IntentToggleAudio:
			s.cues.Toggle()
		case input.IntentClear:
			s.Clear()
		}
		s.demo.OnKey(ev.Key)

	case input.EventResize:
		s.camera.Resize(ev.Col, ev.Row)
	}
}

// Frame runs one simulation frame: input, update, step with contact resolution, removal, render
// Returns false once a quit was requested
func (s *Session) Frame(events []input.Event) bool {
	for _, ev := range events {
		s.HandleEvent(ev)
	}
	if s.quit {
		return false
	}

	s.demo.Update(s)

	timing := s.policy.Timing()
	if timing == collision.SweepNextFrame {
		s.entities.Sweep()
	}

	s.world.Step(s.dt, s.velIter, s.posIter)
	s.entities.Cull(s.demo.Bounds())

	if timing == collision.SweepSameFrame {
		s.entities.Sweep()
	}

	s.frame++
	s.frames.Inc()
	s.render()
	return true
}

func (s *Session) render() {
	s.orchestrator.RenderFrame(render.RenderContext{
		Frame:     s.frame,
		World:     s.world,
		Projector: s.camera,
		Style:     s.styleFor,
		Panel:     s.panel(),
	})
}

func (s *Session) styleFor(o physics.Outline) tcell.Style {
	if !o.Owner.Valid() {
		return s.palette.Static()
	}
	c, ok := s.entities.Get(o.Owner)
	if !ok {
		return s.palette.Static()
	}
	return s.palette.Style(c.Kind, c.Size, c.Marked)
}

func (s *Session) panel() render.Panel {
	return render.Panel{
		Title: s.demo.Name(),
		Lines: []string{
			fmt.Sprintf("entities %d  bodies %d", s.entities.Len(), s.world.BodyCount()),
			fmt.Sprintf("fps %.1f  sleep %.2fms", s.fps.Get(), s.sleepMs.Get()),
			fmt.Sprintf("adjust %+.2fms", s.adjustMs.Get()),
			fmt.Sprintf("spawned %d  removed %d", s.spawned.Get(), s.removed.Get()),
			fmt.Sprintf("rule %s", s.policy.Name()),
		},
		Help: s.demo.Help(),
	}
}

// drain translates every queued terminal event without blocking
// A closed channel means the terminal is gone and ends the session
func (s *Session) drain(events <-chan tcell.Event, out []input.Event) []input.Event {
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				s.quit = true
				return out
			}
			if e, ok := s.translator.Translate(ev); ok {
				out = append(out, e)
			}
		default:
			return out
		}
	}
}

// Run drives frames until quit; the pacing sleep is the only blocking point
func (s *Session) Run(events <-chan tcell.Event) {
	pending := make([]input.Event, 0, constants.EventQueueSize)

	for {
		start := s.clock.Now()
		pending = s.drain(events, pending[:0])
		if !s.Frame(pending) {
			log.Printf("[session] %s quit after %d frames", s.demo.Name(), s.frame)
			return
		}

		work := s.clock.Now().Sub(start)
		sleep := s.pacer.SleepFor(work)
		if sleep > 0 {
			s.clock.Sleep(sleep)
		}
		frame := s.clock.Now().Sub(start)
		s.pacer.Settle(frame)
		s.record(work, sleep, frame)

		if s.quit {
			log.Printf("[session] %s quit after %d frames", s.demo.Name(), s.frame)
			return
		}
	}
}

func (s *Session) record(work, sleep, frame time.Duration) {
	if frame > 0 {
		s.fps.Set(float64(time.Second) / float64(frame))
	}
	s.workMs.Set(ms(work))
	s.sleepMs.Set(ms(sleep))
	s.adjustMs.Set(ms(s.pacer.Adjust()))

	now := s.clock.Now()
	if now.Sub(s.lastStatus) >= 10*time.Second {
		s.lastStatus = now
		log.Printf("[session] frame=%d entities=%d fps=%.1f adjust=%.2fms removed=%d",
			s.frame, s.entities.Len(), s.fps.Get(), s.adjustMs.Get(), s.removed.Get())
	}
}

// Close removes every entity and its body
func (s *Session) Close() {
	s.tearDown = true
	n := s.entities.Reset()
	log.Printf("[session] %s closed, %d entities released", s.demo.Name(), n)
}

func ms(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
