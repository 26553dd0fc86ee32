package game

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/stonefall/internal/gamedata"
	"github.com/samdwyer/stonefall/internal/input"
	"github.com/samdwyer/stonefall/internal/logger"
	"github.com/samdwyer/stonefall/internal/telemetry"
	"github.com/samdwyer/stonefall/internal/ui"
	"github.com/samdwyer/stonefall/internal/world"
)

// Game holds the entire session state.
type Game struct {
	cfg      Config
	screen   *ui.Screen
	renderer *ui.Renderer
	level    *gamedata.LevelDef
	keys     *world.KeyRegistry
	grid     *world.Grid
	queue    *input.Queue
	state    State
	tick     uint64
	log      *logrus.Entry
}

// New creates a game on the terminal.
func New(cfg Config) (*Game, error) {
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}
	g, err := NewWithScreen(cfg, screen)
	if err != nil {
		screen.Close()
		return nil, err
	}
	return g, nil
}

// NewWithScreen creates a game drawing to the given screen.
// It loads the embedded data and builds the configured level.
func NewWithScreen(cfg Config, screen *ui.Screen) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	levels, err := gamedata.LoadLevelRegistry()
	if err != nil {
		return nil, fmt.Errorf("loading levels: %w", err)
	}
	level := levels.First()
	if cfg.LevelID != "" {
		level = levels.GetByID(cfg.LevelID)
		if level == nil {
			return nil, fmt.Errorf("unknown level %q", cfg.LevelID)
		}
	}

	keys, err := gamedata.LoadKeyRegistry()
	if err != nil {
		return nil, fmt.Errorf("loading keys: %w", err)
	}
	palette, err := gamedata.LoadPalette(keys)
	if err != nil {
		return nil, fmt.Errorf("loading palette: %w", err)
	}

	grid, err := level.Build(keys, cfg.Rules())
	if err != nil {
		return nil, fmt.Errorf("level %q: %w", level.ID, err)
	}

	return &Game{
		cfg:      cfg,
		screen:   screen,
		renderer: ui.NewRenderer(screen, palette, cfg.CellWidth),
		level:    level,
		keys:     keys,
		grid:     grid,
		queue:    input.NewQueue(),
		state:    StatePlaying,
		log: logger.Log.WithFields(logrus.Fields{
			"session": telemetry.SessionID(),
			"level":   level.ID,
		}),
	}, nil
}

// Grid returns the current grid.
func (g *Game) Grid() *world.Grid {
	return g.grid
}

// Queue returns the command queue fed by the input goroutine.
func (g *Game) Queue() *input.Queue {
	return g.queue
}

// State returns the session state.
func (g *Game) State() State {
	return g.state
}

// Tick returns the number of ticks simulated since the level started.
func (g *Game) Tick() uint64 {
	return g.tick
}

// Run executes the main game loop until the player quits or ctx is done.
func (g *Game) Run(ctx context.Context) error {
	tracer := telemetry.Tracer("game")
	_, initSpan := tracer.Start(ctx, "game.init")
	initSpan.SetAttributes(
		attribute.String("session.id", telemetry.SessionID()),
		attribute.String("level.id", g.level.ID),
		attribute.Int("grid.width", g.grid.Width),
		attribute.Int("grid.height", g.grid.Height),
		attribute.Int("tick.rate", g.cfg.TicksPerSecond),
	)
	initSpan.End()

	g.log.WithField("tps", g.cfg.TicksPerSecond).Info("game started")

	done := make(chan struct{})
	defer close(done)
	events := make(chan tcell.Event, 16)
	go g.pollEvents(events, done)

	interval := g.cfg.TickInterval()
	timer := time.NewTimer(interval)
	defer timer.Stop()

	g.render()
	for g.state != StateStopped {
		select {
		case <-ctx.Done():
			g.state = StateStopped

		case ev, ok := <-events:
			if !ok {
				events = nil
				continue
			}
			g.handleEvent(ctx, ev)

		case <-timer.C:
			start := time.Now()
			g.Step(ctx)
			g.render()
			timer.Reset(nextDelay(interval, time.Since(start)))
		}
	}

	g.log.WithField("tick", g.tick).Info("game stopped")
	g.screen.Close()
	return nil
}

// pollEvents moves commands into the queue and forwards every other event
// to the loop. It returns once the screen is closed.
func (g *Game) pollEvents(events chan<- tcell.Event, done <-chan struct{}) {
	defer close(events)
	for {
		ev := g.screen.PollEvent()
		if ev == nil {
			return
		}
		if key, ok := ev.(*tcell.EventKey); ok {
			if cmd, ok := input.FromKey(key); ok {
				g.queue.Push(cmd)
				continue
			}
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

// handleEvent processes host controls: quit, pause, restart and resize.
func (g *Game) handleEvent(ctx context.Context, ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.handleKeyEvent(ctx, ev)
	case *tcell.EventResize:
		g.screen.Sync()
	}
}

func (g *Game) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		g.state = StateStopped
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			g.state = StateStopped
		case 'p', 'P':
			g.TogglePause()
		case 'r', 'R':
			if err := g.Restart(ctx); err != nil {
				g.log.WithError(err).Error("restart failed")
			}
		}
	}
}

// Step runs one tick: drain the queue newest-first, then update the grid.
// While paused the queued commands are dropped.
func (g *Game) Step(ctx context.Context) world.StepResult {
	cmds := g.queue.Drain()
	if g.state != StatePlaying {
		return world.StepResult{}
	}

	res := g.grid.Step(cmds)
	g.tick++

	if res.Commands > 0 || res.LocksOpened > 0 {
		g.traceStep(ctx, res)
	}
	if res.LocksOpened > 0 {
		g.log.WithFields(logrus.Fields{
			"tick":  g.tick,
			"locks": res.LocksOpened,
		}).Info("key picked up")
	}
	if res.Changed() {
		g.log.WithFields(logrus.Fields{
			"tick":  g.tick,
			"moves": res.Moves,
			"falls": res.Falls,
		}).Debug("grid changed")
	}

	if g.cfg.Debug {
		if err := g.grid.Validate(); err != nil {
			g.log.WithError(err).WithField("tick", g.tick).Error("grid invariant broken")
		}
	}
	return res
}

func (g *Game) traceStep(ctx context.Context, res world.StepResult) {
	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "game.step")
	defer span.End()

	p := g.grid.Player()
	span.SetAttributes(
		attribute.Int64("tick", int64(g.tick)),
		attribute.Int("commands", res.Commands),
		attribute.Int("moves", res.Moves),
		attribute.Int("falls", res.Falls),
		attribute.Int("locks_opened", res.LocksOpened),
		attribute.Int("player.x", p.X),
		attribute.Int("player.y", p.Y),
	)
}

// TogglePause switches between playing and paused.
func (g *Game) TogglePause() {
	switch g.state {
	case StatePlaying:
		g.state = StatePaused
	case StatePaused:
		g.state = StatePlaying
	}
	g.log.WithField("state", g.state.String()).Info("pause toggled")
}

// Restart rebuilds the level from its initial layout.
func (g *Game) Restart(ctx context.Context) error {
	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "game.restart")
	span.SetAttributes(
		attribute.String("level.id", g.level.ID),
		attribute.Int64("ticks_played", int64(g.tick)),
	)
	defer span.End()

	grid, err := g.level.Build(g.keys, g.cfg.Rules())
	if err != nil {
		span.RecordError(err)
		return err
	}

	g.grid = grid
	g.queue.Clear()
	g.tick = 0
	if g.state == StatePaused {
		g.state = StatePlaying
	}
	g.log.Info("level restarted")
	return nil
}

func (g *Game) render() {
	g.renderer.Render(g.grid, ui.Status{
		Level:  g.level.Name,
		Tick:   g.tick,
		Paused: g.state == StatePaused,
	})
}

// nextDelay returns how long to wait before the next tick so that ticks start
// interval apart, less the time the last tick took.
func nextDelay(interval, elapsed time.Duration) time.Duration {
	if d := interval - elapsed; d > 0 {
		return d
	}
	return 0
}
