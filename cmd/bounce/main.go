package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"github.com/lixenwraith/bounce/audio"
	"github.com/lixenwraith/bounce/config"
	"github.com/lixenwraith/bounce/constants"
	"github.com/lixenwraith/bounce/core"
	"github.com/lixenwraith/bounce/engine"
	"github.com/lixenwraith/bounce/events"
	"github.com/lixenwraith/bounce/input"
	"github.com/lixenwraith/bounce/render"
	"github.com/lixenwraith/bounce/systems"
)

var (
	configFlag = flag.String("config", "", "Path to TOML config (default $BOUNCE_CONFIG, then bounce.toml)")
	debugFlag  = flag.Bool("debug", false, "Write a debug log under logs/")
	muteFlag   = flag.Bool("mute", false, "Start with sound muted")
	ballsFlag  = flag.Int("balls", -1, "Initial ball count (default from config)")
	seedFlag   = flag.Uint64("seed", 0, "Spawn random seed, 0 picks one")
	dumpFlag   = flag.Bool("dump-config", false, "Print the effective config as TOML and exit")
)

func main() {
	flag.Parse()

	if err := run(); err != nil {
		var ce *crashError
		if errors.As(err, &ce) {
			fmt.Fprintf(os.Stderr, "\n\x1b[31mBOUNCE CRASHED: %v\x1b[0m\n", ce.value)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", ce.stack)
		} else {
			fmt.Fprintf(os.Stderr, "bounce: %v\n", err)
		}
		os.Exit(1)
	}
}

func run() error {
	if err := config.LoadDotEnv(); err != nil {
		return err
	}

	cfg, err := config.Load(configPath())
	if err != nil {
		return err
	}
	applyFlags(cfg)

	if *dumpFlag {
		return dumpConfig(os.Stdout, cfg)
	}

	if logFile := setupLogging(cfg.Debug, logDir); logFile != nil {
		defer logFile.Close()
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("stdout is not a terminal")
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	screen.EnableMouse()

	var finiOnce sync.Once
	finish := func() { finiOnce.Do(screen.Fini) }
	defer finish()

	sound := audio.NewSoundManager()
	if err := sound.Initialize(); err != nil {
		slog.Warn("audio initialization failed, continuing without sound", "err", err)
	}
	defer sound.Cleanup()
	sound.SetMuted(cfg.Audio.Muted)

	observers := engine.Observers{sound, logObserver{}}
	game := systems.NewGame(cfg.Simulation(), cfg.Tunables(), observers, newRand(*seedFlag))

	width, height := screen.Size()
	layout := input.NewLayout(width, height)
	queue := events.NewEventQueue()

	handler := input.NewHandler(layout, queue)
	handler.SetMuteToggle(sound.ToggleMute)
	handler.Muted = sound.IsMuted()
	handler.Announce()

	for range cfg.Spawn.Initial {
		game.Spawn()
	}

	slog.Info("started",
		"screen_w", width, "screen_h", height,
		"balls", cfg.Spawn.Initial,
		"gravity", cfg.Physics.Gravity,
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	eventChan := make(chan tcell.Event, 256)
	eg, ctx := errgroup.WithContext(ctx)
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Input polling interacts directly with the terminal; PollEvent returns nil after Fini
	eg.Go(func() error {
		return guard(finish, func() error {
			for {
				ev := screen.PollEvent()
				if ev == nil {
					return nil
				}
				select {
				case eventChan <- ev:
				case <-ctx.Done():
					return nil
				}
			}
		})
	})

	// Game loop stays on this goroutine
	loop := &gameLoop{
		game:      game,
		env:       input.NewCollector(queue, layout),
		handler:   handler,
		layout:    layout,
		renderer:  render.NewTerminalRenderer(screen),
		eventChan: eventChan,
	}
	loopErr := guard(finish, func() error { return loop.run(ctx) })

	cancel()
	finish()
	return errors.Join(loopErr, eg.Wait())
}

// gameLoop owns the tick/render cadence on a single goroutine
// Physics ticks at a fixed step; rendering shows the latest result plus removals since the last frame
type gameLoop struct {
	game      *engine.Game
	env       engine.Environment
	handler   *input.Handler
	layout    *input.Layout
	renderer  *render.TerminalRenderer
	eventChan <-chan tcell.Event

	latest  engine.TickResult
	removed []core.Entity
}

func (l *gameLoop) run(ctx context.Context) error {
	gameTicker := time.NewTicker(constants.GameUpdateInterval)
	defer gameTicker.Stop()
	frameTicker := time.NewTicker(constants.FrameUpdateInterval)
	defer frameTicker.Stop()

	l.tick()
	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-l.eventChan:
			if !l.handler.HandleEvent(ev) {
				slog.Info("quit requested")
				return nil
			}

		case <-gameTicker.C:
			l.tick()

		case <-frameTicker.C:
			frame := l.latest
			frame.Removed = l.removed
			l.renderer.RenderFrame(frame, l.layout.Box(), render.UIState{
				Wireframe: l.handler.Wireframe,
				Muted:     l.handler.Muted,
			})
			l.removed = l.removed[:0]
		}
	}
}

// tick advances one fixed step; a missed ticker fire slows the simulation rather than stretching dt
func (l *gameLoop) tick() {
	res := l.game.Tick(constants.GameUpdateInterval, l.env)
	l.removed = append(l.removed, res.Removed...)
	l.latest = res
}

// logObserver records ball lifecycle to the debug log
type logObserver struct{}

func (logObserver) BallSpawned(e core.Entity) {
	slog.Debug("ball spawned", "entity", e)
}

func (logObserver) BallBounced(core.Entity, float64) {}

func (logObserver) BallRemoved(e core.Entity) {
	slog.Debug("ball settled", "entity", e)
}

// dumpConfig writes the effective config, after env and flags, as TOML
func dumpConfig(w io.Writer, cfg *config.File) error {
	data, err := config.Encode(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	_, err = w.Write(data)
	return err
}

// configPath resolves -config, then BOUNCE_CONFIG, then the default file name
func configPath() string {
	if *configFlag != "" {
		return *configFlag
	}
	if p := os.Getenv(config.EnvConfigPath); p != "" {
		return p
	}
	return config.DefaultPath
}

func applyFlags(cfg *config.File) {
	if *debugFlag {
		cfg.Debug = true
	}
	if *muteFlag {
		cfg.Audio.Muted = true
	}
	if *ballsFlag >= 0 {
		cfg.Spawn.Initial = *ballsFlag
	}
}

func newRand(seed uint64) *rand.Rand {
	if seed == 0 {
		return nil
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
