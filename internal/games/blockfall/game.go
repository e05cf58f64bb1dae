// Package blockfall adapts the engine to the arcade platform: it loads the
// YAML config, maps platform actions to engine commands, drives the drop
// timer from fixed ticks and logs what happens in a session.
package blockfall

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/games/blockfall/engine"
	"github.com/vovakirdan/blockfall/internal/registry"
)

// Variant selects which special blocks can appear.
type Variant string

const (
	VariantFull    Variant = "blockfall"         // bombs, lasers and extruders
	VariantClassic Variant = "blockfall_classic" // plain tetrominoes only
	VariantBombs   Variant = "blockfall_bombs"   // bombs only
)

// Variants lists every registered variant in menu order.
func Variants() []Variant {
	return []Variant{VariantFull, VariantBombs, VariantClassic}
}

// Title returns the display name of the variant.
func (v Variant) Title() string {
	switch v {
	case VariantClassic:
		return "Blockfall (Classic)"
	case VariantBombs:
		return "Blockfall (Bombs)"
	default:
		return "Blockfall"
	}
}

// Description returns a one-line summary for listings and the menu.
func (v Variant) Description() string {
	switch v {
	case VariantClassic:
		return "Falling blocks without special pieces"
	case VariantBombs:
		return "Bombs only: clear a 3x3 area a few pieces after landing"
	default:
		return "Bombs, lasers and extruders mixed into the stream"
	}
}

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// logger receives session events; discarded unless the CLI sets one.
var logger = log.New(io.Discard)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil || preset == "" {
		difficultyPreset = ""
		return
	}
	difficultyPreset = p
}

// SetLogger sets the logger used by games created afterwards.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

func init() {
	for _, v := range Variants() {
		registry.Register(registry.GameInfo{
			ID:          string(v),
			Title:       v.Title(),
			Description: v.Description(),
		}, func() registry.Game {
			return New(v)
		})
	}
}

// Game implements registry.Game on top of an engine.Session.
type Game struct {
	variant Variant
	session *engine.Session
	rules   engine.Config

	// Configuration
	runtime     core.RuntimeConfig
	cfg         config.BlockfallConfig
	difficulty  *config.DifficultyManager
	minInterval time.Duration

	// Game state flags
	tick     uint64
	paused   bool
	tooSmall bool

	layout layout
	log    *log.Logger
}

// New creates a game for the given variant. Reset must be called before use.
func New(v Variant) *Game {
	return &Game{variant: v, log: logger}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return string(g.variant)
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.variant.Title()
}

// Reset loads the configuration and starts a fresh session.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.runtime = rc
	g.log = logger.With("game", g.ID())

	cfg, err := config.LoadBlockfall(configPath)
	if err != nil {
		g.log.Warn("using default config", "err", err)
		cfg = config.DefaultBlockfallConfig()
	}
	if difficultyPreset != "" {
		config.ApplyBlockfallPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg

	rules := engineConfig(cfg, g.variant)
	if err := rules.Validate(); err != nil {
		g.log.Warn("invalid rules, using defaults", "err", err)
		g.cfg = config.DefaultBlockfallConfig()
		rules = engineConfig(g.cfg, g.variant)
	}
	g.rules = rules

	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
	g.minInterval = time.Duration(g.cfg.Timing.MinDropIntervalMs) * time.Millisecond

	session, err := engine.NewSession(rules, rand.New(rand.NewSource(rc.Seed)))
	if err != nil {
		// rules were validated above
		g.log.Error("cannot start session", "err", err)
		return
	}
	g.session = session

	g.tick = 0
	g.paused = false
	g.layout = computeLayout(rules.Width, rules.Height, rc.ScreenW, rc.ScreenH)
	g.tooSmall = !g.layout.fits

	g.log.Info("session started",
		"session", session.ID(),
		"seed", rc.Seed,
		"width", rules.Width,
		"height", rules.Height,
		"difficulty", string(difficultyPreset),
	)
	g.logEvents()
}

// Resize adapts the layout to a new screen size without restarting.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
	g.layout = computeLayout(g.rules.Width, g.rules.Height, w, h)
	g.tooSmall = !g.layout.fits
}

// Step applies the queued actions in arrival order, then advances the drop
// timer by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.session == nil {
		return core.StepResult{State: g.State()}
	}
	g.tick++

	for _, a := range in.Ordered() {
		switch a {
		case core.ActionRestart:
			g.restart()
		case core.ActionPause:
			g.paused = !g.paused
		default:
			if g.paused || g.tooSmall {
				continue
			}
			if cmd, ok := commandFor(a); ok {
				g.session.Apply(cmd)
			}
		}
	}

	if !g.paused && !g.tooSmall {
		g.session.SetDropInterval(g.difficulty.DropInterval(
			g.rules.DropInterval, g.minInterval, g.session.Score(), int(g.tick)))
		g.session.Advance(g.runtime.TickDuration())
	}

	g.logEvents()
	return core.StepResult{State: g.State()}
}

// restart is the explicit reset: same rules and random stream, new session id.
func (g *Game) restart() {
	g.session.Reset()
	g.tick = 0
	g.paused = false
}

// State returns the current game state. The game never ends: a full field
// is wiped and play continues.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:  g.session.Score(),
		Paused: g.paused || g.tooSmall,
	}
}

// commandFor maps a platform action to an engine command.
func commandFor(a core.Action) (engine.Command, bool) {
	switch a {
	case core.ActionLeft:
		return engine.CommandMoveLeft, true
	case core.ActionRight:
		return engine.CommandMoveRight, true
	case core.ActionDown:
		return engine.CommandSoftDrop, true
	case core.ActionDrop:
		return engine.CommandHardDrop, true
	case core.ActionRotateCW:
		return engine.CommandRotateCW, true
	case core.ActionRotateCCW:
		return engine.CommandRotateCCW, true
	default:
		return 0, false
	}
}

// engineConfig converts the YAML config into engine rules for variant v.
func engineConfig(cfg config.BlockfallConfig, v Variant) engine.Config {
	rules := engine.Config{
		Width:               cfg.Board.Width,
		Height:              cfg.Board.Height,
		DropInterval:        time.Duration(cfg.Timing.DropIntervalMs) * time.Millisecond,
		BombTimer:           cfg.Specials.BombTimer,
		BlastRadius:         cfg.Specials.BlastRadius,
		LineScore:           cfg.Scoring.LineScore,
		BombProbability:     cfg.Specials.BombProbability,
		LaserProbability:    cfg.Specials.LaserProbability,
		ExtruderProbability: cfg.Specials.ExtruderProbability,
	}
	switch v {
	case VariantClassic:
		rules.BombProbability = 0
		rules.LaserProbability = 0
		rules.ExtruderProbability = 0
	case VariantBombs:
		rules.LaserProbability = 0
		rules.ExtruderProbability = 0
	}
	return rules
}

// logEvents drains the session's events into the logger.
func (g *Game) logEvents() {
	id := g.session.ID()
	for _, e := range g.session.Events() {
		switch e.Kind {
		case engine.EventSpawned:
			if e.Special != engine.Empty {
				g.log.Debug(e.Kind.String(), "session", id, "shape", e.Shape, "special", e.Special)
			}
		case engine.EventLocked:
			g.log.Debug(e.Kind.String(), "session", id, "shape", e.Shape, "x", e.At.X, "y", e.At.Y)
		case engine.EventBombArmed, engine.EventBombDetonated, engine.EventExtruded:
			g.log.Debug(e.Kind.String(), "session", id, "x", e.At.X, "y", e.At.Y)
		case engine.EventLaserFired:
			g.log.Debug(e.Kind.String(), "session", id, "row", e.At.Y)
		case engine.EventRowsCleared:
			g.log.Debug(e.Kind.String(), "session", id, "rows", len(e.Rows), "points", e.Points, "score", g.session.Score())
		case engine.EventTopOut:
			g.log.Info(e.Kind.String(), "session", id, "lines", g.session.Lines(), "pieces", g.session.Pieces())
		case engine.EventReset:
			g.log.Info(e.Kind.String(), "session", id)
		}
	}
}
