package runner

import (
	"context"
	"sort"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/appengine-ltd/sail-it/internal/game"
	"github.com/appengine-ltd/sail-it/internal/parser"
	"github.com/appengine-ltd/sail-it/internal/recorder"
)

// Options configure a voyage run.
type Options struct {
	Run    game.RunConfig
	Script []ScriptedOrder

	// PaceRealTime holds each tick to the simulation rate instead of
	// advancing as fast as the host allows.
	PaceRealTime bool

	// MaxTicks caps the run. Zero means ten minutes of simulated time.
	MaxTicks uint64

	// Recorder, when set, receives every snapshot. The runner opens and
	// closes the voyage row around the loop.
	Recorder *recorder.Recorder

	Log zerolog.Logger
}

const defaultMaxTicks = 10 * 60 * game.TicksPerSecond

// Runner drives a world tick by tick, feeding scripted orders through the
// helm parser at their scheduled ticks.
type Runner struct {
	opts   Options
	world  *game.World
	parser *parser.Parser
	log    zerolog.Logger
}

func New(opts Options) (*Runner, error) {
	world, err := game.NewWorld(opts.Run)
	if err != nil {
		return nil, err
	}
	if opts.MaxTicks == 0 {
		opts.MaxTicks = defaultMaxTicks
	}

	return &Runner{
		opts:   opts,
		world:  world,
		parser: parser.New(),
		log:    opts.Log,
	}, nil
}

// World exposes the live world, mainly for the interactive console.
func (r *Runner) World() *game.World {
	return r.world
}

// Run advances the world until MaxTicks or the context ends, whichever
// comes first. The final snapshot is returned so callers can report or
// persist the outcome.
func (r *Runner) Run(ctx context.Context) (game.WorldSnapshot, error) {
	pending := append([]ScriptedOrder(nil), r.opts.Script...)

	var limiter *rate.Limiter
	if r.opts.PaceRealTime {
		limiter = rate.NewLimiter(rate.Limit(game.TicksPerSecond), game.TicksPerSecond)
	}

	snap := r.world.Snapshot()
	if r.opts.Recorder != nil {
		if err := r.opts.Recorder.Begin(r.world.Scenario, r.world.Config.Seed); err != nil {
			return snap, err
		}
	}

	r.log.Info().
		Str("scenario", string(r.world.Scenario.ID)).
		Int64("seed", r.world.Config.Seed).
		Uint64("max_ticks", r.opts.MaxTicks).
		Msg("voyage under way")

	for tick := uint64(1); tick <= r.opts.MaxTicks; tick++ {
		if ctx.Err() != nil {
			break
		}
		if limiter != nil {
			if err := limiter.Wait(ctx); err != nil {
				break
			}
		}

		var input game.PlayerInput
		for len(pending) > 0 && pending[0].Tick <= tick {
			order := pending[0]
			pending = pending[1:]
			input.Commands = append(input.Commands, r.translateOrder(order)...)
		}

		snap = r.world.Advance(input)
		r.logEvents(snap)
		if r.opts.Recorder != nil {
			r.opts.Recorder.Observe(snap)
		}
	}

	if r.opts.Recorder != nil {
		if err := r.opts.Recorder.Close(snap); err != nil {
			return snap, err
		}
	}

	r.log.Info().
		Uint64("tick", snap.Tick).
		Int64("funds", snap.Funds).
		Float64("cargo_kg", snap.CargoWeightKg).
		Msg("voyage complete")

	return snap, nil
}

// translateOrder parses one scripted console line. Scripts cannot answer
// questions, so anything the parser would ask about is skipped with a
// warning instead.
func (r *Runner) translateOrder(order ScriptedOrder) []game.Command {
	intent := r.parser.Parse(r.parseContext(), order.Raw)
	if intent.Clarify != nil {
		r.log.Warn().
			Uint64("tick", order.Tick).
			Str("order", order.Raw).
			Str("question", intent.Clarify.Prompt).
			Msg("ambiguous scripted order skipped")
		return nil
	}
	if intent.Kind != parser.Command {
		return nil
	}

	commands, err := CommandsForIntent(intent, r.world.Tuning)
	if err != nil {
		r.log.Warn().
			Uint64("tick", order.Tick).
			Str("order", order.Raw).
			Err(err).
			Msg("scripted order skipped")
		return nil
	}
	return commands
}

func (r *Runner) parseContext() parser.ParseContext {
	return parser.ParseContext{
		Gear:   []string{"pole", "trawl"},
		Refits: []string{"sail", "hull"},
		Hold:   holdSpecies(r.world),
	}
}

func holdSpecies(w *game.World) []string {
	names := make([]string, 0, len(w.Vessel.Cargo))
	for id := range w.Vessel.Cargo {
		names = append(names, string(id))
	}
	sort.Strings(names)
	return names
}

func (r *Runner) logEvents(snap game.WorldSnapshot) {
	for _, event := range snap.Events {
		entry := r.log.Info()
		if event.Kind == game.EventRefused {
			entry = r.log.Warn()
		}
		entry.Uint64("tick", snap.Tick).Str("kind", string(event.Kind)).Msg(event.Message)
	}
}
