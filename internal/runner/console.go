package runner

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math"
	"sort"
	"strings"

	"github.com/appengine-ltd/sail-it/internal/game"
	"github.com/appengine-ltd/sail-it/internal/parser"
)

// consoleStepTicks is how far one console turn advances the world. Each
// order, and each blank line, costs one second of simulated time.
const consoleStepTicks = game.TicksPerSecond

// Console runs the interactive helm. A line is parsed, applied on the next
// tick, and followed by a second of simulation so the order's effect shows
// in the status line that comes back.
type Console struct {
	runner *Runner
	in     *bufio.Scanner
	out    io.Writer

	lastEntity string
}

func NewConsole(r *Runner, in io.Reader, out io.Writer) *Console {
	return &Console{
		runner: r,
		in:     bufio.NewScanner(in),
		out:    out,
	}
}

func (c *Console) Run(ctx context.Context) error {
	world := c.runner.World()

	if rec := c.runner.opts.Recorder; rec != nil {
		if err := rec.Begin(world.Scenario, world.Config.Seed); err != nil {
			return err
		}
		defer func() {
			if err := rec.Close(world.Snapshot()); err != nil {
				c.runner.log.Error().Err(err).Msg("failed to close voyage recording")
			}
		}()
	}

	fmt.Fprintf(c.out, "%s. %s\n", world.Scenario.Name, world.Scenario.Description)
	fmt.Fprintln(c.out, "You have the helm. \"help\" lists orders, a blank line waits a second, \"quit\" ends the voyage.")
	c.printStatus(world.Snapshot())

	for {
		if ctx.Err() != nil {
			fmt.Fprintln(c.out, "Voyage over.")
			return nil
		}

		fmt.Fprint(c.out, "> ")
		if !c.in.Scan() {
			break
		}
		line := strings.TrimSpace(c.in.Text())

		switch strings.ToLower(line) {
		case "quit", "exit":
			fmt.Fprintln(c.out, "Voyage over.")
			return nil
		case "":
			c.advance(game.PlayerInput{})
			continue
		}

		intent := c.runner.parser.Parse(c.parseContext(), line)
		if intent.Clarify != nil {
			c.printClarify(intent.Clarify)
			continue
		}

		switch intent.Kind {
		case parser.Help:
			c.printHelp()
		case parser.Query:
			c.printQuery(intent, world.Snapshot())
		case parser.Command:
			c.rememberEntity(intent)
			commands, err := CommandsForIntent(intent, world.Tuning)
			if err != nil {
				fmt.Fprintln(c.out, err)
				continue
			}
			c.advance(game.PlayerInput{Commands: commands})
		}
	}
	return c.in.Err()
}

// advance runs one console turn. The order lands on the first tick, the
// rest of the second plays out with empty input.
func (c *Console) advance(input game.PlayerInput) {
	world := c.runner.World()

	var snap game.WorldSnapshot
	for i := 0; i < consoleStepTicks; i++ {
		snap = world.Advance(input)
		input = game.PlayerInput{}
		if rec := c.runner.opts.Recorder; rec != nil {
			rec.Observe(snap)
		}
		for _, event := range snap.Events {
			fmt.Fprintln(c.out, event.Message)
		}
	}
	c.printStatus(snap)
}

func (c *Console) parseContext() parser.ParseContext {
	ctx := c.runner.parseContext()
	ctx.LastEntity = c.lastEntity
	return ctx
}

// rememberEntity keeps the most recent gear or refit word so a following
// "stow it" resolves.
func (c *Console) rememberEntity(intent parser.Intent) {
	switch intent.Verb {
	case "cast":
		c.lastEntity = "pole"
	case "trawl":
		c.lastEntity = "trawl"
	case "upgrade":
		if refit, ok := refitFromArgs(intent.Args); ok {
			c.lastEntity = refit
		}
	}
	for _, arg := range intent.Args {
		if arg == "pole" || arg == "trawl" {
			c.lastEntity = arg
		}
	}
}

func (c *Console) printClarify(q *parser.ClarifyQuestion) {
	fmt.Fprintln(c.out, q.Prompt)
	for _, option := range q.Options {
		fmt.Fprintf(c.out, "  - %s\n", parser.IntentToCommandString(option))
	}
}

func (c *Console) printStatus(snap game.WorldSnapshot) {
	v := snap.Vessel
	heading := math.Mod(v.HeadingRadians*180/math.Pi+360, 360)

	state := "under way"
	if v.Capsized {
		state = "CAPSIZED, order \"right\" when she settles"
	} else if snap.Rig.Deployed() {
		state = string(snap.Rig.Method.Kind) + " out"
	}

	fmt.Fprintf(c.out, "[%s] hdg %03.0f  speed %.1f m/s  wind %.1f m/s  heel %.0f deg  depth %.0f m  hold %.0f/%.0f kg  funds %d  (%s)\n",
		formatTickClock(snap.Tick), heading, v.Velocity.Magnitude(), snap.Wind.Speed,
		math.Abs(v.HeelRadians*180/math.Pi), snap.DepthUnderKeelM,
		snap.CargoWeightKg, snap.CargoCapacityKg, snap.Funds, state)
}

func (c *Console) printQuery(intent parser.Intent, snap game.WorldSnapshot) {
	if intent.Verb == "status" {
		c.printStatus(snap)
		return
	}

	fmt.Fprintf(c.out, "You are over %s water, %.0f m under the keel.\n", snap.Terrain, snap.DepthUnderKeelM)
	if nearest, ok := nearestHarbor(snap.Harbors); ok {
		if nearest.InRange {
			fmt.Fprintf(c.out, "%s is alongside; sell and upgrade are open.\n", nearest.Name)
		} else {
			fmt.Fprintf(c.out, "%s bears %.0f m off.\n", nearest.Name, nearest.DistanceM)
		}
	}
	if len(snap.Fish) > 0 {
		fmt.Fprintf(c.out, "%d fish shadows nearby.\n", len(snap.Fish))
	} else {
		fmt.Fprintln(c.out, "No fish showing.")
	}
	if len(snap.Vessel.Cargo) > 0 {
		parts := make([]string, 0, len(snap.Vessel.Cargo))
		for _, species := range sortedSpecies(snap.Vessel.Cargo) {
			parts = append(parts, fmt.Sprintf("%d %s", snap.Vessel.Cargo[species], species))
		}
		fmt.Fprintf(c.out, "Hold: %s (%.0f of %.0f kg).\n", strings.Join(parts, ", "), snap.CargoWeightKg, snap.CargoCapacityKg)
	} else {
		fmt.Fprintln(c.out, "Hold is empty.")
	}
}

func (c *Console) printHelp() {
	fmt.Fprintln(c.out, `Orders:
  status                     one line helm report
  look                       what is around the boat
  hoist / reef [n]           shake out or take in sail
  ease / sheet [n degrees]   let the sail out or harden up
  turn port|starboard [n degrees]
  midships                   center the rudder
  cast                       fish with the pole
  trawl                      tow the net, slow and heavy
  stow                       bring the gear back in
  sell                       sell the hold at a harbor
  upgrade sail|hull          buy the next tier at a harbor
  right                      right the boat after a knockdown
  quit                       end the voyage`)
}

func nearestHarbor(harbors []game.HarborStatus) (game.HarborStatus, bool) {
	if len(harbors) == 0 {
		return game.HarborStatus{}, false
	}
	nearest := harbors[0]
	for _, harbor := range harbors[1:] {
		if harbor.DistanceM < nearest.DistanceM {
			nearest = harbor
		}
	}
	return nearest, true
}

func sortedSpecies(cargo map[game.SpeciesID]int) []game.SpeciesID {
	ids := make([]game.SpeciesID, 0, len(cargo))
	for id := range cargo {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func formatTickClock(tick uint64) string {
	seconds := tick / game.TicksPerSecond
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
