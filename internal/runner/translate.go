package runner

import (
	"fmt"
	"math"

	"github.com/appengine-ltd/sail-it/internal/game"
	"github.com/appengine-ltd/sail-it/internal/parser"
)

// One compass point is 11.25 degrees.
const degreesPerPoint = 11.25

// A forty-five degree course request maps to full rudder; smaller
// requests scale linearly.
const fullRudderDegrees = 45.0

// CommandsForIntent turns a parsed helm intent into world commands. Query
// and help intents produce no commands; callers answer those directly.
// The tuning must be the world's own so quantity-free orders use the same
// steps the world would.
func CommandsForIntent(intent parser.Intent, tun game.Tuning) ([]game.Command, error) {
	if intent.Kind != parser.Command {
		return nil, nil
	}

	switch intent.Verb {
	case "hoist":
		return repeatCommand(game.CommandHoistSail, sailSteps(intent.Quantity)), nil
	case "reef":
		return repeatCommand(game.CommandReefSail, sailSteps(intent.Quantity)), nil
	case "ease":
		return []game.Command{{Kind: game.CommandTrimSail, Amount: trimDelta(intent.Quantity, tun, 1)}}, nil
	case "sheet":
		return []game.Command{{Kind: game.CommandTrimSail, Amount: trimDelta(intent.Quantity, tun, -1)}}, nil
	case "turn":
		amount, err := turnAmount(intent, tun)
		if err != nil {
			return nil, err
		}
		return []game.Command{{Kind: game.CommandTurn, Amount: amount}}, nil
	case "midships":
		return []game.Command{{Kind: game.CommandCenterRudder}}, nil
	case "cast":
		method := captureMethod(intent.Args, tun, game.PoleMethod(tun))
		return []game.Command{{Kind: game.CommandEngageRig, Method: &method}}, nil
	case "trawl":
		method := captureMethod(intent.Args, tun, game.TrawlMethod(tun))
		return []game.Command{{Kind: game.CommandEngageRig, Method: &method}}, nil
	case "stow":
		return []game.Command{{Kind: game.CommandStowRig}}, nil
	case "sell":
		return []game.Command{{Kind: game.CommandSell}}, nil
	case "upgrade":
		refit, ok := refitFromArgs(intent.Args)
		if !ok {
			return nil, fmt.Errorf("upgrade what: sail or hull")
		}
		if refit == "hull" {
			return []game.Command{{Kind: game.CommandUpgradeHull}}, nil
		}
		return []game.Command{{Kind: game.CommandUpgradeSail}}, nil
	case "right":
		return []game.Command{{Kind: game.CommandRecover}}, nil
	default:
		return nil, fmt.Errorf("no helm handler for %q", intent.Verb)
	}
}

// sailSteps decides how many reef steps a hoist or reef order moves.
// "Full sail" style orders saturate against the largest rig in the
// catalog; the vessel clamps whatever its own rig cannot take.
func sailSteps(q *parser.Quantity) int {
	steps := maxCatalogReefSteps()
	if q == nil || q.N == 0 {
		return 1
	}
	if q.N < 0 || q.N > steps {
		return steps
	}
	return q.N
}

func maxCatalogReefSteps() int {
	steps := 1
	for tier := 1; ; tier++ {
		spec, ok := game.SailTierByNumber(tier)
		if !ok {
			break
		}
		if spec.ReefSteps > steps {
			steps = spec.ReefSteps
		}
	}
	return steps
}

func repeatCommand(kind game.CommandKind, n int) []game.Command {
	commands := make([]game.Command, 0, n)
	for i := 0; i < n; i++ {
		commands = append(commands, game.Command{Kind: kind})
	}
	return commands
}

// trimDelta converts an ease or sheet quantity into a signed trim change
// in radians. Ease is positive, sheet negative.
func trimDelta(q *parser.Quantity, tun game.Tuning, sign float64) float64 {
	if q == nil || q.N == 0 {
		return sign * tun.TrimStepRadians
	}
	if q.N < 0 {
		// "ease all the way" swings past any rig's limit; the vessel
		// clamps it to its own sail.
		return sign * math.Pi
	}
	switch q.Unit {
	case "degrees":
		return sign * float64(q.N) * math.Pi / 180
	case "points":
		return sign * float64(q.N) * degreesPerPoint * math.Pi / 180
	default:
		return sign * float64(q.N) * tun.TrimStepRadians
	}
}

// turnAmount maps a side and quantity onto the -1..1 rudder scale. Port
// helm is positive, matching the anticlockwise heading convention.
func turnAmount(intent parser.Intent, tun game.Tuning) (float64, error) {
	side := ""
	for _, arg := range intent.Args {
		if arg == "port" || arg == "starboard" {
			side = arg
			break
		}
	}
	if side == "" {
		return 0, fmt.Errorf("turn needs a side: port or starboard")
	}

	sign := 1.0
	if side == "starboard" {
		sign = -1.0
	}

	q := intent.Quantity
	if q == nil || q.N == 0 {
		return sign * tun.RudderStep, nil
	}
	if q.N < 0 {
		// Hard over.
		return sign, nil
	}

	var deflection float64
	switch q.Unit {
	case "degrees":
		deflection = float64(q.N) / fullRudderDegrees
	case "points":
		deflection = float64(q.N) * degreesPerPoint / fullRudderDegrees
	default:
		deflection = float64(q.N) * tun.RudderStep
	}
	if deflection > 1 {
		deflection = 1
	}
	return sign * deflection, nil
}

func captureMethod(args []string, tun game.Tuning, fallback game.CaptureMethod) game.CaptureMethod {
	for _, arg := range args {
		switch arg {
		case "pole":
			return game.PoleMethod(tun)
		case "trawl":
			return game.TrawlMethod(tun)
		}
	}
	return fallback
}

func refitFromArgs(args []string) (string, bool) {
	for _, arg := range args {
		if arg == "sail" || arg == "hull" {
			return arg, true
		}
	}
	return "", false
}
