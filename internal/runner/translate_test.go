package runner

import (
	"math"
	"testing"

	"github.com/appengine-ltd/sail-it/internal/game"
	"github.com/appengine-ltd/sail-it/internal/parser"
)

func commandIntent(verb string, args ...string) parser.Intent {
	return parser.Intent{Kind: parser.Command, Verb: verb, Args: args}
}

func singleCommand(t *testing.T, intent parser.Intent) game.Command {
	t.Helper()
	commands, err := CommandsForIntent(intent, game.DefaultTuning())
	if err != nil {
		t.Fatalf("translate %q: %v", intent.Verb, err)
	}
	if len(commands) != 1 {
		t.Fatalf("expected 1 command for %q, got %d", intent.Verb, len(commands))
	}
	return commands[0]
}

func TestTurnPortDefaultsToRudderStep(t *testing.T) {
	cmd := singleCommand(t, commandIntent("turn", "port"))
	if cmd.Kind != game.CommandTurn {
		t.Fatalf("expected turn, got %q", cmd.Kind)
	}
	if cmd.Amount != game.DefaultTuning().RudderStep {
		t.Fatalf("expected one rudder step, got %v", cmd.Amount)
	}
}

func TestTurnStarboardHardIsFullNegative(t *testing.T) {
	intent := commandIntent("turn", "starboard")
	intent.Quantity = &parser.Quantity{Raw: "hard", N: -1, Unit: "all"}
	cmd := singleCommand(t, intent)
	if cmd.Amount != -1 {
		t.Fatalf("expected full starboard rudder -1, got %v", cmd.Amount)
	}
}

func TestTurnDegreesScaleAgainstFullRudder(t *testing.T) {
	intent := commandIntent("turn", "port")
	intent.Quantity = &parser.Quantity{Raw: "45 degrees", N: 45, Unit: "degrees"}
	cmd := singleCommand(t, intent)
	if cmd.Amount != 1 {
		t.Fatalf("expected 45 degrees to ask full rudder, got %v", cmd.Amount)
	}

	intent.Quantity = &parser.Quantity{Raw: "2 points", N: 2, Unit: "points"}
	cmd = singleCommand(t, intent)
	if math.Abs(cmd.Amount-0.5) > 1e-9 {
		t.Fatalf("expected 2 points = half rudder, got %v", cmd.Amount)
	}
}

func TestTurnWithoutSideErrors(t *testing.T) {
	if _, err := CommandsForIntent(commandIntent("turn"), game.DefaultTuning()); err == nil {
		t.Fatal("expected an error for turn with no side")
	}
}

func TestHoistAllSaturatesAtCatalogSteps(t *testing.T) {
	intent := commandIntent("hoist")
	intent.Quantity = &parser.Quantity{Raw: "all", N: -1, Unit: "all"}
	commands, err := CommandsForIntent(intent, game.DefaultTuning())
	if err != nil {
		t.Fatalf("translate: %v", err)
	}
	if len(commands) != 6 {
		t.Fatalf("expected 6 hoists for full sail, got %d", len(commands))
	}
	for _, cmd := range commands {
		if cmd.Kind != game.CommandHoistSail {
			t.Fatalf("expected hoist, got %q", cmd.Kind)
		}
	}
}

func TestReefCountRepeats(t *testing.T) {
	intent := commandIntent("reef")
	intent.Quantity = &parser.Quantity{Raw: "2", N: 2, Unit: "count"}
	commands, err := CommandsForIntent(intent, game.DefaultTuning())
	if err != nil {
		t.Fatalf("translate: %v", err)
	}
	if len(commands) != 2 {
		t.Fatalf("expected 2 reef commands, got %d", len(commands))
	}
}

func TestHoistWithoutQuantityIsOneStep(t *testing.T) {
	commands, err := CommandsForIntent(commandIntent("hoist"), game.DefaultTuning())
	if err != nil {
		t.Fatalf("translate: %v", err)
	}
	if len(commands) != 1 {
		t.Fatalf("expected 1 hoist, got %d", len(commands))
	}
}

func TestEaseDegreesBecomeRadians(t *testing.T) {
	intent := commandIntent("ease")
	intent.Quantity = &parser.Quantity{Raw: "10 degrees", N: 10, Unit: "degrees"}
	cmd := singleCommand(t, intent)
	if cmd.Kind != game.CommandTrimSail {
		t.Fatalf("expected trim, got %q", cmd.Kind)
	}
	if math.Abs(cmd.Amount-10*math.Pi/180) > 1e-9 {
		t.Fatalf("expected +10 degrees in radians, got %v", cmd.Amount)
	}
}

func TestSheetWithoutQuantityHardensOneStep(t *testing.T) {
	cmd := singleCommand(t, commandIntent("sheet"))
	if cmd.Amount != -game.DefaultTuning().TrimStepRadians {
		t.Fatalf("expected one negative trim step, got %v", cmd.Amount)
	}
}

func TestEaseAllSwingsPastAnyRig(t *testing.T) {
	intent := commandIntent("ease")
	intent.Quantity = &parser.Quantity{Raw: "all", N: -1, Unit: "all"}
	cmd := singleCommand(t, intent)
	if cmd.Amount != math.Pi {
		t.Fatalf("expected pi radians, got %v", cmd.Amount)
	}
}

func TestCastDefaultsToPole(t *testing.T) {
	cmd := singleCommand(t, commandIntent("cast"))
	if cmd.Kind != game.CommandEngageRig {
		t.Fatalf("expected engage rig, got %q", cmd.Kind)
	}
	if cmd.Method == nil || cmd.Method.Kind != game.CapturePole {
		t.Fatalf("expected pole method, got %+v", cmd.Method)
	}
}

func TestCastTrawlArgOverridesGear(t *testing.T) {
	cmd := singleCommand(t, commandIntent("cast", "trawl"))
	if cmd.Method == nil || cmd.Method.Kind != game.CaptureTrawl {
		t.Fatalf("expected trawl method, got %+v", cmd.Method)
	}
}

func TestTrawlDefaultsToTrawl(t *testing.T) {
	cmd := singleCommand(t, commandIntent("trawl"))
	if cmd.Method == nil || cmd.Method.Kind != game.CaptureTrawl {
		t.Fatalf("expected trawl method, got %+v", cmd.Method)
	}
}

func TestUpgradeHullAndSail(t *testing.T) {
	cmd := singleCommand(t, commandIntent("upgrade", "hull"))
	if cmd.Kind != game.CommandUpgradeHull {
		t.Fatalf("expected hull upgrade, got %q", cmd.Kind)
	}
	cmd = singleCommand(t, commandIntent("upgrade", "sail"))
	if cmd.Kind != game.CommandUpgradeSail {
		t.Fatalf("expected sail upgrade, got %q", cmd.Kind)
	}
	if _, err := CommandsForIntent(commandIntent("upgrade"), game.DefaultTuning()); err == nil {
		t.Fatal("expected an error for upgrade with no refit")
	}
}

func TestSimpleVerbsMapOneToOne(t *testing.T) {
	cases := []struct {
		verb string
		kind game.CommandKind
	}{
		{"midships", game.CommandCenterRudder},
		{"stow", game.CommandStowRig},
		{"sell", game.CommandSell},
		{"right", game.CommandRecover},
	}
	for _, tc := range cases {
		cmd := singleCommand(t, commandIntent(tc.verb))
		if cmd.Kind != tc.kind {
			t.Fatalf("%s: expected %q, got %q", tc.verb, tc.kind, cmd.Kind)
		}
	}
}

func TestQueriesProduceNoCommands(t *testing.T) {
	intent := parser.Intent{Kind: parser.Query, Verb: "look"}
	commands, err := CommandsForIntent(intent, game.DefaultTuning())
	if err != nil {
		t.Fatalf("translate: %v", err)
	}
	if len(commands) != 0 {
		t.Fatalf("expected no commands for a query, got %d", len(commands))
	}
}
