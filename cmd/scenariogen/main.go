package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/appengine-ltd/sail-it/internal/game"
)

// scenariogen emits a scenario YAML template to stdout or a file. Starting
// from a built-in keeps every generated file loadable as-is; the operator
// edits fields from there.
func main() {
	var (
		baseID string
		output string
		list   bool
	)

	flag.StringVar(&baseID, "base", string(game.ScenarioTrainingLagoonID), "built-in scenario to use as the template base")
	flag.StringVar(&output, "o", "", "output file, empty writes to stdout")
	flag.BoolVar(&list, "list", false, "list built-in scenario IDs and exit")
	flag.Parse()

	if list {
		for _, scenario := range game.BuiltInScenarios() {
			fmt.Printf("%-20s %s\n", scenario.ID, scenario.Name)
		}
		return
	}

	scenario, found := game.GetScenario(game.BuiltInScenarios(), game.ScenarioID(baseID))
	if !found {
		fatal(fmt.Errorf("unknown base scenario: %s", baseID))
	}

	// Generated files carry the full tuning block so every knob is visible
	// to the editor, not just the ones the base overrides.
	scenario.Tuning = game.DefaultTuning()

	out, err := game.MarshalScenario(scenario)
	if err != nil {
		fatal(err)
	}

	if output == "" {
		fmt.Print(string(out))
		return
	}
	if err := os.WriteFile(output, out, 0o644); err != nil {
		fatal(err)
	}
	fmt.Printf("wrote %s\n", output)
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
