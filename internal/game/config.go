package game

import (
	"fmt"
)

// TicksPerSecond is the fixed simulation rate. Every Advance call moves the
// world exactly one tick; hosts that want wall-clock pacing schedule the
// calls themselves.
const TicksPerSecond = 60

type RunConfig struct {
	ScenarioID ScenarioID `json:"scenario_id"`
	Seed       int64      `json:"seed"`

	// ScenarioFile optionally points at a YAML scenario that overrides the
	// built-in catalog lookup.
	ScenarioFile string `json:"scenario_file,omitempty"`
}

func (c RunConfig) Validate() error {
	if c.ScenarioFile != "" {
		return nil
	}

	found := c.ScenarioID == ScenarioRandomID

	if !found {
		for _, scenario := range BuiltInScenarios() {
			if scenario.ID == c.ScenarioID {
				found = true
				break
			}
		}
	}

	if !found {
		return fmt.Errorf("scenario not found: %s", c.ScenarioID)
	}

	return nil
}
