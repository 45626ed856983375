package game

import "fmt"

// CommandKind names one discrete order the player can issue. Helm orders
// take effect before the physics step of the same tick; trade orders are
// held until the harbor phase so the vessel's post-physics position and
// speed decide whether the harbor accepts them.
type CommandKind string

const (
	// CommandHoistSail shakes out one reef step.
	CommandHoistSail CommandKind = "hoist_sail"
	// CommandReefSail takes in one reef step.
	CommandReefSail CommandKind = "reef_sail"
	// CommandTrimSail eases (positive Amount) or sheets in (negative
	// Amount) the sail by Amount radians. Zero Amount eases by the tuned
	// default step.
	CommandTrimSail CommandKind = "trim_sail"
	// CommandTurn deflects the rudder by Amount on the -1..1 scale. Zero
	// Amount deflects to starboard by the tuned default step.
	CommandTurn CommandKind = "turn"
	// CommandCenterRudder returns the rudder to neutral.
	CommandCenterRudder CommandKind = "center_rudder"
	// CommandEngageRig deploys the capture method in Method. A nil Method
	// deploys a pole with tuned defaults.
	CommandEngageRig CommandKind = "engage_rig"
	// CommandStowRig retracts whatever gear is deployed.
	CommandStowRig CommandKind = "stow_rig"
	// CommandSell sells the entire hold at the active harbor.
	CommandSell CommandKind = "sell"
	// CommandUpgradeSail buys the next sail tier at the active harbor.
	CommandUpgradeSail CommandKind = "upgrade_sail"
	// CommandUpgradeHull buys the next hull tier at the active harbor.
	CommandUpgradeHull CommandKind = "upgrade_hull"
	// CommandRecover rights a capsized vessel once the righting wait has
	// elapsed.
	CommandRecover CommandKind = "recover"
)

// Command is one player order. Amount and Method are only read by the kinds
// documented above.
type Command struct {
	Kind   CommandKind    `json:"kind"`
	Amount float64        `json:"amount,omitempty"`
	Method *CaptureMethod `json:"method,omitempty"`
}

// PlayerInput carries everything the player asked for this tick. Commands
// run in order; a refused command never stops the ones after it.
type PlayerInput struct {
	Commands []Command `json:"commands,omitempty"`
}

// applyCommands runs the tick's helm and rig orders and stages trade orders
// for the harbor phase. Refusals become events rather than aborting the
// tick, so a bad order costs the player nothing but the tick it wasted.
func (w *World) applyCommands(input PlayerInput) []TickEvent {
	var events []TickEvent

	for _, cmd := range input.Commands {
		var err error

		switch cmd.Kind {
		case CommandHoistSail:
			err = w.Vessel.adjustReefing(1)
		case CommandReefSail:
			err = w.Vessel.adjustReefing(-1)
		case CommandTrimSail:
			amount := cmd.Amount
			if amount == 0 {
				amount = w.Tuning.TrimStepRadians
			}
			err = w.Vessel.adjustTrim(amount)
		case CommandTurn:
			amount := cmd.Amount
			if amount == 0 {
				amount = w.Tuning.RudderStep
			}
			err = w.Vessel.adjustRudder(amount)
		case CommandCenterRudder:
			err = w.Vessel.centerRudder()
		case CommandEngageRig:
			err = w.engageRig(cmd.Method)
		case CommandStowRig:
			err = w.Rig.Disengage()
		case CommandSell, CommandUpgradeSail, CommandUpgradeHull:
			w.pendingTrade = append(w.pendingTrade, cmd)
		case CommandRecover:
			err = w.Vessel.rightVessel()
			if err == nil {
				events = append(events, TickEvent{
					Kind:    EventRecovered,
					Message: "vessel righted, rig and sail need resetting",
				})
			}
		default:
			err = fmt.Errorf("unknown command: %s", cmd.Kind)
		}

		if err != nil {
			events = append(events, refusalEvent(cmd.Kind, err))
		}
	}

	return events
}

// engageRig deploys gear on behalf of the player. The rig itself does not
// know about the hull, so the capsize refusal lives here.
func (w *World) engageRig(method *CaptureMethod) error {
	if w.Vessel.Capsized {
		return ErrCapsized
	}

	deploy := PoleMethod(w.Tuning)
	if method != nil {
		deploy = *method
	}

	return w.Rig.Engage(deploy)
}

// processTrade settles the tick's staged sell and upgrade orders against
// the active harbor. Runs after the physics step so the dock gate judges
// the position and speed the player actually ends the tick with.
func (w *World) processTrade() []TickEvent {
	if len(w.pendingTrade) == 0 {
		return nil
	}

	orders := w.pendingTrade
	w.pendingTrade = w.pendingTrade[:0]

	var events []TickEvent

	for _, cmd := range orders {
		if w.Vessel.Capsized {
			events = append(events, refusalEvent(cmd.Kind, ErrCapsized))
			continue
		}

		harbor, err := activeHarbor(w.Harbors, w.Grid, &w.Vessel, w.Tuning)
		if err != nil {
			events = append(events, refusalEvent(cmd.Kind, err))
			continue
		}

		switch cmd.Kind {
		case CommandSell:
			result := sellAll(&w.Vessel, harbor)
			w.Funds += result.CurrencyDelta
			events = append(events, TickEvent{
				Kind:    EventSold,
				Message: fmt.Sprintf("sold %d items at %s for %d", result.Sold, harbor.Name, result.CurrencyDelta),
				Amount:  result.CurrencyDelta,
			})
		case CommandUpgradeSail:
			events = append(events, w.settleUpgrade(cmd.Kind, UpgradeSail, harbor))
		case CommandUpgradeHull:
			events = append(events, w.settleUpgrade(cmd.Kind, UpgradeHull, harbor))
		}
	}

	return events
}

func (w *World) settleUpgrade(cmd CommandKind, kind UpgradeKind, harbor *Harbor) TickEvent {
	result, err := purchaseUpgrade(kind, &w.Vessel, &w.Funds)
	if err != nil {
		return refusalEvent(cmd, err)
	}

	return TickEvent{
		Kind:    EventUpgraded,
		Message: fmt.Sprintf("bought %s tier %d at %s for %d", kind, result.Tier, harbor.Name, result.Cost),
		Amount:  result.Cost,
	}
}

func refusalEvent(cmd CommandKind, err error) TickEvent {
	return TickEvent{
		Kind:    EventRefused,
		Message: err.Error(),
		Command: cmd,
	}
}
