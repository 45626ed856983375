package runner

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/appengine-ltd/sail-it/internal/game"
)

// ScriptedOrder is one console line scheduled for a tick.
type ScriptedOrder struct {
	Tick uint64
	Raw  string
}

// ParseScript reads a voyage script. Each line is blank, a # comment, or
// "<when>: <order>". The schedule is "at N" (absolute ticks), "at Ns"
// (absolute seconds), or "after N"/"after Ns"/"after N ticks" counted
// from the previous order. Orders come back sorted by tick.
func ParseScript(r io.Reader) ([]ScriptedOrder, error) {
	var orders []ScriptedOrder
	var cursor uint64

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		when, order, found := strings.Cut(line, ":")
		order = strings.TrimSpace(order)
		if !found || order == "" {
			return nil, fmt.Errorf("line %d: expected \"at <tick>: <order>\", got %q", lineNo, line)
		}

		tick, err := parseSchedule(strings.TrimSpace(when), cursor)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}

		cursor = tick
		orders = append(orders, ScriptedOrder{Tick: tick, Raw: order})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading script: %w", err)
	}

	sort.SliceStable(orders, func(i, j int) bool { return orders[i].Tick < orders[j].Tick })
	return orders, nil
}

func parseSchedule(when string, cursor uint64) (uint64, error) {
	fields := strings.Fields(strings.ToLower(when))
	if len(fields) < 2 {
		return 0, fmt.Errorf("bad schedule %q", when)
	}

	relative := false
	switch fields[0] {
	case "at":
	case "after":
		relative = true
	default:
		return 0, fmt.Errorf("schedule must start with \"at\" or \"after\", got %q", fields[0])
	}

	value := fields[1]
	unit := "ticks"
	if len(fields) >= 3 {
		unit = fields[2]
	}
	// "5s" style shorthand carries its unit on the number.
	if trimmed := strings.TrimSuffix(value, "s"); trimmed != value && isDigits(trimmed) {
		value = trimmed
		unit = "seconds"
	}

	n, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("bad schedule count %q", fields[1])
	}

	ticks := n
	switch unit {
	case "s", "sec", "secs", "second", "seconds":
		ticks = n * game.TicksPerSecond
	case "tick", "ticks":
	default:
		return 0, fmt.Errorf("unknown schedule unit %q", unit)
	}

	if relative {
		return cursor + ticks, nil
	}
	return ticks, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
