package main

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/appengine-ltd/sail-it/internal/game"
)

type docFile struct {
	Name    string
	Title   string
	Content string
}

func main() {
	root := filepath.Join("docs", "reference", "catalogs")
	if err := os.MkdirAll(root, 0o755); err != nil {
		fatal(err)
	}

	files := []docFile{
		generateSpeciesDoc(),
		generateSailTiersDoc(),
		generateHullTiersDoc(),
		generateScenariosDoc(),
	}
	for _, f := range files {
		path := filepath.Join(root, f.Name)
		if err := os.WriteFile(path, []byte(f.Content), 0o644); err != nil {
			fatal(err)
		}
		fmt.Printf("wrote %s\n", path)
	}

	index := generateCatalogIndex(files)
	indexPath := filepath.Join(root, "README.md")
	if err := os.WriteFile(indexPath, []byte(index), 0o644); err != nil {
		fatal(err)
	}
	fmt.Printf("wrote %s\n", indexPath)
}

func generateCatalogIndex(files []docFile) string {
	var b strings.Builder
	b.WriteString("# Data Catalogs\n\n")
	b.WriteString("Generated from the current Go source using `go run ./cmd/docsgen`.\n\n")
	for _, f := range files {
		b.WriteString(fmt.Sprintf("- [%s](./%s)\n", f.Title, f.Name))
	}
	return b.String()
}

func generateSpeciesDoc() docFile {
	items := game.SpeciesCatalog()
	sort.Slice(items, func(i, j int) bool {
		if items[i].Junk != items[j].Junk {
			return !items[i].Junk
		}
		if items[i].Name != items[j].Name {
			return items[i].Name < items[j].Name
		}
		return items[i].ID < items[j].ID
	})

	var b strings.Builder
	b.WriteString("# Species\n\n")
	b.WriteString("Source: `internal/game/species.go` (`SpeciesCatalog`).\n\n")
	b.WriteString(fmt.Sprintf("Total species: **%d**.\n\n", len(items)))
	b.WriteString("| ID | Name | Junk | Weight (kg) | Value | School | Spawn /tile | Swim Depth (m) | Seabed (m) |\n")
	b.WriteString("| --- | --- | --- | --- | --- | --- | --- | --- | --- |\n")
	for _, s := range items {
		b.WriteString("| ")
		b.WriteString(escape(string(s.ID)))
		b.WriteString(" | ")
		b.WriteString(escape(s.Name))
		b.WriteString(" | ")
		b.WriteString(yesNo(s.Junk))
		b.WriteString(" | ")
		b.WriteString(formatFloat(s.WeightKg))
		b.WriteString(" | ")
		b.WriteString(strconv.FormatInt(s.Value, 10))
		b.WriteString(" | ")
		b.WriteString(fmt.Sprintf("%d-%d", s.SchoolMin, s.SchoolMax))
		b.WriteString(" | ")
		b.WriteString(fmt.Sprintf("%.2f", s.SpawnPerTile))
		b.WriteString(" | ")
		b.WriteString(fmt.Sprintf("%.3g-%.3g", s.SwimDepthMin, s.SwimDepthMax))
		b.WriteString(" | ")
		b.WriteString(fmt.Sprintf("%.3g-%.3g", s.SeabedMin, s.SeabedMax))
		b.WriteString(" |\n")
	}

	return docFile{Name: "species.md", Title: "Species", Content: b.String()}
}

func generateSailTiersDoc() docFile {
	items := game.SailTierCatalog()

	var b strings.Builder
	b.WriteString("# Sail Tiers\n\n")
	b.WriteString("Source: `internal/game/tiers.go` (`SailTierCatalog`).\n\n")
	b.WriteString("| Tier | Name | Area (m2) | Max Trim (deg) | Reef Steps | Upgrade Cost |\n")
	b.WriteString("| --- | --- | --- | --- | --- | --- |\n")
	for _, s := range items {
		b.WriteString("| ")
		b.WriteString(strconv.Itoa(s.Tier))
		b.WriteString(" | ")
		b.WriteString(escape(s.Name))
		b.WriteString(" | ")
		b.WriteString(formatFloat(s.SailAreaM2))
		b.WriteString(" | ")
		b.WriteString(fmt.Sprintf("%.0f", s.MaxTrimRadians*180/math.Pi))
		b.WriteString(" | ")
		b.WriteString(strconv.Itoa(s.ReefSteps))
		b.WriteString(" | ")
		b.WriteString(strconv.FormatInt(s.UpgradeCost, 10))
		b.WriteString(" |\n")
	}

	return docFile{Name: "sail-tiers.md", Title: "Sail Tiers", Content: b.String()}
}

func generateHullTiersDoc() docFile {
	items := game.HullTierCatalog()

	var b strings.Builder
	b.WriteString("# Hull Tiers\n\n")
	b.WriteString("Source: `internal/game/tiers.go` (`HullTierCatalog`).\n\n")
	b.WriteString("| Tier | Name | Mass (kg) | Cargo (kg) | Righting Moment | Drag | Upgrade Cost |\n")
	b.WriteString("| --- | --- | --- | --- | --- | --- | --- |\n")
	for _, h := range items {
		b.WriteString("| ")
		b.WriteString(strconv.Itoa(h.Tier))
		b.WriteString(" | ")
		b.WriteString(escape(h.Name))
		b.WriteString(" | ")
		b.WriteString(formatFloat(h.MassKg))
		b.WriteString(" | ")
		b.WriteString(formatFloat(h.CargoCapacityKg))
		b.WriteString(" | ")
		b.WriteString(formatFloat(h.RightingMoment))
		b.WriteString(" | ")
		b.WriteString(formatFloat(h.DragCoeff))
		b.WriteString(" | ")
		b.WriteString(strconv.FormatInt(h.UpgradeCost, 10))
		b.WriteString(" |\n")
	}

	return docFile{Name: "hull-tiers.md", Title: "Hull Tiers", Content: b.String()}
}

func generateScenariosDoc() docFile {
	items := game.BuiltInScenarios()
	sort.Slice(items, func(i, j int) bool {
		if items[i].Name != items[j].Name {
			return items[i].Name < items[j].Name
		}
		return items[i].ID < items[j].ID
	})

	var b strings.Builder
	b.WriteString("# Scenarios\n\n")
	b.WriteString("Source: `internal/game/scenarios_builtin.go` (`BuiltInScenarios`).\n\n")
	b.WriteString(fmt.Sprintf("Total built-in scenarios: **%d**.\n\n", len(items)))
	b.WriteString("| ID | Name | Map Edge (tiles) | Wind (m/s) | Shift (s) | Fish /tile | Max Fish | Harbors | Starting Funds |\n")
	b.WriteString("| --- | --- | --- | --- | --- | --- | --- | --- | --- |\n")
	for _, s := range items {
		b.WriteString("| ")
		b.WriteString(escape(string(s.ID)))
		b.WriteString(" | ")
		b.WriteString(escape(s.Name))
		b.WriteString(" | ")
		b.WriteString(strconv.Itoa(s.MapEdgeTiles))
		b.WriteString(" | ")
		b.WriteString(fmt.Sprintf("%.3g-%.3g", s.WindMinSpeed, s.WindMaxSpeed))
		b.WriteString(" | ")
		b.WriteString(strconv.Itoa(s.WindShiftSeconds))
		b.WriteString(" | ")
		b.WriteString(fmt.Sprintf("%.2f", s.FishPerTile))
		b.WriteString(" | ")
		b.WriteString(strconv.Itoa(s.MaxFishCount))
		b.WriteString(" | ")
		b.WriteString(strconv.Itoa(s.HarborCount))
		b.WriteString(" | ")
		b.WriteString(strconv.FormatInt(s.StartingFunds, 10))
		b.WriteString(" |\n")
	}

	return docFile{Name: "scenarios.md", Title: "Scenarios", Content: b.String()}
}

func formatFloat(v float64) string {
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func escape(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return ""
	}
	v = strings.ReplaceAll(v, "|", "\\|")
	v = strings.ReplaceAll(v, "\n", "<br>")
	return v
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
