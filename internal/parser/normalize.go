package parser

import (
	"regexp"
	"strconv"
	"strings"
)

var multiSpaceRE = regexp.MustCompile(`\s+`)

func normaliseInput(raw string) string {
	raw = strings.TrimSpace(strings.ToLower(raw))
	if raw == "" {
		return ""
	}
	var b strings.Builder
	lastSpace := false
	for _, r := range raw {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			lastSpace = false
			continue
		}
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '-' || r == '_' || r == '/' || r == '\'' {
			if !lastSpace {
				b.WriteByte(' ')
			}
			lastSpace = true
		}
	}
	return strings.TrimSpace(multiSpaceRE.ReplaceAllString(b.String(), " "))
}

func tokenise(normalised string) []string {
	if strings.TrimSpace(normalised) == "" {
		return nil
	}
	return strings.Fields(normalised)
}

func parseQuantityToken(token string) *Quantity {
	token = strings.TrimSpace(strings.ToLower(token))
	if token == "" {
		return nil
	}
	switch token {
	case "all", "hard", "full":
		return &Quantity{Raw: token, N: -1, Unit: "all"}
	}
	if n, err := strconv.Atoi(token); err == nil && n >= 0 {
		return &Quantity{Raw: token, N: n, Unit: "count"}
	}
	if strings.HasSuffix(token, "deg") || strings.HasSuffix(token, "degs") || strings.HasSuffix(token, "degree") || strings.HasSuffix(token, "degrees") {
		n := strings.TrimSuffix(strings.TrimSuffix(strings.TrimSuffix(strings.TrimSuffix(token, "degrees"), "degree"), "degs"), "deg")
		if v, err := strconv.Atoi(n); err == nil && v >= 0 {
			return &Quantity{Raw: token, N: v, Unit: "degrees"}
		}
	}
	if strings.HasSuffix(token, "pt") || strings.HasSuffix(token, "pts") || strings.HasSuffix(token, "point") || strings.HasSuffix(token, "points") {
		n := strings.TrimSuffix(strings.TrimSuffix(strings.TrimSuffix(strings.TrimSuffix(token, "points"), "point"), "pts"), "pt")
		if v, err := strconv.Atoi(n); err == nil && v >= 0 {
			return &Quantity{Raw: token, N: v, Unit: "points"}
		}
	}
	return nil
}

func quantityUnit(token string) string {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "deg", "degs", "degree", "degrees":
		return "degrees"
	case "pt", "pts", "point", "points":
		return "points"
	case "step", "steps", "reef", "reefs":
		return "count"
	default:
		return ""
	}
}

func isPronoun(token string) bool {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "it", "that", "them", "this", "those":
		return true
	default:
		return false
	}
}

func isArticle(token string) bool {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "a", "an", "the", "my", "our", "her":
		return true
	default:
		return false
	}
}

func mapSide(token string) string {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "port", "aport", "larboard":
		return "port"
	case "starboard", "astarboard", "stbd":
		return "starboard"
	default:
		return ""
	}
}

func mapGear(token string) string {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "pole", "rod", "line", "hook":
		return "pole"
	case "trawl", "net", "nets", "dredge":
		return "trawl"
	default:
		return ""
	}
}

func mapRefit(token string) string {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "sail", "sails", "canvas", "rig":
		return "sail"
	case "hull", "boat", "hold":
		return "hull"
	default:
		return ""
	}
}
