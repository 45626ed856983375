package parser

import (
	"fmt"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

type Parser struct {
	registry *Registry
}

func New() *Parser {
	return &Parser{registry: DefaultRegistry()}
}

func (p *Parser) RegisterCommand(c CommandDef) {
	p.registry.RegisterCommand(c)
}

func (p *Parser) Parse(ctx ParseContext, raw string) Intent {
	intent := Intent{
		Raw:        raw,
		Normalised: normaliseInput(raw),
		Kind:       Unknown,
		Confidence: 0,
	}
	if intent.Normalised == "" {
		intent.Clarify = &ClarifyQuestion{Prompt: "Enter an order or intent.", Options: nil}
		return intent
	}

	tokens := tokenise(intent.Normalised)
	cmdMatch, alternates := p.registry.matchCommand(tokens)
	if cmdMatch.Canonical == "" || cmdMatch.Score < 0.5 {
		inferred := inferFreeTextIntent(ctx, intent.Raw, intent.Normalised)
		if inferred != nil {
			return *inferred
		}
		intent.Clarify = &ClarifyQuestion{
			Prompt: "I couldn't map that to an order. Try help, status, look, hoist, reef, ease, sheet, turn, midships, cast, trawl, stow, sell, upgrade, right.",
		}
		return intent
	}

	if len(alternates) > 0 && (cmdMatch.Score-alternates[0].Score) < 0.05 && alternates[0].Score > 0.65 {
		options := []Intent{
			{
				Raw:        raw,
				Normalised: cmdMatch.Canonical,
				Kind:       commandKind(cmdMatch.Canonical),
				Verb:       cmdMatch.Canonical,
				Confidence: cmdMatch.Score,
			},
			{
				Raw:        raw,
				Normalised: alternates[0].Canonical,
				Kind:       commandKind(alternates[0].Canonical),
				Verb:       alternates[0].Canonical,
				Confidence: alternates[0].Score,
			},
		}
		intent.Clarify = &ClarifyQuestion{
			Prompt:  "Did you mean:",
			Options: options,
		}
		return intent
	}

	intent.Verb = cmdMatch.Canonical
	intent.Kind = commandKind(intent.Verb)
	intent.Confidence = clampScore(cmdMatch.Score)

	argsTokens := tokens
	if cmdMatch.Consumed > 0 && len(tokens) >= cmdMatch.Consumed {
		argsTokens = tokens[cmdMatch.Consumed:]
	}
	argsTokens, q := splitQuantity(argsTokens)
	intent.Quantity = q

	def, _ := p.registry.command(intent.Verb)
	resolvedArgs, clarify, argScore := p.resolveArgs(ctx, def, argsTokens)
	if clarify != nil {
		intent.Clarify = clarify
		intent.Confidence = 0.45
		return intent
	}
	intent.Args = resolvedArgs
	intent.Confidence = clampScore((intent.Confidence * 0.75) + (argScore * 0.25))

	if intent.Kind == Command && len(intent.Args) < def.MinArgs {
		if def.MinArgs > 0 && (def.Canonical == "turn" || def.Canonical == "upgrade") {
			options := buildEntityOptions(ctx, def.Canonical, 5)
			if len(options) > 0 {
				prompt := fmt.Sprintf("What should I %s?", def.Canonical)
				if def.Canonical == "turn" {
					prompt = "Turn which way?"
				}
				intent.Clarify = &ClarifyQuestion{
					Prompt:  prompt,
					Options: options,
				}
				intent.Confidence = 0.46
				return intent
			}
		}
		intent.Clarify = &ClarifyQuestion{Prompt: fmt.Sprintf("%s needs at least %d argument(s).", def.Canonical, def.MinArgs)}
		intent.Confidence = 0.42
		return intent
	}

	if def.MaxArgs > 0 && len(intent.Args) > def.MaxArgs {
		intent.Args = append([]string(nil), intent.Args[:def.MaxArgs]...)
		intent.Confidence = clampScore(intent.Confidence - 0.05)
	}

	if intent.Confidence < 0.52 && intent.Clarify == nil {
		intent.Clarify = &ClarifyQuestion{Prompt: "I have low confidence in that parse. Please rephrase or pick a clearer order."}
	}
	return intent
}

func commandKind(verb string) IntentKind {
	switch verb {
	case "help":
		return Help
	case "look", "status":
		return Query
	default:
		return Command
	}
}

func splitQuantity(tokens []string) ([]string, *Quantity) {
	if len(tokens) == 0 {
		return nil, nil
	}
	out := make([]string, 0, len(tokens))
	var q *Quantity
	for i := 0; i < len(tokens); i++ {
		token := tokens[i]
		if q == nil {
			if candidate := parseQuantityToken(token); candidate != nil {
				// "10 degrees" and "2 points" arrive as two tokens.
				if candidate.Unit == "count" && i+1 < len(tokens) {
					if unit := quantityUnit(tokens[i+1]); unit != "" {
						candidate.Raw = token + " " + tokens[i+1]
						candidate.Unit = unit
						i++
					}
				}
				q = candidate
				continue
			}
		}
		out = append(out, token)
	}
	return out, q
}

func (p *Parser) resolveArgs(ctx ParseContext, def CommandDef, args []string) ([]string, *ClarifyQuestion, float64) {
	if len(args) == 0 {
		return nil, nil, 0.9
	}

	resolved := make([]string, 0, len(args))
	score := 0.9
	for i := 0; i < len(args); i++ {
		token := args[i]
		if isArticle(token) {
			continue
		}
		if isPronoun(token) {
			if strings.TrimSpace(ctx.LastEntity) == "" {
				return nil, &ClarifyQuestion{Prompt: "What does that pronoun refer to?"}, 0.4
			}
			resolved = append(resolved, normaliseInput(ctx.LastEntity))
			score -= 0.08
			continue
		}

		if def.Canonical == "turn" && len(resolved) == 0 {
			if token == "to" {
				continue
			}
			mapped := mapSide(token)
			if mapped == "" {
				side, confidence, tie := resolveSide(token, ctx.KnownSides)
				if tie {
					options := []Intent{
						{Kind: Command, Verb: "turn", Args: []string{side[0]}, Confidence: confidence},
						{Kind: Command, Verb: "turn", Args: []string{side[1]}, Confidence: confidence - 0.01},
					}
					return nil, &ClarifyQuestion{Prompt: "Which way?", Options: options}, 0.5
				}
				if len(side) > 0 {
					mapped = side[0]
					score = minScore(score, confidence)
				}
			}
			if mapped != "" {
				resolved = append(resolved, mapped)
				continue
			}
		}

		if expectsEntity(def.Canonical, len(resolved)) {
			if mapped := mapEntity(def.Canonical, token); mapped != "" {
				resolved = append(resolved, mapped)
				continue
			}
			joined := token
			// For multi-token entities, greedily join 2 words.
			if i+1 < len(args) {
				try := token + " " + args[i+1]
				if _, s, _ := resolveEntity(try, ctx, def.Canonical); s > 0.9 {
					joined = try
					i++
				}
			}
			entity, confidence, tie := resolveEntity(joined, ctx, def.Canonical)
			if tie && len(entity) >= 2 {
				options := make([]Intent, 0, 2)
				for idx := 0; idx < 2; idx++ {
					options = append(options, Intent{
						Kind:       commandKind(def.Canonical),
						Verb:       def.Canonical,
						Args:       []string{entity[idx]},
						Confidence: confidence - float64(idx)*0.01,
					})
				}
				return nil, &ClarifyQuestion{
					Prompt:  fmt.Sprintf("Did you mean %s?", def.Canonical),
					Options: options,
				}, 0.52
			}
			if len(entity) == 1 {
				resolved = append(resolved, entity[0])
				score = minScore(score, confidence)
				continue
			}
		}

		resolved = append(resolved, token)
		score -= 0.02
	}
	return resolved, nil, clampScore(score)
}

func expectsEntity(verb string, argPos int) bool {
	if argPos > 0 {
		return false
	}
	switch verb {
	case "cast", "trawl", "stow", "upgrade", "sell":
		return true
	default:
		return false
	}
}

func mapEntity(verb, token string) string {
	switch verb {
	case "cast", "trawl", "stow":
		return mapGear(token)
	case "upgrade":
		return mapRefit(token)
	default:
		return ""
	}
}

func resolveSide(token string, known []string) ([]string, float64, bool) {
	n := normaliseInput(token)
	if s := mapSide(n); s != "" {
		return []string{s}, 0.98, false
	}
	if len(known) == 0 {
		known = []string{"port", "starboard"}
	}
	return bestMatches(n, known, nil)
}

func resolveEntity(token string, ctx ParseContext, verb string) ([]string, float64, bool) {
	n := normaliseInput(token)
	if n == "" {
		return nil, 0, false
	}
	gear := normaliseList(ctx.Gear)
	refits := normaliseList(ctx.Refits)
	hold := normaliseList(ctx.Hold)
	return bestMatches(n, mergeUnique(gear, refits, hold), favouredFor(verb, gear, refits, hold))
}

func normaliseList(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if v := normaliseInput(item); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func favouredFor(verb string, gear, refits, hold []string) []string {
	switch verb {
	case "cast", "trawl", "stow":
		return gear
	case "upgrade":
		return refits
	case "sell":
		return hold
	default:
		return nil
	}
}

func bestMatches(token string, all []string, favoured []string) ([]string, float64, bool) {
	if len(all) == 0 {
		return nil, 0, false
	}
	type scored struct {
		val   string
		score float64
	}
	favSet := make(map[string]bool, len(favoured))
	for _, n := range favoured {
		favSet[n] = true
	}

	results := make([]scored, 0, len(all))
	for _, cand := range all {
		score := 0.0
		switch {
		case token == cand:
			score = 1.0
		case strings.HasPrefix(cand, token) && len(token) >= 2:
			score = 0.9
		default:
			dist := levenshtein.ComputeDistance(token, cand)
			if dist > levenshteinLimit(len(cand)) {
				continue
			}
			score = 0.72 - (0.08 * float64(dist))
		}
		if favSet[cand] {
			score += 0.08
		}
		results = append(results, scored{val: cand, score: clampScore(score)})
	}
	if len(results) == 0 {
		return nil, 0, false
	}
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].score == results[j].score {
			return results[i].val < results[j].val
		}
		return results[i].score > results[j].score
	})

	best := results[0]
	tie := len(results) > 1 && (best.score-results[1].score) < 0.05 && results[1].score > 0.6
	if tie {
		return []string{best.val, results[1].val}, best.score, true
	}
	return []string{best.val}, best.score, false
}

func buildEntityOptions(ctx ParseContext, verb string, maxOptions int) []Intent {
	pool := make([]string, 0)
	switch verb {
	case "turn":
		pool = append(pool, ctx.KnownSides...)
		if len(pool) == 0 {
			pool = append(pool, "port", "starboard")
		}
	case "upgrade":
		pool = append(pool, ctx.Refits...)
		if len(pool) == 0 {
			pool = append(pool, "sail", "hull")
		}
	case "cast", "trawl", "stow":
		pool = append(pool, ctx.Gear...)
	case "sell":
		pool = append(pool, ctx.Hold...)
	}
	seen := map[string]bool{}
	options := make([]Intent, 0, maxOptions)
	for _, entity := range pool {
		n := normaliseInput(entity)
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		options = append(options, Intent{
			Kind:       commandKind(verb),
			Verb:       verb,
			Args:       []string{n},
			Confidence: 0.88,
		})
		if len(options) >= maxOptions {
			break
		}
	}
	return options
}

func inferFreeTextIntent(ctx ParseContext, raw string, normalised string) *Intent {
	n := normalised
	makeIntent := func(kind IntentKind, verb string, args []string, confidence float64) *Intent {
		return &Intent{
			Raw:        raw,
			Normalised: normalised,
			Kind:       kind,
			Verb:       verb,
			Args:       args,
			Confidence: clampScore(confidence),
		}
	}

	if containsAnyPhrase(n,
		"where am i", "look around", "look about", "whats out there", "where are we",
	) {
		return makeIntent(Query, "look", nil, 0.88)
	}
	if containsAnyPhrase(n, "how are we doing", "hows she doing", "ship report") {
		return makeIntent(Query, "status", nil, 0.84)
	}

	if containsAnyPhrase(n, "more sail", "more canvas", "full sail", "shake out a reef", "shake out the reef") {
		return makeIntent(Command, "hoist", nil, 0.84)
	}
	if containsAnyPhrase(n, "less sail", "less canvas", "too much canvas", "take in a reef", "put in a reef") {
		return makeIntent(Command, "reef", nil, 0.84)
	}
	if containsAnyPhrase(n, "let the sail out", "let out the sail", "slack the sheet", "loosen the sheet") {
		return makeIntent(Command, "ease", nil, 0.8)
	}
	if containsAnyPhrase(n, "pull the sheet in", "tighten the sheet", "haul the sheet", "bring the sail in") {
		return makeIntent(Command, "sheet", nil, 0.8)
	}

	if side := inferSideFromText(n); side != "" {
		return makeIntent(Command, "turn", []string{side}, 0.86)
	}
	if containsAnyPhrase(n, "steady as she goes", "hold course", "keep her straight", "straighten up") {
		return makeIntent(Command, "midships", nil, 0.82)
	}

	if containsAnyPhrase(n, "go fishing", "start fishing", "do some fishing", "get a line out", "get the lines out") || containsWord(n, "fishing") {
		return makeIntent(Command, "cast", nil, 0.78)
	}
	if containsAnyPhrase(n, "get the net out", "put the net out", "shoot the net", "drag the net") {
		return makeIntent(Command, "trawl", nil, 0.8)
	}
	if containsAnyPhrase(n, "haul the net", "pull the net up", "bring the gear in", "haul everything in", "pull in the gear") {
		return makeIntent(Command, "stow", nil, 0.8)
	}

	if containsAnyPhrase(n, "sell the catch", "sell the fish", "sell everything", "land the catch", "cash in") {
		return makeIntent(Command, "sell", nil, 0.82)
	}
	if containsAnyPhrase(n, "right the boat", "right the ship", "get her upright", "we capsized", "were capsized", "flip her back") {
		return makeIntent(Command, "right", nil, 0.84)
	}

	// "new sail" style refit talk without a verb the registry knows.
	if containsAnyPhrase(n, "new sail", "bigger sail", "better sail") {
		return makeIntent(Command, "upgrade", []string{"sail"}, 0.8)
	}
	if containsAnyPhrase(n, "new hull", "bigger hull", "bigger boat", "bigger hold") {
		return makeIntent(Command, "upgrade", []string{"hull"}, 0.8)
	}

	return nil
}

func inferSideFromText(normalised string) string {
	tokens := tokenise(normalised)
	if len(tokens) == 0 {
		return ""
	}
	for i, token := range tokens {
		mapped := mapSide(token)
		if mapped == "" {
			continue
		}
		// "hard to port", "bring her to starboard", "helm aport", etc.
		if i > 0 {
			prev := tokens[i-1]
			if prev == "turn" || prev == "steer" || prev == "helm" || prev == "come" || prev == "to" || prev == "hard" || prev == "go" {
				return mapped
			}
		}
		if i == 0 && len(tokens) == 1 {
			return mapped
		}
	}
	if strings.Contains(normalised, "turn ") {
		parts := strings.Split(normalised, "turn ")
		if len(parts) > 1 {
			next := strings.Fields(parts[1])
			if len(next) > 0 {
				if mapped := mapSide(next[0]); mapped != "" {
					return mapped
				}
			}
		}
	}
	return ""
}

func containsAnyPhrase(value string, phrases ...string) bool {
	for _, phrase := range phrases {
		if containsPhrase(value, phrase) {
			return true
		}
	}
	return false
}

func containsPhrase(value, phrase string) bool {
	p := normaliseInput(phrase)
	if p == "" {
		return false
	}
	return strings.Contains(" "+value+" ", " "+p+" ")
}

func containsWord(value, word string) bool {
	w := normaliseInput(word)
	if w == "" {
		return false
	}
	return strings.Contains(" "+value+" ", " "+w+" ")
}

func mergeUnique(lists ...[]string) []string {
	seen := map[string]bool{}
	out := make([]string, 0)
	for _, list := range lists {
		for _, v := range list {
			n := normaliseInput(v)
			if n == "" || seen[n] {
				continue
			}
			seen[n] = true
			out = append(out, n)
		}
	}
	return out
}

func minScore(a, b float64) float64 {
	if b < a {
		return b
	}
	return a
}

func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func IntentToCommandString(intent Intent) string {
	verb := normaliseInput(intent.Verb)
	if verb == "" {
		return ""
	}
	args := make([]string, 0, len(intent.Args)+1)
	for _, arg := range intent.Args {
		n := normaliseInput(arg)
		if n != "" {
			args = append(args, n)
		}
	}
	if intent.Quantity != nil && intent.Quantity.Raw != "" {
		args = append(args, normaliseInput(intent.Quantity.Raw))
	}
	if len(args) == 0 {
		return verb
	}
	return verb + " " + strings.Join(args, " ")
}
