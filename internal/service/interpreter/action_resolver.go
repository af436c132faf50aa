package interpreter

import (
	"regexp"
	"strings"

	"github.com/seu-repo/voice-hub/internal/domain"
)

// Action categories, scored independently. actionPriority below fixes the
// tie-break order when several categories reach the maximum score; keep
// it exactly as listed, the executor's behavior depends on it.
const (
	actionOn = iota
	actionOff
	actionLock
	actionUnlock
	actionBrighten
	actionDim
	actionIncrease
	actionDecrease
	actionSet
	actionCount
)

var actionNames = [actionCount]string{
	actionOn:       "ON",
	actionOff:      "OFF",
	actionLock:     "LOCK",
	actionUnlock:   "UNLOCK",
	actionBrighten: "BRIGHTEN",
	actionDim:      "DIM",
	actionIncrease: "INCREASE",
	actionDecrease: "DECREASE",
	actionSet:      "SET",
}

var actionPriority = []int{
	actionUnlock, actionLock, actionBrighten, actionDim,
	actionOn, actionOff, actionIncrease, actionDecrease, actionSet,
}

// Multi-word phrase sets. Containment scores 100 and a boundary-anchored
// match another 50; both may fire for the same phrase.
var onPhrases = []string{
	"turn on", "switch on", "power on", "put on", "bring on", "get on",
	"enable", "activate", "start", "open", "wake up",
	"make on", "set on", "turn it on", "switch it on", "power it on",
}

var offPhrases = []string{
	"turn off", "switch off", "power off", "put off", "shut off", "get off",
	"disable", "deactivate", "stop", "close", "shut down",
	"make off", "set off", "turn it off", "switch it off",
	"power down", "turn down",
}

var brightenPhrases = []string{
	"brighten", "brighter", "make brighter", "more bright", "increase brightness",
	"brighten up", "make it brighter", "more brightness", "up the brightness",
	"brighten the", "increase the brightness",
}

var dimPhrases = []string{
	"dim", "dimmer", "less bright", "make dimmer", "decrease brightness",
	"dim down", "make it dimmer", "less brightness", "down the brightness",
	"dim the", "decrease the brightness", "lower the brightness",
}

var increasePhrases = []string{
	"increase", "raise", "higher", "turn up", "crank up", "go up",
	"make higher", "up", "boost", "amplify",
}

var decreasePhrases = []string{
	"decrease", "lower", "reduce", "turn down", "crank down", "go down",
	"make lower", "down", "lessen",
}

var setPhrases = []string{
	"set", "change", "adjust", "modify", "update", "make", "configure",
	"set to", "set at", "change to", "adjust to",
}

var (
	onBoundaryPatterns  = compilePhraseBoundaries(onPhrases)
	offBoundaryPatterns = compilePhraseBoundaries(offPhrases)

	splitUnlockRe     = regexp.MustCompile(`\bun\s+lock`)
	standaloneOnRe    = regexp.MustCompile(`\bon\b`)
	standaloneOffRe   = regexp.MustCompile(`\boff\b`)
	verbThenOnRe      = regexp.MustCompile(`\b(turn|switch|put|bring|set|power|make|get)\s+on\b`)
	verbThenOffRe     = regexp.MustCompile(`\b(turn|switch|put|shut|power|make|get)\s+off\b`)
	onVerbs           = map[string]bool{"turn": true, "switch": true, "put": true, "bring": true, "set": true, "power": true, "make": true, "get": true}
	offVerbs          = map[string]bool{"turn": true, "switch": true, "put": true, "shut": true, "power": true, "make": true, "get": true}
	deviceTypeWords   = []string{"light", "device", "fan", "thermostat", "lock", "lamp"}
	lightContextWords = []string{"light", "brightness", "lamp", "bulb"}
	tempContextWords  = []string{"temperature", "temp", "heat", "cool"}
	lockContextWords  = []string{"door", "secure", "lock the"}
)

func compilePhraseBoundaries(phrases []string) []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, len(phrases))
	for i, phrase := range phrases {
		expr := strings.ReplaceAll(regexp.QuoteMeta(phrase), " ", `\s+`)
		patterns[i] = regexp.MustCompile(`\b` + expr + `\b`)
	}
	return patterns
}

// resolveAction maps normalized text to one of the nine action
// categories, or the UNKNOWN sentinel when nothing scores.
func resolveAction(text string) string {
	if text == "" {
		return domain.UnknownAction
	}

	words := strings.Fields(text)
	var scores [actionCount]int

	isLightContext := containsAny(text, lightContextWords)
	isTempContext := containsAny(text, tempContextWords)

	// ON/OFF phrase sets. "turn down" next to brightness wording means
	// DIM, never OFF.
	for i, phrase := range onPhrases {
		if strings.Contains(text, phrase) {
			scores[actionOn] += 100
		}
		if onBoundaryPatterns[i].MatchString(text) {
			scores[actionOn] += 50
		}
	}
	for i, phrase := range offPhrases {
		if phrase == "turn down" && (strings.Contains(text, "brightness") || strings.Contains(text, "light")) {
			scores[actionDim] += 50
			continue
		}
		if strings.Contains(text, phrase) {
			scores[actionOff] += 100
		}
		if offBoundaryPatterns[i].MatchString(text) {
			scores[actionOff] += 50
		}
	}

	// Lock/unlock. A split "un lock" still counts as unlock; plain lock
	// needs door context and no unlock mention.
	if strings.Contains(text, "unlock") || splitUnlockRe.MatchString(text) || strings.Contains(text, "un-lock") {
		scores[actionUnlock] += 100
	}
	if strings.Contains(text, "lock") && !strings.Contains(text, "unlock") && containsAny(text, lockContextWords) {
		scores[actionLock] += 100
	}

	// Brightness-specific phrases beat the generic increase/decrease sets.
	for _, phrase := range brightenPhrases {
		if strings.Contains(text, phrase) {
			scores[actionBrighten] += 80
		}
	}
	for _, phrase := range dimPhrases {
		if strings.Contains(text, phrase) {
			scores[actionDim] += 80
		}
	}

	// Generic increase/decrease, routed to brighten/dim in light context.
	for _, phrase := range increasePhrases {
		if strings.Contains(text, phrase) {
			if isLightContext && !isTempContext {
				scores[actionBrighten] += 60
			} else {
				scores[actionIncrease] += 50
			}
		}
	}
	for _, phrase := range decreasePhrases {
		if strings.Contains(text, phrase) {
			if isLightContext && !isTempContext {
				scores[actionDim] += 60
			} else {
				scores[actionDecrease] += 50
			}
		}
	}

	for _, phrase := range setPhrases {
		if strings.Contains(text, phrase) {
			scores[actionSet] += 40
		}
	}

	// Adjacent verb + on/off tokens.
	for i := 0; i < len(words)-1; i++ {
		if words[i+1] == "on" && onVerbs[words[i]] {
			scores[actionOn] += 70
		}
		if words[i+1] == "off" && offVerbs[words[i]] {
			scores[actionOff] += 70
		}
	}

	// Standalone on/off not covered by a verb phrase, validated by a
	// device-type word.
	if standaloneOnRe.MatchString(text) && !verbThenOnRe.MatchString(text) && containsAny(text, deviceTypeWords) {
		scores[actionOn] += 30
	}
	if standaloneOffRe.MatchString(text) && !verbThenOffRe.MatchString(text) && containsAny(text, deviceTypeWords) {
		scores[actionOff] += 30
	}

	maxScore := 0
	for _, score := range scores {
		if score > maxScore {
			maxScore = score
		}
	}
	if maxScore == 0 {
		return domain.UnknownAction
	}
	for _, category := range actionPriority {
		if scores[category] == maxScore {
			return actionNames[category]
		}
	}
	return domain.UnknownAction
}
