package interpreter

import (
	"regexp"
	"strings"

	"github.com/seu-repo/voice-hub/internal/domain"
)

// Device resolution scores every known device against the normalized
// text and picks the strictly highest scorer. The device order below is
// the enumeration order; on a tie the first device wins.
const (
	deviceLivingRoomLight = iota
	deviceBedroomLight
	deviceKitchenLight
	deviceDoorLock
	deviceThermostat
	deviceFan
	deviceCount
)

var deviceNames = [deviceCount]string{
	"living room light",
	"bedroom light",
	"kitchen light",
	"door lock",
	"thermostat",
	"fan",
}

// minDeviceScore is the floor below which resolution falls back to the
// unknown sentinel.
const minDeviceScore = 30

// Alias lists per device, covering spacing, hyphen and possessive
// variants. A boundary-anchored phrase match scores 100, a plain
// substring containment 50.
var deviceAliases = [deviceCount][]string{
	deviceLivingRoomLight: {
		"living room light", "livingroom light", "living-room light",
		"living room lights", "living room's light", "livingroom's light",
		"living rooms light",
	},
	deviceBedroomLight: {
		"bedroom light", "bedroom lights", "bed room light",
		"bed room lights", "bedroom's light", "bed rooms light",
	},
	deviceKitchenLight: {
		"kitchen light", "kitchen lights", "kitchen's light", "kitchens light",
	},
	deviceDoorLock: {
		"door lock", "doorlock", "door's lock", "doors lock",
	},
	deviceThermostat: {
		"thermostat", "thermo stat", "thermo-stat", "temperature control",
		"temp control", "thermostat control", "climate control",
	},
	deviceFan: {
		"fan", "ceiling fan", "room fan",
	},
}

var aliasPatterns = compileAliasPatterns()

// compileAliasPatterns builds a boundary-anchored regexp per alias where
// spaces match any whitespace run and hyphens also match a space.
func compileAliasPatterns() [deviceCount][]*regexp.Regexp {
	var patterns [deviceCount][]*regexp.Regexp
	for i, aliases := range deviceAliases {
		patterns[i] = make([]*regexp.Regexp, len(aliases))
		for j, alias := range aliases {
			expr := regexp.QuoteMeta(alias)
			expr = strings.ReplaceAll(expr, " ", `\s+`)
			expr = strings.ReplaceAll(expr, "-", `[-\s]`)
			patterns[i][j] = regexp.MustCompile(`\b` + expr + `\b`)
		}
	}
	return patterns
}

// Independent keyword sets for the room/light co-occurrence rule.
var (
	livingRoomKeywords = []string{"living", "livingroom", "living-room", "lounge"}
	bedroomKeywords    = []string{"bedroom", "bed room", "bed-room", "bed", "master bedroom"}
	kitchenKeywords    = []string{"kitchen", "kitchens"}
	lightKeywords      = []string{"light", "lamp", "lights", "lamps", "bulb", "bulbs"}

	climateKeywords    = []string{"temperature", "temp", "heat", "cool", "air conditioning"}
	climateActionVerbs = []string{"set", "change", "adjust", "increase", "decrease", "turn", "make", "to"}
	fanFalsePositives  = []string{"fantastic", "fancy", "fan of", "big fan"}
	brightnessWords    = []string{"bright", "dim", "brightness"}
)

// contextRule awards weight to one device when its guard holds. The
// rules are evaluated in declaration order and never short-circuit.
type contextRule struct {
	device int
	weight int
	guard  func(f textFacts) bool
}

// textFacts caches the keyword lookups shared across rules.
type textFacts struct {
	text       string
	hasLiving  bool
	hasBedroom bool
	hasKitchen bool
	hasLight   bool
	hasRoom    bool
}

func factsOf(text string) textFacts {
	f := textFacts{
		text:       text,
		hasLiving:  containsAny(text, livingRoomKeywords),
		hasBedroom: containsAny(text, bedroomKeywords),
		hasKitchen: containsAny(text, kitchenKeywords),
		hasLight:   containsAny(text, lightKeywords),
	}
	f.hasRoom = f.hasLiving || f.hasBedroom || f.hasKitchen || strings.Contains(text, "room")
	return f
}

var deviceContextRules = []contextRule{
	// Room + light co-occurrence.
	{deviceLivingRoomLight, 80, func(f textFacts) bool { return f.hasLiving && f.hasLight }},
	{deviceBedroomLight, 80, func(f textFacts) bool { return f.hasBedroom && f.hasLight }},
	{deviceKitchenLight, 80, func(f textFacts) bool { return f.hasKitchen && f.hasLight }},

	// Device-specific contextual keywords.
	{deviceThermostat, 60, func(f textFacts) bool { return strings.Contains(f.text, "thermo") }},
	{deviceThermostat, 50, func(f textFacts) bool {
		return containsAny(f.text, climateKeywords) && containsAny(f.text, climateActionVerbs)
	}},
	{deviceFan, 60, func(f textFacts) bool {
		return strings.Contains(f.text, "fan") && !containsAny(f.text, fanFalsePositives)
	}},
	{deviceFan, 40, func(f textFacts) bool {
		return strings.Contains(f.text, "ceiling fan") || strings.Contains(f.text, "room fan")
	}},
	{deviceDoorLock, 70, func(f textFacts) bool {
		return strings.Contains(f.text, "door") && strings.Contains(f.text, "lock") &&
			!strings.Contains(f.text, "unlock")
	}},
	{deviceDoorLock, 60, func(f textFacts) bool {
		return strings.Contains(f.text, "doorlock") || strings.Contains(f.text, "door-lock")
	}},

	// Generic light fallback when no room is named.
	{deviceLivingRoomLight, 30, func(f textFacts) bool { return f.hasLight && !f.hasRoom }},
	{deviceLivingRoomLight, 20, func(f textFacts) bool {
		return containsAny(f.text, brightnessWords) && !f.hasRoom
	}},
}

// resolveDevice maps normalized text to one of the fixed device
// identifiers, or the unknown sentinel when nothing scores at least
// minDeviceScore. Identical text always yields the identical device.
func resolveDevice(text string) string {
	if text == "" {
		return domain.UnknownDevice
	}

	var scores [deviceCount]int

	for i, aliases := range deviceAliases {
		for j, alias := range aliases {
			if aliasPatterns[i][j].MatchString(text) {
				scores[i] += 100
			} else if strings.Contains(text, alias) {
				scores[i] += 50
			}
		}
	}

	facts := factsOf(text)
	for _, rule := range deviceContextRules {
		if rule.guard(facts) {
			scores[rule.device] += rule.weight
		}
	}

	maxScore, maxIndex := 0, -1
	for i, score := range scores {
		if score > maxScore {
			maxScore = score
			maxIndex = i
		}
	}

	if maxIndex < 0 || maxScore < minDeviceScore {
		return domain.UnknownDevice
	}
	return deviceNames[maxIndex]
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
