package interpreter

import (
	"regexp"
	"strconv"
)

// Parameter extraction tries four pattern families in order and returns
// the first number that passes range validation for the detected context,
// or "" when the command carries no usable value.
var (
	keywordNumberRe = regexp.MustCompile(`(?:set|to|at|temperature|temp|brightness|level|make|change|adjust)\s*(?:to|at|is|the)?\s*(\d{1,3})`)
	numberUnitRe    = regexp.MustCompile(`\b(\d{1,3})\s*(?:degrees?|°|percent|%|percentile|level)`)
	verbNumberRe    = regexp.MustCompile(`(?:increase|decrease|raise|lower|make|set|change|adjust)\s+(?:to|it|the|at)?\s*(\d{1,3})`)
	bareNumberRe    = regexp.MustCompile(`\b(\d{1,3})\b`)

	temperatureCtxRe = regexp.MustCompile(`temperature|temp|heat|cool|thermostat`)
	brightnessCtxRe  = regexp.MustCompile(`brightness|bright|dim|light level`)
)

func inTemperatureRange(v int) bool { return v >= 60 && v <= 85 }
func inBrightnessRange(v int) bool  { return v >= 0 && v <= 100 }

func extractParameter(text string) string {
	if text == "" {
		return ""
	}

	isTempCtx := temperatureCtxRe.MatchString(text)
	isBrightCtx := brightnessCtxRe.MatchString(text)

	// Family 1: keyword followed by a number ("set thermostat to 72").
	if m := keywordNumberRe.FindStringSubmatch(text); m != nil {
		value, _ := strconv.Atoi(m[1])
		switch {
		case isTempCtx:
			if inTemperatureRange(value) {
				return m[1]
			}
		case isBrightCtx:
			if inBrightnessRange(value) {
				return m[1]
			}
		default:
			if inTemperatureRange(value) || inBrightnessRange(value) {
				return m[1]
			}
		}
	}

	// Family 2: number tagged with a unit ("72 degrees", "40%").
	if m := numberUnitRe.FindStringSubmatch(text); m != nil {
		value, _ := strconv.Atoi(m[1])
		if degreeUnitRe.MatchString(text) {
			if inTemperatureRange(value) {
				return m[1]
			}
		} else if percentUnitRe.MatchString(text) {
			if inBrightnessRange(value) {
				return m[1]
			}
		}
	}

	// Family 3: action verb followed by a number ("increase to 75").
	if m := verbNumberRe.FindStringSubmatch(text); m != nil {
		value, _ := strconv.Atoi(m[1])
		if isTempCtx {
			if inTemperatureRange(value) {
				return m[1]
			}
		} else if inBrightnessRange(value) {
			return m[1]
		}
	}

	// Family 4: any bare number token, first one in range wins.
	for _, m := range bareNumberRe.FindAllStringSubmatch(text, -1) {
		value, _ := strconv.Atoi(m[1])
		switch {
		case isTempCtx:
			if inTemperatureRange(value) {
				return m[1]
			}
		case isBrightCtx:
			if inBrightnessRange(value) {
				return m[1]
			}
		default:
			if inBrightnessRange(value) {
				return m[1]
			}
		}
	}

	return ""
}

var (
	degreeUnitRe  = regexp.MustCompile(`degree|°`)
	percentUnitRe = regexp.MustCompile(`percent|%`)
)
