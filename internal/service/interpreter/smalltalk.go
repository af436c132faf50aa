package interpreter

import (
	"regexp"
	"strings"
)

// Smalltalk detection runs only after interpretation fails, to pick a
// friendlier hint than the generic one. It looks at the raw lowercased
// text, not the normalized form, because filler stripping mangles
// greetings ("can you help" loses "can you").

var greetings = []string{
	"hi", "hello", "hey", "greetings", "good morning", "good afternoon",
	"good evening", "good night", "howdy", "hi there", "hello there",
	"hey there", "what's up", "whats up", "sup", "yo",
}

var questionWords = []string{
	"what", "how", "when", "where", "why", "who", "which", "can you",
	"could you", "would you", "will you", "do you", "does", "is", "are",
}

var greetingTailRe = regexp.MustCompile(`^[!.,?]*$`)

const (
	greetingHint = "Hello! I'm your Voice Automation Hub. " +
		"I can help you control your smart home devices. " +
		"Try saying: 'Turn on the living room light' or 'Set thermostat to 72 degrees'"
	questionHint = "I can help you control your devices! " +
		"Try commands like: 'Turn on the bedroom light', 'Dim the kitchen light', or 'Set thermostat to 70'"
	genericHint = "I didn't understand that command. " +
		"I can control lights, thermostat, fan, and door lock. " +
		"Try: 'Turn on the living room light', 'Set thermostat to 72', or 'Dim the bedroom light'"
)

func isGreeting(raw string) bool {
	text := strings.ToLower(strings.TrimSpace(raw))
	if text == "" {
		return false
	}
	for _, greeting := range greetings {
		if text == greeting || strings.HasPrefix(text, greeting+" ") {
			return true
		}
		if strings.HasPrefix(text, greeting) && greetingTailRe.MatchString(text[len(greeting):]) {
			return true
		}
	}
	return false
}

func isQuestion(raw string) bool {
	text := strings.ToLower(strings.TrimSpace(raw))
	if text == "" {
		return false
	}
	if strings.HasSuffix(text, "?") {
		return true
	}
	for _, word := range questionWords {
		if strings.HasPrefix(text, word+" ") || strings.HasPrefix(text, word+"?") {
			return true
		}
	}
	return false
}

// hintFor picks the friendliest applicable error hint for an utterance
// that did not resolve into a command.
func hintFor(raw string) string {
	switch {
	case isGreeting(raw):
		return greetingHint
	case isQuestion(raw):
		return questionHint
	default:
		return genericHint
	}
}
