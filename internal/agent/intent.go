package agent

import (
	"strings"

	"github.com/nrizzio/chat-agent/internal/common"
)

// Intent is the classified category of a user message.
type Intent string

const (
	IntentWeatherJoke Intent = "weather_joke"
	IntentWeatherInfo Intent = "weather_info"
	IntentGeneralJoke Intent = "general_joke"
	IntentGreeting    Intent = "greeting"
	IntentNews        Intent = "news"
	IntentHelp        Intent = "help"
	IntentFallback    Intent = "fallback"
)

// Classify derives the intent from keyword presence. Checks are
// case-insensitive substring matches on the whole message, not tokenized
// words: "hiking" contains "hi" and classifies as a greeting. The branch
// order is significant, first match wins.
func Classify(message string) Intent {
	msg := strings.ToLower(message)

	switch {
	case common.HasAll(msg, "weather", "joke"):
		return IntentWeatherJoke
	case strings.Contains(msg, "weather"):
		return IntentWeatherInfo
	case strings.Contains(msg, "joke"):
		return IntentGeneralJoke
	case common.HasAny(msg, "hello", "hi"):
		return IntentGreeting
	case strings.Contains(msg, "news"):
		return IntentNews
	case strings.Contains(msg, "help"):
		return IntentHelp
	default:
		return IntentFallback
	}
}
