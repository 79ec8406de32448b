package weather

import (
	"fmt"
	"strings"
)

// emojiTable maps condition text to an emoji via case-insensitive substring
// matches. Order matters: the first match wins, so specific phenomena
// (thunder, snow) come before broad ones (cloud, clear).
var emojiTable = []struct {
	match string
	emoji string
}{
	{"thunder", "⛈️"},
	{"storm", "⛈️"},
	{"blizzard", "❄️"},
	{"snow", "❄️"},
	{"sleet", "❄️"},
	{"drizzle", "🌦️"},
	{"shower", "🌧️"},
	{"rain", "🌧️"},
	{"fog", "🌫️"},
	{"mist", "🌫️"},
	{"haze", "🌫️"},
	{"overcast", "☁️"},
	{"cloud", "☁️"},
	{"sunny", "☀️"},
	{"clear", "☀️"},
}

const defaultEmoji = "🌤️"

// ConditionEmoji returns the emoji for a condition description.
func ConditionEmoji(condition string) string {
	c := strings.ToLower(condition)
	for _, e := range emojiTable {
		if strings.Contains(c, e.match) {
			return e.emoji
		}
	}
	return defaultEmoji
}

// FormatInfo builds the weather-info sentence for a display location.
// The feels-like clause appears only when it differs from the temperature;
// humidity and wind clauses use strict thresholds (70/30 and 15/5 trigger
// nothing on the boundary itself except wind > 5).
func FormatInfo(display string, s Snapshot) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Current weather in %s: %d°F", display, s.TempF)
	if s.FeelsLikeF != s.TempF {
		fmt.Fprintf(&b, " (feels like %d°F)", s.FeelsLikeF)
	}
	fmt.Fprintf(&b, " with %s. %s", strings.ToLower(s.Condition), ConditionEmoji(s.Condition))

	if s.Humidity > 70 {
		fmt.Fprintf(&b, " It's quite humid (%d%% humidity).", s.Humidity)
	} else if s.Humidity < 30 {
		fmt.Fprintf(&b, " The air is dry (%d%% humidity).", s.Humidity)
	}

	if s.WindMPH > 15 {
		fmt.Fprintf(&b, " Windy conditions with %d mph winds.", s.WindMPH)
	} else if s.WindMPH > 5 {
		fmt.Fprintf(&b, " Light breeze at %d mph.", s.WindMPH)
	}

	return b.String()
}

// jokeTemplates embed {display location, temperature, lowercased condition,
// emoji} via indexed verbs so each template can order them freely.
var jokeTemplates = []string{
	"The meteorologist's favorite type of music? Heavy metal - especially when it's hailing! Currently in %[1]s: %[2]d°F with %[3]s! %[4]s",
	"Why do clouds never get lonely? Because they're always in good company - they're quite the cumulus crowd! Right now in %[1]s it's %[2]d°F with %[3]s! %[4]s",
	"What did the barometric pressure say to the thermometer? 'I'm feeling quite under pressure today, but you seem to be rising to the occasion!' In %[1]s: %[2]d°F with %[3]s! %[4]s",
	"The wind's favorite type of literature? Gust-ave Flaubert novels, naturally! Today in %[1]s: %[2]d°F with %[3]s and light winds! %[4]s",
	"Why did the dew point become a philosopher? Because it was always questioning the humidity of existence! Current conditions in %[1]s: %[2]d°F with %[3]s! %[4]s",
	"What's a tornado's favorite dance? The twist, obviously! But don't worry, in %[1]s it's just %[2]d°F with %[3]s! %[4]s",
}

// FormatJoke renders one joke template chosen by pick, which must return an
// index in [0, n).
func FormatJoke(display string, s Snapshot, pick func(n int) int) string {
	t := jokeTemplates[pick(len(jokeTemplates))]
	return fmt.Sprintf(t, display, s.TempF, strings.ToLower(s.Condition), ConditionEmoji(s.Condition))
}

// JokeTemplateCount reports how many live joke templates exist. Exposed for
// callers that drive pick with their own random source.
func JokeTemplateCount() int {
	return len(jokeTemplates)
}
