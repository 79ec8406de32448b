package location

import "strings"

// Place is a normalized place identifier: Query is what gets sent to the
// weather provider (a lat,lon pair or a City,ST string), Display is what
// appears in response text.
type Place struct {
	Query   string
	Display string
}

// fillerWords are stripped from the tail of a candidate, one whole word at
// a time.
var fillerWords = map[string]bool{
	"weather": true,
	"joke":    true,
	"like":    true,
	"today":   true,
	"now":     true,
	"current": true,
}

// stopWords are never valid locations on their own.
var stopWords = map[string]bool{
	"the":  true,
	"a":    true,
	"an":   true,
	"what": true,
	"how":  true,
	"tell": true,
	"me":   true,
	"is":   true,
	"it":   true,
}

var prepositions = []string{"weather in ", "weather at ", "weather for "}

// matchers are tried in priority order. Each returns a raw candidate or ""
// when it finds nothing. The first candidate that survives normalization
// and the validity filter wins; a rejected candidate falls through to the
// next matcher.
var matchers = []func(string) string{
	matchPrepositionPhrase,
	matchLeadingPlace,
	matchPrepositionTail,
}

// Extract attempts to isolate a place name from a user message. It reports
// false when no pattern yields a valid candidate, in which case callers fall
// back to the default location.
func Extract(text string) (Place, bool) {
	msg := strings.ToLower(text)

	for _, m := range matchers {
		candidate := normalize(m(msg))
		if candidate == "" || !valid(candidate) {
			continue
		}
		return Resolve(candidate), true
	}

	return Place{}, false
}

// matchPrepositionPhrase captures the phrase after "weather in/at/for",
// stopping at sentence punctuation or a following weather/joke keyword.
func matchPrepositionPhrase(msg string) string {
	for _, prep := range prepositions {
		i := strings.Index(msg, prep)
		if i < 0 {
			continue
		}
		rest := msg[i+len(prep):]
		if j := strings.IndexAny(rest, "?!"); j >= 0 {
			rest = rest[:j]
		}
		for _, stopper := range []string{" weather", " joke"} {
			if j := strings.Index(rest, stopper); j >= 0 {
				rest = rest[:j]
			}
		}
		return rest
	}
	return ""
}

// matchLeadingPlace captures everything before the first " weather", as in
// "brooklyn weather".
func matchLeadingPlace(msg string) string {
	i := strings.Index(msg, " weather")
	if i < 0 {
		return ""
	}
	return msg[:i]
}

// matchPrepositionTail captures the phrase after "weather in/at/for" to the
// end of the message, with no truncation.
func matchPrepositionTail(msg string) string {
	for _, prep := range prepositions {
		if i := strings.Index(msg, prep); i >= 0 {
			return msg[i+len(prep):]
		}
	}
	return ""
}

// normalize applies the post-processing steps to a raw candidate: trailing
// filler words are removed whole-word, trailing punctuation is stripped, and
// comma+spaces collapse to a bare comma to match the provider's query shape.
func normalize(candidate string) string {
	fields := strings.Fields(candidate)
	for len(fields) > 0 && fillerWords[fields[len(fields)-1]] {
		fields = fields[:len(fields)-1]
	}

	s := strings.Join(fields, " ")
	s = strings.TrimRight(s, ".,!?")
	return collapseCommaSpace(s)
}

func collapseCommaSpace(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		b.WriteByte(s[i])
		if s[i] == ',' {
			for i+1 < len(s) && s[i+1] == ' ' {
				i++
			}
		}
	}
	return b.String()
}

// valid rejects candidates that are too short or are bare stop words.
func valid(candidate string) bool {
	if len(candidate) <= 2 {
		return false
	}
	return !stopWords[candidate]
}
