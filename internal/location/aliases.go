package location

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// The app's primary audience is a fixed set of NYC locations whose bare
// names are ambiguous to general geocoders, so known boroughs resolve to
// coordinates directly instead of going through free-text lookup.
var boroughQueries = map[string]string{
	"queens":           "40.7282,-73.7949",
	"queens,ny":        "40.7282,-73.7949",
	"manhattan":        "40.7831,-73.9712",
	"manhattan,ny":     "40.7831,-73.9712",
	"brooklyn":         "40.6782,-73.9442",
	"brooklyn,ny":      "40.6782,-73.9442",
	"bronx":            "40.8448,-73.8648",
	"bronx,ny":         "40.8448,-73.8648",
	"staten island":    "40.5795,-74.1502",
	"staten island,ny": "40.5795,-74.1502",
	"new york":         "40.7128,-74.0060",
	"new york,ny":      "40.7128,-74.0060",
}

// boroughNames maps the same keys to the human-readable form used in
// response text.
var boroughNames = map[string]string{
	"queens":           "Queens, NY",
	"queens,ny":        "Queens, NY",
	"manhattan":        "Manhattan, NY",
	"manhattan,ny":     "Manhattan, NY",
	"brooklyn":         "Brooklyn, NY",
	"brooklyn,ny":      "Brooklyn, NY",
	"bronx":            "Bronx, NY",
	"bronx,ny":         "Bronx, NY",
	"staten island":    "Staten Island, NY",
	"staten island,ny": "Staten Island, NY",
	"new york":         "New York, NY",
	"new york,ny":      "New York, NY",
}

// Default returns the place used when no location can be extracted.
func Default() Place {
	return Place{
		Query:   boroughQueries["queens,ny"],
		Display: boroughNames["queens,ny"],
	}
}

// Resolve turns a normalized candidate into a Place. Known boroughs map to
// a lat,lon query and a display name; anything else is title-cased and used
// verbatim as both query and display.
func Resolve(candidate string) Place {
	key := strings.TrimSpace(strings.ToLower(candidate))
	if query, ok := boroughQueries[key]; ok {
		return Place{Query: query, Display: boroughNames[key]}
	}

	tc := titleCase(candidate)
	return Place{Query: tc, Display: tc}
}

// titleCase capitalizes each whitespace-separated word within each
// comma-separated segment: "jersey city,nj" becomes "Jersey City,Nj". The
// odd state-suffix capitalization is intentional; the provider accepts it.
// The first rune is decoded as UTF-8 so multi-byte place names survive.
func titleCase(s string) string {
	segments := strings.Split(s, ",")
	for i, seg := range segments {
		words := strings.Fields(seg)
		for j, w := range words {
			r, size := utf8.DecodeRuneInString(w)
			words[j] = string(unicode.ToUpper(r)) + strings.ToLower(w[size:])
		}
		segments[i] = strings.Join(words, " ")
	}
	return strings.Join(segments, ",")
}
