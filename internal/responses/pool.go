package responses

import (
	"log/slog"
	"os"

	"github.com/BurntSushi/toml"
)

// Category names a response pool. Every category the dispatcher references
// is guaranteed non-empty after Load.
type Category string

const (
	CategoryWeatherJokes      Category = "weatherJokes"
	CategoryWeatherConditions Category = "weatherConditions"
	CategoryGeneralJokes      Category = "generalJokes"
	CategoryGreetings         Category = "greetings"
	CategoryNews              Category = "newsResponses"
)

// Pool holds the configured response variants per category. It is loaded
// once at startup and never mutated afterwards, so it is safe to share
// across concurrent callers.
type Pool struct {
	WeatherJokes      []string `toml:"weatherJokes"`
	WeatherConditions []string `toml:"weatherConditions"`
	GeneralJokes      []string `toml:"generalJokes"`
	Greetings         []string `toml:"greetings"`
	NewsResponses     []string `toml:"newsResponses"`
	HelpText          string   `toml:"helpText"`
}

// Load reads the response pool from a TOML document. It never fails: an
// unreachable or malformed file falls back to the built-in defaults, and any
// category left empty is filled from the defaults so no category is ever
// empty.
func Load(path string, logger *slog.Logger) *Pool {
	pool := &Pool{}

	data, err := os.ReadFile(path)
	if err != nil {
		logger.Warn("response pool file unavailable, using built-in defaults", "path", path, "error", err)
	} else if err := toml.Unmarshal(data, pool); err != nil {
		logger.Warn("response pool file malformed, using built-in defaults", "path", path, "error", err)
		pool = &Pool{}
	}

	pool.fillDefaults()
	return pool
}

// Defaults returns a pool consisting entirely of the built-in responses.
func Defaults() *Pool {
	pool := &Pool{}
	pool.fillDefaults()
	return pool
}

func (p *Pool) fillDefaults() {
	if len(p.WeatherJokes) == 0 {
		p.WeatherJokes = defaultWeatherJokes
	}
	if len(p.WeatherConditions) == 0 {
		p.WeatherConditions = defaultWeatherConditions
	}
	if len(p.GeneralJokes) == 0 {
		p.GeneralJokes = defaultGeneralJokes
	}
	if len(p.Greetings) == 0 {
		p.Greetings = defaultGreetings
	}
	if len(p.NewsResponses) == 0 {
		p.NewsResponses = defaultNewsResponses
	}
	if p.HelpText == "" {
		p.HelpText = defaultHelpText
	}
}

// Variants returns the configured sequence for a category. Unknown
// categories return nil; the dispatcher only uses the constants above.
func (p *Pool) Variants(c Category) []string {
	switch c {
	case CategoryWeatherJokes:
		return p.WeatherJokes
	case CategoryWeatherConditions:
		return p.WeatherConditions
	case CategoryGeneralJokes:
		return p.GeneralJokes
	case CategoryGreetings:
		return p.Greetings
	case CategoryNews:
		return p.NewsResponses
	default:
		return nil
	}
}

// Pick selects one variant from a category using pick, which must return an
// index in [0, n). An unknown or empty category yields "".
func (p *Pool) Pick(c Category, pick func(n int) int) string {
	variants := p.Variants(c)
	if len(variants) == 0 {
		return ""
	}
	return variants[pick(len(variants))]
}

// Help returns the configured help string verbatim.
func (p *Pool) Help() string {
	return p.HelpText
}
