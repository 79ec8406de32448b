package agent

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/nrizzio/chat-agent/internal/history"
	"github.com/nrizzio/chat-agent/internal/location"
	"github.com/nrizzio/chat-agent/internal/observability"
	"github.com/nrizzio/chat-agent/internal/responses"
	"github.com/nrizzio/chat-agent/internal/weather"
)

// fallbackTemplate interpolates the user's message verbatim when no keyword
// matches.
const fallbackTemplate = "I understand you said: '%s'. How can I assist you further?"

// Reply is the agent's answer to a single message.
type Reply struct {
	Content   string    `json:"content"`
	Intent    Intent    `json:"intent"`
	Timestamp time.Time `json:"timestamp"`
	UserID    string    `json:"user_id"`
}

// Status summarizes the agent for the status endpoint.
type Status struct {
	Name              string `json:"name"`
	Version           string `json:"version"`
	ConversationCount int    `json:"conversation_count"`
	MaxHistory        int    `json:"max_history"`
}

// Agent classifies messages and produces responses. It holds only
// read-only configuration plus the mutex-guarded history store, so one
// instance serves any number of concurrent callers.
type Agent struct {
	name     string
	version  string
	pool     *responses.Pool
	provider weather.Provider
	history  *history.MemoryStore
	logger   *slog.Logger
	metrics  *observability.Metrics
	pick     func(n int) int
}

// Option configures an Agent.
type Option func(*Agent)

// WithPicker overrides the random index source. Tests supply a fixed
// sequence for deterministic pool selection.
func WithPicker(pick func(n int) int) Option {
	return func(a *Agent) {
		a.pick = pick
	}
}

// New creates an Agent.
func New(name, version string, pool *responses.Pool, provider weather.Provider,
	hist *history.MemoryStore, logger *slog.Logger, metrics *observability.Metrics,
	opts ...Option) *Agent {

	a := &Agent{
		name:     name,
		version:  version,
		pool:     pool,
		provider: provider,
		history:  hist,
		logger:   logger,
		metrics:  metrics,
		pick:     rand.Intn,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Respond classifies the message and produces a response. It never fails:
// weather fetch errors are converted to canned fallback responses at this
// boundary, so callers always get a usable string.
func (a *Agent) Respond(ctx context.Context, message, userID string) Reply {
	intent := Classify(message)

	var content string
	switch intent {
	case IntentWeatherJoke:
		content = a.weatherReply(ctx, message, true)
	case IntentWeatherInfo:
		content = a.weatherReply(ctx, message, false)
	case IntentGeneralJoke:
		content = a.pool.Pick(responses.CategoryGeneralJokes, a.pick)
	case IntentGreeting:
		content = a.pool.Pick(responses.CategoryGreetings, a.pick)
	case IntentNews:
		content = a.pool.Pick(responses.CategoryNews, a.pick)
	case IntentHelp:
		content = a.pool.Help()
	default:
		content = fmt.Sprintf(fallbackTemplate, message)
	}

	reply := Reply{
		Content:   content,
		Intent:    intent,
		Timestamp: time.Now().UTC(),
		UserID:    userID,
	}

	a.history.Append(history.Entry{
		ID:        uuid.NewString(),
		Timestamp: reply.Timestamp,
		UserID:    userID,
		Message:   message,
		Response:  content,
		Intent:    string(intent),
	})

	a.metrics.MessagesProcessed.WithLabelValues(string(intent)).Inc()
	a.metrics.HistoryEntries.Set(float64(a.history.Len()))
	a.logger.Debug("message processed", "intent", intent, "user_id", userID)

	return reply
}

// weatherReply extracts a location (defaulting to Queens, NY), performs one
// provider fetch, and formats the result. Any fetch failure selects from the
// matching static fallback pool instead; the caller never sees the error.
func (a *Agent) weatherReply(ctx context.Context, message string, joke bool) string {
	place, ok := location.Extract(message)
	if !ok {
		place = location.Default()
	}

	start := time.Now()
	snap, err := a.provider.Current(ctx, place.Query)
	a.metrics.WeatherFetchDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		a.metrics.WeatherFetches.WithLabelValues("error").Inc()
		a.logger.Warn("weather fetch failed, using fallback response",
			"provider", a.provider.Name(),
			"query", place.Query,
			"error", err,
		)
		if joke {
			return a.pool.Pick(responses.CategoryWeatherJokes, a.pick)
		}
		return a.pool.Pick(responses.CategoryWeatherConditions, a.pick)
	}

	a.metrics.WeatherFetches.WithLabelValues("success").Inc()
	if joke {
		return weather.FormatJoke(place.Display, snap, a.pick)
	}
	return weather.FormatInfo(place.Display, snap)
}

// Status reports the agent's identity and history counters.
func (a *Agent) Status() Status {
	return Status{
		Name:              a.name,
		Version:           a.version,
		ConversationCount: a.history.Len(),
		MaxHistory:        a.history.MaxEntries(),
	}
}

// History lists recorded conversation turns, optionally filtered by user
// and limited to the most recent limit entries.
func (a *Agent) History(userID string, limit int) []history.Entry {
	return a.history.List(userID, limit)
}

// ClearHistory removes history for one user, or for everyone when userID is
// empty.
func (a *Agent) ClearHistory(userID string) {
	a.history.Clear(userID)
	a.metrics.HistoryEntries.Set(float64(a.history.Len()))
}
