package providers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sony/gobreaker"

	"github.com/nrizzio/chat-agent/internal/weather"
)

// WttrProvider implements the weather.Provider interface for wttr.in.
// wttr.in needs no API key and accepts either "lat,lon" or "City,ST" as the
// location path segment.
type WttrProvider struct {
	name    string
	baseURL string
	client  *http.Client
	circuit *gobreaker.CircuitBreaker
}

// NewWttrProvider creates a wttr.in client. baseURL may be empty to use the
// public endpoint; tests point it at a local server.
func NewWttrProvider(client *http.Client, baseURL string) *WttrProvider {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "wttr",
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})

	if baseURL == "" {
		baseURL = "https://wttr.in"
	}

	return &WttrProvider{
		name:    "wttr.in",
		baseURL: baseURL,
		client:  client,
		circuit: cb,
	}
}

func (p *WttrProvider) Name() string {
	return p.name
}

// Current fetches current conditions for the query. The fetch is attempted
// exactly once; any failure is returned to the caller, which substitutes a
// canned response. The circuit breaker sheds load while the upstream is
// unhealthy but never adds attempts.
func (p *WttrProvider) Current(ctx context.Context, query string) (weather.Snapshot, error) {
	u := fmt.Sprintf("%s/%s?format=j1", p.baseURL, url.PathEscape(query))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return weather.Snapshot{}, fmt.Errorf("create request: %w", err)
	}

	result, err := p.circuit.Execute(func() (interface{}, error) {
		resp, err := p.client.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
		}

		var payload wttrResponse
		if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
			return nil, fmt.Errorf("decode response: %w", err)
		}

		return parseSnapshot(payload)
	})
	if err != nil {
		return weather.Snapshot{}, err
	}

	snap, ok := result.(weather.Snapshot)
	if !ok {
		return weather.Snapshot{}, errors.New("unexpected result type from circuit breaker")
	}
	return snap, nil
}

// wttrResponse covers the fields consumed from the format=j1 payload.
// wttr.in encodes numeric values as JSON strings.
type wttrResponse struct {
	CurrentCondition []struct {
		TempF          string `json:"temp_F"`
		FeelsLikeF     string `json:"FeelsLikeF"`
		Humidity       string `json:"humidity"`
		WindspeedMiles string `json:"windspeedMiles"`
		WeatherDesc    []struct {
			Value string `json:"value"`
		} `json:"weatherDesc"`
	} `json:"current_condition"`
}

func parseSnapshot(payload wttrResponse) (weather.Snapshot, error) {
	if len(payload.CurrentCondition) == 0 {
		return weather.Snapshot{}, errors.New("missing current_condition")
	}
	cc := payload.CurrentCondition[0]

	if len(cc.WeatherDesc) == 0 || cc.WeatherDesc[0].Value == "" {
		return weather.Snapshot{}, errors.New("missing weather description")
	}

	temp, err := strconv.Atoi(cc.TempF)
	if err != nil {
		return weather.Snapshot{}, fmt.Errorf("invalid temp_F %q: %w", cc.TempF, err)
	}
	feels, err := strconv.Atoi(cc.FeelsLikeF)
	if err != nil {
		return weather.Snapshot{}, fmt.Errorf("invalid FeelsLikeF %q: %w", cc.FeelsLikeF, err)
	}
	humidity, err := strconv.Atoi(cc.Humidity)
	if err != nil {
		return weather.Snapshot{}, fmt.Errorf("invalid humidity %q: %w", cc.Humidity, err)
	}
	wind, err := strconv.Atoi(cc.WindspeedMiles)
	if err != nil {
		return weather.Snapshot{}, fmt.Errorf("invalid windspeedMiles %q: %w", cc.WindspeedMiles, err)
	}

	return weather.Snapshot{
		TempF:      temp,
		FeelsLikeF: feels,
		Humidity:   humidity,
		WindMPH:    wind,
		Condition:  cc.WeatherDesc[0].Value,
	}, nil
}
