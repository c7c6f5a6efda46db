// Package ns provides a minimal client for the NS (Nederlandse Spoorwegen)
// travel information API gateway.
package ns

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Gateway paths, all GET, all behind the same subscription key.
const (
	disruptionsPath = "/reisinformatie-api/api/v3/disruptions"
	tripsPath       = "/reisinformatie-api/api/v3/trips"
	departuresPath  = "/reisinformatie-api/api/v2/departures"
	arrivalsPath    = "/reisinformatie-api/api/v2/arrivals"
	ovFietsPath     = "/places-api/v2/ovfiets"
	stationsPath    = "/nsapp-stations/v3"
)

// Client is a thin HTTP client for the NS gateway. It is read-only after
// construction and safe to share across calls without synchronization.
type Client struct {
	BaseURL string
	APIKey  string
	HTTP    *http.Client
}

// New returns a new client. If httpClient is nil, a default with 15s
// timeout is used.
func New(baseURL, apiKey string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	return &Client{BaseURL: strings.TrimRight(baseURL, "/"), APIKey: apiKey, HTTP: httpClient}
}

// APIError is a failed upstream exchange: a non-2xx reply (Status set,
// Message holding the upstream body's message field when present) or a
// transport failure (Status zero).
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Status != 0 {
		return fmt.Sprintf("unexpected status: %d", e.Status)
	}
	return "request failed"
}

// DisruptionsParams filters the disruptions listing.
type DisruptionsParams struct {
	IsActive bool
	Type     string // MAINTENANCE or DISRUPTION; empty means both
}

// Disruptions lists current and planned disruptions.
func (c *Client) Disruptions(ctx context.Context, p DisruptionsParams) (json.RawMessage, error) {
	q := url.Values{}
	q.Set("isActive", strconv.FormatBool(p.IsActive))
	if p.Type != "" {
		q.Set("type", p.Type)
	}
	return c.get(ctx, disruptionsPath, q)
}

// TripParams describes a journey to plan.
type TripParams struct {
	FromStation      string
	ToStation        string
	DateTime         string // RFC 3339; empty means now
	SearchForArrival bool
}

// TravelAdvice plans trips between two stations.
func (c *Client) TravelAdvice(ctx context.Context, p TripParams) (json.RawMessage, error) {
	q := url.Values{}
	q.Set("fromStation", p.FromStation)
	q.Set("toStation", p.ToStation)
	if p.DateTime != "" {
		q.Set("dateTime", p.DateTime)
	}
	q.Set("searchForArrival", strconv.FormatBool(p.SearchForArrival))
	return c.get(ctx, tripsPath, q)
}

// BoardParams selects a departure or arrival board. Station and UICCode
// are alternatives; at least one must be set.
type BoardParams struct {
	Station     string
	UICCode     string
	DateTime    string // RFC 3339; empty means now
	MaxJourneys int
	Lang        string // nl or en
}

func (p BoardParams) query() url.Values {
	q := url.Values{}
	if p.Station != "" {
		q.Set("station", p.Station)
	}
	if p.UICCode != "" {
		q.Set("uicCode", p.UICCode)
	}
	if p.DateTime != "" {
		q.Set("dateTime", p.DateTime)
	}
	q.Set("maxJourneys", strconv.Itoa(p.MaxJourneys))
	q.Set("lang", p.Lang)
	return q
}

// Departures returns the departure board for a station.
func (c *Client) Departures(ctx context.Context, p BoardParams) (json.RawMessage, error) {
	return c.get(ctx, departuresPath, p.query())
}

// Arrivals returns the arrival board for a station.
func (c *Client) Arrivals(ctx context.Context, p BoardParams) (json.RawMessage, error) {
	return c.get(ctx, arrivalsPath, p.query())
}

// OVFiets returns OV-fiets (shared bicycle) availability for a station.
func (c *Client) OVFiets(ctx context.Context, stationCode string) (json.RawMessage, error) {
	q := url.Values{}
	q.Set("station_code", stationCode)
	return c.get(ctx, ovFietsPath, q)
}

// StationSearchParams drives the station search endpoint.
type StationSearchParams struct {
	Query               string
	IncludeNonPlannable bool
	Limit               int
}

// Stations searches stations by name or code.
func (c *Client) Stations(ctx context.Context, p StationSearchParams) (json.RawMessage, error) {
	q := url.Values{}
	q.Set("q", p.Query)
	q.Set("includeNonPlannableStations", strconv.FormatBool(p.IncludeNonPlannable))
	q.Set("limit", strconv.Itoa(p.Limit))
	return c.get(ctx, stationsPath, q)
}

// get performs one authenticated GET and decodes the JSON body. No
// retries and no caching: every call is a single independent exchange.
func (c *Client) get(ctx context.Context, path string, q url.Values) (json.RawMessage, error) {
	reqURL := c.BaseURL + path
	if len(q) > 0 {
		reqURL += "?" + q.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Ocp-Apim-Subscription-Key", c.APIKey)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, &APIError{Message: fmt.Sprintf("request failed: %v", err)}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &APIError{Status: resp.StatusCode, Message: fmt.Sprintf("read response: %v", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &APIError{Status: resp.StatusCode, Message: upstreamMessage(body)}
	}

	if len(bytes.TrimSpace(body)) == 0 {
		return json.RawMessage("null"), nil
	}
	var raw json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, &APIError{Status: resp.StatusCode, Message: fmt.Sprintf("decode response: %v", err)}
	}
	return raw, nil
}

// upstreamMessage pulls the message field out of an NS error body, if the
// body is JSON and carries one.
func upstreamMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Message != "" {
		return payload.Message
	}
	return ""
}
