// Package legacy talks to the XML webservices of NS (webservices.ns.nl),
// which authenticate with HTTP Basic credentials.
package legacy

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"nstravel/pkg/nsapi"
	"nstravel/pkg/nsdata"
)

const DefaultBaseURL = "http://webservices.ns.nl"

type Client struct {
	baseURL    string
	user       string
	password   string
	httpClient *http.Client
	logger     *slog.Logger
}

func New(baseURL, user, password string, logger *slog.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		user:     user,
		password: password,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger.With("component", "legacy"),
	}
}

func (c *Client) request(ctx context.Context, path string, params url.Values) (string, map[string]any, error) {
	reqURL := c.baseURL + "/" + path
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return "", nil, fmt.Errorf("creating request: %w", err)
	}
	req.SetBasicAuth(c.user, c.password)
	req.Header.Set("Accept", "application/xml")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", nil, fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	// The webservices answer 400 rather than 401 on bad credentials.
	if resp.StatusCode == http.StatusBadRequest {
		return "", nil, &nsapi.APIError{StatusCode: resp.StatusCode, Message: "couldn't authenticate at server"}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", nil, &nsapi.APIError{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
	}

	root, raw, err := XMLToRaw(resp.Body)
	if err != nil {
		return "", nil, fmt.Errorf("decoding response: %w", err)
	}
	if root == "error" {
		msg, _ := raw["message"].(string)
		return "", nil, &nsapi.APIError{StatusCode: resp.StatusCode, Message: msg}
	}

	c.logger.Debug("request done", "path", path, "root", root)
	return root, raw, nil
}

func decodeRoot[T any](c *Client, root string, raw map[string]any, fn func(*nsdata.Decoder) T) (T, error) {
	return nsdata.Decode(root, raw, fn, nsdata.WithLogger(c.logger))
}

// Departures returns the live departure board of a station, given by code
// or name.
func (c *Client) Departures(ctx context.Context, station string) ([]Departure, error) {
	root, raw, err := c.request(ctx, "ns-api-avt", url.Values{"station": {station}})
	if err != nil {
		return nil, err
	}
	return decodeRoot(c, root, raw, decodeDepartureBoard)
}

// PlanQuery describes a journey planner request. Via, PreviousAdvices,
// NextAdvices and DateTime are left out of the request when unset.
type PlanQuery struct {
	From            string
	To              string
	Via             string
	PreviousAdvices int
	NextAdvices     int
	DateTime        time.Time
	// ArriveBy makes DateTime the arrival time instead of the departure time.
	ArriveBy bool
	NoHSL    bool
	YearCard bool
}

func (q PlanQuery) Values() url.Values {
	v := url.Values{}
	v.Set("fromStation", q.From)
	v.Set("toStation", q.To)
	if q.Via != "" {
		v.Set("viaStation", q.Via)
	}
	if q.PreviousAdvices > 0 {
		v.Set("previousAdvices", strconv.Itoa(q.PreviousAdvices))
	}
	if q.NextAdvices > 0 {
		v.Set("nextAdvices", strconv.Itoa(q.NextAdvices))
	}
	if !q.DateTime.IsZero() {
		v.Set("dateTime", nsdata.FormatDateTime(q.DateTime))
	}
	v.Set("departure", strconv.FormatBool(!q.ArriveBy))
	v.Set("hslAllowed", strconv.FormatBool(!q.NoHSL))
	v.Set("yearCard", strconv.FormatBool(q.YearCard))
	return v
}

// Plan returns the journey options between two stations.
func (c *Client) Plan(ctx context.Context, q PlanQuery) ([]Journey, error) {
	root, raw, err := c.request(ctx, "ns-api-treinplanner", q.Values())
	if err != nil {
		return nil, err
	}
	return decodeRoot(c, root, raw, decodeJourneyOptions)
}

// FetchStations downloads the full station list.
func (c *Client) FetchStations(ctx context.Context) ([]Station, error) {
	root, raw, err := c.request(ctx, "ns-api-stations-v2", nil)
	if err != nil {
		return nil, err
	}
	return decodeRoot(c, root, raw, decodeStationList)
}
