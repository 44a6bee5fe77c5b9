package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"nstravel/pkg/enums"
	"nstravel/pkg/legacy"
	"nstravel/pkg/travelinfo"
)

const departuresJSON = `{
	"payload": {
		"source": "PPV",
		"departures": [{
			"direction": "Tiel",
			"name": "NS 6079",
			"plannedDateTime": "2018-05-25T22:13:00+0200",
			"actualDateTime": "2018-05-25T22:32:00+0200",
			"plannedTrack": "4b",
			"actualTrack": "5",
			"product": {"number": "6079", "categoryCode": "SPR", "shortCategoryName": "SPR", "operatorName": "NS", "type": "TRAIN"},
			"trainCategory": "SPR",
			"cancelled": false,
			"routeStations": [{"uicCode": "8400258", "mediumName": "Geldermalsen"}],
			"messages": [],
			"departureStatus": "INCOMING"
		}]
	}
}`

func runApp(t *testing.T, handler http.HandlerFunc, args ...string) (string, error) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	app.ErrWriter = &out
	base := []string{"nstravel", "--api-key", "secret", "--api-url", srv.URL}
	err := app.Run(append(base, args...))
	return out.String(), err
}

func TestDeparturesCommand(t *testing.T) {
	var query string
	out, err := runApp(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v2/departures", r.URL.Path)
		assert.Equal(t, "secret", r.Header.Get("Ocp-Apim-Subscription-Key"))
		query = r.URL.RawQuery
		_, _ = w.Write([]byte(departuresJSON))
	}, "departures", "--max", "5", "GDM")
	require.NoError(t, err)

	assert.Contains(t, query, "station=GDM")
	assert.Contains(t, query, "maxJourneys=5")
	assert.Contains(t, out, "GDM")
	assert.Contains(t, out, "22:13")
	assert.Contains(t, out, "+19 min")
	assert.Contains(t, out, "5*")
	assert.Contains(t, out, "Tiel")
	assert.Contains(t, out, "Geldermalsen")
}

func TestCalamitiesCommandJSON(t *testing.T) {
	out, err := runApp(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "en", r.URL.Query().Get("lang"))
		_, _ = w.Write([]byte(`{"meldingen": [{"id": "1", "titel": "Storing Utrecht", "beschrijving": "Geen treinen"}]}`))
	}, "--json", "calamities", "--lang", "en")
	require.NoError(t, err)

	var resp travelinfo.CalamitiesResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	require.Len(t, resp.Meldingen, 1)
	assert.Equal(t, "Storing Utrecht", *resp.Meldingen[0].Titel)
}

func TestMissingAPIKey(t *testing.T) {
	t.Setenv("NS_API_KEY", "")
	exiter := cli.OsExiter
	var code int
	cli.OsExiter = func(c int) { code = c }
	t.Cleanup(func() { cli.OsExiter = exiter })

	app := newApp()
	app.Writer = &bytes.Buffer{}
	app.ErrWriter = &bytes.Buffer{}
	err := app.Run([]string{"nstravel", "calamities"})
	require.Error(t, err)
	assert.Equal(t, 2, code)
	assert.Contains(t, err.Error(), "API key")
}

func TestInspectCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "station.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"UICCode": "8400244", "stationType": "STOPTREIN_STATION", "code": "GDM", "sporen": [], "synoniemen": []}`), 0o644))

	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	require.NoError(t, app.Run([]string{"nstravel", "--json", "inspect", "Station", path}))

	var m map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &m))
	assert.Equal(t, "GDM", m["code"])
	assert.Equal(t, "8400244", m["UICCode"])
}

func TestParseWhen(t *testing.T) {
	ams, err := time.LoadLocation("Europe/Amsterdam")
	require.NoError(t, err)
	now := time.Date(2018, 5, 25, 12, 0, 0, 0, ams)

	got, err := parseWhen("22:13", now)
	require.NoError(t, err)
	assert.True(t, got.Equal(time.Date(2018, 5, 25, 22, 13, 0, 0, ams)))

	got, err = parseWhen("2018-05-26 07:05", now)
	require.NoError(t, err)
	assert.True(t, got.Equal(time.Date(2018, 5, 26, 7, 5, 0, 0, ams)))

	got, err = parseWhen("2018-05-25T22:13:00+02:00", now)
	require.NoError(t, err)
	assert.Equal(t, 20, got.UTC().Hour())

	got, err = parseWhen("", now)
	require.NoError(t, err)
	assert.True(t, got.IsZero())

	_, err = parseWhen("tomorrow", now)
	assert.Error(t, err)
}

func TestWriteTrip(t *testing.T) {
	dep := time.Date(2018, 5, 25, 22, 20, 0, 0, time.UTC)
	arr := dep.Add(21 * time.Minute)
	from, to := "Geldermalsen", "'s-Hertogenbosch"
	track := "1"
	minutes := 21
	display, name := "IC 3579", "NS 3579"

	var out bytes.Buffer
	require.NoError(t, writeTrips(&out, travelinfo.TravelAdvice{Trips: []travelinfo.Trip{{
		PlannedDurationInMinutes: &minutes,
		Status:                   "NORMAL",
		Optimal:                  true,
		Legs: []travelinfo.Leg{{
			Name:        &name,
			Origin:      travelinfo.TripOriginDestination{Name: &from, PlannedDateTime: &dep, PlannedTrack: &track},
			Destination: travelinfo.TripOriginDestination{Name: &to, PlannedDateTime: &arr},
			Product:     &travelinfo.Product{DisplayName: &display},
		}},
	}}}))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "22:20 -> 22:41  0:21  0 transfer(s)  NORMAL  *", lines[0])
	assert.Contains(t, lines[1], "IC 3579")
	assert.Contains(t, lines[1], "'s-Hertogenbosch")
}

func TestWriteTripLegFallsBackToName(t *testing.T) {
	dep := time.Date(2018, 5, 25, 22, 20, 0, 0, time.UTC)
	name := "NS 6079"

	var out bytes.Buffer
	require.NoError(t, writeTrips(&out, travelinfo.TravelAdvice{Trips: []travelinfo.Trip{{
		Status: "CANCELLED",
		Legs: []travelinfo.Leg{
			{Name: &name, Cancelled: true, Origin: travelinfo.TripOriginDestination{PlannedDateTime: &dep}},
			{},
		},
	}}}))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[1], "NS 6079 (cancelled)")
	assert.Contains(t, lines[2], "--:--")
}

func TestWritePlan(t *testing.T) {
	at := time.Date(2018, 5, 25, 22, 20, 0, 0, time.UTC)
	var out bytes.Buffer
	require.NoError(t, writePlan(&out, []legacy.Journey{{
		Notifications:    []legacy.Notification{{Text: "Werkzaamheden"}},
		ActualDuration:   23 * time.Minute,
		PlannedDeparture: at,
		ActualDeparture:  at.Add(2 * time.Minute),
		PlannedArrival:   at.Add(21 * time.Minute),
		ActualArrival:    at.Add(25 * time.Minute),
		Status:           enums.StatusDelayed,
		Parts: []legacy.JourneyPart{{
			Train:      enums.TrainIntercity,
			RideNumber: 3579,
			Stops: []legacy.JourneyStop{
				{Station: "Geldermalsen", Time: at, Track: legacy.Track{Text: "1"}},
				{Station: "'s-Hertogenbosch", Time: at.Add(21 * time.Minute), Track: legacy.Track{Text: "3", Changed: true}},
			},
		}},
	}}))

	s := out.String()
	assert.Contains(t, s, "22:20 (22:22) -> 22:41 (22:45)  0:23")
	assert.Contains(t, s, "! Werkzaamheden")
	assert.Contains(t, s, "3579")
}

func TestWriteCalamitiesEmpty(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, writeCalamities(&out, travelinfo.CalamitiesResponse{}))
	assert.Equal(t, "No calamities.\n", out.String())
}

func TestWritePrice(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, writePrice(&out, travelinfo.InternationalPrice{PriceInCents: 4305, Product: "ICE", TravelClass: "2"}))
	assert.Equal(t, "ICE class 2: EUR 43.05\n", out.String())
}
