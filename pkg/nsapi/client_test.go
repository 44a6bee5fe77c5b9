package nsapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nstravel/pkg/nsdata"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL, "secret")
}

func TestDeparturesRequest(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v2/departures", r.URL.Path)
		assert.Equal(t, "secret", r.Header.Get(KeyHeader))
		assert.Equal(t, "GDM", r.URL.Query().Get("station"))
		assert.Equal(t, "5", r.URL.Query().Get("maxJourneys"))
		assert.False(t, r.URL.Query().Has("uicCode"))
		assert.False(t, r.URL.Query().Has("dateTime"))
		assert.False(t, r.URL.Query().Has("lang"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"payload": {"source": "PPV", "departures": [{
			"direction": "Tiel", "name": "NS  6079",
			"plannedDateTime": "2018-05-25T22:13:00+0200",
			"actualDateTime": "2018-05-25T22:32:00+0200",
			"plannedTrack": "4b",
			"product": {"number": "6079", "categoryCode": "SPR", "operatorName": "NS", "type": "TRAIN"},
			"trainCategory": "SPR", "cancelled": false,
			"routeStations": [], "messages": [], "departureStatus": "INCOMING"
		}]}}`))
	})

	resp, err := client.Departures(context.Background(), BoardQuery{Station: "GDM", MaxJourneys: 5})
	require.NoError(t, err)
	require.Len(t, resp.Payload.Departures, 1)

	dep := resp.Payload.Departures[0]
	assert.Equal(t, "Tiel", *dep.Direction)
	assert.Equal(t, 19*time.Minute, dep.ActualDateTime.Sub(*dep.PlannedDateTime))
}

func TestStationsRequest(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v2/stations", r.URL.Path)
		assert.Equal(t, "gelder", r.URL.Query().Get("q"))
		assert.Equal(t, "NL,D", r.URL.Query().Get("countryCodes"))
		_, _ = w.Write([]byte(`{"payload": [{"UICCode": "8400244", "stationType": "STOPTREIN_STATION", "code": "GDM",
			"namen": {"lang": "Geldermalsen", "middel": "Geldermalsen", "kort": "Geldermlsn"},
			"sporen": [], "synoniemen": [], "land": "NL",
			"heeftFaciliteiten": true, "heeftVertrektijden": true, "heeftReisassistentie": false}]}`))
	})

	resp, err := client.Stations(context.Background(), StationsQuery{Q: "gelder", CountryCodes: []string{"NL", "D"}})
	require.NoError(t, err)
	require.Len(t, resp.Payload, 1)
	assert.Equal(t, "Geldermlsn", resp.Payload[0].Namen.Kort)
}

func TestAPIErrorCarriesServerMessage(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		message string
	}{
		{"message field", http.StatusUnauthorized, `{"statusCode": 401, "message": "Access denied due to missing subscription key."}`, "Access denied due to missing subscription key."},
		{"errors list", http.StatusBadRequest, `{"code": 400, "errors": [{"message": "Invalid station", "errorCode": "REQUEST_PARAMETER_INVALID"}]}`, "Invalid station"},
		{"no body", http.StatusServiceUnavailable, ``, "Service Unavailable"},
		{"not json", http.StatusBadGateway, `<html>bad gateway</html>`, "Bad Gateway"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			_, err := client.Calamities(context.Background(), "")
			var apiErr *APIError
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, tt.status, apiErr.StatusCode)
			assert.Equal(t, tt.message, apiErr.Message)
		})
	}
}

func TestMappingErrorIsWrapped(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"source": "HARP", "trips": "none"}`))
	})

	_, err := client.Trips(context.Background(), TripsQuery{FromStation: "UT", ToStation: "ASD"})
	var mm *nsdata.TypeMismatchError
	require.ErrorAs(t, err, &mm)
	assert.Equal(t, "TravelAdvice.trips", mm.Path)
}

func TestStrictDecoding(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"payload": {"departures": []}}`))
	}))
	defer srv.Close()

	_, err := New(srv.URL, "k").Departures(context.Background(), BoardQuery{Station: "UT"})
	require.NoError(t, err)

	_, err = New(srv.URL, "k", WithStrictDecoding()).Departures(context.Background(), BoardQuery{Station: "UT"})
	var missing *nsdata.MissingFieldError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "source", missing.Field)
}

func TestQueryValuesOmitUnset(t *testing.T) {
	assert.Empty(t, TripsQuery{}.Values())
	assert.Empty(t, BoardQuery{}.Values())
	assert.Empty(t, JourneyQuery{}.Values())
	assert.Empty(t, PriceQuery{}.Values())
	assert.Empty(t, StationsQuery{}.Values())

	at := time.Date(2024, 3, 1, 10, 0, 0, 0, time.FixedZone("CET", 3600))
	v := TripsQuery{FromStation: "UT", ToStation: "ASD", DateTime: at, SearchForArrival: true}.Values()
	assert.Equal(t, "UT", v.Get("fromStation"))
	assert.Equal(t, "2024-03-01T10:00:00+01:00", v.Get("dateTime"))
	assert.Equal(t, "true", v.Get("searchForArrival"))
	assert.False(t, v.Has("viaStation"))
	assert.False(t, v.Has("travelClass"))

	jv := JourneyQuery{Train: 6079}.Values()
	assert.Equal(t, "6079", jv.Get("train"))
}

func TestRawKeepsNumbers(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/whatever", r.URL.Path)
		_, _ = w.Write([]byte(`{"count": 12345678901}`))
	})

	body, err := client.Raw(context.Background(), "api/v1/whatever", nil)
	require.NoError(t, err)
	assert.Equal(t, json.Number("12345678901"), body["count"])
}
