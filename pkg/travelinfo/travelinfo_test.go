package travelinfo

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nstravel/pkg/nsdata"
)

func rawJSON(t *testing.T, s string) map[string]any {
	t.Helper()
	dec := json.NewDecoder(strings.NewReader(s))
	dec.UseNumber()
	var m map[string]any
	require.NoError(t, dec.Decode(&m))
	return m
}

func TestDecodeStationSynthesizesNames(t *testing.T) {
	raw := rawJSON(t, `{"UICCode": "8400244", "name": "Geldermalsen", "land": "NL"}`)

	st, err := DecodeStation(raw)
	require.NoError(t, err)

	assert.Equal(t, "8400244", st.UICCode)
	require.NotNil(t, st.Namen)
	assert.Equal(t, StationsNamen{Kort: "Geldermalsen", Middel: "Geldermalsen", Lang: "Geldermalsen"}, *st.Namen)
	require.NotNil(t, st.Land)
	assert.Equal(t, "NL", *st.Land)
}

func TestDecodeStationCountryCode(t *testing.T) {
	raw := rawJSON(t, `{"UICCode": "8000105", "name": "Frankfurt (Main) Hbf", "countryCode": "D"}`)

	st, err := DecodeStation(raw)
	require.NoError(t, err)
	require.NotNil(t, st.Land)
	assert.Equal(t, "D", *st.Land)
}

func TestDecodeStationKeepsExplicitNames(t *testing.T) {
	raw := rawJSON(t, `{
		"UICCode": "8400621", "stationType": "MEGA_STATION", "code": "UT",
		"namen": {"lang": "Utrecht Centraal", "middel": "Utrecht C.", "kort": "Utrecht C"},
		"sporen": [{"spoorNummer": "5"}, {"spoorNummer": "7"}],
		"synoniemen": ["Utrecht"], "lat": 52.089, "lng": 5.110,
		"heeftFaciliteiten": true, "heeftVertrektijden": true, "heeftReisassistentie": true,
		"ingangsDatum": "2020-01-01"
	}`)

	st, err := DecodeStation(raw)
	require.NoError(t, err)
	assert.Equal(t, "Utrecht C.", st.Namen.Middel)
	assert.Equal(t, []Track{{SpoorNummer: "5"}, {SpoorNummer: "7"}}, st.Sporen)
	assert.InDelta(t, 52.089, *st.Lat, 1e-9)
	require.NotNil(t, st.IngangsDatum)
	assert.Equal(t, 2020, st.IngangsDatum.Year())
	assert.Nil(t, st.EindDatum)
}

func TestDecodeDepartureWithoutActualTime(t *testing.T) {
	raw := rawJSON(t, `{
		"direction": "Tiel",
		"name": "NS  6079",
		"plannedDateTime": "2018-05-25T22:13:00+0200",
		"plannedTrack": "3",
		"product": {"number": "6079", "categoryCode": "SPR", "operatorName": "NS", "type": "TRAIN"},
		"trainCategory": "SPR",
		"cancelled": false,
		"routeStations": [{"uicCode": "8400244", "mediumName": "Geldermalsen"}],
		"messages": [],
		"departureStatus": "INCOMING"
	}`)

	dep, err := DecodeDeparture(raw)
	require.NoError(t, err)

	assert.Nil(t, dep.ActualDateTime)
	require.NotNil(t, dep.PlannedDateTime)
	assert.Equal(t, "2018-05-25T22:13:00+0200", nsdata.FormatDateTime(*dep.PlannedDateTime))
	assert.Equal(t, "SPR", *dep.Product.CategoryCode)
	assert.Len(t, dep.RouteStations, 1)
	assert.Empty(t, dep.Messages)
}

func TestDecodeDeparturesResponse(t *testing.T) {
	raw := rawJSON(t, `{"payload": {"source": "PPV", "departures": [
		{"name": "A", "plannedDateTime": "2024-03-01T10:00:00+0100", "product": {"type": "TRAIN"},
		 "trainCategory": "IC", "cancelled": false, "routeStations": [], "messages": [], "departureStatus": "ON_STATION"},
		{"name": "B", "plannedDateTime": "2024-03-01T10:05:00+0100", "actualDateTime": "2024-03-01T10:09:00+0100",
		 "product": {"type": "TRAIN"}, "trainCategory": "SPR", "cancelled": true,
		 "routeStations": [], "messages": [{"text": "Rijdt niet", "type": "DISRUPTION"}], "departureStatus": "INCOMING"}
	]}}`)

	resp, err := DecodeRepresentationResponseDeparturesPayload(raw)
	require.NoError(t, err)

	deps := resp.Payload.Departures
	require.Len(t, deps, 2)
	assert.Equal(t, "A", deps[0].Name)
	assert.Equal(t, "B", deps[1].Name)
	assert.True(t, deps[1].Cancelled)
	require.NotNil(t, deps[1].ActualDateTime)
	assert.Equal(t, 4.0, deps[1].ActualDateTime.Sub(*deps[1].PlannedDateTime).Minutes())
}

func TestDecodeLinkURI(t *testing.T) {
	link, err := DecodeLink(rawJSON(t, `{"title": "Meer info", "uri": "https://www.ns.nl/storingen"}`))
	require.NoError(t, err)
	require.NotNil(t, link.URL)
	assert.Equal(t, "https://www.ns.nl/storingen", *link.URL)
}

func TestDecodeTypeMismatch(t *testing.T) {
	_, err := DecodeStationResponse(rawJSON(t, `{"payload": {"UICCode": "1"}}`))

	var mm *nsdata.TypeMismatchError
	require.ErrorAs(t, err, &mm)
	assert.Equal(t, "StationResponse.payload", mm.Path)
}

func TestRegistry(t *testing.T) {
	reg, err := Registry()
	require.NoError(t, err)

	names := reg.Names()
	assert.Contains(t, names, "Trip")
	assert.Contains(t, names, "Leg")
	assert.Contains(t, names, "Station")
	assert.Contains(t, names, "TravelAdvice")
	assert.NoError(t, reg.Check())
}

func TestRegistryStationHook(t *testing.T) {
	reg, err := Registry()
	require.NoError(t, err)

	inst, err := reg.Construct("Station", rawJSON(t, `{"UICCode": "8400244", "name": "Geldermalsen", "land": "NL"}`))
	require.NoError(t, err)

	namen, ok := inst.Get("namen").(*nsdata.Instance)
	require.True(t, ok)
	assert.Equal(t, map[string]any{"kort": "Geldermalsen", "middel": "Geldermalsen", "lang": "Geldermalsen"}, namen.Map())
	assert.Equal(t, "NL", inst.Get("land"))
	assert.True(t, inst.IsAbsent("EVACode"))
}

func TestRegistryStationHookChecksTypes(t *testing.T) {
	reg, err := Registry()
	require.NoError(t, err)

	_, err = reg.Construct("Station", rawJSON(t, `{"UICCode": "8000105", "name": "Frankfurt (Main) Hbf", "countryCode": 4}`))
	var mismatch *nsdata.TypeMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, "Station.countryCode", mismatch.Path)

	_, err = reg.Construct("Station", rawJSON(t, `{"UICCode": "8000105", "name": ["Frankfurt"]}`))
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, "Station.name", mismatch.Path)
}

func TestRegistryStationHookKeepsStrictMode(t *testing.T) {
	reg, err := Registry()
	require.NoError(t, err)

	inst, err := reg.Construct("Station", rawJSON(t, `{
		"UICCode": "8400244", "stationType": "STOPTREIN_STATION", "sporen": [], "synoniemen": [],
		"heeftFaciliteiten": true, "heeftVertrektijden": true, "heeftReisassistentie": false,
		"name": "Geldermalsen"
	}`), nsdata.WithStrict())
	require.NoError(t, err, "synthesized names carry every required field")
	assert.Equal(t, "Geldermalsen", inst.Get("namen").(*nsdata.Instance).Get("lang"))
}

func TestRegistryMatchesGeneratedDecoders(t *testing.T) {
	reg, err := Registry()
	require.NoError(t, err)

	raw := `{"uicCode": "8400058", "mediumName": "Amsterdam C."}`
	inst, err := reg.Construct("RouteStation", rawJSON(t, raw))
	require.NoError(t, err)

	rs, err := DecodeRouteStation(rawJSON(t, raw))
	require.NoError(t, err)
	require.NotNil(t, rs.UICCode)
	assert.Equal(t, *rs.UICCode, inst.Get("uicCode"))
	assert.Equal(t, *rs.MediumName, inst.Get("mediumName"))
}
