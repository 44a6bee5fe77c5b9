package legacy

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nstravel/pkg/enums"
	"nstravel/pkg/nsapi"
)

const departuresXML = `<?xml version="1.0" encoding="UTF-8"?>
<ActueleVertrekTijden>
	<VertrekkendeTrein>
		<RitNummer>6079</RitNummer>
		<VertrekTijd>2018-05-25T22:13:00+0200</VertrekTijd>
		<VertrekVertraging>PT19M</VertrekVertraging>
		<VertrekVertragingTekst>+19 min</VertrekVertragingTekst>
		<EindBestemming>Tiel</EindBestemming>
		<TreinSoort>Sprinter</TreinSoort>
		<Vervoerder>NS</Vervoerder>
		<VertrekSpoor wijziging="true">4b</VertrekSpoor>
		<Opmerkingen>
			<Opmerking> Rijdt vandaag niet verder dan Tiel </Opmerking>
		</Opmerkingen>
	</VertrekkendeTrein>
	<VertrekkendeTrein>
		<RitNummer>3579</RitNummer>
		<VertrekTijd>2018-05-25T22:20:00+0200</VertrekTijd>
		<EindBestemming>Den Bosch</EindBestemming>
		<TreinSoort>Intercity</TreinSoort>
		<RouteTekst>Zaltbommel</RouteTekst>
		<Vervoerder>NS</Vervoerder>
		<VertrekSpoor wijziging="false">1</VertrekSpoor>
	</VertrekkendeTrein>
</ActueleVertrekTijden>`

const stationsXML = `<Stations>
	<Station>
		<Code>GDM</Code>
		<Type>knooppuntStoptreinstation</Type>
		<Namen><Kort>Geldermlsn</Kort><Middel>Geldermalsen</Middel><Lang>Geldermalsen</Lang></Namen>
		<Land>NL</Land>
		<UICCode>8400244</UICCode>
		<Lat>51.88301</Lat>
		<Lon>5.27127</Lon>
		<Synoniemen></Synoniemen>
	</Station>
	<Station>
		<Code>HT</Code>
		<Type>knooppuntIntercitystation</Type>
		<Namen><Kort>Den Bosch</Kort><Middel>'s-Hertogenbosch</Middel><Lang>'s-Hertogenbosch</Lang></Namen>
		<Land>NL</Land>
		<UICCode>8400319</UICCode>
		<Lat>51.69048</Lat>
		<Lon>5.29362</Lon>
		<Synoniemen><Synoniem>Hertogenbosch ('s)</Synoniem><Synoniem>Den Bosch</Synoniem></Synoniemen>
	</Station>
</Stations>`

const plannerXML = `<ReisMogelijkheden>
	<ReisMogelijkheid>
		<Melding><Id>1</Id><Ernstig>true</Ernstig><Text>Werkzaamheden</Text></Melding>
		<AantalOverstappen>0</AantalOverstappen>
		<GeplandeReisTijd>0:21</GeplandeReisTijd>
		<ActueleReisTijd>0:23</ActueleReisTijd>
		<Optimaal>false</Optimaal>
		<GeplandeVertrekTijd>2018-05-25T22:20:00+0200</GeplandeVertrekTijd>
		<ActueleVertrekTijd>2018-05-25T22:22:00+0200</ActueleVertrekTijd>
		<GeplandeAankomstTijd>2018-05-25T22:41:00+0200</GeplandeAankomstTijd>
		<ActueleAankomstTijd>2018-05-25T22:45:00+0200</ActueleAankomstTijd>
		<Status>VERTRAAGD</Status>
		<ReisDeel reisSoort="TRAIN">
			<Vervoerder>NS</Vervoerder>
			<VervoerType>Intercity</VervoerType>
			<RitNummer>3579</RitNummer>
			<Status>VOLGENS-PLAN</Status>
			<ReisStop><Naam>Geldermalsen</Naam><Tijd>2018-05-25T22:20:00+0200</Tijd><Spoor wijziging="false">1</Spoor></ReisStop>
			<ReisStop><Naam>'s-Hertogenbosch</Naam><Tijd>2018-05-25T22:41:00+0200</Tijd><Spoor wijziging="true">3</Spoor></ReisStop>
		</ReisDeel>
	</ReisMogelijkheid>
</ReisMogelijkheden>`

func TestXMLToRaw(t *testing.T) {
	root, raw, err := XMLToRaw(strings.NewReader(`<A x="1"><B>one</B><B>two</B><C/><D y="2">text</D></A>`))
	require.NoError(t, err)

	assert.Equal(t, "A", root)
	assert.Equal(t, map[string]any{
		"@x": "1",
		"B":  []any{"one", "two"},
		"C":  "",
		"D":  map[string]any{"@y": "2", "#text": "text"},
	}, raw)
}

func TestXMLToRawErrors(t *testing.T) {
	_, _, err := XMLToRaw(strings.NewReader(""))
	assert.Error(t, err)

	_, _, err = XMLToRaw(strings.NewReader("<A><B></A>"))
	assert.Error(t, err)
}

func newLegacyServer(t *testing.T, routes map[string]string) *Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		if !ok || user != "user" || pass != "pass" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		body, ok := routes[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/xml")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return New(srv.URL, "user", "pass", nil)
}

func TestDepartures(t *testing.T) {
	c := newLegacyServer(t, map[string]string{"/ns-api-avt": departuresXML})

	deps, err := c.Departures(context.Background(), "GDM")
	require.NoError(t, err)
	require.Len(t, deps, 2)

	first := deps[0]
	assert.Equal(t, 6079, first.RideNumber)
	assert.Equal(t, 19, first.Delay.Minutes)
	assert.Equal(t, "+19 min", first.Delay.String())
	assert.Equal(t, enums.TrainSprinter, first.Train)
	assert.Equal(t, enums.CarrierNS, first.Carrier)
	assert.Equal(t, Track{Text: "4b", Changed: true}, first.Track)
	assert.Equal(t, []string{"Rijdt vandaag niet verder dan Tiel"}, first.Remarks)
	assert.Equal(t, 32, first.ActualTime().Minute())

	second := deps[1]
	assert.True(t, second.Delay.IsZero())
	assert.Equal(t, "Zaltbommel", second.Route)
	assert.False(t, second.Track.Changed)
	assert.Equal(t, "1", second.Track.String())
}

func TestFetchStations(t *testing.T) {
	c := newLegacyServer(t, map[string]string{"/ns-api-stations-v2": stationsXML})

	stations, err := c.FetchStations(context.Background())
	require.NoError(t, err)
	require.Len(t, stations, 2)

	gdm := stations[0]
	assert.Equal(t, "GDM", gdm.Code)
	assert.Equal(t, enums.StationTypeNodeStoptrain, gdm.Type)
	assert.Equal(t, StationNames{Short: "Geldermlsn", Medium: "Geldermalsen", Long: "Geldermalsen"}, gdm.Names)
	assert.Equal(t, enums.CountryNetherlands, gdm.Country)
	assert.Equal(t, 8400244, gdm.UICCode)
	assert.InDelta(t, 51.88301, gdm.Lat, 1e-9)
	assert.Empty(t, gdm.Synonyms)

	assert.Equal(t, []string{"Hertogenbosch ('s)", "Den Bosch"}, stations[1].Synonyms)
}

func TestPlan(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.RawQuery
		_, _ = w.Write([]byte(plannerXML))
	}))
	defer srv.Close()

	c := New(srv.URL, "user", "pass", nil)
	options, err := c.Plan(context.Background(), PlanQuery{From: "GDM", To: "HT"})
	require.NoError(t, err)
	require.Len(t, options, 1)

	assert.Contains(t, got, "fromStation=GDM")
	assert.Contains(t, got, "departure=true")
	assert.NotContains(t, got, "viaStation")
	assert.NotContains(t, got, "dateTime")

	j := options[0]
	assert.Equal(t, []Notification{{ID: "1", Serious: true, Text: "Werkzaamheden"}}, j.Notifications)
	assert.Equal(t, 21*time.Minute, j.PlannedDuration)
	assert.Equal(t, 23*time.Minute, j.ActualDuration)
	assert.False(t, j.Optimal)
	assert.Equal(t, enums.StatusDelayed, j.Status)
	require.Len(t, j.Parts, 1)

	part := j.Parts[0]
	assert.Equal(t, "TRAIN", part.Kind)
	assert.Equal(t, enums.TrainIntercity, part.Train)
	assert.Equal(t, 3579, part.RideNumber)
	require.Len(t, part.Stops, 2)
	assert.Equal(t, Track{Text: "3", Changed: true}, part.Stops[1].Track)
}

func TestAuthenticationFailure(t *testing.T) {
	c := newLegacyServer(t, map[string]string{"/ns-api-avt": departuresXML})
	c.password = "wrong"

	_, err := c.Departures(context.Background(), "GDM")
	var apiErr *nsapi.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Contains(t, apiErr.Message, "authenticate")
}

func TestErrorDocument(t *testing.T) {
	c := newLegacyServer(t, map[string]string{
		"/ns-api-avt": `<error><message>Station niet gevonden</message></error>`,
	})

	_, err := c.Departures(context.Background(), "XYZ")
	var apiErr *nsapi.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "Station niet gevonden", apiErr.Message)
}

type memoryStore struct {
	stations []Station
	saves    int
}

func (m *memoryStore) LoadStations(context.Context) ([]Station, error) {
	if m.stations == nil {
		return nil, ErrNoStations
	}
	return m.stations, nil
}

func (m *memoryStore) SaveStations(_ context.Context, stations []Station) error {
	m.stations = stations
	m.saves++
	return nil
}

func TestStationIndexFind(t *testing.T) {
	idx := NewStationIndex([]Station{
		{Code: "GDM", Names: StationNames{"Geldermlsn", "Geldermalsen", "Geldermalsen"}},
		{Code: "HT", Names: StationNames{"Den Bosch", "'s-Hertogenbosch", "'s-Hertogenbosch"}, Synonyms: []string{"Hertogenbosch ('s)"}},
	})

	for _, q := range []string{"gdm", "GELDERMALSEN", "geldermlsn", " GDM "} {
		s, ok := idx.Find(q)
		require.True(t, ok, q)
		assert.Equal(t, "GDM", s.Code)
	}

	s, ok := idx.Find("hertogenbosch ('s)")
	require.True(t, ok)
	assert.Equal(t, "HT", s.Code)
	assert.Equal(t, "'s-Hertogenbosch", s.String())

	_, ok = idx.Find("Utrecht")
	assert.False(t, ok)
	_, ok = idx.Find("")
	assert.False(t, ok)
}

func TestLoadOrFetch(t *testing.T) {
	c := newLegacyServer(t, map[string]string{"/ns-api-stations-v2": stationsXML})
	store := &memoryStore{}

	idx, err := LoadOrFetch(context.Background(), c, store)
	require.NoError(t, err)
	assert.Equal(t, 2, idx.Len())
	assert.Equal(t, 1, store.saves)

	// second run is served from the store
	c.baseURL = "http://127.0.0.1:1"
	idx, err = LoadOrFetch(context.Background(), c, store)
	require.NoError(t, err)
	assert.Equal(t, 2, idx.Len())
	assert.Equal(t, 1, store.saves)
}
