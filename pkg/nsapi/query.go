package nsapi

import (
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Query fields left at their zero value are not sent.

type StationsQuery struct {
	Q                           string
	CountryCodes                []string
	Limit                       int
	IncludeNonPlannableStations bool
}

func (q StationsQuery) Values() url.Values {
	v := url.Values{}
	setString(v, "q", q.Q)
	setString(v, "countryCodes", strings.Join(q.CountryCodes, ","))
	setInt(v, "limit", q.Limit)
	setBool(v, "includeNonPlannableStations", q.IncludeNonPlannableStations)
	return v
}

type TripsQuery struct {
	FromStation      string
	ToStation        string
	ViaStation       string
	DateTime         time.Time
	SearchForArrival bool
	Context          string
	Lang             string
	TravelClass      int
	Passing          bool
	ExcludeHSL       bool
}

func (q TripsQuery) Values() url.Values {
	v := url.Values{}
	setString(v, "fromStation", q.FromStation)
	setString(v, "toStation", q.ToStation)
	setString(v, "viaStation", q.ViaStation)
	setTime(v, "dateTime", q.DateTime)
	setBool(v, "searchForArrival", q.SearchForArrival)
	setString(v, "context", q.Context)
	setString(v, "lang", q.Lang)
	setInt(v, "travelClass", q.TravelClass)
	setBool(v, "passing", q.Passing)
	setBool(v, "excludeHighSpeedTrains", q.ExcludeHSL)
	return v
}

// TripQuery reconstructs a single trip from the ctxRecon of an earlier advice.
type TripQuery struct {
	CtxRecon string
	Lang     string
	Date     time.Time
}

func (q TripQuery) Values() url.Values {
	v := url.Values{}
	setString(v, "ctxRecon", q.CtxRecon)
	setString(v, "lang", q.Lang)
	setTime(v, "date", q.Date)
	return v
}

// BoardQuery selects the arrivals or departures of one station, either by
// station code or by UIC code.
type BoardQuery struct {
	Station     string
	UICCode     string
	DateTime    time.Time
	MaxJourneys int
	Lang        string
}

func (q BoardQuery) Values() url.Values {
	v := url.Values{}
	setString(v, "station", q.Station)
	setString(v, "uicCode", q.UICCode)
	setTime(v, "dateTime", q.DateTime)
	setInt(v, "maxJourneys", q.MaxJourneys)
	setString(v, "lang", q.Lang)
	return v
}

type JourneyQuery struct {
	ID                string
	Train             int
	DateTime          time.Time
	DepartureUICCode  string
	OmitCrowdForecast bool
}

func (q JourneyQuery) Values() url.Values {
	v := url.Values{}
	setString(v, "id", q.ID)
	setInt(v, "train", q.Train)
	setTime(v, "dateTime", q.DateTime)
	setString(v, "departureUicCode", q.DepartureUICCode)
	setBool(v, "omitCrowdForecast", q.OmitCrowdForecast)
	return v
}

type PriceQuery struct {
	FromStation string
	ToStation   string
	TravelClass int
	TravelType  string
	Adults      int
	Date        time.Time
}

func (q PriceQuery) Values() url.Values {
	v := url.Values{}
	setString(v, "fromStation", q.FromStation)
	setString(v, "toStation", q.ToStation)
	setInt(v, "travelClass", q.TravelClass)
	setString(v, "travelType", q.TravelType)
	setInt(v, "adults", q.Adults)
	setTime(v, "date", q.Date)
	return v
}

func setString(v url.Values, key, s string) {
	if s != "" {
		v.Set(key, s)
	}
}

func setInt(v url.Values, key string, n int) {
	if n != 0 {
		v.Set(key, strconv.Itoa(n))
	}
}

func setBool(v url.Values, key string, b bool) {
	if b {
		v.Set(key, "true")
	}
}

func setTime(v url.Values, key string, t time.Time) {
	if !t.IsZero() {
		v.Set(key, t.Format(time.RFC3339))
	}
}
