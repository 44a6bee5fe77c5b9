package nsapi

import (
	"context"
	"net/url"

	"nstravel/pkg/travelinfo"
)

func (c *Client) Stations(ctx context.Context, q StationsQuery) (travelinfo.StationResponse, error) {
	return getInto(ctx, c, "/api/v2/stations", q.Values(), travelinfo.DecodeStationResponse)
}

func (c *Client) Trips(ctx context.Context, q TripsQuery) (travelinfo.TravelAdvice, error) {
	return getInto(ctx, c, "/api/v3/trips", q.Values(), travelinfo.DecodeTravelAdvice)
}

func (c *Client) Trip(ctx context.Context, q TripQuery) (travelinfo.Trip, error) {
	return getInto(ctx, c, "/api/v3/trips/trip", q.Values(), travelinfo.DecodeTrip)
}

func (c *Client) Arrivals(ctx context.Context, q BoardQuery) (travelinfo.RepresentationResponseArrivalsPayload, error) {
	return getInto(ctx, c, "/api/v2/arrivals", q.Values(), travelinfo.DecodeRepresentationResponseArrivalsPayload)
}

func (c *Client) Departures(ctx context.Context, q BoardQuery) (travelinfo.RepresentationResponseDeparturesPayload, error) {
	return getInto(ctx, c, "/api/v2/departures", q.Values(), travelinfo.DecodeRepresentationResponseDeparturesPayload)
}

func (c *Client) Journey(ctx context.Context, q JourneyQuery) (travelinfo.RepresentationResponseJourney, error) {
	return getInto(ctx, c, "/api/v2/journey", q.Values(), travelinfo.DecodeRepresentationResponseJourney)
}

// Calamities lists current calamities; lang is "nl" or "en" and may be empty.
func (c *Client) Calamities(ctx context.Context, lang string) (travelinfo.CalamitiesResponse, error) {
	v := url.Values{}
	setString(v, "lang", lang)
	return getInto(ctx, c, "/api/v1/calamities", v, travelinfo.DecodeCalamitiesResponse)
}

func (c *Client) Price(ctx context.Context, q PriceQuery) (travelinfo.RepresentationResponseInternationalPrice, error) {
	return getInto(ctx, c, "/api/v2/price", q.Values(), travelinfo.DecodeRepresentationResponseInternationalPrice)
}
