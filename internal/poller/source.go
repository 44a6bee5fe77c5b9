package poller

import (
	"context"
	"strconv"
	"strings"

	"nstravel/internal/domain"
	"nstravel/pkg/legacy"
	"nstravel/pkg/nsapi"
	"nstravel/pkg/nsdata"
	"nstravel/pkg/travelinfo"
)

// APISource reads departures from the JSON travel information API.
type APISource struct {
	Client *nsapi.Client
	Lang   string
}

func (s APISource) Kind() domain.Source { return domain.SourceAPI }

func (s APISource) Rows(ctx context.Context, station string) ([]*domain.Row, error) {
	resp, err := s.Client.Departures(ctx, nsapi.BoardQuery{Station: station, Lang: s.Lang})
	if err != nil {
		return nil, err
	}
	rows := make([]*domain.Row, 0, len(resp.Payload.Departures))
	for _, d := range resp.Payload.Departures {
		rows = append(rows, RowFromDeparture(d))
	}
	return rows, nil
}

// RowFromDeparture projects an API departure onto a board row.
func RowFromDeparture(d travelinfo.Departure) *domain.Row {
	r := &domain.Row{
		Destination: d.Name,
		Category:    d.TrainCategory,
		Cancelled:   d.Cancelled,
	}
	if d.Direction != nil {
		r.Destination = *d.Direction
	}
	if d.PlannedDateTime != nil {
		r.Time = *d.PlannedDateTime
		if d.ActualDateTime != nil {
			r.DelayMinutes = int(d.ActualDateTime.Sub(*d.PlannedDateTime).Minutes())
		}
	} else if d.ActualDateTime != nil {
		r.Time = *d.ActualDateTime
	}
	if r.DelayMinutes > 0 {
		delay, _ := nsdata.ParseDelay(strconv.Itoa(r.DelayMinutes), "")
		r.Delay = delay.String()
	}

	switch {
	case d.ActualTrack != nil:
		r.Track = *d.ActualTrack
		r.TrackChanged = d.PlannedTrack != nil && *d.PlannedTrack != *d.ActualTrack
	case d.PlannedTrack != nil:
		r.Track = *d.PlannedTrack
	}

	if d.Product.OperatorName != nil {
		r.Carrier = *d.Product.OperatorName
	}
	if d.Product.ShortCategoryName != nil {
		r.Category = *d.Product.ShortCategoryName
	}

	via := make([]string, 0, len(d.RouteStations))
	for _, rs := range d.RouteStations {
		if rs.MediumName != nil {
			via = append(via, *rs.MediumName)
		}
	}
	r.Route = strings.Join(via, ", ")

	for _, m := range d.Messages {
		if m.Text != nil && *m.Text != "" {
			r.Messages = append(r.Messages, *m.Text)
		}
	}
	return r
}

// LegacySource reads departures from the XML webservices.
type LegacySource struct {
	Client *legacy.Client
}

func (s LegacySource) Kind() domain.Source { return domain.SourceLegacy }

func (s LegacySource) Rows(ctx context.Context, station string) ([]*domain.Row, error) {
	deps, err := s.Client.Departures(ctx, station)
	if err != nil {
		return nil, err
	}
	rows := make([]*domain.Row, 0, len(deps))
	for _, d := range deps {
		rows = append(rows, RowFromLegacy(d))
	}
	return rows, nil
}

func RowFromLegacy(d legacy.Departure) *domain.Row {
	r := &domain.Row{
		Time:         d.Time,
		DelayMinutes: d.Delay.Minutes,
		Delay:        d.Delay.String(),
		Destination:  d.Destination,
		Route:        d.Route,
		Track:        d.Track.String(),
		TrackChanged: d.Track.Changed,
		Carrier:      d.Carrier.String(),
		Category:     d.Train.String(),
	}
	if d.Tip != "" {
		r.Messages = append(r.Messages, d.Tip)
	}
	r.Messages = append(r.Messages, d.Remarks...)
	return r
}
