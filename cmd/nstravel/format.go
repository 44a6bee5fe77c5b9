package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"nstravel/internal/config"
	"nstravel/internal/display"
	"nstravel/internal/domain"
	"nstravel/pkg/legacy"
	"nstravel/pkg/nsdata"
	"nstravel/pkg/travelinfo"
)

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// parseWhen accepts RFC 3339, "2006-01-02 15:04" or a bare "15:04" for
// today, the latter two in local time.
func parseWhen(s string, now time.Time) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation("2006-01-02 15:04", s, now.Location()); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation("15:04", s, now.Location()); err == nil {
		return time.Date(now.Year(), now.Month(), now.Day(), t.Hour(), t.Minute(), 0, 0, now.Location()), nil
	}
	return time.Time{}, fmt.Errorf("cannot parse time %q", s)
}

func str(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func clock(t *time.Time) string {
	if t == nil {
		return "--:--"
	}
	return t.Format("15:04")
}

// actual prints the actual value next to the planned one only when they
// differ.
func actual(planned, actual string) string {
	if actual == "" || actual == planned {
		return planned
	}
	return planned + " (" + actual + ")"
}

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func writeBoard(w io.Writer, station string, rows []*domain.Row, source domain.Source, now time.Time) error {
	b := &domain.Board{Station: station, Rows: rows, Source: source, UpdatedAt: now}
	return display.Render(w, b, config.Display{Station: station}.WithDefaults())
}

func writeStations(w io.Writer, stations []travelinfo.Station) error {
	tw := newTable(w)
	fmt.Fprintln(tw, "Code\tName\tUIC\tCountry\tType")
	for _, s := range stations {
		name := ""
		if s.Namen != nil {
			name = s.Namen.Lang
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", str(s.Code), name, s.UICCode, str(s.Land), s.StationType)
	}
	return tw.Flush()
}

func writeArrivals(w io.Writer, arrivals []travelinfo.Arrival) error {
	tw := newTable(w)
	fmt.Fprintln(tw, "Time\tTrack\tOrigin\tTrain\tStatus")
	for _, a := range arrivals {
		status := a.ArrivalStatus
		if a.Cancelled {
			status = "CANCELLED"
		}
		track := actual(str(a.PlannedTrack), str(a.ActualTrack))
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			actual(clock(a.PlannedDateTime), clock(a.ActualDateTime)), track, str(a.Origin), a.TrainCategory, status)
	}
	return tw.Flush()
}

func writeTrips(w io.Writer, advice travelinfo.TravelAdvice) error {
	if advice.Message != nil {
		fmt.Fprintln(w, *advice.Message)
	}
	for i, trip := range advice.Trips {
		if i > 0 {
			fmt.Fprintln(w)
		}
		if err := writeTrip(w, trip); err != nil {
			return err
		}
	}
	return nil
}

func writeTrip(w io.Writer, trip travelinfo.Trip) error {
	var dep, arr *time.Time
	if len(trip.Legs) > 0 {
		dep = trip.Legs[0].Origin.PlannedDateTime
		arr = trip.Legs[len(trip.Legs)-1].Destination.PlannedDateTime
	}

	header := fmt.Sprintf("%s -> %s", clock(dep), clock(arr))
	if trip.PlannedDurationInMinutes != nil {
		d := time.Duration(*trip.PlannedDurationInMinutes) * time.Minute
		header += "  " + nsdata.FormatDuration(d)
	}
	header += fmt.Sprintf("  %d transfer(s)  %s", trip.Transfers, trip.Status)
	if trip.Optimal {
		header += "  *"
	}
	fmt.Fprintln(w, header)
	if trip.PrimaryMessage != nil && trip.PrimaryMessage.Title != "" {
		fmt.Fprintln(w, "  !", trip.PrimaryMessage.Title)
	}

	tw := newTable(w)
	for _, leg := range trip.Legs {
		train := str(leg.Name)
		if leg.Product != nil && leg.Product.DisplayName != nil {
			train = *leg.Product.DisplayName
		}
		if leg.Cancelled {
			train += " (cancelled)"
		}
		fmt.Fprintf(tw, "  %s\t%s\t%s\t->\t%s\t%s\t%s\n",
			train,
			clock(leg.Origin.PlannedDateTime), str(leg.Origin.Name),
			clock(leg.Destination.PlannedDateTime), str(leg.Destination.Name),
			actual(str(leg.Origin.PlannedTrack), str(leg.Origin.ActualTrack)))
	}
	return tw.Flush()
}

func writeJourney(w io.Writer, j travelinfo.Journey) error {
	tw := newTable(w)
	fmt.Fprintln(tw, "Station\tArrival\tDeparture\tTrack")
	for _, s := range j.Stops {
		name := s.ID
		if s.Stop.Namen != nil {
			name = s.Stop.Namen.Lang
		}
		arr, dep, track := "", "", ""
		if len(s.Arrivals) > 0 {
			a := s.Arrivals[0]
			arr = actual(clock(a.PlannedTime), clock(a.ActualTime))
			track = actual(str(a.PlannedTrack), str(a.ActualTrack))
		}
		if len(s.Departures) > 0 {
			d := s.Departures[0]
			dep = actual(clock(d.PlannedTime), clock(d.ActualTime))
			track = actual(str(d.PlannedTrack), str(d.ActualTrack))
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", name, arr, dep, track)
	}
	return tw.Flush()
}

func writeCalamities(w io.Writer, resp travelinfo.CalamitiesResponse) error {
	var all []travelinfo.CalamitiesResourceCalamity
	if resp.Calamiteit != nil {
		all = append(all, *resp.Calamiteit)
	}
	all = append(all, resp.Meldingen...)
	if len(all) == 0 {
		_, err := fmt.Fprintln(w, "No calamities.")
		return err
	}
	for _, c := range all {
		fmt.Fprintf(w, "* %s\n", str(c.Titel))
		if text := strings.TrimSpace(str(c.Beschrijving)); text != "" {
			fmt.Fprintf(w, "  %s\n", text)
		}
	}
	return nil
}

func writePrice(w io.Writer, p travelinfo.InternationalPrice) error {
	_, err := fmt.Fprintf(w, "%s class %s: EUR %d.%02d\n", p.Product, p.TravelClass, p.PriceInCents/100, p.PriceInCents%100)
	return err
}

func writeLegacyStations(w io.Writer, stations []legacy.Station) error {
	tw := newTable(w)
	fmt.Fprintln(tw, "Code\tName\tUIC\tCountry\tType")
	for _, s := range stations {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\n", s.Code, s.Names.Long, s.UICCode, s.Country, s.Type)
	}
	return tw.Flush()
}

func writePlan(w io.Writer, options []legacy.Journey) error {
	for i, j := range options {
		if i > 0 {
			fmt.Fprintln(w)
		}
		header := fmt.Sprintf("%s -> %s  %s  %d transfer(s)  %s",
			actual(j.PlannedDeparture.Format("15:04"), j.ActualDeparture.Format("15:04")),
			actual(j.PlannedArrival.Format("15:04"), j.ActualArrival.Format("15:04")),
			nsdata.FormatDuration(j.ActualDuration), j.Transfers, j.Status)
		if j.Optimal {
			header += "  *"
		}
		fmt.Fprintln(w, header)
		for _, n := range j.Notifications {
			fmt.Fprintln(w, "  !", n.Text)
		}

		tw := newTable(w)
		for _, part := range j.Parts {
			for k, stop := range part.Stops {
				train := ""
				if k == 0 {
					train = fmt.Sprintf("%s %d", part.Train, part.RideNumber)
				}
				fmt.Fprintf(tw, "  %s\t%s\t%s\t%s\n", train, stop.Time.Format("15:04"), stop.Station, stop.Track)
			}
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}
	return nil
}
