package legacy

import (
	"strings"
	"time"

	"nstravel/pkg/enums"
	"nstravel/pkg/nsdata"
)

// Track is a platform number together with whether it differs from the
// planned one.
type Track struct {
	Text    string
	Changed bool
}

func (t Track) String() string { return t.Text }

// Departure is one train on the live departure board ("VertrekkendeTrein").
type Departure struct {
	RideNumber  int
	Time        time.Time
	Delay       nsdata.Delay
	Destination string
	Train       enums.Train
	Carrier     enums.Carrier
	Track       Track
	Route       string
	Tip         string
	Remarks     []string
}

// ActualTime is the departure time including the delay.
func (d Departure) ActualTime() time.Time {
	return d.Time.Add(time.Duration(d.Delay.Minutes) * time.Minute)
}

type StationNames struct {
	Short  string
	Medium string
	Long   string
}

type Station struct {
	Code     string
	Type     enums.StationType
	Names    StationNames
	Country  enums.Country
	UICCode  int
	Lat      float64
	Lon      float64
	Synonyms []string
}

// Identifiers lists every string the station can be looked up by.
func (s Station) Identifiers() []string {
	ids := []string{s.Code, s.Names.Short, s.Names.Medium, s.Names.Long}
	return append(ids, s.Synonyms...)
}

func (s Station) String() string { return s.Names.Long }

// Notification is a message attached to a journey option ("Melding").
type Notification struct {
	ID      string
	Serious bool
	Text    string
}

// Journey is one travel option returned by the planner ("ReisMogelijkheid").
type Journey struct {
	Notifications    []Notification
	Transfers        int
	PlannedDuration  time.Duration
	ActualDuration   time.Duration
	Optimal          bool
	PlannedDeparture time.Time
	ActualDeparture  time.Time
	PlannedArrival   time.Time
	ActualArrival    time.Time
	Status           enums.Status
	Parts            []JourneyPart
}

// JourneyPart is one ride within a journey ("ReisDeel").
type JourneyPart struct {
	Kind       string
	Carrier    enums.Carrier
	Train      enums.Train
	RideNumber int
	Status     enums.Status
	Stops      []JourneyStop
}

type JourneyStop struct {
	Station string
	Time    time.Time
	Track   Track
}

func decodeDeparture(d *nsdata.Decoder) Departure {
	var v Departure
	v.RideNumber = nsdata.Required(d, "RitNummer", asInt)
	v.Time = nsdata.Required(d, "VertrekTijd", asDateTime)

	code := nsdata.OptValue(d, "VertrekVertraging", asText)
	text := nsdata.OptValue(d, "VertrekVertragingTekst", asText)
	delay, err := nsdata.ParseDelay(code, text)
	if err != nil {
		d.Fail(&nsdata.TypeMismatchError{Path: d.FieldPath("VertrekVertraging"), Expected: "delay", Got: code, Err: err})
	}
	v.Delay = delay

	v.Destination = nsdata.Required(d, "EindBestemming", asText)
	v.Train = nsdata.Required(d, "TreinSoort", asTrain)
	v.Carrier = nsdata.Required(d, "Vervoerder", asCarrier)
	v.Track = nsdata.OptValue(d, "VertrekSpoor", asTrack)
	v.Route = nsdata.OptValue(d, "RouteTekst", asText)
	v.Tip = nsdata.OptValue(d, "ReisTip", asText)
	remarks := nsdata.OptValue(d, "Opmerkingen", within("Opmerking", asText))
	for _, r := range remarks {
		v.Remarks = append(v.Remarks, strings.TrimSpace(r))
	}
	return v
}

func decodeStation(d *nsdata.Decoder) Station {
	var v Station
	v.Code = nsdata.Required(d, "Code", asText)
	v.Type = nsdata.OptValue(d, "Type", asStationType)
	v.Names = nsdata.Required(d, "Namen", nsdata.AsRecord("Namen", decodeStationNames))
	v.Country = nsdata.OptValue(d, "Land", asCountry)
	v.UICCode = nsdata.Required(d, "UICCode", asInt)
	v.Lat = nsdata.OptValue(d, "Lat", asFloat)
	v.Lon = nsdata.OptValue(d, "Lon", asFloat)
	v.Synonyms = nsdata.OptValue(d, "Synoniemen", within("Synoniem", asText))
	return v
}

func decodeStationNames(d *nsdata.Decoder) StationNames {
	return StationNames{
		Short:  nsdata.Required(d, "Kort", asText),
		Medium: nsdata.Required(d, "Middel", asText),
		Long:   nsdata.Required(d, "Lang", asText),
	}
}

func decodeNotification(d *nsdata.Decoder) Notification {
	return Notification{
		ID:      nsdata.OptValue(d, "Id", asText),
		Serious: nsdata.OptValue(d, "Ernstig", asFlag),
		Text:    nsdata.OptValue(d, "Text", asText),
	}
}

func decodeJourney(d *nsdata.Decoder) Journey {
	var v Journey
	v.Notifications = nsdata.OptValue(d, "Melding", repeated(nsdata.AsRecord("Melding", decodeNotification)))
	v.Transfers = nsdata.Required(d, "AantalOverstappen", asInt)
	v.PlannedDuration = nsdata.OptValue(d, "GeplandeReisTijd", asDuration)
	v.ActualDuration = nsdata.OptValue(d, "ActueleReisTijd", asDuration)
	v.Optimal = nsdata.OptValue(d, "Optimaal", asFlag)
	v.PlannedDeparture = nsdata.Required(d, "GeplandeVertrekTijd", asDateTime)
	v.ActualDeparture = nsdata.Required(d, "ActueleVertrekTijd", asDateTime)
	v.PlannedArrival = nsdata.Required(d, "GeplandeAankomstTijd", asDateTime)
	v.ActualArrival = nsdata.Required(d, "ActueleAankomstTijd", asDateTime)
	v.Status = nsdata.OptValue(d, "Status", asStatus)
	v.Parts = nsdata.OptValue(d, "ReisDeel", repeated(nsdata.AsRecord("ReisDeel", decodeJourneyPart)))
	return v
}

func decodeJourneyPart(d *nsdata.Decoder) JourneyPart {
	var v JourneyPart
	v.Kind = nsdata.OptValue(d, "@reisSoort", asText)
	v.Carrier = nsdata.OptValue(d, "Vervoerder", asCarrier)
	v.Train = nsdata.OptValue(d, "VervoerType", asTrain)
	v.RideNumber = nsdata.OptValue(d, "RitNummer", asInt)
	v.Status = nsdata.OptValue(d, "Status", asStatus)
	v.Stops = nsdata.OptValue(d, "ReisStop", repeated(nsdata.AsRecord("ReisStop", decodeJourneyStop)))
	return v
}

func decodeJourneyStop(d *nsdata.Decoder) JourneyStop {
	return JourneyStop{
		Station: nsdata.Required(d, "Naam", asText),
		Time:    nsdata.Required(d, "Tijd", asDateTime),
		Track:   nsdata.OptValue(d, "Spoor", asTrack),
	}
}

func decodeDepartureBoard(d *nsdata.Decoder) []Departure {
	return nsdata.OptValue(d, "VertrekkendeTrein", repeated(nsdata.AsRecord("VertrekkendeTrein", decodeDeparture)))
}

func decodeStationList(d *nsdata.Decoder) []Station {
	return nsdata.OptValue(d, "Station", repeated(nsdata.AsRecord("Station", decodeStation)))
}

func decodeJourneyOptions(d *nsdata.Decoder) []Journey {
	return nsdata.OptValue(d, "ReisMogelijkheid", repeated(nsdata.AsRecord("ReisMogelijkheid", decodeJourney)))
}
