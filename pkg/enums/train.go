// Package enums holds the closed code lists used by the NS webservices.
// Parsing never fails: codes that are not recognised map to the Unknown
// variant of their type.
package enums

// Train is the kind of train ("TreinSoort").
type Train int

const (
	TrainUnknown Train = iota
	TrainIntercity
	TrainIntercityDirect
	TrainSprinter
	TrainStoptrain
	TrainICEInternational
	TrainThalys
	TrainStopbus
)

func (t Train) String() string {
	switch t {
	case TrainIntercity:
		return "Intercity"
	case TrainIntercityDirect:
		return "Intercity direct"
	case TrainSprinter:
		return "Sprinter"
	case TrainStoptrain:
		return "stoptrein"
	case TrainICEInternational:
		return "ICE International"
	case TrainThalys:
		return "Thalys"
	case TrainStopbus:
		return "Stopbus i.p.v. trein"
	default:
		return "Unknown"
	}
}

func ParseTrain(code string) Train {
	for t := TrainIntercity; t <= TrainStopbus; t++ {
		if t.String() == code {
			return t
		}
	}
	return TrainUnknown
}

// Carrier is the operator running a train ("Vervoerder").
type Carrier int

const (
	CarrierUnknown Carrier = iota
	CarrierNS
	CarrierNSInternational
	CarrierArriva
	CarrierBlauwnet
)

func (c Carrier) String() string {
	switch c {
	case CarrierNS:
		return "NS"
	case CarrierNSInternational:
		return "NS International"
	case CarrierArriva:
		return "Arriva"
	case CarrierBlauwnet:
		return "Blauwnet"
	default:
		return "Unknown"
	}
}

func ParseCarrier(code string) Carrier {
	for c := CarrierNS; c <= CarrierBlauwnet; c++ {
		if c.String() == code {
			return c
		}
	}
	return CarrierUnknown
}
