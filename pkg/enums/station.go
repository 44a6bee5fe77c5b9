package enums

// StationType classifies a station by the trains that stop there.
type StationType int

const (
	StationTypeUnknown StationType = iota
	StationTypeNodeIntercity
	StationTypeIntercity
	StationTypeNodeStoptrain
	StationTypeStoptrain
	StationTypeMega
	StationTypeOptional
	StationTypeSpeedtrain
	StationTypeNodeSpeedtrain
)

func (t StationType) String() string {
	switch t {
	case StationTypeNodeIntercity:
		return "knooppuntIntercitystation"
	case StationTypeIntercity:
		return "intercitystation"
	case StationTypeNodeStoptrain:
		return "knooppuntStoptreinstation"
	case StationTypeStoptrain:
		return "stoptreinstation"
	case StationTypeMega:
		return "megastation"
	case StationTypeOptional:
		return "facultatiefStation"
	case StationTypeSpeedtrain:
		return "sneltreinstation"
	case StationTypeNodeSpeedtrain:
		return "knooppuntSneltreinstation"
	default:
		return "station"
	}
}

func ParseStationType(code string) StationType {
	for t := StationTypeNodeIntercity; t <= StationTypeNodeSpeedtrain; t++ {
		if t.String() == code {
			return t
		}
	}
	return StationTypeUnknown
}

// Country is the country a station lies in, by its NS country code.
type Country int

const (
	CountryUnknown Country = iota
	CountryNetherlands
	CountryGermany
	CountryBelgium
	CountryFrance
	CountryItaly
	CountryGreatBritain
	CountrySwitzerland
	CountryAustria
	CountryHungary
	CountryCzechia
	CountryPoland
)

func (c Country) String() string {
	switch c {
	case CountryNetherlands:
		return "NL"
	case CountryGermany:
		return "D"
	case CountryBelgium:
		return "B"
	case CountryFrance:
		return "F"
	case CountryItaly:
		return "I"
	case CountryGreatBritain:
		return "GB"
	case CountrySwitzerland:
		return "CH"
	case CountryAustria:
		return "A"
	case CountryHungary:
		return "H"
	case CountryCzechia:
		return "CZ"
	case CountryPoland:
		return "PL"
	default:
		return ""
	}
}

func ParseCountry(code string) Country {
	for c := CountryNetherlands; c <= CountryPoland; c++ {
		if c.String() == code {
			return c
		}
	}
	return CountryUnknown
}
