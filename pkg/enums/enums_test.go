package enums

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrainRoundTrip(t *testing.T) {
	for tr := TrainIntercity; tr <= TrainStopbus; tr++ {
		assert.Equal(t, tr, ParseTrain(tr.String()))
	}
	assert.Equal(t, TrainSprinter, ParseTrain("Sprinter"))
	assert.Equal(t, TrainUnknown, ParseTrain("Hogesnelheidstrein"))
	assert.Equal(t, TrainUnknown, ParseTrain(""))
	assert.Equal(t, "Unknown", TrainUnknown.String())
}

func TestCarrierRoundTrip(t *testing.T) {
	for c := CarrierNS; c <= CarrierBlauwnet; c++ {
		assert.Equal(t, c, ParseCarrier(c.String()))
	}
	assert.Equal(t, CarrierArriva, ParseCarrier("Arriva"))
	assert.Equal(t, CarrierUnknown, ParseCarrier("Keolis"))
}

func TestStationTypeRoundTrip(t *testing.T) {
	for st := StationTypeNodeIntercity; st <= StationTypeNodeSpeedtrain; st++ {
		assert.Equal(t, st, ParseStationType(st.String()))
	}
	assert.Equal(t, StationTypeNodeStoptrain, ParseStationType("knooppuntStoptreinstation"))
	assert.Equal(t, StationTypeUnknown, ParseStationType("MEGA_STATION"))
	assert.Equal(t, "station", StationTypeUnknown.String())
}

func TestCountryRoundTrip(t *testing.T) {
	for c := CountryNetherlands; c <= CountryPoland; c++ {
		assert.Equal(t, c, ParseCountry(c.String()))
	}
	assert.Equal(t, CountryGermany, ParseCountry("D"))
	assert.Equal(t, CountryUnknown, ParseCountry("LU"))
	assert.Empty(t, CountryUnknown.String())
}

func TestStatusRoundTrip(t *testing.T) {
	for s := StatusAccordingToPlan; s <= StatusPlanChanged; s++ {
		assert.Equal(t, s, ParseStatus(s.String()))
	}
	assert.Equal(t, StatusDelayed, ParseStatus("VERTRAAGD"))
	assert.Equal(t, StatusUnknown, ParseStatus("ONBEKEND"))
	assert.True(t, StatusCancelled.Disrupted())
	assert.False(t, StatusDelayed.Disrupted())
}
