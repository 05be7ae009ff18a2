package fares

import (
	"math"

	"github.com/go-playground/validator/v10"
)

// Fare defaults, in euros.
const (
	defaultSingleRide  = 2.50
	defaultDayPass     = 12.00
	defaultWeekPass    = 31.60
	defaultAirportRER  = 13.00
	defaultAirportTaxi = 65.00

	// Card issuance fees. Loading passes on a phone is free.
	defaultEasyCardFee       = 2.00
	defaultDecouverteCardFee = 5.00
)

// Table is the static fare table. All amounts are euros.
type Table struct {
	SingleRide  float64 `validate:"gt=0"`
	DayPass     float64 `validate:"gt=0"`
	WeekPass    float64 `validate:"gt=0"`
	AirportRER  float64 `validate:"gt=0"`
	AirportTaxi float64 `validate:"gt=0"`

	EasyCardFee       float64 `validate:"gte=0"`
	DecouverteCardFee float64 `validate:"gte=0"`
}

// Default returns the current Île-de-France figures.
func Default() Table {
	return Table{
		SingleRide:        defaultSingleRide,
		DayPass:           defaultDayPass,
		WeekPass:          defaultWeekPass,
		AirportRER:        defaultAirportRER,
		AirportTaxi:       defaultAirportTaxi,
		EasyCardFee:       defaultEasyCardFee,
		DecouverteCardFee: defaultDecouverteCardFee,
	}
}

// Validate checks that every fare is positive and fees are non-negative.
func (t Table) Validate() error {
	return validator.New().Struct(t)
}

// Overrides carries optional per-deployment fare replacements from
// config.yml. A zero value leaves the default in place.
type Overrides struct {
	SingleRide        float64 `yaml:"singleRide" validate:"gte=0"`
	DayPass           float64 `yaml:"dayPass" validate:"gte=0"`
	WeekPass          float64 `yaml:"weekPass" validate:"gte=0"`
	AirportRER        float64 `yaml:"airportRER" validate:"gte=0"`
	AirportTaxi       float64 `yaml:"airportTaxi" validate:"gte=0"`
	EasyCardFee       float64 `yaml:"easyCardFee" validate:"gte=0"`
	DecouverteCardFee float64 `yaml:"decouverteCardFee" validate:"gte=0"`
}

// Apply merges the overrides onto t, keeping t's value wherever the
// override is unset.
func (o Overrides) Apply(t Table) Table {
	if o.SingleRide > 0 {
		t.SingleRide = o.SingleRide
	}
	if o.DayPass > 0 {
		t.DayPass = o.DayPass
	}
	if o.WeekPass > 0 {
		t.WeekPass = o.WeekPass
	}
	if o.AirportRER > 0 {
		t.AirportRER = o.AirportRER
	}
	if o.AirportTaxi > 0 {
		t.AirportTaxi = o.AirportTaxi
	}
	if o.EasyCardFee > 0 {
		t.EasyCardFee = o.EasyCardFee
	}
	if o.DecouverteCardFee > 0 {
		t.DecouverteCardFee = o.DecouverteCardFee
	}
	return t
}

// Round2 rounds a euro amount to cents.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
