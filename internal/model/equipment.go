package model

import (
	"errors"
	"fmt"
	"math"
)

// HoursPerDay is the length of the hourly consumption profile.
const HoursPerDay = 24

// ErrInvalidEquipment marks a failed Equipment validation. Use errors.Is to
// detect it on wrapped errors.
var ErrInvalidEquipment = errors.New("invalid equipment")

// Equipment describes one electrical load and its daily usage window.
// Units:
// - Power: W
// - Time: hours per day, may be fractional (e.g. 4.5 h)
// - StartHour/EndHour: hour of day, 0-23
//
// The usage window may wrap past midnight: EndHour < StartHour is valid.
// Identity is the Name alone; two Equipment values with the same name refer
// to the same load regardless of their other fields (see Equal).
type Equipment struct {
	Name      string  `json:"name"`
	Power     int     `json:"power"`
	Time      float64 `json:"time"`
	StartHour int     `json:"start_hour"`
	EndHour   int     `json:"end_hour"`
}

// NewEquipment validates the parameters and builds an Equipment.
// EndHour is derived as (StartHour + ceil(Time)) mod 24.
func NewEquipment(name string, power int, timeHours float64, startHour int) (Equipment, error) {
	e := Equipment{
		Name:      name,
		Power:     power,
		Time:      timeHours,
		StartHour: startHour,
	}
	e.EndHour = (startHour + int(math.Ceil(timeHours))) % HoursPerDay
	if err := e.Validate(); err != nil {
		return Equipment{}, err
	}
	return e, nil
}

// NewEquipmentWithEnd is NewEquipment with an explicit end hour override.
func NewEquipmentWithEnd(name string, power int, timeHours float64, startHour, endHour int) (Equipment, error) {
	e, err := NewEquipment(name, power, timeHours, startHour)
	if err != nil {
		return Equipment{}, err
	}
	if endHour < 0 || endHour >= HoursPerDay {
		return Equipment{}, fmt.Errorf("%w: end hour must be in [0, 23], got %d", ErrInvalidEquipment, endHour)
	}
	e.EndHour = endHour
	return e, nil
}

func (e Equipment) Validate() error {
	if e.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidEquipment)
	}
	if e.Power <= 0 {
		return fmt.Errorf("%w: power must be > 0 W, got %d", ErrInvalidEquipment, e.Power)
	}
	if e.Time <= 0 {
		return fmt.Errorf("%w: usage time must be > 0 h, got %g", ErrInvalidEquipment, e.Time)
	}
	if e.StartHour < 0 || e.StartHour >= HoursPerDay {
		return fmt.Errorf("%w: start hour must be in [0, 23], got %d", ErrInvalidEquipment, e.StartHour)
	}
	return nil
}

// Equal reports whether other refers to the same load. The comparison is by
// name only, intentionally not field-wise.
func (e Equipment) Equal(other Equipment) bool {
	return e.Name == other.Name
}

// DailyEnergy returns the daily energy draw in Wh (Power x Time).
func (e Equipment) DailyEnergy() float64 {
	return float64(e.Power) * e.Time
}

// HourlyConsumption distributes the load over the 24 hours of the day.
// Index h is the average power in watts drawn during hour-of-day h.
//
// The walk starts at StartHour and assigns full Power to each whole hour
// consumed; a partial final hour gets Power scaled by the remaining fraction.
// Passing hour 23 wraps to hour 0. Time >= 24 fills every slot with full
// Power; a slot is never counted twice in one invocation. The values sum to
// Power x min(Time, 24).
func (e Equipment) HourlyConsumption() [HoursPerDay]float64 {
	var hourly [HoursPerDay]float64
	remaining := math.Min(e.Time, HoursPerDay)
	hour := e.StartHour
	for remaining > 0 {
		slot := hour % HoursPerDay
		if remaining >= 1 {
			hourly[slot] = float64(e.Power)
			remaining--
		} else {
			hourly[slot] = float64(e.Power) * remaining
			remaining = 0
		}
		hour++
	}
	return hourly
}

// Schedule renders the usage window as "18h-23h" for display.
func (e Equipment) Schedule() string {
	return fmt.Sprintf("%dh-%dh", e.StartHour, e.EndHour)
}

func (e Equipment) String() string {
	return fmt.Sprintf("%s (%d W, %g h, %s)", e.Name, e.Power, e.Time, e.Schedule())
}
