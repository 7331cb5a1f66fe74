package model

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateName is returned when an add or rename collides with an
	// existing equipment name.
	ErrDuplicateName = errors.New("equipment name already exists")
	// ErrNotFound is returned when an edit or delete targets a name absent
	// from the collection.
	ErrNotFound = errors.New("equipment not found")
)

// Collection owns an ordered set of Equipment, unique by name.
// Insertion order is preserved across edits and deletes. The zero value is
// not ready to use; create one with NewCollection. A Collection is not safe
// for concurrent use; callers exposing it over a network boundary must add
// their own locking.
type Collection struct {
	equipments []Equipment
}

func NewCollection() *Collection {
	return &Collection{}
}

// Add appends e, rejecting a name already present.
func (c *Collection) Add(e Equipment) error {
	if err := e.Validate(); err != nil {
		return err
	}
	if _, ok := c.Find(e.Name); ok {
		return fmt.Errorf("%w: %q", ErrDuplicateName, e.Name)
	}
	c.equipments = append(c.equipments, e)
	return nil
}

// Edit replaces the entry named name with replacement, keeping its position.
// Renames are checked against the remaining entries before committing.
func (c *Collection) Edit(name string, replacement Equipment) error {
	if err := replacement.Validate(); err != nil {
		return err
	}
	idx := c.index(name)
	if idx < 0 {
		return fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	if replacement.Name != name {
		if _, ok := c.Find(replacement.Name); ok {
			return fmt.Errorf("%w: %q", ErrDuplicateName, replacement.Name)
		}
	}
	c.equipments[idx] = replacement
	return nil
}

// Delete removes the entry named name.
func (c *Collection) Delete(name string) error {
	idx := c.index(name)
	if idx < 0 {
		return fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	c.equipments = append(c.equipments[:idx], c.equipments[idx+1:]...)
	return nil
}

// DeleteAll empties the collection.
func (c *Collection) DeleteAll() {
	c.equipments = nil
}

// Find looks up an equipment by exact name. The second return value reports
// whether a match exists; a missing name is not an error.
func (c *Collection) Find(name string) (Equipment, bool) {
	idx := c.index(name)
	if idx < 0 {
		return Equipment{}, false
	}
	return c.equipments[idx], true
}

func (c *Collection) index(name string) int {
	for i, e := range c.equipments {
		if e.Name == name {
			return i
		}
	}
	return -1
}

// Equipments returns a copy of the entries in insertion order.
func (c *Collection) Equipments() []Equipment {
	out := make([]Equipment, len(c.equipments))
	copy(out, c.equipments)
	return out
}

func (c *Collection) Len() int {
	return len(c.equipments)
}

func (c *Collection) IsEmpty() bool {
	return len(c.equipments) == 0
}

// TotalPower sums the nameplate power of all entries, in W.
func (c *Collection) TotalPower() int {
	total := 0
	for _, e := range c.equipments {
		total += e.Power
	}
	return total
}

// TotalEnergy sums the daily energy draw of all entries, in Wh.
func (c *Collection) TotalEnergy() float64 {
	total := 0.0
	for _, e := range c.equipments {
		total += e.DailyEnergy()
	}
	return total
}

// HourlyProfile sums the members' hourly consumption element-wise: index h is
// the total watts drawn by the whole fleet during hour-of-day h.
func (c *Collection) HourlyProfile() [HoursPerDay]float64 {
	var profile [HoursPerDay]float64
	for _, e := range c.equipments {
		hourly := e.HourlyConsumption()
		for h := 0; h < HoursPerDay; h++ {
			profile[h] += hourly[h]
		}
	}
	return profile
}

// Row is one line of the tabular projection of a collection.
type Row struct {
	Name     string  `json:"name"`
	PowerW   int     `json:"power_w"`
	TimeH    float64 `json:"time_h"`
	Schedule string  `json:"schedule"`
	EnergyWh float64 `json:"energy_wh"`
}

// Rows projects the collection for display, one row per equipment in
// insertion order.
func (c *Collection) Rows() []Row {
	rows := make([]Row, 0, len(c.equipments))
	for _, e := range c.equipments {
		rows = append(rows, Row{
			Name:     e.Name,
			PowerW:   e.Power,
			TimeH:    e.Time,
			Schedule: e.Schedule(),
			EnergyWh: e.DailyEnergy(),
		})
	}
	return rows
}
