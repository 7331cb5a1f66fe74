package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustEquipment(t *testing.T, name string, power int, timeHours float64, startHour int) Equipment {
	t.Helper()
	e, err := NewEquipment(name, power, timeHours, startHour)
	require.NoError(t, err)
	return e
}

func TestCollection_AddRejectsDuplicateName(t *testing.T) {
	c := NewCollection()
	require.NoError(t, c.Add(mustEquipment(t, "Fridge", 150, 8, 0)))

	err := c.Add(mustEquipment(t, "Fridge", 60, 2, 9))
	assert.ErrorIs(t, err, ErrDuplicateName)
	assert.Equal(t, 1, c.Len())
}

func TestCollection_AddPreservesInsertionOrder(t *testing.T) {
	c := NewCollection()
	require.NoError(t, c.Add(mustEquipment(t, "Fridge", 150, 8, 0)))
	require.NoError(t, c.Add(mustEquipment(t, "TV", 65, 4, 18)))
	require.NoError(t, c.Add(mustEquipment(t, "Lamp", 20, 5, 18)))

	eqs := c.Equipments()
	require.Len(t, eqs, 3)
	assert.Equal(t, "Fridge", eqs[0].Name)
	assert.Equal(t, "TV", eqs[1].Name)
	assert.Equal(t, "Lamp", eqs[2].Name)
}

func TestCollection_EditReplacesInPlace(t *testing.T) {
	c := NewCollection()
	require.NoError(t, c.Add(mustEquipment(t, "Fridge", 150, 8, 0)))
	require.NoError(t, c.Add(mustEquipment(t, "TV", 65, 4, 18)))

	require.NoError(t, c.Edit("Fridge", mustEquipment(t, "Freezer", 120, 10, 0)))

	eqs := c.Equipments()
	assert.Equal(t, "Freezer", eqs[0].Name)
	assert.Equal(t, 120, eqs[0].Power)
	assert.Equal(t, "TV", eqs[1].Name)

	_, found := c.Find("Fridge")
	assert.False(t, found)
}

func TestCollection_EditNotFound(t *testing.T) {
	c := NewCollection()
	err := c.Edit("Ghost", mustEquipment(t, "Ghost", 10, 1, 0))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCollection_EditRenameCollision(t *testing.T) {
	c := NewCollection()
	require.NoError(t, c.Add(mustEquipment(t, "Fridge", 150, 8, 0)))
	require.NoError(t, c.Add(mustEquipment(t, "TV", 65, 4, 18)))

	err := c.Edit("TV", mustEquipment(t, "Fridge", 65, 4, 18))
	assert.ErrorIs(t, err, ErrDuplicateName)

	// Keeping the same name is not a collision.
	require.NoError(t, c.Edit("TV", mustEquipment(t, "TV", 80, 3, 19)))
	eq, found := c.Find("TV")
	require.True(t, found)
	assert.Equal(t, 80, eq.Power)
}

func TestCollection_Delete(t *testing.T) {
	c := NewCollection()
	require.NoError(t, c.Add(mustEquipment(t, "Fridge", 150, 8, 0)))
	require.NoError(t, c.Add(mustEquipment(t, "TV", 65, 4, 18)))

	require.NoError(t, c.Delete("Fridge"))
	assert.Equal(t, 1, c.Len())

	err := c.Delete("Fridge")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCollection_DeleteAll(t *testing.T) {
	c := NewCollection()
	require.NoError(t, c.Add(mustEquipment(t, "Fridge", 150, 8, 0)))
	c.DeleteAll()
	assert.True(t, c.IsEmpty())
	assert.Zero(t, c.Len())
}

func TestCollection_FindMissingIsNotAnError(t *testing.T) {
	c := NewCollection()
	_, found := c.Find("Ghost")
	assert.False(t, found)
}

func TestCollection_Totals(t *testing.T) {
	c := NewCollection()
	require.NoError(t, c.Add(mustEquipment(t, "Fridge", 150, 8, 0)))
	require.NoError(t, c.Add(mustEquipment(t, "TV", 65, 4, 18)))

	assert.Equal(t, 215, c.TotalPower())
	assert.InDelta(t, 150*8+65*4, c.TotalEnergy(), 0.001)
}

func TestCollection_HourlyProfileIsElementwiseSum(t *testing.T) {
	c := NewCollection()
	members := []Equipment{
		mustEquipment(t, "Fridge", 150, 8, 0),
		mustEquipment(t, "TV", 65, 4.5, 18),
		mustEquipment(t, "Pump", 40, 4, 22),
	}
	for _, e := range members {
		require.NoError(t, c.Add(e))
	}

	profile := c.HourlyProfile()
	for h := 0; h < HoursPerDay; h++ {
		want := 0.0
		for _, e := range members {
			want += e.HourlyConsumption()[h]
		}
		assert.InDelta(t, want, profile[h], 1e-9, "hour %d", h)
	}
}

func TestCollection_AggregatesAreIdempotent(t *testing.T) {
	c := NewCollection()
	require.NoError(t, c.Add(mustEquipment(t, "Fridge", 150, 8, 0)))
	require.NoError(t, c.Add(mustEquipment(t, "TV", 65, 4.5, 18)))

	assert.Equal(t, c.TotalPower(), c.TotalPower())
	assert.Equal(t, c.TotalEnergy(), c.TotalEnergy())
	assert.Equal(t, c.HourlyProfile(), c.HourlyProfile())
}

func TestCollection_Rows(t *testing.T) {
	c := NewCollection()
	require.NoError(t, c.Add(mustEquipment(t, "TV", 65, 4.5, 18)))

	rows := c.Rows()
	require.Len(t, rows, 1)
	assert.Equal(t, "TV", rows[0].Name)
	assert.Equal(t, 65, rows[0].PowerW)
	assert.InDelta(t, 4.5, rows[0].TimeH, 0.001)
	assert.Equal(t, "18h-23h", rows[0].Schedule)
	assert.InDelta(t, 292.5, rows[0].EnergyWh, 0.001)
}

func TestCollection_EquipmentsReturnsCopy(t *testing.T) {
	c := NewCollection()
	require.NoError(t, c.Add(mustEquipment(t, "Fridge", 150, 8, 0)))

	eqs := c.Equipments()
	eqs[0].Name = "Mutated"

	eq, found := c.Find("Fridge")
	require.True(t, found)
	assert.Equal(t, "Fridge", eq.Name)
}
