package flights

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSeatMap_EconomyOnly(t *testing.T) {
	seats := GenerateSeatMap(CapacityConfig{Economy: 7})

	assert.Len(t, seats, 7)

	expected := []struct {
		number   string
		position SeatPosition
	}{
		{"1A", PositionWindow},
		{"1B", PositionMiddle},
		{"1C", PositionAisle},
		{"1D", PositionAisle},
		{"1E", PositionMiddle},
		{"1F", PositionWindow},
		{"2A", PositionWindow},
	}

	for i, exp := range expected {
		assert.Equal(t, exp.number, seats[i].SeatNumber)
		assert.Equal(t, exp.position, seats[i].Position)
		assert.Equal(t, ClassEconomy, seats[i].CabinClass)
		assert.True(t, seats[i].IsAvailable)
	}
}

func TestGenerateSeatMap_MixedClasses(t *testing.T) {
	seats := GenerateSeatMap(CapacityConfig{First: 4, Business: 6, Economy: 12})

	assert.Len(t, seats, 22)

	// First class fills row 1 completely (2-2).
	assert.Equal(t, "1A", seats[0].SeatNumber)
	assert.Equal(t, ClassFirst, seats[0].CabinClass)
	assert.Equal(t, "1E", seats[3].SeatNumber)

	// Business continues at row 2, partially filling row 3.
	assert.Equal(t, "2A", seats[4].SeatNumber)
	assert.Equal(t, ClassBusiness, seats[4].CabinClass)
	assert.Equal(t, "3A", seats[8].SeatNumber)
	assert.Equal(t, "3B", seats[9].SeatNumber)

	// Economy starts on the next row with the 3-3 layout.
	assert.Equal(t, "4A", seats[10].SeatNumber)
	assert.Equal(t, ClassEconomy, seats[10].CabinClass)
	assert.Equal(t, "5F", seats[21].SeatNumber)
}

func TestGenerateSeatMap_PremiumPositions(t *testing.T) {
	seats := GenerateSeatMap(CapacityConfig{First: 4})

	assert.Equal(t, PositionWindow, seats[0].Position) // 1A
	assert.Equal(t, PositionAisle, seats[1].Position)  // 1B
	assert.Equal(t, PositionAisle, seats[2].Position)  // 1D
	assert.Equal(t, PositionWindow, seats[3].Position) // 1E
}

func TestGenerateSeatMap_Surcharges(t *testing.T) {
	seats := GenerateSeatMap(CapacityConfig{First: 4, Economy: 12})

	// Premium cabin surcharges are bundled into the class fare.
	for _, seat := range seats[:4] {
		assert.Zero(t, seat.Surcharge)
	}

	// First economy row is the exit row.
	economy := seats[4:]
	for _, seat := range economy[:6] {
		assert.True(t, seat.ExitRow)
		assert.Equal(t, exitRowSurcharge, seat.Surcharge)
	}

	// Second economy row: window/aisle carry the positional surcharge,
	// middles none.
	for _, seat := range economy[6:] {
		assert.False(t, seat.ExitRow)
		switch seat.Position {
		case PositionWindow, PositionAisle:
			assert.Equal(t, windowAisleSurcharge, seat.Surcharge)
		default:
			assert.Zero(t, seat.Surcharge)
		}
	}
}

func TestGenerateSeatMap_Deterministic(t *testing.T) {
	cfg := CapacityConfig{First: 3, Business: 5, Economy: 20}

	first := GenerateSeatMap(cfg)
	second := GenerateSeatMap(cfg)

	assert.Equal(t, first, second)
}

func TestGenerateSeatMap_Empty(t *testing.T) {
	assert.Empty(t, GenerateSeatMap(CapacityConfig{}))
}
