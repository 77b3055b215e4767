package flights

import "fmt"

// Seat map layouts. First and business cabins use a 2-2 configuration,
// economy a 3-3 configuration. Rows are numbered top-down across cabins.
var (
	premiumLetters = []string{"A", "B", "D", "E"}
	economyLetters = []string{"A", "B", "C", "D", "E", "F"}
)

const (
	exitRowSurcharge     = 50.0
	windowAisleSurcharge = 15.0
)

// CapacityConfig is the per-class seat count a flight is created with.
type CapacityConfig struct {
	Economy  int
	Business int
	First    int
}

func (c CapacityConfig) Total() int {
	return c.Economy + c.Business + c.First
}

// GenerateSeatMap deterministically builds the full seat inventory for a
// capacity configuration. Rows are filled in row-major order per class and
// the last row of a class may be partially filled. The result is generated
// once per flight and treated as immutable inventory afterwards; callers
// guard against re-generation because it would orphan outstanding locks.
func GenerateSeatMap(cfg CapacityConfig) []Seat {
	seats := make([]Seat, 0, cfg.Total())
	row := 1

	row = appendCabin(&seats, row, cfg.First, ClassFirst)
	row = appendCabin(&seats, row, cfg.Business, ClassBusiness)
	appendCabin(&seats, row, cfg.Economy, ClassEconomy)

	return seats
}

func appendCabin(seats *[]Seat, startRow, count int, class CabinClass) int {
	if count <= 0 {
		return startRow
	}

	letters := premiumLetters
	if class == ClassEconomy {
		letters = economyLetters
	}

	row := startRow
	for placed := 0; placed < count; row++ {
		exitRow := class == ClassEconomy && row == startRow
		for _, letter := range letters {
			if placed == count {
				break
			}
			*seats = append(*seats, Seat{
				SeatNumber:  fmt.Sprintf("%d%s", row, letter),
				Row:         row,
				Letter:      letter,
				CabinClass:  class,
				Position:    positionOf(letter, class),
				ExitRow:     exitRow,
				Surcharge:   surchargeOf(letter, class, exitRow),
				IsAvailable: true,
			})
			placed++
		}
	}
	return row
}

// positionOf derives the seat position from the letter's place in the
// cabin layout rather than storing it arbitrarily.
func positionOf(letter string, class CabinClass) SeatPosition {
	if class == ClassEconomy {
		switch letter {
		case "A", "F":
			return PositionWindow
		case "C", "D":
			return PositionAisle
		default:
			return PositionMiddle
		}
	}
	// 2-2 layout has no middle seats.
	switch letter {
	case "A", "E":
		return PositionWindow
	default:
		return PositionAisle
	}
}

// surchargeOf prices the seat's positional premium. First and business
// premiums are bundled into the class fare, so only economy seats carry a
// separate surcharge: exit rows the highest, then window and aisle.
func surchargeOf(letter string, class CabinClass, exitRow bool) float64 {
	if class != ClassEconomy {
		return 0
	}
	if exitRow {
		return exitRowSurcharge
	}
	switch positionOf(letter, class) {
	case PositionWindow, PositionAisle:
		return windowAisleSurcharge
	default:
		return 0
	}
}
