package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeatNumberPattern(t *testing.T) {
	valid := []string{"1A", "1F", "12B", "999E", "4D"}
	for _, s := range valid {
		assert.True(t, seatNumberPattern.MatchString(s), s)
	}

	invalid := []string{"", "A1", "0A", "12", "12G", "1a", "1000A", "1AB", " 1A"}
	for _, s := range invalid {
		assert.False(t, seatNumberPattern.MatchString(s), s)
	}
}
