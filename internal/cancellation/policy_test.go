package cancellation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRefundTier(t *testing.T) {
	tests := []struct {
		name  string
		hours float64
		want  int
	}{
		{"well before departure", 80, 90},
		{"just above 72h", 72.1, 90},
		{"exactly 72h", 72, 50},
		{"mid tier", 50, 50},
		{"exactly 24h", 24, 50},
		{"below 24h", 10, 25},
		{"exactly 4h", 4, 25},
		{"close to departure", 2, 0},
		{"past departure", -1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RefundTier(tt.hours))
		})
	}
}

func TestComputeRefund(t *testing.T) {
	tests := []struct {
		name        string
		totalPaid   float64
		percentage  int
		wantRefund  float64
		wantPenalty float64
	}{
		{"90 percent tier", 10000, 90, 9000, 1000},
		{"50 percent tier", 10000, 50, 5000, 5000},
		{"25 percent tier", 10000, 25, 2500, 7500},
		{"zero tier", 10000, 0, 0, 10000},
		{"rounding", 99.99, 25, 25, 74.99},
		{"zero paid", 0, 90, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			refund, penalty := ComputeRefund(tt.totalPaid, tt.percentage)
			assert.Equal(t, tt.wantRefund, refund)
			assert.InDelta(t, tt.wantPenalty, penalty, 1e-9)
		})
	}
}

func TestRefundTableFromFareExamples(t *testing.T) {
	// The canonical examples: totalPaid=10000 at 80h, 50h and 10h out.
	for _, tc := range []struct {
		hours  float64
		refund float64
	}{
		{80, 9000},
		{50, 5000},
		{10, 2500},
	} {
		refund, _ := ComputeRefund(10000, RefundTier(tc.hours))
		assert.Equal(t, tc.refund, refund)
	}
}
