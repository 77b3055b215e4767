package cancellation

import "math"

// Refund tiers by time to departure. The percentage is the share of the
// total paid amount returned to the passenger; the rest is the penalty.
//
//	> 72h   90%
//	24-72h  50%
//	4-24h   25%
//	< 4h     0%
func RefundTier(hoursUntilDeparture float64) int {
	switch {
	case hoursUntilDeparture > 72:
		return 90
	case hoursUntilDeparture >= 24:
		return 50
	case hoursUntilDeparture >= 4:
		return 25
	default:
		return 0
	}
}

// ComputeRefund splits a paid amount into refund and penalty for a given
// tier percentage. Deterministic, no I/O.
func ComputeRefund(totalPaid float64, percentage int) (refundAmount, penaltyAmount float64) {
	refundAmount = math.Round(totalPaid * float64(percentage) / 100)
	penaltyAmount = totalPaid - refundAmount
	return refundAmount, penaltyAmount
}
